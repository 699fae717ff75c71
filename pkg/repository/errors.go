package repository

import (
	"errors"
	"fmt"
)

var (
	ErrDatastore = errors.New("datastore error")
	// ErrNotFound is returned by row level lookups.
	ErrNotFound = errors.New("not found")
)

func datastoreError(err error) error {
	return fmt.Errorf("%w: %w", ErrDatastore, err)
}
