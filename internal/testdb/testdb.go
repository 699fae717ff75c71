// Package testdb provides an in-memory SQLite breweries table for tests that
// need real query behaviour.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"droscher.com/BreweryStats/configs"
	"droscher.com/BreweryStats/pkg/model"
	"droscher.com/BreweryStats/pkg/repository"
)

// New opens an in-memory database holding the breweries table and the given
// rows. A single pooled connection keeps the in-memory database alive for the
// whole test.
func New(t *testing.T, breweries ...model.Brewery) *repository.Repository {
	t.Helper()

	conf := &configs.Config{DB: configs.DB{
		URL:                "sqlite:///:memory:",
		MaxIdleConnections: 1,
		MaxOpenConnections: 1,
	}}

	repo, err := repository.Open(conf, zaptest.NewLogger(t))
	require.NoError(t, err, "testdb.New: open database")
	t.Cleanup(repo.Close)

	require.NoError(t, repo.DB.AutoMigrate(&model.Brewery{}), "testdb.New: create breweries table")

	if len(breweries) > 0 {
		require.NoError(t, repo.DB.Create(&breweries).Error, "testdb.New: insert breweries")
	}

	return repo
}

// Brewery builds a row with the columns the aggregate queries care about.
// Empty strings become nulls.
func Brewery(name, breweryType, state, region, division string) model.Brewery {
	return model.Brewery{
		Name:        optional(name),
		BreweryType: optional(breweryType),
		State:       optional(state),
		Country:     pointy.String("United States"),
		Region:      optional(region),
		Division:    optional(division),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return pointy.String(value)
}
