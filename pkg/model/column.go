package model

import (
	"errors"
	"sync"

	"gorm.io/gorm/schema"
)

var ErrUnknownColumn = errors.New("unknown column")

type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return "unknown column: " + e.Name
}

func (e *UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}

type Column struct {
	Name string
	Type schema.DataType
}

var breweryColumns = sync.OnceValues(func() ([]Column, error) {
	breweries, err := schema.Parse(&Brewery{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	columns := make([]Column, 0, len(breweries.DBNames))

	for _, name := range breweries.DBNames {
		columns = append(columns, Column{Name: name, Type: breweries.FieldsByDBName[name].DataType})
	}

	return columns, nil
})

// Columns returns the declared columns of the breweries table in schema order.
func Columns() ([]Column, error) {
	columns, err := breweryColumns()
	if err != nil {
		return nil, err
	}

	return append([]Column(nil), columns...), nil
}

// LookupColumn is the only way a caller supplied name reaches a query. Names
// are matched exactly against the declared columns.
func LookupColumn(name string) (Column, error) {
	columns, err := breweryColumns()
	if err != nil {
		return Column{}, err
	}

	for _, column := range columns {
		if column.Name == name {
			return column, nil
		}
	}

	return Column{}, &UnknownColumnError{Name: name}
}
