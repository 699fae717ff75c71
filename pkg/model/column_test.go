package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"droscher.com/BreweryStats/pkg/model"
)

func TestColumns_SchemaOrder(t *testing.T) {
	columns, err := model.Columns()
	require.NoError(t, err)

	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, column.Name)
	}

	assert.Equal(t, append([]string{"id"}, model.ListingColumns...), names)
	assert.Equal(t, schema.Uint, columns[0].Type)

	for _, column := range columns[1:] {
		assert.Equal(t, schema.String, column.Type, column.Name)
	}
}

func TestLookupColumn_KnownColumn(t *testing.T) {
	column, err := model.LookupColumn("website_url")

	require.NoError(t, err)
	assert.Equal(t, "website_url", column.Name)
	assert.Equal(t, schema.String, column.Type)
}

func TestLookupColumn_RejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"not_a_column", "", "Region", "region; DROP TABLE breweries", "WebsiteURL", "count(*)"} {
		_, err := model.LookupColumn(name)

		require.ErrorIs(t, err, model.ErrUnknownColumn, name)

		var unknown *model.UnknownColumnError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, name, unknown.Name)
		assert.EqualError(t, err, "unknown column: "+name)
	}
}
