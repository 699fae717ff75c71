package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BreweryStats/pkg/model"
)

func TestRow_KeepsColumnOrder(t *testing.T) {
	row := model.NewRow()
	row.Set("state", "Texas")
	row.Set("region", nil)
	row.Set("total", int64(9007199254740993))

	encoded, err := json.Marshal([]*model.Row{row})

	require.NoError(t, err)
	assert.Equal(t, `[{"state":"Texas","region":null,"total":9007199254740993}]`, string(encoded))
}

func TestGroupedValues_JSON(t *testing.T) {
	grouped := model.NewGroupedValues()
	grouped.Set(model.GroupKey(nil), []any{"Unknown"})
	grouped.Set(model.GroupKey("South"), []any{"Alabama", nil})

	encoded, err := json.Marshal(grouped)

	require.NoError(t, err)
	assert.Equal(t, `{"null":["Unknown"],"South":["Alabama",null]}`, string(encoded))
}

func TestGroupKey(t *testing.T) {
	assert.Equal(t, "West", model.GroupKey("West"))
	assert.Equal(t, "null", model.GroupKey(nil))
	assert.Equal(t, "42", model.GroupKey(int64(42)))
}
