package model

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Row is a query result row whose JSON keys keep the query's column order.
type Row = orderedmap.OrderedMap[string, any]

// GroupedValues maps a group value to the values found in that group, in
// ascending group order.
type GroupedValues = orderedmap.OrderedMap[string, []any]

func NewRow() *Row {
	return orderedmap.New[string, any]()
}

func NewGroupedValues() *GroupedValues {
	return orderedmap.New[string, []any]()
}

// GroupKey renders a scalar as a JSON object key. Strings are used as is and
// everything else uses its JSON text, so a null group becomes "null".
func GroupKey(value any) string {
	if text, ok := value.(string); ok {
		return text
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return string(encoded)
}
