package repository

import (
	"cmp"
	"database/sql"
	"slices"
	"time"

	"go.uber.org/multierr"
	"gorm.io/gorm"

	"droscher.com/BreweryStats/pkg/model"
)

// queryTuples runs query and returns every row as a slice of normalised
// scalars along with the result column names. The rows are always closed.
func queryTuples(query *gorm.DB) (tuples [][]any, columns []string, err error) {
	rows, err := query.Rows()
	if err != nil {
		return nil, nil, datastoreError(err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(rows))

	columns, err = rows.Columns()
	if err != nil {
		return nil, nil, datastoreError(err)
	}

	tuples, err = scanTuples(rows, len(columns))
	if err != nil {
		return nil, nil, datastoreError(err)
	}

	return tuples, columns, nil
}

func scanTuples(rows *sql.Rows, width int) ([][]any, error) {
	tuples := make([][]any, 0)

	for rows.Next() {
		values := make([]any, width)
		pointers := make([]any, width)

		for index := range values {
			pointers[index] = &values[index]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		for index, value := range values {
			values[index] = normalizeScalar(value)
		}

		tuples = append(tuples, values)
	}

	return tuples, rows.Err()
}

// queryRows runs query and keys each row by keys, or by the result column
// names when keys is nil.
func queryRows(query *gorm.DB, keys []string) ([]*model.Row, error) {
	tuples, columns, err := queryTuples(query)
	if err != nil {
		return nil, err
	}

	if len(keys) != len(columns) {
		keys = columns
	}

	rows := make([]*model.Row, 0, len(tuples))

	for _, tuple := range tuples {
		row := model.NewRow()
		for index, key := range keys {
			row.Set(key, tuple[index])
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func normalizeScalar(value any) any {
	switch typed := value.(type) {
	case []byte:
		return string(typed)
	case int:
		return int64(typed)
	case int32:
		return int64(typed)
	case uint32:
		return int64(typed)
	case time.Time:
		return typed.UTC()
	default:
		return value
	}
}

const (
	nullRank = iota
	numberRank
	stringRank
	otherRank
)

// compareScalars orders null first, then numbers, then strings, then anything
// else by its JSON text.
func compareScalars(a, b any) int {
	rankA, rankB := scalarRank(a), scalarRank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch typedA := a.(type) {
	case string:
		return cmp.Compare(typedA, b.(string)) //nolint:forcetypeassert // same rank means same type
	case int64:
		if typedB, ok := b.(int64); ok {
			return cmp.Compare(typedA, typedB)
		}
	}

	if rankA == numberRank {
		return cmp.Compare(toFloat(a), toFloat(b))
	}

	return cmp.Compare(model.GroupKey(a), model.GroupKey(b))
}

func scalarRank(value any) int {
	switch value.(type) {
	case nil:
		return nullRank
	case int64, uint64, float64:
		return numberRank
	case string:
		return stringRank
	default:
		return otherRank
	}
}

func toFloat(value any) float64 {
	switch typed := value.(type) {
	case int64:
		return float64(typed)
	case uint64:
		return float64(typed)
	case float64:
		return typed
	default:
		return 0
	}
}

func sortDistinct(values []any) []any {
	slices.SortFunc(values, compareScalars)

	return slices.CompactFunc(values, func(a, b any) bool {
		return compareScalars(a, b) == 0
	})
}
