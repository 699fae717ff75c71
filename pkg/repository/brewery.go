package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BreweryStats/pkg/model"
)

const totalColumn = "total"

type BreweryRepository interface {
	ListAll(ctx context.Context) ([]*model.BreweryListing, error)
	CountByRegion(ctx context.Context) ([]*model.Row, error)
	CountBy(ctx context.Context, column string, column2 string, region model.RegionFilter) ([]*model.Row, error)
	DistinctValues(ctx context.Context, column string, region model.RegionFilter) ([]any, error)
	ValuesGrouped(ctx context.Context, forColumn string, groupBy string, region model.RegionFilter) (*model.GroupedValues, error)
	WhereRegion(ctx context.Context, region string) ([]*model.Row, error)
	Ping(ctx context.Context) error
}

func (r *Repository) breweries(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.Brewery{})
}

func withRegion(query *gorm.DB, region model.RegionFilter) *gorm.DB {
	if !region.Active() {
		return query
	}

	return query.Where("UPPER(TRIM(region)) = ?", region.Value())
}

// lookupColumns validates every name before any query is built.
func lookupColumns(names ...string) ([]model.Column, error) {
	columns := make([]model.Column, 0, len(names))

	for _, name := range names {
		column, err := model.LookupColumn(name)
		if err != nil {
			return nil, err
		}

		columns = append(columns, column)
	}

	return columns, nil
}

// selectColumns builds a "?, ?" select list and its quoted column vars.
func selectColumns(columns []model.Column) (string, []any) {
	placeholders := make([]string, 0, len(columns))
	vars := make([]any, 0, len(columns))

	for _, column := range columns {
		placeholders = append(placeholders, "?")
		vars = append(vars, clause.Column{Name: column.Name})
	}

	return strings.Join(placeholders, ", "), vars
}

func orderByColumns(columns []model.Column) clause.OrderBy {
	orderBy := clause.OrderBy{Columns: make([]clause.OrderByColumn, 0, len(columns))}

	for _, column := range columns {
		orderBy.Columns = append(orderBy.Columns, clause.OrderByColumn{Column: clause.Column{Name: column.Name}})
	}

	return orderBy
}

func (r *Repository) ListAll(ctx context.Context) ([]*model.BreweryListing, error) {
	breweries := make([]*model.BreweryListing, 0)

	result := r.breweries(ctx).
		Select(model.ListingColumns).
		Order("id").
		Scan(&breweries)
	if result.Error != nil {
		return nil, datastoreError(result.Error)
	}

	return breweries, nil
}

func (r *Repository) CountByRegion(ctx context.Context) ([]*model.Row, error) {
	return r.CountBy(ctx, "region", "", model.RegionFilter{})
}

// CountBy counts rows grouped by column and, when given, column2. Every row
// is counted, including rows whose group value is null.
func (r *Repository) CountBy(ctx context.Context, column string, column2 string, region model.RegionFilter) ([]*model.Row, error) {
	names := []string{column}
	if column2 != "" {
		names = append(names, column2)
	}

	columns, err := lookupColumns(names...)
	if err != nil {
		return nil, err
	}

	selection, vars := selectColumns(columns)
	groupBy := clause.GroupBy{Columns: make([]clause.Column, 0, len(columns))}
	keys := make([]string, 0, len(columns)+1)

	for _, groupColumn := range columns {
		groupBy.Columns = append(groupBy.Columns, clause.Column{Name: groupColumn.Name})
		keys = append(keys, groupColumn.Name)
	}

	keys = append(keys, totalColumn)

	query := withRegion(r.breweries(ctx).Select(selection+", COUNT(*) AS "+totalColumn, vars...), region).
		Clauses(groupBy, orderByColumns(columns))

	return queryRows(query, keys)
}

// DistinctValues returns the unique values of column in ascending order,
// sorted here rather than by the database so every driver and collation
// agrees on the order.
func (r *Repository) DistinctValues(ctx context.Context, column string, region model.RegionFilter) ([]any, error) {
	columns, err := lookupColumns(column)
	if err != nil {
		return nil, err
	}

	selection, vars := selectColumns(columns)

	tuples, _, err := queryTuples(withRegion(r.breweries(ctx).Distinct(append([]any{selection}, vars...)...), region))
	if err != nil {
		return nil, err
	}

	values := make([]any, 0, len(tuples))
	for _, tuple := range tuples {
		values = append(values, tuple[0])
	}

	return sortDistinct(values), nil
}

// ValuesGrouped collects the values of forColumn for every distinct value of
// groupBy. Values keep the order of a query sorted by (groupBy, forColumn).
func (r *Repository) ValuesGrouped(ctx context.Context, forColumn string, groupBy string, region model.RegionFilter) (*model.GroupedValues, error) {
	columns, err := lookupColumns(groupBy, forColumn)
	if err != nil {
		return nil, err
	}

	groups, err := r.DistinctValues(ctx, groupBy, region)
	if err != nil {
		return nil, err
	}

	grouped := model.NewGroupedValues()
	if len(groups) == 0 {
		return grouped, nil
	}

	for _, group := range groups {
		grouped.Set(model.GroupKey(group), []any{})
	}

	selection, vars := selectColumns(columns)
	query := withRegion(r.breweries(ctx).Select(selection, vars...), region).Clauses(orderByColumns(columns))

	tuples, _, err := queryTuples(query)
	if err != nil {
		return nil, err
	}

	for _, tuple := range tuples {
		key := model.GroupKey(tuple[0])

		values, found := grouped.Get(key)
		if !found {
			continue
		}

		grouped.Set(key, append(values, tuple[1]))
	}

	return grouped, nil
}

// WhereRegion returns every column of the rows in region, matched after
// trimming and ignoring case.
func (r *Repository) WhereRegion(ctx context.Context, region string) ([]*model.Row, error) {
	query := r.breweries(ctx).
		Where("UPPER(TRIM(region)) = ?", model.NormalizeRegion(region)).
		Order("id")

	return queryRows(query, nil)
}
