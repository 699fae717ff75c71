package model

import "strings"

// AllRegions is the front end's "no filter" option.
const AllRegions = "All"

type RegionFilter struct {
	value  string
	active bool
}

func NewRegionFilter(raw string) RegionFilter {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == AllRegions {
		return RegionFilter{}
	}

	return RegionFilter{value: NormalizeRegion(trimmed), active: true}
}

// NormalizeRegion is compared against UPPER(TRIM(region)).
func NormalizeRegion(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func (f RegionFilter) Active() bool {
	return f.active
}

func (f RegionFilter) Value() string {
	return f.value
}
