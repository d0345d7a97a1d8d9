package proximity

import (
	"strings"

	"venture/internal/domain/entity"
)

// Filter keys accepted by nearby searches.
const (
	FilterCity      = "city"
	FilterSkills    = "skills"
	FilterSector    = "sector"
	FilterStage     = "stage"
	FilterIndustry  = "industry"
	FilterCategory  = "category"
	FilterAmenities = "amenities"
)

// FilterKeys lists every key a nearby search understands.
var FilterKeys = []string{
	FilterCity,
	FilterSkills,
	FilterSector,
	FilterStage,
	FilterIndustry,
	FilterCategory,
	FilterAmenities,
}

// Filters maps a filter key to its accepted values. Values are lower-cased and trimmed.
type Filters map[string][]string

var allowedFilters = map[entity.EntityType][]string{
	entity.EntityTypeFreelancer: {FilterSkills},
	entity.EntityTypeInvestor:   {FilterSector, FilterStage},
	entity.EntityTypeStartup:    {FilterIndustry, FilterStage},
	entity.EntityTypeSpace:      {FilterCategory, FilterAmenities},
}

// NormalizeFilters keeps only the keys that apply to t (city is handled separately), splits
// comma separated values, and drops empty entries.
func NormalizeFilters(t entity.EntityType, raw map[string][]string) Filters {
	out := Filters{}
	for _, key := range allowedFilters[t] {
		values := splitValues(raw[key])
		if len(values) > 0 {
			out[key] = values
		}
	}

	return out
}

// CityPrefix extracts the first non-empty city value.
func CityPrefix(raw map[string][]string) string {
	values := splitValues(raw[FilterCity])
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

func splitValues(values []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}

	return out
}
