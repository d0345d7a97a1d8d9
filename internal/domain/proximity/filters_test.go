package proximity

import (
	"testing"

	"venture/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilters(t *testing.T) {
	raw := map[string][]string{
		"skills":   {"Go, Rust", "go", " "},
		"stage":    {"seed"},
		"city":     {"Bengaluru"},
		"whatever": {"x"},
	}

	assert.Equal(t, Filters{FilterSkills: {"go", "rust"}}, NormalizeFilters(entity.EntityTypeFreelancer, raw))
	assert.Equal(t, Filters{FilterStage: {"seed"}}, NormalizeFilters(entity.EntityTypeInvestor, raw))
	assert.Equal(t, Filters{}, NormalizeFilters(entity.EntityTypeSpace, raw))
}

func TestCityPrefix(t *testing.T) {
	assert.Equal(t, "beng", CityPrefix(map[string][]string{"city": {" Beng "}}))
	assert.Equal(t, "", CityPrefix(map[string][]string{"city": {" , "}}))
	assert.Equal(t, "", CityPrefix(nil))
}

func TestHasCityPrefix(t *testing.T) {
	assert.True(t, HasCityPrefix("Bengaluru", "beng"))
	assert.False(t, HasCityPrefix("Mysuru", "beng"))
	assert.False(t, HasCityPrefix("Bengaluru", " "))
	assert.True(t, HasCityPrefix("  Bengaluru", "beng"))
}
