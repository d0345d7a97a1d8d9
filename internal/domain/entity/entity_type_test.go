package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  EntityType
		valid bool
	}{
		{name: "freelancer", raw: "freelancer", want: EntityTypeFreelancer, valid: true},
		{name: "mixed case with spaces", raw: "  Investor ", want: EntityTypeInvestor, valid: true},
		{name: "startup", raw: "startup", want: EntityTypeStartup, valid: true},
		{name: "space", raw: "SPACE", want: EntityTypeSpace, valid: true},
		{name: "unknown", raw: "provider", valid: false},
		{name: "empty", raw: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEntityType(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestProfile_Point(t *testing.T) {
	p := &Profile{}
	_, ok := p.Point()
	assert.False(t, ok)

	p.SetLocation(12.9716, 77.5946)
	pt, ok := p.Point()
	assert.True(t, ok)
	assert.Equal(t, 77.5946, pt.Lon())
	assert.Equal(t, 12.9716, pt.Lat())

	p.ClearLocation()
	assert.Nil(t, p.Latitude)
	assert.Nil(t, p.Longitude)
}
