package proximity

import (
	"math"
	"testing"

	"venture/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bangalore city center.
var center = orb.Point{77.5946, 12.9716}

// pointAt returns a point roughly km kilometers due north of center.
func pointAt(km float64) (lat, lng float64) {
	return center.Lat() + km/EarthRadiusKm*180/math.Pi, center.Lon()
}

func profileAt(km float64, city string) *entity.Profile {
	p := &entity.Profile{ID: uuid.New(), Type: entity.EntityTypeFreelancer, City: city, IsActive: true}
	p.SetLocation(pointAt(km))

	return p
}

func TestHaversine(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   orb.Point
		expected float64
		delta    float64
	}{
		{name: "same point", p1: center, p2: center, expected: 0, delta: 1e-9},
		{name: "one degree of latitude", p1: orb.Point{0, 0}, p2: orb.Point{0, 1}, expected: 111.195, delta: 0.01},
		{name: "Bangalore to Mysore", p1: center, p2: orb.Point{76.6394, 12.2958}, expected: 128.0, delta: 2},
		{name: "antipodal", p1: orb.Point{0, 0}, p2: orb.Point{180, 0}, expected: math.Pi * EarthRadiusKm, delta: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Haversine(tt.p1, tt.p2), tt.delta)
			assert.InDelta(t, Haversine(tt.p1, tt.p2), Haversine(tt.p2, tt.p1), 1e-9)
		})
	}
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(12.9716, 77.5946))
	assert.True(t, IsValidCoordinate(-90, 180))
	assert.False(t, IsValidCoordinate(91, 0))
	assert.False(t, IsValidCoordinate(0, -181))
	assert.False(t, IsValidCoordinate(math.NaN(), 0))
	assert.False(t, IsValidCoordinate(0, math.Inf(1)))
}

func TestRank_NearestFirstWithinRadius(t *testing.T) {
	far := profileAt(20, "")
	mid := profileAt(3, "")
	near := profileAt(0, "")

	q := Query{Type: entity.EntityTypeFreelancer, Center: center, RadiusKm: 5, Limit: 100}
	results := Rank([]*entity.Profile{far, mid, near}, q)

	require.Len(t, results, 2)
	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, mid.ID, results[1].ID)
	assert.InDelta(t, 0, *results[0].DistanceKm, 1e-6)
	assert.InDelta(t, 3, *results[1].DistanceKm, 0.01)
}

func TestRank_NullCoordinatesExcludedWithoutCity(t *testing.T) {
	noLocation := &entity.Profile{ID: uuid.New(), City: "Bengaluru", IsActive: true}

	q := Query{Center: center, RadiusKm: 5, Limit: 100}
	results := Rank([]*entity.Profile{noLocation, profileAt(1, "")}, q)

	require.Len(t, results, 1)
	assert.NotEqual(t, noLocation.ID, results[0].ID)
}

func TestRank_CityPrefixIsAlternativeInclusion(t *testing.T) {
	noLocation := &entity.Profile{ID: uuid.New(), City: "Bengaluru", IsActive: true}
	farInCity := profileAt(40, "bengaluru urban")
	farElsewhere := profileAt(40, "Mysuru")
	near := profileAt(2, "Mysuru")

	q := Query{Center: center, RadiusKm: 5, CityPrefix: "BENG", Limit: 100}
	results := Rank([]*entity.Profile{noLocation, farElsewhere, farInCity, near}, q)

	require.Len(t, results, 3)
	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, farInCity.ID, results[1].ID)
	require.NotNil(t, results[1].DistanceKm)
	assert.Greater(t, *results[1].DistanceKm, q.RadiusKm)
	assert.Equal(t, noLocation.ID, results[2].ID)
	assert.Nil(t, results[2].DistanceKm)
}

func TestRank_MonotonicAndTruncated(t *testing.T) {
	var candidates []*entity.Profile
	for _, km := range []float64{4.5, 0.5, 3, 1, 2, 4, 0.1} {
		candidates = append(candidates, profileAt(km, ""))
	}

	q := Query{Center: center, RadiusKm: 5, Limit: 4}
	results := Rank(candidates, q)

	require.Len(t, results, 4)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, *results[i-1].DistanceKm, *results[i].DistanceKm)
	}
	for _, r := range results {
		assert.LessOrEqual(t, *r.DistanceKm, q.RadiusKm)
	}
}

func TestRank_StableForTies(t *testing.T) {
	a := profileAt(1, "")
	b := profileAt(1, "")
	c := profileAt(1, "")

	results := Rank([]*entity.Profile{a, b, c}, Query{Center: center, RadiusKm: 5, Limit: 10})

	require.Len(t, results, 3)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, []uuid.UUID{results[0].ID, results[1].ID, results[2].ID})
}

func TestRank_SkipsInactive(t *testing.T) {
	inactive := profileAt(1, "")
	inactive.IsActive = false

	results := Rank([]*entity.Profile{inactive, nil}, Query{Center: center, RadiusKm: 5, Limit: 10})
	assert.Empty(t, results)
}

func TestSearchBound(t *testing.T) {
	bound, wraps := SearchBound(center, 5, 1.2)
	require.False(t, wraps)
	assert.True(t, bound.Contains(center))

	for _, km := range []float64{4.99, 5.9} {
		lat, lng := pointAt(km)
		assert.True(t, bound.Contains(orb.Point{lng, lat}), "%.2f km north should be inside", km)
	}

	_, wraps = SearchBound(orb.Point{179.99, 0}, 50, 1)
	assert.True(t, wraps)
}
