// Package proximity holds the distance math and ranking rules used by nearby searches.
// It is free of I/O so the same rules apply to any candidate source.
package proximity

import (
	"math"
	"sort"
	"strings"

	"venture/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for all great-circle distances.
const EarthRadiusKm = 6371.0

// Query describes one nearby search after validation and defaulting.
type Query struct {
	Type       entity.EntityType
	Center     orb.Point // lng, lat
	RadiusKm   float64
	CityPrefix string // empty when no city filter was given
	Filters    Filters
	Limit      int

	// Bounding box padding used by candidate queries; values below 1 mean no padding.
	PaddingMultiplier float64
}

// Haversine returns the great-circle distance in kilometers between two points.
func Haversine(p1, p2 orb.Point) float64 {
	lat1Rad := p1.Lat() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	deltaLat := (p2.Lat() - p1.Lat()) * math.Pi / 180
	deltaLng := (p2.Lon() - p1.Lon()) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// IsValidCoordinate checks if a coordinate is finite and within Earth bounds.
func IsValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// SearchBound returns a bounding box around center that contains every point within
// radiusKm*multiplier. wrapsLongitude is true when the box crosses the antimeridian or
// reaches a pole; callers should then filter on latitude only.
func SearchBound(center orb.Point, radiusKm, multiplier float64) (bound orb.Bound, wrapsLongitude bool) {
	if multiplier < 1 {
		multiplier = 1
	}

	// orb measures on a larger sphere; scale so the box is never smaller than our radius.
	meters := radiusKm * 1000 * multiplier * orb.EarthRadius / (EarthRadiusKm * 1000)
	bound = geo.NewBoundAroundPoint(center, meters)

	wrapsLongitude = bound.Min.Lon() > bound.Max.Lon() ||
		bound.Min.Lon() <= -180 || bound.Max.Lon() >= 180 ||
		bound.Min.Lat() <= -90 || bound.Max.Lat() >= 90

	return bound, wrapsLongitude
}

// Qualifies reports whether a profile belongs in the result set and its distance, if known.
// A profile qualifies when its city starts with the city filter (case-insensitive), or when it
// has coordinates and lies within the radius.
func Qualifies(p *entity.Profile, q Query) (distanceKm *float64, ok bool) {
	if pt, hasLocation := p.Point(); hasLocation {
		d := Haversine(q.Center, pt)
		distanceKm = &d
	}

	if q.CityPrefix != "" && HasCityPrefix(p.City, q.CityPrefix) {
		return distanceKm, true
	}

	if distanceKm != nil && *distanceKm <= q.RadiusKm {
		return distanceKm, true
	}

	return nil, false
}

// HasCityPrefix compares city and prefix case-insensitively after trimming whitespace.
func HasCityPrefix(city, prefix string) bool {
	city = strings.ToLower(strings.TrimSpace(city))
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	return prefix != "" && strings.HasPrefix(city, prefix)
}

// Rank keeps the qualifying active candidates, orders them nearest first with unknown
// distances last, and truncates to q.Limit. Candidate order breaks ties.
func Rank(candidates []*entity.Profile, q Query) []*entity.NearbyProfile {
	results := make([]*entity.NearbyProfile, 0, len(candidates))
	for _, p := range candidates {
		if p == nil || !p.IsActive {
			continue
		}

		distanceKm, ok := Qualifies(p, q)
		if !ok {
			continue
		}

		results = append(results, &entity.NearbyProfile{Profile: p, DistanceKm: distanceKm})
	}

	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].DistanceKm, results[j].DistanceKm
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})

	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	return results
}
