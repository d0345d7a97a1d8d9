// Package usecase defines the application use cases and their input types.
package usecase

import (
	"context"

	"venture/internal/domain/entity"
)

// NearbyInput is a raw nearby search. Nil pointers mean the value was not supplied.
type NearbyInput struct {
	EntityType string
	Latitude   *float64
	Longitude  *float64
	RadiusKm   *float64
	Limit      *int
	Filters    map[string][]string // city, skills, sector, stage, industry, category, amenities
}

// ProximityUsecase defines the interface for location based discovery
type ProximityUsecase interface {
	// FindNearby returns active profiles of the requested type that match the city prefix or lie
	// within the radius, nearest first.
	FindNearby(ctx context.Context, input *NearbyInput) ([]*entity.NearbyProfile, error)
}
