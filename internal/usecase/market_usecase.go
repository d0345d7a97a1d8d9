package usecase

import (
	"context"

	"venture/internal/domain/entity"
)

// MarketScoreInput defines the area to score. Nil pointers mean the value was not supplied.
type MarketScoreInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// MarketUsecase defines the interface for the market score heuristic
type MarketUsecase interface {
	// Score blends the nearby counts of every entity type into a 0-100 score.
	Score(ctx context.Context, input *MarketScoreInput) (*entity.MarketScore, error)
}
