// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"venture/config"
	deliverycontext "venture/internal/delivery/context"
	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/proximity"
	"venture/internal/domain/repository"
	"venture/internal/infra/metrics"
	"venture/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type proximityService struct {
	profileRepo repository.ProfileRepository
	metrics     *metrics.Metrics
	config      *config.ProximityConfig
	logger      *slog.Logger
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Metrics     *metrics.Metrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProximityService creates a new proximity service instance
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		profileRepo: params.ProfileRepo,
		metrics:     params.Metrics,
		config:      params.Config.Proximity,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *proximityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FindNearby returns qualifying profiles nearest first.
func (s *proximityService) FindNearby(ctx context.Context, input *usecase.NearbyInput) ([]*entity.NearbyProfile, error) {
	query, err := buildNearbyQuery(s.config, input)
	if err != nil {
		return nil, err
	}

	candidates, err := s.profileRepo.FindNearbyCandidates(ctx, query, s.config.MaxCandidates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby candidates")
	}

	results := proximity.Rank(candidates, query)

	s.metrics.ObserveProximity(query.Type.String(), len(candidates), len(results))
	s.log(ctx).Debug("Nearby search",
		slog.String("entity_type", query.Type.String()),
		slog.Float64("radius_km", query.RadiusKm),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)),
	)

	if len(candidates) >= s.config.MaxCandidates && s.config.MaxCandidates > 0 {
		s.log(ctx).Warn("Nearby candidate cap reached; results may be incomplete",
			slog.String("entity_type", query.Type.String()),
			slog.Int("max_candidates", s.config.MaxCandidates),
		)
	}

	return results, nil
}

// buildNearbyQuery validates raw input and applies configured defaults.
func buildNearbyQuery(cfg *config.ProximityConfig, input *usecase.NearbyInput) (proximity.Query, error) {
	if input == nil {
		return proximity.Query{}, domainerrors.ErrValidationFailed.WithDetails("missing search input")
	}

	entityType, ok := entity.ParseEntityType(input.EntityType)
	if !ok {
		return proximity.Query{}, domainerrors.ErrUnknownEntityType.WithDetails(input.EntityType)
	}

	center, radiusKm, err := validateArea(cfg, input.Latitude, input.Longitude, input.RadiusKm)
	if err != nil {
		return proximity.Query{}, err
	}

	limit := cfg.DefaultLimit
	if input.Limit != nil {
		if *input.Limit <= 0 {
			return proximity.Query{}, domainerrors.ErrValidationFailed.WithDetails("limit must be positive")
		}
		limit = *input.Limit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	return proximity.Query{
		Type:              entityType,
		Center:            center,
		RadiusKm:          radiusKm,
		CityPrefix:        proximity.CityPrefix(input.Filters),
		Filters:           proximity.NormalizeFilters(entityType, input.Filters),
		Limit:             limit,
		PaddingMultiplier: cfg.PreFilterRadiusMultiplier,
	}, nil
}

// validateArea checks the center and radius shared by nearby searches and market scores.
func validateArea(cfg *config.ProximityConfig, lat, lng, radius *float64) (orb.Point, float64, error) {
	if lat == nil || lng == nil {
		return orb.Point{}, 0, domainerrors.ErrValidationFailed.WithDetails("lat and lng are required")
	}

	if !proximity.IsValidCoordinate(*lat, *lng) {
		return orb.Point{}, 0, domainerrors.ErrValidationFailed.WithDetails("lat must be within [-90, 90] and lng within [-180, 180]")
	}

	radiusKm := cfg.DefaultRadiusKm
	if radius != nil {
		radiusKm = *radius
	}

	if math.IsNaN(radiusKm) || radiusKm <= 0 || radiusKm > cfg.MaxRadiusKm {
		return orb.Point{}, 0, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("radius must be in (0, %g] km", cfg.MaxRadiusKm))
	}

	return orb.Point{*lng, *lat}, radiusKm, nil
}
