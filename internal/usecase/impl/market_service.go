package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"venture/config"
	deliverycontext "venture/internal/delivery/context"
	"venture/internal/domain/entity"
	"venture/internal/domain/proximity"
	"venture/internal/domain/repository"
	"venture/internal/domain/service"
	"venture/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const marketScoreConcurrency = 4

// marketWeights sum to 1. Startups and investors dominate because they drive deal flow.
var marketWeights = map[entity.EntityType]float64{
	entity.EntityTypeStartup:    0.35,
	entity.EntityTypeInvestor:   0.30,
	entity.EntityTypeFreelancer: 0.20,
	entity.EntityTypeSpace:      0.15,
}

type marketService struct {
	profileRepo repository.ProfileRepository
	cache       service.Cache
	proximity   *config.ProximityConfig
	config      *config.MarketScoreConfig
	logger      *slog.Logger
}

// MarketServiceParams holds dependencies for MarketService, injected by Fx.
type MarketServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Cache       service.Cache `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMarketService creates a new market score service instance
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		profileRepo: params.ProfileRepo,
		cache:       params.Cache,
		proximity:   params.Config.Proximity,
		config:      params.Config.MarketScore,
		logger:      params.Logger,
	}
}

func (s *marketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Score counts nearby profiles of every type concurrently and blends them into a 0-100 score.
func (s *marketService) Score(ctx context.Context, input *usecase.MarketScoreInput) (*entity.MarketScore, error) {
	if input == nil {
		input = &usecase.MarketScoreInput{}
	}

	center, radiusKm, err := validateArea(s.proximity, input.Latitude, input.Longitude, input.RadiusKm)
	if err != nil {
		return nil, err
	}

	key := marketScoreCacheKey(center.Lat(), center.Lon(), radiusKm)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	counts := make(map[entity.EntityType]int, len(entity.EntityTypes))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(marketScoreConcurrency)
	for _, entityType := range entity.EntityTypes {
		g.Go(func() error {
			query := proximity.Query{
				Type:              entityType,
				Center:            center,
				RadiusKm:          radiusKm,
				PaddingMultiplier: s.proximity.PreFilterRadiusMultiplier,
			}

			candidates, err := s.profileRepo.FindNearbyCandidates(gctx, query, s.proximity.MaxCandidates)
			if err != nil {
				return errors.Wrapf(err, "failed to count %s profiles", entityType)
			}

			count := len(proximity.Rank(candidates, query))

			mu.Lock()
			counts[entityType] = count
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	score := &entity.MarketScore{
		Latitude:  center.Lat(),
		Longitude: center.Lon(),
		RadiusKm:  radiusKm,
		Score:     BlendMarketScore(counts, s.config.Saturation),
		Counts:    counts,
	}

	s.toCache(ctx, key, score)

	return score, nil
}

// BlendMarketScore maps each count onto a log curve that reaches 1 at saturation, weights the
// components, and rounds the percentage to one decimal.
func BlendMarketScore(counts map[entity.EntityType]int, saturation int) float64 {
	if saturation <= 0 {
		saturation = 1
	}

	denominator := math.Log1p(float64(saturation))
	total := 0.0
	for entityType, weight := range marketWeights {
		count := counts[entityType]
		if count <= 0 {
			continue
		}
		total += weight * math.Min(1, math.Log1p(float64(count))/denominator)
	}

	return math.Round(total*1000) / 10
}

func marketScoreCacheKey(lat, lng, radiusKm float64) string {
	return fmt.Sprintf("market_score:%.3f:%.3f:%g", lat, lng, radiusKm)
}

func (s *marketService) fromCache(ctx context.Context, key string) (*entity.MarketScore, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			s.log(ctx).Warn("Market score cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var score entity.MarketScore
	if err := json.Unmarshal(raw, &score); err != nil {
		s.log(ctx).Warn("Market score cache entry is corrupt", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}
	score.Cached = true

	return &score, true
}

func (s *marketService) toCache(ctx context.Context, key string, score *entity.MarketScore) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(score)
	if err != nil {
		s.log(ctx).Warn("Market score encode failed", slog.Any("error", err))

		return
	}

	if err := s.cache.Set(ctx, key, raw, s.config.CacheTTL); err != nil {
		s.log(ctx).Warn("Market score cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
