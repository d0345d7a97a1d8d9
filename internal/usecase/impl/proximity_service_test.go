package impl

import (
	"context"
	"log/slog"
	"testing"

	"venture/config"
	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/proximity"
	mockRepo "venture/internal/mocks/repository"
	"venture/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// One degree of latitude on a sphere of radius 6371 km.
const kmPerDegreeLat = 111.19492664455873

func newTestConfig() *config.Config {
	return &config.Config{
		Proximity: &config.ProximityConfig{
			DefaultRadiusKm:           5,
			MaxRadiusKm:               500,
			DefaultLimit:              100,
			MaxLimit:                  500,
			MaxCandidates:             2000,
			PreFilterRadiusMultiplier: 1.1,
		},
		MarketScore: &config.MarketScoreConfig{
			Saturation: 50,
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func profileAt(entityType entity.EntityType, lat, lng float64) *entity.Profile {
	p := &entity.Profile{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Type:     entityType,
		IsActive: true,
	}
	p.SetLocation(lat, lng)

	return p
}

func newProximityServiceForTest(t *testing.T) (usecase.ProximityUsecase, *mockRepo.MockProfileRepository) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewProximityService(ProximityServiceParams{
		ProfileRepo: profileRepo,
		Config:      newTestConfig(),
		Logger:      slog.Default(),
	})

	return svc, profileRepo
}

func TestProximityService_FindNearby_BangaloreFreelancers(t *testing.T) {
	svc, profileRepo := newProximityServiceForTest(t)
	ctx := context.Background()

	lat, lng := 12.9716, 77.5946
	atCenter := profileAt(entity.EntityTypeFreelancer, lat, lng)
	threeKm := profileAt(entity.EntityTypeFreelancer, lat+3/kmPerDegreeLat, lng)
	twentyKm := profileAt(entity.EntityTypeFreelancer, lat+20/kmPerDegreeLat, lng)

	profileRepo.EXPECT().
		FindNearbyCandidates(ctx, mock.MatchedBy(func(q proximity.Query) bool {
			return q.Type == entity.EntityTypeFreelancer && q.RadiusKm == 5 && q.Limit == 100 && q.CityPrefix == ""
		}), 2000).
		Return([]*entity.Profile{twentyKm, threeKm, atCenter}, nil)

	results, err := svc.FindNearby(ctx, &usecase.NearbyInput{
		EntityType: "freelancer",
		Latitude:   floatPtr(lat),
		Longitude:  floatPtr(lng),
		RadiusKm:   floatPtr(5),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, atCenter.ID, results[0].ID)
	assert.Equal(t, threeKm.ID, results[1].ID)
	require.NotNil(t, results[0].DistanceKm)
	require.NotNil(t, results[1].DistanceKm)
	assert.InDelta(t, 0, *results[0].DistanceKm, 1e-9)
	assert.InDelta(t, 3, *results[1].DistanceKm, 1e-6)
}

func TestProximityService_FindNearby_CityMatchWithoutCoordinates(t *testing.T) {
	svc, profileRepo := newProximityServiceForTest(t)
	ctx := context.Background()

	lat, lng := 12.9716, 77.5946
	near := profileAt(entity.EntityTypeStartup, lat, lng)
	near.City = "Mysore"
	noLocation := &entity.Profile{ID: uuid.New(), Type: entity.EntityTypeStartup, City: "Bengaluru", IsActive: true}
	farInCity := profileAt(entity.EntityTypeStartup, lat+100/kmPerDegreeLat, lng)
	farInCity.City = "Bengaluru Rural"

	profileRepo.EXPECT().
		FindNearbyCandidates(ctx, mock.MatchedBy(func(q proximity.Query) bool {
			return q.CityPrefix == "beng"
		}), 2000).
		Return([]*entity.Profile{near, farInCity, noLocation}, nil)

	results, err := svc.FindNearby(ctx, &usecase.NearbyInput{
		EntityType: "Startup",
		Latitude:   floatPtr(lat),
		Longitude:  floatPtr(lng),
		Filters:    map[string][]string{"city": {"Beng"}},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, farInCity.ID, results[1].ID)
	assert.Greater(t, *results[1].DistanceKm, 5.0)
	assert.Equal(t, noLocation.ID, results[2].ID)
	assert.Nil(t, results[2].DistanceKm)
}

func TestProximityService_FindNearby_NullCoordinatesExcludedWithoutCity(t *testing.T) {
	svc, profileRepo := newProximityServiceForTest(t)
	ctx := context.Background()

	noLocation := &entity.Profile{ID: uuid.New(), Type: entity.EntityTypeSpace, City: "Bengaluru", IsActive: true}

	profileRepo.EXPECT().
		FindNearbyCandidates(ctx, mock.AnythingOfType("proximity.Query"), 2000).
		Return([]*entity.Profile{noLocation}, nil)

	results, err := svc.FindNearby(ctx, &usecase.NearbyInput{
		EntityType: "space",
		Latitude:   floatPtr(12.9716),
		Longitude:  floatPtr(77.5946),
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProximityService_FindNearby_LimitClampedAndApplied(t *testing.T) {
	svc, profileRepo := newProximityServiceForTest(t)
	ctx := context.Background()

	profileRepo.EXPECT().
		FindNearbyCandidates(ctx, mock.MatchedBy(func(q proximity.Query) bool {
			return q.Limit == 500
		}), 2000).
		Return(nil, nil)

	_, err := svc.FindNearby(ctx, &usecase.NearbyInput{
		EntityType: "investor",
		Latitude:   floatPtr(1),
		Longitude:  floatPtr(1),
		Limit:      intPtr(10000),
	})
	require.NoError(t, err)
}

func TestProximityService_FindNearby_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.NearbyInput
		wantErr error
	}{
		{
			name:    "unknown entity type",
			input:   &usecase.NearbyInput{EntityType: "mentor", Latitude: floatPtr(1), Longitude: floatPtr(1)},
			wantErr: domainerrors.ErrUnknownEntityType,
		},
		{
			name:    "empty entity type",
			input:   &usecase.NearbyInput{Latitude: floatPtr(1), Longitude: floatPtr(1)},
			wantErr: domainerrors.ErrUnknownEntityType,
		},
		{
			name:    "missing latitude",
			input:   &usecase.NearbyInput{EntityType: "freelancer", Longitude: floatPtr(1)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "latitude out of range",
			input:   &usecase.NearbyInput{EntityType: "freelancer", Latitude: floatPtr(91), Longitude: floatPtr(1)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "zero radius",
			input:   &usecase.NearbyInput{EntityType: "freelancer", Latitude: floatPtr(1), Longitude: floatPtr(1), RadiusKm: floatPtr(0)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "radius above maximum",
			input:   &usecase.NearbyInput{EntityType: "freelancer", Latitude: floatPtr(1), Longitude: floatPtr(1), RadiusKm: floatPtr(501)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "non positive limit",
			input:   &usecase.NearbyInput{EntityType: "freelancer", Latitude: floatPtr(1), Longitude: floatPtr(1), Limit: intPtr(0)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "nil input",
			input:   nil,
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newProximityServiceForTest(t)

			results, err := svc.FindNearby(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, results)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProximityService_FindNearby_RepositoryError(t *testing.T) {
	svc, profileRepo := newProximityServiceForTest(t)
	ctx := context.Background()

	profileRepo.EXPECT().
		FindNearbyCandidates(ctx, mock.AnythingOfType("proximity.Query"), 2000).
		Return(nil, errors.New("connection refused"))

	_, err := svc.FindNearby(ctx, &usecase.NearbyInput{
		EntityType: "freelancer",
		Latitude:   floatPtr(1),
		Longitude:  floatPtr(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find nearby candidates")

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}
