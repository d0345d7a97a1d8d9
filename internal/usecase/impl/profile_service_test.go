package impl

import (
	"context"
	"log/slog"
	"testing"

	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/repository"
	mockRepo "venture/internal/mocks/repository"
	mockSvc "venture/internal/mocks/service"
	"venture/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository, *mockSvc.MockQRCodeService) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewProfileService(ProfileServiceParams{
		ProfileRepo:   profileRepo,
		QRCodeService: qrService,
		Logger:        slog.Default(),
	})

	return svc, profileRepo, qrService
}

func TestProfileService_CreateProfile_Freelancer(t *testing.T) {
	svc, profileRepo, _ := newProfileServiceForTest(t)
	ctx := context.Background()
	actorID := uuid.New()

	profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeFreelancer, actorID).Return(nil, repository.ErrProfileNotFound)
	profileRepo.EXPECT().CreateProfile(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	profile, err := svc.CreateProfile(ctx, actorID, "freelancer", &usecase.CreateProfileInput{
		DisplayName: "  Asha  ",
		City:        "Bengaluru",
		Latitude:    floatPtr(12.9716),
		Longitude:   floatPtr(77.5946),
		Attributes: usecase.ProfileAttributes{
			Skills:      []string{"Go", " go ", "", "Postgres"},
			CompanyName: "ignored for freelancers",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, actorID, profile.UserID)
	assert.Equal(t, entity.EntityTypeFreelancer, profile.Type)
	assert.Equal(t, "Asha", profile.DisplayName)
	assert.True(t, profile.IsActive)
	assert.Equal(t, []string{"Go", "Postgres"}, profile.Skills)
	assert.Empty(t, profile.CompanyName)
	require.NotNil(t, profile.Latitude)
	assert.Equal(t, 12.9716, *profile.Latitude)
}

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	svc, profileRepo, _ := newProfileServiceForTest(t)
	ctx := context.Background()
	actorID := uuid.New()

	profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeStartup, actorID).Return(&entity.Profile{}, nil)

	_, err := svc.CreateProfile(ctx, actorID, "startup", &usecase.CreateProfileInput{DisplayName: "Acme"})
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_CreateProfile_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		entityType string
		input      *usecase.CreateProfileInput
		wantErr    error
	}{
		{
			name:       "unknown type",
			entityType: "mentor",
			input:      &usecase.CreateProfileInput{DisplayName: "x"},
			wantErr:    domainerrors.ErrUnknownEntityType,
		},
		{
			name:       "missing display name",
			entityType: "space",
			input:      &usecase.CreateProfileInput{DisplayName: "  "},
			wantErr:    domainerrors.ErrValidationFailed,
		},
		{
			name:       "latitude without longitude",
			entityType: "space",
			input:      &usecase.CreateProfileInput{DisplayName: "Hub", Latitude: floatPtr(10)},
			wantErr:    domainerrors.ErrValidationFailed,
		},
		{
			name:       "ticket range inverted",
			entityType: "investor",
			input: &usecase.CreateProfileInput{
				DisplayName: "Fund",
				Attributes:  usecase.ProfileAttributes{TicketMin: int64Ptr(10), TicketMax: int64Ptr(5)},
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newProfileServiceForTest(t)

			_, err := svc.CreateProfile(context.Background(), uuid.New(), tt.entityType, tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestProfileService_GetProfile_InactiveIsNotFound(t *testing.T) {
	svc, profileRepo, _ := newProfileServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()

	profileRepo.EXPECT().FindProfileByID(ctx, entity.EntityTypeInvestor, profileID).
		Return(&entity.Profile{ID: profileID, Type: entity.EntityTypeInvestor, IsActive: false}, nil)

	_, err := svc.GetProfile(ctx, "investor", profileID)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_GetMyProfile_ReturnsInactive(t *testing.T) {
	svc, profileRepo, _ := newProfileServiceForTest(t)
	ctx := context.Background()
	actorID := uuid.New()
	own := &entity.Profile{ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeSpace}

	profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeSpace, actorID).Return(own, nil)

	profile, err := svc.GetMyProfile(ctx, actorID, "space")
	require.NoError(t, err)
	assert.Equal(t, own, profile)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, profileRepo, _ := newProfileServiceForTest(t)
	ctx := context.Background()
	actorID := uuid.New()
	own := &entity.Profile{ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeStartup, DisplayName: "Old", IsActive: true}

	profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeStartup, actorID).Return(own, nil)
	profileRepo.EXPECT().UpdateProfile(ctx, own).Return(nil)

	name := "New"
	inactive := false
	profile, err := svc.UpdateProfile(ctx, actorID, "startup", &usecase.UpdateProfileInput{
		DisplayName: &name,
		IsActive:    &inactive,
		Attributes:  &usecase.ProfileAttributesPatch{Industry: strPtr(" Fintech "), Stage: strPtr("seed"), TeamSize: intPtr(4)},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", profile.DisplayName)
	assert.False(t, profile.IsActive)
	assert.Equal(t, "Fintech", profile.Industry)
	assert.Equal(t, 4, profile.TeamSize)
}

func strPtr(v string) *string { return &v }

func TestProfileService_UpdateProfile_KeepsOmittedAttributes(t *testing.T) {
	actorID := uuid.New()

	t.Run("freelancer hourly rate only", func(t *testing.T) {
		svc, profileRepo, _ := newProfileServiceForTest(t)
		ctx := context.Background()
		own := &entity.Profile{
			ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeFreelancer, DisplayName: "Asha",
			Skills: []string{"Go", "Postgres"}, HourlyRate: floatPtr(40),
		}

		profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeFreelancer, actorID).Return(own, nil)
		profileRepo.EXPECT().UpdateProfile(ctx, own).Return(nil)

		profile, err := svc.UpdateProfile(ctx, actorID, "freelancer", &usecase.UpdateProfileInput{
			Attributes: &usecase.ProfileAttributesPatch{HourlyRate: floatPtr(55)},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "Postgres"}, profile.Skills)
		assert.Equal(t, 55.0, *profile.HourlyRate)
	})

	t.Run("investor sectors only", func(t *testing.T) {
		svc, profileRepo, _ := newProfileServiceForTest(t)
		ctx := context.Background()
		own := &entity.Profile{
			ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeInvestor, DisplayName: "Seed Fund",
			Sectors: []string{"fintech"}, Stages: []string{"seed"}, TicketMin: int64Ptr(10), TicketMax: int64Ptr(50),
		}

		profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeInvestor, actorID).Return(own, nil)
		profileRepo.EXPECT().UpdateProfile(ctx, own).Return(nil)

		sectors := []string{"climate", " Climate "}
		profile, err := svc.UpdateProfile(ctx, actorID, "investor", &usecase.UpdateProfileInput{
			Attributes: &usecase.ProfileAttributesPatch{Sectors: &sectors},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"climate"}, profile.Sectors)
		assert.Equal(t, []string{"seed"}, profile.Stages)
		assert.Equal(t, int64(10), *profile.TicketMin)
		assert.Equal(t, int64(50), *profile.TicketMax)
	})

	t.Run("empty list clears", func(t *testing.T) {
		svc, profileRepo, _ := newProfileServiceForTest(t)
		ctx := context.Background()
		own := &entity.Profile{
			ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeSpace, DisplayName: "Hub",
			SpaceName: "Hub", Capacity: 30, Amenities: []string{"wifi"},
		}

		profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeSpace, actorID).Return(own, nil)
		profileRepo.EXPECT().UpdateProfile(ctx, own).Return(nil)

		profile, err := svc.UpdateProfile(ctx, actorID, "space", &usecase.UpdateProfileInput{
			Attributes: &usecase.ProfileAttributesPatch{Amenities: &[]string{}},
		})
		require.NoError(t, err)
		assert.Empty(t, profile.Amenities)
		assert.Equal(t, "Hub", profile.SpaceName)
		assert.Equal(t, 30, profile.Capacity)
	})

	t.Run("ticket max below stored min", func(t *testing.T) {
		svc, profileRepo, _ := newProfileServiceForTest(t)
		ctx := context.Background()
		own := &entity.Profile{
			ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeInvestor, DisplayName: "Seed Fund",
			TicketMin: int64Ptr(100), TicketMax: int64Ptr(500),
		}

		profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeInvestor, actorID).Return(own, nil)

		_, err := svc.UpdateProfile(ctx, actorID, "investor", &usecase.UpdateProfileInput{
			Attributes: &usecase.ProfileAttributesPatch{TicketMax: int64Ptr(50)},
		})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Equal(t, int64(500), *own.TicketMax)
		profileRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})
}

func TestProfileService_UpdateLocation(t *testing.T) {
	actorID := uuid.New()

	t.Run("set both coordinates", func(t *testing.T) {
		svc, profileRepo, _ := newProfileServiceForTest(t)
		ctx := context.Background()
		own := &entity.Profile{ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeFreelancer}

		profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeFreelancer, actorID).Return(own, nil)
		profileRepo.EXPECT().UpdateProfile(ctx, own).Return(nil)

		city := "Pune"
		profile, err := svc.UpdateLocation(ctx, actorID, "freelancer", &usecase.UpdateLocationInput{
			Latitude:  floatPtr(18.52),
			Longitude: floatPtr(73.85),
			City:      &city,
		})
		require.NoError(t, err)
		_, ok := profile.Point()
		assert.True(t, ok)
		assert.Equal(t, "Pune", profile.City)
	})

	t.Run("clear", func(t *testing.T) {
		svc, profileRepo, _ := newProfileServiceForTest(t)
		ctx := context.Background()
		own := &entity.Profile{ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeFreelancer}
		own.SetLocation(1, 2)

		profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeFreelancer, actorID).Return(own, nil)
		profileRepo.EXPECT().UpdateProfile(ctx, own).Return(nil)

		profile, err := svc.UpdateLocation(ctx, actorID, "freelancer", &usecase.UpdateLocationInput{Clear: true})
		require.NoError(t, err)
		assert.Nil(t, profile.Latitude)
		assert.Nil(t, profile.Longitude)
	})

	t.Run("only one coordinate", func(t *testing.T) {
		svc, profileRepo, _ := newProfileServiceForTest(t)
		ctx := context.Background()
		own := &entity.Profile{ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeFreelancer}

		profileRepo.EXPECT().FindProfileByUser(ctx, entity.EntityTypeFreelancer, actorID).Return(own, nil)

		_, err := svc.UpdateLocation(ctx, actorID, "freelancer", &usecase.UpdateLocationInput{Longitude: floatPtr(2)})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Nil(t, own.Latitude)
	})
}

func TestProfileService_GenerateProfileQR(t *testing.T) {
	svc, profileRepo, qrService := newProfileServiceForTest(t)
	ctx := context.Background()
	profileID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	profileRepo.EXPECT().FindProfileByID(ctx, entity.EntityTypeSpace, profileID).
		Return(&entity.Profile{ID: profileID, Type: entity.EntityTypeSpace, IsActive: true}, nil)
	qrService.EXPECT().GenerateConnectQR(entity.EntityTypeSpace, profileID).Return(png, nil)

	got, err := svc.GenerateProfileQR(ctx, "space", profileID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
