package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "venture/internal/delivery/context"
	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/proximity"
	"venture/internal/domain/repository"
	"venture/internal/domain/service"
	"venture/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	profileRepo   repository.ProfileRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
	now           func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo   repository.ProfileRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:   params.ProfileRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile creates the actor's profile of the given type.
func (srv *profileService) CreateProfile(ctx context.Context, actorID uuid.UUID, entityType string, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	profileType, ok := entity.ParseEntityType(entityType)
	if !ok {
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(entityType)
	}

	if input == nil || strings.TrimSpace(input.DisplayName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("display_name is required")
	}

	now := srv.now()
	profile := &entity.Profile{
		UserID:      actorID,
		Type:        profileType,
		DisplayName: strings.TrimSpace(input.DisplayName),
		Headline:    strings.TrimSpace(input.Headline),
		City:        strings.TrimSpace(input.City),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.Latitude != nil || input.Longitude != nil {
		if err := setLocation(profile, input.Latitude, input.Longitude); err != nil {
			return nil, err
		}
	}

	if err := applyAttributes(profile, &input.Attributes); err != nil {
		return nil, err
	}

	_, err := srv.profileRepo.FindProfileByUser(ctx, profileType, actorID)
	if err == nil {
		return nil, domainerrors.ErrProfileAlreadyExists
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile by user")
	}

	if err := srv.profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created",
		slog.String("entity_type", profileType.String()),
		slog.String("profile_id", profile.ID.String()),
		slog.String("user_id", actorID.String()),
	)

	return profile, nil
}

// GetProfile returns an active profile by ID.
func (srv *profileService) GetProfile(ctx context.Context, entityType string, profileID uuid.UUID) (*entity.Profile, error) {
	profileType, ok := entity.ParseEntityType(entityType)
	if !ok {
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(entityType)
	}

	profile, err := srv.profileRepo.FindProfileByID(ctx, profileType, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	if !profile.IsActive {
		return nil, domainerrors.ErrProfileNotFound
	}

	return profile, nil
}

// GetMyProfile returns the actor's own profile.
func (srv *profileService) GetMyProfile(ctx context.Context, actorID uuid.UUID, entityType string) (*entity.Profile, error) {
	profileType, ok := entity.ParseEntityType(entityType)
	if !ok {
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(entityType)
	}

	return srv.findOwnProfile(ctx, actorID, profileType)
}

// UpdateProfile applies a partial update to the actor's profile.
func (srv *profileService) UpdateProfile(ctx context.Context, actorID uuid.UUID, entityType string, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profileType, ok := entity.ParseEntityType(entityType)
	if !ok {
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(entityType)
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing update input")
	}

	profile, err := srv.findOwnProfile(ctx, actorID, profileType)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("display_name cannot be empty")
		}
		profile.DisplayName = name
	}
	if input.Headline != nil {
		profile.Headline = strings.TrimSpace(*input.Headline)
	}
	if input.IsActive != nil {
		profile.IsActive = *input.IsActive
	}
	if input.Attributes != nil {
		if err := mergeAttributes(profile, input.Attributes); err != nil {
			return nil, err
		}
	}

	return srv.save(ctx, profile)
}

// UpdateLocation sets or clears the actor's profile coordinates.
func (srv *profileService) UpdateLocation(ctx context.Context, actorID uuid.UUID, entityType string, input *usecase.UpdateLocationInput) (*entity.Profile, error) {
	profileType, ok := entity.ParseEntityType(entityType)
	if !ok {
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(entityType)
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing location input")
	}

	profile, err := srv.findOwnProfile(ctx, actorID, profileType)
	if err != nil {
		return nil, err
	}

	switch {
	case input.Clear:
		profile.ClearLocation()
	case input.Latitude != nil || input.Longitude != nil:
		if err := setLocation(profile, input.Latitude, input.Longitude); err != nil {
			return nil, err
		}
	case input.City == nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lng, city, or clear is required")
	}

	if input.City != nil {
		profile.City = strings.TrimSpace(*input.City)
	}

	srv.log(ctx).Debug("Updating profile location",
		slog.String("entity_type", profileType.String()),
		slog.String("profile_id", profile.ID.String()),
		slog.Bool("cleared", input.Clear),
	)

	return srv.save(ctx, profile)
}

// GenerateProfileQR renders a connect QR code for an active profile.
func (srv *profileService) GenerateProfileQR(ctx context.Context, entityType string, profileID uuid.UUID) ([]byte, error) {
	profile, err := srv.GetProfile(ctx, entityType, profileID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateConnectQR(profile.Type, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate connect QR code")
	}

	return png, nil
}

func (srv *profileService) findOwnProfile(ctx context.Context, actorID uuid.UUID, profileType entity.EntityType) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindProfileByUser(ctx, profileType, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user")
	}

	return profile, nil
}

func (srv *profileService) save(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	profile.UpdatedAt = srv.now()

	if err := srv.profileRepo.UpdateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// setLocation requires both coordinates so a profile never has half a location.
func setLocation(profile *entity.Profile, lat, lng *float64) error {
	if lat == nil || lng == nil {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lng must be provided together")
	}
	if !proximity.IsValidCoordinate(*lat, *lng) {
		return domainerrors.ErrValidationFailed.WithDetails("lat must be within [-90, 90] and lng within [-180, 180]")
	}

	profile.SetLocation(*lat, *lng)

	return nil
}

// applyAttributes copies the fields that belong to the profile's type.
func applyAttributes(profile *entity.Profile, attrs *usecase.ProfileAttributes) error {
	switch profile.Type {
	case entity.EntityTypeFreelancer:
		if attrs.HourlyRate != nil && *attrs.HourlyRate < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("hourly_rate cannot be negative")
		}
		profile.Skills = cleanTags(attrs.Skills)
		profile.HourlyRate = attrs.HourlyRate
	case entity.EntityTypeInvestor:
		if attrs.TicketMin != nil && attrs.TicketMax != nil && *attrs.TicketMin > *attrs.TicketMax {
			return domainerrors.ErrValidationFailed.WithDetails("ticket_min cannot exceed ticket_max")
		}
		profile.Sectors = cleanTags(attrs.Sectors)
		profile.Stages = cleanTags(attrs.Stages)
		profile.TicketMin = attrs.TicketMin
		profile.TicketMax = attrs.TicketMax
	case entity.EntityTypeStartup:
		if attrs.TeamSize < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("team_size cannot be negative")
		}
		profile.CompanyName = strings.TrimSpace(attrs.CompanyName)
		profile.Industry = strings.TrimSpace(attrs.Industry)
		profile.Stage = strings.TrimSpace(attrs.Stage)
		profile.TeamSize = attrs.TeamSize
	case entity.EntityTypeSpace:
		if attrs.Capacity < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("capacity cannot be negative")
		}
		profile.SpaceName = strings.TrimSpace(attrs.SpaceName)
		profile.Category = strings.TrimSpace(attrs.Category)
		profile.Capacity = attrs.Capacity
		profile.Amenities = cleanTags(attrs.Amenities)
	}

	return nil
}

// mergeAttributes assigns only the supplied fields that belong to the profile's type.
func mergeAttributes(profile *entity.Profile, patch *usecase.ProfileAttributesPatch) error {
	switch profile.Type {
	case entity.EntityTypeFreelancer:
		if patch.HourlyRate != nil && *patch.HourlyRate < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("hourly_rate cannot be negative")
		}
		if patch.Skills != nil {
			profile.Skills = cleanTags(*patch.Skills)
		}
		if patch.HourlyRate != nil {
			profile.HourlyRate = patch.HourlyRate
		}
	case entity.EntityTypeInvestor:
		ticketMin, ticketMax := profile.TicketMin, profile.TicketMax
		if patch.TicketMin != nil {
			ticketMin = patch.TicketMin
		}
		if patch.TicketMax != nil {
			ticketMax = patch.TicketMax
		}
		if ticketMin != nil && ticketMax != nil && *ticketMin > *ticketMax {
			return domainerrors.ErrValidationFailed.WithDetails("ticket_min cannot exceed ticket_max")
		}
		if patch.Sectors != nil {
			profile.Sectors = cleanTags(*patch.Sectors)
		}
		if patch.Stages != nil {
			profile.Stages = cleanTags(*patch.Stages)
		}
		profile.TicketMin, profile.TicketMax = ticketMin, ticketMax
	case entity.EntityTypeStartup:
		if patch.TeamSize != nil && *patch.TeamSize < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("team_size cannot be negative")
		}
		assignTrimmed(&profile.CompanyName, patch.CompanyName)
		assignTrimmed(&profile.Industry, patch.Industry)
		assignTrimmed(&profile.Stage, patch.Stage)
		if patch.TeamSize != nil {
			profile.TeamSize = *patch.TeamSize
		}
	case entity.EntityTypeSpace:
		if patch.Capacity != nil && *patch.Capacity < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("capacity cannot be negative")
		}
		assignTrimmed(&profile.SpaceName, patch.SpaceName)
		assignTrimmed(&profile.Category, patch.Category)
		if patch.Capacity != nil {
			profile.Capacity = *patch.Capacity
		}
		if patch.Amenities != nil {
			profile.Amenities = cleanTags(*patch.Amenities)
		}
	}

	return nil
}

func assignTrimmed(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

// cleanTags trims tags and drops empty and repeated entries, keeping the first spelling.
func cleanTags(tags []string) []string {
	if tags == nil {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}

	return out
}
