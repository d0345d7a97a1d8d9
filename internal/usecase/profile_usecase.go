package usecase

import (
	"context"

	"venture/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileAttributes holds the role specific fields. Only those of the target type are used.
type ProfileAttributes struct {
	Skills      []string
	HourlyRate  *float64
	Sectors     []string
	Stages      []string
	TicketMin   *int64
	TicketMax   *int64
	CompanyName string
	Industry    string
	Stage       string
	TeamSize    int
	SpaceName   string
	Category    string
	Capacity    int
	Amenities   []string
}

// ProfileAttributesPatch holds role specific fields for a partial update. Nil fields keep their
// stored value; an empty list clears a list field.
type ProfileAttributesPatch struct {
	Skills      *[]string
	HourlyRate  *float64
	Sectors     *[]string
	Stages      *[]string
	TicketMin   *int64
	TicketMax   *int64
	CompanyName *string
	Industry    *string
	Stage       *string
	TeamSize    *int
	SpaceName   *string
	Category    *string
	Capacity    *int
	Amenities   *[]string
}

// CreateProfileInput defines the input for creating a role profile
type CreateProfileInput struct {
	DisplayName string
	Headline    string
	City        string
	Latitude    *float64
	Longitude   *float64
	Attributes  ProfileAttributes
}

// UpdateProfileInput defines a partial profile update; nil fields are left unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	Headline    *string
	IsActive    *bool
	Attributes  *ProfileAttributesPatch
}

// UpdateLocationInput defines the location picker mutation.
type UpdateLocationInput struct {
	Latitude  *float64
	Longitude *float64
	City      *string
	Clear     bool // removes both coordinates
}

// ProfileUsecase defines the interface for role profile management
type ProfileUsecase interface {
	// CreateProfile creates the actor's profile of the given type.
	CreateProfile(ctx context.Context, actorID uuid.UUID, entityType string, input *CreateProfileInput) (*entity.Profile, error)

	// GetProfile returns an active profile by ID.
	GetProfile(ctx context.Context, entityType string, profileID uuid.UUID) (*entity.Profile, error)

	// GetMyProfile returns the actor's own profile, active or not.
	GetMyProfile(ctx context.Context, actorID uuid.UUID, entityType string) (*entity.Profile, error)

	// UpdateProfile applies a partial update to the actor's profile.
	UpdateProfile(ctx context.Context, actorID uuid.UUID, entityType string, input *UpdateProfileInput) (*entity.Profile, error)

	// UpdateLocation sets or clears the actor's profile coordinates.
	UpdateLocation(ctx context.Context, actorID uuid.UUID, entityType string, input *UpdateLocationInput) (*entity.Profile, error)

	// GenerateProfileQR renders a connect QR code for an active profile.
	GenerateProfileQR(ctx context.Context, entityType string, profileID uuid.UUID) ([]byte, error)
}
