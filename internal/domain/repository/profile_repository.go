// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"venture/internal/domain/entity"
	"venture/internal/domain/proximity"
	"venture/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when a user already owns a profile of the same type.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for role profile database operations.
// Every method takes the entity type because each type lives in its own table.
type ProfileRepository interface {
	// CreateProfile persists a new profile of profile.Type.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// UpdateProfile saves every mutable column of the profile.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves a profile by its unique ID.
	FindProfileByID(ctx context.Context, entityType entity.EntityType, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByUser retrieves the profile of entityType owned by userID.
	FindProfileByUser(ctx context.Context, entityType entity.EntityType, userID uuid.UUID) (*entity.Profile, error)

	// HasActiveProfile reports whether the user owns at least one active profile of any type.
	HasActiveProfile(ctx context.Context, userID uuid.UUID) (bool, error)

	// FindNearbyCandidates returns active profiles that pass the type filters and either match the
	// city prefix or fall inside the padded bounding box of the search radius. Rows are ordered by
	// approximate distance (unknown last) and capped at maxCandidates. Exact ranking is the
	// caller's job.
	FindNearbyCandidates(ctx context.Context, query proximity.Query, maxCandidates int) ([]*entity.Profile, error)
}
