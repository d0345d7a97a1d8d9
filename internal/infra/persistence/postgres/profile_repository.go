package postgres

import (
	"context"
	"strings"

	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/proximity"
	"venture/internal/domain/repository"
	"venture/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// haversineOrderSQL ranks rows by great-circle distance in kilometers. Vars: lat, lat, lng.
const haversineOrderSQL = "2 * 6371 * asin(least(1, sqrt(" +
	"power(sin(radians(latitude - ?) / 2), 2) + " +
	"cos(radians(?)) * cos(radians(latitude)) * power(sin(radians(longitude - ?) / 2), 2)" +
	"))) ASC NULLS LAST"

// profileRepository implements the repository.ProfileRepository interface.
// Each entity type is stored in its own table; the model chosen per call decides which.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// CreateProfile persists a new profile of profile.Type.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	base := profileM.Base()
	profile.ID = base.ID
	profile.CreatedAt = base.CreatedAt
	profile.UpdatedAt = base.UpdatedAt

	return nil
}

// UpdateProfile saves every mutable column of the profile.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(profileM).
		Where("id = ?", profile.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = profileM.Base().UpdatedAt

	return nil
}

// FindProfileByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindProfileByID(ctx context.Context, entityType entity.EntityType, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, entityType, "id = ?", id)
}

// FindProfileByUser retrieves the profile of entityType owned by userID.
func (repo *profileRepository) FindProfileByUser(ctx context.Context, entityType entity.EntityType, userID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, entityType, "user_id = ?", userID)
}

func (repo *profileRepository) findOne(ctx context.Context, entityType entity.EntityType, query string, args ...any) (*entity.Profile, error) {
	profileM, err := newProfileRecord(entityType)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(profileM), nil
}

// HasActiveProfile reports whether the user owns at least one active profile of any type.
func (repo *profileRepository) HasActiveProfile(ctx context.Context, userID uuid.UUID) (bool, error) {
	clauses := make([]string, 0, len(entity.EntityTypes))
	args := make([]any, 0, len(entity.EntityTypes))
	for _, entityType := range entity.EntityTypes {
		profileM, err := newProfileRecord(entityType)
		if err != nil {
			return false, err
		}
		clauses = append(clauses, "EXISTS (SELECT 1 FROM "+profileM.TableName()+" WHERE user_id = ? AND is_active)")
		args = append(args, userID)
	}

	var exists bool
	if err := repo.db.WithContext(ctx).
		Raw("SELECT "+strings.Join(clauses, " OR "), args...).
		Scan(&exists).Error; err != nil {
		return false, errors.Wrap(err, "failed to check active profiles")
	}

	return exists, nil
}

// FindNearbyCandidates returns active, filtered rows that match the city prefix or fall inside
// the padded bounding box, roughly nearest first.
func (repo *profileRepository) FindNearbyCandidates(ctx context.Context, query proximity.Query, maxCandidates int) ([]*entity.Profile, error) {
	profileM, err := newProfileRecord(query.Type)
	if err != nil {
		return nil, err
	}

	db := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(profileM).
		Where("is_active = ?", true)

	db = applyProfileFilters(db, query.Type, query.Filters)
	db = applyProximityScope(db, query)

	db = db.Clauses(clause.OrderBy{
		Expression: clause.Expr{
			SQL:                haversineOrderSQL,
			Vars:               []any{query.Center.Lat(), query.Center.Lat(), query.Center.Lon()},
			WithoutParentheses: true,
		},
	})
	if maxCandidates > 0 {
		db = db.Limit(maxCandidates)
	}

	profiles, err := findProfiles(db, query.Type)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby profiles")
	}

	return profiles, nil
}

// applyProximityScope keeps rows whose city matches the prefix or whose coordinates fall inside
// the padded bounding box of the radius.
func applyProximityScope(db *gorm.DB, query proximity.Query) *gorm.DB {
	bound, wrapsLongitude := proximity.SearchBound(query.Center, query.RadiusKm, query.PaddingMultiplier)

	geoSQL := "latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?"
	geoArgs := []any{bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon()}
	if wrapsLongitude {
		geoSQL = "latitude BETWEEN ? AND ? AND longitude IS NOT NULL"
		geoArgs = []any{bound.Min.Lat(), bound.Max.Lat()}
	}

	if query.CityPrefix == "" {
		return db.Where(geoSQL, geoArgs...)
	}

	args := append([]any{escapeLike(query.CityPrefix) + "%"}, geoArgs...)

	// btrim matches proximity.HasCityPrefix, which ranks these rows afterwards
	return db.Where("(btrim(city) ILIKE ? OR ("+geoSQL+"))", args...)
}

// applyProfileFilters restricts rows by the per-type attribute filters. Array columns match on
// overlap and scalar columns on membership, both case-insensitively.
func applyProfileFilters(db *gorm.DB, entityType entity.EntityType, filters proximity.Filters) *gorm.DB {
	overlap := func(column string, values []string) {
		db = db.Where("EXISTS (SELECT 1 FROM unnest("+column+") AS v WHERE lower(v) = ANY(?))", pq.StringArray(values))
	}
	in := func(column string, values []string) {
		db = db.Where("lower("+column+") IN ?", values)
	}

	switch entityType {
	case entity.EntityTypeFreelancer:
		if v := filters[proximity.FilterSkills]; len(v) > 0 {
			overlap("skills", v)
		}
	case entity.EntityTypeInvestor:
		if v := filters[proximity.FilterSector]; len(v) > 0 {
			overlap("sectors", v)
		}
		if v := filters[proximity.FilterStage]; len(v) > 0 {
			overlap("stages", v)
		}
	case entity.EntityTypeStartup:
		if v := filters[proximity.FilterIndustry]; len(v) > 0 {
			in("industry", v)
		}
		if v := filters[proximity.FilterStage]; len(v) > 0 {
			in("stage", v)
		}
	case entity.EntityTypeSpace:
		if v := filters[proximity.FilterCategory]; len(v) > 0 {
			in("category", v)
		}
		if v := filters[proximity.FilterAmenities]; len(v) > 0 {
			overlap("amenities", v)
		}
	}

	return db
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// findProfiles runs db against the concrete model slice for entityType.
func findProfiles(db *gorm.DB, entityType entity.EntityType) ([]*entity.Profile, error) {
	switch entityType {
	case entity.EntityTypeFreelancer:
		return scanProfiles[model.FreelancerProfileModel](db)
	case entity.EntityTypeInvestor:
		return scanProfiles[model.InvestorProfileModel](db)
	case entity.EntityTypeStartup:
		return scanProfiles[model.StartupProfileModel](db)
	case entity.EntityTypeSpace:
		return scanProfiles[model.ProviderProfileModel](db)
	default:
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(string(entityType))
	}
}

func scanProfiles[M any, PM interface {
	*M
	model.ProfileRecord
}](db *gorm.DB) ([]*entity.Profile, error) {
	var rows []M
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, toProfileDomain(PM(&rows[i])))
	}

	return profiles, nil
}

func newProfileRecord(entityType entity.EntityType) (model.ProfileRecord, error) {
	switch entityType {
	case entity.EntityTypeFreelancer:
		return &model.FreelancerProfileModel{}, nil
	case entity.EntityTypeInvestor:
		return &model.InvestorProfileModel{}, nil
	case entity.EntityTypeStartup:
		return &model.StartupProfileModel{}, nil
	case entity.EntityTypeSpace:
		return &model.ProviderProfileModel{}, nil
	default:
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(string(entityType))
	}
}

// Mapper functions

func fromProfileDomain(profile *entity.Profile) (model.ProfileRecord, error) {
	base := model.ProfileBase{
		ID:          profile.ID,
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Headline:    profile.Headline,
		City:        profile.City,
		Latitude:    profile.Latitude,
		Longitude:   profile.Longitude,
		IsActive:    profile.IsActive,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}

	switch profile.Type {
	case entity.EntityTypeFreelancer:
		return &model.FreelancerProfileModel{
			ProfileBase: base,
			Skills:      pq.StringArray(profile.Skills),
			HourlyRate:  profile.HourlyRate,
		}, nil
	case entity.EntityTypeInvestor:
		return &model.InvestorProfileModel{
			ProfileBase: base,
			Sectors:     pq.StringArray(profile.Sectors),
			Stages:      pq.StringArray(profile.Stages),
			TicketMin:   profile.TicketMin,
			TicketMax:   profile.TicketMax,
		}, nil
	case entity.EntityTypeStartup:
		return &model.StartupProfileModel{
			ProfileBase: base,
			CompanyName: profile.CompanyName,
			Industry:    profile.Industry,
			Stage:       profile.Stage,
			TeamSize:    profile.TeamSize,
		}, nil
	case entity.EntityTypeSpace:
		return &model.ProviderProfileModel{
			ProfileBase: base,
			SpaceName:   profile.SpaceName,
			Category:    profile.Category,
			Capacity:    profile.Capacity,
			Amenities:   pq.StringArray(profile.Amenities),
		}, nil
	default:
		return nil, domainerrors.ErrUnknownEntityType.WithDetails(string(profile.Type))
	}
}

func toProfileDomain(profileM model.ProfileRecord) *entity.Profile {
	base := profileM.Base()
	profile := &entity.Profile{
		ID:          base.ID,
		UserID:      base.UserID,
		DisplayName: base.DisplayName,
		Headline:    base.Headline,
		City:        base.City,
		Latitude:    base.Latitude,
		Longitude:   base.Longitude,
		IsActive:    base.IsActive,
		CreatedAt:   base.CreatedAt,
		UpdatedAt:   base.UpdatedAt,
	}

	switch m := profileM.(type) {
	case *model.FreelancerProfileModel:
		profile.Type = entity.EntityTypeFreelancer
		profile.Skills = []string(m.Skills)
		profile.HourlyRate = m.HourlyRate
	case *model.InvestorProfileModel:
		profile.Type = entity.EntityTypeInvestor
		profile.Sectors = []string(m.Sectors)
		profile.Stages = []string(m.Stages)
		profile.TicketMin = m.TicketMin
		profile.TicketMax = m.TicketMax
	case *model.StartupProfileModel:
		profile.Type = entity.EntityTypeStartup
		profile.CompanyName = m.CompanyName
		profile.Industry = m.Industry
		profile.Stage = m.Stage
		profile.TeamSize = m.TeamSize
	case *model.ProviderProfileModel:
		profile.Type = entity.EntityTypeSpace
		profile.SpaceName = m.SpaceName
		profile.Category = m.Category
		profile.Capacity = m.Capacity
		profile.Amenities = []string(m.Amenities)
	}

	return profile
}
