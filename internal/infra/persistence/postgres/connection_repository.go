package postgres

import (
	"context"

	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/repository"
	"venture/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// CreateRequest persists a new connection request.
func (repo *connectionRepository) CreateRequest(ctx context.Context, request *entity.ConnectionRequest) error {
	requestM := fromConnectionRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConnectionRequest
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid connection request")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create connection request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *connectionRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.ConnectionRequest, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindRequestByIDForUpdate retrieves a request and holds a row lock until the transaction ends.
// It must run inside TransactionManager.Execute.
func (repo *connectionRepository) FindRequestByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.ConnectionRequest, error) {
	db := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findOne(db, "id = ?", id)
}

// FindRequestBetween retrieves the directed from -> to request.
func (repo *connectionRepository) FindRequestBetween(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entity.ConnectionRequest, error) {
	return repo.findOne(repo.db.WithContext(ctx), "from_user_id = ? AND to_user_id = ?", fromUserID, toUserID)
}

// FindRequestForPair retrieves the request for the unordered pair.
func (repo *connectionRepository) FindRequestForPair(ctx context.Context, userA, userB uuid.UUID) (*entity.ConnectionRequest, error) {
	return repo.findOne(repo.db.WithContext(ctx), "pair_key = ?", entity.PairKey(userA, userB))
}

func (repo *connectionRepository) findOne(db *gorm.DB, query string, args ...any) (*entity.ConnectionRequest, error) {
	var requestM model.ConnectionRequestModel

	if err := db.Where(query, args...).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection request")
	}

	return toConnectionRequestDomain(&requestM), nil
}

// UpdateRequestStatus saves status, connection id and responded time.
func (repo *connectionRepository) UpdateRequestStatus(ctx context.Context, request *entity.ConnectionRequest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConnectionRequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"status":        string(request.Status),
			"connection_id": request.ConnectionID,
			"responded_at":  request.RespondedAt,
			"updated_at":    request.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("connection id already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update connection request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionRequestNotFound
	}

	return nil
}

// FindIncomingPending lists pending requests addressed to userID, newest first.
func (repo *connectionRepository) FindIncomingPending(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectionRequest, error) {
	var requestModels []*model.ConnectionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", userID, string(entity.ConnectionStatusPending)).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find incoming connection requests")
	}

	return toConnectionRequestDomains(requestModels), nil
}

// FindAcceptedByUser lists accepted requests in which userID participates, newest first.
func (repo *connectionRepository) FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectionRequest, error) {
	var requestModels []*model.ConnectionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", userID, userID, string(entity.ConnectionStatusAccepted)).
		Order("responded_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connections")
	}

	return toConnectionRequestDomains(requestModels), nil
}

// Mapper functions

func fromConnectionRequestDomain(request *entity.ConnectionRequest) *model.ConnectionRequestModel {
	return &model.ConnectionRequestModel{
		ID:           request.ID,
		FromUserID:   request.FromUserID,
		ToUserID:     request.ToUserID,
		PairKey:      entity.PairKey(request.FromUserID, request.ToUserID),
		Status:       string(request.Status),
		Message:      request.Message,
		ConnectionID: request.ConnectionID,
		RespondedAt:  request.RespondedAt,
		CreatedAt:    request.CreatedAt,
		UpdatedAt:    request.UpdatedAt,
	}
}

func toConnectionRequestDomain(requestM *model.ConnectionRequestModel) *entity.ConnectionRequest {
	return &entity.ConnectionRequest{
		ID:           requestM.ID,
		FromUserID:   requestM.FromUserID,
		ToUserID:     requestM.ToUserID,
		Status:       entity.ConnectionStatus(requestM.Status),
		Message:      requestM.Message,
		ConnectionID: requestM.ConnectionID,
		RespondedAt:  requestM.RespondedAt,
		CreatedAt:    requestM.CreatedAt,
		UpdatedAt:    requestM.UpdatedAt,
	}
}

func toConnectionRequestDomains(requestModels []*model.ConnectionRequestModel) []*entity.ConnectionRequest {
	requests := make([]*entity.ConnectionRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toConnectionRequestDomain(requestM))
	}

	return requests
}
