package repository

import (
	"context"

	"venture/internal/domain/entity"
	"venture/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionRequestNotFound is returned when a connection request is not found.
	ErrConnectionRequestNotFound = errors.New("connection request not found")
	// ErrDuplicateConnectionRequest is returned when the user pair already has a request.
	ErrDuplicateConnectionRequest = errors.New("connection request already exists")
)

// ConnectionRepository defines the interface for connection request database operations.
type ConnectionRepository interface {
	// CreateRequest persists a new request. A unique violation on the pair key maps to
	// ErrDuplicateConnectionRequest.
	CreateRequest(ctx context.Context, request *entity.ConnectionRequest) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.ConnectionRequest, error)

	// FindRequestByIDForUpdate retrieves a request and locks its row until the transaction ends.
	FindRequestByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.ConnectionRequest, error)

	// FindRequestBetween retrieves the directed from -> to request.
	FindRequestBetween(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entity.ConnectionRequest, error)

	// FindRequestForPair retrieves the request for the unordered pair, in either direction.
	FindRequestForPair(ctx context.Context, userA, userB uuid.UUID) (*entity.ConnectionRequest, error)

	// UpdateRequestStatus saves status, connection id and responded time.
	UpdateRequestStatus(ctx context.Context, request *entity.ConnectionRequest) error

	// FindIncomingPending lists pending requests addressed to userID, newest first.
	FindIncomingPending(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectionRequest, error)

	// FindAcceptedByUser lists accepted requests in which userID participates, newest first.
	FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectionRequest, error)
}
