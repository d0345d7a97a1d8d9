package usecase

import (
	"context"

	"venture/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionUsecase defines the interface for the connection request workflow.
// actorID is always the authenticated caller.
type ConnectionUsecase interface {
	// GetStatus returns the status of the directed from -> to request, NONE when absent.
	// The lookup is one-way: after A -> B is accepted, from=B&to=A still reports NONE, while
	// RequestConnection rejects a B -> A request because it checks both directions.
	GetStatus(ctx context.Context, actorID, fromUserID, toUserID uuid.UUID) (entity.ConnectionStatus, error)

	// RequestConnection sends a new request from the actor to toUserID.
	RequestConnection(ctx context.Context, actorID, toUserID uuid.UUID, message string) (*entity.ConnectionRequest, error)

	// RespondToRequest accepts or rejects a pending request addressed to the actor.
	RespondToRequest(ctx context.Context, actorID, requestID uuid.UUID, action entity.ConnectionAction) (*entity.ConnectionRequest, error)

	// ListIncoming lists pending requests addressed to the actor.
	ListIncoming(ctx context.Context, actorID uuid.UUID) ([]*entity.ConnectionRequest, error)

	// ListConnections lists accepted connections of the actor.
	ListConnections(ctx context.Context, actorID uuid.UUID) ([]*entity.ConnectionRequest, error)

	// ConnectByQR resolves a scanned connect code and sends a request to the profile owner.
	ConnectByQR(ctx context.Context, actorID uuid.UUID, qrData, message string) (*entity.ConnectionRequest, error)
}
