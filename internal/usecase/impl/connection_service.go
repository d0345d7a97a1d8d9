package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "venture/internal/delivery/context"
	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/repository"
	"venture/internal/domain/service"
	"venture/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type connectionService struct {
	profileRepo    repository.ProfileRepository
	connectionRepo repository.ConnectionRepository
	txManager      repository.TransactionManager
	publisher      service.EventPublisher
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
	now            func() time.Time
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	ProfileRepo    repository.ProfileRepository
	ConnectionRepo repository.ConnectionRepository
	TxManager      repository.TransactionManager
	Publisher      service.EventPublisher
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		profileRepo:    params.ProfileRepo,
		connectionRepo: params.ConnectionRepo,
		txManager:      params.TxManager,
		publisher:      params.Publisher,
		qrcodeService:  params.QRCodeService,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetStatus returns the status of the directed from -> to request. The reverse direction is not
// consulted, unlike RequestConnection which refuses a request when either direction exists.
func (s *connectionService) GetStatus(ctx context.Context, actorID, fromUserID, toUserID uuid.UUID) (entity.ConnectionStatus, error) {
	if actorID != fromUserID && actorID != toUserID {
		return "", domainerrors.ErrNotParticipant
	}

	request, err := s.connectionRepo.FindRequestBetween(ctx, fromUserID, toUserID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionRequestNotFound) {
			return entity.ConnectionStatusNone, nil
		}

		return "", errors.Wrap(err, "failed to find connection request")
	}

	return request.Status, nil
}

// RequestConnection creates a PENDING request unless the pair already has one in either direction.
func (s *connectionService) RequestConnection(ctx context.Context, actorID, toUserID uuid.UUID, message string) (*entity.ConnectionRequest, error) {
	if toUserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("to_user_id is required")
	}
	if toUserID == actorID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot send a connection request to yourself")
	}

	hasProfile, err := s.profileRepo.HasActiveProfile(ctx, toUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check recipient profile")
	}
	if !hasProfile {
		return nil, domainerrors.ErrProfileNotFound.WithDetails("recipient has no active profile")
	}

	existing, err := s.connectionRepo.FindRequestForPair(ctx, actorID, toUserID)
	if err != nil && !errors.Is(err, repository.ErrConnectionRequestNotFound) {
		return nil, errors.Wrap(err, "failed to find connection request for pair")
	}
	if existing != nil {
		return nil, domainerrors.ErrConnectionExists.WithDetails("status " + existing.Status.String())
	}

	request := entity.NewConnectionRequest(actorID, toUserID, message, s.now())
	if err := s.connectionRepo.CreateRequest(ctx, request); err != nil {
		if errors.Is(err, repository.ErrDuplicateConnectionRequest) {
			return nil, domainerrors.ErrConnectionExists
		}

		return nil, errors.Wrap(err, "failed to create connection request")
	}

	s.log(ctx).Info("Connection requested",
		slog.String("request_id", request.ID.String()),
		slog.String("from_user_id", actorID.String()),
		slog.String("to_user_id", toUserID.String()),
	)
	s.publish(ctx, service.EventConnectionRequested, request)

	return request, nil
}

// RespondToRequest applies the recipient's decision under a row lock.
func (s *connectionService) RespondToRequest(ctx context.Context, actorID, requestID uuid.UUID, action entity.ConnectionAction) (*entity.ConnectionRequest, error) {
	if !action.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("action must be ACCEPT or REJECT")
	}

	var request *entity.ConnectionRequest

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connectionRepo := repoFactory.NewConnectionRepository()

		found, err := connectionRepo.FindRequestByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionRequestNotFound) {
				return domainerrors.ErrConnectionNotFound
			}

			return errors.Wrap(err, "failed to lock connection request")
		}

		if found.ToUserID != actorID {
			return domainerrors.ErrForbidden.WithDetails("only the recipient can respond to a connection request")
		}

		if err := found.Apply(action, s.now()); err != nil {
			if errors.Is(err, entity.ErrTransitionNotAllowed) {
				return domainerrors.ErrInvalidTransition.WithDetails("status " + found.Status.String())
			}

			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		if err := connectionRepo.UpdateRequestStatus(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update connection request")
		}

		request = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Connection request answered",
		slog.String("request_id", request.ID.String()),
		slog.String("status", request.Status.String()),
	)

	eventType := service.EventConnectionRejected
	if request.Status == entity.ConnectionStatusAccepted {
		eventType = service.EventConnectionAccepted
	}
	s.publish(ctx, eventType, request)

	return request, nil
}

// ListIncoming lists pending requests addressed to the actor.
func (s *connectionService) ListIncoming(ctx context.Context, actorID uuid.UUID) ([]*entity.ConnectionRequest, error) {
	requests, err := s.connectionRepo.FindIncomingPending(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incoming connection requests")
	}

	return requests, nil
}

// ListConnections lists accepted connections of the actor.
func (s *connectionService) ListConnections(ctx context.Context, actorID uuid.UUID) ([]*entity.ConnectionRequest, error) {
	requests, err := s.connectionRepo.FindAcceptedByUser(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return requests, nil
}

// ConnectByQR resolves a scanned connect code and sends a request to the profile owner.
func (s *connectionService) ConnectByQR(ctx context.Context, actorID uuid.UUID, qrData, message string) (*entity.ConnectionRequest, error) {
	entityType, profileID, err := s.qrcodeService.ParseConnectQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid QR code")
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, entityType, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}
	if !profile.IsActive {
		return nil, domainerrors.ErrProfileNotFound
	}

	return s.RequestConnection(ctx, actorID, profile.UserID, message)
}

// publish sends a lifecycle event. Failures are logged and never returned.
func (s *connectionService) publish(ctx context.Context, eventType string, request *entity.ConnectionRequest) {
	if s.publisher == nil {
		return
	}

	event := &service.ConnectionEvent{
		RequestID:           deliverycontext.GetRequestIDFromContext(ctx),
		Type:                eventType,
		ConnectionRequestID: request.ID.String(),
		FromUserID:          request.FromUserID.String(),
		ToUserID:            request.ToUserID.String(),
		Status:              request.Status.String(),
		OccurredAt:          s.now(),
	}
	if request.ConnectionID != nil {
		event.ConnectionID = request.ConnectionID.String()
	}

	if err := s.publisher.PublishConnectionEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish connection event",
			slog.String("type", eventType),
			slog.String("request_id", request.ID.String()),
			slog.Any("error", err),
		)
	}
}
