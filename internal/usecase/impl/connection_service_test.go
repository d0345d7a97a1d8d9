package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/repository"
	"venture/internal/domain/service"
	mockRepo "venture/internal/mocks/repository"
	mockSvc "venture/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type connectionMocks struct {
	profileRepo    *mockRepo.MockProfileRepository
	connectionRepo *mockRepo.MockConnectionRepository
	txManager      *mockRepo.MockTransactionManager
	publisher      *mockSvc.MockEventPublisher
	qrcodeService  *mockSvc.MockQRCodeService
}

func newConnectionServiceForTest(t *testing.T) (*connectionService, *connectionMocks) {
	m := &connectionMocks{
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		qrcodeService:  mockSvc.NewMockQRCodeService(t),
	}

	svc := NewConnectionService(ConnectionServiceParams{
		ProfileRepo:    m.profileRepo,
		ConnectionRepo: m.connectionRepo,
		TxManager:      m.txManager,
		Publisher:      m.publisher,
		QRCodeService:  m.qrcodeService,
		Logger:         slog.Default(),
	}).(*connectionService)

	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	return svc, m
}

// expectTransaction runs the transaction callback against a factory that hands out connectionRepo.
func (m *connectionMocks) expectTransaction(t *testing.T, connectionRepo repository.ConnectionRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewConnectionRepository().Return(connectionRepo)

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestConnectionService_RequestConnection_Success(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	actorID, toUserID := uuid.New(), uuid.New()

	m.profileRepo.EXPECT().HasActiveProfile(ctx, toUserID).Return(true, nil)
	m.connectionRepo.EXPECT().FindRequestForPair(ctx, actorID, toUserID).Return(nil, repository.ErrConnectionRequestNotFound)
	m.connectionRepo.EXPECT().CreateRequest(ctx, mock.AnythingOfType("*entity.ConnectionRequest")).Return(nil)
	m.publisher.EXPECT().
		PublishConnectionEvent(ctx, mock.MatchedBy(func(e *service.ConnectionEvent) bool {
			return e.Type == service.EventConnectionRequested &&
				e.FromUserID == actorID.String() &&
				e.ToUserID == toUserID.String() &&
				e.Status == "PENDING"
		})).
		Return(nil)

	request, err := svc.RequestConnection(ctx, actorID, toUserID, "hello")
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusPending, request.Status)
	assert.Equal(t, actorID, request.FromUserID)
	assert.Equal(t, toUserID, request.ToUserID)
	assert.Equal(t, "hello", request.Message)
	assert.Nil(t, request.ConnectionID)
}

func TestConnectionService_RequestConnection_DuplicatePending(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	actorID, toUserID := uuid.New(), uuid.New()

	existing := entity.NewConnectionRequest(actorID, toUserID, "", time.Now())
	m.profileRepo.EXPECT().HasActiveProfile(ctx, toUserID).Return(true, nil)
	m.connectionRepo.EXPECT().FindRequestForPair(ctx, actorID, toUserID).Return(existing, nil)

	request, err := svc.RequestConnection(ctx, actorID, toUserID, "again")
	require.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	m.connectionRepo.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything)
}

func TestConnectionService_RequestConnection_ReverseDirectionAndTerminal(t *testing.T) {
	actorID, otherID := uuid.New(), uuid.New()
	reverse := entity.NewConnectionRequest(otherID, actorID, "", time.Now())
	rejected := entity.NewConnectionRequest(actorID, otherID, "", time.Now())
	rejected.Status = entity.ConnectionStatusRejected

	for name, existing := range map[string]*entity.ConnectionRequest{"reverse pending": reverse, "rejected": rejected} {
		t.Run(name, func(t *testing.T) {
			svc, m := newConnectionServiceForTest(t)
			ctx := context.Background()

			m.profileRepo.EXPECT().HasActiveProfile(ctx, otherID).Return(true, nil)
			m.connectionRepo.EXPECT().FindRequestForPair(ctx, actorID, otherID).Return(existing, nil)

			_, err := svc.RequestConnection(ctx, actorID, otherID, "")
			assert.True(t, errors.Is(err, domainerrors.ErrConnectionExists))
		})
	}
}

func TestConnectionService_RequestConnection_UniqueRace(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	actorID, toUserID := uuid.New(), uuid.New()

	m.profileRepo.EXPECT().HasActiveProfile(ctx, toUserID).Return(true, nil)
	m.connectionRepo.EXPECT().FindRequestForPair(ctx, actorID, toUserID).Return(nil, repository.ErrConnectionRequestNotFound)
	m.connectionRepo.EXPECT().CreateRequest(ctx, mock.Anything).Return(repository.ErrDuplicateConnectionRequest)

	_, err := svc.RequestConnection(ctx, actorID, toUserID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionExists))
}

func TestConnectionService_RequestConnection_ToSelf(t *testing.T) {
	svc, _ := newConnectionServiceForTest(t)
	actorID := uuid.New()

	_, err := svc.RequestConnection(context.Background(), actorID, actorID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestConnectionService_RequestConnection_RecipientWithoutProfile(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	actorID, toUserID := uuid.New(), uuid.New()

	m.profileRepo.EXPECT().HasActiveProfile(ctx, toUserID).Return(false, nil)

	_, err := svc.RequestConnection(ctx, actorID, toUserID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestConnectionService_RespondToRequest_Accept(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	fromID, actorID := uuid.New(), uuid.New()
	pending := entity.NewConnectionRequest(fromID, actorID, "", time.Now())

	m.expectTransaction(t, m.connectionRepo)
	m.connectionRepo.EXPECT().FindRequestByIDForUpdate(ctx, pending.ID).Return(pending, nil)
	m.connectionRepo.EXPECT().
		UpdateRequestStatus(ctx, mock.MatchedBy(func(r *entity.ConnectionRequest) bool {
			return r.Status == entity.ConnectionStatusAccepted && r.ConnectionID != nil && r.RespondedAt != nil
		})).
		Return(nil)
	// Publish failures never reach the caller
	m.publisher.EXPECT().
		PublishConnectionEvent(ctx, mock.MatchedBy(func(e *service.ConnectionEvent) bool {
			return e.Type == service.EventConnectionAccepted && e.ConnectionID != ""
		})).
		Return(errors.New("broker unavailable"))

	request, err := svc.RespondToRequest(ctx, actorID, pending.ID, entity.ConnectionActionAccept)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusAccepted, request.Status)
	require.NotNil(t, request.ConnectionID)
	assert.NotEqual(t, uuid.Nil, *request.ConnectionID)
	require.NotNil(t, request.RespondedAt)
	assert.Equal(t, svc.now(), *request.RespondedAt)
}

func TestConnectionService_RespondToRequest_Reject(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	fromID, actorID := uuid.New(), uuid.New()
	pending := entity.NewConnectionRequest(fromID, actorID, "", time.Now())

	m.expectTransaction(t, m.connectionRepo)
	m.connectionRepo.EXPECT().FindRequestByIDForUpdate(ctx, pending.ID).Return(pending, nil)
	m.connectionRepo.EXPECT().UpdateRequestStatus(ctx, pending).Return(nil)
	m.publisher.EXPECT().
		PublishConnectionEvent(ctx, mock.MatchedBy(func(e *service.ConnectionEvent) bool {
			return e.Type == service.EventConnectionRejected && e.ConnectionID == ""
		})).
		Return(nil)

	request, err := svc.RespondToRequest(ctx, actorID, pending.ID, entity.ConnectionActionReject)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusRejected, request.Status)
	assert.Nil(t, request.ConnectionID)
}

func TestConnectionService_RespondToRequest_NotRecipient(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	fromID, toID := uuid.New(), uuid.New()
	pending := entity.NewConnectionRequest(fromID, toID, "", time.Now())

	m.expectTransaction(t, m.connectionRepo)
	m.connectionRepo.EXPECT().FindRequestByIDForUpdate(ctx, pending.ID).Return(pending, nil)

	// The sender cannot answer their own request
	_, err := svc.RespondToRequest(ctx, fromID, pending.ID, entity.ConnectionActionAccept)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode())
	assert.Equal(t, entity.ConnectionStatusPending, pending.Status)
}

func TestConnectionService_RespondToRequest_NotPending(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	fromID, actorID := uuid.New(), uuid.New()
	accepted := entity.NewConnectionRequest(fromID, actorID, "", time.Now())
	connectionID := uuid.New()
	accepted.Status = entity.ConnectionStatusAccepted
	accepted.ConnectionID = &connectionID

	m.expectTransaction(t, m.connectionRepo)
	m.connectionRepo.EXPECT().FindRequestByIDForUpdate(ctx, accepted.ID).Return(accepted, nil)

	_, err := svc.RespondToRequest(ctx, actorID, accepted.ID, entity.ConnectionActionAccept)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.Equal(t, connectionID, *accepted.ConnectionID)
}

func TestConnectionService_RespondToRequest_NotFound(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	requestID := uuid.New()

	m.expectTransaction(t, m.connectionRepo)
	m.connectionRepo.EXPECT().FindRequestByIDForUpdate(ctx, requestID).Return(nil, repository.ErrConnectionRequestNotFound)

	_, err := svc.RespondToRequest(ctx, uuid.New(), requestID, entity.ConnectionActionReject)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionNotFound))
}

func TestConnectionService_RespondToRequest_InvalidAction(t *testing.T) {
	svc, _ := newConnectionServiceForTest(t)

	_, err := svc.RespondToRequest(context.Background(), uuid.New(), uuid.New(), entity.ConnectionAction("MAYBE"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestConnectionService_GetStatus(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	fromID, toID := uuid.New(), uuid.New()

	m.connectionRepo.EXPECT().FindRequestBetween(ctx, fromID, toID).Return(nil, repository.ErrConnectionRequestNotFound).Once()

	status, err := svc.GetStatus(ctx, toID, fromID, toID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusNone, status)

	pending := entity.NewConnectionRequest(fromID, toID, "", time.Now())
	m.connectionRepo.EXPECT().FindRequestBetween(ctx, fromID, toID).Return(pending, nil).Once()

	status, err = svc.GetStatus(ctx, fromID, fromID, toID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusPending, status)
}

func TestConnectionService_GetStatus_IsDirectional(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	aliceID, bobID := uuid.New(), uuid.New()

	accepted := entity.NewConnectionRequest(aliceID, bobID, "", time.Now())
	require.NoError(t, accepted.Apply(entity.ConnectionActionAccept, time.Now()))

	m.connectionRepo.EXPECT().FindRequestBetween(ctx, aliceID, bobID).Return(accepted, nil)
	m.connectionRepo.EXPECT().FindRequestBetween(ctx, bobID, aliceID).Return(nil, repository.ErrConnectionRequestNotFound)

	status, err := svc.GetStatus(ctx, bobID, aliceID, bobID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusAccepted, status)

	status, err = svc.GetStatus(ctx, bobID, bobID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusNone, status)

	// The reverse request is still refused because the pair already has a record
	m.profileRepo.EXPECT().HasActiveProfile(ctx, aliceID).Return(true, nil)
	m.connectionRepo.EXPECT().FindRequestForPair(ctx, bobID, aliceID).Return(accepted, nil)

	_, err = svc.RequestConnection(ctx, bobID, aliceID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionExists))
}

func TestConnectionService_GetStatus_NotParticipant(t *testing.T) {
	svc, _ := newConnectionServiceForTest(t)

	_, err := svc.GetStatus(context.Background(), uuid.New(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotParticipant))
}

func TestConnectionService_ConnectByQR(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	actorID, ownerID, profileID := uuid.New(), uuid.New(), uuid.New()

	m.qrcodeService.EXPECT().ParseConnectQR("payload").Return(entity.EntityTypeInvestor, profileID, nil)
	m.profileRepo.EXPECT().FindProfileByID(ctx, entity.EntityTypeInvestor, profileID).
		Return(&entity.Profile{ID: profileID, UserID: ownerID, Type: entity.EntityTypeInvestor, IsActive: true}, nil)
	m.profileRepo.EXPECT().HasActiveProfile(ctx, ownerID).Return(true, nil)
	m.connectionRepo.EXPECT().FindRequestForPair(ctx, actorID, ownerID).Return(nil, repository.ErrConnectionRequestNotFound)
	m.connectionRepo.EXPECT().CreateRequest(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishConnectionEvent(ctx, mock.Anything).Return(nil)

	request, err := svc.ConnectByQR(ctx, actorID, "payload", "met at the demo day")
	require.NoError(t, err)
	assert.Equal(t, ownerID, request.ToUserID)
}

func TestConnectionService_ConnectByQR_InvalidCode(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)

	m.qrcodeService.EXPECT().ParseConnectQR("garbage").Return(entity.EntityType(""), uuid.Nil, errors.New("bad payload"))

	_, err := svc.ConnectByQR(context.Background(), uuid.New(), "garbage", "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestConnectionService_ListIncoming(t *testing.T) {
	svc, m := newConnectionServiceForTest(t)
	ctx := context.Background()
	actorID := uuid.New()
	pending := []*entity.ConnectionRequest{entity.NewConnectionRequest(uuid.New(), actorID, "", time.Now())}

	m.connectionRepo.EXPECT().FindIncomingPending(ctx, actorID).Return(pending, nil)

	requests, err := svc.ListIncoming(ctx, actorID)
	require.NoError(t, err)
	assert.Equal(t, pending, requests)
}
