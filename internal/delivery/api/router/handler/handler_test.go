package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"venture/internal/delivery/api/middleware"
	"venture/internal/delivery/api/validator"
	"venture/internal/domain/entity"
	domainerrors "venture/internal/domain/errors"
	mockUC "venture/internal/mocks/usecase"
	"venture/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	return e
}

// serve runs a single request through e with userID pre-authenticated.
func serve(e *echo.Echo, userID uuid.UUID, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("userID", userID)

			return next(c)
		}
	})
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestNearbyHandler_FindNearby(t *testing.T) {
	proximityUC := mockUC.NewMockProximityUsecase(t)
	h := NewNearbyHandler(NearbyHandlerParams{ProximityUC: proximityUC, Logger: slog.Default()})
	e := newTestEcho()
	e.GET("/nearby/:entityType", h.FindNearby)

	distance := 1.5
	profile := &entity.Profile{ID: uuid.New(), Type: entity.EntityTypeFreelancer, DisplayName: "Asha", IsActive: true}
	proximityUC.EXPECT().
		FindNearby(mock.Anything, mock.MatchedBy(func(in *usecase.NearbyInput) bool {
			return in.EntityType == "freelancer" &&
				*in.Latitude == 12.9716 && *in.Longitude == 77.5946 &&
				*in.RadiusKm == 5 && *in.Limit == 10 &&
				assert.ObjectsAreEqual([]string{"go,rust", "sql"}, in.Filters["skills"]) &&
				assert.ObjectsAreEqual([]string{"beng"}, in.Filters["city"])
		})).
		Return([]*entity.NearbyProfile{{Profile: profile, DistanceKm: &distance}}, nil)

	rec := serve(e, uuid.New(), http.MethodGet,
		"/nearby/freelancer?lat=12.9716&lng=77.5946&radius=5&limit=10&skills=go,rust&skills=sql&city=beng", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0]["display_name"])
	assert.Equal(t, 1.5, rows[0]["distance_km"])
}

func TestNearbyHandler_FindNearby_BadNumber(t *testing.T) {
	proximityUC := mockUC.NewMockProximityUsecase(t)
	h := NewNearbyHandler(NearbyHandlerParams{ProximityUC: proximityUC, Logger: slog.Default()})
	e := newTestEcho()
	e.GET("/nearby/:entityType", h.FindNearby)

	rec := serve(e, uuid.New(), http.MethodGet, "/nearby/freelancer?lat=north&lng=1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestNearbyHandler_FindNearby_UnknownEntityType(t *testing.T) {
	proximityUC := mockUC.NewMockProximityUsecase(t)
	h := NewNearbyHandler(NearbyHandlerParams{ProximityUC: proximityUC, Logger: slog.Default()})
	e := newTestEcho()
	e.GET("/nearby/:entityType", h.FindNearby)

	proximityUC.EXPECT().FindNearby(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUnknownEntityType.WithDetails("mentor"))

	rec := serve(e, uuid.New(), http.MethodGet, "/nearby/mentor?lat=1&lng=1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "UNKNOWN_ENTITY_TYPE", env.Error.Code)
	assert.Equal(t, "mentor", env.Error.Details)
}

func TestConnectionHandler_RequestConnection(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/connections/request", h.RequestConnection)

	actorID, toUserID := uuid.New(), uuid.New()
	created := entity.NewConnectionRequest(actorID, toUserID, "hi", time.Now())
	connectionUC.EXPECT().RequestConnection(mock.Anything, actorID, toUserID, "hi").Return(created, nil)

	body := `{"to_user_id":"` + toUserID.String() + `","message":" hi "}`
	rec := serve(e, actorID, http.MethodPost, "/connections/request", strings.NewReader(body))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got entity.ConnectionRequest
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, entity.ConnectionStatusPending, got.Status)
}

func TestConnectionHandler_RequestConnection_Duplicate(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/connections/request", h.RequestConnection)

	actorID, toUserID := uuid.New(), uuid.New()
	connectionUC.EXPECT().RequestConnection(mock.Anything, actorID, toUserID, "").
		Return(nil, domainerrors.ErrConnectionExists)

	body := `{"to_user_id":"` + toUserID.String() + `"}`
	rec := serve(e, actorID, http.MethodPost, "/connections/request", strings.NewReader(body))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONNECTION_REQUEST_EXISTS", decode(t, rec).Error.Code)
}

func TestConnectionHandler_RequestConnection_InvalidBody(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/connections/request", h.RequestConnection)

	rec := serve(e, uuid.New(), http.MethodPost, "/connections/request", strings.NewReader(`{"to_user_id":"not-a-uuid"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Message, "to_user_id")
}

func TestConnectionHandler_RespondToRequest(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.PATCH("/connections/respond", h.RespondToRequest)

	actorID, requestID := uuid.New(), uuid.New()
	connectionID := uuid.New()
	accepted := &entity.ConnectionRequest{ID: requestID, ToUserID: actorID, Status: entity.ConnectionStatusAccepted, ConnectionID: &connectionID}
	connectionUC.EXPECT().RespondToRequest(mock.Anything, actorID, requestID, entity.ConnectionActionAccept).Return(accepted, nil)

	body := `{"request_id":"` + requestID.String() + `","action":"accept"}`
	rec := serve(e, actorID, http.MethodPatch, "/connections/respond", strings.NewReader(body))

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.ConnectionRequest
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, entity.ConnectionStatusAccepted, got.Status)
	assert.Equal(t, &connectionID, got.ConnectionID)
}

func TestConnectionHandler_RespondToRequest_ForbiddenHidesDetails(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.PATCH("/connections/respond", h.RespondToRequest)

	actorID, requestID := uuid.New(), uuid.New()
	connectionUC.EXPECT().RespondToRequest(mock.Anything, actorID, requestID, entity.ConnectionActionReject).
		Return(nil, domainerrors.ErrForbidden.WithDetails("only the recipient can respond"))

	body := `{"request_id":"` + requestID.String() + `","action":"REJECT"}`
	rec := serve(e, actorID, http.MethodPatch, "/connections/respond", strings.NewReader(body))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestConnectionHandler_GetStatus(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, Logger: slog.Default()})
	e := newTestEcho()
	e.GET("/connections/status", h.GetStatus)

	actorID, toID := uuid.New(), uuid.New()
	connectionUC.EXPECT().GetStatus(mock.Anything, actorID, actorID, toID).Return(entity.ConnectionStatusNone, nil)

	rec := serve(e, actorID, http.MethodGet, "/connections/status?from="+actorID.String()+"&to="+toID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"NONE"}`, string(decode(t, rec).Data))
}

func TestProfileHandler_GetProfileQR(t *testing.T) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: slog.Default()})
	e := newTestEcho()
	e.GET("/profiles/:entityType/:id/qr", h.GetProfileQR)

	profileID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	profileUC.EXPECT().GenerateProfileQR(mock.Anything, "space", profileID).Return(png, nil)

	rec := serve(e, uuid.New(), http.MethodGet, "/profiles/space/"+profileID.String()+"/qr", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_CreateProfile(t *testing.T) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: slog.Default()})
	e := newTestEcho()
	e.POST("/profiles/:entityType", h.CreateProfile)

	actorID := uuid.New()
	profileUC.EXPECT().
		CreateProfile(mock.Anything, actorID, "investor", mock.MatchedBy(func(in *usecase.CreateProfileInput) bool {
			return in.DisplayName == "Seed Fund" && *in.Attributes.TicketMin == 100000 &&
				assert.ObjectsAreEqual([]string{"fintech"}, in.Attributes.Sectors)
		})).
		Return(&entity.Profile{ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeInvestor, DisplayName: "Seed Fund"}, nil)

	body := `{"display_name":"Seed Fund","attributes":{"sectors":["fintech"],"ticket_min":100000}}`
	rec := serve(e, actorID, http.MethodPost, "/profiles/investor", strings.NewReader(body))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProfileHandler_UpdateMyProfile_PartialAttributes(t *testing.T) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: slog.Default()})
	e := newTestEcho()
	e.PATCH("/profiles/:entityType/me", h.UpdateMyProfile)

	actorID := uuid.New()
	profileUC.EXPECT().
		UpdateProfile(mock.Anything, actorID, "freelancer", mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			attrs := in.Attributes
			return attrs != nil && *attrs.HourlyRate == 55 &&
				attrs.Skills == nil && attrs.Sectors == nil && in.DisplayName == nil
		})).
		Return(&entity.Profile{ID: uuid.New(), UserID: actorID, Type: entity.EntityTypeFreelancer}, nil)

	rec := serve(e, actorID, http.MethodPatch, "/profiles/freelancer/me", strings.NewReader(`{"attributes":{"hourly_rate":55}}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UpdateMyLocation_Validation(t *testing.T) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: slog.Default()})
	e := newTestEcho()
	e.PUT("/profiles/:entityType/me/location", h.UpdateMyLocation)

	rec := serve(e, uuid.New(), http.MethodPut, "/profiles/freelancer/me/location", strings.NewReader(`{"latitude":123,"longitude":1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarketHandler_Score(t *testing.T) {
	marketUC := mockUC.NewMockMarketUsecase(t)
	h := NewMarketHandler(MarketHandlerParams{MarketUC: marketUC, Logger: slog.Default()})
	e := newTestEcho()
	e.GET("/market/score", h.Score)

	marketUC.EXPECT().
		Score(mock.Anything, mock.MatchedBy(func(in *usecase.MarketScoreInput) bool {
			return *in.Latitude == 1 && *in.Longitude == 2 && in.RadiusKm == nil
		})).
		Return(&entity.MarketScore{Latitude: 1, Longitude: 2, RadiusKm: 5, Score: 12.3}, nil)

	rec := serve(e, uuid.New(), http.MethodGet, "/market/score?lat=1&lng=2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.MarketScore
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, 12.3, got.Score)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}
