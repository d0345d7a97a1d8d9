package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"venture/internal/delivery/api/middleware"
	"venture/internal/delivery/api/response"
	"venture/internal/domain/entity"
	"venture/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// ConnectionHandler holds dependencies for connection request handlers
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

// RequestConnectionRequest represents the request body for sending a connection request
type RequestConnectionRequest struct {
	ToUserID string `json:"to_user_id" validate:"required,uuid"`
	Message  string `json:"message" validate:"max=500"`
}

// RespondRequest represents the request body for answering a connection request
type RespondRequest struct {
	RequestID string `json:"request_id" validate:"required,uuid"`
	Action    string `json:"action" validate:"required"`
}

// ConnectByQRRequest represents the request body for connecting through a scanned QR code
type ConnectByQRRequest struct {
	QRData  string `json:"qr_data" validate:"required"`
	Message string `json:"message" validate:"max=500"`
}

// StatusResponse is the body of the status endpoint
type StatusResponse struct {
	Status entity.ConnectionStatus `json:"status"`
}

// GetStatus handles GET /connections/status?from=&to=. The status is directional; a request in
// the opposite direction is reported only when from and to are swapped.
func (h *ConnectionHandler) GetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fromUserID, err := uuid.Parse(c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "from must be a valid user ID")
	}

	toUserID, err := uuid.Parse(c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "to must be a valid user ID")
	}

	status, err := h.connectionUC.GetStatus(c.Request().Context(), userID, fromUserID, toUserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, StatusResponse{Status: status})
}

// RequestConnection handles POST /connections/request
func (h *ConnectionHandler) RequestConnection(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RequestConnectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connection request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "to_user_id must be a valid user ID")
	}

	request, err := h.connectionUC.RequestConnection(c.Request().Context(), userID, toUserID, strings.TrimSpace(req.Message))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// RespondToRequest handles PATCH /connections/respond
func (h *ConnectionHandler) RespondToRequest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid respond input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "request_id must be a valid ID")
	}

	action := entity.ConnectionAction(strings.ToUpper(strings.TrimSpace(req.Action)))

	request, err := h.connectionUC.RespondToRequest(c.Request().Context(), userID, requestID, action)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// ListIncoming handles GET /connections/requests
func (h *ConnectionHandler) ListIncoming(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.connectionUC.ListIncoming(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ListConnections handles GET /connections
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	connections, err := h.connectionUC.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connections)
}

// ConnectByQR handles POST /connections/qr
func (h *ConnectionHandler) ConnectByQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConnectByQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	request, err := h.connectionUC.ConnectByQR(c.Request().Context(), userID, req.QRData, strings.TrimSpace(req.Message))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}
