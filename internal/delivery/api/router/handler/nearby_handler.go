package handler

import (
	"log/slog"
	"net/http"

	"venture/internal/delivery/api/response"
	"venture/internal/domain/proximity"
	"venture/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NearbyHandlerParams holds dependencies for NearbyHandler, injected by Fx.
type NearbyHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// NearbyHandler serves location based discovery
type NearbyHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewNearbyHandler is the constructor for NearbyHandler
func NewNearbyHandler(params NearbyHandlerParams) *NearbyHandler {
	return &NearbyHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// FindNearby handles GET /nearby/:entityType. Multi-valued filters may be repeated or comma-separated.
func (h *NearbyHandler) FindNearby(c echo.Context) error {
	input := &usecase.NearbyInput{
		EntityType: c.Param("entityType"),
		Filters:    make(map[string][]string),
	}

	var err error
	if input.Latitude, err = queryFloat(c, "lat"); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}
	if input.Longitude, err = queryFloat(c, "lng"); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}
	if input.RadiusKm, err = queryFloat(c, "radius"); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}
	if input.Limit, err = queryInt(c, "limit"); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	for _, key := range proximity.FilterKeys {
		if values := c.QueryParams()[key]; len(values) > 0 {
			input.Filters[key] = values
		}
	}

	profiles, err := h.proximityUC.FindNearby(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}
