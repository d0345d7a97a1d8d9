package handler

import (
	"log/slog"
	"net/http"

	"venture/internal/delivery/api/response"
	"venture/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MarketHandlerParams holds dependencies for MarketHandler, injected by Fx.
type MarketHandlerParams struct {
	fx.In

	MarketUC usecase.MarketUsecase
	Logger   *slog.Logger
}

// MarketHandler serves the market score heuristic
type MarketHandler struct {
	marketUC usecase.MarketUsecase
	logger   *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler
func NewMarketHandler(params MarketHandlerParams) *MarketHandler {
	return &MarketHandler{
		marketUC: params.MarketUC,
		logger:   params.Logger,
	}
}

// Score handles GET /market/score?lat=&lng=&radius=
func (h *MarketHandler) Score(c echo.Context) error {
	input := &usecase.MarketScoreInput{}

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

	score, err := h.marketUC.Score(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, score)
}
