// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"venture/config"
	"venture/internal/delivery/api/middleware"
	"venture/internal/delivery/api/router/handler"
	"venture/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NearbyHandler     *handler.NearbyHandler
	ConnectionHandler *handler.ConnectionHandler
	ProfileHandler    *handler.ProfileHandler
	MarketHandler     *handler.MarketHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Metrics `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	nearbyHandler     *handler.NearbyHandler
	connectionHandler *handler.ConnectionHandler
	profileHandler    *handler.ProfileHandler
	marketHandler     *handler.MarketHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Metrics
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		nearbyHandler:     params.NearbyHandler,
		connectionHandler: params.ConnectionHandler,
		profileHandler:    params.ProfileHandler,
		marketHandler:     params.MarketHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Discovery
	apiV1.GET("/nearby/:entityType", r.nearbyHandler.FindNearby)

	// Connection request workflow
	connectionsGroup := apiV1.Group("/connections")
	{
		connectionsGroup.GET("", r.connectionHandler.ListConnections)
		connectionsGroup.GET("/status", r.connectionHandler.GetStatus)
		connectionsGroup.GET("/requests", r.connectionHandler.ListIncoming)
		connectionsGroup.POST("/request", r.connectionHandler.RequestConnection)
		connectionsGroup.PATCH("/respond", r.connectionHandler.RespondToRequest)
		connectionsGroup.POST("/qr", r.connectionHandler.ConnectByQR)
	}

	// Role profiles
	profilesGroup := apiV1.Group("/profiles/:entityType")
	{
		profilesGroup.POST("", r.profileHandler.CreateProfile)
		profilesGroup.GET("/me", r.profileHandler.GetMyProfile)
		profilesGroup.PATCH("/me", r.profileHandler.UpdateMyProfile)
		profilesGroup.PUT("/me/location", r.profileHandler.UpdateMyLocation)
		profilesGroup.GET("/:id", r.profileHandler.GetProfile)
		profilesGroup.GET("/:id/qr", r.profileHandler.GetProfileQR)
	}

	// Market score heuristic
	apiV1.GET("/market/score", r.marketHandler.Score)
}
