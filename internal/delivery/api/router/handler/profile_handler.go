package handler

import (
	"log/slog"
	"net/http"

	"venture/internal/delivery/api/middleware"
	"venture/internal/delivery/api/response"
	"venture/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for role profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileAttributesRequest carries role specific fields; only those of the path's type are used
type ProfileAttributesRequest struct {
	Skills      []string `json:"skills" validate:"omitempty,max=50,dive,max=64"`
	HourlyRate  *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Sectors     []string `json:"sectors" validate:"omitempty,max=50,dive,max=64"`
	Stages      []string `json:"stages" validate:"omitempty,max=20,dive,max=64"`
	TicketMin   *int64   `json:"ticket_min" validate:"omitempty,gte=0"`
	TicketMax   *int64   `json:"ticket_max" validate:"omitempty,gte=0"`
	CompanyName string   `json:"company_name" validate:"max=200"`
	Industry    string   `json:"industry" validate:"max=100"`
	Stage       string   `json:"stage" validate:"max=64"`
	TeamSize    int      `json:"team_size" validate:"gte=0"`
	SpaceName   string   `json:"space_name" validate:"max=200"`
	Category    string   `json:"category" validate:"max=100"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Amenities   []string `json:"amenities" validate:"omitempty,max=50,dive,max=64"`
}

// ProfileAttributesPatchRequest carries the role specific fields of a partial update; omitted
// fields keep their stored value and an empty list clears one
type ProfileAttributesPatchRequest struct {
	Skills      *[]string `json:"skills,omitempty" validate:"omitempty,max=50,dive,max=64"`
	HourlyRate  *float64  `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	Sectors     *[]string `json:"sectors,omitempty" validate:"omitempty,max=50,dive,max=64"`
	Stages      *[]string `json:"stages,omitempty" validate:"omitempty,max=20,dive,max=64"`
	TicketMin   *int64    `json:"ticket_min,omitempty" validate:"omitempty,gte=0"`
	TicketMax   *int64    `json:"ticket_max,omitempty" validate:"omitempty,gte=0"`
	CompanyName *string   `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Industry    *string   `json:"industry,omitempty" validate:"omitempty,max=100"`
	Stage       *string   `json:"stage,omitempty" validate:"omitempty,max=64"`
	TeamSize    *int      `json:"team_size,omitempty" validate:"omitempty,gte=0"`
	SpaceName   *string   `json:"space_name,omitempty" validate:"omitempty,max=200"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Capacity    *int      `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Amenities   *[]string `json:"amenities,omitempty" validate:"omitempty,max=50,dive,max=64"`
}

// CreateProfileRequest represents the request body for creating a role profile
type CreateProfileRequest struct {
	DisplayName string                   `json:"display_name" validate:"required,max=120"`
	Headline    string                   `json:"headline" validate:"max=280"`
	City        string                   `json:"city" validate:"max=120"`
	Latitude    *float64                 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64                 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Attributes  ProfileAttributesRequest `json:"attributes"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	DisplayName *string                        `json:"display_name,omitempty" validate:"omitempty,max=120"`
	Headline    *string                        `json:"headline,omitempty" validate:"omitempty,max=280"`
	IsActive    *bool                          `json:"is_active,omitempty"`
	Attributes  *ProfileAttributesPatchRequest `json:"attributes,omitempty"`
}

// UpdateLocationRequest represents the location picker payload
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	City      *string  `json:"city,omitempty" validate:"omitempty,max=120"`
	Clear     bool     `json:"clear"`
}

func (r *ProfileAttributesRequest) toInput() usecase.ProfileAttributes {
	return usecase.ProfileAttributes{
		Skills:      r.Skills,
		HourlyRate:  r.HourlyRate,
		Sectors:     r.Sectors,
		Stages:      r.Stages,
		TicketMin:   r.TicketMin,
		TicketMax:   r.TicketMax,
		CompanyName: r.CompanyName,
		Industry:    r.Industry,
		Stage:       r.Stage,
		TeamSize:    r.TeamSize,
		SpaceName:   r.SpaceName,
		Category:    r.Category,
		Capacity:    r.Capacity,
		Amenities:   r.Amenities,
	}
}

func (r *ProfileAttributesPatchRequest) toInput() *usecase.ProfileAttributesPatch {
	return &usecase.ProfileAttributesPatch{
		Skills:      r.Skills,
		HourlyRate:  r.HourlyRate,
		Sectors:     r.Sectors,
		Stages:      r.Stages,
		TicketMin:   r.TicketMin,
		TicketMax:   r.TicketMax,
		CompanyName: r.CompanyName,
		Industry:    r.Industry,
		Stage:       r.Stage,
		TeamSize:    r.TeamSize,
		SpaceName:   r.SpaceName,
		Category:    r.Category,
		Capacity:    r.Capacity,
		Amenities:   r.Amenities,
	}
}

// CreateProfile handles POST /profiles/:entityType
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.CreateProfileInput{
		DisplayName: req.DisplayName,
		Headline:    req.Headline,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Attributes:  req.Attributes.toInput(),
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), userID, c.Param("entityType"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// GetMyProfile handles GET /profiles/:entityType/me
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetMyProfile(c.Request().Context(), userID, c.Param("entityType"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateMyProfile handles PATCH /profiles/:entityType/me
func (h *ProfileHandler) UpdateMyProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Headline:    req.Headline,
		IsActive:    req.IsActive,
	}
	if req.Attributes != nil {
		input.Attributes = req.Attributes.toInput()
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, c.Param("entityType"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateMyLocation handles PUT /profiles/:entityType/me/location
func (h *ProfileHandler) UpdateMyLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		City:      req.City,
		Clear:     req.Clear,
	}

	profile, err := h.profileUC.UpdateLocation(c.Request().Context(), userID, c.Param("entityType"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfile handles GET /profiles/:entityType/:id
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), c.Param("entityType"), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfileQR handles GET /profiles/:entityType/:id/qr and returns a PNG image
func (h *ProfileHandler) GetProfileQR(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	png, err := h.profileUC.GenerateProfileQR(c.Request().Context(), c.Param("entityType"), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
