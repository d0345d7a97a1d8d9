package middleware

import (
	"strings"

	"venture/internal/delivery/api/response"
	domainerrors "venture/internal/domain/errors"
	"venture/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware validates JWT access tokens issued by the account service.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing"))
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("token must use the Bearer scheme"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token"))
		}

		// Refresh tokens are only good for the account service
		if claims.Type != service.TokenTypeAccess {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("access token required"))
		}

		c.Set(contextKeyUserID, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}
