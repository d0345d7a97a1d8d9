// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"venture/config"
	"venture/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const issuer = "venture"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string // Secret key for verifying access tokens.
	refreshSecret string // Secret key for verifying refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// The secrets are shared with the account service that issues tokens to clients.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
	}, nil
}

// ValidateToken verifies the signature with the secret that matches the token type and
// returns the decoded claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims service.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		parsed, ok := token.Claims.(*service.Claims)
		if !ok {
			return nil, jwt.ErrTokenInvalidClaims
		}

		switch parsed.Type {
		case service.TokenTypeAccess:
			return []byte(s.accessSecret), nil
		case service.TokenTypeRefresh:
			return []byte(s.refreshSecret), nil
		default:
			return nil, jwt.ErrTokenInvalidClaims
		}
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}
	claims.UserID = userID

	return &claims, nil
}
