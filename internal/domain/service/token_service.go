// Package service defines interfaces for infrastructure services used by the use cases.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens. The user ID travels in the standard
// "sub" claim and is decoded into UserID on validation.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates JWTs issued by the account service.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
