package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the session token claims. The subject is the user id.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless session tokens.
type TokenService interface {
	// GenerateToken signs a session token for userID.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL is the lifetime of issued tokens, mirrored in the session cookie.
	TokenTTL() time.Duration
}
