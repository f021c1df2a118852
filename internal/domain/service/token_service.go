package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens.
type TokenService interface {
	// GenerateToken creates a session token for the user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL is how long an issued token stays valid.
	TokenTTL() time.Duration
}
