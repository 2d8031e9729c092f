package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are carried by customer access tokens. The subject is the customer ID.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)
	// ValidateToken rejects tokens with a bad signature, an unexpected algorithm or past expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
