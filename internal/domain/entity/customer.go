package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered storefront account.
type Customer struct {
	ID           uuid.UUID // Primary identifier, also the subject of access tokens.
	Name         string
	Email        string // Unique login identifier.
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthTokens is returned after a successful login or registration.
type AuthTokens struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
