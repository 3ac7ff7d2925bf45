package storage

import "context"

//go:generate moq -out auth_mock.go . AuthStore

// AuthStore defines the interface for storing the sync account credentials.
// Tokens are stored as-is; the remote store issues and validates them.
type AuthStore interface {
	// SaveAuth stores authentication data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the stored sync account credentials.
type AuthData struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
