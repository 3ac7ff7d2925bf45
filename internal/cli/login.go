package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/remote"
	"github.com/snipsync/snipsync/internal/storage"
)

// RunLogin stores an access token for the sync account after verifying the
// remote store accepts it.
func RunLogin(ctx context.Context, io iocli.IO, auth storage.AuthStore, serverURL string) error {
	io.Println("=== Login ===")
	io.Println()

	token, err := io.ReadPassword("Access token: ")
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}

	userID, expiresAt := inspectToken(token)
	if userID == "" {
		userID, err = io.ReadInput("User ID: ")
		if err != nil {
			return fmt.Errorf("failed to read user id: %w", err)
		}
	}

	io.Println()
	io.Println("Verifying token with the sync store...")

	client := remote.NewClient(serverURL, token)
	if err := client.CheckAvailability(ctx); err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	authData := &storage.AuthData{
		UserID:      userID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}
	if err := auth.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	io.Println()
	io.Println("Login successful.")
	io.Printf("User ID: %s\n", userID)
	if expiresAt > 0 {
		io.Printf("Token expires: %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
	}

	return nil
}

// inspectToken extracts the subject and expiry from a JWT without verifying
// the signature; the store is the authority on token validity. An opaque
// token yields empty results.
func inspectToken(token string) (string, int64) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", 0
	}

	var userID string
	if sub, err := claims.GetSubject(); err == nil {
		userID = sub
	}

	var expiresAt int64
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Unix()
	}

	return userID, expiresAt
}
