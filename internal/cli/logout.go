package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/storage"
)

// RunLogout deletes the stored access token.
func RunLogout(ctx context.Context, io iocli.IO, auth storage.AuthStore) error {
	io.Println("=== Logout ===")

	if err := auth.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			io.Println("No stored session found.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	io.Println("Logout successful. Your local session has been deleted.")
	return nil
}
