package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/stats"
	"github.com/snipsync/snipsync/internal/storage"
	"github.com/snipsync/snipsync/internal/sync"
)

// RunStatus shows the account, pending changes and accumulated statistics.
func RunStatus(ctx context.Context, io iocli.IO, auth storage.AuthStore, tracker *sync.Tracker, recorder *stats.Recorder) error {
	io.Println("=== Sync Status ===")
	io.Println()

	authData, err := auth.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		io.Println("Account: not logged in")
		io.Println()
		io.Println("Run 'snipsync login' to connect a sync account.")
	case err != nil:
		return fmt.Errorf("failed to read auth data: %w", err)
	default:
		io.Printf("Account: %s\n", authData.UserID)
		if authData.ExpiresAt > 0 {
			expiresAt := time.Unix(authData.ExpiresAt, 0)
			if time.Now().After(expiresAt) {
				io.Println("Token:   expired, run 'snipsync login' again")
			} else {
				io.Printf("Token:   valid until %s\n", expiresAt.Format(time.RFC3339))
			}
		}
	}

	pending, err := tracker.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending records: %w", err)
	}
	io.Println()
	if pending > 0 {
		io.Printf("Pending: %d record(s) waiting to be synchronized\n", pending)
	} else {
		io.Println("Pending: nothing to synchronize")
	}

	snapshot := recorder.Snapshot()
	io.Println()
	if snapshot.TotalSyncs == 0 {
		io.Println("No sync sessions recorded yet.")
		return nil
	}

	io.Printf("Sessions:   %d total, %d succeeded, %d failed (%.0f%% success)\n",
		snapshot.TotalSyncs,
		snapshot.SuccessfulSyncs,
		snapshot.FailedSyncs,
		snapshot.SuccessRate()*100)
	io.Printf("Records:    %d uploaded, %d downloaded\n",
		snapshot.TotalRecordsUploaded,
		snapshot.TotalRecordsDownloaded)
	io.Printf("Conflicts:  %d resolved\n", snapshot.ConflictsResolved)
	if !snapshot.LastSyncAt.IsZero() {
		io.Printf("Last sync:  %s\n", snapshot.LastSyncAt.Format(time.RFC3339))
	}

	return nil
}
