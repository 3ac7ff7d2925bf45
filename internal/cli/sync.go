package cli

import (
	"context"
	"fmt"

	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/sync"
)

// RunSync runs one sync session and prints its outcome.
func RunSync(ctx context.Context, io iocli.IO, engine sync.Service) error {
	io.Println("=== Synchronization ===")
	io.Println()
	io.Println("Starting sync session...")

	session, err := engine.Sync(ctx, models.TriggerManual)
	if err != nil {
		if sync.ReasonOf(err) == sync.ReasonQuotaExceeded {
			return fmt.Errorf("the sync account is over quota; free up space and try again: %w", err)
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	io.Println()
	io.Println("Synchronization completed.")
	io.Println()
	io.Printf("Uploaded:   %d record(s)\n", session.RecordsUploaded)
	io.Printf("Downloaded: %d record(s)\n", session.RecordsDownloaded)
	if session.ConflictsDetected > 0 {
		io.Printf("Conflicts:  %d detected, %d resolved\n",
			session.ConflictsDetected, session.ConflictsResolved)
	}
	if session.ConflictsQueued > 0 {
		io.Printf("Queued:     %d conflict(s) need manual resolution\n", session.ConflictsQueued)
		io.Println()
		io.Println("Run 'snipsync conflicts list' to review them.")
	}

	return nil
}
