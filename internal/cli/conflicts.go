package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/snipsync/snipsync/internal/conflict"
	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

// RunConflicts dispatches the conflicts subcommands.
func RunConflicts(ctx context.Context, io iocli.IO, args []string, conflicts storage.ConflictStore, recordStore storage.RecordStore, logger *slog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: snipsync conflicts <list|resolve>")
	}

	switch args[0] {
	case "list":
		return runConflictsList(ctx, io, conflicts)
	case "resolve":
		return runConflictsResolve(ctx, io, args[1:], conflicts, recordStore, logger)
	default:
		return fmt.Errorf("unknown conflicts subcommand: %s", args[0])
	}
}

func runConflictsList(ctx context.Context, io iocli.IO, conflicts storage.ConflictStore) error {
	queued, err := conflicts.ListConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	if len(queued) == 0 {
		io.Println("No conflicts awaiting resolution.")
		return nil
	}

	io.Printf("%d conflict(s) awaiting manual resolution:\n", len(queued))
	io.Println()
	for _, c := range queued {
		io.Printf("%s  record %s  detected %s\n",
			c.ID, c.RecordID, c.DetectedAt.Format("2006-01-02 15:04"))
		if c.Local != nil {
			io.Printf("    local:  v%d  %s\n", c.Local.LocalVersion, preview(c.Local.Payload, 50))
		}
		if c.Remote != nil {
			io.Printf("    remote: v%d  %s\n", c.Remote.RemoteVersion, preview(c.Remote.Payload, 50))
		}
	}
	io.Println()
	io.Println("Resolve with: snipsync conflicts resolve <id> <local|remote>")
	return nil
}

// runConflictsResolve applies the chosen side of a queued conflict. The
// winning record is written back through the regular change tracking, so the
// next sync session propagates the decision.
func runConflictsResolve(ctx context.Context, io iocli.IO, args []string, conflicts storage.ConflictStore, recordStore storage.RecordStore, logger *slog.Logger) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: snipsync conflicts resolve <id> <local|remote>")
	}
	id, side := args[0], args[1]

	var strategy string
	switch side {
	case "local":
		strategy = models.StrategyLocalWins
	case "remote":
		strategy = models.StrategyRemoteWins
	default:
		return fmt.Errorf("side must be 'local' or 'remote', got %q", side)
	}

	c, err := conflicts.GetConflict(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load conflict: %w", err)
	}

	resolver, err := conflict.NewResolver(strategy, logger)
	if err != nil {
		return err
	}
	resolution, err := resolver.Resolve(c)
	if err != nil {
		return err
	}

	if err := recordStore.SaveRecord(ctx, resolution.Record); err != nil {
		return fmt.Errorf("failed to save resolved record: %w", err)
	}
	if err := conflicts.DeleteConflict(ctx, id); err != nil {
		return fmt.Errorf("failed to dequeue conflict: %w", err)
	}

	io.Printf("Conflict %s resolved, %s record kept.\n", id, side)
	io.Println("The resolution will propagate on the next sync.")
	return nil
}
