// Package cli implements the snipsync commands. Each command is a
// package-level Run function taking its collaborators explicitly, so the
// wiring stays in main and the commands stay testable.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/models"
)

// PrintUsage prints command help to stdout.
func PrintUsage() {
	fmt.Println("snipsync - cross-device snippet synchronization")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  snipsync [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                      Store an access token for the sync account")
	fmt.Println("  logout                     Delete the stored access token")
	fmt.Println("  status                     Show sync status and pending changes")
	fmt.Println("  sync                       Run one sync session now")
	fmt.Println("  daemon                     Run the background sync scheduler")
	fmt.Println("  add <kind> <content>       Create a record")
	fmt.Println("  list <kind>                List records of a kind")
	fmt.Println("  get <id>                   Show one record")
	fmt.Println("  delete <id>                Delete a record")
	fmt.Println("  conflicts list             List conflicts awaiting manual resolution")
	fmt.Println("  conflicts resolve <id> <local|remote>")
	fmt.Println("                             Resolve a queued conflict")
	fmt.Println()
	fmt.Println("Kinds:")
	fmt.Printf("  %s\n", strings.Join([]string{
		models.KindSnippet, models.KindTemplate, models.KindKnowledgeItem, models.KindHistoryEntry,
	}, ", "))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -db <path>       Local database path")
	fmt.Println("  -config <path>   Settings file path")
	fmt.Println("  -version         Show version information")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  snipsync login")
	fmt.Println("  snipsync add snippet 'git log --oneline -20'")
	fmt.Println("  snipsync list snippet")
	fmt.Println("  snipsync sync")
	fmt.Println("  snipsync conflicts resolve 4f7c2b1a local")
}

// printRecord writes one record summary line.
func printRecord(io iocli.IO, record *models.SyncableRecord) {
	state := "synced"
	if record.Dirty() {
		state = "pending"
	}
	io.Printf("%s  %-14s %-8s v%d  %s\n",
		record.ID,
		record.Kind,
		state,
		record.LocalVersion,
		record.ModifiedAt.Format(time.RFC3339))
}

// preview returns the first line of a payload, shortened for display.
func preview(payload []byte, limit int) string {
	text := string(payload)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if len(text) > limit {
		return text[:limit-3] + "..."
	}
	return text
}
