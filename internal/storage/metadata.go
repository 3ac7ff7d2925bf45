package storage

import (
	"context"

	"github.com/snipsync/snipsync/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStore

// SessionCommit is the durable outcome of a successful sync session: the
// final record states, their advanced baselines and the new change token.
// Implementations must persist all three in a single atomic write so a crash
// can never leave the token ahead of the records it describes.
type SessionCommit struct {
	Baselines map[string]int64
	Token     string
	Records   []*models.SyncableRecord
}

// MetadataStore defines the interface for sync bookkeeping: the change token
// and the per-record baseline versions. A baseline is the record version last
// confirmed as synced; it anchors dirtiness and conflict detection.
type MetadataStore interface {
	// GetChangeToken retrieves the last persisted change token
	// Returns "" if no sync has completed yet
	GetChangeToken(ctx context.Context) (string, error)

	// GetBaseline retrieves the baseline version for a record
	// Returns 0 if the record has never been synced
	GetBaseline(ctx context.Context, id string) (int64, error)

	// ListBaselines returns all stored baselines keyed by record ID
	ListBaselines(ctx context.Context) (map[string]int64, error)

	// CommitSession atomically persists records, baselines and the change
	// token. Called exactly once per successful session, after the push has
	// been acknowledged.
	CommitSession(ctx context.Context, commit SessionCommit) error
}
