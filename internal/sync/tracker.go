package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

// Tracker computes the set of locally dirty records: records whose local
// version advanced past the baseline version last confirmed as synced.
// Pure local bookkeeping, no network access.
type Tracker struct {
	records storage.RecordStore
	meta    storage.MetadataStore
	logger  *slog.Logger
}

// NewTracker creates a change tracker over the local stores.
func NewTracker(records storage.RecordStore, meta storage.MetadataStore, logger *slog.Logger) *Tracker {
	return &Tracker{
		records: records,
		meta:    meta,
		logger:  logger,
	}
}

// DirtyRecords returns every record whose local version exceeds its
// baseline. Baselines advance only through MetadataStore.CommitSession, so
// a record stays dirty until a session confirms it synced.
func (t *Tracker) DirtyRecords(ctx context.Context) ([]*models.SyncableRecord, error) {
	all, err := t.records.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	baselines, err := t.meta.ListBaselines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list baselines: %w", err)
	}

	var dirty []*models.SyncableRecord
	for _, record := range all {
		if record.LocalVersion > baselines[record.ID] {
			dirty = append(dirty, record)
		}
	}

	t.logger.Debug("collected dirty records", "total", len(all), "dirty", len(dirty))

	return dirty, nil
}

// PendingCount returns the number of records awaiting synchronization.
func (t *Tracker) PendingCount(ctx context.Context) (int, error) {
	dirty, err := t.DirtyRecords(ctx)
	if err != nil {
		return 0, err
	}
	return len(dirty), nil
}
