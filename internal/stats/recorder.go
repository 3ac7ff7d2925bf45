// Package stats accumulates per-session counters and derived metrics.
package stats

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

// Recorder accumulates sync statistics. Counters live in memory guarded by
// a read-write lock so reads never block a running session; after each
// terminal session the snapshot is written through to the optional store.
type Recorder struct {
	store   storage.StatsStore
	logger  *slog.Logger
	metrics *Metrics

	mu    sync.RWMutex
	stats models.SyncStatistics
}

// NewRecorder creates a recorder. store may be nil for in-memory-only use;
// metrics may be nil when no metrics endpoint is exposed. A persisted
// snapshot, if present, seeds the counters.
func NewRecorder(ctx context.Context, store storage.StatsStore, metrics *Metrics, logger *slog.Logger) (*Recorder, error) {
	r := &Recorder{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}

	if store != nil {
		stats, err := store.GetStatistics(ctx)
		if err != nil {
			return nil, err
		}
		r.stats = stats
	}

	return r, nil
}

// RecordSession archives a terminal session into the counters.
func (r *Recorder) RecordSession(ctx context.Context, session *models.SyncSession) {
	r.mu.Lock()
	r.stats.TotalSyncs++
	if session.Succeeded() {
		r.stats.SuccessfulSyncs++
		r.stats.LastSyncAt = session.EndedAt
	} else {
		r.stats.FailedSyncs++
	}
	r.stats.TotalRecordsUploaded += int64(session.RecordsUploaded)
	r.stats.TotalRecordsDownloaded += int64(session.RecordsDownloaded)
	r.stats.ConflictsResolved += int64(session.ConflictsResolved)
	snapshot := r.stats
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.observeSession(session)
	}

	if r.store != nil {
		if err := r.store.SaveStatistics(ctx, snapshot); err != nil {
			// A failed snapshot write never fails the session; the
			// counters survive in memory until the next write.
			r.logger.Warn("failed to persist statistics", "error", err)
		}
	}
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() models.SyncStatistics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// SuccessRate returns successfulSyncs / totalSyncs, 0 before the first
// session. Always within [0, 1].
func (r *Recorder) SuccessRate() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats.SuccessRate()
}

// LastSyncAt returns the end time of the last successful session.
func (r *Recorder) LastSyncAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats.LastSyncAt
}
