package storage

import (
	"context"

	"github.com/snipsync/snipsync/internal/models"
)

//go:generate moq -out stats_mock.go . StatsStore

// StatsStore defines the interface for persisting sync statistics across
// restarts. The recorder keeps counters in memory and writes through after
// each terminal session; reads never block a running session.
type StatsStore interface {
	// SaveStatistics persists the current counters
	SaveStatistics(ctx context.Context, stats models.SyncStatistics) error

	// GetStatistics retrieves the persisted counters
	// Returns zero statistics if no snapshot has been saved yet
	GetStatistics(ctx context.Context) (models.SyncStatistics, error)
}
