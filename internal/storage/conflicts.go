package storage

import (
	"context"

	"github.com/snipsync/snipsync/internal/models"
)

//go:generate moq -out conflicts_mock.go . ConflictStore

// ConflictStore defines the interface for the manual conflict queue.
// Conflicts land here when the configured strategy is manual; they stay
// queued until the user picks a side.
type ConflictStore interface {
	// EnqueueConflict stores a conflict awaiting manual resolution.
	// Re-detecting the same record conflict replaces the queued entry.
	EnqueueConflict(ctx context.Context, conflict *models.Conflict) error

	// GetConflict retrieves a queued conflict by ID
	// Returns ErrConflictNotFound if it doesn't exist
	GetConflict(ctx context.Context, id string) (*models.Conflict, error)

	// ListConflicts returns all queued conflicts
	ListConflicts(ctx context.Context) ([]*models.Conflict, error)

	// DeleteConflict removes a conflict from the queue after resolution
	DeleteConflict(ctx context.Context, id string) error
}
