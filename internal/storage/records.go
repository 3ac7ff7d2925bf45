package storage

import (
	"context"

	"github.com/snipsync/snipsync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStore

// RecordStore defines the interface to the locally persisted records.
// The sync engine reads records through it and applies remote changes back.
type RecordStore interface {
	// SaveRecord stores or replaces a record
	SaveRecord(ctx context.Context, record *models.SyncableRecord) error

	// GetRecord retrieves a record by ID
	// Returns ErrRecordNotFound if the record doesn't exist
	GetRecord(ctx context.Context, id string) (*models.SyncableRecord, error)

	// ListRecords returns all records, including soft-deleted ones
	// Used by the change tracker and the diffing step
	ListRecords(ctx context.Context) ([]*models.SyncableRecord, error)

	// ListRecordsByKind returns all non-deleted records of the given kind
	ListRecordsByKind(ctx context.Context, kind string) ([]*models.SyncableRecord, error)
}
