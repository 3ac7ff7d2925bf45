// Package records is the local mutation service: the editing face of the
// record store. Every mutation bumps the record's local version and notifies
// the scheduler so bursts of edits debounce into one sync session.
package records

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

//go:generate moq -out service_mock.go . Service

// Notifier receives local-change notifications. Satisfied by the scheduler.
type Notifier interface {
	NotifyLocalChange()
}

// Service defines the interface for local record mutations.
type Service interface {
	// Save creates a record (empty id) or updates an existing one.
	Save(ctx context.Context, id, kind string, payload []byte) (*models.SyncableRecord, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*models.SyncableRecord, error)

	// List returns all non-deleted records of the given kind
	List(ctx context.Context, kind string) ([]*models.SyncableRecord, error)

	// Delete soft-deletes a record; the deletion syncs like any edit
	Delete(ctx context.Context, id string) error
}

type service struct {
	store    storage.RecordStore
	notifier Notifier
	logger   *slog.Logger
}

// NewService creates a record mutation service. notifier may be nil when no
// scheduler is attached (one-shot CLI commands).
func NewService(store storage.RecordStore, notifier Notifier, logger *slog.Logger) Service {
	return &service{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Save creates or updates a record, bumping its local version.
func (s *service) Save(ctx context.Context, id, kind string, payload []byte) (*models.SyncableRecord, error) {
	if !models.ValidKind(kind) {
		return nil, fmt.Errorf("unknown record kind: %q", kind)
	}

	var record *models.SyncableRecord
	if id == "" {
		record = &models.SyncableRecord{
			ID:   uuid.New().String(),
			Kind: kind,
		}
	} else {
		existing, err := s.store.GetRecord(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load record: %w", err)
		}
		record = existing
	}

	record.Payload = payload
	record.ModifiedAt = time.Now()
	record.LocalVersion++
	record.Deleted = false

	if err := s.store.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	s.logger.Debug("record saved",
		"record_id", record.ID,
		"kind", record.Kind,
		"local_version", record.LocalVersion)

	s.notify()
	return record, nil
}

// Get retrieves a record by ID.
func (s *service) Get(ctx context.Context, id string) (*models.SyncableRecord, error) {
	return s.store.GetRecord(ctx, id)
}

// List returns all non-deleted records of the given kind.
func (s *service) List(ctx context.Context, kind string) ([]*models.SyncableRecord, error) {
	if !models.ValidKind(kind) {
		return nil, fmt.Errorf("unknown record kind: %q", kind)
	}
	return s.store.ListRecordsByKind(ctx, kind)
}

// Delete soft-deletes a record. The tombstone stays dirty until a session
// propagates it, so other devices see the deletion.
func (s *service) Delete(ctx context.Context, id string) error {
	record, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	record.Deleted = true
	record.ModifiedAt = time.Now()
	record.LocalVersion++

	if err := s.store.SaveRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.logger.Debug("record deleted", "record_id", id, "local_version", record.LocalVersion)

	s.notify()
	return nil
}

func (s *service) notify() {
	if s.notifier != nil {
		s.notifier.NotifyLocalChange()
	}
}
