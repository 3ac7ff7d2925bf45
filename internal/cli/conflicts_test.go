package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

func queuedConflict() *models.Conflict {
	return &models.Conflict{
		ID:         "c1",
		RecordID:   "r1",
		Strategy:   models.StrategyManual,
		DetectedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
		Local: &models.SyncableRecord{
			ID: "r1", Kind: models.KindSnippet,
			Payload: []byte("local version"), LocalVersion: 2, RemoteVersion: 1,
		},
		Remote: &models.SyncableRecord{
			ID: "r1", Kind: models.KindSnippet,
			Payload: []byte("remote version"), RemoteVersion: 2,
		},
	}
}

func TestRunConflicts_List(t *testing.T) {
	capture := newCapturingIO()
	conflicts := &storage.ConflictStoreMock{
		ListConflictsFunc: func(ctx context.Context) ([]*models.Conflict, error) {
			return []*models.Conflict{queuedConflict()}, nil
		},
	}

	err := RunConflicts(context.Background(), capture.mock, []string{"list"}, conflicts, &storage.RecordStoreMock{}, testLogger())
	require.NoError(t, err)

	out := capture.String()
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "local version")
	assert.Contains(t, out, "remote version")
}

func TestRunConflicts_List_Empty(t *testing.T) {
	capture := newCapturingIO()
	conflicts := &storage.ConflictStoreMock{
		ListConflictsFunc: func(ctx context.Context) ([]*models.Conflict, error) {
			return nil, nil
		},
	}

	err := RunConflicts(context.Background(), capture.mock, []string{"list"}, conflicts, &storage.RecordStoreMock{}, testLogger())
	require.NoError(t, err)
	assert.Contains(t, capture.String(), "No conflicts")
}

func TestRunConflicts_Resolve_KeepLocal(t *testing.T) {
	capture := newCapturingIO()
	var saved *models.SyncableRecord
	var deleted string

	conflicts := &storage.ConflictStoreMock{
		GetConflictFunc: func(ctx context.Context, id string) (*models.Conflict, error) {
			return queuedConflict(), nil
		},
		DeleteConflictFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	recordStore := &storage.RecordStoreMock{
		SaveRecordFunc: func(ctx context.Context, record *models.SyncableRecord) error {
			saved = record
			return nil
		},
	}

	err := RunConflicts(context.Background(), capture.mock, []string{"resolve", "c1", "local"}, conflicts, recordStore, testLogger())
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, []byte("local version"), saved.Payload)
	assert.True(t, saved.Dirty(), "kept local record is pushed on the next sync")
	assert.Equal(t, int64(3), saved.LocalVersion, "bumped past the remote version")
	assert.Equal(t, "c1", deleted)
}

func TestRunConflicts_Resolve_KeepRemote(t *testing.T) {
	capture := newCapturingIO()
	var saved *models.SyncableRecord

	conflicts := &storage.ConflictStoreMock{
		GetConflictFunc: func(ctx context.Context, id string) (*models.Conflict, error) {
			return queuedConflict(), nil
		},
		DeleteConflictFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	recordStore := &storage.RecordStoreMock{
		SaveRecordFunc: func(ctx context.Context, record *models.SyncableRecord) error {
			saved = record
			return nil
		},
	}

	err := RunConflicts(context.Background(), capture.mock, []string{"resolve", "c1", "remote"}, conflicts, recordStore, testLogger())
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, []byte("remote version"), saved.Payload)
	assert.Equal(t, saved.RemoteVersion, saved.LocalVersion)
}

func TestRunConflicts_Resolve_BadSide(t *testing.T) {
	capture := newCapturingIO()

	err := RunConflicts(context.Background(), capture.mock, []string{"resolve", "c1", "both"},
		&storage.ConflictStoreMock{}, &storage.RecordStoreMock{}, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'local' or 'remote'")
}

func TestRunConflicts_NotFound(t *testing.T) {
	capture := newCapturingIO()
	conflicts := &storage.ConflictStoreMock{
		GetConflictFunc: func(ctx context.Context, id string) (*models.Conflict, error) {
			return nil, storage.ErrConflictNotFound
		},
	}

	err := RunConflicts(context.Background(), capture.mock, []string{"resolve", "missing", "local"},
		conflicts, &storage.RecordStoreMock{}, testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}
