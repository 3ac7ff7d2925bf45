package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

func TestTracker_DirtyRecords(t *testing.T) {
	records := &storage.RecordStoreMock{
		ListRecordsFunc: func(ctx context.Context) ([]*models.SyncableRecord, error) {
			return []*models.SyncableRecord{
				{ID: "synced", LocalVersion: 3, RemoteVersion: 3},
				{ID: "edited", LocalVersion: 4, RemoteVersion: 3},
				{ID: "never-synced", LocalVersion: 1},
				{ID: "deleted-dirty", LocalVersion: 2, RemoteVersion: 1, Deleted: true},
			}, nil
		},
	}
	meta := &storage.MetadataStoreMock{
		ListBaselinesFunc: func(ctx context.Context) (map[string]int64, error) {
			return map[string]int64{
				"synced":        3,
				"edited":        3,
				"deleted-dirty": 1,
			}, nil
		},
	}

	tracker := NewTracker(records, meta, testLogger())

	dirty, err := tracker.DirtyRecords(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(dirty))
	for _, record := range dirty {
		ids = append(ids, record.ID)
	}
	assert.ElementsMatch(t, []string{"edited", "never-synced", "deleted-dirty"}, ids,
		"tombstones count as pending until propagated")

	count, err := tracker.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTracker_StorageError(t *testing.T) {
	records := &storage.RecordStoreMock{
		ListRecordsFunc: func(ctx context.Context) ([]*models.SyncableRecord, error) {
			return nil, storage.ErrStorageClosed
		},
	}

	tracker := NewTracker(records, &storage.MetadataStoreMock{}, testLogger())

	_, err := tracker.DirtyRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
