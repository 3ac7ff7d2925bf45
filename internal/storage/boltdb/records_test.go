package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

func TestStorage_SaveRecord(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	record := createTestRecord("rec-1", 1, 0)
	require.NoError(t, store.SaveRecord(ctx, record))

	got, err := store.GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// Saving again replaces the record.
	record.LocalVersion = 2
	record.Payload = []byte("updated")
	require.NoError(t, store.SaveRecord(ctx, record))

	got, err = store.GetRecord(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.LocalVersion)
	assert.Equal(t, []byte("updated"), got.Payload)
}

func TestStorage_GetRecord_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_ListRecords(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	records, err := store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	deleted := createTestRecord("rec-2", 3, 2)
	deleted.Deleted = true

	require.NoError(t, store.SaveRecord(ctx, createTestRecord("rec-1", 1, 0)))
	require.NoError(t, store.SaveRecord(ctx, deleted))

	records, err = store.ListRecords(ctx)
	require.NoError(t, err)
	// Soft-deleted records are included; sync needs them.
	assert.Len(t, records, 2)
}

func TestStorage_ListRecordsByKind(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	snippet := createTestRecord("rec-1", 1, 0)
	template := createTestRecord("rec-2", 1, 0)
	template.Kind = models.KindTemplate
	deletedSnippet := createTestRecord("rec-3", 2, 1)
	deletedSnippet.Deleted = true

	for _, r := range []*models.SyncableRecord{snippet, template, deletedSnippet} {
		require.NoError(t, store.SaveRecord(ctx, r))
	}

	records, err := store.ListRecordsByKind(ctx, models.KindSnippet)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)

	records, err = store.ListRecordsByKind(ctx, models.KindTemplate)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-2", records[0].ID)

	records, err = store.ListRecordsByKind(ctx, models.KindHistoryEntry)
	require.NoError(t, err)
	assert.Empty(t, records)
}
