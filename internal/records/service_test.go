package records

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingNotifier struct {
	calls int
}

func (n *countingNotifier) NotifyLocalChange() {
	n.calls++
}

func newMapStore() (*storage.RecordStoreMock, map[string]*models.SyncableRecord) {
	records := make(map[string]*models.SyncableRecord)
	mock := &storage.RecordStoreMock{
		SaveRecordFunc: func(ctx context.Context, record *models.SyncableRecord) error {
			records[record.ID] = record.Clone()
			return nil
		},
		GetRecordFunc: func(ctx context.Context, id string) (*models.SyncableRecord, error) {
			record, ok := records[id]
			if !ok {
				return nil, storage.ErrRecordNotFound
			}
			return record.Clone(), nil
		},
		ListRecordsFunc: func(ctx context.Context) ([]*models.SyncableRecord, error) {
			result := make([]*models.SyncableRecord, 0, len(records))
			for _, record := range records {
				result = append(result, record.Clone())
			}
			return result, nil
		},
		ListRecordsByKindFunc: func(ctx context.Context, kind string) ([]*models.SyncableRecord, error) {
			result := make([]*models.SyncableRecord, 0)
			for _, record := range records {
				if record.Kind == kind && !record.Deleted {
					result = append(result, record.Clone())
				}
			}
			return result, nil
		},
	}
	return mock, records
}

func TestService_Save_Create(t *testing.T) {
	store, _ := newMapStore()
	notifier := &countingNotifier{}
	svc := NewService(store, notifier, testLogger())

	record, err := svc.Save(context.Background(), "", models.KindSnippet, []byte("git log --oneline"))
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, models.KindSnippet, record.Kind)
	assert.Equal(t, int64(1), record.LocalVersion)
	assert.Equal(t, int64(0), record.RemoteVersion)
	assert.True(t, record.Dirty())
	assert.False(t, record.ModifiedAt.IsZero())
	assert.Equal(t, 1, notifier.calls)
}

func TestService_Save_Update(t *testing.T) {
	store, backing := newMapStore()
	notifier := &countingNotifier{}
	svc := NewService(store, notifier, testLogger())

	created, err := svc.Save(context.Background(), "", models.KindTemplate, []byte("v1"))
	require.NoError(t, err)

	updated, err := svc.Save(context.Background(), created.ID, models.KindTemplate, []byte("v2"))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(2), updated.LocalVersion)
	assert.Equal(t, []byte("v2"), backing[created.ID].Payload)
	assert.Equal(t, 2, notifier.calls)
}

func TestService_Save_UnknownKind(t *testing.T) {
	store, _ := newMapStore()
	svc := NewService(store, nil, testLogger())

	_, err := svc.Save(context.Background(), "", "bookmark", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record kind")
	assert.Empty(t, store.SaveRecordCalls())
}

func TestService_Save_ResurrectsDeleted(t *testing.T) {
	store, _ := newMapStore()
	svc := NewService(store, nil, testLogger())

	created, err := svc.Save(context.Background(), "", models.KindSnippet, []byte("v1"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	revived, err := svc.Save(context.Background(), created.ID, models.KindSnippet, []byte("v2"))
	require.NoError(t, err)
	assert.False(t, revived.Deleted)
	assert.Equal(t, int64(3), revived.LocalVersion)
}

func TestService_Delete(t *testing.T) {
	store, backing := newMapStore()
	notifier := &countingNotifier{}
	svc := NewService(store, notifier, testLogger())

	created, err := svc.Save(context.Background(), "", models.KindKnowledgeItem, []byte("note"))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	stored := backing[created.ID]
	assert.True(t, stored.Deleted)
	assert.Equal(t, int64(2), stored.LocalVersion, "tombstone stays dirty until synced")
	assert.Equal(t, 2, notifier.calls)

	// soft-deleted records drop out of kind listings
	list, err := svc.List(context.Background(), models.KindKnowledgeItem)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Delete_NotFound(t *testing.T) {
	store, _ := newMapStore()
	svc := NewService(store, nil, testLogger())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestService_List_FiltersByKind(t *testing.T) {
	store, _ := newMapStore()
	svc := NewService(store, nil, testLogger())

	_, err := svc.Save(context.Background(), "", models.KindSnippet, []byte("a"))
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "", models.KindTemplate, []byte("b"))
	require.NoError(t, err)

	snippets, err := svc.List(context.Background(), models.KindSnippet)
	require.NoError(t, err)
	assert.Len(t, snippets, 1)

	_, err = svc.List(context.Background(), "nope")
	require.Error(t, err)
}

func TestService_NilNotifier(t *testing.T) {
	store, _ := newMapStore()
	svc := NewService(store, nil, testLogger())

	_, err := svc.Save(context.Background(), "", models.KindSnippet, []byte("x"))
	assert.NoError(t, err)
}
