package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/sync"
)

func TestRunSync(t *testing.T) {
	capture := newCapturingIO()
	engine := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, trigger string) (*models.SyncSession, error) {
			return &models.SyncSession{
				Trigger:           trigger,
				State:             models.StateCompleted,
				RecordsUploaded:   2,
				RecordsDownloaded: 1,
			}, nil
		},
	}

	err := RunSync(context.Background(), capture.mock, engine)
	require.NoError(t, err)

	require.Len(t, engine.SyncCalls(), 1)
	assert.Equal(t, models.TriggerManual, engine.SyncCalls()[0].Trigger)

	out := capture.String()
	assert.Contains(t, out, "Uploaded:   2")
	assert.Contains(t, out, "Downloaded: 1")
	assert.NotContains(t, out, "Conflicts")
}

func TestRunSync_QueuedConflicts(t *testing.T) {
	capture := newCapturingIO()
	engine := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, trigger string) (*models.SyncSession, error) {
			return &models.SyncSession{
				Trigger:           trigger,
				State:             models.StateCompleted,
				ConflictsDetected: 1,
				ConflictsQueued:   1,
			}, nil
		},
	}

	err := RunSync(context.Background(), capture.mock, engine)
	require.NoError(t, err)
	assert.Contains(t, capture.String(), "conflicts list")
}

func TestRunSync_Failure(t *testing.T) {
	capture := newCapturingIO()
	engine := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, trigger string) (*models.SyncSession, error) {
			return &models.SyncSession{State: models.StateFailed},
				&sync.Error{Reason: sync.ReasonNetworkTransient}
		},
	}

	err := RunSync(context.Background(), capture.mock, engine)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synchronization failed")
}

func TestRunSync_QuotaMessage(t *testing.T) {
	capture := newCapturingIO()
	engine := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context, trigger string) (*models.SyncSession, error) {
			return &models.SyncSession{State: models.StateFailed},
				&sync.Error{Reason: sync.ReasonQuotaExceeded}
		},
	}

	err := RunSync(context.Background(), capture.mock, engine)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "over quota")
}
