package conflict

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConflict(localModified, remoteModified time.Time) *models.Conflict {
	return &models.Conflict{
		ID:       "conflict-1",
		RecordID: "rec-1",
		Local: &models.SyncableRecord{
			ID:            "rec-1",
			Kind:          models.KindTemplate,
			Payload:       []byte("local edit"),
			LocalVersion:  4,
			RemoteVersion: 3,
			ModifiedAt:    localModified,
		},
		Remote: &models.SyncableRecord{
			ID:            "rec-1",
			Kind:          models.KindTemplate,
			Payload:       []byte("remote edit"),
			RemoteVersion: 5,
			ModifiedAt:    remoteModified,
		},
	}
}

func TestNewResolver_UnknownStrategy(t *testing.T) {
	_, err := NewResolver("newest", testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown conflict strategy")
}

func TestResolver_LatestWins(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		localModified  time.Time
		remoteModified time.Time
		want           Winner
	}{
		{
			name:           "local edit is later",
			localModified:  base.Add(2 * time.Minute),
			remoteModified: base,
			want:           WinnerLocal,
		},
		{
			name:           "remote edit is later",
			localModified:  base,
			remoteModified: base.Add(2 * time.Minute),
			want:           WinnerRemote,
		},
		{
			name:           "exact tie breaks toward remote",
			localModified:  base,
			remoteModified: base,
			want:           WinnerRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(models.StrategyLatestWins, testLogger())
			require.NoError(t, err)

			res, err := r.Resolve(testConflict(tt.localModified, tt.remoteModified))
			require.NoError(t, err)
			require.False(t, res.Queued)
			require.NotNil(t, res.Record)
			assert.Equal(t, tt.want, res.Winner)

			if tt.want == WinnerLocal {
				assert.Equal(t, []byte("local edit"), res.Record.Payload)
				assert.True(t, res.Record.Dirty(), "winning local record must remain dirty for upload")
			} else {
				assert.Equal(t, []byte("remote edit"), res.Record.Payload)
				assert.False(t, res.Record.Dirty(), "applied remote record must be clean")
			}
		})
	}
}

func TestResolver_LocalWins_BumpsVersionPastRemote(t *testing.T) {
	r, err := NewResolver(models.StrategyLocalWins, testLogger())
	require.NoError(t, err)

	c := testConflict(time.Now(), time.Now().Add(time.Hour))
	res, err := r.Resolve(c)
	require.NoError(t, err)

	assert.Equal(t, WinnerLocal, res.Winner)
	assert.Equal(t, []byte("local edit"), res.Record.Payload)
	// Local version 4 is behind remote version 5; it must be bumped past it
	// so the same conflict is not re-detected next session.
	assert.Equal(t, int64(6), res.Record.LocalVersion)
	assert.Equal(t, int64(5), res.Record.RemoteVersion)
}

func TestResolver_RemoteWins_DiscardsLocalEdit(t *testing.T) {
	r, err := NewResolver(models.StrategyRemoteWins, testLogger())
	require.NoError(t, err)

	res, err := r.Resolve(testConflict(time.Now().Add(time.Hour), time.Now()))
	require.NoError(t, err)

	assert.Equal(t, WinnerRemote, res.Winner)
	assert.Equal(t, []byte("remote edit"), res.Record.Payload)
	assert.Equal(t, int64(5), res.Record.LocalVersion)
	assert.Equal(t, int64(5), res.Record.RemoteVersion)
}

func TestResolver_Manual_Queues(t *testing.T) {
	r, err := NewResolver(models.StrategyManual, testLogger())
	require.NoError(t, err)

	res, err := r.Resolve(testConflict(time.Now(), time.Now()))
	require.NoError(t, err)

	assert.True(t, res.Queued)
	assert.Nil(t, res.Record)
}

func TestResolver_Deterministic(t *testing.T) {
	// Resolving the same conflict twice must yield the same resolved record.
	for _, strategy := range []string{
		models.StrategyLatestWins,
		models.StrategyLocalWins,
		models.StrategyRemoteWins,
	} {
		t.Run(strategy, func(t *testing.T) {
			r, err := NewResolver(strategy, testLogger())
			require.NoError(t, err)

			localTime := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
			remoteTime := time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

			first, err := r.Resolve(testConflict(localTime, remoteTime))
			require.NoError(t, err)
			second, err := r.Resolve(testConflict(localTime, remoteTime))
			require.NoError(t, err)

			assert.Equal(t, first.Winner, second.Winner)
			assert.Equal(t, first.Record, second.Record)
		})
	}
}

func TestResolver_MissingSide(t *testing.T) {
	r, err := NewResolver(models.StrategyLatestWins, testLogger())
	require.NoError(t, err)

	_, err = r.Resolve(&models.Conflict{RecordID: "rec-1", Local: record(1, 0, "a")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a side")
}
