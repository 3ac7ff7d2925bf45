package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snipsync/snipsync/internal/models"
)

func record(localVersion, remoteVersion int64, payload string) *models.SyncableRecord {
	return &models.SyncableRecord{
		ID:            "rec-1",
		Kind:          models.KindSnippet,
		Payload:       []byte(payload),
		LocalVersion:  localVersion,
		RemoteVersion: remoteVersion,
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		local    *models.SyncableRecord
		remote   *models.SyncableRecord
		name     string
		baseline int64
		want     Outcome
	}{
		{
			name:     "nothing changed",
			local:    record(3, 3, "a"),
			remote:   record(0, 3, "a"),
			baseline: 3,
			want:     OutcomeNone,
		},
		{
			name:     "new local record never synced",
			local:    record(1, 0, "a"),
			remote:   nil,
			baseline: 0,
			want:     OutcomeLocalOnly,
		},
		{
			name:     "local edit only",
			local:    record(5, 3, "a"),
			remote:   record(0, 3, "a"),
			baseline: 3,
			want:     OutcomeLocalOnly,
		},
		{
			name:     "new remote record",
			local:    nil,
			remote:   record(0, 1, "a"),
			baseline: 0,
			want:     OutcomeRemoteOnly,
		},
		{
			name:     "remote edit only",
			local:    record(3, 3, "a"),
			remote:   record(0, 4, "b"),
			baseline: 3,
			want:     OutcomeRemoteOnly,
		},
		{
			name:     "both sides changed",
			local:    record(4, 3, "local edit"),
			remote:   record(0, 4, "remote edit"),
			baseline: 3,
			want:     OutcomeConflict,
		},
		{
			name:     "both sides changed to identical content",
			local:    record(4, 3, "same text"),
			remote:   record(0, 4, "same text"),
			baseline: 3,
			want:     OutcomeRemoteOnly,
		},
		{
			name:     "re-pulled record already applied",
			local:    record(4, 4, "a"),
			remote:   record(0, 4, "a"),
			baseline: 4,
			want:     OutcomeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.local, tt.remote, tt.baseline)
			assert.Equal(t, tt.want, got, "Detect() = %s, want %s", got, tt.want)
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "local_only", OutcomeLocalOnly.String())
	assert.Equal(t, "remote_only", OutcomeRemoteOnly.String())
	assert.Equal(t, "conflict", OutcomeConflict.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
