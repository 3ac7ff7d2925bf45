package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_String(t *testing.T) {
	tests := []struct {
		want  string
		state SessionState
	}{
		{state: StateNotStarted, want: "not_started"},
		{state: StateCheckingAvailability, want: "checking_availability"},
		{state: StateFetchingRemoteChanges, want: "fetching_remote_changes"},
		{state: StateDiffing, want: "diffing"},
		{state: StateResolvingConflicts, want: "resolving_conflicts"},
		{state: StateUploadingLocalChanges, want: "uploading_local_changes"},
		{state: StatePersistingToken, want: "persisting_token"},
		{state: StateCompleted, want: "completed"},
		{state: StateFailed, want: "failed"},
		{state: SessionState(99), want: "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

func TestSessionState_Terminal(t *testing.T) {
	assert.True(t, StateCompleted.Terminal())
	assert.True(t, StateFailed.Terminal())

	for _, state := range []SessionState{
		StateNotStarted,
		StateCheckingAvailability,
		StateFetchingRemoteChanges,
		StateDiffing,
		StateResolvingConflicts,
		StateUploadingLocalChanges,
		StatePersistingToken,
	} {
		assert.False(t, state.Terminal(), "state %s must not be terminal", state)
	}
}

func TestSyncSession_Succeeded(t *testing.T) {
	s := &SyncSession{State: StateCompleted}
	assert.True(t, s.Succeeded())

	s.State = StateFailed
	assert.False(t, s.Succeeded())
}
