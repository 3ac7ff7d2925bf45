package models

import "time"

// SessionState is the position of a sync session in the engine state machine.
type SessionState int

// Engine state machine. Failed is reachable from every non-terminal state.
const (
	StateNotStarted SessionState = iota
	StateCheckingAvailability
	StateFetchingRemoteChanges
	StateDiffing
	StateResolvingConflicts
	StateUploadingLocalChanges
	StatePersistingToken
	StateCompleted
	StateFailed
)

var stateNames = map[SessionState]string{
	StateNotStarted:            "not_started",
	StateCheckingAvailability:  "checking_availability",
	StateFetchingRemoteChanges: "fetching_remote_changes",
	StateDiffing:               "diffing",
	StateResolvingConflicts:    "resolving_conflicts",
	StateUploadingLocalChanges: "uploading_local_changes",
	StatePersistingToken:       "persisting_token",
	StateCompleted:             "completed",
	StateFailed:                "failed",
}

func (s SessionState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the state ends a session.
func (s SessionState) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Trigger identifies what started a sync session.
const (
	TriggerManual     = "manual"
	TriggerLaunch     = "launch"
	TriggerBackground = "background"
	TriggerDebounce   = "debounce"
)

// SyncSession tracks one run of the sync engine from admission to a terminal
// state. Counters accumulate as the session progresses and are archived into
// statistics when the session ends.
type SyncSession struct {
	StartedAt         time.Time
	EndedAt           time.Time
	ID                string
	Trigger           string
	Error             string
	State             SessionState
	RecordsUploaded   int
	RecordsDownloaded int
	ConflictsDetected int
	ConflictsResolved int
	ConflictsQueued   int
}

// Succeeded reports whether the session reached Completed.
func (s *SyncSession) Succeeded() bool {
	return s.State == StateCompleted
}

// Conflict pairs the local and remote versions of a record that was modified
// on both sides since the last common synced version. Resolved is nil until
// a strategy has been applied; with the manual strategy the conflict is
// queued and Resolved stays nil until the user decides.
type Conflict struct {
	DetectedAt time.Time       `json:"detected_at"`
	ID         string          `json:"id"`
	RecordID   string          `json:"record_id"`
	Strategy   string          `json:"strategy"`
	Local      *SyncableRecord `json:"local"`
	Remote     *SyncableRecord `json:"remote"`
	Resolved   *SyncableRecord `json:"resolved,omitempty"`
}
