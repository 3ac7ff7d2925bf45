// Package conflict implements conflict detection and resolution for the
// sync engine. Detection is driven by per-record version counters; wall-clock
// timestamps are used only as the latest-wins tie-break, since clocks across
// devices are assumed to drift.
package conflict

import "github.com/snipsync/snipsync/internal/models"

// Outcome classifies the relationship between the local and remote versions
// of a record relative to the last synced baseline.
type Outcome int

const (
	// OutcomeNone means neither side changed since the baseline.
	OutcomeNone Outcome = iota
	// OutcomeLocalOnly means only the local side changed; push directly.
	OutcomeLocalOnly
	// OutcomeRemoteOnly means only the remote side changed; apply directly.
	OutcomeRemoteOnly
	// OutcomeConflict means both sides changed since the baseline.
	OutcomeConflict
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLocalOnly:
		return "local_only"
	case OutcomeRemoteOnly:
		return "remote_only"
	case OutcomeConflict:
		return "conflict"
	}
	return "unknown"
}

// Detect compares the local and remote versions of a record against the
// baseline (the version last confirmed as synced; 0 for never-synced
// records). Either side may be nil when the record exists on one side only.
//
// A side counts as changed when its version counter advanced past the
// baseline. Two sides that changed to identical content are collapsed into
// OutcomeRemoteOnly so the devices converge without reporting a conflict.
func Detect(local, remote *models.SyncableRecord, baseline int64) Outcome {
	localChanged := local != nil && local.LocalVersion > baseline
	remoteChanged := remote != nil && remote.RemoteVersion > baseline

	switch {
	case localChanged && remoteChanged:
		if local.ContentEqual(remote) {
			return OutcomeRemoteOnly
		}
		return OutcomeConflict
	case localChanged:
		return OutcomeLocalOnly
	case remoteChanged:
		return OutcomeRemoteOnly
	default:
		return OutcomeNone
	}
}
