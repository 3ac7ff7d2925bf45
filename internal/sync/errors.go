package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/snipsync/snipsync/internal/remote"
)

// Reason classifies why a session failed.
type Reason string

const (
	// ReasonAccountUnavailable means the remote store rejected the
	// credentials or is unreachable for account reasons. Not retried with
	// backoff; typically not transient within seconds.
	ReasonAccountUnavailable Reason = "account_unavailable"

	// ReasonNetworkTransient means retries with backoff were exhausted on
	// timeouts or connection failures.
	ReasonNetworkTransient Reason = "network_transient"

	// ReasonQuotaExceeded means the store refused the session because the
	// account is over quota. Surfaced to the user, never auto-retried.
	ReasonQuotaExceeded Reason = "quota_exceeded"

	// ReasonStorageUnavailable means the local store failed. The session
	// aborts before any network call.
	ReasonStorageUnavailable Reason = "storage_unavailable"

	// ReasonCancelled means the session was cancelled between network
	// calls. No partial token persistence; always safe.
	ReasonCancelled Reason = "cancelled"
)

// Error is a session failure carrying its classified reason.
type Error struct {
	Err    error
	Reason Reason
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the failure reason from err.
// Returns "" when err carries no session failure.
func ReasonOf(err error) Reason {
	var se *Error
	if errors.As(err, &se) {
		return se.Reason
	}
	return ""
}

func failure(reason Reason, err error) *Error {
	return &Error{Reason: reason, Err: err}
}

// classifyRemoteError maps a remote client failure onto the session error
// taxonomy. Anything not recognized is treated like a transient network
// failure so the next session retries from the last known-good token.
func classifyRemoteError(ctx context.Context, err error) *Error {
	switch {
	case ctx.Err() != nil:
		return failure(ReasonCancelled, err)
	case remote.IsUnauthorized(err):
		return failure(ReasonAccountUnavailable, err)
	case remote.IsQuotaExceeded(err):
		return failure(ReasonQuotaExceeded, err)
	default:
		return failure(ReasonNetworkTransient, err)
	}
}
