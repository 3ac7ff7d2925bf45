package conflict

import (
	"fmt"
	"log/slog"

	"github.com/snipsync/snipsync/internal/models"
)

// Winner identifies which side a resolution kept.
type Winner string

const (
	// WinnerLocal means the local record survives and must be pushed.
	WinnerLocal Winner = "local"
	// WinnerRemote means the remote record survives and must be applied locally.
	WinnerRemote Winner = "remote"
)

// Resolution is the outcome of applying a strategy to one conflict.
// When Queued is true the conflict was set aside for manual resolution and
// Record is nil.
type Resolution struct {
	Record *models.SyncableRecord
	Winner Winner
	Queued bool
}

// Resolver applies a configured strategy to detected conflicts. Resolution
// is deterministic: the same conflict and strategy always produce the same
// outcome, so repeated sessions converge instead of flip-flopping.
type Resolver struct {
	logger   *slog.Logger
	strategy string
}

// NewResolver creates a resolver for the given strategy.
func NewResolver(strategy string, logger *slog.Logger) (*Resolver, error) {
	if !models.ValidStrategy(strategy) {
		return nil, fmt.Errorf("unknown conflict strategy: %q", strategy)
	}
	return &Resolver{strategy: strategy, logger: logger}, nil
}

// Strategy returns the configured strategy name.
func (r *Resolver) Strategy() string {
	return r.strategy
}

// Resolve applies the configured strategy to the conflict. It never mutates
// storage; the engine applies the returned record.
func (r *Resolver) Resolve(c *models.Conflict) (*Resolution, error) {
	if c.Local == nil || c.Remote == nil {
		return nil, fmt.Errorf("conflict %s is missing a side", c.RecordID)
	}

	switch r.strategy {
	case models.StrategyLatestWins:
		return r.resolveLatestWins(c), nil
	case models.StrategyLocalWins:
		return r.resolveLocalWins(c), nil
	case models.StrategyRemoteWins:
		return r.resolveRemoteWins(c), nil
	case models.StrategyManual:
		r.logger.Info("conflict queued for manual resolution",
			"record_id", c.RecordID,
			"local_version", c.Local.LocalVersion,
			"remote_version", c.Remote.RemoteVersion)
		return &Resolution{Queued: true}, nil
	}

	return nil, fmt.Errorf("unknown conflict strategy: %q", r.strategy)
}

// resolveLatestWins keeps the side with the later modification timestamp.
// Exact ties break toward the remote record: the shared store is the source
// of truth, so every device resolving the same tie converges on it.
func (r *Resolver) resolveLatestWins(c *models.Conflict) *Resolution {
	if c.Local.ModifiedAt.After(c.Remote.ModifiedAt) {
		return r.keepLocal(c)
	}
	return r.keepRemote(c)
}

// resolveLocalWins keeps the local record unconditionally.
func (r *Resolver) resolveLocalWins(c *models.Conflict) *Resolution {
	return r.keepLocal(c)
}

// resolveRemoteWins keeps the remote record unconditionally. The discarded
// local edit is logged so it is never silently dropped from history.
func (r *Resolver) resolveRemoteWins(c *models.Conflict) *Resolution {
	r.logger.Warn("discarding local edit in favor of remote record",
		"record_id", c.RecordID,
		"local_version", c.Local.LocalVersion,
		"local_modified_at", c.Local.ModifiedAt,
		"remote_version", c.Remote.RemoteVersion)
	return r.keepRemote(c)
}

// keepLocal prepares the local record for upload. LocalVersion is bumped
// past the remote version so the record cannot be re-detected as the same
// conflict, and RemoteVersion is set to the version the remote store
// currently holds so the push is accepted as an update over it.
func (r *Resolver) keepLocal(c *models.Conflict) *Resolution {
	resolved := c.Local.Clone()
	if resolved.LocalVersion <= c.Remote.RemoteVersion {
		resolved.LocalVersion = c.Remote.RemoteVersion + 1
	}
	resolved.RemoteVersion = c.Remote.RemoteVersion

	r.logger.Debug("conflict resolved, local record wins",
		"record_id", c.RecordID,
		"strategy", r.strategy)

	return &Resolution{Record: resolved, Winner: WinnerLocal}
}

// keepRemote replaces the local record with the remote one. The version
// counters are aligned to the acknowledged remote version, leaving the
// record clean.
func (r *Resolver) keepRemote(c *models.Conflict) *Resolution {
	resolved := c.Remote.Clone()
	resolved.LocalVersion = c.Remote.RemoteVersion

	r.logger.Debug("conflict resolved, remote record wins",
		"record_id", c.RecordID,
		"strategy", r.strategy)

	return &Resolution{Record: resolved, Winner: WinnerRemote}
}
