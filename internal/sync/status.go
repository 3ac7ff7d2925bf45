package sync

import (
	"time"

	"github.com/snipsync/snipsync/internal/models"
)

// Status is the observability surface exposed to the UI layer: the current
// engine state, the last outcome and a statistics snapshot. Read-only;
// polled via Service.Status or pushed through Service.Updates.
type Status struct {
	LastSyncAt time.Time
	Trigger    string
	LastError  string
	Stats      models.SyncStatistics
	State      models.SessionState
}

// publishStatus records the new status and pushes it to subscribers without
// ever blocking the running session: if the subscriber is slow the update is
// dropped, the next one carries the fresher state anyway.
func (s *service) publishStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()

	select {
	case s.updates <- status:
	default:
	}
}

// Status returns the current engine status.
func (s *service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Updates returns the channel carrying status updates. Slow consumers miss
// intermediate states, never block the engine.
func (s *service) Updates() <-chan Status {
	return s.updates
}
