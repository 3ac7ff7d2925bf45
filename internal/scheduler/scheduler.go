// Package scheduler decides when sync sessions start. It admits triggers
// (manual, launch, background interval, debounce after local edits),
// guarantees at most one session runs at a time and coalesces triggers that
// arrive while a session is running into a single follow-up session.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/snipsync/snipsync/internal/models"
)

//go:generate moq -out runner_mock.go . Runner

// Runner runs one sync session. Satisfied by the sync engine.
type Runner interface {
	Sync(ctx context.Context, trigger string) (*models.SyncSession, error)
}

// Scheduler serializes sync sessions. The running flag is the advisory
// lock: failing to take it means "already running", not an error.
type Scheduler struct {
	runner   Runner
	logger   *slog.Logger
	settings models.SyncSettings

	mu         sync.Mutex
	running    bool
	hasPending bool
	pending    string
	debounce   *time.Timer
	interval   *time.Timer
	baseCtx    context.Context
	wg         sync.WaitGroup
}

// New creates a scheduler around the given runner.
func New(runner Runner, settings models.SyncSettings, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		logger:   logger,
		settings: settings,
		baseCtx:  context.Background(),
	}
}

// Trigger requests a sync session. If no session is running one starts
// immediately and Trigger returns true. If a session is running the request
// is coalesced into a single pending follow-up (at most one extra session,
// no unbounded queueing) and Trigger returns false.
func (s *Scheduler) Trigger(ctx context.Context, trigger string) bool {
	if !s.settings.Enabled {
		s.logger.Debug("sync disabled, ignoring trigger", "trigger", trigger)
		return false
	}

	s.mu.Lock()
	if s.running {
		if !s.hasPending {
			s.hasPending = true
			s.pending = trigger
			s.logger.Debug("session running, coalescing trigger", "trigger", trigger)
		}
		s.mu.Unlock()
		return false
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx, trigger)
	return true
}

// NotifyLocalChange (re)starts the debounce window. A burst of local edits
// collapses into one session that starts once no new edit has arrived for
// the configured quiet window.
func (s *Scheduler) NotifyLocalChange() {
	if !s.settings.Enabled || !s.settings.AutoSync {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.settings.DebounceWindow(), func() {
		s.Trigger(s.context(), models.TriggerDebounce)
	})
}

// Run drives the scheduler until ctx is cancelled: fires the launch trigger,
// arms the background interval timer and waits for the session in flight to
// finish before returning.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	if s.settings.SyncOnLaunch {
		s.Trigger(ctx, models.TriggerLaunch)
	}
	if s.settings.AutoSync && s.settings.SyncOnBackground {
		s.armInterval()
	}

	<-ctx.Done()

	s.mu.Lock()
	if s.debounce != nil {
		s.debounce.Stop()
	}
	if s.interval != nil {
		s.interval.Stop()
	}
	s.mu.Unlock()

	s.wg.Wait()
	return ctx.Err()
}

// run executes one session and, once it reaches a terminal state, re-arms
// the interval timer and starts the coalesced follow-up if one is pending.
func (s *Scheduler) run(ctx context.Context, trigger string) {
	defer s.wg.Done()

	session, err := s.runner.Sync(ctx, trigger)
	if err != nil {
		s.logger.Warn("sync session failed", "trigger", trigger, "error", err)
	} else if session != nil {
		s.logger.Debug("sync session finished",
			"trigger", trigger,
			"state", session.State.String())
	}

	s.mu.Lock()
	s.running = false
	next := s.pending
	hasNext := s.hasPending
	s.hasPending = false
	s.pending = ""
	s.mu.Unlock()

	// Timer triggers are re-armed only after the previous session reached
	// a terminal state; overlapping timers never stack work.
	if s.settings.AutoSync && s.settings.SyncOnBackground {
		s.armInterval()
	}

	if hasNext {
		s.Trigger(ctx, next)
	}
}

// armInterval schedules the next background trigger.
func (s *Scheduler) armInterval() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.interval != nil {
		s.interval.Stop()
	}
	s.interval = time.AfterFunc(s.settings.Interval(), func() {
		s.Trigger(s.context(), models.TriggerBackground)
	})
}

// context returns the lifecycle context for timer-started sessions.
func (s *Scheduler) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseCtx
}

// Running reports whether a session is currently in flight.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
