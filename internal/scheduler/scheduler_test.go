package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipsync/snipsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSettings() models.SyncSettings {
	settings := models.DefaultSettings()
	settings.SyncIntervalSeconds = 3600
	settings.DebounceSeconds = 1
	return settings
}

// blockingRunner holds every session open until released.
type blockingRunner struct {
	started  chan string
	release  chan struct{}
	mu       sync.Mutex
	triggers []string
	active   atomic.Int32
	maxSeen  atomic.Int32
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{
		started: make(chan string, 16),
		release: make(chan struct{}),
	}
}

func (r *blockingRunner) Sync(ctx context.Context, trigger string) (*models.SyncSession, error) {
	n := r.active.Add(1)
	if n > r.maxSeen.Load() {
		r.maxSeen.Store(n)
	}
	defer r.active.Add(-1)

	r.mu.Lock()
	r.triggers = append(r.triggers, trigger)
	r.mu.Unlock()

	r.started <- trigger
	<-r.release

	return &models.SyncSession{Trigger: trigger, State: models.StateCompleted}, nil
}

func (r *blockingRunner) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.triggers))
	copy(out, r.triggers)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition was not reached in time")
}

func TestScheduler_TriggerStartsSession(t *testing.T) {
	runner := newBlockingRunner()
	s := New(runner, testSettings(), testLogger())

	admitted := s.Trigger(context.Background(), models.TriggerManual)
	assert.True(t, admitted)

	<-runner.started
	assert.True(t, s.Running())

	close(runner.release)
	waitFor(t, func() bool { return !s.Running() })
	assert.Equal(t, []string{models.TriggerManual}, runner.seen())
}

func TestScheduler_AtMostOneConcurrentSession(t *testing.T) {
	runner := newBlockingRunner()
	s := New(runner, testSettings(), testLogger())

	require.True(t, s.Trigger(context.Background(), models.TriggerManual))
	<-runner.started

	// every trigger during the session is rejected by the advisory lock
	for range 5 {
		assert.False(t, s.Trigger(context.Background(), models.TriggerManual))
	}

	close(runner.release)
	waitFor(t, func() bool { return !s.Running() && runner.active.Load() == 0 })

	assert.Equal(t, int32(1), runner.maxSeen.Load())
}

func TestScheduler_CoalescesToSingleFollowUp(t *testing.T) {
	runner := newBlockingRunner()
	s := New(runner, testSettings(), testLogger())

	require.True(t, s.Trigger(context.Background(), models.TriggerManual))
	<-runner.started

	// five triggers while running collapse into one pending follow-up
	// that keeps the first coalesced trigger's identity
	s.Trigger(context.Background(), models.TriggerBackground)
	s.Trigger(context.Background(), models.TriggerManual)
	s.Trigger(context.Background(), models.TriggerDebounce)
	s.Trigger(context.Background(), models.TriggerManual)
	s.Trigger(context.Background(), models.TriggerManual)

	close(runner.release)

	// the follow-up session starts and finishes
	<-runner.started
	waitFor(t, func() bool { return !s.Running() })

	assert.Equal(t, []string{models.TriggerManual, models.TriggerBackground}, runner.seen())
}

func TestScheduler_Disabled(t *testing.T) {
	runner := newBlockingRunner()
	settings := testSettings()
	settings.Enabled = false
	s := New(runner, settings, testLogger())

	assert.False(t, s.Trigger(context.Background(), models.TriggerManual))
	s.NotifyLocalChange()

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, runner.seen())
}

func TestScheduler_DebounceCollapsesEditBurst(t *testing.T) {
	runner := newBlockingRunner()
	settings := testSettings()
	settings.DebounceSeconds = 1
	s := New(runner, settings, testLogger())

	// a burst of edits keeps resetting the quiet window
	for range 10 {
		s.NotifyLocalChange()
		time.Sleep(2 * time.Millisecond)
	}

	trigger := <-runner.started
	assert.Equal(t, models.TriggerDebounce, trigger)

	close(runner.release)
	waitFor(t, func() bool { return !s.Running() })

	assert.Equal(t, []string{models.TriggerDebounce}, runner.seen(), "one session for the whole burst")
}

func TestScheduler_DebounceDisabledWithAutoSync(t *testing.T) {
	runner := newBlockingRunner()
	settings := testSettings()
	settings.AutoSync = false
	s := New(runner, settings, testLogger())

	s.NotifyLocalChange()
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, runner.seen())
}

func TestScheduler_RunFiresLaunchTrigger(t *testing.T) {
	runner := newBlockingRunner()
	s := New(runner, testSettings(), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	trigger := <-runner.started
	assert.Equal(t, models.TriggerLaunch, trigger)

	close(runner.release)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{models.TriggerLaunch}, runner.seen())
}

func TestScheduler_RunWaitsForSessionInFlight(t *testing.T) {
	runner := newBlockingRunner()
	settings := testSettings()
	settings.SyncOnLaunch = false
	s := New(runner, settings, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.True(t, s.Trigger(ctx, models.TriggerManual))
	<-runner.started

	cancel()
	select {
	case <-done:
		t.Fatal("Run returned while a session was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(runner.release)
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}
