// Package sync implements the synchronization engine: a state machine that
// reconciles locally mutated records against the shared remote store.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/snipsync/snipsync/internal/conflict"
	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/remote"
	"github.com/snipsync/snipsync/internal/storage"
	"github.com/snipsync/snipsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the interface of the sync engine.
type Service interface {
	// Sync runs one full synchronization session. The returned session is
	// always non-nil once a session was admitted; on failure it carries the
	// terminal Failed state alongside the error.
	Sync(ctx context.Context, trigger string) (*models.SyncSession, error)

	// PendingCount returns the number of records awaiting synchronization
	PendingCount(ctx context.Context) (int, error)

	// Status returns the current observability snapshot
	Status() Status

	// Updates returns the status notification channel
	Updates() <-chan Status
}

// StatsRecorder archives terminal sessions into statistics.
type StatsRecorder interface {
	RecordSession(ctx context.Context, session *models.SyncSession)
	Snapshot() models.SyncStatistics
}

// Config carries the engine's injected collaborators.
type Config struct {
	Remote    remote.Client
	Records   storage.RecordStore
	Meta      storage.MetadataStore
	Conflicts storage.ConflictStore
	Stats     StatsRecorder
	Logger    *slog.Logger
	Settings  models.SyncSettings

	// MaxRetries bounds backoff retries per network call; 0 means the
	// default of 3 extra attempts.
	MaxRetries uint64
	// InitialBackoff is the first retry delay; 0 means 500ms.
	InitialBackoff time.Duration
}

type service struct {
	remote    remote.Client
	records   storage.RecordStore
	meta      storage.MetadataStore
	conflicts storage.ConflictStore
	stats     StatsRecorder
	tracker   *Tracker
	resolver  *conflict.Resolver
	logger    *slog.Logger
	updates   chan Status

	maxRetries     uint64
	initialBackoff time.Duration

	mu     stdsync.RWMutex
	status Status
}

// NewService creates a sync engine from its injected collaborators.
func NewService(cfg Config) (Service, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sync settings: %w", err)
	}

	resolver, err := conflict.NewResolver(cfg.Settings.ConflictStrategy, cfg.Logger)
	if err != nil {
		return nil, err
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}
	initialBackoff := cfg.InitialBackoff
	if initialBackoff == 0 {
		initialBackoff = 500 * time.Millisecond
	}

	return &service{
		remote:         cfg.Remote,
		records:        cfg.Records,
		meta:           cfg.Meta,
		conflicts:      cfg.Conflicts,
		stats:          cfg.Stats,
		tracker:        NewTracker(cfg.Records, cfg.Meta, cfg.Logger),
		resolver:       resolver,
		logger:         cfg.Logger,
		updates:        make(chan Status, 16),
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
		status:         Status{State: models.StateNotStarted},
	}, nil
}

// diff partitions the combined change set of one session.
type diff struct {
	apply     []*models.SyncableRecord // remote changes to persist locally
	push      []*models.SyncableRecord // local changes to upload
	conflicts []*models.Conflict
}

// Sync runs one session through the state machine:
// CheckingAvailability -> FetchingRemoteChanges -> Diffing ->
// ResolvingConflicts -> UploadingLocalChanges -> PersistingToken ->
// Completed, with Failed reachable from every non-terminal state.
func (s *service) Sync(ctx context.Context, trigger string) (*models.SyncSession, error) {
	session := &models.SyncSession{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Trigger:   trigger,
		State:     models.StateNotStarted,
	}

	s.logger.Info("starting sync session", "session_id", session.ID, "trigger", trigger)

	// Local bookkeeping is read before any network call so a broken local
	// store aborts the session without touching the remote side.
	dirty, err := s.tracker.DirtyRecords(ctx)
	if err != nil {
		return session, s.fail(ctx, session, failure(ReasonStorageUnavailable, err))
	}
	token, err := s.meta.GetChangeToken(ctx)
	if err != nil {
		return session, s.fail(ctx, session, failure(ReasonStorageUnavailable, err))
	}
	baselines, err := s.meta.ListBaselines(ctx)
	if err != nil {
		return session, s.fail(ctx, session, failure(ReasonStorageUnavailable, err))
	}

	if err := s.checkAvailability(ctx, session); err != nil {
		return session, s.fail(ctx, session, err)
	}

	remoteRecords, newToken, serr := s.fetchRemoteChanges(ctx, session, token)
	if serr != nil {
		return session, s.fail(ctx, session, serr)
	}

	d, serr := s.runDiff(ctx, session, dirty, remoteRecords, baselines)
	if serr != nil {
		return session, s.fail(ctx, session, serr)
	}

	if serr := s.resolveConflicts(ctx, session, d); serr != nil {
		return session, s.fail(ctx, session, serr)
	}

	uploaded, serr := s.uploadLocalChanges(ctx, session, d, baselines)
	if serr != nil {
		return session, s.fail(ctx, session, serr)
	}

	if err := s.persistToken(ctx, session, d, uploaded, newToken); err != nil {
		return session, s.fail(ctx, session, err)
	}

	s.complete(ctx, session)
	return session, nil
}

// PendingCount returns the number of records awaiting synchronization.
func (s *service) PendingCount(ctx context.Context) (int, error) {
	return s.tracker.PendingCount(ctx)
}

// checkAvailability verifies the remote store is reachable and the account
// is valid before any data moves.
func (s *service) checkAvailability(ctx context.Context, session *models.SyncSession) *Error {
	s.setState(session, models.StateCheckingAvailability)
	if err := s.cancelled(ctx); err != nil {
		return err
	}

	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.remote.CheckAvailability(ctx)
	})
	if err != nil {
		return classifyRemoteError(ctx, err)
	}
	return nil
}

// fetchRemoteChanges pulls the remote change stream page by page until the
// store reports no more changes.
func (s *service) fetchRemoteChanges(ctx context.Context, session *models.SyncSession, token string) ([]*models.SyncableRecord, string, *Error) {
	s.setState(session, models.StateFetchingRemoteChanges)

	var records []*models.SyncableRecord
	for {
		if err := s.cancelled(ctx); err != nil {
			return nil, "", err
		}

		var page *api.PullResponse
		err := s.withRetry(ctx, func(ctx context.Context) error {
			var pullErr error
			page, pullErr = s.remote.Pull(ctx, token)
			return pullErr
		})
		if err != nil {
			return nil, "", classifyRemoteError(ctx, err)
		}

		for i := range page.Records {
			records = append(records, remoteToModel(&page.Records[i]))
		}
		token = page.Token

		if !page.HasMore {
			break
		}
	}

	s.logger.Info("fetched remote changes", "session_id", session.ID, "records", len(records))

	return records, token, nil
}

// runDiff partitions every remote change and every dirty local record into
// one-sided changes and conflicts.
func (s *service) runDiff(ctx context.Context, session *models.SyncSession, dirty, remoteRecords []*models.SyncableRecord, baselines map[string]int64) (*diff, *Error) {
	s.setState(session, models.StateDiffing)
	if err := s.cancelled(ctx); err != nil {
		return nil, err
	}

	localByID := make(map[string]*models.SyncableRecord, len(dirty))
	for _, record := range dirty {
		localByID[record.ID] = record
	}
	remoteByID := make(map[string]*models.SyncableRecord, len(remoteRecords))
	for _, record := range remoteRecords {
		remoteByID[record.ID] = record
	}

	ids := make(map[string]struct{}, len(localByID)+len(remoteByID))
	for id := range localByID {
		ids[id] = struct{}{}
	}
	for id := range remoteByID {
		ids[id] = struct{}{}
	}

	d := &diff{}
	for id := range ids {
		local := localByID[id]
		if local == nil {
			// A remote change may touch a clean local record.
			existing, err := s.records.GetRecord(ctx, id)
			if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
				return nil, failure(ReasonStorageUnavailable, err)
			}
			local = existing
		}
		rem := remoteByID[id]

		switch outcome := conflict.Detect(local, rem, baselines[id]); outcome {
		case conflict.OutcomeLocalOnly:
			d.push = append(d.push, local)
		case conflict.OutcomeRemoteOnly:
			d.apply = append(d.apply, applyRemote(rem))
		case conflict.OutcomeConflict:
			session.ConflictsDetected++
			d.conflicts = append(d.conflicts, &models.Conflict{
				ID:         uuid.New().String(),
				RecordID:   id,
				Strategy:   s.resolver.Strategy(),
				DetectedAt: time.Now(),
				Local:      local,
				Remote:     rem,
			})
		case conflict.OutcomeNone:
			// Already converged; nothing to do.
		}
	}

	s.logger.Info("diff complete",
		"session_id", session.ID,
		"apply", len(d.apply),
		"push", len(d.push),
		"conflicts", len(d.conflicts))

	return d, nil
}

// resolveConflicts applies the configured strategy to each detected
// conflict. Manual conflicts are queued and counted but never block the
// rest of the session.
func (s *service) resolveConflicts(ctx context.Context, session *models.SyncSession, d *diff) *Error {
	s.setState(session, models.StateResolvingConflicts)
	if err := s.cancelled(ctx); err != nil {
		return err
	}

	for _, c := range d.conflicts {
		resolution, err := s.resolver.Resolve(c)
		if err != nil {
			return failure(ReasonStorageUnavailable, err)
		}

		if resolution.Queued {
			if err := s.conflicts.EnqueueConflict(ctx, c); err != nil {
				return failure(ReasonStorageUnavailable, err)
			}
			session.ConflictsQueued++
			continue
		}

		session.ConflictsResolved++
		if resolution.Winner == conflict.WinnerLocal {
			d.push = append(d.push, resolution.Record)
		} else {
			d.apply = append(d.apply, resolution.Record)
		}
	}

	d.conflicts = nil
	return nil
}

// uploadLocalChanges pushes the outgoing records. Records the store rejects
// because another device pushed first are re-run through conflict detection
// and, when the local side still wins, pushed once more. Records that lose
// the second round stay dirty for the next session.
func (s *service) uploadLocalChanges(ctx context.Context, session *models.SyncSession, d *diff, baselines map[string]int64) ([]*models.SyncableRecord, *Error) {
	s.setState(session, models.StateUploadingLocalChanges)

	uploaded, rejected, err := s.pushRecords(ctx, session, d.push)
	if err != nil {
		return nil, err
	}

	if len(rejected) > 0 {
		retryPush, err := s.rehandleRejected(ctx, session, d, rejected, baselines)
		if err != nil {
			return nil, err
		}

		secondUploaded, stillRejected, err := s.pushRecords(ctx, session, retryPush)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, secondUploaded...)

		// At most one extra round; anything still rejected stays dirty.
		for _, r := range stillRejected {
			s.logger.Warn("record still rejected after retry, leaving dirty",
				"session_id", session.ID, "record_id", r.ID)
		}
	}

	return uploaded, nil
}

// pushRecords performs one push round and splits the verdict.
func (s *service) pushRecords(ctx context.Context, session *models.SyncSession, push []*models.SyncableRecord) ([]*models.SyncableRecord, []api.RejectedRecord, *Error) {
	if len(push) == 0 {
		return nil, nil, nil
	}
	if err := s.cancelled(ctx); err != nil {
		return nil, nil, err
	}

	wire := make([]api.Record, 0, len(push))
	for _, record := range push {
		wire = append(wire, modelToRemote(record))
	}

	var resp *api.PushResponse
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var pushErr error
		resp, pushErr = s.remote.Push(ctx, wire)
		return pushErr
	})
	if err != nil {
		return nil, nil, classifyRemoteError(ctx, err)
	}

	byID := make(map[string]*models.SyncableRecord, len(push))
	for _, record := range push {
		byID[record.ID] = record
	}

	var uploaded []*models.SyncableRecord
	for _, accepted := range resp.Accepted {
		record, ok := byID[accepted.ID]
		if !ok {
			s.logger.Warn("store accepted unknown record", "record_id", accepted.ID)
			continue
		}
		final := record.Clone()
		final.RemoteVersion = accepted.RemoteVersion
		final.LocalVersion = accepted.RemoteVersion
		uploaded = append(uploaded, final)
		session.RecordsUploaded++
	}

	return uploaded, resp.Rejected, nil
}

// rehandleRejected re-runs conflict detection for records another device
// beat to the store, using the fresher remote version the store returned.
func (s *service) rehandleRejected(ctx context.Context, session *models.SyncSession, d *diff, rejected []api.RejectedRecord, baselines map[string]int64) ([]*models.SyncableRecord, *Error) {
	pushed := make(map[string]*models.SyncableRecord, len(d.push))
	for _, record := range d.push {
		pushed[record.ID] = record
	}

	var retryPush []*models.SyncableRecord
	for _, rej := range rejected {
		local, ok := pushed[rej.ID]
		if !ok || rej.Current == nil {
			s.logger.Warn("rejected record has no usable remote state, leaving dirty",
				"session_id", session.ID, "record_id", rej.ID)
			continue
		}
		rem := remoteToModel(rej.Current)

		if conflict.Detect(local, rem, baselines[rej.ID]) != conflict.OutcomeConflict {
			// The fresher remote side is the only change we can act on.
			d.apply = append(d.apply, applyRemote(rem))
			continue
		}

		session.ConflictsDetected++
		c := &models.Conflict{
			ID:         uuid.New().String(),
			RecordID:   rej.ID,
			Strategy:   s.resolver.Strategy(),
			DetectedAt: time.Now(),
			Local:      local,
			Remote:     rem,
		}

		resolution, err := s.resolver.Resolve(c)
		if err != nil {
			return nil, failure(ReasonStorageUnavailable, err)
		}
		switch {
		case resolution.Queued:
			if err := s.conflicts.EnqueueConflict(ctx, c); err != nil {
				return nil, failure(ReasonStorageUnavailable, err)
			}
			session.ConflictsQueued++
		case resolution.Winner == conflict.WinnerLocal:
			session.ConflictsResolved++
			retryPush = append(retryPush, resolution.Record)
		default:
			session.ConflictsResolved++
			d.apply = append(d.apply, resolution.Record)
		}
	}

	return retryPush, nil
}

// persistToken durably commits the session outcome. The token advances only
// together with the records and baselines it describes; a crash before this
// point means a safe re-fetch next session, never data loss.
func (s *service) persistToken(ctx context.Context, session *models.SyncSession, d *diff, uploaded []*models.SyncableRecord, token string) *Error {
	s.setState(session, models.StatePersistingToken)
	if err := s.cancelled(ctx); err != nil {
		return err
	}

	commit := storage.SessionCommit{
		Token:     token,
		Baselines: make(map[string]int64, len(d.apply)+len(uploaded)),
	}
	for _, record := range d.apply {
		commit.Records = append(commit.Records, record)
		commit.Baselines[record.ID] = record.RemoteVersion
		session.RecordsDownloaded++
	}
	for _, record := range uploaded {
		commit.Records = append(commit.Records, record)
		commit.Baselines[record.ID] = record.RemoteVersion
	}

	if err := s.meta.CommitSession(ctx, commit); err != nil {
		return failure(ReasonStorageUnavailable, err)
	}

	return nil
}

// complete moves the session to Completed and archives it.
func (s *service) complete(ctx context.Context, session *models.SyncSession) {
	session.State = models.StateCompleted
	session.EndedAt = time.Now()
	s.stats.RecordSession(ctx, session)

	s.logger.Info("sync session completed",
		"session_id", session.ID,
		"uploaded", session.RecordsUploaded,
		"downloaded", session.RecordsDownloaded,
		"conflicts_detected", session.ConflictsDetected,
		"conflicts_resolved", session.ConflictsResolved,
		"conflicts_queued", session.ConflictsQueued)

	s.publishStatus(Status{
		State:      models.StateCompleted,
		Trigger:    session.Trigger,
		LastSyncAt: session.EndedAt,
		Stats:      s.stats.Snapshot(),
	})
}

// fail moves the session to Failed, archives it and keeps the last
// persisted token untouched so the next session resumes from the last
// known-good point.
func (s *service) fail(ctx context.Context, session *models.SyncSession, err *Error) error {
	session.State = models.StateFailed
	session.EndedAt = time.Now()
	session.Error = err.Error()
	s.stats.RecordSession(ctx, session)

	s.logger.Error("sync session failed",
		"session_id", session.ID,
		"reason", string(err.Reason),
		"error", err)

	prev := s.Status()
	s.publishStatus(Status{
		State:      models.StateFailed,
		Trigger:    session.Trigger,
		LastSyncAt: prev.LastSyncAt,
		LastError:  err.Error(),
		Stats:      s.stats.Snapshot(),
	})

	return err
}

// setState advances the session state machine and publishes the transition.
func (s *service) setState(session *models.SyncSession, state models.SessionState) {
	session.State = state
	s.logger.Debug("session state transition", "session_id", session.ID, "state", state.String())

	prev := s.Status()
	s.publishStatus(Status{
		State:      state,
		Trigger:    session.Trigger,
		LastSyncAt: prev.LastSyncAt,
		LastError:  prev.LastError,
		Stats:      prev.Stats,
	})
}

// cancelled converts a cancelled context into the session failure. Checked
// between network calls only; calls in flight finish or time out on their
// own.
func (s *service) cancelled(ctx context.Context) *Error {
	if err := ctx.Err(); err != nil {
		return failure(ReasonCancelled, err)
	}
	return nil
}

// withRetry retries op with exponential backoff while the failure is
// transient, up to the configured attempt bound.
func (s *service) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.initialBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if remote.IsTransient(err) {
			s.logger.Warn("transient network failure, will retry", "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

// remoteToModel converts a wire record into the local representation.
// LocalVersion stays zero; the local counter is unknown to the store.
func remoteToModel(record *api.Record) *models.SyncableRecord {
	payload := make([]byte, len(record.Payload))
	copy(payload, record.Payload)

	return &models.SyncableRecord{
		ID:            record.ID,
		Kind:          record.Kind,
		Payload:       payload,
		RemoteVersion: record.RemoteVersion,
		ModifiedAt:    record.ModifiedAt,
		Deleted:       record.Deleted,
	}
}

// modelToRemote converts a local record into its wire form.
func modelToRemote(record *models.SyncableRecord) api.Record {
	return api.Record{
		ID:            record.ID,
		Kind:          record.Kind,
		Payload:       record.Payload,
		Checksum:      record.Checksum(),
		LocalVersion:  record.LocalVersion,
		RemoteVersion: record.RemoteVersion,
		ModifiedAt:    record.ModifiedAt,
		Deleted:       record.Deleted,
	}
}

// applyRemote produces the local state for a one-sided remote change: the
// remote content with the version counters aligned to the acknowledged
// remote version.
func applyRemote(rem *models.SyncableRecord) *models.SyncableRecord {
	applied := rem.Clone()
	applied.LocalVersion = rem.RemoteVersion
	return applied
}
