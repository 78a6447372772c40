// Package tracker implements the study session state machine, manual
// adjustments and lifetime totals on top of an append-only record store.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/balkashynov/studylog/internal/logger"
	"github.com/balkashynov/studylog/internal/models"
)

// RecordStore is the append-only session log.
type RecordStore interface {
	Append(ctx context.Context, start, end time.Time, durationSeconds int64, kind models.RecordKind) (uint, error)
	TotalSeconds(ctx context.Context) (int64, error)
}

// PendingRecord is a stopped session whose append failed.
type PendingRecord struct {
	Start    time.Time
	End      time.Time
	Duration int64
}

// Tracker is the Idle/Active session state machine.
// All methods are safe for concurrent use.
type Tracker struct {
	store RecordStore
	clock Clock

	// retryMu keeps two retries from appending the same record
	retryMu sync.Mutex

	mu        sync.Mutex
	active    bool
	startedAt time.Time
	elapsed   int64
	pending   []PendingRecord
}

// New creates an idle tracker. A nil clock means the system clock.
func New(store RecordStore, clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Tracker{
		store: store,
		clock: clock,
	}
}

// Start begins a session. Fails with ErrInvalidState if one is running.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return fmt.Errorf("%w: session already active since %s", ErrInvalidState, t.startedAt.Format("15:04:05"))
	}

	t.active = true
	t.startedAt = t.clock.Now()
	t.elapsed = 0

	logger.Log().Debug().Time("start", t.startedAt).Msg("session started")
	return nil
}

// Tick advances the elapsed counter by one second and returns it.
// No-op returning 0 while idle.
func (t *Tracker) Tick() int64 {
	elapsed, _ := t.tick()
	return elapsed
}

func (t *Tracker) tick() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return 0, false
	}
	t.elapsed++
	return t.elapsed, true
}

// Stop ends the running session and appends it to the store.
//
// The tracker is idle afterwards even if the append fails; in that case the
// record is kept in Pending and a *StorageError is returned.
func (t *Tracker) Stop(ctx context.Context) (models.Session, error) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return models.Session{}, fmt.Errorf("%w: no active session", ErrInvalidState)
	}

	start := t.startedAt
	end := t.clock.Now()
	duration := int64(end.Sub(start) / time.Second)
	if duration < 0 {
		// Wall clock went backwards
		duration = 0
		end = start
	}

	t.active = false
	t.startedAt = time.Time{}
	t.elapsed = 0
	t.mu.Unlock()

	record := models.Session{
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: duration,
		Kind:            models.KindTracked,
	}

	id, err := t.store.Append(ctx, start, end, duration, models.KindTracked)
	if err != nil {
		t.mu.Lock()
		t.pending = append(t.pending, PendingRecord{Start: start, End: end, Duration: duration})
		t.mu.Unlock()

		logger.Log().Error().Err(err).Int64("duration", duration).Msg("session not recorded, kept as pending")
		return record, &StorageError{Op: "append", Err: err}
	}

	record.ID = id
	logger.Log().Info().Uint("id", id).Int64("duration", duration).Msg("session recorded")
	return record, nil
}

// Active reports whether a session is running.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Elapsed returns the ticked seconds of the running session.
func (t *Tracker) Elapsed() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// StartedAt returns the start of the running session, zero when idle.
func (t *Tracker) StartedAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.startedAt
}

// Pending returns a copy of the records that could not be appended.
func (t *Tracker) Pending() []PendingRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]PendingRecord, len(t.pending))
	copy(out, t.pending)
	return out
}

// RetryPending appends buffered records in order, stopping at the first failure.
func (t *Tracker) RetryPending(ctx context.Context) error {
	t.retryMu.Lock()
	defer t.retryMu.Unlock()

	for {
		t.mu.Lock()
		if len(t.pending) == 0 {
			t.mu.Unlock()
			return nil
		}
		rec := t.pending[0]
		t.mu.Unlock()

		id, err := t.store.Append(ctx, rec.Start, rec.End, rec.Duration, models.KindTracked)
		if err != nil {
			logger.Log().Warn().Err(err).Msg("retry of pending session failed")
			return &StorageError{Op: "append", Err: err}
		}

		t.mu.Lock()
		t.pending = t.pending[1:]
		t.mu.Unlock()

		logger.Log().Info().Uint("id", id).Int64("duration", rec.Duration).Msg("pending session recorded")
	}
}
