package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/balkashynov/studylog/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var errDiskFull = errors.New("disk full")

// memStore is an in-memory RecordStore that can be told to fail.
type memStore struct {
	mu      sync.Mutex
	records []models.Session
	fail    bool
}

func (s *memStore) Append(_ context.Context, start, end time.Time, durationSeconds int64, kind models.RecordKind) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return 0, errDiskFull
	}
	id := uint(len(s.records) + 1)
	s.records = append(s.records, models.Session{
		ID:              id,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: durationSeconds,
		Kind:            kind,
	})
	return id, nil
}

func (s *memStore) TotalSeconds(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return 0, errDiskFull
	}
	var total int64
	for _, r := range s.records {
		total += r.DurationSeconds
	}
	return total, nil
}

func (s *memStore) setFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *memStore) all() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Session, len(s.records))
	copy(out, s.records)
	return out
}
