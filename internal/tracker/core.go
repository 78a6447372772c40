package tracker

import (
	"context"

	"github.com/balkashynov/studylog/internal/models"
)

// Core is the command surface used by the presentation layer.
type Core struct {
	store    RecordStore
	tracker  *Tracker
	adjuster *Adjuster
}

// NewCore wires a tracker and an adjuster to one store and clock.
func NewCore(store RecordStore, clock Clock, maxHours, maxMinutes int) *Core {
	adjuster := NewAdjuster(store, clock)
	adjuster.MaxHours = maxHours
	adjuster.MaxMinutes = maxMinutes

	return &Core{
		store:    store,
		tracker:  New(store, clock),
		adjuster: adjuster,
	}
}

// Tracker exposes the session state machine for display and tick drivers.
func (c *Core) Tracker() *Tracker {
	return c.tracker
}

// Adjuster exposes the adjustment service, mainly for input validation.
func (c *Core) Adjuster() *Adjuster {
	return c.adjuster
}

func (c *Core) StartSession() error {
	return c.tracker.Start()
}

func (c *Core) StopSession(ctx context.Context) (models.Session, error) {
	return c.tracker.Stop(ctx)
}

func (c *Core) Tick() int64 {
	return c.tracker.Tick()
}

func (c *Core) SubmitAdjustment(ctx context.Context, hours, minutes int, removal bool) (uint, error) {
	return c.adjuster.Submit(ctx, hours, minutes, removal)
}

// TotalSeconds sums every stored duration, adjustments included.
func (c *Core) TotalSeconds(ctx context.Context) (int64, error) {
	total, err := c.store.TotalSeconds(ctx)
	if err != nil {
		return 0, &StorageError{Op: "total", Err: err}
	}
	return total, nil
}

// TotalHours is TotalSeconds / 3600.
func (c *Core) TotalHours(ctx context.Context) (float64, error) {
	total, err := c.TotalSeconds(ctx)
	if err != nil {
		return 0, err
	}
	return float64(total) / 3600, nil
}
