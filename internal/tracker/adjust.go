package tracker

import (
	"context"
	"fmt"
	"math"

	"github.com/balkashynov/studylog/internal/logger"
	"github.com/balkashynov/studylog/internal/models"
)

// Adjuster appends manual corrections to the lifetime total.
type Adjuster struct {
	store RecordStore
	clock Clock

	// Upper bounds for the input fields. 0 means unbounded.
	MaxHours   int
	MaxMinutes int
}

// NewAdjuster creates an adjuster without upper bounds.
func NewAdjuster(store RecordStore, clock Clock) *Adjuster {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Adjuster{
		store: store,
		clock: clock,
	}
}

// Validate checks an adjustment without touching the store.
func (a *Adjuster) Validate(hours, minutes int) error {
	if hours < 0 || minutes < 0 {
		return fmt.Errorf("%w: hours and minutes must not be negative", ErrValidation)
	}
	if hours == 0 && minutes == 0 {
		return fmt.Errorf("%w: adjustment of zero time", ErrValidation)
	}
	if a.MaxHours > 0 && hours > a.MaxHours {
		return fmt.Errorf("%w: hours must be at most %d", ErrValidation, a.MaxHours)
	}
	if a.MaxMinutes > 0 && minutes > a.MaxMinutes {
		return fmt.Errorf("%w: minutes must be at most %d", ErrValidation, a.MaxMinutes)
	}
	// The signed total in seconds must fit in an int64 even when unbounded
	if int64(minutes) > math.MaxInt64/60 ||
		int64(hours) > (math.MaxInt64-int64(minutes)*60)/3600 {
		return fmt.Errorf("%w: adjustment too large", ErrValidation)
	}
	return nil
}

// Seconds converts an adjustment to its signed number of seconds.
func Seconds(hours, minutes int, removal bool) int64 {
	seconds := int64(hours)*3600 + int64(minutes)*60
	if removal {
		seconds = -seconds
	}
	return seconds
}

// Submit appends a zero-span adjustment row of hours and minutes,
// negative when removal is set.
func (a *Adjuster) Submit(ctx context.Context, hours, minutes int, removal bool) (uint, error) {
	if err := a.Validate(hours, minutes); err != nil {
		return 0, err
	}

	seconds := Seconds(hours, minutes, removal)
	now := a.clock.Now()

	id, err := a.store.Append(ctx, now, now, seconds, models.KindAdjustment)
	if err != nil {
		logger.Log().Error().Err(err).Int64("duration", seconds).Msg("adjustment not recorded")
		return 0, &StorageError{Op: "append", Err: err}
	}

	logger.Log().Info().Uint("id", id).Int64("duration", seconds).Str("kind", string(models.KindAdjustment)).Msg("adjustment recorded")
	return id, nil
}
