package models

import (
	"time"
)

// RecordKind tells a tracked session apart from a manual adjustment
type RecordKind string

const (
	KindTracked    RecordKind = "tracked"
	KindAdjustment RecordKind = "adjustment"
)

// Session is one row of the append-only sessions log.
// Rows are never updated or deleted, so there are no UpdatedAt/DeletedAt columns.
type Session struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	StartTime       time.Time  `gorm:"not null" json:"start_time"`
	EndTime         time.Time  `gorm:"not null" json:"end_time"`
	DurationSeconds int64      `gorm:"not null" json:"duration_seconds"` // negative for removals
	Kind            RecordKind `gorm:"type:text;not null;default:tracked" json:"kind"`
}

// TableName pins the table name shared with existing tracker databases
func (Session) TableName() string {
	return "sessions"
}

// IsAdjustment reports whether the row is a manual correction
func (s Session) IsAdjustment() bool {
	if s.Kind != "" {
		return s.Kind == KindAdjustment
	}
	// Rows written without a kind: adjustments are the zero-span ones
	return s.StartTime.Equal(s.EndTime) && s.DurationSeconds != 0
}

// Duration returns the signed duration of the row
func (s Session) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}
