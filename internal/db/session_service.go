package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/balkashynov/studylog/internal/models"
)

// Append inserts a new session row and returns its ID once committed
func (s *Store) Append(ctx context.Context, start, end time.Time, durationSeconds int64, kind models.RecordKind) (uint, error) {
	if kind == "" {
		kind = models.KindTracked
	}

	session := models.Session{
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: durationSeconds,
		Kind:            kind,
	}

	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return 0, fmt.Errorf("failed to append session: %w", err)
	}

	return session.ID, nil
}

// TotalSeconds sums duration_seconds over every row. Never cached.
func (s *Store) TotalSeconds(ctx context.Context) (int64, error) {
	var total sql.NullInt64

	err := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Select("SUM(duration_seconds)").
		Row().
		Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum sessions: %w", err)
	}

	// SUM over an empty table is NULL
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

// ListSessions returns the most recent rows first. limit <= 0 means all rows.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]models.Session, error) {
	var sessions []models.Session

	query := s.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}
