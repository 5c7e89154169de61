package pomodoro

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/db"
	"github.com/deskhub/deskhub/internal/record"
)

// Store manages pomodoro settings and the session log.
type Store struct {
	db       *db.DB
	records  *record.Store
	defaults Settings
}

// NewStore creates a pomodoro store. defaults are the configured timer
// durations used when no settings record exists.
func NewStore(database *db.DB, records *record.Store, defaults Settings) *Store {
	return &Store{db: database, records: records, defaults: defaults}
}

// LoadSettings returns the persisted settings, falling back to the
// configured defaults when the record is absent or malformed.
func (s *Store) LoadSettings(ctx context.Context) (Settings, error) {
	var settings Settings
	_, err := s.records.Load(ctx, record.KeyPomodoroSettings, &settings, func() {
		settings = s.defaults
	})
	if err != nil {
		return Settings{}, err
	}
	if settings.WorkMinutes <= 0 {
		settings = s.defaults
	}
	return settings, nil
}

// SaveSettings rewrites the settings record.
func (s *Store) SaveSettings(ctx context.Context, settings Settings) error {
	if settings.WorkMinutes <= 0 || settings.ShortBreakMinutes <= 0 || settings.LongBreakMinutes <= 0 {
		return fmt.Errorf("durations must be positive")
	}
	if settings.LongBreakInterval <= 0 {
		return fmt.Errorf("long break interval must be positive")
	}
	return s.records.Save(ctx, record.KeyPomodoroSettings, settings)
}

// RecordSession appends a session to the log.
func (s *Store) RecordSession(ctx context.Context, sess Session) (*Session, error) {
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if !sess.Kind.Valid() {
		return nil, fmt.Errorf("invalid session kind %q", sess.Kind)
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pomodoro_sessions (id, kind, started_at, duration_sec, completed)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.Kind, sess.StartedAt, sess.DurationSec, sess.Completed,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	return &sess, nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, started_at, duration_sec, completed
		 FROM pomodoro_sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Kind, &sess.StartedAt, &sess.DurationSec, &sess.Completed); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Stats summarizes completed sessions for the given day (UTC).
func (s *Store) Stats(ctx context.Context, day time.Time) (DayStats, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	stats := DayStats{Day: dayStart.Format("2006-01-02")}
	err := s.db.QueryRowContext(ctx,
		`SELECT
		    COALESCE(SUM(CASE WHEN kind = 'work' THEN 1 ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN kind = 'work' THEN duration_sec ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN kind != 'work' THEN 1 ELSE 0 END), 0)
		 FROM pomodoro_sessions
		 WHERE completed = 1 AND started_at >= ? AND started_at < ?`,
		dayStart, dayEnd,
	).Scan(&stats.WorkSessions, &stats.FocusSeconds, &stats.BreakSessions)
	if err != nil {
		return DayStats{}, fmt.Errorf("computing stats: %w", err)
	}
	return stats, nil
}
