package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/db"
)

// Store persists calendar events in SQLite.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

func validate(e Event) error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if _, err := time.Parse(DayFormat, e.Day); err != nil {
		return fmt.Errorf("day must be YYYY-MM-DD: %w", err)
	}
	if e.Untimed() {
		return nil
	}
	if e.StartMinute == nil || e.EndMinute == nil {
		return fmt.Errorf("start and end minutes must be given together or both omitted")
	}
	if *e.StartMinute < 0 || *e.EndMinute > 24*60 || *e.StartMinute >= *e.EndMinute {
		return fmt.Errorf("event times must satisfy 0 <= start < end <= 1440")
	}
	return nil
}

// Create inserts a new event and returns it with its generated ID.
func (s *Store) Create(ctx context.Context, e Event) (Event, error) {
	if err := validate(e); err != nil {
		return Event{}, err
	}

	e.ID = uuid.New().String()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calendar_events (id, title, notes, color, day, start_minute, end_minute, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Notes, e.Color, e.Day, e.StartMinute, e.EndMinute, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return Event{}, fmt.Errorf("inserting event: %w", err)
	}
	return e, nil
}

// Update rewrites an existing event's fields.
func (s *Store) Update(ctx context.Context, id string, e Event) error {
	if err := validate(e); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE calendar_events
		 SET title = ?, notes = ?, color = ?, day = ?, start_minute = ?, end_minute = ?, updated_at = ?
		 WHERE id = ?`,
		e.Title, e.Notes, e.Color, e.Day, e.StartMinute, e.EndMinute, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("event %s not found", id)
	}
	return nil
}

// Delete removes an event.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("event %s not found", id)
	}
	return nil
}

// GetByID returns a single event.
func (s *Store) GetByID(ctx context.Context, id string) (Event, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, notes, color, day, start_minute, end_minute, created_at, updated_at
		 FROM calendar_events WHERE id = ?`, id)

	var e Event
	err := row.Scan(&e.ID, &e.Title, &e.Notes, &e.Color, &e.Day, &e.StartMinute, &e.EndMinute, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return Event{}, fmt.Errorf("event %s not found", id)
	}
	return e, nil
}

// ListRange returns events with from <= day <= to, ordered by day then
// start time. Empty bounds are open-ended.
func (s *Store) ListRange(ctx context.Context, from, to string) ([]Event, error) {
	query := `SELECT id, title, notes, color, day, start_minute, end_minute, created_at, updated_at
	          FROM calendar_events WHERE 1=1`
	var args []any
	if from != "" {
		query += ` AND day >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND day <= ?`
		args = append(args, to)
	}
	query += ` ORDER BY day, start_minute`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Notes, &e.Color, &e.Day, &e.StartMinute, &e.EndMinute, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Month groups a month's events by day. month is YYYY-MM.
func (s *Store) Month(ctx context.Context, month string) (map[string][]Event, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("month must be YYYY-MM: %w", err)
	}
	end := start.AddDate(0, 1, -1)

	events, err := s.ListRange(ctx, start.Format(DayFormat), end.Format(DayFormat))
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]Event)
	for _, e := range events {
		byDay[e.Day] = append(byDay[e.Day], e)
	}
	return byDay, nil
}
