package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/db"
)

// Store manages persistence of activity entries.
type Store struct {
	db *db.DB
}

// NewStore creates a new activity store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record appends an entry to the activity trail.
func (s *Store) Record(ctx context.Context, tool, action, entityID, summary string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_entries (id, timestamp, tool, action, entity_id, summary)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), time.Now().UTC(), tool, action, entityID, summary,
	)
	if err != nil {
		return fmt.Errorf("inserting activity entry: %w", err)
	}
	return nil
}

// List returns entries matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	query := `SELECT id, timestamp, tool, action, entity_id, summary
		 FROM activity_entries WHERE 1=1`
	args := []interface{}{}

	if filter.Tool != "" {
		query += " AND tool = ?"
		args = append(args, filter.Tool)
	}

	query += " ORDER BY timestamp DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Tool, &e.Action, &e.EntityID, &e.Summary); err != nil {
			return nil, fmt.Errorf("scanning activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
