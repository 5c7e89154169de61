package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/db"
)

// Store manages persistence of tasks.
type Store struct {
	db *db.DB
}

// NewStore creates a new task store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create adds a new task, appended at the end of its category.
func (s *Store) Create(ctx context.Context, t Task) (*Task, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Category == "" {
		t.Category = "inbox"
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	var maxPos sql.NullInt64
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(position) FROM tasks WHERE category = ?`, t.Category,
	).Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("finding task position: %w", err)
	}
	t.Position = int(maxPos.Int64) + 1

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, notes, category, position, done, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Notes, t.Category, t.Position, t.Done, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}
	return &t, nil
}

// GetByID retrieves a task by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, notes, category, position, done, created_at, updated_at
		 FROM tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Notes, &t.Category, &t.Position, &t.Done, &t.CreatedAt, &t.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return &t, nil
}

// List returns tasks matching the filter, in board order.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Task, error) {
	query := `SELECT id, title, notes, category, position, done, created_at, updated_at
		 FROM tasks WHERE 1=1`
	args := []interface{}{}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.Done != nil {
		query += " AND done = ?"
		args = append(args, *filter.Done)
	}

	query += " ORDER BY category, position, created_at"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Notes, &t.Category, &t.Position, &t.Done, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update replaces the editable fields of a task.
func (s *Store) Update(ctx context.Context, id, title, notes, category string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, notes = ?, category = ?, updated_at = ? WHERE id = ?`,
		title, notes, category, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task not found: %s", id)
	}
	return nil
}

// Toggle flips the done flag of a task and returns the new state.
func (s *Store) Toggle(ctx context.Context, id string) (bool, error) {
	var done bool
	err := s.db.QueryRowContext(ctx,
		`UPDATE tasks SET done = NOT done, updated_at = ? WHERE id = ? RETURNING done`,
		time.Now().UTC(), id,
	).Scan(&done)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("task not found: %s", id)
	}
	if err != nil {
		return false, fmt.Errorf("toggling task: %w", err)
	}
	return done, nil
}

// Reorder assigns board positions for a category following the given id
// order. Unknown ids are ignored.
func (s *Store) Reorder(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting reorder: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET position = ?, updated_at = ? WHERE id = ?`, i, now, id,
		); err != nil {
			return fmt.Errorf("reordering task %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// Delete removes a task.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task not found: %s", id)
	}
	return nil
}
