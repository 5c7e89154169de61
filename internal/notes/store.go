package notes

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/db"
)

// Store manages persistence of sticky notes.
type Store struct {
	db      *db.DB
	palette []string
}

// NewStore creates a new sticky note store. palette is the fixed set of
// colors assigned to notes created without one.
func NewStore(database *db.DB, palette []string) *Store {
	return &Store{db: database, palette: palette}
}

// Create adds a new note to the board.
func (s *Store) Create(ctx context.Context, n Note) (*Note, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Color == "" && len(s.palette) > 0 {
		n.Color = s.palette[rand.IntN(len(s.palette))]
	}
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sticky_notes (id, content, color, x, y, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Content, n.Color, n.X, n.Y, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting note: %w", err)
	}
	return &n, nil
}

// List returns all notes, oldest first.
func (s *Store) List(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, color, x, y, created_at, updated_at
		 FROM sticky_notes ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Content, &n.Color, &n.X, &n.Y, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetByID retrieves a note by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (*Note, error) {
	var n Note
	err := s.db.QueryRowContext(ctx,
		`SELECT id, content, color, x, y, created_at, updated_at
		 FROM sticky_notes WHERE id = ?`, id,
	).Scan(&n.ID, &n.Content, &n.Color, &n.X, &n.Y, &n.CreatedAt, &n.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}
	return &n, nil
}

// Update replaces a note's content and color.
func (s *Store) Update(ctx context.Context, id, content, color string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE sticky_notes SET content = ?, color = ?, updated_at = ? WHERE id = ?`,
		content, color, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("note not found: %s", id)
	}
	return nil
}

// Move records a note's new board position.
func (s *Store) Move(ctx context.Context, id string, x, y float64) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE sticky_notes SET x = ?, y = ?, updated_at = ? WHERE id = ?`,
		x, y, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("moving note: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("note not found: %s", id)
	}
	return nil
}

// Delete removes a note.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sticky_notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("note not found: %s", id)
	}
	return nil
}
