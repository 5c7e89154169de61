package regexlab

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/db"
)

// SavedPattern is a pattern kept in the library together with the test
// input it was developed against.
type SavedPattern struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pattern   string    `json:"pattern"`
	Input     string    `json:"input,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists the saved-pattern library.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save adds a pattern to the library. Only compilable patterns are kept.
func (s *Store) Save(ctx context.Context, p SavedPattern) (SavedPattern, error) {
	if p.Name == "" {
		return SavedPattern{}, fmt.Errorf("name is required")
	}
	if _, err := regexp.Compile(p.Pattern); err != nil {
		return SavedPattern{}, fmt.Errorf("pattern does not compile: %w", err)
	}

	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO regex_patterns (id, name, pattern, input, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Pattern, p.Input, p.Note, p.CreatedAt,
	)
	if err != nil {
		return SavedPattern{}, fmt.Errorf("inserting pattern: %w", err)
	}
	return p, nil
}

// List returns the saved patterns, newest first.
func (s *Store) List(ctx context.Context) ([]SavedPattern, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, pattern, input, note, created_at FROM regex_patterns ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing patterns: %w", err)
	}
	defer rows.Close()

	var list []SavedPattern
	for rows.Next() {
		var p SavedPattern
		if err := rows.Scan(&p.ID, &p.Name, &p.Pattern, &p.Input, &p.Note, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning pattern: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete removes a saved pattern.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM regex_patterns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pattern: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("pattern %s not found", id)
	}
	return nil
}
