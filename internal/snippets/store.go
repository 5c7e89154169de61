package snippets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deskhub/deskhub/internal/db"
)

// Store persists snippets in SQLite.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new snippet and returns it with its generated ID.
func (s *Store) Create(ctx context.Context, snip Snippet) (Snippet, error) {
	if snip.Title == "" {
		return Snippet{}, fmt.Errorf("title is required")
	}
	if snip.Code == "" {
		return Snippet{}, fmt.Errorf("code is required")
	}

	snip.ID = uuid.New().String()
	now := time.Now().UTC()
	snip.CreatedAt = now
	snip.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snippets (id, title, language, code, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snip.ID, snip.Title, snip.Language, snip.Code, snip.Tags, snip.CreatedAt, snip.UpdatedAt,
	)
	if err != nil {
		return Snippet{}, fmt.Errorf("inserting snippet: %w", err)
	}
	return snip, nil
}

// Update rewrites a snippet's editable fields.
func (s *Store) Update(ctx context.Context, id string, snip Snippet) error {
	if snip.Title == "" || snip.Code == "" {
		return fmt.Errorf("title and code are required")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE snippets SET title = ?, language = ?, code = ?, tags = ?, updated_at = ? WHERE id = ?`,
		snip.Title, snip.Language, snip.Code, snip.Tags, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating snippet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("snippet %s not found", id)
	}
	return nil
}

// Delete removes a snippet.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snippets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting snippet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("snippet %s not found", id)
	}
	return nil
}

// GetByID returns a single snippet.
func (s *Store) GetByID(ctx context.Context, id string) (Snippet, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, language, code, tags, created_at, updated_at FROM snippets WHERE id = ?`, id)

	var snip Snippet
	err := row.Scan(&snip.ID, &snip.Title, &snip.Language, &snip.Code, &snip.Tags, &snip.CreatedAt, &snip.UpdatedAt)
	if err != nil {
		return Snippet{}, fmt.Errorf("snippet %s not found", id)
	}
	return snip, nil
}

// Search returns snippets whose title, code or tags contain the query as a
// substring, newest first. An empty query lists everything. An optional
// language narrows the results.
func (s *Store) Search(ctx context.Context, query, language string) ([]Snippet, error) {
	sqlQuery := `SELECT id, title, language, code, tags, created_at, updated_at FROM snippets WHERE 1=1`
	var args []any
	if query != "" {
		like := "%" + query + "%"
		sqlQuery += ` AND (title LIKE ? OR code LIKE ? OR tags LIKE ?)`
		args = append(args, like, like, like)
	}
	if language != "" {
		sqlQuery += ` AND language = ?`
		args = append(args, language)
	}
	sqlQuery += ` ORDER BY updated_at DESC`

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("searching snippets: %w", err)
	}
	defer rows.Close()

	var list []Snippet
	for rows.Next() {
		var snip Snippet
		if err := rows.Scan(&snip.ID, &snip.Title, &snip.Language, &snip.Code, &snip.Tags, &snip.CreatedAt, &snip.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning snippet: %w", err)
		}
		list = append(list, snip)
	}
	return list, rows.Err()
}
