// Package record implements the persisted-record convention shared by the
// document-shaped tools: each tool owns one whole-document blob stored under
// a fixed key, rewritten in full after every mutation. A missing or
// malformed blob falls back to the tool's hardcoded default instead of
// surfacing an error.
package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deskhub/deskhub/internal/db"
)

// Well-known record keys, one per document-shaped tool.
const (
	KeyMindmap          = "mindmap"
	KeyMarkdown         = "markdown"
	KeyTimezones        = "timezones"
	KeyPomodoroSettings = "pomodoro_settings"
)

// Store reads and writes whole-document records.
type Store struct {
	db *db.DB
}

// NewStore creates a record store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Load reads the record under key and unmarshals it into v. If the record
// is absent or does not parse, fallback is called to populate v with the
// tool's default instead; the returned bool reports whether the fallback
// was taken. Load never returns a parse error.
func (s *Store) Load(ctx context.Context, key string, v any, fallback func()) (bool, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM documents WHERE key = ?`, key,
	).Scan(&content)

	if err == sql.ErrNoRows {
		fallback()
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading record %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(content), v); err != nil {
		fallback()
		return true, nil
	}
	return false, nil
}

// LoadText reads a raw-text record. Absent records yield the fallback text.
func (s *Store) LoadText(ctx context.Context, key, fallback string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM documents WHERE key = ?`, key,
	).Scan(&content)

	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading record %q: %w", key, err)
	}
	return content, nil
}

// Save marshals v and rewrites the whole record under key.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling record %q: %w", key, err)
	}
	return s.SaveText(ctx, key, string(data))
}

// SaveText rewrites the whole record under key with raw text content.
func (s *Store) SaveText(ctx context.Context, key, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (key, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		key, content, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing record %q: %w", key, err)
	}
	return nil
}
