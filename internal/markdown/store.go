// Package markdown implements the markdown editor tool: a single
// autosaved working document plus named files in the vault folder,
// with server-side HTML preview.
package markdown

import (
	"context"
	"fmt"

	"github.com/deskhub/deskhub/internal/record"
)

// StarterDocument seeds the working document the first time the editor
// is opened.
const StarterDocument = `# Scratch

Write anything here. The document autosaves as you type.

- Supports **GitHub-flavored** markdown
- Code blocks get syntax highlighting
- Use the vault to keep named notes
`

// Store persists the editor's working document.
type Store struct {
	records *record.Store
}

func NewStore(records *record.Store) *Store {
	return &Store{records: records}
}

// Load returns the current working document, falling back to the starter
// text when none has been saved yet.
func (s *Store) Load(ctx context.Context) (string, error) {
	content, err := s.records.LoadText(ctx, record.KeyMarkdown, StarterDocument)
	if err != nil {
		return "", fmt.Errorf("loading markdown document: %w", err)
	}
	return content, nil
}

// Save replaces the working document.
func (s *Store) Save(ctx context.Context, content string) error {
	if err := s.records.SaveText(ctx, record.KeyMarkdown, content); err != nil {
		return fmt.Errorf("saving markdown document: %w", err)
	}
	return nil
}
