// Package export writes every tool's data as pretty-printed JSON files
// into an output directory, for backup or moving between machines.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deskhub/deskhub/internal/calendar"
	"github.com/deskhub/deskhub/internal/markdown"
	"github.com/deskhub/deskhub/internal/mindmap"
	"github.com/deskhub/deskhub/internal/notes"
	"github.com/deskhub/deskhub/internal/pomodoro"
	"github.com/deskhub/deskhub/internal/progress"
	"github.com/deskhub/deskhub/internal/regexlab"
	"github.com/deskhub/deskhub/internal/snippets"
	"github.com/deskhub/deskhub/internal/tasks"
	"github.com/deskhub/deskhub/internal/timezone"
)

// Exporter dumps all tool data.
type Exporter struct {
	Tasks    *tasks.Store
	Notes    *notes.Store
	Snippets *snippets.Store
	Calendar *calendar.Store
	Regex    *regexlab.Store
	Pomodoro *pomodoro.Store
	Mindmap  *mindmap.Store
	Markdown *markdown.Store
	Timezone *timezone.Store
}

type dump struct {
	name string
	load func(ctx context.Context) (any, error)
}

// Run writes one <tool>.json per tool into outDir, reporting progress as
// it goes. It stops at the first tool that fails.
func (e *Exporter) Run(ctx context.Context, outDir string, reporter progress.Reporter) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	dumps := []dump{
		{"tasks", func(ctx context.Context) (any, error) {
			return e.Tasks.List(ctx, tasks.ListFilter{})
		}},
		{"notes", func(ctx context.Context) (any, error) {
			return e.Notes.List(ctx)
		}},
		{"snippets", func(ctx context.Context) (any, error) {
			return e.Snippets.Search(ctx, "", "")
		}},
		{"calendar", func(ctx context.Context) (any, error) {
			return e.Calendar.ListRange(ctx, "", "")
		}},
		{"regex_patterns", func(ctx context.Context) (any, error) {
			return e.Regex.List(ctx)
		}},
		{"pomodoro_settings", func(ctx context.Context) (any, error) {
			return e.Pomodoro.LoadSettings(ctx)
		}},
		{"pomodoro_sessions", func(ctx context.Context) (any, error) {
			return e.Pomodoro.ListSessions(ctx, 10000)
		}},
		{"mindmap", func(ctx context.Context) (any, error) {
			return e.Mindmap.Load(ctx)
		}},
		{"markdown", func(ctx context.Context) (any, error) {
			content, err := e.Markdown.Load(ctx)
			return map[string]string{"content": content}, err
		}},
		{"timezones", func(ctx context.Context) (any, error) {
			return e.Timezone.Zones(ctx)
		}},
	}

	reporter.Start(len(dumps))
	defer reporter.Finish()

	for i, d := range dumps {
		reporter.Update(i+1, d.name)

		value, err := d.load(ctx)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", d.name, err)
		}

		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", d.name, err)
		}
		data = append(data, '\n')

		path := filepath.Join(outDir, d.name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
