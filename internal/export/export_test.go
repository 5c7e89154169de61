package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/deskhub/deskhub/internal/calendar"
	"github.com/deskhub/deskhub/internal/config"
	"github.com/deskhub/deskhub/internal/db"
	"github.com/deskhub/deskhub/internal/markdown"
	"github.com/deskhub/deskhub/internal/mindmap"
	"github.com/deskhub/deskhub/internal/notes"
	"github.com/deskhub/deskhub/internal/pomodoro"
	"github.com/deskhub/deskhub/internal/record"
	"github.com/deskhub/deskhub/internal/regexlab"
	"github.com/deskhub/deskhub/internal/snippets"
	"github.com/deskhub/deskhub/internal/tasks"
	"github.com/deskhub/deskhub/internal/timezone"
)

type silentReporter struct{ updates int }

func (r *silentReporter) Start(total int)                    {}
func (r *silentReporter) Update(current int, message string) { r.updates++ }
func (r *silentReporter) Finish()                            {}

func TestRunWritesAllToolFiles(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := config.DefaultConfig()
	records := record.NewStore(database)

	e := &Exporter{
		Tasks:    tasks.NewStore(database),
		Notes:    notes.NewStore(database, cfg.Mindmap.Palette),
		Snippets: snippets.NewStore(database),
		Calendar: calendar.NewStore(database),
		Regex:    regexlab.NewStore(database),
		Pomodoro: pomodoro.NewStore(database, records, pomodoro.Settings{WorkMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15, LongBreakInterval: 4}),
		Mindmap:  mindmap.NewStore(records, cfg.Mindmap.Palette, cfg.Mindmap.BaseDistance, cfg.Mindmap.Decay),
		Markdown: markdown.NewStore(records),
		Timezone: timezone.NewStore(records),
	}

	ctx := context.Background()
	if _, err := e.Tasks.Create(ctx, tasks.Task{Title: "pack bags"}); err != nil {
		t.Fatalf("Create task: %v", err)
	}

	outDir := filepath.Join(t.TempDir(), "backup")
	reporter := &silentReporter{}
	if err := e.Run(ctx, outDir, reporter); err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantFiles := []string{
		"tasks.json", "notes.json", "snippets.json", "calendar.json",
		"regex_patterns.json", "pomodoro_settings.json", "pomodoro_sessions.json",
		"mindmap.json", "markdown.json", "timezones.json",
	}
	for _, name := range wantFiles {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if reporter.updates != len(wantFiles) {
		t.Errorf("expected %d progress updates, got %d", len(wantFiles), reporter.updates)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "tasks.json"))
	if err != nil {
		t.Fatalf("reading tasks.json: %v", err)
	}
	var exported []tasks.Task
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("decoding tasks.json: %v", err)
	}
	if len(exported) != 1 || exported[0].Title != "pack bags" {
		t.Errorf("unexpected tasks export: %v", exported)
	}
}
