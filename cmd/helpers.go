package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deskhub/deskhub/internal/activity"
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
	"github.com/deskhub/deskhub/internal/vault"
)

// stores bundles every tool store over the shared database.
type stores struct {
	db       *db.DB
	records  *record.Store
	activity *activity.Store
	tasks    *tasks.Store
	notes    *notes.Store
	snippets *snippets.Store
	calendar *calendar.Store
	regex    *regexlab.Store
	pomodoro *pomodoro.Store
	mindmap  *mindmap.Store
	markdown *markdown.Store
	timezone *timezone.Store
	vault    *vault.Vault
}

// openStores opens the database under the configured data dir and builds
// all tool stores. The caller owns s.db.Close().
func openStores(cfg *config.Config) (*stores, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "deskhub.db")
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	records := record.NewStore(database)
	return &stores{
		db:       database,
		records:  records,
		activity: activity.NewStore(database),
		tasks:    tasks.NewStore(database),
		notes:    notes.NewStore(database, cfg.Mindmap.Palette),
		snippets: snippets.NewStore(database),
		calendar: calendar.NewStore(database),
		regex:    regexlab.NewStore(database),
		pomodoro: pomodoro.NewStore(database, records, pomodoro.Settings{
			WorkMinutes:       cfg.Pomodoro.WorkMinutes,
			ShortBreakMinutes: cfg.Pomodoro.ShortBreakMinutes,
			LongBreakMinutes:  cfg.Pomodoro.LongBreakMinutes,
			LongBreakInterval: cfg.Pomodoro.LongBreakInterval,
		}),
		mindmap:  mindmap.NewStore(records, cfg.Mindmap.Palette, cfg.Mindmap.BaseDistance, cfg.Mindmap.Decay),
		markdown: markdown.NewStore(records),
		timezone: timezone.NewStore(records),
		vault:    vault.New(cfg.VaultDir, cfg.Include, cfg.Exclude),
	}, nil
}
