package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8420 {
		t.Errorf("expected default port 8420, got %d", cfg.Server.Port)
	}
	if cfg.DataDir != ".deskhub" {
		t.Errorf("expected default data_dir %q, got %q", ".deskhub", cfg.DataDir)
	}
	if cfg.Pomodoro.WorkMinutes != 25 {
		t.Errorf("expected default work_minutes 25, got %d", cfg.Pomodoro.WorkMinutes)
	}
	if cfg.Mindmap.BaseDistance != 200 || cfg.Mindmap.Decay != 0.8 {
		t.Errorf("unexpected mindmap layout defaults: %+v", cfg.Mindmap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.deskhub.yml")

	original := DefaultConfig()
	original.Server.Port = 9999
	original.DataDir = "data"
	original.VaultDir = "notes"
	original.Include = []string{"**/*.md", "journal/**"}
	original.Pomodoro.WorkMinutes = 50
	original.Mindmap.Decay = 0.75

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.DataDir != original.DataDir {
		t.Errorf("data_dir: got %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.VaultDir != original.VaultDir {
		t.Errorf("vault_dir: got %q, want %q", loaded.VaultDir, original.VaultDir)
	}
	if loaded.Pomodoro.WorkMinutes != 50 {
		t.Errorf("work_minutes: got %d, want 50", loaded.Pomodoro.WorkMinutes)
	}
	if loaded.Mindmap.Decay != 0.75 {
		t.Errorf("decay: got %f, want 0.75", loaded.Mindmap.Decay)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Errorf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8420 {
		t.Errorf("expected defaults, got port %d", cfg.Server.Port)
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.yml")

	t.Setenv("DESKHUB_SERVER__PORT", "7777")
	t.Setenv("DESKHUB_DATA_DIR", "elsewhere")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("expected env-overridden port 7777, got %d", cfg.Server.Port)
	}
	if cfg.DataDir != "elsewhere" {
		t.Errorf("expected env-overridden data_dir, got %q", cfg.DataDir)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero work minutes", func(c *Config) { c.Pomodoro.WorkMinutes = 0 }},
		{"negative base distance", func(c *Config) { c.Mindmap.BaseDistance = -1 }},
		{"decay above one", func(c *Config) { c.Mindmap.Decay = 1.5 }},
		{"empty palette", func(c *Config) { c.Mindmap.Palette = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
