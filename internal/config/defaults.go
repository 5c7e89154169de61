package config

// DefaultPalette is the fixed set of colors assigned to new mind-map nodes
// and sticky notes.
var DefaultPalette = []string{
	"#e74c3c",
	"#e67e22",
	"#f1c40f",
	"#2ecc71",
	"#1abc9c",
	"#3498db",
	"#9b59b6",
	"#e84393",
}

// DefaultExcludes are glob patterns hidden from the markdown vault by default.
var DefaultExcludes = []string{
	".git/**",
	".obsidian/**",
	"node_modules/**",
	"*.tmp",
	"*.bak",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  ".deskhub",
		VaultDir: "vault",
		Include:  []string{"**/*.md"},
		Exclude:  DefaultExcludes,
		Server: ServerConfig{
			Port:     8420,
			AllowAll: false,
		},
		Pomodoro: PomodoroConfig{
			WorkMinutes:       25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			LongBreakInterval: 4,
		},
		Mindmap: MindmapConfig{
			BaseDistance: 200,
			Decay:        0.8,
			Palette:      DefaultPalette,
		},
	}
}
