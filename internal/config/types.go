package config

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// PomodoroConfig holds the default timer durations, in minutes.
type PomodoroConfig struct {
	WorkMinutes       int `yaml:"work_minutes" koanf:"work_minutes"`
	ShortBreakMinutes int `yaml:"short_break_minutes" koanf:"short_break_minutes"`
	LongBreakMinutes  int `yaml:"long_break_minutes" koanf:"long_break_minutes"`
	LongBreakInterval int `yaml:"long_break_interval" koanf:"long_break_interval"`
}

// MindmapConfig holds the radial layout constants and node color palette.
type MindmapConfig struct {
	BaseDistance float64  `yaml:"base_distance" koanf:"base_distance"`
	Decay        float64  `yaml:"decay" koanf:"decay"`
	Palette      []string `yaml:"palette" koanf:"palette"`
}

// Config is the top-level deskhub configuration, corresponding to .deskhub.yml.
type Config struct {
	DataDir  string         `yaml:"data_dir" koanf:"data_dir"`
	VaultDir string         `yaml:"vault_dir" koanf:"vault_dir"`
	Include  []string       `yaml:"include" koanf:"include"`
	Exclude  []string       `yaml:"exclude" koanf:"exclude"`
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Pomodoro PomodoroConfig `yaml:"pomodoro" koanf:"pomodoro"`
	Mindmap  MindmapConfig  `yaml:"mindmap" koanf:"mindmap"`
}
