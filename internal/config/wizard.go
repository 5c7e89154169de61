package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to deskhub! Let's set up your dashboard.")
	fmt.Println()

	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:   "Port for the dashboard server",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	dataPrompt := promptui.Prompt{
		Label:   "Data directory (SQLite database and records)",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir prompt: %w", err)
	}

	vaultPrompt := promptui.Prompt{
		Label:   "Markdown vault directory",
		Default: cfg.VaultDir,
	}
	if cfg.VaultDir, err = vaultPrompt.Run(); err != nil {
		return nil, fmt.Errorf("vault dir prompt: %w", err)
	}

	workPrompt := promptui.Select{
		Label: "Pomodoro work length",
		Items: []string{"25 minutes (classic)", "50 minutes (deep work)", "15 minutes (short bursts)"},
	}
	workIdx, _, err := workPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("pomodoro prompt: %w", err)
	}
	workMinutes := []int{25, 50, 15}
	cfg.Pomodoro.WorkMinutes = workMinutes[workIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println("Run `deskhub serve` to start the dashboard.")

	return cfg, nil
}
