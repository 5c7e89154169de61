package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "deskhub",
	Short: "Local-first productivity dashboard",
	Long: `Deskhub hosts a set of small productivity tools — tasks, sticky notes,
pomodoro timer, markdown editor, calendar, timezone converter, JSON
viewer, mind map, snippets and a regex tester — as one local web app
over a single SQLite file. It also speaks MCP so AI agents can add
tasks and notes or look up snippets.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".deskhub.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger builds the process logger, honoring --verbose.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}
