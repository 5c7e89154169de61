package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deskhub/deskhub/internal/config"
	"github.com/deskhub/deskhub/internal/export"
	"github.com/deskhub/deskhub/internal/progress"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tool data as JSON files",
	Long:  `Writes one pretty-printed JSON file per tool into the output directory, for backup or moving between machines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		s, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer s.db.Close()

		e := &export.Exporter{
			Tasks:    s.tasks,
			Notes:    s.notes,
			Snippets: s.snippets,
			Calendar: s.calendar,
			Regex:    s.regex,
			Pomodoro: s.pomodoro,
			Mindmap:  s.mindmap,
			Markdown: s.markdown,
			Timezone: s.timezone,
		}
		return e.Run(cmd.Context(), exportOut, progress.NewReporter())
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "deskhub-export", "output directory")
	rootCmd.AddCommand(exportCmd)
}
