package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deskhub/deskhub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize deskhub configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the port, data and vault directories and writes a .deskhub.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
