package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deskhub/deskhub/internal/config"
	mcpserver "github.com/deskhub/deskhub/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing task, note and snippet tools for AI agents like Claude Code.`,
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

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "deskhub MCP server started on stdio (data=%s)\n", cfg.DataDir)

		srv := mcpserver.NewServer(s.tasks, s.notes, s.snippets, s.activity)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
