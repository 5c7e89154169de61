package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deskhub/deskhub/internal/activity"
	"github.com/deskhub/deskhub/internal/calendar"
	"github.com/deskhub/deskhub/internal/config"
	"github.com/deskhub/deskhub/internal/dashboard"
	"github.com/deskhub/deskhub/internal/jsonviewer"
	"github.com/deskhub/deskhub/internal/markdown"
	"github.com/deskhub/deskhub/internal/mindmap"
	"github.com/deskhub/deskhub/internal/notes"
	"github.com/deskhub/deskhub/internal/pomodoro"
	"github.com/deskhub/deskhub/internal/regexlab"
	"github.com/deskhub/deskhub/internal/server"
	"github.com/deskhub/deskhub/internal/snippets"
	"github.com/deskhub/deskhub/internal/tasks"
	"github.com/deskhub/deskhub/internal/timezone"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long:  `Starts the deskhub web server hosting all tools over the local SQLite database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		s, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer s.db.Close()

		logger := newLogger()
		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAll,
		}, s.db, logger)

		registerAllRoutes(srv, s)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down")
			srv.Shutdown(context.Background())
		}()

		logger.Info("starting deskhub", "version", Version, "port", cfg.Server.Port, "data_dir", cfg.DataDir)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

// registerAllRoutes wires every tool's routes onto the server.
func registerAllRoutes(srv *server.Server, s *stores) {
	r := srv.Router()

	dash := dashboard.New(s.db, s.activity)
	dash.RegisterRoutes(r)
	srv.SetNotFoundPage(dash.ServeNotFound)

	activity.RegisterRoutes(r, s.activity)
	tasks.RegisterRoutes(r, s.tasks, s.activity)
	notes.RegisterRoutes(r, s.notes, s.activity)
	snippets.RegisterRoutes(r, s.snippets, s.activity)
	calendar.RegisterRoutes(r, s.calendar, s.activity)
	regexlab.RegisterRoutes(r, s.regex, s.activity)
	pomodoro.RegisterRoutes(r, s.pomodoro, s.activity)
	mindmap.RegisterRoutes(r, s.mindmap, s.activity)
	markdown.RegisterRoutes(r, s.markdown, s.vault, s.activity)
	timezone.RegisterRoutes(r, s.timezone, s.activity)
	jsonviewer.RegisterRoutes(r)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
