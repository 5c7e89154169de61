// Package dashboard serves the HTML shell and the landing-page API: tool
// navigation, per-tool counts and the recent-activity panel.
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
	"github.com/deskhub/deskhub/internal/db"
)

// Dashboard provides the landing page and its data endpoints.
type Dashboard struct {
	db       *db.DB
	activity *activity.Store
}

// New creates a new Dashboard.
func New(database *db.DB, act *activity.Store) *Dashboard {
	return &Dashboard{db: database, activity: act}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/dashboard/stats", d.handleStats)
	r.Get("/api/dashboard/recent", d.handleRecent)
}
