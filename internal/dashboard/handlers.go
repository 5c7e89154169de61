package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/deskhub/deskhub/internal/activity"
)

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	OpenTasks      int `json:"open_tasks"`
	StickyNotes    int `json:"sticky_notes"`
	Snippets       int `json:"snippets"`
	UpcomingEvents int `json:"upcoming_events"`
	SavedPatterns  int `json:"saved_patterns"`
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var stats statsResponse
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM tasks WHERE done = 0`, &stats.OpenTasks},
		{`SELECT COUNT(*) FROM sticky_notes`, &stats.StickyNotes},
		{`SELECT COUNT(*) FROM snippets`, &stats.Snippets},
		{`SELECT COUNT(*) FROM calendar_events WHERE day >= date('now')`, &stats.UpcomingEvents},
		{`SELECT COUNT(*) FROM regex_patterns`, &stats.SavedPatterns},
	}

	for _, c := range counts {
		if err := d.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, stats)
}

func (d *Dashboard) handleRecent(w http.ResponseWriter, r *http.Request) {
	entries, err := d.activity.List(r.Context(), activity.ListFilter{Limit: 10})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
