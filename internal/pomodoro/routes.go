package pomodoro

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
)

// RegisterRoutes mounts the pomodoro API routes, including the websocket
// live timer.
func RegisterRoutes(r chi.Router, store *Store, act *activity.Store) {
	r.Route("/api/pomodoro", func(r chi.Router) {
		r.Get("/settings", handleGetSettings(store))
		r.Put("/settings", handlePutSettings(store, act))
		r.Get("/sessions", handleListSessions(store))
		r.Post("/sessions", handleRecordSession(store, act))
		r.Get("/stats", handleStats(store))
	})
	r.Get("/ws/pomodoro", handleTimer(store))
}

func handleGetSettings(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := store.LoadSettings(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	}
}

func handlePutSettings(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if err := store.SaveSettings(r.Context(), settings); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		_ = act.Record(r.Context(), "pomodoro", "update_settings", "", "changed timer settings")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	}
}

func handleListSessions(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		sessions, err := store.ListSessions(r.Context(), limit)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if sessions == nil {
			sessions = []Session{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sessions)
	}
}

func handleRecordSession(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sess Session
		if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if sess.DurationSec <= 0 {
			http.Error(w, `{"error":"duration_sec must be positive"}`, http.StatusBadRequest)
			return
		}

		created, err := store.RecordSession(r.Context(), sess)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		if created.Kind == KindWork && created.Completed {
			_ = act.Record(r.Context(), "pomodoro", "complete", created.ID, "finished a work session")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func handleStats(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := time.Now().UTC()
		if v := r.URL.Query().Get("day"); v != "" {
			parsed, err := time.Parse("2006-01-02", v)
			if err != nil {
				http.Error(w, `{"error":"day must be YYYY-MM-DD"}`, http.StatusBadRequest)
				return
			}
			day = parsed
		}

		stats, err := store.Stats(r.Context(), day)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}
