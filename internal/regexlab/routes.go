package regexlab

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
)

// RegisterRoutes mounts the regex tester API routes.
func RegisterRoutes(r chi.Router, store *Store, act *activity.Store) {
	r.Route("/api/regex", func(r chi.Router) {
		r.Post("/run", handleRun())
		r.Get("/patterns", handleListPatterns(store))
		r.Post("/patterns", handleSavePattern(store, act))
		r.Delete("/patterns/{id}", handleDeletePattern(store, act))
	})
}

type runRequest struct {
	Pattern string `json:"pattern"`
	Input   string `json:"input"`
}

func handleRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req runRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Run(req.Pattern, req.Input))
	}
}

func handleListPatterns(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []SavedPattern{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

func handleSavePattern(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p SavedPattern
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		saved, err := store.Save(r.Context(), p)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		_ = act.Record(r.Context(), "regex", "save", saved.ID, "saved pattern "+saved.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}
}

func handleDeletePattern(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
			return
		}
		_ = act.Record(r.Context(), "regex", "delete", id, "deleted saved pattern")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}
}
