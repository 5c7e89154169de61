package snippets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
	"github.com/deskhub/deskhub/internal/render"
)

// RegisterRoutes mounts the snippet manager API routes.
func RegisterRoutes(r chi.Router, store *Store, act *activity.Store) {
	r.Route("/api/snippets", func(r chi.Router) {
		r.Get("/", handleSearch(store))
		r.Post("/", handleCreate(store, act))
		r.Get("/{id}", handleGet(store))
		r.Get("/{id}/render", handleRender(store))
		r.Put("/{id}", handleUpdate(store, act))
		r.Delete("/{id}", handleDelete(store, act))
	})
}

func handleSearch(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.Search(r.Context(), r.URL.Query().Get("q"), r.URL.Query().Get("language"))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []Snippet{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

func handleCreate(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snip Snippet
		if err := json.NewDecoder(r.Body).Decode(&snip); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		created, err := store.Create(r.Context(), snip)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		_ = act.Record(r.Context(), "snippets", "create", created.ID, "saved snippet "+created.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snip, err := store.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snip)
	}
}

type renderResponse struct {
	HTML string `json:"html"`
}

func handleRender(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snip, err := store.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
			return
		}

		html, err := render.CodeToHTML(snip.Code, snip.Language)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(renderResponse{HTML: html})
	}
}

func handleUpdate(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var snip Snippet
		if err := json.NewDecoder(r.Body).Decode(&snip); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if err := store.Update(r.Context(), id, snip); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		_ = act.Record(r.Context(), "snippets", "update", id, "edited snippet")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}

func handleDelete(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
			return
		}
		_ = act.Record(r.Context(), "snippets", "delete", id, "deleted snippet")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}
}
