package markdown

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
	"github.com/deskhub/deskhub/internal/render"
	"github.com/deskhub/deskhub/internal/vault"
)

// RegisterRoutes mounts the markdown editor API routes.
func RegisterRoutes(r chi.Router, store *Store, v *vault.Vault, act *activity.Store) {
	r.Route("/api/markdown", func(r chi.Router) {
		r.Get("/", handleGet(store))
		r.Put("/", handleSave(store, act))
		r.Post("/preview", handlePreview())
		r.Get("/files", handleListFiles(v))
		r.Get("/files/*", handleReadFile(v))
		r.Put("/files/*", handleWriteFile(v, act))
	})
}

type documentResponse struct {
	Content string `json:"content"`
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(documentResponse{Content: content})
	}
}

func handleSave(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req documentResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if err := store.Save(r.Context(), req.Content); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		_ = act.Record(r.Context(), "markdown", "save", "", "saved working document")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
	}
}

type previewResponse struct {
	HTML string `json:"html"`
}

func handlePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req documentResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		html, err := render.ToHTML(req.Content)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(previewResponse{HTML: html})
	}
}

func handleListFiles(v *vault.Vault) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := v.List()
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(files)
	}
}

func handleReadFile(v *vault.Vault) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := chi.URLParam(r, "*")
		content, err := v.Read(path)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(documentResponse{Content: content})
	}
}

func handleWriteFile(v *vault.Vault, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := chi.URLParam(r, "*")
		var req documentResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if err := v.Write(path, req.Content); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		_ = act.Record(r.Context(), "markdown", "save_file", path, "saved vault file "+path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
	}
}
