package mindmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
)

// viewResponse is the tree plus its derived positions for the requested
// container size.
type viewResponse struct {
	Tree      *Node            `json:"tree"`
	Positions map[string]Point `json:"positions"`
}

// RegisterRoutes mounts the mind-map API routes.
func RegisterRoutes(r chi.Router, store *Store, act *activity.Store) {
	r.Route("/api/mindmap", func(r chi.Router) {
		r.Get("/", handleGet(store))
		r.Post("/nodes", handleAddNode(store, act))
		r.Put("/nodes/{id}", handleRename(store, act))
		r.Delete("/nodes/{id}", handleDelete(store, act))
		r.Get("/export", handleExport(store))
	})
}

// containerSize reads the container dimensions from the query string,
// defaulting to a 1200x800 canvas.
func containerSize(r *http.Request) (w, h float64) {
	w, h = 1200, 800
	if v := r.URL.Query().Get("width"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			w = f
		}
	}
	if v := r.URL.Query().Get("height"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			h = f
		}
	}
	return w, h
}

func (s *Store) view(root *Node, w, h float64) viewResponse {
	return viewResponse{
		Tree:      root,
		Positions: Layout(root, w, h, s.base, s.decay),
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		root, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		cw, ch := containerSize(r)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.view(root, cw, ch))
	}
}

type addNodeRequest struct {
	ParentID string `json:"parent_id"`
	Content  string `json:"content"`
}

type addNodeResponse struct {
	ID      string `json:"id,omitempty"`
	Created bool   `json:"created"`
	viewResponse
}

func handleAddNode(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addNodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Content == "" {
			http.Error(w, `{"error":"content is required"}`, http.StatusBadRequest)
			return
		}
		if req.ParentID == "" {
			req.ParentID = RootID
		}

		root, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		updated, id := AddChild(root, req.ParentID, req.Content, store.PickColor())
		if id != "" {
			if err := store.Save(r.Context(), updated); err != nil {
				http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
				return
			}
			_ = act.Record(r.Context(), "mindmap", "add_node", id, fmt.Sprintf("added node %q", req.Content))
		}

		cw, ch := containerSize(r)
		resp := addNodeResponse{ID: id, Created: id != "", viewResponse: store.view(updated, cw, ch)}
		w.Header().Set("Content-Type", "application/json")
		if resp.Created {
			w.WriteHeader(http.StatusCreated)
		}
		json.NewEncoder(w).Encode(resp)
	}
}

type renameRequest struct {
	Content string `json:"content"`
}

func handleRename(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req renameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Content == "" {
			http.Error(w, `{"error":"content is required"}`, http.StatusBadRequest)
			return
		}

		root, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		// A missing id leaves the tree unchanged; nothing to save or log then.
		updated := Rename(root, id, req.Content)
		if updated != root {
			if err := store.Save(r.Context(), updated); err != nil {
				http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
				return
			}
			_ = act.Record(r.Context(), "mindmap", "rename_node", id, fmt.Sprintf("renamed node to %q", req.Content))
		}

		cw, ch := containerSize(r)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.view(updated, cw, ch))
	}
}

func handleDelete(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		root, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		updated, err := DeleteSubtree(root, id)
		if errors.Is(err, ErrDeleteRoot) {
			http.Error(w, `{"error":"`+ErrDeleteRoot.Error()+`"}`, http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		if updated != root {
			if err := store.Save(r.Context(), updated); err != nil {
				http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
				return
			}
			_ = act.Record(r.Context(), "mindmap", "delete_subtree", id, "deleted subtree")
		}

		cw, ch := containerSize(r)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.view(updated, cw, ch))
	}
}

// handleExport streams the current tree as a downloadable pretty-printed
// JSON file. Positions are derived state and are not part of the export.
func handleExport(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		root, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="mindmap.json"`)
		w.Write(data)
	}
}
