package jsonviewer

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the JSON viewer API routes. The viewer is
// stateless: nothing it does touches persisted data.
func RegisterRoutes(r chi.Router) {
	r.Route("/api/json", func(r chi.Router) {
		r.Post("/parse", handleParse())
		r.Post("/format", handleTransform(Format))
		r.Post("/minify", handleTransform(Minify))
	})
}

type sourceRequest struct {
	Source string `json:"source"`
}

type parseResponse struct {
	Tree  *Node       `json:"tree,omitempty"`
	Error *ParseError `json:"error,omitempty"`
}

func handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		tree, perr := Parse(req.Source)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(parseResponse{Tree: tree, Error: perr})
	}
}

type transformResponse struct {
	Result string      `json:"result,omitempty"`
	Error  *ParseError `json:"error,omitempty"`
}

func handleTransform(transform func(string) (string, *ParseError)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		result, perr := transform(req.Source)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transformResponse{Result: result, Error: perr})
	}
}
