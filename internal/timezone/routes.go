package timezone

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
)

// RegisterRoutes mounts the timezone converter API routes.
func RegisterRoutes(r chi.Router, store *Store, act *activity.Store) {
	r.Route("/api/timezones", func(r chi.Router) {
		r.Get("/", handleZones(store))
		r.Put("/", handleSaveZones(store, act))
		r.Post("/convert", handleConvert(store))
	})
}

type zonesResponse struct {
	Zones []string `json:"zones"`
}

func handleZones(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones, err := store.Zones(r.Context())
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(zonesResponse{Zones: zones})
	}
}

func handleSaveZones(store *Store, act *activity.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zonesResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		if err := store.SaveZones(r.Context(), req.Zones); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		_ = act.Record(r.Context(), "timezones", "save", "", "updated saved zone list")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
	}
}

type convertRequest struct {
	Time  string   `json:"time"`
	From  string   `json:"from"`
	Zones []string `json:"zones,omitempty"` // defaults to the saved list
}

type convertResponse struct {
	Results []Conversion `json:"results"`
}

func handleConvert(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req convertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		targets := req.Zones
		if len(targets) == 0 {
			saved, err := store.Zones(r.Context())
			if err != nil {
				http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
				return
			}
			targets = saved
		}

		results, err := Convert(req.Time, req.From, targets)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(convertResponse{Results: results})
	}
}
