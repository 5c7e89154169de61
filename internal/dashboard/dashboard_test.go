package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/deskhub/deskhub/internal/activity"
	"github.com/deskhub/deskhub/internal/db"
	"github.com/deskhub/deskhub/internal/tasks"
)

func setupTest(t *testing.T) (*Dashboard, *db.DB, *activity.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	act := activity.NewStore(database)
	return New(database, act), database, act
}

func TestServeIndex(t *testing.T) {
	d, _, _ := setupTest(t)
	r := chi.NewRouter()
	d.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "deskhub") || !strings.Contains(body, "/tools/mindmap") {
		t.Errorf("shell missing navigation: %s", body[:min(len(body), 200)])
	}
}

func TestStats(t *testing.T) {
	d, database, _ := setupTest(t)
	r := chi.NewRouter()
	d.RegisterRoutes(r)

	taskStore := tasks.NewStore(database)
	ctx := context.Background()
	if _, err := taskStore.Create(ctx, tasks.Task{Title: "open"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	done, err := taskStore.Create(ctx, tasks.Task{Title: "done"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := taskStore.Toggle(ctx, done.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var stats statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.OpenTasks != 1 {
		t.Errorf("expected 1 open task, got %d", stats.OpenTasks)
	}
}

func TestRecentActivity(t *testing.T) {
	d, _, act := setupTest(t)
	r := chi.NewRouter()
	d.RegisterRoutes(r)

	if err := act.Record(context.Background(), "tasks", "create", "t1", "added task"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/recent", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var entries []activity.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decoding entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Summary != "added task" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestServeNotFound(t *testing.T) {
	d, _, _ := setupTest(t)

	rec := httptest.NewRecorder()
	d.ServeNotFound(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
