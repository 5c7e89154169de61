package mindmap

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
	"github.com/deskhub/deskhub/internal/record"
)

func setupTest(t *testing.T) (*Store, *activity.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	records := record.NewStore(database)
	store := NewStore(records, []string{"#e74c3c", "#3498db"}, 200, 0.8)
	return store, activity.NewStore(database)
}

func setupRouter(t *testing.T) (chi.Router, *Store) {
	t.Helper()
	store, act := setupTest(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, act)
	return r, store
}

func TestStoreLoadDefaultsToSingleRoot(t *testing.T) {
	store, _ := setupTest(t)

	root, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if root.ID != RootID {
		t.Errorf("expected root id %q, got %q", RootID, root.ID)
	}
	if len(root.Children) != 0 {
		t.Errorf("expected empty default tree, got %d children", len(root.Children))
	}
}

func TestStoreMalformedRecordFallsBack(t *testing.T) {
	store, _ := setupTest(t)
	ctx := context.Background()

	if err := store.records.SaveText(ctx, record.KeyMindmap, "{corrupt"); err != nil {
		t.Fatalf("SaveText: %v", err)
	}

	root, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load should fall back, not fail: %v", err)
	}
	if root.ID != RootID {
		t.Errorf("expected default tree, got root %q", root.ID)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, _ := setupTest(t)
	ctx := context.Background()

	root := buildTestTree()
	if err := store.Save(ctx, root); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Count(loaded) != Count(root) {
		t.Errorf("expected %d nodes, got %d", Count(root), Count(loaded))
	}
	if Find(loaded, "a2") == nil {
		t.Error("deep node lost in round trip")
	}
}

func TestPickColorFromPalette(t *testing.T) {
	store, _ := setupTest(t)

	valid := map[string]bool{"#e74c3c": true, "#3498db": true}
	for i := 0; i < 20; i++ {
		if c := store.PickColor(); !valid[c] {
			t.Fatalf("color %q not from palette", c)
		}
	}
}

func TestRoute_GetReturnsTreeAndPositions(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/mindmap/?width=1000&height=600", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp viewResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Tree == nil || resp.Tree.ID != RootID {
		t.Fatal("expected default tree in response")
	}
	p := resp.Positions[RootID]
	if p.X != 500 || p.Y != 300 {
		t.Errorf("expected root centered at (500, 300), got %+v", p)
	}
}

func TestRoute_AddNode(t *testing.T) {
	r, store := setupRouter(t)

	body := `{"parent_id":"root","content":"idea"}`
	req := httptest.NewRequest("POST", "/api/mindmap/nodes", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp addNodeResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Created || resp.ID == "" {
		t.Fatalf("expected created node, got %+v", resp)
	}

	// The mutation is persisted.
	root, _ := store.Load(context.Background())
	if Find(root, resp.ID) == nil {
		t.Error("new node not persisted")
	}
}

func TestRoute_AddNodeMissingParentIsNoOp(t *testing.T) {
	r, store := setupRouter(t)

	body := `{"parent_id":"ghost","content":"idea"}`
	req := httptest.NewRequest("POST", "/api/mindmap/nodes", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for no-op, got %d", w.Code)
	}

	var resp addNodeResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Created {
		t.Error("expected created=false for missing parent")
	}

	root, _ := store.Load(context.Background())
	if Count(root) != 1 {
		t.Errorf("tree grew on no-op: %d nodes", Count(root))
	}
}

func TestRoute_AddNodeRequiresContent(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest("POST", "/api/mindmap/nodes", strings.NewReader(`{"parent_id":"root"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRoute_DeleteRootRejected(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest("DELETE", "/api/mindmap/nodes/root", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRoute_DeleteSubtree(t *testing.T) {
	r, store := setupRouter(t)
	ctx := context.Background()

	store.Save(ctx, buildTestTree())

	req := httptest.NewRequest("DELETE", "/api/mindmap/nodes/a", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	root, _ := store.Load(ctx)
	if Find(root, "a") != nil || Find(root, "a1") != nil {
		t.Error("subtree still present after delete")
	}
}

func TestRoute_Rename(t *testing.T) {
	r, store := setupRouter(t)
	ctx := context.Background()

	store.Save(ctx, buildTestTree())

	body := `{"content":"Plans"}`
	req := httptest.NewRequest("PUT", "/api/mindmap/nodes/b", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	root, _ := store.Load(ctx)
	if got := Find(root, "b").Content; got != "Plans" {
		t.Errorf("expected renamed content, got %q", got)
	}
}

func TestRoute_RenameMissingNodeIsNoOp(t *testing.T) {
	store, act := setupTest(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, act)
	ctx := context.Background()

	store.Save(ctx, buildTestTree())

	body := `{"content":"Ghost"}`
	req := httptest.NewRequest("PUT", "/api/mindmap/nodes/nope", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	root, _ := store.Load(ctx)
	if Count(root) != 5 {
		t.Errorf("tree changed: expected 5 nodes, got %d", Count(root))
	}

	// A no-op rename must not show up in the activity feed.
	entries, err := act.List(ctx, activity.ListFilter{Tool: "mindmap"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, e := range entries {
		if e.Action == "rename_node" {
			t.Errorf("unexpected activity entry: %+v", e)
		}
	}
}

func TestRoute_ExportRoundTrip(t *testing.T) {
	r, store := setupRouter(t)
	store.Save(context.Background(), buildTestTree())

	req := httptest.NewRequest("GET", "/api/mindmap/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "mindmap.json") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	var parsed *Node
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if Count(parsed) != 5 {
		t.Errorf("expected 5 nodes in export, got %d", Count(parsed))
	}
	if Find(parsed, "a2") == nil {
		t.Error("deep node missing from export")
	}
}
