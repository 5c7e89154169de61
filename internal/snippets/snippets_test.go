package snippets

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
)

func setupTest(t *testing.T) (*Store, *activity.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database), activity.NewStore(database)
}

func TestCreateRequiresTitleAndCode(t *testing.T) {
	store, _ := setupTest(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, Snippet{Code: "x := 1"}); err == nil {
		t.Error("expected error for missing title")
	}
	if _, err := store.Create(ctx, Snippet{Title: "t"}); err == nil {
		t.Error("expected error for missing code")
	}
}

func TestSearchMatchesTitleCodeAndTags(t *testing.T) {
	store, _ := setupTest(t)
	ctx := context.Background()

	mustCreate := func(s Snippet) {
		t.Helper()
		if _, err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	mustCreate(Snippet{Title: "retry loop", Language: "go", Code: "for i := 0; i < 3; i++ {}", Tags: "patterns"})
	mustCreate(Snippet{Title: "window fn", Language: "sql", Code: "SELECT row_number() OVER ()", Tags: "analytics"})
	mustCreate(Snippet{Title: "misc", Language: "go", Code: "fmt.Println(42)", Tags: "retry,backoff"})

	byTitle, err := store.Search(ctx, "retry loop", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "retry loop" {
		t.Errorf("title search: %v", byTitle)
	}

	byCode, _ := store.Search(ctx, "row_number", "")
	if len(byCode) != 1 || byCode[0].Language != "sql" {
		t.Errorf("code search: %v", byCode)
	}

	byTag, _ := store.Search(ctx, "retry", "")
	if len(byTag) != 2 {
		t.Errorf("tag search: expected 2, got %d", len(byTag))
	}

	byLang, _ := store.Search(ctx, "retry", "go")
	if len(byLang) != 1 || byLang[0].Title != "misc" {
		t.Errorf("language filter: %v", byLang)
	}

	all, _ := store.Search(ctx, "", "")
	if len(all) != 3 {
		t.Errorf("empty query: expected 3, got %d", len(all))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	store, _ := setupTest(t)
	ctx := context.Background()

	created, err := store.Create(ctx, Snippet{Title: "t", Code: "old"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Update(ctx, created.ID, Snippet{Title: "t2", Code: "new", Language: "go"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	fetched, _ := store.GetByID(ctx, created.ID)
	if fetched.Title != "t2" || fetched.Code != "new" || fetched.Language != "go" {
		t.Errorf("update not persisted: %+v", fetched)
	}

	if err := store.Update(ctx, "missing", Snippet{Title: "t", Code: "c"}); err == nil {
		t.Error("expected error updating missing snippet")
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); err == nil {
		t.Error("expected error fetching deleted snippet")
	}
}

func TestRenderRoute(t *testing.T) {
	store, act := setupTest(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, act)

	body := `{"title":"hello","language":"go","code":"package main"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/snippets/", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created Snippet
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created snippet: %v", err)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/snippets/"+created.ID+"/render", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("render: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.Contains(resp.HTML, "<pre") || !strings.Contains(resp.HTML, "main") {
		t.Errorf("expected highlighted block, got %q", resp.HTML)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/snippets/nope/render", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing snippet, got %d", rec.Code)
	}
}
