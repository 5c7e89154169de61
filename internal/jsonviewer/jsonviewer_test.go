package jsonviewer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestParseBuildsTypedTree(t *testing.T) {
	tree, perr := Parse(`{"name":"dev","tags":["go","sql"],"count":3,"active":true,"extra":null}`)
	if perr != nil {
		t.Fatalf("unexpected parse error: %+v", perr)
	}

	if tree.Kind != KindObject || tree.Path != "$" {
		t.Fatalf("root: %+v", tree)
	}
	if len(tree.Children) != 5 {
		t.Fatalf("expected 5 children, got %d", len(tree.Children))
	}

	// Object keys come back sorted.
	wantKeys := []string{"active", "count", "extra", "name", "tags"}
	for i, c := range tree.Children {
		if c.Key != wantKeys[i] {
			t.Errorf("child %d: expected key %q, got %q", i, wantKeys[i], c.Key)
		}
	}

	byKey := map[string]Node{}
	for _, c := range tree.Children {
		byKey[c.Key] = c
	}

	if n := byKey["name"]; n.Kind != KindString || n.Value != "dev" || n.Path != "$.name" {
		t.Errorf("name node: %+v", n)
	}
	if n := byKey["count"]; n.Kind != KindNumber || n.Value != "3" {
		t.Errorf("count node: %+v", n)
	}
	if n := byKey["active"]; n.Kind != KindBool || n.Value != "true" {
		t.Errorf("active node: %+v", n)
	}
	if n := byKey["extra"]; n.Kind != KindNull || n.Value != "" {
		t.Errorf("extra node: %+v", n)
	}

	tags := byKey["tags"]
	if tags.Kind != KindArray || len(tags.Children) != 2 {
		t.Fatalf("tags node: %+v", tags)
	}
	if tags.Children[1].Path != "$.tags[1]" || tags.Children[1].Value != "sql" {
		t.Errorf("tags[1]: %+v", tags.Children[1])
	}
}

func TestParsePreservesNumberText(t *testing.T) {
	tree, perr := Parse(`[123456789012345678, 0.1]`)
	if perr != nil {
		t.Fatalf("unexpected parse error: %+v", perr)
	}
	if tree.Children[0].Value != "123456789012345678" {
		t.Errorf("large integer mangled: %q", tree.Children[0].Value)
	}
	if tree.Children[1].Value != "0.1" {
		t.Errorf("decimal mangled: %q", tree.Children[1].Value)
	}
}

func TestParseErrorsAreInline(t *testing.T) {
	tree, perr := Parse(`{"broken":`)
	if tree != nil {
		t.Error("expected nil tree for broken input")
	}
	if perr == nil || perr.Message == "" {
		t.Fatal("expected inline parse error")
	}

	_, perr = Parse(`{"a":1} trailing`)
	if perr == nil {
		t.Fatal("expected error for trailing data")
	}
	if perr.Offset == 0 {
		t.Errorf("expected nonzero offset, got %+v", perr)
	}
}

func TestFormatAndMinify(t *testing.T) {
	formatted, perr := Format(`{"a":[1,2]}`)
	if perr != nil {
		t.Fatalf("Format: %+v", perr)
	}
	if !strings.Contains(formatted, "\n  \"a\"") {
		t.Errorf("expected indented output, got %q", formatted)
	}

	minified, perr := Minify(formatted)
	if perr != nil {
		t.Fatalf("Minify: %+v", perr)
	}
	if minified != `{"a":[1,2]}` {
		t.Errorf("expected compact output, got %q", minified)
	}

	if _, perr := Format(`{]`); perr == nil {
		t.Error("expected inline error for bad input")
	}
}

func TestRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/json/parse",
		strings.NewReader(`{"source":"{\"x\":1}"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp parseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != nil || resp.Tree == nil || resp.Tree.Children[0].Key != "x" {
		t.Errorf("unexpected response: %+v", resp)
	}

	// Broken input is still a 200 with an inline error.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/json/parse",
		strings.NewReader(`{"source":"{nope"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for inline error, got %d", rec.Code)
	}
	resp = parseResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error == nil || resp.Tree != nil {
		t.Errorf("expected inline error, got %+v", resp)
	}
}
