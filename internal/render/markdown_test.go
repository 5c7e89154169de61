package render

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	html, err := ToHTML("# Title\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Title") {
		t.Errorf("heading not rendered: %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("emphasis not rendered: %q", html)
	}
}

func TestToHTMLTables(t *testing.T) {
	html, err := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered: %q", html)
	}
}

func TestCodeToHTML(t *testing.T) {
	html, err := CodeToHTML(`fmt.Println("hi")`, "go")
	if err != nil {
		t.Fatalf("CodeToHTML: %v", err)
	}
	if !strings.Contains(html, "Println") {
		t.Errorf("code content missing: %q", html)
	}
	if !strings.Contains(html, "<pre") {
		t.Errorf("expected highlighted pre block: %q", html)
	}
}
