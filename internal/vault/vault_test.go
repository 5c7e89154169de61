package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	dir := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	write("todo.md", "# Todo")
	write("projects/deskhub.md", "# Deskhub")
	write("projects/drafts/idea.md", "# Idea")
	write("notes.txt", "not markdown")
	write(".git/HEAD.md", "skipped")

	return New(dir, []string{"**/*.md"}, []string{"**/drafts/**"})
}

func TestListFiltersAndSorts(t *testing.T) {
	v := newTestVault(t)

	files, err := v.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"projects/deskhub.md", "todo.md"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i, f := range files {
		if f.Path != want[i] {
			t.Errorf("file %d: expected %q, got %q", i, want[i], f.Path)
		}
		if f.Size == 0 {
			t.Errorf("file %q has zero size", f.Path)
		}
	}
}

func TestListMissingRoot(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "nowhere"), nil, nil)

	files, err := v.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty list, got %v", files)
	}
}

func TestReadAndWrite(t *testing.T) {
	v := newTestVault(t)

	if err := v.Write("journal/2026-08.md", "# August"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	content, err := v.Read("journal/2026-08.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if content != "# August" {
		t.Errorf("expected written content back, got %q", content)
	}
}

func TestResolveRejectsEscapes(t *testing.T) {
	v := newTestVault(t)

	for _, path := range []string{"../outside.md", "/etc/passwd.md", "notes.txt", "."} {
		if _, err := v.Read(path); err == nil {
			t.Errorf("expected error reading %q", path)
		}
	}
}

func TestMatchesIncludeEmptyPatterns(t *testing.T) {
	if !MatchesInclude("anything.md", nil) {
		t.Error("empty include patterns should match everything")
	}
	if MatchesExclude("anything.md", nil) {
		t.Error("empty exclude patterns should match nothing")
	}
}
