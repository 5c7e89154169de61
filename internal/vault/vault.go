// Package vault manages the on-disk markdown folder: listing, reading and
// writing .md files beneath a single root, filtered by include/exclude
// glob patterns.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// File describes one markdown file in the vault.
type File struct {
	Path     string    `json:"path"` // relative to the vault root, forward slashes
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Vault lists and edits markdown files under a root directory.
type Vault struct {
	root    string
	include []string
	exclude []string
}

// New creates a vault rooted at dir. include and exclude are doublestar
// glob patterns applied to relative paths.
func New(dir string, include, exclude []string) *Vault {
	return &Vault{root: dir, include: include, exclude: exclude}
}

// List returns the vault's markdown files, sorted by path. A missing vault
// directory yields an empty list rather than an error.
func (v *Vault) List() ([]File, error) {
	var files []File

	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(v.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !MatchesInclude(rel, v.include) || MatchesExclude(rel, v.exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, File{Path: rel, Size: info.Size(), Modified: info.ModTime()})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []File{}, nil
		}
		return nil, fmt.Errorf("walking vault: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Read returns the content of the markdown file at the given relative path.
func (v *Vault) Read(rel string) (string, error) {
	abs, err := v.resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rel, err)
	}
	return string(data), nil
}

// Write saves content to the markdown file at the given relative path,
// creating parent directories as needed.
func (v *Vault) Write(rel, content string) error {
	abs, err := v.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("creating vault directory: %w", err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// resolve maps a relative vault path to an absolute one, rejecting paths
// that escape the vault root or are not markdown files.
func (v *Vault) resolve(rel string) (string, error) {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || strings.HasPrefix(rel, "../") || strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("invalid vault path %q", rel)
	}
	if !strings.HasSuffix(rel, ".md") {
		return "", fmt.Errorf("vault only holds markdown files, got %q", rel)
	}
	return filepath.Join(v.root, filepath.FromSlash(rel)), nil
}
