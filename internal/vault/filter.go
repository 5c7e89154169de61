package vault

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skippedDirs are directory names never descended into during a vault walk.
var skippedDirs = []string{
	".git",
	"node_modules",
	".deskhub",
	".obsidian",
	".trash",
	".idea",
	".vscode",
}

func shouldExcludeDir(name string) bool {
	for _, skip := range skippedDirs {
		if strings.EqualFold(name, skip) {
			return true
		}
	}
	return false
}

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns,
// first against the full relative path and then against the bare filename.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
