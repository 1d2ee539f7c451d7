package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// directories never descended into by recursive patterns
var skippedDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
}

// ExpandGlobPatterns expands glob patterns, including ** for recursive matching.
// A pattern without wildcards is kept when it names an existing file. Results are
// de-duplicated and sorted.
func ExpandGlobPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var results []string
	add := func(paths ...string) {
		for _, path := range paths {
			path = filepath.Clean(path)
			if !seen[path] {
				seen[path] = true
				results = append(results, path)
			}
		}
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if strings.Contains(pattern, "**") {
			matches, err := expandRecursivePattern(pattern)
			if err != nil {
				return nil, err
			}
			add(matches...)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 && !strings.ContainsAny(pattern, "*?[") {
			if info, err := os.Stat(pattern); err == nil && !info.IsDir() {
				matches = []string{pattern}
			}
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && !info.IsDir() {
				add(match)
			}
		}
	}

	sort.Strings(results)
	return results, nil
}

// expandRecursivePattern walks the directory in front of the first ** and matches the remainder
// of the pattern against every file below it
func expandRecursivePattern(pattern string) ([]string, error) {
	idx := strings.Index(pattern, "**")
	base := strings.TrimSuffix(filepath.ToSlash(pattern[:idx]), "/")
	if base == "" {
		base = "."
	}
	suffix := strings.TrimPrefix(filepath.ToSlash(pattern[idx+2:]), "/")

	// validate the suffix once so a bad pattern is reported instead of matching nothing
	if _, err := filepath.Match(suffix, ""); err != nil {
		return nil, err
	}

	var matches []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != base && (strings.HasPrefix(name, ".") || skippedDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return nil
		}
		if matchSuffix(filepath.ToSlash(rel), suffix) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// matchSuffix reports whether the trailing path elements of rel match pattern.
// "*.go" matches any Go file at any depth, "locales/*.json" any JSON file in a locales directory.
func matchSuffix(rel, pattern string) bool {
	if pattern == "" {
		return true
	}

	relParts := strings.Split(rel, "/")
	patternParts := strings.Split(pattern, "/")
	if len(patternParts) > len(relParts) {
		return false
	}

	tail := strings.Join(relParts[len(relParts)-len(patternParts):], "/")
	ok, _ := filepath.Match(pattern, tail)
	return ok
}
