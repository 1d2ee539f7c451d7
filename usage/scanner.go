// Package usage finds translation keys that are never referenced by source code.
//
// A key counts as used when it occurs as a plain substring anywhere in a source file. No parsing
// is involved: keys built at runtime are reported unused and a key that happens to be part of a
// longer token is reported used.
package usage

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scanner checks a set of keys against source files
type Scanner struct {
	// Workers bounds the number of files read concurrently, 0 means runtime.NumCPU()
	Workers int
	// Keep lists key patterns that are always treated as used, e.g. "errors.*"
	Keep   []string
	Logger *zap.Logger
	// Progress is called once per scanned file, possibly from several goroutines
	Progress func(path string)
}

// FindUnused returns the keys that do not occur in any of the files, sorted
func FindUnused(keys []string, files []string) ([]string, error) {
	s := &Scanner{}
	return s.FindUnused(keys, files)
}

// FindUnused returns the keys that neither match a Keep pattern nor occur in any of the files.
// Files are scanned concurrently; each scan reports the keys it found and the results are merged
// once every file has been read.
func (s *Scanner) FindUnused(keys []string, files []string) ([]string, error) {
	keep, err := compileKeep(s.Keep)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, key := range keys {
		if !matchesAny(keep, key) {
			candidates = append(candidates, key)
		}
	}

	found := make([]map[string]struct{}, len(files))
	var g errgroup.Group
	g.SetLimit(s.workers())
	for i, file := range files {
		g.Go(func() error {
			used, err := scanFile(file, candidates)
			if s.Progress != nil {
				s.Progress(file)
			}
			if err != nil {
				return err
			}
			found[i] = used
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	used := make(map[string]struct{})
	for _, keys := range found {
		for key := range keys {
			used[key] = struct{}{}
		}
	}

	unused := []string{}
	for _, key := range candidates {
		if _, ok := used[key]; !ok {
			unused = append(unused, key)
		}
	}
	sort.Strings(unused)

	s.logger().Debug("usage scan complete",
		zap.Int("files", len(files)),
		zap.Int("keys", len(keys)),
		zap.Int("kept", len(keys)-len(candidates)),
		zap.Int("unused", len(unused)))

	return unused, nil
}

func scanFile(path string, keys []string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	used := make(map[string]struct{})
	for _, key := range keys {
		if strings.Contains(content, key) {
			used[key] = struct{}{}
		}
	}
	return used, nil
}

func compileKeep(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid keep pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(globs []glob.Glob, key string) bool {
	for _, g := range globs {
		if g.Match(key) {
			return true
		}
	}
	return false
}

func (s *Scanner) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

func (s *Scanner) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
