package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Layout describes how translation documents are arranged below the catalog root
type Layout string

const (
	// LayoutDir expects one directory per language: <root>/<lang>/*.json
	LayoutDir Layout = "dir"
	// LayoutFile expects one document per language: <root>/<lang>.json
	LayoutFile Layout = "file"
)

var (
	ErrMalformedDocument = errors.New("malformed translation document")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrUnknownLayout     = errors.New("unknown catalog layout")
	ErrNoLanguages       = errors.New("no language catalogs found")
)

var supportedExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Loader discovers translation documents below Root and builds a Catalog from them
type Loader struct {
	Root   string
	Layout Layout
	// Workers bounds the number of languages loaded concurrently, 0 means runtime.NumCPU()
	Workers int
	// SkipMalformed logs unreadable or invalid documents instead of failing the load
	SkipMalformed bool
	// Languages restricts discovery to the listed language codes when not empty
	Languages []string
	Logger    *zap.Logger
	// Progress is called once per processed document, possibly from several goroutines
	Progress func(path string)
}

// Result is the outcome of a Load
type Result struct {
	Catalog    Catalog
	Files      FileIndex
	Collisions []Collision
	Documents  int
}

type languageFragment struct {
	lang       string
	values     KeySpace
	paths      map[string]string
	collisions []Collision
}

// Discover returns the documents of every language, sorted by path
func (l *Loader) Discover() (map[string][]string, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, err
	}

	docs := make(map[string][]string)
	switch l.layout() {
	case LayoutDir:
		for _, entry := range entries {
			if !entry.IsDir() || !l.accepts(entry.Name()) {
				continue
			}
			files, err := l.documentsIn(filepath.Join(l.Root, entry.Name()))
			if err != nil {
				return nil, err
			}
			docs[entry.Name()] = files
		}
	case LayoutFile:
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if !supportedExtensions[ext] {
				continue
			}
			lang := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			if !l.accepts(lang) {
				continue
			}
			docs[lang] = append(docs[lang], filepath.Join(l.Root, entry.Name()))
		}
		for lang := range docs {
			sort.Strings(docs[lang])
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, l.Layout)
	}

	return docs, nil
}

// Load reads and flattens every discovered document.
// Languages are processed concurrently; each task owns its fragment and the fragments are merged
// once all tasks are done.
func (l *Loader) Load() (*Result, error) {
	docs, err := l.Discover()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLanguages, l.Root)
	}

	langs := make([]string, 0, len(docs))
	documents := 0
	for lang, files := range docs {
		langs = append(langs, lang)
		documents += len(files)
	}
	sort.Strings(langs)

	fragments := make([]languageFragment, len(langs))
	var g errgroup.Group
	g.SetLimit(l.workers())
	for i, lang := range langs {
		g.Go(func() error {
			fragment, err := l.loadLanguage(lang, docs[lang])
			if err != nil {
				return err
			}
			fragments[i] = fragment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Catalog:   make(Catalog, len(fragments)),
		Files:     make(FileIndex, len(fragments)),
		Documents: documents,
	}
	for _, fragment := range fragments {
		result.Catalog[fragment.lang] = fragment.values
		result.Files[fragment.lang] = fragment.paths
		result.Collisions = append(result.Collisions, fragment.collisions...)
	}

	l.logger().Debug("catalogs loaded",
		zap.String("root", l.Root),
		zap.Int("languages", len(langs)),
		zap.Int("documents", documents),
		zap.Int("collisions", len(result.Collisions)))

	return result, nil
}

func (l *Loader) loadLanguage(lang string, files []string) (languageFragment, error) {
	fragment := languageFragment{
		lang:   lang,
		values: make(KeySpace),
		paths:  make(map[string]string),
	}
	seen := make(map[string][]string)

	for _, path := range files {
		tree, err := LoadDocument(path)
		if l.Progress != nil {
			l.Progress(path)
		}
		if err != nil {
			if l.SkipMalformed {
				l.logger().Warn("skipping translation document",
					zap.String("language", lang),
					zap.String("path", path),
					zap.Error(err))
				continue
			}
			return fragment, fmt.Errorf("%s: %w", path, err)
		}

		values := make(KeySpace)
		for _, key := range FlattenInto(values, tree, "") {
			// defined twice inside this document
			seen[key] = append(seen[key], path)
		}
		for key, value := range values {
			seen[key] = append(seen[key], path)
			fragment.values[key] = value
			fragment.paths[key] = path
		}
	}

	for _, key := range fragment.values.Keys() {
		if paths := seen[key]; len(paths) > 1 {
			fragment.collisions = append(fragment.collisions, Collision{
				Language: lang,
				Key:      key,
				Files:    paths,
			})
		}
	}

	return fragment, nil
}

// LoadDocument reads a JSON or YAML document and returns its decoded tree
func LoadDocument(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformedDocument)
	}

	var tree interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return tree, nil
}

func (l *Loader) documentsIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// accepts reports whether name is a language code the loader should read
func (l *Loader) accepts(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	if !IsLanguageCode(name) {
		l.logger().Warn("ignoring entry that is not a language code", zap.String("name", name))
		return false
	}
	if len(l.Languages) == 0 {
		return true
	}
	for _, lang := range l.Languages {
		if lang == name {
			return true
		}
	}
	return false
}

// IsLanguageCode reports whether name parses as a BCP 47 tag; "_" is accepted as a separator
func IsLanguageCode(name string) bool {
	_, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	return err == nil
}

func (l *Loader) layout() Layout {
	if l.Layout == "" {
		return LayoutDir
	}
	return l.Layout
}

func (l *Loader) workers() int {
	if l.Workers > 0 {
		return l.Workers
	}
	return runtime.NumCPU()
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
