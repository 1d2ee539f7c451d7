// Package check compares translation catalogs against a base language.
package check

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/placeholder"
)

var (
	ErrMissingBaseLanguage = errors.New("base language not found in catalog")
	ErrUnknownLanguage     = errors.New("language not found in catalog")
)

type config struct {
	unused     []string
	languages  []string
	workers    int
	collisions []catalog.Collision
}

// Option configures Diff
type Option func(*config)

// WithUnused supplies the base keys found unused by a source scan.
// Languages still defining one of them get an UnusedKeyStillTranslated finding.
func WithUnused(keys []string) Option {
	return func(c *config) {
		c.unused = keys
	}
}

// WithLanguages restricts the comparison to the given languages
func WithLanguages(langs ...string) Option {
	return func(c *config) {
		c.languages = langs
	}
}

// WithWorkers bounds the number of languages compared concurrently
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithCollisions attaches the key collisions reported by the loader
func WithCollisions(collisions []catalog.Collision) Option {
	return func(c *config) {
		c.collisions = collisions
	}
}

// Diff compares every language of cat against base.
//
// The base language must be present in cat, otherwise ErrMissingBaseLanguage is returned and
// nothing is compared. Languages are compared concurrently; each comparison fills its own
// section and HasErrors is derived from the sections once all of them are complete.
func Diff(base string, cat catalog.Catalog, idx catalog.FileIndex, opts ...Option) (*Report, error) {
	baseSpace, ok := cat[base]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBaseLanguage, base)
	}

	cfg := &config{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.NumCPU()
	}

	langs, err := targetLanguages(base, cat, cfg.languages)
	if err != nil {
		return nil, err
	}

	unused := make(map[string]bool, len(cfg.unused))
	for _, key := range cfg.unused {
		unused[key] = true
	}

	sections := make([]Section, len(langs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.workers)
	for i, lang := range langs {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			sections[i] = compareLanguage(base, lang, baseSpace, cat[lang], idx, unused)
		}()
	}
	wg.Wait()

	report := &Report{
		Base:       base,
		Sections:   sections,
		Collisions: cfg.collisions,
	}
	if cfg.unused != nil {
		report.Unused = append([]string{}, cfg.unused...)
		sort.Strings(report.Unused)
	}
	return report, nil
}

func targetLanguages(base string, cat catalog.Catalog, only []string) ([]string, error) {
	if len(only) == 0 {
		var langs []string
		for _, lang := range cat.Languages() {
			if lang != base {
				langs = append(langs, lang)
			}
		}
		return langs, nil
	}

	seen := make(map[string]bool)
	var langs []string
	for _, lang := range only {
		if _, ok := cat[lang]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
		}
		if lang == base || seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

func compareLanguage(base, lang string, baseSpace, target catalog.KeySpace, idx catalog.FileIndex, unused map[string]bool) Section {
	section := Section{Language: lang}
	baseKeys := baseSpace.Keys()

	for _, key := range baseKeys {
		if !target.Has(key) {
			section.Findings = append(section.Findings, Finding{
				Kind:     MissingKey,
				Language: lang,
				Key:      key,
				BaseFile: idx.Ref(base, key),
			})
		}
	}

	for _, key := range target.Keys() {
		if !baseSpace.Has(key) {
			section.Findings = append(section.Findings, Finding{
				Kind:     ExtraKey,
				Language: lang,
				Key:      key,
				File:     idx.Ref(lang, key),
			})
		}
	}

	for _, key := range baseKeys {
		value, ok := target[key]
		if !ok {
			continue
		}
		expected := placeholder.Extract(baseSpace[key])
		found := placeholder.Extract(value)
		if !expected.Equal(found) {
			section.Findings = append(section.Findings, Finding{
				Kind:     VariableMismatch,
				Language: lang,
				Key:      key,
				Expected: expected,
				Found:    found,
				File:     idx.Ref(lang, key),
				BaseFile: idx.Ref(base, key),
			})
		}
	}

	if len(unused) > 0 {
		for _, key := range baseKeys {
			if unused[key] && target.Has(key) {
				section.Findings = append(section.Findings, Finding{
					Kind:     UnusedKeyStillTranslated,
					Language: lang,
					Key:      key,
					File:     idx.Ref(lang, key),
					BaseFile: idx.Ref(base, key),
				})
			}
		}
	}

	return section
}
