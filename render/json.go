package render

import (
	"encoding/json"
	"io"

	"github.com/iancoleman/strcase"
	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/check"
	"github.com/napalu/i18ncheck/placeholder"
)

// JSON renders machine readable output. Absent file references are encoded as null.
type JSON struct {
	Indent string
}

var kinds = []check.Kind{check.MissingKey, check.ExtraKey, check.VariableMismatch, check.UnusedKeyStillTranslated}

type jsonFinding struct {
	Kind     string           `json:"kind"`
	Key      string           `json:"key"`
	File     catalog.FileRef  `json:"file"`
	BaseFile catalog.FileRef  `json:"base_file"`
	Expected *placeholder.Set `json:"expected,omitempty"`
	Found    *placeholder.Set `json:"found,omitempty"`
	// names expected by the base language but absent from the translation, and the reverse
	MissingVariables    []string `json:"missing_variables,omitempty"`
	UnexpectedVariables []string `json:"unexpected_variables,omitempty"`
}

type jsonSection struct {
	Language  string        `json:"language"`
	HasErrors bool           `json:"has_errors"`
	Counts    map[string]int `json:"counts"`
	Findings  []jsonFinding  `json:"findings"`
}

type jsonReport struct {
	Base       string              `json:"base"`
	HasErrors  bool                `json:"has_errors"`
	Total      int                 `json:"total_findings"`
	Stats      Stats               `json:"stats"`
	Languages  []jsonSection       `json:"languages"`
	Unused     []string            `json:"unused,omitempty"`
	Collisions []catalog.Collision `json:"collisions,omitempty"`
}

type jsonKey struct {
	Key   string          `json:"key"`
	Value string          `json:"value"`
	File  catalog.FileRef `json:"file"`
}

func (j *JSON) Report(w io.Writer, r *check.Report, stats Stats) error {
	doc := jsonReport{
		Base:       r.Base,
		HasErrors:  r.HasErrors(),
		Total:      len(r.Findings()),
		Stats:      stats,
		Languages:  make([]jsonSection, 0, len(r.Sections)),
		Unused:     r.Unused,
		Collisions: r.Collisions,
	}

	for _, s := range r.Sections {
		section := jsonSection{
			Language:  s.Language,
			HasErrors: s.HasErrors(),
			Counts:    make(map[string]int, len(kinds)),
			Findings:  make([]jsonFinding, 0, len(s.Findings)),
		}
		for _, kind := range kinds {
			section.Counts[kindName(kind)] = s.Count(kind)
		}
		for _, f := range s.Findings {
			finding := jsonFinding{
				Kind:     kindName(f.Kind),
				Key:      f.Key,
				File:     f.File,
				BaseFile: f.BaseFile,
			}
			if f.Kind == check.VariableMismatch {
				expected, found := f.Expected, f.Found
				finding.Expected = &expected
				finding.Found = &found
				finding.MissingVariables = expected.Missing(found)
				finding.UnexpectedVariables = found.Missing(expected)
			}
			section.Findings = append(section.Findings, finding)
		}
		doc.Languages = append(doc.Languages, section)
	}

	return j.encode(w, doc)
}

func (j *JSON) Unused(w io.Writer, base string, unused []string) error {
	if unused == nil {
		unused = []string{}
	}
	return j.encode(w, struct {
		Base   string   `json:"base"`
		Unused []string `json:"unused"`
	}{Base: base, Unused: unused})
}

func (j *JSON) Keys(w io.Writer, lang string, keys catalog.KeySpace, files catalog.FileIndex) error {
	entries := make([]jsonKey, 0, len(keys))
	for _, key := range keys.Keys() {
		entries = append(entries, jsonKey{Key: key, Value: keys[key], File: files.Ref(lang, key)})
	}
	return j.encode(w, struct {
		Language string    `json:"language"`
		Keys     []jsonKey `json:"keys"`
	}{Language: lang, Keys: entries})
}

func (j *JSON) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// kindName converts a finding kind to its snake_case wire name, e.g. "missing_key"
func kindName(k check.Kind) string {
	return strcase.ToSnake(k.String())
}
