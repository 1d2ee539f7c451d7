package check

import (
	"github.com/napalu/goopt/v2/types/orderedmap"
	"github.com/napalu/i18ncheck/catalog"
)

// Section holds the findings of one language, ordered Missing, Extra, Mismatch, Unused
type Section struct {
	Language string
	Findings []Finding
}

// HasErrors reports whether the language has at least one finding
func (s Section) HasErrors() bool {
	return len(s.Findings) > 0
}

// Count returns the number of findings of the given kind
func (s Section) Count(kind Kind) int {
	n := 0
	for _, f := range s.Findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the findings of the given kind, in report order
func (s Section) Filter(kind Kind) []Finding {
	var found []Finding
	for _, f := range s.Findings {
		if f.Kind == kind {
			found = append(found, f)
		}
	}
	return found
}

// Report is the result of comparing every language against the base language
type Report struct {
	Base string
	// Sections are sorted by language and never include the base language
	Sections []Section
	// Unused lists the base keys not referenced by any scanned source file; nil when no scan ran
	Unused     []string
	Collisions []catalog.Collision
}

// HasErrors reports whether any language has findings
func (r *Report) HasErrors() bool {
	for _, s := range r.Sections {
		if s.HasErrors() {
			return true
		}
	}
	return false
}

// Section returns the section of lang
func (r *Report) Section(lang string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Language == lang {
			return s, true
		}
	}
	return Section{}, false
}

// Findings returns all findings across languages in report order
func (r *Report) Findings() []Finding {
	var all []Finding
	for _, s := range r.Sections {
		all = append(all, s.Findings...)
	}
	return all
}

// ImpactedLanguages returns the languages with at least one finding
func (r *Report) ImpactedLanguages() []string {
	var langs []string
	for _, s := range r.Sections {
		if s.HasErrors() {
			langs = append(langs, s.Language)
		}
	}
	return langs
}

// ImpactedFiles returns the documents involved in variable mismatches, in order of first appearance.
// Unresolved references are not listed.
func (r *Report) ImpactedFiles() []string {
	files := orderedmap.NewOrderedMap[string, struct{}]()
	for _, s := range r.Sections {
		for _, f := range s.Filter(VariableMismatch) {
			for _, ref := range []catalog.FileRef{f.BaseFile, f.File} {
				if path, ok := ref.Path(); ok {
					files.Set(path, struct{}{})
				}
			}
		}
	}

	result := make([]string, 0, files.Len())
	for iter := files.Front(); iter != nil; iter = iter.Next() {
		result = append(result, *iter.Key)
	}
	return result
}
