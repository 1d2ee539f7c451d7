// Package placeholder extracts {name} style template variables from translation values.
package placeholder

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// Unicode word characters: letters, marks, decimal and letter numbers, connector punctuation
// such as '_' and the ZWNJ/ZWJ join controls
var variablePattern = regexp.MustCompile(`\{([\p{L}\p{M}\p{Nd}\p{Nl}\p{Pc}\x{200C}\x{200D}]+)\}`)

// Set is a set of placeholder names
type Set map[string]struct{}

// NewSet returns a set holding names
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Extract returns the distinct placeholder names referenced by text.
// Unbalanced or empty braces are ignored.
func Extract(text string) Set {
	s := make(Set)
	for _, match := range variablePattern.FindAllStringSubmatch(text, -1) {
		s[match[1]] = struct{}{}
	}
	return s
}

// Equal reports whether both sets hold exactly the same names
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the names of s absent from other, sorted
func (s Set) Missing(other Set) []string {
	var missing []string
	for name := range s {
		if _, ok := other[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Sorted returns the names in sorted order
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Set) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}

// MarshalJSON encodes the set as a sorted array
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
