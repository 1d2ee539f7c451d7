// Package catalog turns per-language translation documents into flat key spaces.
//
// A Catalog maps a language code to a KeySpace (dot-joined key to string value) and a FileIndex
// records, for every key of every language, the document the key was read from. Both are built
// once by a Loader and are read-only afterwards, so they can be shared between goroutines without
// locking.
package catalog

import (
	"encoding/json"
	"sort"
)

// KeySpace maps a dot-joined key path to its leaf string value
type KeySpace map[string]string

// Keys returns the keys of the key space in sorted order
func (k KeySpace) Keys() []string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is defined
func (k KeySpace) Has(key string) bool {
	_, ok := k[key]
	return ok
}

// Catalog maps a language code to its KeySpace
type Catalog map[string]KeySpace

// Languages returns the language codes of the catalog in sorted order
func (c Catalog) Languages() []string {
	langs := make([]string, 0, len(c))
	for lang := range c {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// FileIndex maps a language code to the originating document path of each key
type FileIndex map[string]map[string]string

// Ref resolves the document a key of lang was read from
func (f FileIndex) Ref(lang, key string) FileRef {
	paths, ok := f[lang]
	if !ok {
		return FileRef{}
	}
	path, ok := paths[key]
	if !ok {
		return FileRef{}
	}
	return NewFileRef(path)
}

// FileRef is an optional reference to a translation document.
// The zero value refers to no document.
type FileRef struct {
	path string
	ok   bool
}

// NewFileRef returns a reference to path
func NewFileRef(path string) FileRef {
	return FileRef{path: path, ok: true}
}

// Path returns the referenced path and whether the reference is set
func (r FileRef) Path() (string, bool) {
	return r.path, r.ok
}

// Or returns the referenced path, or fallback when the reference is not set
func (r FileRef) Or(fallback string) string {
	if !r.ok {
		return fallback
	}
	return r.path
}

// MarshalJSON encodes an unset reference as null
func (r FileRef) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return []byte("null"), nil
	}
	return json.Marshal(r.path)
}

// Collision records a key defined more than once for the same language, either by several
// documents or twice within one document. Files are listed in load order and repeat a path
// for every extra definition it holds; the last one provided the value kept in the catalog.
type Collision struct {
	Language string   `json:"language"`
	Key      string   `json:"key"`
	Files    []string `json:"files"`
}
