package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySpaceKeysAreSorted(t *testing.T) {
	ks := KeySpace{"b": "2", "a": "1", "c.d": "3"}

	assert.Equal(t, []string{"a", "b", "c.d"}, ks.Keys())
	assert.True(t, ks.Has("c.d"))
	assert.False(t, ks.Has("c"))
}

func TestCatalogLanguages(t *testing.T) {
	c := Catalog{"fr": {}, "de": {}, "en": {}}
	assert.Equal(t, []string{"de", "en", "fr"}, c.Languages())
}

func TestFileIndexRef(t *testing.T) {
	idx := FileIndex{"en": {"title": "locales/en/app.json"}}

	path, ok := idx.Ref("en", "title").Path()
	assert.True(t, ok)
	assert.Equal(t, "locales/en/app.json", path)

	_, ok = idx.Ref("en", "missing").Path()
	assert.False(t, ok)
	_, ok = idx.Ref("de", "title").Path()
	assert.False(t, ok)

	assert.Equal(t, "unknown", idx.Ref("de", "title").Or("unknown"))
	assert.Equal(t, "locales/en/app.json", idx.Ref("en", "title").Or("unknown"))
}

func TestFileRefJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Set   FileRef `json:"set"`
		Unset FileRef `json:"unset"`
	}{Set: NewFileRef("en/app.json")})
	require.NoError(t, err)

	assert.JSONEq(t, `{"set": "en/app.json", "unset": null}`, string(data))
}
