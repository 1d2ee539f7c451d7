package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/check"
	"github.com/napalu/i18ncheck/messages"
	"github.com/napalu/i18ncheck/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func sampleReport() *check.Report {
	return &check.Report{
		Base: "en",
		Sections: []check.Section{
			{Language: "de"},
			{
				Language: "fr",
				Findings: []check.Finding{
					{Kind: check.MissingKey, Language: "fr", Key: "footer.links", BaseFile: catalog.NewFileRef("en/footer.json")},
					{Kind: check.ExtraKey, Language: "fr", Key: "legacy.banner"},
					{
						Kind:     check.VariableMismatch,
						Language: "fr",
						Key:      "home.title",
						Expected: placeholder.NewSet("name"),
						Found:    placeholder.NewSet("nom"),
						File:     catalog.NewFileRef("fr/home.json"),
						BaseFile: catalog.NewFileRef("en/home.json"),
					},
				},
			},
		},
		Collisions: []catalog.Collision{{Language: "en", Key: "shared", Files: []string{"en/a.json", "en/b.json"}}},
	}
}

func newTestText(t *testing.T) *Text {
	t.Helper()
	bundle, err := messages.NewBundle()
	require.NoError(t, err)
	return NewText(bundle, false)
}

func TestNew(t *testing.T) {
	bundle, err := messages.NewBundle()
	require.NoError(t, err)

	for _, format := range []string{"", FormatText} {
		r, err := New(format, bundle, false)
		require.NoError(t, err)
		assert.IsType(t, &Text{}, r)
	}

	r, err := New(FormatJSON, bundle, true)
	require.NoError(t, err)
	assert.IsType(t, &JSON{}, r)

	_, err = New("xml", bundle, false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestText(t).Report(&buf, sampleReport(), Stats{Languages: 3, Documents: 7}))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "3 language catalogs found.")
	assert.Contains(t, out, "7 translation files found across all catalogs.")
	assert.Contains(t, out, "Checking DE")
	assert.Contains(t, out, "All keys and variables consistent")
	assert.Contains(t, out, "Checking FR")
	assert.Contains(t, out, "Missing keys:")
	assert.Contains(t, out, "Key: footer.links | File: en/footer.json")
	assert.Contains(t, out, "Extra keys:")
	assert.Contains(t, out, "Key: legacy.banner | File: unknown file")
	assert.Contains(t, out, "Variable mismatch detected!")
	assert.Contains(t, out, "Expected variables (EN): {name}")
	assert.Contains(t, out, "Found variables (FR): {nom}")
	assert.Contains(t, out, "Location: expected in en/home.json but found in fr/home.json")
	assert.Contains(t, out, "shared [EN]: en/a.json, en/b.json")
	assert.Contains(t, out, "1 language(s) impacted")
	assert.Contains(t, out, "2 file(s) impacted")
	assert.NotContains(t, out, "No translation issues found.")

	// de is reported before fr
	assert.Less(t, strings.Index(out, "Checking DE"), strings.Index(out, "Checking FR"))
}

func TestTextReportClean(t *testing.T) {
	report := &check.Report{Base: "en", Sections: []check.Section{{Language: "fr"}}, Unused: []string{}}

	var buf bytes.Buffer
	require.NoError(t, newTestText(t).Report(&buf, report, Stats{Languages: 2, Documents: 2}))

	assert.Contains(t, buf.String(), "No translation issues found.")
	assert.Contains(t, buf.String(), "All base keys are referenced in the scanned sources.")
}

func TestTextReportTranslated(t *testing.T) {
	bundle, err := messages.NewBundle()
	require.NoError(t, err)
	bundle.SetDefaultLanguage(language.German)

	var buf bytes.Buffer
	require.NoError(t, NewText(bundle, false).Report(&buf, sampleReport(), Stats{}))
	assert.Contains(t, buf.String(), "Fehlende Schlüssel:")
	assert.NotContains(t, buf.String(), "Missing keys:")
}

func TestTextUnusedAndKeys(t *testing.T) {
	text := newTestText(t)

	var buf bytes.Buffer
	require.NoError(t, text.Unused(&buf, "en", []string{"a.b", "c"}))
	assert.Contains(t, buf.String(), "Unused keys (2):")
	assert.Contains(t, buf.String(), "- a.b")

	buf.Reset()
	keys := catalog.KeySpace{"title": "Hello \"you\"", "b": "B"}
	files := catalog.FileIndex{"en": {"title": "en/app.json"}}
	require.NoError(t, text.Keys(&buf, "en", keys, files))
	assert.Contains(t, buf.String(), "2 keys in EN")
	assert.Contains(t, buf.String(), `title = "Hello \"you\"" (en/app.json)`)
	assert.Contains(t, buf.String(), `b = "B" (unknown file)`)
	assert.Less(t, strings.Index(buf.String(), "b = "), strings.Index(buf.String(), "title = "))
}

func TestColoredText(t *testing.T) {
	bundle, err := messages.NewBundle()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewText(bundle, true).Unused(&buf, "en", []string{"a"}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestJSONReport(t *testing.T) {
	report := sampleReport()
	report.Unused = []string{"home.subtitle"}

	var buf bytes.Buffer
	require.NoError(t, (&JSON{}).Report(&buf, report, Stats{Languages: 3, Documents: 7}))

	var doc struct {
		Base      string `json:"base"`
		HasErrors bool   `json:"has_errors"`
		Total     int    `json:"total_findings"`
		Stats     Stats  `json:"stats"`
		Languages []struct {
			Language  string `json:"language"`
			HasErrors bool   `json:"has_errors"`
			Findings  []struct {
				Kind     string    `json:"kind"`
				Key      string    `json:"key"`
				File     *string   `json:"file"`
				BaseFile *string   `json:"base_file"`
				Expected   *[]string `json:"expected"`
				Found      *[]string `json:"found"`
				Missing    []string  `json:"missing_variables"`
				Unexpected []string  `json:"unexpected_variables"`
			} `json:"findings"`
			Counts map[string]int `json:"counts"`
		} `json:"languages"`
		Unused     []string            `json:"unused"`
		Collisions []catalog.Collision `json:"collisions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "en", doc.Base)
	assert.True(t, doc.HasErrors)
	assert.Equal(t, 3, doc.Total)
	assert.Equal(t, Stats{Languages: 3, Documents: 7}, doc.Stats)
	assert.Equal(t, []string{"home.subtitle"}, doc.Unused)
	assert.Len(t, doc.Collisions, 1)

	require.Len(t, doc.Languages, 2)
	assert.False(t, doc.Languages[0].HasErrors)
	assert.NotNil(t, doc.Languages[0].Findings)
	assert.Empty(t, doc.Languages[0].Findings)
	assert.Equal(t, map[string]int{
		"missing_key":                 0,
		"extra_key":                   0,
		"variable_mismatch":           0,
		"unused_key_still_translated": 0,
	}, doc.Languages[0].Counts)
	assert.Equal(t, map[string]int{
		"missing_key":                 1,
		"extra_key":                   1,
		"variable_mismatch":           1,
		"unused_key_still_translated": 0,
	}, doc.Languages[1].Counts)

	findings := doc.Languages[1].Findings
	require.Len(t, findings, 3)

	assert.Equal(t, "missing_key", findings[0].Kind)
	assert.Nil(t, findings[0].File)
	require.NotNil(t, findings[0].BaseFile)
	assert.Equal(t, "en/footer.json", *findings[0].BaseFile)
	assert.Nil(t, findings[0].Expected)
	assert.Nil(t, findings[0].Missing)

	assert.Equal(t, "extra_key", findings[1].Kind)
	assert.Nil(t, findings[1].File)

	assert.Equal(t, "variable_mismatch", findings[2].Kind)
	require.NotNil(t, findings[2].Expected)
	assert.Equal(t, []string{"name"}, *findings[2].Expected)
	assert.Equal(t, []string{"nom"}, *findings[2].Found)
	assert.Equal(t, []string{"name"}, findings[2].Missing)
	assert.Equal(t, []string{"nom"}, findings[2].Unexpected)
}

func TestJSONReportPartialMismatch(t *testing.T) {
	report := &check.Report{
		Base: "en",
		Sections: []check.Section{{
			Language: "fr",
			Findings: []check.Finding{{
				Kind:     check.VariableMismatch,
				Language: "fr",
				Key:      "cart",
				Expected: placeholder.NewSet("count", "user"),
				Found:    placeholder.NewSet("user"),
			}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, (&JSON{}).Report(&buf, report, Stats{}))
	assert.Contains(t, buf.String(), `"missing_variables":["count"]`)
	assert.NotContains(t, buf.String(), "unexpected_variables")
}

func TestJSONUnusedAndKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSON{}).Unused(&buf, "en", nil))
	assert.JSONEq(t, `{"base": "en", "unused": []}`, buf.String())

	buf.Reset()
	keys := catalog.KeySpace{"a": "<b>A</b>"}
	require.NoError(t, (&JSON{}).Keys(&buf, "fr", keys, catalog.FileIndex{}))
	assert.JSONEq(t, `{"language": "fr", "keys": [{"key": "a", "value": "<b>A</b>", "file": null}]}`, buf.String())
	assert.Contains(t, buf.String(), "<b>")
}

func TestProgressDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "loading", false)
	p.Step("a")
	p.Done()
	assert.Empty(t, buf.String())

	p = NewProgress(&buf, 0, "loading", true)
	p.Step("a")
	p.Done()
	assert.Empty(t, buf.String())
}

func TestProgressEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 2, "loading", true)
	p.Step("a")
	p.Step("b")
	p.Done()
	assert.NotEmpty(t, buf.String())
}
