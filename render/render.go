// Package render writes check reports, unused key lists and key listings for humans or machines.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/check"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Stats describes the loaded catalogs a report was computed from
type Stats struct {
	Languages int `json:"languages"`
	Documents int `json:"documents"`
}

// Renderer writes command results to w
type Renderer interface {
	Report(w io.Writer, r *check.Report, stats Stats) error
	Unused(w io.Writer, base string, unused []string) error
	Keys(w io.Writer, lang string, keys catalog.KeySpace, files catalog.FileIndex) error
}

// New returns the renderer for format. Colors only apply to the text format.
func New(format string, tr i18n.Translator, colored bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewText(tr, colored), nil
	case FormatJSON:
		return &JSON{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
