package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/check"
	"github.com/napalu/i18ncheck/messages"
)

type palette struct {
	title   func(a ...interface{}) string
	lang    func(a ...interface{}) string
	bold    func(a ...interface{}) string
	red     func(a ...interface{}) string
	yellow  func(a ...interface{}) string
	magenta func(a ...interface{}) string
	cyan    func(a ...interface{}) string
	blue    func(a ...interface{}) string
	green   func(a ...interface{}) string
	info    func(a ...interface{}) string
	failure func(a ...interface{}) string
	success func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}

	return palette{
		title:   mk(color.Bold, color.Underline),
		lang:    mk(color.Bold, color.FgBlue),
		bold:    mk(color.Bold),
		red:     mk(color.FgRed),
		yellow:  mk(color.FgYellow),
		magenta: mk(color.FgMagenta),
		cyan:    mk(color.FgCyan),
		blue:    mk(color.FgBlue),
		green:   mk(color.FgGreen),
		info:    mk(color.Bold, color.FgCyan),
		failure: mk(color.Bold, color.FgRed),
		success: mk(color.Bold, color.FgGreen),
	}
}

// Text renders localized, optionally colored console output
type Text struct {
	tr i18n.Translator
	p  palette
}

// NewText returns a text renderer translating its messages with tr
func NewText(tr i18n.Translator, colored bool) *Text {
	return &Text{tr: tr, p: newPalette(colored)}
}

func (t *Text) Report(w io.Writer, r *check.Report, stats Stats) error {
	out := bufio.NewWriter(w)
	keys := messages.Keys.AppReport

	fmt.Fprintf(out, "%s %s\n", t.p.info("ℹ️ "+t.tr.T(keys.InfoLabel)), t.tr.T(keys.LanguagesFound, stats.Languages))
	fmt.Fprintf(out, "%s %s\n", t.p.info("ℹ️ "+t.tr.T(keys.InfoLabel)), t.tr.T(keys.FilesFound, stats.Documents))

	for _, section := range r.Sections {
		t.section(out, r.Base, section)
	}

	if r.Unused != nil {
		fmt.Fprintln(out)
		t.unusedList(out, r.Unused)
	}

	if len(r.Collisions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %s\n", t.p.yellow("⚠️ "+t.tr.T(keys.WarningLabel)), t.tr.T(keys.CollisionsHeader))
		for _, c := range r.Collisions {
			fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.CollisionLine, t.p.yellow(c.Key), strings.ToUpper(c.Language), t.p.blue(strings.Join(c.Files, ", "))))
		}
	}

	fmt.Fprintf(out, "\n%s\n", t.p.title("🌍 "+t.tr.T(keys.Complete)))
	if r.HasErrors() {
		fmt.Fprintf(out, "%s %s\n", t.p.failure("❌ "+t.tr.T(keys.ErrorLabel)), t.tr.T(keys.LanguagesImpacted, len(r.ImpactedLanguages())))
		fmt.Fprintf(out, "%s %s\n", t.p.failure("❌ "+t.tr.T(keys.ErrorLabel)), t.tr.T(keys.FilesImpacted, len(r.ImpactedFiles())))
	} else {
		fmt.Fprintf(out, "%s %s\n", t.p.success("✅ "+t.tr.T(keys.SuccessLabel)), t.tr.T(keys.NoIssues))
	}

	return out.Flush()
}

func (t *Text) section(out io.Writer, base string, s check.Section) {
	keys := messages.Keys.AppReport
	unknown := t.tr.T(keys.UnknownFile)

	fmt.Fprintf(out, "\n🔍 %s\n", t.tr.T(keys.Checking, t.p.lang(strings.ToUpper(s.Language))))
	if !s.HasErrors() {
		fmt.Fprintf(out, "%s\n", t.p.green("✅ "+t.tr.T(keys.LanguageOk)))
		return
	}

	if missing := s.Filter(check.MissingKey); len(missing) > 0 {
		fmt.Fprintln(out, t.p.failure("❌ "+t.tr.T(keys.MissingKeys)))
		for _, f := range missing {
			fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.KeyLine, t.p.red(f.Key), t.p.blue(f.BaseFile.Or(unknown))))
		}
	}

	if extra := s.Filter(check.ExtraKey); len(extra) > 0 {
		fmt.Fprintln(out, t.p.bold(t.p.yellow("⚠️ "+t.tr.T(keys.ExtraKeys))))
		for _, f := range extra {
			fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.KeyLine, t.p.yellow(f.Key), t.p.blue(f.File.Or(unknown))))
		}
	}

	for _, f := range s.Filter(check.VariableMismatch) {
		fmt.Fprintln(out, t.p.bold(t.p.magenta("🔄 "+t.tr.T(keys.Mismatch))))
		fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.MismatchKey, t.p.magenta(f.Key)))
		fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.ExpectedVars, t.p.bold(strings.ToUpper(base)), t.p.green(f.Expected.String())))
		fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.FoundVars, t.p.bold(strings.ToUpper(s.Language)), t.p.cyan(f.Found.String())))
		fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.Location, t.p.yellow(f.BaseFile.Or(unknown)), t.p.blue(f.File.Or(unknown))))
	}

	if unused := s.Filter(check.UnusedKeyStillTranslated); len(unused) > 0 {
		fmt.Fprintln(out, t.p.bold(t.p.yellow("🗑️ "+t.tr.T(keys.UnusedTranslated))))
		for _, f := range unused {
			fmt.Fprintf(out, "   - %s\n", t.tr.T(keys.KeyLine, t.p.yellow(f.Key), t.p.blue(f.File.Or(unknown))))
		}
	}
}

func (t *Text) unusedList(out io.Writer, unused []string) {
	keys := messages.Keys.AppReport
	if len(unused) == 0 {
		fmt.Fprintf(out, "%s\n", t.p.green("✅ "+t.tr.T(keys.NoUnused)))
		return
	}
	fmt.Fprintln(out, t.p.bold(t.p.yellow("🗑️ "+t.tr.T(keys.UnusedHeader, len(unused)))))
	for _, key := range unused {
		fmt.Fprintf(out, "   - %s\n", t.p.yellow(key))
	}
}

func (t *Text) Unused(w io.Writer, _ string, unused []string) error {
	out := bufio.NewWriter(w)
	t.unusedList(out, unused)
	return out.Flush()
}

func (t *Text) Keys(w io.Writer, lang string, keys catalog.KeySpace, files catalog.FileIndex) error {
	out := bufio.NewWriter(w)
	unknown := t.tr.T(messages.Keys.AppReport.UnknownFile)

	fmt.Fprintln(out, t.p.bold(t.tr.T(messages.Keys.AppReport.KeysHeader, len(keys), strings.ToUpper(lang))))
	for _, key := range keys.Keys() {
		fmt.Fprintf(out, "%s = %q %s\n", t.p.cyan(key), keys[key], t.p.blue("("+files.Ref(lang, key).Or(unknown)+")"))
	}
	return out.Flush()
}
