package options

import (
	"io"
	"runtime"
	"strings"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/config"
	"github.com/napalu/i18ncheck/render"
	"go.uber.org/zap"
)

const (
	DefaultDir  = "."
	DefaultBase = "en"
)

// CheckCmd command configuration
type CheckCmd struct {
	Scan          []string `goopt:"short:s;desc:Source file patterns to scan for unused keys (supports **);descKey:app.check_cmd.scan_desc"`
	Keep          []string `goopt:"short:k;desc:Key patterns always treated as used (e.g. errors.*);descKey:app.check_cmd.keep_desc"`
	Only          []string `goopt:"desc:Only check these languages;descKey:app.check_cmd.only_desc"`
	SkipMalformed bool     `goopt:"desc:Warn about unreadable or invalid documents instead of failing;descKey:app.check_cmd.skip_malformed_desc"`
	Exec          goopt.CommandFunc
}

// UnusedCmd command configuration
type UnusedCmd struct {
	Scan          []string `goopt:"short:s;desc:Source file patterns to scan (supports **);descKey:app.unused_cmd.scan_desc"`
	Keep          []string `goopt:"short:k;desc:Key patterns always treated as used (e.g. errors.*);descKey:app.unused_cmd.keep_desc"`
	SkipMalformed bool     `goopt:"desc:Warn about unreadable or invalid documents instead of failing;descKey:app.unused_cmd.skip_malformed_desc"`
	Exec          goopt.CommandFunc
}

// KeysCmd command configuration
type KeysCmd struct {
	Lang string `goopt:"desc:Language to print (default: base language);descKey:app.keys_cmd.lang_desc"`
	Exec goopt.CommandFunc
}

// AppConfig main application configuration
type AppConfig struct {
	Dir        string          `goopt:"short:d;desc:Root directory of the translation catalogs;descKey:app.app_config.dir_desc"`
	Base       string          `goopt:"short:b;desc:Base language all other languages are compared against (default: en);descKey:app.app_config.base_desc"`
	Layout     string          `goopt:"desc:Catalog layout: dir or file;descKey:app.app_config.layout_desc"`
	Format     string          `goopt:"short:f;desc:Output format: text or json;descKey:app.app_config.format_desc"`
	NoColor    bool            `goopt:"desc:Disable colored output;descKey:app.app_config.no_color_desc"`
	NoProgress bool            `goopt:"desc:Disable progress bars;descKey:app.app_config.no_progress_desc"`
	Workers    int             `goopt:"short:w;desc:Number of parallel workers (default: number of CPUs);descKey:app.app_config.workers_desc"`
	Verbose    bool            `goopt:"short:v;desc:Enable verbose output;descKey:app.app_config.verbose_desc"`
	Language   string          `goopt:"short:l;desc:Language for output (en, de, fr);descKey:app.app_config.language_desc"`
	Help       bool            `goopt:"short:h;desc:Show help;descKey:app.app_config.help_desc"`
	Check      CheckCmd        `goopt:"kind:command;name:check;desc:Check all languages against the base language;descKey:app.app_config.check_desc"`
	Unused     UnusedCmd       `goopt:"kind:command;name:unused;desc:List base keys not referenced by any source file;descKey:app.app_config.unused_desc"`
	Keys       KeysCmd         `goopt:"kind:command;name:keys;desc:Print the flattened keys of a language;descKey:app.app_config.keys_desc"`
	TR         i18n.Translator `ignore:"true"` // Translator for messages
	Log        *zap.Logger     `ignore:"true"` // Diagnostics, always on stderr
	Out        io.Writer       `ignore:"true"` // Report destination
	Err        io.Writer       `ignore:"true"` // Progress bars
	Colored    bool            `ignore:"true"` // Whether Out accepts ANSI colors
	Progress   bool            `ignore:"true"` // Whether Err accepts progress bars
}

// ApplyFile copies the settings of a configuration file onto c. It runs before the
// command line is parsed so flags given by the user take precedence.
func (c *AppConfig) ApplyFile(f *config.File) {
	if f == nil {
		return
	}
	setString(&c.Dir, f.Dir)
	setString(&c.Base, f.Base)
	setString(&c.Layout, f.Layout)
	setString(&c.Format, f.Format)
	if f.Workers > 0 {
		c.Workers = f.Workers
	}
	if len(f.Scan) > 0 {
		c.Check.Scan = append([]string(nil), f.Scan...)
		c.Unused.Scan = append([]string(nil), f.Scan...)
	}
	if len(f.Keep) > 0 {
		c.Check.Keep = append([]string(nil), f.Keep...)
		c.Unused.Keep = append([]string(nil), f.Keep...)
	}
	if len(f.Only) > 0 {
		c.Check.Only = append([]string(nil), f.Only...)
	}
	if f.SkipMalformed {
		c.Check.SkipMalformed = true
		c.Unused.SkipMalformed = true
	}
}

// ApplyDefaults fills every setting left empty by the configuration file and the command line
func (c *AppConfig) ApplyDefaults() {
	setString(&c.Dir, DefaultDir)
	setString(&c.Base, DefaultBase)
	setString(&c.Layout, string(catalog.LayoutDir))
	setString(&c.Format, render.FormatText)
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	c.Base = strings.TrimSpace(c.Base)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Layout = strings.ToLower(strings.TrimSpace(c.Layout))
}

func setString(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
