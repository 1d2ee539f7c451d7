package commands

import (
	stderrors "errors"
	"strings"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18ncheck/check"
	"github.com/napalu/i18ncheck/errors"
	"github.com/napalu/i18ncheck/options"
	"github.com/napalu/i18ncheck/render"
)

// Check runs the consistency check for the parsed configuration
func Check(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}
	return ExecuteCheck(cfg)
}

// ExecuteCheck loads the catalogs, optionally scans sources for unused keys and renders the
// report. ErrValidationFailed is returned when any language has findings.
func ExecuteCheck(cfg *options.AppConfig) error {
	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	var languages []string
	if len(cfg.Check.Only) > 0 {
		languages = append(append(languages, cfg.Check.Only...), cfg.Base)
	}

	result, err := loadCatalog(cfg, cfg.Check.SkipMalformed, languages)
	if err != nil {
		return err
	}
	for _, lang := range cfg.Check.Only {
		if _, ok := result.Catalog[lang]; !ok {
			return errors.ErrUnknownLanguage.WithArgs(lang)
		}
	}

	opts := []check.Option{
		check.WithWorkers(cfg.Workers),
		check.WithCollisions(result.Collisions),
	}
	if len(cfg.Check.Only) > 0 {
		opts = append(opts, check.WithLanguages(cfg.Check.Only...))
	}
	if len(cfg.Check.Scan) > 0 {
		unused, err := findUnused(cfg, result.Catalog[cfg.Base], cfg.Check.Scan, cfg.Check.Keep)
		if err != nil {
			return err
		}
		opts = append(opts, check.WithUnused(unused))
	}

	report, err := check.Diff(cfg.Base, result.Catalog, result.Files, opts...)
	if err != nil {
		return diffError(cfg, err)
	}

	stats := render.Stats{Languages: len(result.Catalog), Documents: result.Documents}
	if err := renderer.Report(stdout(cfg), report, stats); err != nil {
		return errors.ErrFailedToRender.WithArgs(err)
	}

	if report.HasErrors() {
		return errors.ErrValidationFailed
	}
	return nil
}

// diffError maps a comparison failure to the matching translatable error
func diffError(cfg *options.AppConfig, err error) error {
	switch {
	case stderrors.Is(err, check.ErrMissingBaseLanguage):
		return errors.ErrMissingBaseLanguage.WithArgs(cfg.Base, cfg.Dir)
	case stderrors.Is(err, check.ErrUnknownLanguage):
		return errors.ErrUnknownLanguage.WithArgs(strings.Join(cfg.Check.Only, ", "))
	default:
		return errors.ErrCommandFailed.WithArgs("check", err)
	}
}
