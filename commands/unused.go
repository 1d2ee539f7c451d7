package commands

import (
	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18ncheck/errors"
	"github.com/napalu/i18ncheck/options"
)

// Unused lists the base keys no scanned source file refers to
func Unused(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}
	return ExecuteUnused(cfg)
}

// ExecuteUnused renders the unused base keys and returns ErrUnusedKeysFound when there are any
func ExecuteUnused(cfg *options.AppConfig) error {
	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	if len(cfg.Unused.Scan) == 0 {
		return errors.ErrNoSourceFiles
	}

	result, err := loadCatalog(cfg, cfg.Unused.SkipMalformed, []string{cfg.Base})
	if err != nil {
		return err
	}

	unused, err := findUnused(cfg, result.Catalog[cfg.Base], cfg.Unused.Scan, cfg.Unused.Keep)
	if err != nil {
		return err
	}

	if err := renderer.Unused(stdout(cfg), cfg.Base, unused); err != nil {
		return errors.ErrFailedToRender.WithArgs(err)
	}

	if len(unused) > 0 {
		return errors.ErrUnusedKeysFound.WithArgs(len(unused))
	}
	return nil
}
