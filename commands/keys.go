package commands

import (
	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18ncheck/errors"
	"github.com/napalu/i18ncheck/options"
)

// Keys prints the flattened key space of one language
func Keys(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}
	return ExecuteKeys(cfg)
}

func ExecuteKeys(cfg *options.AppConfig) error {
	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	lang := cfg.Keys.Lang
	if lang == "" {
		lang = cfg.Base
	}

	result, err := loadCatalog(cfg, false, []string{cfg.Base, lang})
	if err != nil {
		return err
	}
	keys, ok := result.Catalog[lang]
	if !ok {
		return errors.ErrUnknownLanguage.WithArgs(lang)
	}

	if err := renderer.Keys(stdout(cfg), lang, keys, result.Files); err != nil {
		return errors.ErrFailedToRender.WithArgs(err)
	}
	return nil
}
