package commands

import (
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/napalu/i18ncheck/catalog"
	"github.com/napalu/i18ncheck/errors"
	"github.com/napalu/i18ncheck/messages"
	"github.com/napalu/i18ncheck/options"
	"github.com/napalu/i18ncheck/render"
	"github.com/napalu/i18ncheck/usage"
	"github.com/napalu/i18ncheck/util"
	"go.uber.org/zap"
)

func stdout(cfg *options.AppConfig) io.Writer {
	if cfg.Out != nil {
		return cfg.Out
	}
	return os.Stdout
}

func stderr(cfg *options.AppConfig) io.Writer {
	if cfg.Err != nil {
		return cfg.Err
	}
	return os.Stderr
}

func logger(cfg *options.AppConfig) *zap.Logger {
	if cfg.Log != nil {
		return cfg.Log
	}
	return zap.NewNop()
}

func progressEnabled(cfg *options.AppConfig) bool {
	return cfg.Progress && !cfg.NoProgress
}

func newRenderer(cfg *options.AppConfig) (render.Renderer, error) {
	r, err := render.New(cfg.Format, cfg.TR, cfg.Colored && !cfg.NoColor)
	if err != nil {
		return nil, errors.ErrInvalidFormat.WithArgs(cfg.Format)
	}
	return r, nil
}

// loadCatalog reads the catalogs below cfg.Dir, restricted to languages when not empty
func loadCatalog(cfg *options.AppConfig, skipMalformed bool, languages []string) (*catalog.Result, error) {
	layout := catalog.Layout(cfg.Layout)
	if layout != catalog.LayoutDir && layout != catalog.LayoutFile {
		return nil, errors.ErrInvalidLayout.WithArgs(cfg.Layout)
	}

	loader := &catalog.Loader{
		Root:          cfg.Dir,
		Layout:        layout,
		Workers:       cfg.Workers,
		SkipMalformed: skipMalformed,
		Languages:     languages,
		Logger:        logger(cfg),
	}

	docs, err := loader.Discover()
	if err != nil {
		return nil, errors.ErrFailedToLoadCatalog.WithArgs(cfg.Dir, err)
	}
	total := 0
	for _, files := range docs {
		total += len(files)
	}

	bar := render.NewProgress(stderr(cfg), total, cfg.TR.T(messages.Keys.AppProgress.Loading), progressEnabled(cfg))
	loader.Progress = bar.Step
	result, err := loader.Load()
	bar.Done()
	if err != nil {
		if stderrors.Is(err, catalog.ErrNoLanguages) {
			return nil, errors.ErrMissingBaseLanguage.WithArgs(cfg.Base, cfg.Dir)
		}
		return nil, errors.ErrFailedToLoadCatalog.WithArgs(cfg.Dir, err)
	}

	if _, ok := result.Catalog[cfg.Base]; !ok {
		return nil, errors.ErrMissingBaseLanguage.WithArgs(cfg.Base, cfg.Dir)
	}

	return result, nil
}

// findUnused expands the scan patterns and returns the base keys none of the matched files mention
func findUnused(cfg *options.AppConfig, base catalog.KeySpace, patterns, keep []string) ([]string, error) {
	files, err := util.ExpandGlobPatterns(patterns)
	if err != nil {
		return nil, errors.ErrFailedToExpandPattern.WithArgs(strings.Join(patterns, ", "), err)
	}
	if len(files) == 0 {
		return nil, errors.ErrNoSourceFiles
	}

	bar := render.NewProgress(stderr(cfg), len(files), cfg.TR.T(messages.Keys.AppProgress.Scanning), progressEnabled(cfg))
	scanner := &usage.Scanner{
		Workers:  cfg.Workers,
		Keep:     keep,
		Logger:   logger(cfg),
		Progress: bar.Step,
	}
	unused, err := scanner.FindUnused(base.Keys(), files)
	bar.Done()
	if err != nil {
		return nil, errors.ErrFailedToScan.WithArgs(err)
	}

	logger(cfg).Debug("source scan complete",
		zap.Int("files", len(files)),
		zap.Int("unused", len(unused)))

	return unused, nil
}
