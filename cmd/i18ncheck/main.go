package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18ncheck/commands"
	"github.com/napalu/i18ncheck/config"
	"github.com/napalu/i18ncheck/errors"
	"github.com/napalu/i18ncheck/internal/logger"
	"github.com/napalu/i18ncheck/messages"
	"github.com/napalu/i18ncheck/options"
	"github.com/napalu/i18ncheck/render"
	"github.com/napalu/i18ncheck/util"
	"golang.org/x/text/language"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cfg := &options.AppConfig{}

	// Assign command functions
	cfg.Check.Exec = commands.Check
	cfg.Unused.Exec = commands.Unused
	cfg.Keys.Exec = commands.Keys

	bundle, err := messages.NewBundle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create i18n bundle: %v\n", err)
		return 1
	}
	cfg.TR = bundle

	// Settings from the configuration file are applied first so flags override them
	if path := config.Locate(); path != "" {
		file, err := config.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, translate(cfg.TR, errors.ErrFailedToLoadConfig.WithArgs(path, err)))
			return 1
		}
		cfg.ApplyFile(file)
	}

	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithEnvNameConverter(goopt.ToKebabCase),
		goopt.WithCommandNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create parser: %v\n", err)
		return 1
	}

	success := parser.Parse(args)

	// Handle language switching
	if cfg.Language != "" && cfg.Language != bundle.GetDefaultLanguage().String() {
		lang := parseLanguage(cfg.Language)
		if lang != language.Und {
			bundle.SetDefaultLanguage(lang)
			// goopt's own messages follow the selected language too
			i18n.Default().SetDefaultLanguage(lang)
		}
	}

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		return 0
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.ParseError, err))
			fmt.Fprintln(os.Stderr)
		}
		parser.PrintUsageWithGroups(os.Stderr)
		return 1
	}

	cfg.ApplyDefaults()
	log := logger.OrNop(cfg.Verbose, cfg.Format == render.FormatJSON, util.Decorate(os.Stderr))
	defer func() { _ = log.Sync() }()
	cfg.Log = log
	cfg.Out = os.Stdout
	cfg.Err = os.Stderr
	cfg.Colored = util.Decorate(os.Stdout)
	cfg.Progress = util.Decorate(os.Stderr)

	if errCount := parser.ExecuteCommands(); errCount > 0 {
		for _, cmdErr := range parser.GetCommandExecutionErrors() {
			failed := errors.ErrCommandFailed.WithArgs(cmdErr.Key, translate(cfg.TR, cmdErr.Value))
			fmt.Fprintln(os.Stderr, translate(cfg.TR, failed))
		}
		return 1
	}
	return 0
}

// translate renders err in the current user interface language
func translate(tr i18n.Translator, err error) string {
	var te i18n.TranslatableError
	if !stderrors.As(err, &te) {
		return err.Error()
	}
	msg := tr.T(te.Key(), te.Args()...)
	if wrapped := te.Unwrap(); wrapped != nil {
		msg = fmt.Sprintf("%s: %s", msg, translate(tr, wrapped))
	}
	return msg
}

func parseLanguage(lang string) language.Tag {
	switch strings.ToLower(lang) {
	case "en":
		return language.English
	case "de":
		return language.German
	case "fr":
		return language.French
	default:
		return language.Und
	}
}
