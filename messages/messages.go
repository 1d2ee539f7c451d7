// Package messages holds the translation keys and embedded locales of the i18ncheck user interface.
package messages

import (
	"embed"

	"github.com/napalu/goopt/v2/i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewBundle returns a bundle with the embedded en, de and fr user interface messages
func NewBundle() (*i18n.Bundle, error) {
	return i18n.NewBundleWithFS(localesFS, "locales")
}

type appConfig struct {
	DirDesc        string
	BaseDesc       string
	LayoutDesc     string
	FormatDesc     string
	NoColorDesc    string
	NoProgressDesc string
	WorkersDesc    string
	VerboseDesc    string
	LanguageDesc   string
	HelpDesc       string
	CheckDesc      string
	UnusedDesc     string
	KeysDesc       string
}

type checkCmd struct {
	ScanDesc          string
	KeepDesc          string
	OnlyDesc          string
	SkipMalformedDesc string
}

type unusedCmd struct {
	ScanDesc          string
	KeepDesc          string
	SkipMalformedDesc string
}

type keysCmd struct {
	LangDesc string
}

type appError struct {
	ParseError            string
	CommandFailed         string
	FailedToGetConfig     string
	FailedToLoadConfig    string
	FailedToLoadCatalog   string
	MissingBaseLanguage   string
	UnknownLanguage       string
	FailedToExpandPattern string
	NoSourceFiles         string
	FailedToScan          string
	InvalidFormat         string
	InvalidLayout         string
	ValidationFailed      string
	UnusedKeysFound       string
	FailedToRender        string
}

type appReport struct {
	InfoLabel         string
	ErrorLabel        string
	SuccessLabel      string
	WarningLabel      string
	LanguagesFound    string
	FilesFound        string
	Checking          string
	MissingKeys       string
	ExtraKeys         string
	Mismatch          string
	MismatchKey       string
	ExpectedVars      string
	FoundVars         string
	Location          string
	UnusedTranslated  string
	KeyLine           string
	UnknownFile       string
	LanguageOk        string
	Complete          string
	LanguagesImpacted string
	FilesImpacted     string
	NoIssues          string
	UnusedHeader      string
	NoUnused          string
	CollisionsHeader  string
	CollisionLine     string
	KeysHeader        string
}

type appProgress struct {
	Loading  string
	Scanning string
}

// Keys provides compile-time safe access to translation keys
var Keys = struct {
	AppConfig   appConfig
	CheckCmd    checkCmd
	UnusedCmd   unusedCmd
	KeysCmd     keysCmd
	AppError    appError
	AppReport   appReport
	AppProgress appProgress
}{
	AppConfig: appConfig{
		DirDesc:        "app.app_config.dir_desc",
		BaseDesc:       "app.app_config.base_desc",
		LayoutDesc:     "app.app_config.layout_desc",
		FormatDesc:     "app.app_config.format_desc",
		NoColorDesc:    "app.app_config.no_color_desc",
		NoProgressDesc: "app.app_config.no_progress_desc",
		WorkersDesc:    "app.app_config.workers_desc",
		VerboseDesc:    "app.app_config.verbose_desc",
		LanguageDesc:   "app.app_config.language_desc",
		HelpDesc:       "app.app_config.help_desc",
		CheckDesc:      "app.app_config.check_desc",
		UnusedDesc:     "app.app_config.unused_desc",
		KeysDesc:       "app.app_config.keys_desc",
	},
	CheckCmd: checkCmd{
		ScanDesc:          "app.check_cmd.scan_desc",
		KeepDesc:          "app.check_cmd.keep_desc",
		OnlyDesc:          "app.check_cmd.only_desc",
		SkipMalformedDesc: "app.check_cmd.skip_malformed_desc",
	},
	UnusedCmd: unusedCmd{
		ScanDesc:          "app.unused_cmd.scan_desc",
		KeepDesc:          "app.unused_cmd.keep_desc",
		SkipMalformedDesc: "app.unused_cmd.skip_malformed_desc",
	},
	KeysCmd: keysCmd{
		LangDesc: "app.keys_cmd.lang_desc",
	},
	AppError: appError{
		ParseError:            "app.error.parse_error",
		CommandFailed:         "app.error.command_failed",
		FailedToGetConfig:     "app.error.failed_to_get_config",
		FailedToLoadConfig:    "app.error.failed_to_load_config",
		FailedToLoadCatalog:   "app.error.failed_to_load_catalog",
		MissingBaseLanguage:   "app.error.missing_base_language",
		UnknownLanguage:       "app.error.unknown_language",
		FailedToExpandPattern: "app.error.failed_to_expand_pattern",
		NoSourceFiles:         "app.error.no_source_files",
		FailedToScan:          "app.error.failed_to_scan",
		InvalidFormat:         "app.error.invalid_format",
		InvalidLayout:         "app.error.invalid_layout",
		ValidationFailed:      "app.error.validation_failed",
		UnusedKeysFound:       "app.error.unused_keys_found",
		FailedToRender:        "app.error.failed_to_render",
	},
	AppReport: appReport{
		InfoLabel:         "app.report.info_label",
		ErrorLabel:        "app.report.error_label",
		SuccessLabel:      "app.report.success_label",
		WarningLabel:      "app.report.warning_label",
		LanguagesFound:    "app.report.languages_found",
		FilesFound:        "app.report.files_found",
		Checking:          "app.report.checking",
		MissingKeys:       "app.report.missing_keys",
		ExtraKeys:         "app.report.extra_keys",
		Mismatch:          "app.report.mismatch",
		MismatchKey:       "app.report.mismatch_key",
		ExpectedVars:      "app.report.expected_vars",
		FoundVars:         "app.report.found_vars",
		Location:          "app.report.location",
		UnusedTranslated:  "app.report.unused_translated",
		KeyLine:           "app.report.key_line",
		UnknownFile:       "app.report.unknown_file",
		LanguageOk:        "app.report.language_ok",
		Complete:          "app.report.complete",
		LanguagesImpacted: "app.report.languages_impacted",
		FilesImpacted:     "app.report.files_impacted",
		NoIssues:          "app.report.no_issues",
		UnusedHeader:      "app.report.unused_header",
		NoUnused:          "app.report.no_unused",
		CollisionsHeader:  "app.report.collisions_header",
		CollisionLine:     "app.report.collision_line",
		KeysHeader:        "app.report.keys_header",
	},
	AppProgress: appProgress{
		Loading:  "app.progress.loading",
		Scanning: "app.progress.scanning",
	},
}
