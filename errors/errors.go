package errors

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18ncheck/messages"
)

var (
	// ErrCommandFailed is returned when a command execution fails
	ErrCommandFailed = i18n.NewError(messages.Keys.AppError.CommandFailed)

	// ErrFailedToGetConfig is returned when getting configuration fails
	ErrFailedToGetConfig = i18n.NewError(messages.Keys.AppError.FailedToGetConfig)

	// ErrFailedToLoadConfig is returned when the configuration file cannot be read
	ErrFailedToLoadConfig = i18n.NewError(messages.Keys.AppError.FailedToLoadConfig)

	// ErrFailedToLoadCatalog is returned when the translation catalogs cannot be loaded
	ErrFailedToLoadCatalog = i18n.NewError(messages.Keys.AppError.FailedToLoadCatalog)

	// ErrMissingBaseLanguage is returned when the base language has no catalog
	ErrMissingBaseLanguage = i18n.NewError(messages.Keys.AppError.MissingBaseLanguage)

	// ErrUnknownLanguage is returned when a requested language has no catalog
	ErrUnknownLanguage = i18n.NewError(messages.Keys.AppError.UnknownLanguage)

	// ErrFailedToExpandPattern is returned when expanding a pattern fails
	ErrFailedToExpandPattern = i18n.NewError(messages.Keys.AppError.FailedToExpandPattern)

	// ErrNoSourceFiles is returned when the scan patterns match no file
	ErrNoSourceFiles = i18n.NewError(messages.Keys.AppError.NoSourceFiles)

	// ErrFailedToScan is returned when the source scan fails
	ErrFailedToScan = i18n.NewError(messages.Keys.AppError.FailedToScan)

	// ErrInvalidFormat is returned for an unknown output format
	ErrInvalidFormat = i18n.NewError(messages.Keys.AppError.InvalidFormat)

	// ErrInvalidLayout is returned for an unknown catalog layout
	ErrInvalidLayout = i18n.NewError(messages.Keys.AppError.InvalidLayout)

	// ErrValidationFailed is returned when the check found inconsistencies
	ErrValidationFailed = i18n.NewError(messages.Keys.AppError.ValidationFailed)

	// ErrUnusedKeysFound is returned when the unused command found unreferenced keys
	ErrUnusedKeysFound = i18n.NewError(messages.Keys.AppError.UnusedKeysFound)

	// ErrFailedToRender is returned when writing the report fails
	ErrFailedToRender = i18n.NewError(messages.Keys.AppError.FailedToRender)
)
