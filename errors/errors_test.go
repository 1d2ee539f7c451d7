package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18ncheck/messages"
	"github.com/stretchr/testify/assert"
)

func TestSentinelsKeepIdentityThroughArgs(t *testing.T) {
	err := ErrMissingBaseLanguage.WithArgs("en", "locales")

	assert.True(t, stderrors.Is(err, ErrMissingBaseLanguage))
	assert.False(t, stderrors.Is(err, ErrUnknownLanguage))

	wrapped := fmt.Errorf("check: %w", err)
	assert.True(t, stderrors.Is(wrapped, ErrMissingBaseLanguage))

	var te i18n.TranslatableError
	assert.True(t, stderrors.As(wrapped, &te))
	assert.Equal(t, messages.Keys.AppError.MissingBaseLanguage, te.Key())
	assert.Equal(t, []interface{}{"en", "locales"}, te.Args())
}
