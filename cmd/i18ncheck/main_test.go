package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	goopterrors "github.com/napalu/i18ncheck/errors"
	"github.com/napalu/i18ncheck/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeCatalog(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// inDir runs the test from an empty working directory so no configuration file is picked up
func inDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("I18NCHECK_CONFIG", "")
}

func TestRunExitCodes(t *testing.T) {
	inDir(t)

	clean := t.TempDir()
	writeCatalog(t, clean, map[string]string{
		"en/app.json": `{"title": "Hello {name}"}`,
		"fr/app.json": `{"title": "Bonjour {name}"}`,
	})
	broken := t.TempDir()
	writeCatalog(t, broken, map[string]string{
		"en/app.json": `{"title": "Hello {name}"}`,
		"fr/app.json": `{"title": "Bonjour {nom}"}`,
	})

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "clean check", args: []string{"i18ncheck", "--dir", clean, "--no-color", "check"}, want: 0},
		{name: "inconsistent check", args: []string{"i18ncheck", "--dir", broken, "check"}, want: 1},
		{name: "json output", args: []string{"i18ncheck", "--dir", clean, "--format", "json", "check"}, want: 0},
		{name: "missing base", args: []string{"i18ncheck", "--dir", clean, "--base", "de", "check"}, want: 1},
		{name: "keys", args: []string{"i18ncheck", "-d", clean, "keys", "--lang", "fr"}, want: 0},
		{name: "unknown flag", args: []string{"i18ncheck", "--frobnicate", "check"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}

func TestRunReadsConfigFile(t *testing.T) {
	inDir(t)

	root := t.TempDir()
	writeCatalog(t, root, map[string]string{
		"fr/app.json": `{"title": "Bonjour {name}"}`,
		"de/app.json": `{"title": "Hallo {name}"}`,
	})
	require.NoError(t, os.WriteFile(".i18ncheck.toml", []byte("dir = \""+filepath.ToSlash(root)+"\"\nbase = \"fr\"\n"), 0644))

	assert.Equal(t, 0, run([]string{"i18ncheck", "check"}))
	// flags win over the file
	assert.Equal(t, 1, run([]string{"i18ncheck", "--base", "en", "check"}))
}

func TestRunInvalidConfigFile(t *testing.T) {
	inDir(t)
	require.NoError(t, os.WriteFile(".i18ncheck.toml", []byte("unknown = 1\n"), 0644))

	assert.Equal(t, 1, run([]string{"i18ncheck", "check"}))
}

func TestTranslate(t *testing.T) {
	bundle, err := messages.NewBundle()
	require.NoError(t, err)

	err = goopterrors.ErrUnusedKeysFound.WithArgs(2)
	assert.Equal(t, "2 unused key(s) found", translate(bundle, err))

	wrapped := goopterrors.ErrFailedToScan.WithArgs("boom").Wrap(errors.New("inner"))
	assert.Equal(t, "failed to scan source files: boom: inner", translate(bundle, wrapped))

	assert.Equal(t, "plain", translate(bundle, errors.New("plain")))

	failed := goopterrors.ErrCommandFailed.WithArgs("check", translate(bundle, goopterrors.ErrUnusedKeysFound.WithArgs(2)))
	assert.True(t, errors.Is(failed, goopterrors.ErrCommandFailed))
	assert.Equal(t, "Command check failed: 2 unused key(s) found", translate(bundle, failed))

	loadErr := goopterrors.ErrFailedToLoadConfig.WithArgs(".i18ncheck.toml", errors.New("bad key"))
	assert.True(t, errors.Is(loadErr, goopterrors.ErrFailedToLoadConfig))
	assert.Equal(t, "failed to load configuration file .i18ncheck.toml: bad key", translate(bundle, loadErr))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, language.German, parseLanguage("DE"))
	assert.Equal(t, language.French, parseLanguage("fr"))
	assert.Equal(t, language.English, parseLanguage("en"))
	assert.Equal(t, language.Und, parseLanguage("xx"))
}
