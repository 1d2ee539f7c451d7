// Package config reads the optional i18ncheck configuration file.
//
// Values from the file act as defaults: anything given on the command line wins.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvConfigPath names the environment variable pointing at the configuration file
	EnvConfigPath = "I18NCHECK_CONFIG"
	// DefaultPath is used when EnvConfigPath is not set
	DefaultPath = ".i18ncheck.toml"
)

// File mirrors the settings that can be stored in .i18ncheck.toml
type File struct {
	Dir           string   `toml:"dir"`
	Base          string   `toml:"base"`
	Layout        string   `toml:"layout"`
	Format        string   `toml:"format"`
	Workers       int      `toml:"workers"`
	Scan          []string `toml:"scan"`
	Keep          []string `toml:"keep"`
	Only          []string `toml:"only"`
	SkipMalformed bool     `toml:"skip_malformed"`
}

// Locate returns the configuration file to use, or "" when there is none.
// A .env file in the working directory is loaded first so it can set I18NCHECK_CONFIG.
func Locate() string {
	// .env is optional, variables may come from the environment directly
	_ = godotenv.Load()

	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	return ""
}

// Load decodes the TOML file at path. Unknown settings are rejected.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := &File{}
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, errors.New(strict.String())
		}
		return nil, err
	}
	return cfg, nil
}
