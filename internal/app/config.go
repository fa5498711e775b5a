package app

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/language"
)

// Config is the optional configuration file accepted by the scanfmt CLI
// via --config, in TOML.
type Config struct {
	// DefaultLocale is a BCP-47 language tag (e.g. "fi", "de-DE") used in
	// place of the classic "C" locale by the run subcommand; check
	// validates the tag but does not otherwise use it. Empty means classic.
	DefaultLocale string `toml:"default_locale"`
}

// LoadConfig reads and parses a [Config] from a TOML file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not load config %s: %w", path, err)
	}

	return cfg, nil
}

// Tag resolves the configured default locale to a [language.Tag],
// reporting ok=false if none was configured.
func (c Config) Tag() (tag language.Tag, ok bool, err error) {
	if c.DefaultLocale == "" {
		return language.Tag{}, false, nil
	}

	tag, err = language.Parse(c.DefaultLocale)
	if err != nil {
		return language.Tag{}, false, fmt.Errorf("invalid default_locale %q: %w", c.DefaultLocale, err)
	}

	return tag, true, nil
}

// Fixtures is a named batch of format strings, loaded from a YAML file
// for the check subcommand's batch mode: a quick way to validate a set
// of format strings that do not each warrant their own ".scanfmt" file.
type Fixtures struct {
	Formats []string `yaml:"formats"`
}

// LoadFixtures reads and parses a [Fixtures] batch from a YAML file at path.
func LoadFixtures(path string) (Fixtures, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("could not read fixtures %s: %w", path, err)
	}

	var fixtures Fixtures

	if err := yaml.Unmarshal(contents, &fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("could not parse fixtures %s: %w", path, err)
	}

	return fixtures, nil
}
