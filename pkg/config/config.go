// Package config loads and validates the relfiles configuration: the editor
// to launch, UI preferences, and above all the ordered list of related-file
// groups. Configuration is layered: embedded defaults, then the user's
// config file, then RELFILES_* environment variables.
package config

import (
	_ "embed"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/group"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

//go:embed embedded/user-defaults.toml
var userDefaultConfig []byte

// Config is the fully merged configuration.
type Config struct {
	Editor EditorConfig  `koanf:"editor" toml:"editor"`
	UI     UIConfig      `koanf:"ui" toml:"ui"`
	Groups []GroupConfig `koanf:"groups" toml:"groups"`
}

// EditorConfig controls how resolved files are opened.
type EditorConfig struct {
	// Command is the editor executable, possibly with leading arguments.
	// $EDITOR takes precedence at launch time when set.
	Command string `koanf:"command" toml:"command"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	// Color is one of auto, always, never.
	Color string `koanf:"color" toml:"color"`
}

// GroupConfig is one registered related-file group as configured.
type GroupConfig struct {
	Name     string   `koanf:"name" toml:"name,omitempty"`
	Patterns []string `koanf:"patterns" toml:"patterns"`
}

// Validate checks group arities so malformed groups are rejected at load
// time, never during resolution.
func (c *Config) Validate() error {
	for i, gc := range c.Groups {
		n := len(gc.Patterns)
		if n < group.MinPatterns || n > group.MaxPatterns {
			return errors.Newf(errors.ErrConfigValid,
				"group %d (%s) must have between %d and %d patterns, got %d",
				i, displayName(gc), group.MinPatterns, group.MaxPatterns, n).
				WithDetail("group", i).
				WithDetail("count", n)
		}
	}

	switch c.UI.Color {
	case "", "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigValid,
			"ui.color must be auto, always or never, got %q", c.UI.Color)
	}

	return nil
}

// BuildRegistry materializes the configured groups into a registry, in
// configuration order.
func (c *Config) BuildRegistry() (*group.Registry, error) {
	reg := group.NewRegistry()
	for _, gc := range c.Groups {
		if err := reg.AppendNamed(gc.Name, gc.Patterns...); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// DefaultConfigContent returns the commented default config file shipped to
// users by gen-config.
func DefaultConfigContent() string {
	return string(userDefaultConfig)
}

// DumpEffective renders the merged configuration as TOML, for gen-config
// --effective.
func DumpEffective(c *Config) (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot marshal configuration")
	}
	return string(out), nil
}

func displayName(gc GroupConfig) string {
	if gc.Name != "" {
		return gc.Name
	}
	return "unnamed"
}
