// Package config loads the persistent defaults of the CLI from a TOML
// file. Precedence: flags override the file, the file overrides built-ins.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Dump   DumpConfig   `toml:"dump"`
	Output OutputConfig `toml:"output"`
}

type DumpConfig struct {
	Format string `toml:"format"`
	Std    string `toml:"std"`
	Warn   string `toml:"warn"`
	// KeepGoing dumps the best-effort tree even after unrecoverable
	// diagnostics. The exit status stays nonzero either way.
	KeepGoing bool `toml:"keep_going"`
	Cache     bool `toml:"cache"`
}

type OutputConfig struct {
	Color string `toml:"color"`
}

// Default returns the built-in configuration: the fixed invocation of the
// minimal driver.
func Default() Config {
	return Config{
		Dump: DumpConfig{
			Format: "pretty",
			Std:    "go1.25",
			Warn:   "all",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// DefaultPath returns the standard config location
// ($XDG_CONFIG_HOME/astdump/config.toml).
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "astdump", "config.toml")
}

// Load reads the config at path. An empty path means the standard
// location; a missing file at the standard location is not an error and
// yields the defaults. An explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Args assembles the invocation argument list. Order mirrors the minimal
// driver: the language standard first, then the warning selector.
func (c Config) Args() []string {
	warn := "-Wall"
	if c.Dump.Warn == "none" {
		warn = "-Wnone"
	}
	return []string{"-std=" + c.Dump.Std, warn}
}
