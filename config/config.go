package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the runtime settings for the keychord binary.
type Config struct {
	// Leader overrides the bindings file's leader key spec.
	Leader string `koanf:"leader"`

	// TimeoutMS overrides the bindings file's chord timeout.
	TimeoutMS int `koanf:"timeout_ms"`

	// Bindings is the path to a JSON bindings file.
	Bindings string `koanf:"bindings"`

	// Script is the path to a Lua script defining bindings.
	Script string `koanf:"script"`

	// AllowShadowing permits chords that are prefixes of longer chords
	// (shortest-wins).
	AllowShadowing bool `koanf:"allow_shadowing"`
}

// Load reads the runtime config. With an explicit path only that file is
// read and it must exist. Otherwise the default locations are tried in
// order, later files overriding earlier ones; missing files are fine.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	} else {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config %s: %w", p, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Bindings = expandPath(cfg.Bindings)
	cfg.Script = expandPath(cfg.Script)
	return cfg, nil
}

// defaultPaths returns the config locations in priority order (last
// wins): the XDG config directory, then the working directory.
func defaultPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "keychord", "keychord.toml"),
		"keychord.toml",
	}
}

// DefaultBindingsPath returns where a bindings file is looked for when
// the config names none.
func DefaultBindingsPath() string {
	return filepath.Join(xdg.ConfigHome, "keychord", "bindings.json")
}

// DefaultScriptPath returns where a Lua bindings script is looked for
// when the config names none.
func DefaultScriptPath() string {
	return filepath.Join(xdg.ConfigHome, "keychord", "bindings.lua")
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
