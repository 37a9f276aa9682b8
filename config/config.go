// Package config loads the optional operator configuration for the
// gridagent CLI from $XDG_CONFIG_HOME/gridagent/config.yaml (defaulting
// to ~/.config/gridagent/config.yaml). A missing file yields defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config tunes how the agent unit is rendered. All fields are optional.
type Config struct {
	// Launcher is the runtime that executes the agent entry point,
	// resolved against PATH at install time.
	Launcher string `yaml:"launcher,omitempty"`

	// Entrypoint is the agent entry point run inside the working
	// directory.
	Entrypoint string `yaml:"entrypoint,omitempty"`

	// APIBaseURL, when set, is exported to the agent as API_BASE_URL.
	APIBaseURL string `yaml:"api-base-url,omitempty"`

	// UnitDir overrides the supervisor's unit directory.
	UnitDir string `yaml:"unit-dir,omitempty"`
}

// Default returns the stock configuration for a standard deployment.
func Default() Config {
	return Config{
		Launcher:   "uv",
		Entrypoint: "agent.py",
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "gridagent", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gridagent", "config.yaml")
}

// Load reads the config file over the defaults. An absent file is not an
// error.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if strings.TrimSpace(cfg.Launcher) == "" {
		cfg.Launcher = Default().Launcher
	}
	if strings.TrimSpace(cfg.Entrypoint) == "" {
		cfg.Entrypoint = Default().Entrypoint
	}
	return cfg, nil
}
