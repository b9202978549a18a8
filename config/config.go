// Package config holds the tool configuration.
//
// Configuration is an explicit value: Load and Resolve return a *Config and
// the command layer threads it to where it is used, nothing reads it
// ambiently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/mdpcardoso/ribs/report"
)

// Env names the environment variable pointing at a config file.
const Env = "RIBS_CONFIG"

type Config struct {
	// Policy is the default bounds policy for apply.
	Policy Policy `yaml:"policy"`
	// Color says when command output is colored.
	Color report.Mode `yaml:"color"`
	// Verbose reports each record as it is applied.
	Verbose bool `yaml:"verbose"`
	// Backup keeps a .bak copy when overwriting a target in place.
	Backup bool `yaml:"backup"`
}

func Default() *Config {
	return &Config{
		Policy: PolicyStrict,
		Color:  report.ModeAuto,
	}
}

// Load reads a YAML config file.  Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return cfg, nil
}

// Resolve returns the configuration for this run.  An explicit path wins
// and must exist.  Otherwise $RIBS_CONFIG is consulted, then the per-user
// file (os.UserConfigDir()/ribs/config.yaml); if the per-user file is
// absent the defaults apply.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if p := os.Getenv(Env); p != "" {
		return Load(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(filepath.Join(dir, "ribs", "config.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
