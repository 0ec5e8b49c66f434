// Package config loads the optional .lci.yaml run configuration: trace
// verbosity and the explicit opt-in LOLCODE's I DUZ system-command
// construct requires (spec.md §9 Open Questions).
package config

import (
	"os"

	"github.com/golci/lci/errs"
	"gopkg.in/yaml.v3"
)

// Config is the decoded shape of .lci.yaml. The zero value is the safe
// default: tracing off, system commands disabled.
type Config struct {
	Verbose              bool `yaml:"verbose"`
	AllowSystemCommands  bool `yaml:"allow_system_commands"`
}

// Default returns the zero-value, safest configuration.
func Default() *Config {
	return &Config{}
}

// Load reads and parses path. A missing file is not an error; it yields
// Default().
func Load(path string) (*Config, *errs.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errs.New(errs.ConfigLoadFailed, path, 0, "", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.New(errs.ConfigLoadFailed, path, 0, "", path, err)
	}
	return cfg, nil
}
