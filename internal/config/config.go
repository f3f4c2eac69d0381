// Package config loads the schedgroup configuration with koanf.
// Priority: environment variables (SCHEDGROUP_*) > config file > defaults.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the tunables of a verification run that are not per-check
// inputs.
type Configuration struct {
	// MaxDegree caps the symmetric groups the CLI will enumerate. It can
	// lower the built-in package ceiling but never raise it.
	MaxDegree uint64 `koanf:"max_degree"`

	// CriticalSlot is the default slot protected by mutual exclusion.
	CriticalSlot uint64 `koanf:"critical_slot"`

	// NoColor disables colored check output.
	NoColor bool `koanf:"no_color"`
}

const envPrefix = "SCHEDGROUP_"

func defaults() map[string]any {
	return map[string]any{
		"max_degree":    uint64(8),
		"critical_slot": uint64(1),
		"no_color":      false,
	}
}

// Load reads the configuration. configPath may be empty or point to a JSON
// file; a missing file at the given path is an error, no file given is not.
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, err
	}

	var configuration Configuration
	if err := k.Unmarshal("", &configuration); err != nil {
		return nil, err
	}
	return &configuration, nil
}
