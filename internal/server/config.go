package server

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address, e.g. ":5000".
	Addr string `yaml:"addr"`
	// DefaultTarget is used when a convert request names no target.
	DefaultTarget string `yaml:"default_target"`
	// Verbose enables IR validation logging per request.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Addr:          ":5000",
		DefaultTarget: "c",
	}
}

// LoadConfig reads a YAML config file. Unknown fields are rejected so
// typos fail loudly instead of silently using defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
