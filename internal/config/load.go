package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no
// --config flag is given.
const EnvConfigPath = "COMMITLINT_CONFIG"

// FileNames are the config file names searched by Discover, in order.
var FileNames = []string{
	".commitlint.yaml",
	".commitlint.yml",
	"commitlint.yaml",
	"commitlint.yml",
}

// Load reads a YAML config file on top of the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover returns the first config file found in dir, or the defaults
// when there is none.
func Discover(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// Resolve picks the config source: an explicit path, then the
// COMMITLINT_CONFIG environment variable, then discovery in dir.
func Resolve(explicit, dir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return Load(p)
	}
	return Discover(dir)
}
