// Package config reads the optional YAML file that provides defaults for the command line flags
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file in the user's home directory
const FileName = ".gqlpath.yaml"

// Values of Color and Format
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned when the file is not valid YAML or has a bad setting
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings that can be given in the config file
type Config struct {
	ShowRelay bool              `yaml:"show_relay"`
	Color     string            `yaml:"color"`
	Format    string            `yaml:"format"`
	Strict    bool              `yaml:"strict"`
	Timeout   time.Duration     `yaml:"timeout"`
	Headers   map[string]string `yaml:"headers,omitempty"`
}

// Default returns the settings used when there is no config file
func Default() Config {
	return Config{
		Color:   ColorAuto,
		Format:  FormatText,
		Timeout: 30 * time.Second,
	}
}

// DefaultPath returns where the config file is looked for if no path is given
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the config file at path.  If the file does not exist the defaults are returned, and
// any settings missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%w (in %s)", err, path)
	}
	return cfg, nil
}

// Validate checks the settings that have a fixed set of values
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never not %q", ErrInvalidConfig, c.Color)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format must be text or json not %q", ErrInvalidConfig, c.Format)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

// Save writes the settings to path as YAML (eg to create a config file with the defaults)
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
