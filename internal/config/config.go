// Package config handles loading and saving user configuration for pokescript.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds the user's defaults. Command line flags override them.
type Config struct {
	ShowTitle       bool   `yaml:"show_title" mapstructure:"show_title"`             // Print the name above the sprite
	Large           bool   `yaml:"large" mapstructure:"large"`                       // Use the large sprites by default
	ColorscriptsDir string `yaml:"colorscripts_dir" mapstructure:"colorscripts_dir"` // Read sprites from disk instead of the bundle
	Verbose         bool   `yaml:"verbose" mapstructure:"verbose"`                   // Debug logging on stderr
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ShowTitle: true,
	}
}

// Load reads a config file, filling unset keys from Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the config to a YAML file.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(header), out...), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

const header = `# pokescript configuration
# Every key can also be set with a POKESCRIPT_ environment variable,
# e.g. POKESCRIPT_LARGE=true.

`

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pokescript"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pokescript"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
