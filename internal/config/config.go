// Package config loads the optional YAML configuration for circlemask.
// The mask geometry is fixed and deliberately not configurable; the file
// only covers output encoding and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/smueschi/circlemask/internal/imageio"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	Output struct {
		// Compression is the PNG compression level: default, none, speed or best
		Compression string `yaml:"compression"`
	} `yaml:"output"`

	Log struct {
		// Level is a logrus level name (panic, fatal, error, warn, info, debug, trace)
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.Compression = "default"
	cfg.Log.Level = "info"
	return cfg
}

// LoadConfig loads configuration from a YAML file.
// An empty path or a missing file yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate checks that every value names a known setting.
func (c *Config) Validate() error {
	if _, err := imageio.ParseCompression(c.Output.Compression); err != nil {
		return fmt.Errorf("output.compression: %w", err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// EncoderOptions converts the output section to PNG encoder options.
func (c *Config) EncoderOptions() (imageio.EncoderOptions, error) {
	level, err := imageio.ParseCompression(c.Output.Compression)
	if err != nil {
		return imageio.EncoderOptions{}, err
	}
	return imageio.EncoderOptions{Compression: level}, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
