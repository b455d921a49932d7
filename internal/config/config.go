// Package config loads the settings the fvad-bench CLI runs with:
// aggressiveness mode, sample rate, and frame duration, with command
// line flags taking precedence over an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the bench CLI's resolved configuration.
type Config struct {
	Mode       int `yaml:"mode"`
	SampleRate int `yaml:"sample_rate"`
	FrameMs    int `yaml:"frame_ms"`
}

// Default returns the CLI's built-in defaults: mode 1, 16 kHz, 20 ms.
func Default() Config {
	return Config{Mode: 1, SampleRate: 16000, FrameMs: 20}
}

// Load reads a YAML file at path into cfg, overwriting only the fields
// present in the file. A missing path is not an error; cfg is returned
// unchanged.
func Load(path string, cfg Config) (Config, error) {
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether cfg's mode, sample rate, and frame duration
// are all individually legal. It does not check them against each
// other beyond what the detector itself would reject.
func (c Config) Validate() error {
	if c.Mode < 0 || c.Mode > 3 {
		return fmt.Errorf("config: mode must be 0-3, got %d", c.Mode)
	}
	switch c.SampleRate {
	case 8000, 16000, 32000, 48000:
	default:
		return fmt.Errorf("config: sample_rate must be 8000, 16000, 32000, or 48000, got %d", c.SampleRate)
	}
	switch c.FrameMs {
	case 10, 20, 30:
	default:
		return fmt.Errorf("config: frame_ms must be 10, 20, or 30, got %d", c.FrameMs)
	}
	return nil
}
