// Package config loads gridrobot settings from an optional YAML file and
// GRIDROBOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"gridrobot/internal/logging"
)

const DefaultPath = "gridrobot.yaml"

type Config struct {
	LogLevel   string        `yaml:"log_level" env:"LOG_LEVEL"`
	Render     bool          `yaml:"render" env:"RENDER"`
	FrameDelay time.Duration `yaml:"frame_delay" env:"FRAME_DELAY"`
	Strict     bool          `yaml:"strict" env:"STRICT"`
}

func Default() *Config {
	return &Config{
		LogLevel:   "info",
		FrameDelay: 200 * time.Millisecond,
	}
}

// Load applies, in order: defaults, the YAML file at path, and environment
// overrides. Only DefaultPath may be missing. The result is not validated so
// callers can layer flag overrides on top before calling Validate.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "GRIDROBOT_"}); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("config: negative frame_delay %s", c.FrameDelay)
	}
	return nil
}
