package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks configuration documents that fail validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Default returns a configuration with every default applied.
func Default() AppConfig {
	var cfg AppConfig
	cfg.applyDefaults()

	return cfg
}

// Load reads the configuration at path. An empty path searches config.yml
// then config.yaml in the working directory and falls back to Default when
// neither exists; an explicit path must exist.
func Load(path string) (AppConfig, error) {
	if path == "" {
		for _, p := range []string{DefaultConfigFileName, alternateConfigFileName} {
			data, err := os.ReadFile(p)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return AppConfig{}, fmt.Errorf("config: read %s: %w", p, err)
			}

			return Parse(data)
		}

		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes, validates and completes a YAML document.
// An empty document yields Default().
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return AppConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validate runs the struct-tag rules and the per-source requirements.
func (c AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.Source {
	case SourceGTFSRT:
		if c.GTFSRT.TripUpdatesURL == "" {
			return fmt.Errorf("%w: gtfsrt source needs gtfsrt.tripUpdatesURL", ErrInvalidConfig)
		}
	case SourceMySQL:
		if c.MySQL.DSN == "" {
			return fmt.Errorf("%w: mysql source needs mysql.dsn", ErrInvalidConfig)
		}
	}

	return nil
}

func (c *AppConfig) applyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Routes.Path == "" {
		c.Routes.Path = DefaultRoutesPath
	}
	if c.GTFSRT.TimeoutMS == 0 {
		c.GTFSRT.TimeoutMS = DefaultGTFSRTTimeoutMS
	}
	if c.Builder.DefaultDistanceKM == nil {
		d := DefaultDistanceKM
		c.Builder.DefaultDistanceKM = &d
	}
}
