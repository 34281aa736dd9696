// Package config loads the settings for the program's own diagnostics
// logging. Values come from defaults, optionally overridden by a YAML file.
// The record sink is not configurable here; see package record.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values for configuration
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false
)

// ErrConfiguration wraps every failure to load or validate configuration.
var ErrConfiguration = errors.New("configuration error")

// Config is the root of the configuration file.
type Config struct {
	Log LogConfig `mapstructure:"log"`
}

// LogConfig controls the diagnostics logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// Load returns the defaults, overridden by the YAML file at path when path
// is not empty. A path that cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", DefaultLogJSON)
}
