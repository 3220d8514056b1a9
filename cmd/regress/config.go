package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every subcommand. It is read from an
// optional YAML file and overridden by command-line flags.
type Config struct {
	Response    string   `yaml:"response" validate:"required"`
	Features    []string `yaml:"features" validate:"dive,required"`
	DateColumn  string   `yaml:"date_column"`
	Delimiter   string   `yaml:"delimiter" validate:"len=1"`
	NoIntercept bool     `yaml:"no_intercept"`
	Lags        int      `yaml:"lags" validate:"min=1"`
	Alpha       float64  `yaml:"alpha" validate:"gt=0,lt=1"`
	Window      int      `yaml:"window" validate:"omitempty,min=2"`
	Workers     int      `yaml:"workers" validate:"min=0,max=1024"`
	LogLevel    string   `yaml:"log_level" validate:"oneof=trace debug info warn warning error"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Response:  "y",
		Delimiter: ",",
		Lags:      10,
		Alpha:     0.05,
		Workers:   1,
		LogLevel:  "info",
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}
