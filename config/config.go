// Package config loads server settings from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

const (
	EnvAddress  = "CALCDESIGNS_ADDR"
	EnvLogLevel = "CALCDESIGNS_LOG_LEVEL"
)

// Config holds everything the server needs at startup
type Config struct {
	Address       string `yaml:"address" validate:"required"`
	DefaultDesign int    `yaml:"default_design" validate:"min=1,max=5"`
	DefaultSet    string `yaml:"default_set" validate:"oneof=classic illustrated"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Verbose       bool   `yaml:"verbose"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		Address:       ":8000",
		DefaultDesign: 1,
		DefaultSet:    "classic",
		LogLevel:      "info",
		Verbose:       true,
	}
}

var validate = validator.New()

// Load reads the YAML file at path over the defaults, applies env overrides
// and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, serr.Wrap(err, "failed to read config file", "path", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, serr.Wrap(err, "failed to parse config file", "path", path)
		}
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAddress)); v != "" {
		cfg.Address = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

// Validate checks field constraints and names the first offending field
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return serr.New("invalid config value", "field", fe.Field(), "rule", fe.Tag(), "value", toString(fe.Value()))
	}
	return serr.Wrap(err, "invalid config")
}

func toString(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
