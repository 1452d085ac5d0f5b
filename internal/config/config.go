// Package config loads lvtopo run settings from YAML files and the
// environment.
//
// Precedence (highest first): LVTOPO_* environment variables, the config
// file, built-in defaults. Nested keys map to env names with "_", e.g.
// model.n → LVTOPO_MODEL_N.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/builder"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVTOPO"

// ErrInvalidConfig is returned when loaded settings fail validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LogConfig selects the logger built by internal/logging.
type LogConfig struct {
	Level       string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" mapstructure:"development"`
}

// Config is one complete generation run.
type Config struct {
	Model  builder.RouterBarabasiAlbertParams `yaml:"model" mapstructure:"model"`
	Seed   int64                              `yaml:"seed" mapstructure:"seed"`
	Log    LogConfig                          `yaml:"log" mapstructure:"log"`
	Format string                             `yaml:"format" mapstructure:"format" validate:"oneof=text yaml"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Model:  builder.DefaultParams(),
		Seed:   1,
		Log:    LogConfig{Level: "info"},
		Format: "text",
	}
}

var validate = validator.New()

// Validate checks the run settings and the model parameters.
func (c Config) Validate() error {
	if err := validate.Struct(c.Log); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}
	if c.Format != "text" && c.Format != "yaml" {
		return fmt.Errorf("%w: format %q (want text or yaml)", ErrInvalidConfig, c.Format)
	}
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Load reads settings from path. An empty path searches "lvtopo.yaml" in
// the working directory and $HOME/.lvtopo, falling back to defaults when
// none is found. An explicit path that cannot be read is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lvtopo")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.lvtopo")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WriteDefault writes the default settings as YAML to path, creating
// parent directories. An existing file is left untouched and reported.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// setDefaults registers every key of d so env overrides and Unmarshal see them.
func setDefaults(v *viper.Viper, d Config) {
	m := d.Model
	for k, val := range map[string]any{
		"model.n":         m.N,
		"model.hs":        m.HS,
		"model.ls":        m.LS,
		"model.placement": int(m.Placement),
		"model.m":         m.M,
		"model.bw_dist":   int(m.BWDist),
		"model.bw_min":    m.BWMin,
		"model.bw_max":    m.BWMax,
		"seed":            d.Seed,
		"log.level":       d.Log.Level,
		"log.development": d.Log.Development,
		"format":          d.Format,
	} {
		v.SetDefault(k, val)
	}
}
