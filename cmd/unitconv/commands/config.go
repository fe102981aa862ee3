package commands

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/hupe1980/unitgo/measurement"
)

// Config is the unitconv configuration. Values come from, in increasing
// precedence: defaults, the config file, UNITCONV_* environment variables
// and command-line flags.
type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Output      OutputConfig      `mapstructure:"output"`
	Units       UnitsConfig       `mapstructure:"units"`
	Propagation PropagationConfig `mapstructure:"propagation"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Precision int  `mapstructure:"precision"`
	Unicode   bool `mapstructure:"unicode"`
}

type UnitsConfig struct {
	// File is an extra TOML or YAML unit file loaded on top of the
	// built-in catalog.
	File string `mapstructure:"file"`
}

type PropagationConfig struct {
	Model string `mapstructure:"model"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("output.precision", 6)
	v.SetDefault("output.unicode", false)

	v.SetDefault("units.file", "")

	v.SetDefault("propagation.model", "rss")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("UNITCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// loadConfig reads path, if set, and unmarshals v.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

func (c *Config) logLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, errors.WithHint(
			errors.Wrapf(err, "log level %q", c.Log.Level),
			"use one of debug, info, warn, error",
		)
	}
	return level, nil
}

func (c *Config) model() (measurement.Model, error) {
	switch strings.ToLower(c.Propagation.Model) {
	case "rss", "":
		return measurement.RSS, nil
	case "linear":
		return measurement.Linear, nil
	default:
		return measurement.RSS, errors.WithHint(
			errors.Newf("unknown propagation model %q", c.Propagation.Model),
			"use rss or linear",
		)
	}
}
