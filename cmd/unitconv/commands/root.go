// Package commands implements the unitconv command tree.
package commands

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/catalog"
)

type app struct {
	v          *viper.Viper
	configPath string

	cfg     *Config
	engine  *unitgo.Engine
	logger  *unitgo.Logger
	metrics *unitgo.BasicMetricsCollector
}

// NewRootCmd returns the unitconv root command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:   "unitconv",
		Short: "Convert quantities and propagate measurement uncertainty",
		Long: `unitconv converts values between units and propagates uncertainty
through arithmetic on measurements.

Examples:
  unitconv convert 36 km/h m/s
  unitconv convert 100 degC degF
  unitconv propagate add 10 0.5 m 20 1 m
  unitconv units --convertible km`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.logStats(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (toml or yaml)")
	pf.String("units", "", "extra unit file (toml or yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Int("precision", 6, "significant digits in output; -1 for shortest exact")

	a.bind(root, map[string]string{
		"units.file":       "units",
		"log.level":        "log-level",
		"log.format":       "log-format",
		"output.precision": "precision",
	})

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newPropagateCmd(a))
	root.AddCommand(newUnitsCmd(a))

	return root
}

// bind maps config keys to flags of cmd. Flags take precedence over the
// environment and the config file only when set explicitly.
func (a *app) bind(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		f := cmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = cmd.Flags().Lookup(name)
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := loadConfig(a.v, a.configPath)
	if err != nil {
		return err
	}

	level, err := cfg.logLevel()
	if err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "json":
		a.logger = unitgo.NewJSONLoggerTo(stderr, level)
	case "text", "":
		a.logger = unitgo.NewTextLoggerTo(stderr, level)
	default:
		return errors.WithHint(
			errors.Newf("unknown log format %q", cfg.Log.Format),
			"use text or json",
		)
	}

	model, err := cfg.model()
	if err != nil {
		return err
	}

	registry := catalog.Default()
	if cfg.Units.File != "" {
		registry = registry.Clone()
		if err := registry.LoadFile(cfg.Units.File); err != nil {
			return err
		}
		registry.Freeze()
		a.logger.Debug("unit file loaded", "path", cfg.Units.File, "units", registry.Len())
	}

	a.cfg = cfg
	a.metrics = &unitgo.BasicMetricsCollector{}
	a.engine = unitgo.New(
		unitgo.WithRegistry(registry),
		unitgo.WithLogger(a.logger),
		unitgo.WithMetricsCollector(a.metrics),
		unitgo.WithModel(model),
		unitgo.WithPrecision(cfg.Output.Precision),
	)
	return nil
}

func (a *app) logStats(cmd *cobra.Command) {
	if a.metrics == nil {
		return
	}
	s := a.metrics.GetStats()
	a.logger.DebugContext(cmd.Context(), "run complete",
		"command", cmd.Name(),
		"conversions", s.ConversionCount,
		"conversion_errors", s.ConversionErrors,
		"propagations", s.PropagationCount,
		"propagation_errors", s.PropagationErrors,
	)
}
