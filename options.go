package unitgo

import (
	"log/slog"

	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/measurement"
)

type options struct {
	registry         *catalog.Registry
	metricsCollector MetricsCollector
	logger           *Logger
	model            measurement.Model
	precision        int
}

// Option configures an Engine.
type Option func(*options)

// WithRegistry sets the unit catalog. If nil is passed, catalog.Default is used.
func WithRegistry(r *catalog.Registry) Option {
	return func(o *options) {
		if r == nil {
			r = catalog.Default()
		}
		o.registry = r
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &unitgo.BasicMetricsCollector{}
//	eng := unitgo.New(unitgo.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Conversions: %d, errors: %d\n", stats.ConversionCount, stats.ConversionErrors)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithModel sets the propagation model for measurements built by the engine.
func WithModel(m measurement.Model) Option {
	return func(o *options) {
		o.model = m
	}
}

// WithPrecision sets the significant digits used by Format; -1 selects the
// shortest exact representation. The default is 6.
func WithPrecision(p int) Option {
	return func(o *options) {
		o.precision = p
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		registry:         catalog.Default(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		model:            measurement.RSS,
		precision:        6,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
