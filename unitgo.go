package unitgo

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/quantity"
)

// Op is a binary measurement operation.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

// ParseOp accepts add, sub, mul and div, case-insensitively.
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(s)); op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return op, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnknownOp, "%q", s),
			"use one of add, sub, mul, div",
		)
	}
}

// Engine resolves unit names through a catalog and runs conversions and
// propagations with logging and metrics. It is safe for concurrent use.
type Engine struct {
	registry  *catalog.Registry
	logger    *Logger
	metrics   MetricsCollector
	model     measurement.Model
	precision int
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := applyOptions(opts)
	return &Engine{
		registry:  o.registry,
		logger:    o.logger,
		metrics:   o.metricsCollector,
		model:     o.model,
		precision: o.precision,
	}
}

// Registry returns the engine's catalog.
func (e *Engine) Registry() *catalog.Registry { return e.registry }

// Unit looks up a unit by name or symbol.
func (e *Engine) Unit(name string) (quantity.Unit, error) {
	entry, err := e.registry.Lookup(name)
	if err != nil {
		return quantity.Dimensionless, err
	}
	return entry.Unit, nil
}

// Quantity returns value in the named unit.
func (e *Engine) Quantity(value float64, unit string) (quantity.Quantity[float64], error) {
	u, err := e.Unit(unit)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(value, u), nil
}

// Measurement returns value ± uncertainty in the named unit using the
// engine's propagation model.
func (e *Engine) Measurement(value, uncertainty float64, unit string) (measurement.Measurement[float64], error) {
	q, err := e.Quantity(value, unit)
	if err != nil {
		return measurement.Measurement[float64]{}, err
	}
	return measurement.New(q, uncertainty, measurement.WithModel(e.model)), nil
}

// Convert expresses value in unit from as unit to. Affine units such as
// degC go through quantity.AffineCast; all others through quantity.Cast.
func (e *Engine) Convert(ctx context.Context, value float64, from, to string) (quantity.Quantity[float64], error) {
	start := time.Now()
	q, err := e.convert(value, from, to)
	e.metrics.RecordConversion(time.Since(start), err)
	e.logger.WithOperation("convert").WithUnit(to).LogConversion(ctx, value, from, q.Value(), err)
	return q, err
}

func (e *Engine) convert(value float64, from, to string) (quantity.Quantity[float64], error) {
	src, err := e.Quantity(value, from)
	if err != nil {
		return src, err
	}
	dst, err := e.Unit(to)
	if err != nil {
		return src, err
	}
	if src.Unit().IsAffine() || dst.IsAffine() {
		return quantity.AffineCast(src, dst)
	}
	return quantity.Cast(src, dst)
}

// Propagate applies op to a and b.
func (e *Engine) Propagate(ctx context.Context, op Op, a, b measurement.Measurement[float64]) (measurement.Measurement[float64], error) {
	start := time.Now()
	r, err := propagate(op, a, b)
	e.metrics.RecordPropagation(string(op), time.Since(start), err)
	unit := a.Value().Unit()
	if err == nil {
		unit = r.Value().Unit()
	}
	e.logger.WithOperation(string(op)).WithUnit(e.registry.Symbol(unit)).
		LogPropagation(ctx, r.Value().Value(), r.Uncertainty(), err)
	return r, err
}

func propagate(op Op, a, b measurement.Measurement[float64]) (measurement.Measurement[float64], error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	case OpDiv:
		return a.Div(b)
	default:
		return a, errors.Wrapf(ErrUnknownOp, "%q", string(op))
	}
}

// Format renders q with the engine's catalog and precision.
func (e *Engine) Format(q quantity.Quantity[float64]) string {
	return catalog.Format(e.registry, q, e.precision)
}

// FormatMeasurement renders m with the engine's catalog and precision.
func (e *Engine) FormatMeasurement(m measurement.Measurement[float64]) string {
	return catalog.FormatMeasurement(e.registry, m, e.precision)
}
