package catalog

import (
	"strconv"

	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/quantity"
)

// Symbol returns the symbol of u's entry, or u rendered as a dimension with
// a scale prefix ("[1000] m^2") when nothing is registered for it. The plain
// dimensionless unit renders as "".
func (r *Registry) Symbol(u quantity.Unit) string {
	if e, ok := r.Resolve(u); ok {
		return e.Symbol
	}
	if u.IsScalar() && u.Scale().IsOne() && !u.IsAffine() {
		return ""
	}
	return u.String()
}

// Format renders q as "value symbol". precision is passed to
// strconv.FormatFloat with the 'g' verb; -1 selects the shortest exact form.
// A nil registry means Default.
func Format[T quantity.Number](r *Registry, q quantity.Quantity[T], precision int) string {
	if r == nil {
		r = Default()
	}
	return join(formatFloat(float64(q.Value()), precision), r.Symbol(q.Unit()))
}

// FormatMeasurement renders m as "value ± uncertainty symbol".
func FormatMeasurement[T quantity.Number](r *Registry, m measurement.Measurement[T], precision int) string {
	if r == nil {
		r = Default()
	}
	s := formatFloat(float64(m.Value().Value()), precision) + " ± " + formatFloat(float64(m.Uncertainty()), precision)
	return join(s, r.Symbol(m.Unit()))
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

func join(value, symbol string) string {
	if symbol == "" {
		return value
	}
	return value + " " + symbol
}
