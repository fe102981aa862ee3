package measurement

import "math"

// Model selects how independent uncertainties combine.
type Model int

const (
	// RSS combines uncertainties in quadrature: sqrt(a² + b²).
	RSS Model = iota
	// Linear sums uncertainties: a + b.
	Linear
)

func (m Model) String() string {
	switch m {
	case RSS:
		return "rss"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

func (m Model) combine(a, b float64) float64 {
	if m == Linear {
		return a + b
	}
	return math.Hypot(a, b)
}

// Option configures a Measurement at construction.
type Option func(*options)

type options struct {
	model Model
}

// WithModel sets the propagation model. The default is RSS.
func WithModel(m Model) Option {
	return func(o *options) {
		o.model = m
	}
}
