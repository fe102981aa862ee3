package storage

import (
	"log/slog"
)

// Stats is a snapshot of pool usage.
type Stats struct {
	Capacity      int
	Active        int
	Peak          int
	Fallbacks     int
	ReservedBytes int64
}

// ExhaustionPolicy decides what Create does when every slot is taken.
// Returning nil falls back to a private allocation; returning an error fails
// the Create with it.
type ExhaustionPolicy interface {
	OnExhausted(s Stats) error
}

// ExhaustionPolicyFunc adapts a function to ExhaustionPolicy.
type ExhaustionPolicyFunc func(s Stats) error

// OnExhausted calls f(s).
func (f ExhaustionPolicyFunc) OnExhausted(s Stats) error { return f(s) }

// FallbackPolicy always falls back. It is the default.
var FallbackPolicy ExhaustionPolicy = ExhaustionPolicyFunc(func(Stats) error { return nil })

// StrictPolicy fails Create with ErrExhausted instead of falling back.
var StrictPolicy ExhaustionPolicy = ExhaustionPolicyFunc(func(Stats) error { return ErrExhausted })

// Budget reserves memory for a pool's slots. *resource.Controller
// implements it.
type Budget interface {
	TryAcquireMemory(bytes int64) bool
	ReleaseMemory(bytes int64)
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	policy ExhaustionPolicy
	logger *slog.Logger
	budget Budget
}

func defaultOptions() options {
	return options{
		policy: FallbackPolicy,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithExhaustionPolicy sets the policy applied when the pool is full.
func WithExhaustionPolicy(p ExhaustionPolicy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithLogger sets the logger for exhaustion warnings and slot events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBudget reserves the pool's slot memory from b at construction and
// returns it on Close.
func WithBudget(b Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}
