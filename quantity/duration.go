package quantity

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/ratio"
)

// nanosecond is the tick of time.Duration.
var nanosecond = NewUnit(ratio.MustNew(1, int64(time.Second)), dimension.Of(dimension.Time))

// FromDuration expresses d in u, which must be a linear unit of time.
func FromDuration[T Number](d time.Duration, u Unit) (Quantity[T], error) {
	return Cast(New(T(d), nanosecond), u)
}

// Duration converts q to a time.Duration, rounding to the nearest
// nanosecond. Values that do not fit in a Duration are rejected.
func (q Quantity[T]) Duration() (time.Duration, error) {
	ns, err := Cast(q, nanosecond)
	if err != nil {
		return 0, err
	}
	v := math.Round(float64(ns.value))
	if math.IsNaN(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, errors.Wrapf(ErrDomain, "%s as duration", q)
	}
	return time.Duration(v), nil
}
