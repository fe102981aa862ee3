package ratio

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/internal/conv"
)

var (
	// ErrInvalid is returned for zero or negative scale components.
	ErrInvalid = errors.New("ratio: scale must be positive")
	// ErrOverflow is returned when exact scale arithmetic exceeds int64.
	ErrOverflow = errors.New("ratio: scale overflow")
)

// Ratio is a reduced positive rational number num/den.
type Ratio struct {
	num int64
	den int64
}

// One is the canonical scale 1/1.
var One = Ratio{num: 1, den: 1}

// New returns the reduced ratio num/den.
func New(num, den int64) (Ratio, error) {
	if den == 0 || num == 0 || (num < 0) != (den < 0) {
		return One, errors.Wrapf(ErrInvalid, "%d/%d", num, den)
	}
	if num < 0 {
		var err error
		if num, err = conv.NegInt64(num); err != nil {
			return One, errors.Wrapf(ErrOverflow, "%d/%d", num, den)
		}
		if den, err = conv.NegInt64(den); err != nil {
			return One, errors.Wrapf(ErrOverflow, "%d/%d", num, den)
		}
	}
	g := gcd(num, den)
	return Ratio{num: num / g, den: den / g}, nil
}

// MustNew is like New but panics on invalid input. It is intended for
// package-level unit tables.
func MustNew(num, den int64) Ratio {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Ratio) norm() Ratio {
	if r.den == 0 {
		return One
	}
	return r
}

// Num returns the numerator.
func (r Ratio) Num() int64 { return r.norm().num }

// Den returns the denominator.
func (r Ratio) Den() int64 { return r.norm().den }

// IsOne reports whether r is the canonical scale.
func (r Ratio) IsOne() bool { return r.norm() == One }

// Equal reports whether r and o denote the same scale.
func (r Ratio) Equal(o Ratio) bool { return r.norm() == o.norm() }

// Float64 returns r as a float64, dividing before any further use so large
// components do not build huge intermediates.
func (r Ratio) Float64() float64 {
	n := r.norm()
	return float64(n.num) / float64(n.den)
}

// Inv returns 1/r.
func (r Ratio) Inv() Ratio {
	n := r.norm()
	return Ratio{num: n.den, den: n.num}
}

// Mul returns r*o. Factors are cross-reduced before multiplying.
func (r Ratio) Mul(o Ratio) (Ratio, error) {
	a, b := r.norm(), o.norm()
	g1 := gcd(a.num, b.den)
	g2 := gcd(b.num, a.den)

	num, err := conv.MulInt64(a.num/g1, b.num/g2)
	if err != nil {
		return One, errors.Wrapf(ErrOverflow, "%s * %s", a, b)
	}
	den, err := conv.MulInt64(a.den/g2, b.den/g1)
	if err != nil {
		return One, errors.Wrapf(ErrOverflow, "%s * %s", a, b)
	}
	return Ratio{num: num, den: den}, nil
}

// Div returns r/o.
func (r Ratio) Div(o Ratio) (Ratio, error) {
	return r.Mul(o.Inv())
}

// Pow returns r raised to the integer power n. A negative n swaps numerator
// and denominator.
func (r Ratio) Pow(n int) (Ratio, error) {
	base := r.norm()
	if n < 0 {
		base = base.Inv()
		n = -n
	}
	num, err := conv.PowInt64(base.num, uint(n))
	if err != nil {
		return One, errors.Wrapf(ErrOverflow, "(%s)^%d", r.norm(), n)
	}
	den, err := conv.PowInt64(base.den, uint(n))
	if err != nil {
		return One, errors.Wrapf(ErrOverflow, "(%s)^%d", r.norm(), n)
	}
	return Ratio{num: num, den: den}, nil
}

// Sqrt returns the exact square root of r. It reports false when either
// component is not a perfect square.
func (r Ratio) Sqrt() (Ratio, bool) {
	n := r.norm()
	sn, ok := isqrt(n.num)
	if !ok {
		return One, false
	}
	sd, ok := isqrt(n.den)
	if !ok {
		return One, false
	}
	return Ratio{num: sn, den: sd}, true
}

// String renders r as "num/den", or "num" when den is 1.
func (r Ratio) String() string {
	n := r.norm()
	if n.den == 1 {
		return strconv.FormatInt(n.num, 10)
	}
	return strconv.FormatInt(n.num, 10) + "/" + strconv.FormatInt(n.den, 10)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func isqrt(v int64) (int64, bool) {
	if v < 0 {
		return 0, false
	}
	// The float estimate can be off by one for large inputs.
	s := int64(math.Sqrt(float64(v)))
	for _, c := range [3]int64{s - 1, s, s + 1} {
		if c >= 0 && c <= maxSqrt && c*c == v {
			return c, true
		}
	}
	return 0, false
}

// maxSqrt is floor(sqrt(math.MaxInt64)).
const maxSqrt = 3037000499
