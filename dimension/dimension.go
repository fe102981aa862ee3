package dimension

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/internal/conv"
)

// Base identifies one slot of a Dimension.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Intensity
	Angle

	// Count is the number of base dimensions.
	Count
)

var baseNames = [Count]string{"length", "mass", "time", "current", "temperature", "amount", "intensity", "angle"}

var baseSymbols = [Count]string{"m", "kg", "s", "A", "K", "mol", "cd", "rad"}

var (
	// ErrUnknownBase is returned when a base dimension name cannot be parsed.
	ErrUnknownBase = errors.New("dimension: unknown base dimension")

	// ErrExponentOverflow is returned when an exponent leaves the int16 range.
	ErrExponentOverflow = errors.New("dimension: exponent overflow")
)

func (b Base) String() string {
	if b < 0 || b >= Count {
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
	return baseNames[b]
}

// Symbol returns the SI symbol of the canonical unit of b.
func (b Base) Symbol() string {
	if b < 0 || b >= Count {
		return "?"
	}
	return baseSymbols[b]
}

// ParseBase resolves a base dimension from its name ("length") or the symbol
// of its canonical unit ("m").
func ParseBase(s string) (Base, error) {
	for i := range Count {
		if strings.EqualFold(s, baseNames[i]) || s == baseSymbols[i] {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownBase, "%q", s)
}

// Dimension is a vector of base-dimension exponents.
type Dimension [Count]int16

// Scalar is the dimensionless dimension.
var Scalar Dimension

// Of returns the dimension of base b raised to the first power.
func Of(b Base) Dimension {
	var d Dimension
	d[b] = 1
	return d
}

// New builds a dimension from named exponents.
func New(exponents map[Base]int) (Dimension, error) {
	var d Dimension
	for b, e := range exponents {
		if b < 0 || b >= Count {
			return Scalar, errors.Wrapf(ErrUnknownBase, "index %d", int(b))
		}
		v, err := conv.IntToInt16(e)
		if err != nil {
			return Scalar, errors.Wrapf(err, "exponent of %s", b)
		}
		d[b] = v
	}
	return d, nil
}

// Exponent returns the exponent of base b.
func (d Dimension) Exponent(b Base) int {
	return int(d[b])
}

// Mul returns the dimension of a product (element-wise sum).
func (d Dimension) Mul(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] + o[i]
	}
	return r
}

// Div returns the dimension of a quotient (element-wise difference).
func (d Dimension) Div(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] - o[i]
	}
	return r
}

// Negate returns the inverse dimension.
func (d Dimension) Negate() Dimension {
	var r Dimension
	for i := range d {
		r[i] = -d[i]
	}
	return r
}

// Pow returns the dimension raised to the integer power n. It fails with
// ErrExponentOverflow when a resulting exponent does not fit in int16.
func (d Dimension) Pow(n int) (Dimension, error) {
	var r Dimension
	for i := range d {
		if d[i] == 0 {
			continue
		}
		if n < math.MinInt16 || n > math.MaxInt16 {
			return Scalar, errors.Wrapf(ErrExponentOverflow, "(%s)^%d", d, n)
		}
		v, err := conv.IntToInt16(int(d[i]) * n)
		if err != nil {
			return Scalar, errors.Wrapf(ErrExponentOverflow, "(%s)^%d: %v", d, n, err)
		}
		r[i] = v
	}
	return r, nil
}

// Root returns the n-th root of d. It reports false if any exponent is not
// divisible by n.
func (d Dimension) Root(n int) (Dimension, bool) {
	if n == 0 {
		return Scalar, false
	}
	var r Dimension
	for i := range d {
		if d[i] == 0 {
			continue
		}
		if int(d[i])%n != 0 {
			return Scalar, false
		}
		// |n| <= |d[i]| here, so n fits in int16.
		r[i] = d[i] / int16(n) //nolint:gosec // n divides the exponent
	}
	return r, true
}

// Equal reports whether all exponents match.
func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

// IsScalar reports whether d is dimensionless.
func (d Dimension) IsScalar() bool {
	return d == Scalar
}

// String renders d in base-unit symbols, positive exponents first:
// "kg*m^2/s^3*A". The scalar dimension renders as "1".
func (d Dimension) String() string {
	var num, den []string
	for i := range Count {
		e := d[i]
		switch {
		case e > 0:
			num = append(num, symbolPow(i, int(e)))
		case e < 0:
			den = append(den, symbolPow(i, int(-e)))
		}
	}

	if len(num) == 0 && len(den) == 0 {
		return "1"
	}

	var sb strings.Builder
	if len(num) == 0 {
		sb.WriteString("1")
	} else {
		sb.WriteString(strings.Join(num, "*"))
	}
	if len(den) > 0 {
		sb.WriteString("/")
		sb.WriteString(strings.Join(den, "*"))
	}
	return sb.String()
}

func symbolPow(b Base, e int) string {
	if e == 1 {
		return b.Symbol()
	}
	return b.Symbol() + "^" + strconv.Itoa(e)
}
