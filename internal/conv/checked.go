package conv

import (
	"fmt"
	"math"
)

// MulInt64 returns a*b or an error if the product overflows int64.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds int64", a, b)
	}
	return c, nil
}

// NegInt64 returns -v or an error for math.MinInt64.
func NegInt64(v int64) (int64, error) {
	if v == math.MinInt64 {
		return 0, fmt.Errorf("integer overflow: cannot negate %d", v)
	}
	return -v, nil
}

// PowInt64 returns base^exp by repeated squaring. It stops with an error at
// the first product that overflows.
func PowInt64(base int64, exp uint) (int64, error) {
	result := int64(1)
	for {
		var err error
		if exp&1 == 1 {
			if result, err = MulInt64(result, base); err != nil {
				return 0, err
			}
		}
		exp >>= 1
		if exp == 0 {
			return result, nil
		}
		if base, err = MulInt64(base, base); err != nil {
			return 0, err
		}
	}
}
