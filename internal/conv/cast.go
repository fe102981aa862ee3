package conv

import (
	"fmt"
	"math"
)

// IntToInt16 converts int to int16 safely.
func IntToInt16(v int) (int16, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int16", v)
	}
	return int16(v), nil
}
