package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulInt64(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		expected int64
		wantErr  bool
	}{
		{"Zero", 0, math.MaxInt64, 0, false},
		{"Simple", 1000, 1000, 1_000_000, false},
		{"Negative", -7, 6, -42, false},
		{"BothNegative", -7, -6, 42, false},
		{"Giga", 1_000_000_000, 1_000_000_000, 1_000_000_000_000_000_000, false},
		{"Overflow", math.MaxInt64, 2, 0, true},
		{"MinTimesMinusOne", math.MinInt64, -1, 0, true},
		{"MinusOneTimesMin", -1, math.MinInt64, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MulInt64(tt.a, tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNegInt64(t *testing.T) {
	got, err := NegInt64(5)
	assert.NoError(t, err)
	assert.Equal(t, int64(-5), got)

	_, err = NegInt64(math.MinInt64)
	assert.Error(t, err)
}

func TestPowInt64(t *testing.T) {
	tests := []struct {
		name string
		base int64
		exp  uint
		want int64
	}{
		{"zero exponent", 10, 0, 1},
		{"largest power of ten", 10, 18, 1_000_000_000_000_000_000},
		{"odd exponent", 3, 5, 243},
		{"negative base", -2, 63, math.MinInt64},
		{"one with huge exponent", 1, math.MaxUint, 1},
		{"minus one with even exponent", -1, math.MaxUint - 1, 1},
		{"zero base", 0, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PowInt64(tt.base, tt.exp)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("overflow", func(t *testing.T) {
		for _, exp := range []uint{19, 64, 1 << 20, math.MaxUint} {
			_, err := PowInt64(10, exp)
			assert.Error(t, err, "10^%d", exp)
		}
	})
}
