package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/ratio"
)

var (
	length   = dimension.Of(dimension.Length)
	duration = dimension.Of(dimension.Time)
	kelvin   = dimension.Of(dimension.Temperature)

	meter      = Canonical(length)
	kilometer  = NewUnit(ratio.MustNew(1000, 1), length)
	second     = Canonical(duration)
	hour       = NewUnit(ratio.MustNew(3600, 1), duration)
	celsius    = NewAffineUnit(ratio.One, kelvin, 273.15)
	fahrenheit = NewAffineUnit(ratio.MustNew(5, 9), kelvin, 273.15-32.0*5/9)
)

func TestUnitZeroValue(t *testing.T) {
	var u Unit
	assert.True(t, u.Equal(Dimensionless))
	assert.True(t, u.IsScalar())
	assert.True(t, u.Scale().IsOne())
	assert.Equal(t, "1", u.String())
}

func TestUnitMulDiv(t *testing.T) {
	kmh, err := kilometer.Div(hour)
	require.NoError(t, err)
	assert.Equal(t, "5/18", kmh.Scale().String())
	assert.Equal(t, length.Div(duration), kmh.Dimension())

	back, err := kmh.Mul(hour)
	require.NoError(t, err)
	assert.True(t, back.Equal(kilometer))
}

func TestUnitPow(t *testing.T) {
	km2, err := kilometer.Pow(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), km2.Scale().Num())
	assert.Equal(t, 2, km2.Dimension().Exponent(dimension.Length))

	inv, err := kilometer.Inverse()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), inv.Scale().Den())
	assert.Equal(t, -1, inv.Dimension().Exponent(dimension.Length))

	tests := []struct {
		name string
		unit Unit
		n    int
		want error
	}{
		{"Exponent wraps to zero", meter, 1 << 16, dimension.ErrExponentOverflow},
		{"Exponent wraps negative", meter, 1 << 15, dimension.ErrExponentOverflow},
		{"Negative exponent", meter, -(1 << 15) - 1, dimension.ErrExponentOverflow},
		{"Scale overflow", kilometer, 7, ratio.ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.unit.Pow(tt.n)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnitAffineRejected(t *testing.T) {
	_, err := celsius.Mul(meter)
	assert.ErrorIs(t, err, ErrAffineConversionRejected)

	_, err = meter.Div(celsius)
	assert.ErrorIs(t, err, ErrAffineConversionRejected)

	_, err = celsius.Pow(2)
	assert.ErrorIs(t, err, ErrAffineConversionRejected)
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "m", meter.String())
	assert.Equal(t, "[1000] m", kilometer.String())
	assert.Equal(t, "K +273.15", celsius.String())
}

func TestUnitConvertible(t *testing.T) {
	assert.True(t, meter.Convertible(kilometer))
	assert.False(t, meter.Convertible(second))
	assert.False(t, meter.Equal(kilometer))
}
