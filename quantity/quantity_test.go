package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/ratio"
)

func TestAddSub(t *testing.T) {
	t.Run("SameUnit", func(t *testing.T) {
		sum, err := New(2.0, meter).Add(New(3.0, meter))
		require.NoError(t, err)
		assert.Equal(t, 5.0, sum.Value())
		assert.True(t, sum.Unit().Equal(meter))
	})

	t.Run("RescalesRight", func(t *testing.T) {
		sum, err := New(1.0, kilometer).Add(New(500.0, meter))
		require.NoError(t, err)
		assert.InDelta(t, 1.5, sum.Value(), 1e-12)
		assert.True(t, sum.Unit().Equal(kilometer))

		diff, err := New(1.0, meter).Sub(New(1.0, kilometer))
		require.NoError(t, err)
		assert.Equal(t, -999.0, diff.Value())
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := New(1.0, meter).Add(New(1.0, second))
		require.ErrorIs(t, err, ErrDimensionMismatch)

		var dm *DimensionMismatchError
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, "add", dm.Op)
		assert.Equal(t, length, dm.Left)
		assert.Equal(t, duration, dm.Right)
	})

	t.Run("Affine", func(t *testing.T) {
		sum, err := New(10.0, celsius).Add(New(5.0, celsius))
		require.NoError(t, err)
		assert.Equal(t, 15.0, sum.Value())

		_, err = New(10.0, celsius).Add(New(5.0, Canonical(kelvin)))
		assert.ErrorIs(t, err, ErrAffineConversionRejected)
	})
}

func TestMulDiv(t *testing.T) {
	t.Run("Speed", func(t *testing.T) {
		v, err := New(10.0, meter).Div(New(2.0, second))
		require.NoError(t, err)
		assert.Equal(t, 5.0, v.Value())
		assert.Equal(t, length.Div(duration), v.Dimension())
		assert.True(t, v.Scale().IsOne())
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		_, err := New(1.0, meter).Div(New(0.0, second))
		assert.ErrorIs(t, err, ErrDivisionByZero)

		_, err = New(1.0, meter).DivScalar(0)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("ScalesCombine", func(t *testing.T) {
		area, err := New(2.0, kilometer).Mul(New(3.0, meter))
		require.NoError(t, err)
		assert.Equal(t, 6.0, area.Value())
		assert.Equal(t, int64(1000), area.Scale().Num())
		assert.Equal(t, 2, area.Dimension().Exponent(dimension.Length))
	})

	t.Run("DimensionlessResult", func(t *testing.T) {
		r, err := New(6.0, meter).Div(New(3.0, meter))
		require.NoError(t, err)
		s, err := r.AsScalar()
		require.NoError(t, err)
		assert.Equal(t, 2.0, s)
	})

	t.Run("Scalars", func(t *testing.T) {
		q := New(4.0, meter).MulScalar(2.5)
		assert.Equal(t, 10.0, q.Value())

		q, err := q.DivScalar(4)
		require.NoError(t, err)
		assert.Equal(t, 2.5, q.Value())
	})
}

func TestNegAbs(t *testing.T) {
	q := New(3.0, meter)
	assert.Equal(t, -3.0, q.Neg().Value())
	assert.Equal(t, 3.0, q.Neg().Abs().Value())
	assert.True(t, q.Abs().Equal(q))
}

func TestAsScalar(t *testing.T) {
	percent := NewUnit(ratio.MustNew(1, 100), dimension.Scalar)
	v, err := New(50.0, percent).AsScalar()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-15)

	_, err = New(1.0, meter).AsScalar()
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPow(t *testing.T) {
	sq, err := New(3.0, meter).Pow(2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, sq.Value())
	assert.Equal(t, 2, sq.Dimension().Exponent(dimension.Length))

	inv, err := New(4.0, second).Pow(-1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, inv.Value())
	assert.Equal(t, -1, inv.Dimension().Exponent(dimension.Time))

	_, err = New(0.0, second).Pow(-1)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	t.Run("Exponent overflow", func(t *testing.T) {
		for _, n := range []int{1 << 15, 1 << 16, math.MaxInt} {
			_, err := New(1.0, meter).Pow(n)
			assert.ErrorIs(t, err, dimension.ErrExponentOverflow, "n=%d", n)
		}
	})

	t.Run("Scalar with huge exponent", func(t *testing.T) {
		q, err := Scalar(1.0).Pow(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, 1.0, q.Value())
		assert.True(t, q.Unit().IsScalar())
	})
}

func TestSqrt(t *testing.T) {
	m2, err := meter.Pow(2)
	require.NoError(t, err)
	km2, err := kilometer.Pow(2)
	require.NoError(t, err)

	t.Run("Canonical", func(t *testing.T) {
		r, err := New(16.0, m2).Sqrt()
		require.NoError(t, err)
		assert.Equal(t, 4.0, r.Value())
		assert.True(t, r.Unit().Equal(meter))
	})

	t.Run("PerfectSquareScale", func(t *testing.T) {
		r, err := New(9.0, km2).Sqrt()
		require.NoError(t, err)
		assert.Equal(t, 3.0, r.Value())
		assert.True(t, r.Unit().Equal(kilometer))
	})

	t.Run("OtherScale", func(t *testing.T) {
		u := NewUnit(ratio.MustNew(2, 1), m2.Dimension())
		r, err := New(8.0, u).Sqrt()
		require.NoError(t, err)
		assert.Equal(t, 4.0, r.Value())
		assert.True(t, r.Unit().Equal(meter))
	})

	t.Run("OddExponent", func(t *testing.T) {
		_, err := New(4.0, meter).Sqrt()
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := New(-4.0, m2).Sqrt()
		assert.ErrorIs(t, err, ErrDomain)
	})
}

func TestCompare(t *testing.T) {
	c, err := Compare(New(1.0, meter), New(2.0, meter))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(New(2.0, meter), New(2.0, meter))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = Compare(New(1.0, kilometer), New(2.0, meter))
	assert.ErrorIs(t, err, ErrScaleMismatch)

	_, err = Compare(New(1.0, meter), New(2.0, second))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestQuantityZeroValue(t *testing.T) {
	var q Quantity[float64]
	assert.Equal(t, 0.0, q.Value())
	assert.True(t, q.Unit().Equal(Dimensionless))
	assert.Equal(t, "0", q.String())
	assert.True(t, q.Equal(Scalar(0.0)))
}

func TestQuantityString(t *testing.T) {
	v, err := New(10.0, meter).Div(New(2.0, second))
	require.NoError(t, err)
	assert.Equal(t, "5 m/s", v.String())
	assert.Equal(t, "1 [1000] m", New(1.0, kilometer).String())
}

func TestFloat32(t *testing.T) {
	q, err := Cast(New(float32(2), kilometer), meter)
	require.NoError(t, err)
	assert.Equal(t, float32(2000), q.Value())
}
