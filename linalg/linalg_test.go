package linalg

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/ratio"
	"github.com/hupe1980/unitgo/storage"
)

var (
	meter     = quantity.Canonical(dimension.Of(dimension.Length))
	kilometer = quantity.NewUnit(ratio.MustNew(1000, 1), dimension.Of(dimension.Length))
	second    = quantity.Canonical(dimension.Of(dimension.Time))
)

func values(g storage.Grid[quantity.Quantity[float64]]) [storage.N][storage.N]float64 {
	var out [storage.N][storage.N]float64
	for i := range storage.N {
		for j := range storage.N {
			out[i][j] = g[i][j].Value()
		}
	}
	return out
}

func TestVec3(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0, meter)
	b := NewVec3(4.0, 5.0, 6.0, meter)

	t.Run("AddSub", func(t *testing.T) {
		s, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 7, 9}, []float64{s.X.Value(), s.Y.Value(), s.Z.Value()})

		d, err := b.Sub(a)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 3, 3}, []float64{d.X.Value(), d.Y.Value(), d.Z.Value()})

		_, err = a.Add(NewVec3(1.0, 1.0, 1.0, second))
		assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
	})

	t.Run("Dot", func(t *testing.T) {
		d, err := a.Dot(b)
		require.NoError(t, err)
		assert.Equal(t, 32.0, d.Value())
		assert.Equal(t, 2, d.Dimension().Exponent(dimension.Length))
	})

	t.Run("Cross", func(t *testing.T) {
		c, err := a.Cross(b)
		require.NoError(t, err)
		assert.Equal(t, []float64{-3, 6, -3}, []float64{c.X.Value(), c.Y.Value(), c.Z.Value()})
	})

	t.Run("Magnitude", func(t *testing.T) {
		m, err := NewVec3(3.0, 4.0, 0.0, kilometer).Magnitude()
		require.NoError(t, err)
		assert.Equal(t, 5.0, m.Value())
		assert.True(t, m.Unit().Equal(kilometer))
	})

	t.Run("Scale", func(t *testing.T) {
		s := a.Scale(2)
		assert.Equal(t, 6.0, s.Z.Value())
	})
}

func TestMeasuredVec3(t *testing.T) {
	mk := func(v, u float64) measurement.Measurement[float64] {
		return measurement.New(quantity.New(v, meter), u)
	}
	v := MeasuredVec3[float64]{X: mk(3, 0.3), Y: mk(4, 0.4), Z: mk(0, 0)}

	m, err := v.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 5.0, m.Value().Value())
	assert.InDelta(t, math.Hypot(0.18, 0.32), m.Uncertainty(), 1e-12)

	s, err := v.Add(v.Scale(2))
	require.NoError(t, err)
	assert.Equal(t, 9.0, s.X.Value().Value())
	assert.InDelta(t, math.Hypot(0.3, 0.6), s.X.Uncertainty(), 1e-12)
	assert.Equal(t, 12.0, s.Values().Y.Value())

	d, err := s.Sub(v)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d.X.Value().Value())
}

func TestMatrix(t *testing.T) {
	pool, err := storage.NewPool[quantity.Quantity[float64]](8)
	require.NoError(t, err)

	var g storage.Grid[quantity.Quantity[float64]]
	for i := range storage.N {
		for j := range storage.N {
			g[i][j] = quantity.New(float64(i*storage.N+j), meter)
		}
	}

	m, err := NewMatrix(pool, g)
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Release()) }()

	one := quantity.Scalar(1.0)
	zero := quantity.Scalar(0.0)
	id, err := Identity[quantity.Quantity[float64]](pool, one, zero)
	require.NoError(t, err)
	defer func() { require.NoError(t, id.Release()) }()

	t.Run("MulIdentity", func(t *testing.T) {
		p, err := m.Mul(id)
		require.NoError(t, err)
		defer func() { require.NoError(t, p.Release()) }()

		got, err := p.Grid()
		require.NoError(t, err)
		if diff := cmp.Diff(values(g), values(got), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("m·I mismatch (-want +got):\n%s", diff)
		}
		e, err := p.At(1, 2)
		require.NoError(t, err)
		assert.True(t, e.Unit().Equal(meter))
	})

	t.Run("Transpose", func(t *testing.T) {
		tr, err := m.Transpose()
		require.NoError(t, err)
		defer func() { require.NoError(t, tr.Release()) }()

		e, err := tr.At(0, 3)
		require.NoError(t, err)
		assert.Equal(t, 12.0, e.Value())
	})

	t.Run("AddSubScale", func(t *testing.T) {
		s, err := m.Add(m)
		require.NoError(t, err)
		defer func() { require.NoError(t, s.Release()) }()

		k, err := Scale(m, 2.0)
		require.NoError(t, err)
		defer func() { require.NoError(t, k.Release()) }()

		d, err := s.Sub(k)
		require.NoError(t, err)
		defer func() { require.NoError(t, d.Release()) }()

		got, err := d.Grid()
		require.NoError(t, err)
		assert.Equal(t, [storage.N][storage.N]float64{}, values(got))
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		var sg storage.Grid[quantity.Quantity[float64]]
		for i := range storage.N {
			for j := range storage.N {
				sg[i][j] = quantity.New(1.0, second)
			}
		}
		other, err := NewMatrix(pool, sg)
		require.NoError(t, err)
		defer func() { require.NoError(t, other.Release()) }()

		before := pool.ActiveSlotCount()
		_, err = m.Add(other)
		assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
		assert.Equal(t, before, pool.ActiveSlotCount())
	})

	t.Run("Released", func(t *testing.T) {
		tmp, err := NewMatrix(pool, g)
		require.NoError(t, err)
		require.NoError(t, tmp.Release())
		_, err = tmp.Transpose()
		assert.ErrorIs(t, err, storage.ErrReleased)
	})
}

func TestMeasuredMatrix(t *testing.T) {
	b := storage.Embedded[measurement.Measurement[float64]]{}
	one := measurement.Exact(quantity.Scalar(1.0))
	zero := measurement.Exact(quantity.Scalar(0.0))

	var g storage.Grid[measurement.Measurement[float64]]
	for i := range storage.N {
		for j := range storage.N {
			g[i][j] = measurement.New(quantity.New(2.0, meter), 0.1)
		}
	}
	m, err := NewMatrix(b, g)
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Release()) }()

	id, err := Identity(b, one, zero)
	require.NoError(t, err)
	defer func() { require.NoError(t, id.Release()) }()

	t.Run("IdentityTimesMatrix", func(t *testing.T) {
		p, err := id.Mul(m)
		require.NoError(t, err)
		defer func() { require.NoError(t, p.Release()) }()

		got, err := p.Grid()
		require.NoError(t, err)
		for i := range storage.N {
			for j := range storage.N {
				assert.Equal(t, 2.0, got[i][j].Value().Value())
				assert.InDelta(t, 0.1, got[i][j].Uncertainty(), 1e-12)
				assert.True(t, got[i][j].Unit().Equal(meter))
			}
		}
	})

	t.Run("IdentitySquared", func(t *testing.T) {
		p, err := id.Mul(id)
		require.NoError(t, err)
		defer func() { require.NoError(t, p.Release()) }()

		e, err := p.At(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 1.0, e.Value().Value())
		e, err = p.At(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, e.Value().Value())
		assert.Zero(t, e.Uncertainty())
	})

	t.Run("SparseDiagonal", func(t *testing.T) {
		d, err := Identity(b, measurement.New(quantity.Scalar(2.0), 0.1), zero)
		require.NoError(t, err)
		defer func() { require.NoError(t, d.Release()) }()

		p, err := d.Mul(d)
		require.NoError(t, err)
		defer func() { require.NoError(t, p.Release()) }()

		e, err := p.At(3, 3)
		require.NoError(t, err)
		assert.Equal(t, 4.0, e.Value().Value())
		assert.InDelta(t, math.Hypot(0.2, 0.2), e.Uncertainty(), 1e-12)
	})

	t.Run("Scale", func(t *testing.T) {
		s, err := Scale(m, 3.0)
		require.NoError(t, err)
		defer func() { require.NoError(t, s.Release()) }()

		e, err := s.At(3, 3)
		require.NoError(t, err)
		assert.Equal(t, 6.0, e.Value().Value())
		assert.InDelta(t, 0.3, e.Uncertainty(), 1e-12)
	})

	t.Run("ModelMismatch", func(t *testing.T) {
		lin := measurement.Exact(quantity.Scalar(1.0), measurement.WithModel(measurement.Linear))
		l, err := Identity(b, lin, zero)
		require.NoError(t, err)
		defer func() { require.NoError(t, l.Release()) }()

		_, err = l.Mul(m)
		assert.ErrorIs(t, err, measurement.ErrModelMismatch)
	})
}

func TestVec4(t *testing.T) {
	a := NewVec4(1.0, 2.0, 3.0, 1.0, meter)
	b := NewVec4(4.0, 5.0, 6.0, 0.0, meter)

	s, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.X.Value())
	assert.Equal(t, 1.0, s.W.Value())

	d, err := s.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, a, d)

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot.Value())
	assert.Equal(t, 2, dot.Dimension().Exponent(dimension.Length))

	assert.Equal(t, 2.0, a.Scale(2).W.Value())
	assert.Equal(t, NewVec3(1.0, 2.0, 3.0, meter), a.XYZ())

	_, err = a.Add(NewVec4(1.0, 1.0, 1.0, 1.0, second))
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestTransform(t *testing.T) {
	b := storage.Embedded[quantity.Quantity[float64]]{}
	one := quantity.Scalar(1.0)
	zero := quantity.Scalar(0.0)

	// Translation by (10, 20, 30) in homogeneous coordinates.
	tr, err := Identity[quantity.Quantity[float64]](b, one, zero)
	require.NoError(t, err)
	for i, off := range []float64{10, 20, 30} {
		require.NoError(t, tr.Set(i, 3, quantity.Scalar(off)))
	}

	got, err := Transform(tr, NewVec4(1.0, 2.0, 3.0, 1.0, meter))
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{11, 22, 33, 1}, []float64{got.X.Value(), got.Y.Value(), got.Z.Value(), got.W.Value()}); diff != "" {
		t.Errorf("translation mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.X.Unit().Equal(meter))

	require.NoError(t, tr.Release())
	_, err = Transform(tr, NewVec4(1.0, 2.0, 3.0, 1.0, meter))
	assert.ErrorIs(t, err, storage.ErrReleased)
}

func TestMeasuredVec4(t *testing.T) {
	mk := func(v, u float64) measurement.Measurement[float64] {
		return measurement.New(quantity.New(v, meter), u)
	}
	v := MeasuredVec4[float64]{X: mk(3, 0.3), Y: mk(4, 0.4), Z: mk(0, 0), W: mk(1, 0)}

	t.Run("MagnitudeIgnoresW", func(t *testing.T) {
		m, err := v.Magnitude()
		require.NoError(t, err)
		assert.Equal(t, 5.0, m.Value().Value())
		assert.InDelta(t, math.Hypot(0.18, 0.32), m.Uncertainty(), 1e-12)
	})

	t.Run("DotWithZeros", func(t *testing.T) {
		d, err := v.Dot(v)
		require.NoError(t, err)
		assert.Equal(t, 26.0, d.Value().Value())
		assert.InDelta(t, math.Hypot(math.Hypot(3*0.3, 3*0.3), math.Hypot(4*0.4, 4*0.4)), d.Uncertainty(), 1e-12)
	})

	t.Run("AddSubScale", func(t *testing.T) {
		s, err := v.Add(v.Scale(2))
		require.NoError(t, err)
		assert.Equal(t, 3.0, s.Values().W.Value())
		d, err := s.Sub(v)
		require.NoError(t, err)
		assert.Equal(t, 6.0, d.X.Value().Value())
	})

	t.Run("TransformIdentity", func(t *testing.T) {
		b := storage.Embedded[measurement.Measurement[float64]]{}
		id, err := Identity(b, measurement.Exact(quantity.Scalar(1.0)), measurement.Exact(quantity.Scalar(0.0)))
		require.NoError(t, err)
		defer func() { require.NoError(t, id.Release()) }()

		got, err := TransformMeasured(id, v)
		require.NoError(t, err)
		for i, e := range got.Elements() {
			want := v.Elements()[i]
			assert.Equal(t, want.Value().Value(), e.Value().Value())
			assert.InDelta(t, want.Uncertainty(), e.Uncertainty(), 1e-12)
		}
	})
}
