package linalg

import (
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/storage"
)

// Element is the arithmetic a matrix needs from its elements. Both
// quantity.Quantity and measurement.Measurement satisfy it. Product must be
// defined for zero operands.
type Element[E any] interface {
	Add(E) (E, error)
	Sub(E) (E, error)
	Product(E) (E, error)
}

// Scalable elements can be multiplied by a plain number.
type Scalable[E any, T quantity.Number] interface {
	Element[E]
	MulScalar(k T) E
}

// Matrix is an N×N matrix whose elements live in a storage backend.
// Results of matrix operations are allocated from the same backend; every
// matrix must be released with Release.
type Matrix[E Element[E]] struct {
	backend storage.Backend[E]
	h       *storage.Handle[E]
}

// NewMatrix copies g into b.
func NewMatrix[E Element[E]](b storage.Backend[E], g storage.Grid[E]) (*Matrix[E], error) {
	h, err := b.Create(g)
	if err != nil {
		return nil, err
	}
	return &Matrix[E]{backend: b, h: h}, nil
}

// Identity returns a matrix with one on the diagonal and zero elsewhere.
func Identity[E Element[E]](b storage.Backend[E], one, zero E) (*Matrix[E], error) {
	var g storage.Grid[E]
	for i := range storage.N {
		for j := range storage.N {
			if i == j {
				g[i][j] = one
			} else {
				g[i][j] = zero
			}
		}
	}
	return NewMatrix(b, g)
}

// At returns the element at (row, col).
func (m *Matrix[E]) At(row, col int) (E, error) {
	return m.h.Get(row, col)
}

// Set stores v at (row, col).
func (m *Matrix[E]) Set(row, col int, v E) error {
	return m.h.Set(row, col, v)
}

// Grid returns a copy of the elements.
func (m *Matrix[E]) Grid() (storage.Grid[E], error) {
	return m.h.Grid()
}

// Release returns the matrix storage to its backend.
func (m *Matrix[E]) Release() error {
	return m.backend.Destroy(m.h)
}

// Add returns m+o elementwise.
func (m *Matrix[E]) Add(o *Matrix[E]) (*Matrix[E], error) {
	return m.zip(o, func(a, b E) (E, error) { return a.Add(b) })
}

// Sub returns m-o elementwise.
func (m *Matrix[E]) Sub(o *Matrix[E]) (*Matrix[E], error) {
	return m.zip(o, func(a, b E) (E, error) { return a.Sub(b) })
}

// Mul returns the matrix product m·o.
func (m *Matrix[E]) Mul(o *Matrix[E]) (*Matrix[E], error) {
	a, err := m.h.Grid()
	if err != nil {
		return nil, err
	}
	b, err := o.h.Grid()
	if err != nil {
		return nil, err
	}

	var r storage.Grid[E]
	for i := range storage.N {
		var col [storage.N]E
		for j := range storage.N {
			for k := range storage.N {
				col[k] = b[k][j]
			}
			if r[i][j], err = rowDot(a[i], col); err != nil {
				return nil, err
			}
		}
	}
	return NewMatrix(m.backend, r)
}

// MulVec returns the matrix-vector product m·v.
func (m *Matrix[E]) MulVec(v [storage.N]E) ([storage.N]E, error) {
	var r [storage.N]E
	a, err := m.h.Grid()
	if err != nil {
		return r, err
	}
	for i := range storage.N {
		if r[i], err = rowDot(a[i], v); err != nil {
			return r, err
		}
	}
	return r, nil
}

func rowDot[E Element[E]](row, col [storage.N]E) (E, error) {
	acc, err := row[0].Product(col[0])
	if err != nil {
		return acc, err
	}
	for k := 1; k < storage.N; k++ {
		p, err := row[k].Product(col[k])
		if err != nil {
			return acc, err
		}
		if acc, err = acc.Add(p); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Transpose returns mᵀ.
func (m *Matrix[E]) Transpose() (*Matrix[E], error) {
	a, err := m.h.Grid()
	if err != nil {
		return nil, err
	}
	var r storage.Grid[E]
	for i := range storage.N {
		for j := range storage.N {
			r[j][i] = a[i][j]
		}
	}
	return NewMatrix(m.backend, r)
}

func (m *Matrix[E]) zip(o *Matrix[E], f func(a, b E) (E, error)) (*Matrix[E], error) {
	a, err := m.h.Grid()
	if err != nil {
		return nil, err
	}
	b, err := o.h.Grid()
	if err != nil {
		return nil, err
	}

	var r storage.Grid[E]
	for i := range storage.N {
		for j := range storage.N {
			if r[i][j], err = f(a[i][j], b[i][j]); err != nil {
				return nil, err
			}
		}
	}
	return NewMatrix(m.backend, r)
}

// Scale returns k·m.
func Scale[E Scalable[E, T], T quantity.Number](m *Matrix[E], k T) (*Matrix[E], error) {
	a, err := m.h.Grid()
	if err != nil {
		return nil, err
	}
	var r storage.Grid[E]
	for i := range storage.N {
		for j := range storage.N {
			r[i][j] = a[i][j].MulScalar(k)
		}
	}
	return NewMatrix(m.backend, r)
}
