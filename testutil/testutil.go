package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/ratio"
	"github.com/hupe1980/unitgo/storage"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Scale returns a power of ten between 10^-9 and 10^9, or with equal
// probability a small ratio such as 5/18.
func (r *RNG) Scale() ratio.Ratio {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scaleLocked()
}

func (r *RNG) scaleLocked() ratio.Ratio {
	if r.rand.Intn(2) == 0 {
		p := ratio.MustNew(pow10(r.rand.Intn(10)), 1)
		if r.rand.Intn(2) == 0 {
			return p.Inv()
		}
		return p
	}
	return ratio.MustNew(int64(1+r.rand.Intn(5000)), int64(1+r.rand.Intn(5000)))
}

func pow10(n int) int64 {
	v := int64(1)
	for range n {
		v *= 10
	}
	return v
}

// Dimension returns a dimension with exponents in [-3, 3] on up to three
// base dimensions.
func (r *RNG) Dimension() dimension.Dimension {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := dimension.Scalar
	for range 1 + r.rand.Intn(3) {
		b := dimension.Base(r.rand.Intn(int(dimension.Count)))
		e, err := dimension.New(map[dimension.Base]int{b: r.rand.Intn(7) - 3})
		if err != nil {
			panic(err)
		}
		d = d.Mul(e)
	}
	return d
}

// Unit returns a linear unit of dim with a random scale.
func (r *RNG) Unit(dim dimension.Dimension) quantity.Unit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return quantity.NewUnit(r.scaleLocked(), dim)
}

// Value returns a value in [-1000, 1000) that is never exactly zero.
func (r *RNG) Value() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valueLocked()
}

func (r *RNG) valueLocked() float64 {
	for {
		if v := r.rand.Float64()*2000 - 1000; v != 0 {
			return v
		}
	}
}

// Quantity returns a random nonzero quantity in u.
func (r *RNG) Quantity(u quantity.Unit) quantity.Quantity[float64] {
	return quantity.New(r.Value(), u)
}

// Measurement returns a random nonzero measurement in u with an uncertainty
// of up to 10% of the value, never zero.
func (r *RNG) Measurement(u quantity.Unit, opts ...measurement.Option) measurement.Measurement[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.valueLocked()
	rel := 0.001 + r.rand.Float64()*0.099
	if v < 0 {
		return measurement.New(quantity.New(v, u), -v*rel, opts...)
	}
	return measurement.New(quantity.New(v, u), v*rel, opts...)
}

// Grid returns a grid of random quantities in u.
func (r *RNG) Grid(u quantity.Unit) storage.Grid[quantity.Quantity[float64]] {
	r.mu.Lock()
	defer r.mu.Unlock()

	var g storage.Grid[quantity.Quantity[float64]]
	for i := range storage.N {
		for j := range storage.N {
			g[i][j] = quantity.New(r.valueLocked(), u)
		}
	}
	return g
}

// PoolOps returns n create (true) or destroy (false) steps. The sequence
// never destroys more handles than it created.
func (r *RNG) PoolOps(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]bool, n)
	live := 0
	for i := range ops {
		if live > 0 && r.rand.Intn(2) == 0 {
			live--
			continue
		}
		ops[i] = true
		live++
	}
	return ops
}
