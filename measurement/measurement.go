package measurement

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/ratio"
)

// Measurement is a quantity with a nonnegative absolute uncertainty. The
// uncertainty is expressed in the value's unit.
//
// Operations never mutate their operands. The zero value is 0 ± 0 with the
// RSS model.
type Measurement[T quantity.Number] struct {
	value       quantity.Quantity[T]
	uncertainty T
	model       Model
}

// New returns value ± uncertainty. A negative uncertainty is clamped to zero.
func New[T quantity.Number](value quantity.Quantity[T], uncertainty T, opts ...Option) Measurement[T] {
	o := options{model: RSS}
	for _, opt := range opts {
		opt(&o)
	}
	if uncertainty < 0 {
		uncertainty = 0
	}
	return Measurement[T]{value: value, uncertainty: uncertainty, model: o.model}
}

// Exact returns value with zero uncertainty.
func Exact[T quantity.Number](value quantity.Quantity[T], opts ...Option) Measurement[T] {
	return New(value, 0, opts...)
}

// Value returns the central value.
func (m Measurement[T]) Value() quantity.Quantity[T] { return m.value }

// Uncertainty returns the absolute uncertainty in the value's unit.
func (m Measurement[T]) Uncertainty() T { return m.uncertainty }

// UncertaintyQuantity returns the uncertainty tagged with the value's unit.
func (m Measurement[T]) UncertaintyQuantity() quantity.Quantity[T] {
	return quantity.New(m.uncertainty, m.value.Unit())
}

// Unit returns the unit shared by value and uncertainty.
func (m Measurement[T]) Unit() quantity.Unit { return m.value.Unit() }

// Model returns the propagation model.
func (m Measurement[T]) Model() Model { return m.model }

// RelativeUncertainty returns uncertainty/|value|.
func (m Measurement[T]) RelativeUncertainty() (T, error) {
	if m.value.Value() == 0 {
		return 0, errors.Wrapf(ErrUndefinedPropagation, "relative uncertainty of %v", m)
	}
	return T(m.relative()), nil
}

// Interval returns value-uncertainty and value+uncertainty.
func (m Measurement[T]) Interval() (lo, hi quantity.Quantity[T]) {
	u := m.value.Unit()
	return quantity.New(m.value.Value()-m.uncertainty, u), quantity.New(m.value.Value()+m.uncertainty, u)
}

// Equal reports whether m and o are identical.
func (m Measurement[T]) Equal(o Measurement[T]) bool {
	return m.value.Equal(o.value) && m.uncertainty == o.uncertainty && m.model == o.model
}

func (m Measurement[T]) String() string {
	u := m.value.Unit()
	if u.IsScalar() && u.Scale().IsOne() {
		return fmt.Sprintf("%g ± %g", m.value.Value(), m.uncertainty)
	}
	return fmt.Sprintf("%g ± %g %s", m.value.Value(), m.uncertainty, u)
}

// Add returns m+o in m's unit.
func (m Measurement[T]) Add(o Measurement[T]) (Measurement[T], error) {
	if err := m.sameModel("add", o); err != nil {
		return m, err
	}
	v, err := m.value.Add(o.value)
	if err != nil {
		return m, err
	}
	return m.with(v, m.model.combine(float64(m.uncertainty), o.uncertaintyIn(m.value.Unit()))), nil
}

// Sub returns m-o in m's unit. Uncertainties combine exactly as for Add.
func (m Measurement[T]) Sub(o Measurement[T]) (Measurement[T], error) {
	if err := m.sameModel("subtract", o); err != nil {
		return m, err
	}
	v, err := m.value.Sub(o.value)
	if err != nil {
		return m, err
	}
	return m.with(v, m.model.combine(float64(m.uncertainty), o.uncertaintyIn(m.value.Unit()))), nil
}

// Mul returns m*o, combining relative uncertainties. It fails with
// ErrUndefinedPropagation when either value is zero.
func (m Measurement[T]) Mul(o Measurement[T]) (Measurement[T], error) {
	if err := m.sameModel("multiply", o); err != nil {
		return m, err
	}
	if m.value.Value() == 0 || o.value.Value() == 0 {
		return m, errors.Wrapf(ErrUndefinedPropagation, "%v * %v", m, o)
	}
	v, err := m.value.Mul(o.value)
	if err != nil {
		return m, err
	}
	rel := m.model.combine(m.relative(), o.relative())
	return m.with(v, math.Abs(float64(v.Value()))*rel), nil
}

// Product returns m*o with uncertainty combined in absolute form:
// sqrt((|b|·ua)² + (|a|·ub)²) under RSS, |b|·ua + |a|·ub under Linear.
// The result equals Mul for nonzero operands and stays defined when either
// value is zero, so it can accumulate sums of products such as matrix
// entries.
func (m Measurement[T]) Product(o Measurement[T]) (Measurement[T], error) {
	if err := m.sameModel("multiply", o); err != nil {
		return m, err
	}
	v, err := m.value.Mul(o.value)
	if err != nil {
		return m, err
	}
	a := math.Abs(float64(m.value.Value()))
	b := math.Abs(float64(o.value.Value()))
	return m.with(v, m.model.combine(b*float64(m.uncertainty), a*float64(o.uncertainty))), nil
}

// Div returns m/o, combining relative uncertainties. A zero divisor fails
// with quantity.ErrDivisionByZero; a zero dividend with ErrUndefinedPropagation.
func (m Measurement[T]) Div(o Measurement[T]) (Measurement[T], error) {
	if err := m.sameModel("divide", o); err != nil {
		return m, err
	}
	if o.value.Value() == 0 {
		return m, errors.Wrapf(quantity.ErrDivisionByZero, "%v / %v", m, o)
	}
	if m.value.Value() == 0 {
		return m, errors.Wrapf(ErrUndefinedPropagation, "%v / %v", m, o)
	}
	v, err := m.value.Div(o.value)
	if err != nil {
		return m, err
	}
	rel := m.model.combine(m.relative(), o.relative())
	return m.with(v, math.Abs(float64(v.Value()))*rel), nil
}

// MulScalar scales the value by k and the uncertainty by |k|.
func (m Measurement[T]) MulScalar(k T) Measurement[T] {
	return Measurement[T]{
		value:       m.value.MulScalar(k),
		uncertainty: m.uncertainty * abs(k),
		model:       m.model,
	}
}

// DivScalar divides the value by k and the uncertainty by |k|.
func (m Measurement[T]) DivScalar(k T) (Measurement[T], error) {
	v, err := m.value.DivScalar(k)
	if err != nil {
		return m, err
	}
	return Measurement[T]{value: v, uncertainty: m.uncertainty / abs(k), model: m.model}, nil
}

// Neg returns -m with the same uncertainty.
func (m Measurement[T]) Neg() Measurement[T] {
	return Measurement[T]{value: m.value.Neg(), uncertainty: m.uncertainty, model: m.model}
}

// Square returns m², with uncertainty 2·|v|·u. The operand is fully
// correlated with itself, so this differs from m.Mul(m).
func (m Measurement[T]) Square() (Measurement[T], error) {
	return m.Pow(2)
}

// Cube returns m³, with uncertainty 3·v²·u.
func (m Measurement[T]) Cube() (Measurement[T], error) {
	return m.Pow(3)
}

// Pow returns mⁿ, with uncertainty |n|·|v|ⁿ⁻¹·u.
func (m Measurement[T]) Pow(n int) (Measurement[T], error) {
	v, err := m.value.Pow(n)
	if err != nil {
		return m, err
	}
	if n == 0 {
		return m.with(v, 0), nil
	}
	x := math.Abs(float64(m.value.Value()))
	u := math.Abs(float64(n)) * math.Pow(x, float64(n-1)) * float64(m.uncertainty)
	return m.with(v, u), nil
}

// Sqrt returns √m, with uncertainty u/(2√v). A zero value with nonzero
// uncertainty fails with ErrUndefinedPropagation.
func (m Measurement[T]) Sqrt() (Measurement[T], error) {
	v, err := m.value.Sqrt()
	if err != nil {
		return m, err
	}
	if m.uncertainty == 0 {
		return m.with(v, 0), nil
	}
	if v.Value() == 0 {
		return m, errors.Wrapf(ErrUndefinedPropagation, "sqrt of %v", m)
	}
	// Sqrt moves to the canonical unit unless the scale is a perfect square.
	f := 1.0
	if _, ok := m.value.Scale().Sqrt(); !ok {
		f = quantity.Factor[float64](m.value.Scale(), ratio.One)
	}
	return m.with(v, float64(m.uncertainty)*f/(2*float64(v.Value()))), nil
}

// Sin returns sin(m) for an angle or dimensionless measurement, with
// uncertainty |cos v|·u.
func (m Measurement[T]) Sin() (Measurement[T], error) {
	return m.trig("sin", math.Sin, math.Cos)
}

// Cos returns cos(m) for an angle or dimensionless measurement, with
// uncertainty |sin v|·u.
func (m Measurement[T]) Cos() (Measurement[T], error) {
	return m.trig("cos", math.Cos, math.Sin)
}

func (m Measurement[T]) trig(op string, f, df func(float64) float64) (Measurement[T], error) {
	d := m.value.Dimension()
	if !d.IsScalar() && d != dimension.Of(dimension.Angle) {
		return m, errors.Wrapf(quantity.ErrDimensionMismatch, "%s of %s", op, d)
	}
	rad, err := m.Cast(quantity.Canonical(d))
	if err != nil {
		return m, err
	}
	x := float64(rad.value.Value())
	return Measurement[T]{
		value:       quantity.Scalar(T(f(x))),
		uncertainty: T(math.Abs(df(x)) * float64(rad.uncertainty)),
		model:       m.model,
	}, nil
}

// Cast expresses m in target, scaling value and uncertainty by the same
// factor. Affine units are rejected as in quantity.Cast.
func (m Measurement[T]) Cast(target quantity.Unit) (Measurement[T], error) {
	v, err := quantity.Cast(m.value, target)
	if err != nil {
		return m, err
	}
	return m.with(v, m.uncertaintyIn(target)), nil
}

// AffineCast expresses m in target through quantity.AffineCast. The offset
// moves the value only; the uncertainty scales by the ratio of scales.
func (m Measurement[T]) AffineCast(target quantity.Unit) (Measurement[T], error) {
	v, err := quantity.AffineCast(m.value, target)
	if err != nil {
		return m, err
	}
	return m.with(v, m.uncertaintyIn(target)), nil
}

// Magnitude returns the Euclidean norm of the components. Each component
// uncertainty is weighted by its partial derivative v_i/|v| before combining
// under the shared model. Components are expressed in the first one's unit.
func Magnitude[T quantity.Number](components ...Measurement[T]) (Measurement[T], error) {
	if len(components) == 0 {
		return Measurement[T]{}, errors.Wrap(ErrUndefinedPropagation, "magnitude of no components")
	}
	first := components[0]
	unit := first.value.Unit()

	vals := make([]float64, len(components))
	uncs := make([]float64, len(components))
	var sumSq float64
	for i, c := range components {
		if err := first.sameModel("magnitude", c); err != nil {
			return first, err
		}
		cc, err := c.Cast(unit)
		if err != nil {
			return first, err
		}
		vals[i] = float64(cc.value.Value())
		uncs[i] = float64(cc.uncertainty)
		sumSq += vals[i] * vals[i]
	}

	norm := math.Sqrt(sumSq)
	if norm == 0 {
		return first, errors.Wrap(ErrUndefinedPropagation, "magnitude of zero vector")
	}

	var u float64
	for i := range vals {
		u = first.model.combine(u, math.Abs(vals[i]/norm*uncs[i]))
	}
	return Measurement[T]{value: quantity.New(T(norm), unit), uncertainty: T(u), model: first.model}, nil
}

func (m Measurement[T]) with(v quantity.Quantity[T], u float64) Measurement[T] {
	return Measurement[T]{value: v, uncertainty: T(u), model: m.model}
}

func (m Measurement[T]) relative() float64 {
	return float64(m.uncertainty) / math.Abs(float64(m.value.Value()))
}

// uncertaintyIn returns m's uncertainty rescaled to the scale of target.
func (m Measurement[T]) uncertaintyIn(target quantity.Unit) float64 {
	from := m.value.Scale()
	if from.Equal(target.Scale()) {
		return float64(m.uncertainty)
	}
	return float64(m.uncertainty) * quantity.Factor[float64](from, target.Scale())
}

func (m Measurement[T]) sameModel(op string, o Measurement[T]) error {
	if m.model != o.model {
		return errors.Wrapf(ErrModelMismatch, "%s: %s vs %s", op, m.model, o.model)
	}
	return nil
}

func abs[T quantity.Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
