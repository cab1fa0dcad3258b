// pkg/geometry/base.go

// Package geometry provides the point and vector algebra underneath the
// animation engine. One unexported core holds the arithmetic; the exported
// Position and Vector types are thin labels over it so that points and free
// vectors stay distinct concepts without duplicating the math.
//
// All mutating methods work in place and return the receiver, so expressions
// can be chained:
//
//	p := geometry.NewPosition(3, 5).Add(geometry.NewVector(5, 7)).Scale(2)
//
// Copy is the only way to branch a value's mutation history. Binary
// operations between operands of different dimensions panic with
// DimensionError before touching the receiver.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Components is the read-only operand view shared by Position and Vector.
// Binary operations accept any Components so the two labels can be mixed as
// operands while each method's return type stays concrete.
type Components interface {
	ComponentCount() int
	Component(i int) float64
}

// base is the shared algebra core. It is embedded by Position and Vector,
// which promote its accessors and wrap its mutators with concrete return
// types.
type base struct {
	values []float64

	// Used by String.
	stringOpen  string
	stringClose string
	stringDelim string
}

func newBase(components []float64, open, close string) base {
	values := make([]float64, 2)
	if len(components) > 0 {
		values = append([]float64(nil), components...)
	}
	return base{
		values:      values,
		stringOpen:  open,
		stringClose: close,
		stringDelim: ", ",
	}
}

func zeroBase(dim int, open, close string) base {
	return base{
		values:      make([]float64, dim),
		stringOpen:  open,
		stringClose: close,
		stringDelim: ", ",
	}
}

func (b *base) copyBase() base {
	c := *b
	c.values = append([]float64(nil), b.values...)
	return c
}

// ComponentCount returns the dimension of this value. A 2D value always
// reports 2.
func (b *base) ComponentCount() int {
	return len(b.values)
}

// Component returns the value of the ith component ('x' is 0, 'y' is 1).
// It panics with ComponentError when i is outside [0, count).
func (b *base) Component(i int) float64 {
	if i < 0 || i >= len(b.values) {
		panic(ComponentError{Index: i, Count: len(b.values)})
	}
	return b.values[i]
}

// SetComponent sets the value of the ith component. It panics with
// ComponentError when i is outside [0, count).
func (b *base) SetComponent(i int, value float64) {
	if i < 0 || i >= len(b.values) {
		panic(ComponentError{Index: i, Count: len(b.values)})
	}
	b.values[i] = value
}

// X returns the x component. Equivalent to Component(0).
func (b *base) X() float64 { return b.Component(0) }

// Y returns the y component. Equivalent to Component(1).
func (b *base) Y() float64 { return b.Component(1) }

// SetX sets the x component. Equivalent to SetComponent(0, v).
func (b *base) SetX(v float64) { b.SetComponent(0, v) }

// SetY sets the y component. Equivalent to SetComponent(1, v).
func (b *base) SetY(v float64) { b.SetComponent(1, v) }

// Dot returns the dot product with the other operand. It panics with
// DimensionError when the dimensions differ.
func (b *base) Dot(other Components) float64 {
	b.checkDimension(other)
	total := 0.0
	for i, v := range b.values {
		total += v * other.Component(i)
	}
	return total
}

// Magnitude returns the length of this value.
func (b *base) Magnitude() float64 {
	return math.Sqrt(b.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length, avoiding the square root when
// only comparisons are needed.
func (b *base) MagnitudeSquared() float64 {
	total := 0.0
	for _, v := range b.values {
		total += v * v
	}
	return total
}

// String renders the components between the label's brackets, rounded to
// 1e-6 precision. Values within 1e-6 of zero render as "0.0" to keep
// floating-point noise out of logs and test output.
func (b *base) String() string {
	var sb strings.Builder
	sb.WriteString(b.stringOpen)
	for i, v := range b.values {
		if i > 0 {
			sb.WriteString(b.stringDelim)
		}
		if math.Abs(v) < 1e-6 {
			sb.WriteString("0.0")
		} else {
			sb.WriteString(strconv.FormatFloat(math.Round(v*1e6)/1e6, 'g', -1, 64))
		}
	}
	sb.WriteString(b.stringClose)
	return sb.String()
}

// checkDimension panics with DimensionError when the operand's dimension
// differs from the receiver's. Every binary operation calls this before
// mutating anything.
func (b *base) checkDimension(other Components) {
	if got := other.ComponentCount(); got != len(b.values) {
		panic(DimensionError{Want: len(b.values), Got: got})
	}
}

func (b *base) fill(value float64) {
	for i := range b.values {
		b.values[i] = value
	}
}

// set overwrites the leading components. A shorter input updates only a
// prefix and leaves the remaining components untouched.
func (b *base) set(components []float64) {
	for i := 0; i < len(components) && i < len(b.values); i++ {
		b.values[i] = components[i]
	}
}

// addScaled computes this = this + scale*other in place.
func (b *base) addScaled(scale float64, other Components) {
	b.checkDimension(other)
	for i := range b.values {
		b.values[i] += scale * other.Component(i)
	}
}

// scaleFactors broadcasts a single factor to all components; otherwise the
// factor count must match the dimension.
func (b *base) scaleFactors(factors []float64) {
	if len(factors) == 1 {
		for i := range b.values {
			b.values[i] *= factors[0]
		}
		return
	}
	if len(factors) != len(b.values) {
		panic(DimensionError{Want: len(b.values), Got: len(factors)})
	}
	for i := range b.values {
		b.values[i] *= factors[i]
	}
}

func (b *base) scaleBy(other Components) {
	b.checkDimension(other)
	for i := range b.values {
		b.values[i] *= other.Component(i)
	}
}

// normalize makes this value unit length. The zero value cannot be
// normalized and is left unchanged.
func (b *base) normalize() {
	m2 := b.MagnitudeSquared()
	if m2 == 0 {
		return
	}
	b.scaleFactors([]float64{1.0 / math.Sqrt(m2)})
}

// rotate2D rotates the (x, y) pair counter-clockwise about the origin by the
// given angle in degrees, via polar form. The zero value has no defined
// angle and is left unchanged.
func (b *base) rotate2D(angleDegrees float64) {
	if b.MagnitudeSquared() == 0 {
		return
	}
	theta := math.Atan2(b.Y(), b.X()) + angleDegrees*math.Pi/180
	m := b.Magnitude()
	b.set([]float64{m * math.Cos(theta), m * math.Sin(theta)})
}

// rotate90 is the closed-form quarter rotation (x, y) -> (-y, x).
func (b *base) rotate90() {
	b.set([]float64{-b.Y(), b.X()})
}

// lerp computes this = (1-t)*this + t*other in place. t is not range
// checked; values outside [0, 1] extrapolate.
func (b *base) lerp(t float64, other Components) {
	b.checkDimension(other)
	for i := range b.values {
		b.values[i] = (1.0-t)*b.values[i] + t*other.Component(i)
	}
}
