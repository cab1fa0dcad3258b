// pkg/geometry/position.go
package geometry

// Position is a point in space. It shares its arithmetic with Vector but is
// a distinct type so positions and free vectors cannot be confused. String
// form uses parentheses: (x, y).
type Position struct {
	base
}

// NewPosition creates a position from the given components. With no
// arguments it creates a 2D position at the origin; otherwise the dimension
// is the number of arguments.
func NewPosition(components ...float64) *Position {
	return &Position{newBase(components, "(", ")")}
}

// ZeroPosition creates a position at the origin with the given dimension.
func ZeroPosition(dim int) *Position {
	return &Position{zeroBase(dim, "(", ")")}
}

// Copy returns an independent deep copy.
func (p *Position) Copy() *Position {
	return &Position{p.copyBase()}
}

// Fill sets every component to value.
func (p *Position) Fill(value float64) *Position {
	p.fill(value)
	return p
}

// Set overwrites the leading components with the given values; a shorter
// input updates only a prefix.
func (p *Position) Set(components ...float64) *Position {
	p.set(components)
	return p
}

// Add displaces this position by the other operand.
func (p *Position) Add(other Components) *Position {
	p.addScaled(1, other)
	return p
}

// AddScaled displaces this position by scale*other.
func (p *Position) AddScaled(scale float64, other Components) *Position {
	p.addScaled(scale, other)
	return p
}

// Sub displaces this position by the negation of the other operand.
func (p *Position) Sub(other Components) *Position {
	p.addScaled(-1, other)
	return p
}

// SubScaled displaces this position by -scale*other.
func (p *Position) SubScaled(scale float64, other Components) *Position {
	p.addScaled(-scale, other)
	return p
}

// Scale multiplies components by the given factors. A single factor scales
// every component; otherwise one factor per component is required.
func (p *Position) Scale(factors ...float64) *Position {
	p.scaleFactors(factors)
	return p
}

// ScaleBy multiplies this position component-wise by the other operand.
func (p *Position) ScaleBy(other Components) *Position {
	p.scaleBy(other)
	return p
}

// Normalize scales this position to unit distance from the origin; the
// origin itself is left unchanged.
func (p *Position) Normalize() *Position {
	p.normalize()
	return p
}

// Rotate2D rotates this position counter-clockwise about the origin by the
// given angle in degrees.
func (p *Position) Rotate2D(angleDegrees float64) *Position {
	p.rotate2D(angleDegrees)
	return p
}

// Rotate90 rotates this position 90 degrees counter-clockwise about the
// origin.
func (p *Position) Rotate90() *Position {
	p.rotate90()
	return p
}

// Lerp interpolates this position toward other: this = (1-t)*this + t*other.
func (p *Position) Lerp(t float64, other Components) *Position {
	p.lerp(t, other)
	return p
}

// To returns the displacement from this position to the other as a fresh
// Vector. Neither operand is modified.
func (p *Position) To(other *Position) *Vector {
	p.checkDimension(other)
	v := ZeroVector(p.ComponentCount())
	for i := range v.values {
		v.values[i] = other.Component(i) - p.values[i]
	}
	return v
}
