// pkg/geometry/vector.go
package geometry

// Vector is a free vector: a direction and magnitude with no fixed location.
// It shares its arithmetic with Position but is a distinct type. String form
// uses angle brackets: <x, y>.
type Vector struct {
	base
}

// NewVector creates a vector from the given components. With no arguments it
// creates a 2D zero vector; otherwise the dimension is the number of
// arguments.
func NewVector(components ...float64) *Vector {
	return &Vector{newBase(components, "<", ">")}
}

// ZeroVector creates a zero vector of the given dimension.
func ZeroVector(dim int) *Vector {
	return &Vector{zeroBase(dim, "<", ">")}
}

// Copy returns an independent deep copy.
func (v *Vector) Copy() *Vector {
	return &Vector{v.copyBase()}
}

// Fill sets every component to value.
func (v *Vector) Fill(value float64) *Vector {
	v.fill(value)
	return v
}

// Set overwrites the leading components with the given values; a shorter
// input updates only a prefix.
func (v *Vector) Set(components ...float64) *Vector {
	v.set(components)
	return v
}

// Add adds the other operand to this vector.
func (v *Vector) Add(other Components) *Vector {
	v.addScaled(1, other)
	return v
}

// AddScaled adds scale*other to this vector.
func (v *Vector) AddScaled(scale float64, other Components) *Vector {
	v.addScaled(scale, other)
	return v
}

// Sub subtracts the other operand from this vector.
func (v *Vector) Sub(other Components) *Vector {
	v.addScaled(-1, other)
	return v
}

// SubScaled subtracts scale*other from this vector.
func (v *Vector) SubScaled(scale float64, other Components) *Vector {
	v.addScaled(-scale, other)
	return v
}

// Scale multiplies components by the given factors. A single factor scales
// every component; otherwise one factor per component is required.
func (v *Vector) Scale(factors ...float64) *Vector {
	v.scaleFactors(factors)
	return v
}

// ScaleBy multiplies this vector component-wise by the other operand.
func (v *Vector) ScaleBy(other Components) *Vector {
	v.scaleBy(other)
	return v
}

// Normalize makes this vector unit length. The zero vector cannot be
// normalized and is left unchanged; that is a defined no-op, not an error,
// so chained expressions stay safe.
func (v *Vector) Normalize() *Vector {
	v.normalize()
	return v
}

// Rotate2D rotates this vector counter-clockwise by the given angle in
// degrees. The zero vector is left unchanged.
func (v *Vector) Rotate2D(angleDegrees float64) *Vector {
	v.rotate2D(angleDegrees)
	return v
}

// Rotate90 rotates this vector 90 degrees counter-clockwise.
func (v *Vector) Rotate90() *Vector {
	v.rotate90()
	return v
}

// Lerp interpolates this vector toward other: this = (1-t)*this + t*other.
func (v *Vector) Lerp(t float64, other Components) *Vector {
	v.lerp(t, other)
	return v
}
