// pkg/geometry/orientation.go
package geometry

import (
	"fmt"
	"math"
)

// Orientation is a snapshot transform at one instant: a translation, a
// counter-clockwise rotation in degrees, and a non-uniform scale. Sampling
// an animation produces a fresh Orientation per call; callers treat the
// result as an immutable snapshot.
type Orientation struct {
	Translation *Position
	Rotation    float64
	Scale       *Vector
}

// NewOrientation creates an orientation from its parts. The parts are owned
// by the orientation afterwards; pass copies to keep independent values. A
// nil translation defaults to the 2D origin and a nil scale to the unit
// scale of the translation's dimension.
func NewOrientation(translation *Position, rotationDegrees float64, scale *Vector) *Orientation {
	if translation == nil {
		translation = ZeroPosition(2)
	}
	if scale == nil {
		scale = ZeroVector(translation.ComponentCount()).Fill(1)
	}
	return &Orientation{
		Translation: translation,
		Rotation:    rotationDegrees,
		Scale:       scale,
	}
}

// IdentityOrientation creates the identity transform of the given dimension:
// zero translation, zero rotation, unit scale.
func IdentityOrientation(dim int) *Orientation {
	return &Orientation{
		Translation: ZeroPosition(dim),
		Scale:       ZeroVector(dim).Fill(1),
	}
}

// Copy returns an independent deep copy.
func (o *Orientation) Copy() *Orientation {
	return &Orientation{
		Translation: o.Translation.Copy(),
		Rotation:    o.Rotation,
		Scale:       o.Scale.Copy(),
	}
}

// Lerp interpolates this orientation toward other in place and returns the
// receiver. Translation and scale interpolate component-wise; rotation
// interpolates along the shortest direction, so blending 350 degrees toward
// 10 degrees passes through 0 rather than winding the long way around.
// Both dimension checks run before any mutation, so a DimensionError panic
// leaves the receiver unmodified.
func (o *Orientation) Lerp(t float64, other *Orientation) *Orientation {
	o.Translation.checkDimension(other.Translation)
	o.Scale.checkDimension(other.Scale)

	o.Translation.Lerp(t, other.Translation)
	o.Scale.Lerp(t, other.Scale)
	o.Rotation += t * NormalizeAngle(other.Rotation-o.Rotation)
	return o
}

func (o *Orientation) String() string {
	return fmt.Sprintf("{translation: %v, rotation: %g, scale: %v}", o.Translation, o.Rotation, o.Scale)
}

// NormalizeAngle maps an angle in degrees into (-180, 180], the minimal
// signed form used for shortest-direction rotation blending.
func NormalizeAngle(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	switch {
	case a > 180:
		a -= 360
	case a <= -180:
		a += 360
	}
	return a
}
