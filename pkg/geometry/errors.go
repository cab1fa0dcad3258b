// pkg/geometry/errors.go
package geometry

import "fmt"

// DimensionError reports a binary operation between values of different
// dimensions. It is delivered by panic so that the in-place chainable
// arithmetic methods can keep concrete return types; the receiver is
// guaranteed to be unmodified when the panic is raised.
type DimensionError struct {
	Want int
	Got  int
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("geometry: dimension mismatch: want %d components, got %d", e.Want, e.Got)
}

// ComponentError reports direct component access outside [0, count).
type ComponentError struct {
	Index int
	Count int
}

func (e ComponentError) Error() string {
	return fmt.Sprintf("geometry: component index %d out of range [0, %d)", e.Index, e.Count)
}
