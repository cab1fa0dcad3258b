// pkg/curve/curve.go
package curve

import (
	"errors"
	"math"

	"github.com/djkeyes/Trydent/pkg/geometry"
)

// ErrEmptyCurve is returned when sampling a curve with no keyframes. It
// indicates a construction-time logic error upstream; the sample is not
// retried.
var ErrEmptyCurve = errors.New("curve has no keyframes")

// Keyframe is a stored orientation anchored to an integer position in a
// curve's sequence. Index is assigned by insertion order.
type Keyframe struct {
	Orientation *geometry.Orientation
	Index       int
}

// Curve is an ordered sequence of keyframed orientations. Sampling resolves
// a real-valued virtual index through the curve's index wrap mode, then
// interpolates between the bracketing keyframes.
//
// A curve is not internally synchronized; the owner mutates keyframes and
// wrap mode only between sampling passes.
type Curve struct {
	keyframes []Keyframe
	indexWrap IndexWrapMode
}

// NewCurve creates a curve holding the given orientations as keyframes, in
// order, with the clamp index wrap.
func NewCurve(orientations ...*geometry.Orientation) *Curve {
	c := &Curve{}
	for _, o := range orientations {
		c.AddKeyframe(o)
	}
	return c
}

// AddKeyframe appends an orientation to the end of the sequence.
func (c *Curve) AddKeyframe(o *geometry.Orientation) {
	c.keyframes = append(c.keyframes, Keyframe{Orientation: o, Index: len(c.keyframes)})
}

// KeyframeCount returns the number of keyframes.
func (c *Curve) KeyframeCount() int {
	return len(c.keyframes)
}

// Keyframe returns the keyframe at the given integer position.
func (c *Curve) Keyframe(i int) Keyframe {
	return c.keyframes[i]
}

// IndexWrap returns the active index wrap mode.
func (c *Curve) IndexWrap() IndexWrapMode {
	return c.indexWrap
}

// SetIndexWrap sets the policy for resolving out-of-range virtual indices.
// It takes effect on the next sample.
func (c *Curve) SetIndexWrap(mode IndexWrapMode) {
	c.indexWrap = mode
}

// Sample resolves the virtual index through the index wrap mode over the
// keyframe positions 0..count-1 and returns a fresh interpolated
// orientation. Under the repeat wrap the resolved index may land in the
// closing segment past the last keyframe, which interpolates back toward
// the first. A single-keyframe curve returns a copy of that keyframe for
// every input. Sampling an empty curve returns ErrEmptyCurve.
func (c *Curve) Sample(virtualIndex float64) (*geometry.Orientation, error) {
	count := len(c.keyframes)
	if count == 0 {
		return nil, ErrEmptyCurve
	}
	if count == 1 {
		return c.keyframes[0].Orientation.Copy(), nil
	}

	last := count - 1
	resolved := c.indexWrap.Resolve(virtualIndex, 0, float64(last))

	i0 := int(math.Floor(resolved))
	if i0 > last {
		i0 = last
	}
	frac := resolved - float64(i0)
	i1 := c.neighbor(i0 + 1)

	return c.keyframes[i0].Orientation.Copy().Lerp(frac, c.keyframes[i1].Orientation), nil
}

// neighbor resolves the upper bracketing index at the boundary. Past the
// last keyframe, repeat wraps back to the first (closing the loop for the
// segment past the last index) and mirror reflects inward, so boundary
// interpolation respects the active wrap mode.
func (c *Curve) neighbor(i int) int {
	last := len(c.keyframes) - 1
	if i <= last {
		return i
	}
	switch c.indexWrap {
	case IndexRepeat:
		return 0
	case IndexMirror:
		return last - 1
	}
	return last
}
