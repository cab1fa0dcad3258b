// pkg/animation/animation.go

// Package animation samples an object's spatial transform at arbitrary
// simulation time from a keyframed curve.
package animation

import (
	"fmt"
	"math"

	"github.com/djkeyes/Trydent/pkg/curve"
	"github.com/djkeyes/Trydent/pkg/geometry"
)

// Animation defines the orientation of an object over time.
type Animation interface {
	// Duration returns the duration in seconds.
	Duration() float64

	// Sample returns the interpolated orientation at the given time. Times
	// outside [0, duration] are resolved through the time wrap mode first.
	Sample(time float64) (*geometry.Orientation, error)

	// SetIndexWrap sets the strategy for keyframe index values outside
	// 0 .. count-1. Takes effect on the next sample.
	SetIndexWrap(mode curve.IndexWrapMode)

	// SetTimeWrap sets the strategy for time values outside 0 .. duration.
	// Takes effect on the next sample.
	SetTimeWrap(mode curve.TimeWrapMode)
}

// KeyframeAnimation samples a keyframed curve over a fixed duration. Time is
// resolved through the time wrap mode, mapped proportionally onto the
// curve's index range, and delegated to the curve.
//
// A KeyframeAnimation is not internally synchronized; configuration is
// mutated only by the owning goroutine between sampling passes.
type KeyframeAnimation struct {
	duration float64
	curve    *curve.Curve
	timeWrap curve.TimeWrapMode
}

var _ Animation = (*KeyframeAnimation)(nil)

// NewKeyframeAnimation creates an animation over the given curve. The
// duration is fixed at construction and must be a finite value >= 0; the
// curve must hold at least one keyframe.
func NewKeyframeAnimation(duration float64, c *curve.Curve) (*KeyframeAnimation, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return nil, fmt.Errorf("animation duration must be finite and non-negative, got %v", duration)
	}
	if c == nil || c.KeyframeCount() == 0 {
		return nil, fmt.Errorf("animation requires at least one keyframe: %w", curve.ErrEmptyCurve)
	}
	return &KeyframeAnimation{
		duration: duration,
		curve:    c,
	}, nil
}

// Duration returns the duration in seconds.
func (a *KeyframeAnimation) Duration() float64 {
	return a.duration
}

// Curve returns the underlying keyframe curve.
func (a *KeyframeAnimation) Curve() *curve.Curve {
	return a.curve
}

// SetCurve swaps the underlying curve. Sampling an empty replacement
// surfaces ErrEmptyCurve on the next call.
func (a *KeyframeAnimation) SetCurve(c *curve.Curve) {
	a.curve = c
}

// Sample resolves time through the time wrap mode against [0, duration],
// maps the result proportionally to a virtual keyframe index, and returns
// the curve's interpolated orientation. A zero duration maps every time to
// index 0.
func (a *KeyframeAnimation) Sample(time float64) (*geometry.Orientation, error) {
	resolved := a.timeWrap.Resolve(time, 0, a.duration)

	index := 0.0
	if a.duration > 0 {
		index = resolved / a.duration * float64(a.curve.KeyframeCount()-1)
	}
	return a.curve.Sample(index)
}

// SetIndexWrap implements Animation.
func (a *KeyframeAnimation) SetIndexWrap(mode curve.IndexWrapMode) {
	a.curve.SetIndexWrap(mode)
}

// SetTimeWrap implements Animation.
func (a *KeyframeAnimation) SetTimeWrap(mode curve.TimeWrapMode) {
	a.timeWrap = mode
}

// TimeWrap returns the active time wrap mode.
func (a *KeyframeAnimation) TimeWrap() curve.TimeWrapMode {
	return a.timeWrap
}
