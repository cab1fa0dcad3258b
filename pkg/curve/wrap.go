// pkg/curve/wrap.go

// Package curve provides keyframed orientation curves and the wrap policies
// that map out-of-range indices and times back into a valid domain.
package curve

import (
	"fmt"
	"math"
	"strings"
)

// IndexWrapMode resolves a virtual keyframe index outside [0, count-1].
type IndexWrapMode int

const (
	// IndexClamp holds the first/last keyframe beyond the ends.
	IndexClamp IndexWrapMode = iota
	// IndexRepeat tiles the index domain, so traversal past the end
	// continues from the start.
	IndexRepeat
	// IndexMirror bounces traversal back and forth across the ends.
	IndexMirror
)

// TimeWrapMode resolves a time value outside [0, duration].
type TimeWrapMode int

const (
	// TimeClamp holds time at the nearest end of the duration.
	TimeClamp TimeWrapMode = iota
	// TimeRepeat loops time modulo the duration.
	TimeRepeat
	// TimeMirror plays time forward and backward alternately.
	TimeMirror
)

func (m IndexWrapMode) String() string {
	switch m {
	case IndexClamp:
		return "clamp"
	case IndexRepeat:
		return "repeat"
	case IndexMirror:
		return "mirror"
	}
	return fmt.Sprintf("IndexWrapMode(%d)", int(m))
}

func (m TimeWrapMode) String() string {
	switch m {
	case TimeClamp:
		return "clamp"
	case TimeRepeat:
		return "repeat"
	case TimeMirror:
		return "mirror"
	}
	return fmt.Sprintf("TimeWrapMode(%d)", int(m))
}

// ParseIndexWrapMode maps a config name ("clamp", "repeat", "mirror",
// case-insensitive) to its mode.
func ParseIndexWrapMode(name string) (IndexWrapMode, error) {
	switch strings.ToLower(name) {
	case "clamp", "":
		return IndexClamp, nil
	case "repeat":
		return IndexRepeat, nil
	case "mirror":
		return IndexMirror, nil
	}
	return IndexClamp, fmt.Errorf("unknown index wrap mode %q", name)
}

// ParseTimeWrapMode maps a config name ("clamp", "repeat", "mirror",
// case-insensitive) to its mode.
func ParseTimeWrapMode(name string) (TimeWrapMode, error) {
	switch strings.ToLower(name) {
	case "clamp", "":
		return TimeClamp, nil
	case "repeat":
		return TimeRepeat, nil
	case "mirror":
		return TimeMirror, nil
	}
	return TimeClamp, fmt.Errorf("unknown time wrap mode %q", name)
}

// Resolve maps value into the index domain lo..hi. Clamp and mirror treat
// the domain as the continuous range [lo, hi]. Repeat tiles the discrete
// index positions with period hi-lo+1, mapping into [lo, hi+1), so the
// segment past the last index blends back toward the first rather than
// collapsing onto it. A zero-width domain resolves to lo under every mode.
func (m IndexWrapMode) Resolve(value, lo, hi float64) float64 {
	switch m {
	case IndexRepeat:
		if hi == lo {
			return lo
		}
		return repeatRange(value, lo, hi+1)
	case IndexMirror:
		return mirrorRange(value, lo, hi)
	}
	return clampRange(value, lo, hi)
}

// Resolve maps value into the inclusive range [lo, hi] under this mode.
func (m TimeWrapMode) Resolve(value, lo, hi float64) float64 {
	switch m {
	case TimeRepeat:
		return repeatRange(value, lo, hi)
	case TimeMirror:
		return mirrorRange(value, lo, hi)
	}
	return clampRange(value, lo, hi)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// repeatRange tiles [lo, hi] infinitely with period hi-lo. A zero-width
// range resolves to lo under every input.
func repeatRange(v, lo, hi float64) float64 {
	width := hi - lo
	if width == 0 {
		return lo
	}
	r := math.Mod(v-lo, width)
	if r < 0 {
		r += width
	}
	return lo + r
}

// mirrorRange reflects across [lo, hi] with period 2*(hi-lo), so traversal
// past one end reverses direction back toward the other.
func mirrorRange(v, lo, hi float64) float64 {
	width := hi - lo
	if width == 0 {
		return lo
	}
	period := 2 * width
	r := math.Mod(v-lo, period)
	if r < 0 {
		r += period
	}
	if r > width {
		r = period - r
	}
	return lo + r
}
