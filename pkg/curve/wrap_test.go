// pkg/curve/wrap_test.go
package curve

import (
	"math"
	"testing"
)

func TestIndexWrapMode_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		mode     IndexWrapMode
		value    float64
		lo       float64
		hi       float64
		expected float64
	}{
		{name: "clamp_in_range", mode: IndexClamp, value: 1.5, lo: 0, hi: 2, expected: 1.5},
		{name: "clamp_below", mode: IndexClamp, value: -3, lo: 0, hi: 2, expected: 0},
		{name: "clamp_above", mode: IndexClamp, value: 7, lo: 0, hi: 2, expected: 2},
		{name: "repeat_in_range", mode: IndexRepeat, value: 0.25, lo: 0, hi: 2, expected: 0.25},
		{name: "repeat_past_end", mode: IndexRepeat, value: 3.2, lo: 0, hi: 2, expected: 0.2},
		{name: "repeat_below_start", mode: IndexRepeat, value: -0.5, lo: 0, hi: 2, expected: 2.5},
		{name: "repeat_keeps_closing_segment", mode: IndexRepeat, value: 2.5, lo: 0, hi: 2, expected: 2.5},
		{name: "repeat_at_period_wraps_to_start", mode: IndexRepeat, value: 3, lo: 0, hi: 2, expected: 0},
		{name: "mirror_in_range", mode: IndexMirror, value: 1.75, lo: 0, hi: 2, expected: 1.75},
		{name: "mirror_bounce_upper", mode: IndexMirror, value: 2.5, lo: 0, hi: 2, expected: 1.5},
		{name: "mirror_bounce_lower", mode: IndexMirror, value: -0.5, lo: 0, hi: 2, expected: 0.5},
		{name: "mirror_full_period", mode: IndexMirror, value: 4.25, lo: 0, hi: 2, expected: 0.25},
		{name: "nonzero_lo", mode: IndexRepeat, value: 5.5, lo: 1, hi: 4, expected: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mode.Resolve(tt.value, tt.lo, tt.hi)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Resolve(%v, %v, %v) = %v, want %v", tt.value, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}

func TestTimeWrapMode_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		mode     TimeWrapMode
		value    float64
		expected float64
	}{
		{name: "clamp_below", mode: TimeClamp, value: -5, expected: 0},
		{name: "clamp_above", mode: TimeClamp, value: 15, expected: 10},
		{name: "repeat_loops", mode: TimeRepeat, value: 23, expected: 3},
		{name: "mirror_reverses", mode: TimeMirror, value: 12, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mode.Resolve(tt.value, 0, 10)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Resolve(%v, 0, 10) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestResolve_ZeroWidthRange(t *testing.T) {
	// Single keyframe or zero duration: every mode resolves to the single
	// point, without dividing by zero.
	indexModes := []IndexWrapMode{IndexClamp, IndexRepeat, IndexMirror}
	for _, mode := range indexModes {
		t.Run("index_"+mode.String(), func(t *testing.T) {
			for _, v := range []float64{-100, -0.5, 0, 0.5, 100} {
				if got := mode.Resolve(v, 0, 0); got != 0 {
					t.Errorf("Resolve(%v, 0, 0) = %v, want 0", v, got)
				}
			}
		})
	}

	timeModes := []TimeWrapMode{TimeClamp, TimeRepeat, TimeMirror}
	for _, mode := range timeModes {
		t.Run("time_"+mode.String(), func(t *testing.T) {
			for _, v := range []float64{-1, 0, 1} {
				if got := mode.Resolve(v, 0, 0); got != 0 {
					t.Errorf("Resolve(%v, 0, 0) = %v, want 0", v, got)
				}
			}
		})
	}
}

func TestParseWrapModes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIndex IndexWrapMode
		wantTime  TimeWrapMode
		wantErr   bool
	}{
		{name: "clamp", input: "clamp", wantIndex: IndexClamp, wantTime: TimeClamp},
		{name: "repeat", input: "repeat", wantIndex: IndexRepeat, wantTime: TimeRepeat},
		{name: "mirror_mixed_case", input: "Mirror", wantIndex: IndexMirror, wantTime: TimeMirror},
		{name: "empty_defaults_to_clamp", input: "", wantIndex: IndexClamp, wantTime: TimeClamp},
		{name: "unknown", input: "bounce", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIndex, err := ParseIndexWrapMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIndexWrapMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && gotIndex != tt.wantIndex {
				t.Errorf("ParseIndexWrapMode(%q) = %v, want %v", tt.input, gotIndex, tt.wantIndex)
			}

			gotTime, err := ParseTimeWrapMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeWrapMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && gotTime != tt.wantTime {
				t.Errorf("ParseTimeWrapMode(%q) = %v, want %v", tt.input, gotTime, tt.wantTime)
			}
		})
	}
}
