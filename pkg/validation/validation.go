// Package validation provides pre-flight validation for animation
// definitions loaded from untrusted configuration files, so construction
// errors surface with context before any curve is built.
package validation

import (
	"fmt"
	"math"

	"github.com/djkeyes/Trydent/pkg/config"
	"github.com/djkeyes/Trydent/pkg/curve"
)

// Limits on animation definitions. Curves beyond these sizes indicate a
// malformed or hostile config file rather than real content.
const (
	MaxNameLen       = 64
	MaxKeyframes     = 4096
	MaxDimension     = 16
	MaxDurationHours = 24
)

// ValidateAnimationSet validates every animation in the set and checks for
// duplicate names.
func ValidateAnimationSet(set *config.AnimationSet) error {
	if set == nil {
		return fmt.Errorf("animation set is nil")
	}
	if len(set.Animations) == 0 {
		return fmt.Errorf("animation set is empty")
	}

	seen := make(map[string]bool, len(set.Animations))
	for i := range set.Animations {
		cfg := &set.Animations[i]
		if err := ValidateAnimationConfig(cfg); err != nil {
			return fmt.Errorf("animation %d (%q): %w", i, cfg.Name, err)
		}
		if seen[cfg.Name] {
			return fmt.Errorf("duplicate animation name %q", cfg.Name)
		}
		seen[cfg.Name] = true
	}
	return nil
}

// ValidateAnimationConfig checks a single animation definition: name and
// duration limits, wrap mode names, keyframe count, and consistent
// dimensionality across keyframes.
func ValidateAnimationConfig(cfg *config.AnimationConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(cfg.Name) > MaxNameLen {
		return fmt.Errorf("name too long: %d characters (max %d)", len(cfg.Name), MaxNameLen)
	}

	if math.IsNaN(cfg.Duration) || math.IsInf(cfg.Duration, 0) || cfg.Duration < 0 {
		return fmt.Errorf("duration must be finite and non-negative, got %v", cfg.Duration)
	}
	if cfg.Duration > float64(MaxDurationHours)*3600 {
		return fmt.Errorf("duration %v exceeds %d hours", cfg.Duration, MaxDurationHours)
	}

	if _, err := curve.ParseTimeWrapMode(cfg.TimeWrap); err != nil {
		return err
	}
	if _, err := curve.ParseIndexWrapMode(cfg.IndexWrap); err != nil {
		return err
	}

	if len(cfg.Keyframes) == 0 {
		return fmt.Errorf("at least one keyframe is required")
	}
	if len(cfg.Keyframes) > MaxKeyframes {
		return fmt.Errorf("too many keyframes: %d (max %d)", len(cfg.Keyframes), MaxKeyframes)
	}

	dim := len(cfg.Keyframes[0].Translation)
	for i := range cfg.Keyframes {
		if err := validateKeyframe(&cfg.Keyframes[i], dim); err != nil {
			return fmt.Errorf("keyframe %d: %w", i, err)
		}
	}
	return nil
}

func validateKeyframe(kf *config.KeyframeConfig, dim int) error {
	if len(kf.Translation) == 0 {
		return fmt.Errorf("translation cannot be empty")
	}
	if len(kf.Translation) > MaxDimension {
		return fmt.Errorf("translation has %d components (max %d)", len(kf.Translation), MaxDimension)
	}
	if len(kf.Translation) != dim {
		return fmt.Errorf("translation has %d components, first keyframe has %d", len(kf.Translation), dim)
	}
	if len(kf.Scale) != 0 && len(kf.Scale) != dim {
		return fmt.Errorf("scale has %d components, want %d or none", len(kf.Scale), dim)
	}

	for _, v := range kf.Translation {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("translation contains non-finite value %v", v)
		}
	}
	for _, v := range kf.Scale {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("scale contains non-finite value %v", v)
		}
	}
	if math.IsNaN(kf.Rotation) || math.IsInf(kf.Rotation, 0) {
		return fmt.Errorf("rotation is not finite: %v", kf.Rotation)
	}
	return nil
}
