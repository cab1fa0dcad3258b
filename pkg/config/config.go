// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/djkeyes/Trydent/pkg/animation"
	"github.com/djkeyes/Trydent/pkg/curve"
	"github.com/djkeyes/Trydent/pkg/geometry"
)

// AnimationSet is the on-disk form of a group of named animations.
type AnimationSet struct {
	Animations []AnimationConfig `json:"animations"`
}

// AnimationConfig describes one keyframe animation.
type AnimationConfig struct {
	Name      string           `json:"name"`
	Duration  float64          `json:"duration"`
	TimeWrap  string           `json:"timeWrap"`
	IndexWrap string           `json:"indexWrap"`
	Keyframes []KeyframeConfig `json:"keyframes"`
}

// KeyframeConfig describes one keyframe's transform. An empty scale defaults
// to unit scale of the translation's dimension.
type KeyframeConfig struct {
	Translation []float64 `json:"translation"`
	Rotation    float64   `json:"rotation"`
	Scale       []float64 `json:"scale,omitempty"`
}

// LoadConfig loads an animation set from a file
func LoadConfig(path string) (*AnimationSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var set AnimationSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &set, nil
}

// SaveConfig saves an animation set to a file
func SaveConfig(set *AnimationSet, path string) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Build constructs the animation this config describes.
func (c *AnimationConfig) Build() (*animation.KeyframeAnimation, error) {
	timeWrap, err := curve.ParseTimeWrapMode(c.TimeWrap)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", c.Name, err)
	}
	indexWrap, err := curve.ParseIndexWrapMode(c.IndexWrap)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", c.Name, err)
	}

	keyframeCurve := curve.NewCurve()
	for i, kf := range c.Keyframes {
		orientation, err := kf.orientation()
		if err != nil {
			return nil, fmt.Errorf("animation %q keyframe %d: %w", c.Name, i, err)
		}
		keyframeCurve.AddKeyframe(orientation)
	}
	keyframeCurve.SetIndexWrap(indexWrap)

	anim, err := animation.NewKeyframeAnimation(c.Duration, keyframeCurve)
	if err != nil {
		return nil, fmt.Errorf("animation %q: %w", c.Name, err)
	}
	anim.SetTimeWrap(timeWrap)
	return anim, nil
}

func (kf *KeyframeConfig) orientation() (*geometry.Orientation, error) {
	if len(kf.Translation) == 0 {
		return nil, fmt.Errorf("keyframe has no translation")
	}

	translation := geometry.NewPosition(kf.Translation...)

	var scale *geometry.Vector
	switch {
	case len(kf.Scale) == 0:
		scale = geometry.ZeroVector(len(kf.Translation)).Fill(1)
	case len(kf.Scale) == len(kf.Translation):
		scale = geometry.NewVector(kf.Scale...)
	default:
		return nil, fmt.Errorf("scale has %d components, translation has %d", len(kf.Scale), len(kf.Translation))
	}

	return geometry.NewOrientation(translation, kf.Rotation, scale), nil
}

// BuildLibrary builds every animation in the set and registers it in a new
// library attached to nothing. Callers wanting events use
// animation.NewLibrary directly and register built animations themselves.
func (s *AnimationSet) BuildLibrary() (*animation.Library, error) {
	lib := animation.NewLibrary(nil)
	for i := range s.Animations {
		anim, err := s.Animations[i].Build()
		if err != nil {
			return nil, err
		}
		if err := lib.Register(s.Animations[i].Name, anim); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// DefaultConfig returns a default animation set
func DefaultConfig() *AnimationSet {
	return &AnimationSet{
		Animations: []AnimationConfig{
			{
				Name:      "spin",
				Duration:  2,
				TimeWrap:  "repeat",
				IndexWrap: "repeat",
				Keyframes: []KeyframeConfig{
					{Translation: []float64{0, 0}, Rotation: 0},
					{Translation: []float64{0, 0}, Rotation: 120},
					{Translation: []float64{0, 0}, Rotation: 240},
					{Translation: []float64{0, 0}, Rotation: 360},
				},
			},
			{
				Name:      "pulse",
				Duration:  1,
				TimeWrap:  "mirror",
				IndexWrap: "clamp",
				Keyframes: []KeyframeConfig{
					{Translation: []float64{0, 0}, Rotation: 0, Scale: []float64{1, 1}},
					{Translation: []float64{0, 0}, Rotation: 0, Scale: []float64{1.5, 1.5}},
				},
			},
			{
				Name:      "patrol",
				Duration:  4,
				TimeWrap:  "mirror",
				IndexWrap: "clamp",
				Keyframes: []KeyframeConfig{
					{Translation: []float64{-100, 0}, Rotation: 0},
					{Translation: []float64{100, 0}, Rotation: 0},
				},
			},
		},
	}
}
