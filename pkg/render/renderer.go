// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/djkeyes/Trydent/pkg/geometry"
	"github.com/djkeyes/Trydent/pkg/logging"
)

// Renderer draws named sprites at sampled orientations. Implementations
// range from a no-op logger to a full engo-backed window.
type Renderer interface {
	// Clear resets the frame buffer before a new frame is drawn.
	Clear()
	// DrawSprite draws the sprite registered under name at the given
	// orientation. A nil orientation is ignored.
	DrawSprite(name string, orientation *geometry.Orientation)
	// Present flushes the completed frame to the output device.
	Present()
}

// NullRenderer discards all draw calls, logging them at debug level.
// It is useful for headless tools and tests.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a renderer that draws nothing.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements Renderer.
func (r *NullRenderer) Clear() {}

// DrawSprite implements Renderer.
func (r *NullRenderer) DrawSprite(name string, orientation *geometry.Orientation) {
	if orientation == nil {
		return
	}
	r.logger.Debug(context.Background(), "discarding sprite draw",
		"sprite", name,
		"orientation", orientation.String(),
	)
}

// Present implements Renderer.
func (r *NullRenderer) Present() {}
