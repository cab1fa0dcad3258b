// pkg/render/engo/sprites.go
package engo

import (
	"context"
	"image"
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/djkeyes/Trydent/pkg/images"
	"github.com/djkeyes/Trydent/pkg/logging"
)

const placeholderSize = 32

// SpriteFactory turns cached image files into Engo drawables. Sprites
// that cannot be loaded fall back to a generated placeholder so a
// missing asset never blocks the scene.
type SpriteFactory struct {
	cache  *images.Cache
	logger *logging.Logger
}

// NewSpriteFactory creates a factory backed by the given image cache.
// A nil cache yields placeholder sprites for every name.
func NewSpriteFactory(cache *images.Cache) *SpriteFactory {
	return &SpriteFactory{
		cache:  cache,
		logger: logging.NewLogger(),
	}
}

// Sprite returns the drawable for the named image file, or a generated
// placeholder if the file cannot be loaded.
func (f *SpriteFactory) Sprite(ctx context.Context, name string) common.Drawable {
	if f.cache != nil {
		img, err := f.cache.Load(ctx, name)
		if err == nil {
			return convertToEngoTexture(img)
		}
		f.logger.Warn(ctx, "falling back to placeholder sprite",
			"sprite", name,
			"error", err.Error(),
		)
	}

	return convertToEngoTexture(placeholderImage(name))
}

// convertToEngoTexture converts a decoded image to an Engo-compatible texture.
func convertToEngoTexture(img image.Image) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// placeholderImage generates a solid diamond whose hue is derived from
// the sprite name, so distinct missing assets remain distinguishable.
func placeholderImage(name string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	fill := placeholderColor(name)
	half := placeholderSize / 2

	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			dx, dy := x-half, y-half
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx+dy <= half {
				img.Set(x, y, fill)
			}
		}
	}

	return img
}

func placeholderColor(name string) color.NRGBA {
	var hash uint32
	for _, c := range name {
		hash = hash*31 + uint32(c)
	}

	return color.NRGBA{
		R: uint8(128 + hash%128),
		G: uint8(128 + (hash>>8)%128),
		B: uint8(128 + (hash>>16)%128),
		A: 255,
	}
}
