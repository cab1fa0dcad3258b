// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/djkeyes/Trydent/pkg/animation"
	"github.com/djkeyes/Trydent/pkg/logging"
)

const spriteSize = 32

// AnimationScene renders every clip in a library as an animated sprite.
type AnimationScene struct {
	world   *ecs.World
	library *animation.Library
	sprites *SpriteFactory
	logger  *logging.Logger
}

// NewAnimationScene creates a scene showing the clips in library.
// sprites may be nil, in which case placeholder drawables are used.
func NewAnimationScene(library *animation.Library, sprites *SpriteFactory) *AnimationScene {
	if sprites == nil {
		sprites = NewSpriteFactory(nil)
	}

	return &AnimationScene{
		world:   &ecs.World{},
		library: library,
		sprites: sprites,
		logger:  logging.NewLogger(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *AnimationScene) Type() string {
	return "AnimationScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *AnimationScene) Preload() {
	// Sprites are loaded through the image cache in Setup.
}

// Setup is called when the scene starts (required by Engo)
func (scene *AnimationScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	// Add the common systems (required for Engo)
	scene.world.AddSystem(&common.RenderSystem{})

	animations := NewAnimationSystem()
	scene.world.AddSystem(animations)

	for _, name := range scene.library.Names() {
		clip, ok := scene.library.Get(name)
		if !ok {
			continue
		}
		scene.spawn(name, clip, animations)
	}

	scene.logger.Info(context.Background(), "animation scene ready",
		"clips", animations.Len(),
	)
}

// spawn creates an entity for one clip and registers it with both the
// render and animation systems.
func (scene *AnimationScene) spawn(name string, clip animation.Animation, animations *AnimationSystem) {
	basic := ecs.NewBasic()

	renderComponent := common.RenderComponent{
		Drawable: scene.sprites.Sprite(context.Background(), name+".png"),
		Scale:    engo.Point{X: 1, Y: 1},
		Color:    color.RGBA{255, 255, 255, 255},
	}

	spaceComponent := common.SpaceComponent{
		Position: engo.Point{X: 0, Y: 0},
		Width:    spriteSize,
		Height:   spriteSize,
	}

	for _, system := range scene.world.Systems() {
		switch sys := system.(type) {
		case *common.RenderSystem:
			sys.Add(&basic, &renderComponent, &spaceComponent)
		case *AnimationSystem:
			sys.Add(&basic, &spaceComponent, &renderComponent, clip)
		}
	}
}
