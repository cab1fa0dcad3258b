// pkg/render/engo/system.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/djkeyes/Trydent/pkg/animation"
	"github.com/djkeyes/Trydent/pkg/logging"
)

// animationEntity ties an ECS entity to the clip that drives it.
type animationEntity struct {
	basic   *ecs.BasicEntity
	space   *common.SpaceComponent
	render  *common.RenderComponent
	clip    animation.Animation
	elapsed float64
}

// AnimationSystem advances registered clips every frame and writes the
// sampled orientation back into each entity's components.
type AnimationSystem struct {
	entities []animationEntity
	logger   *logging.Logger
}

// NewAnimationSystem creates an animation system with no entities.
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{
		logger: logging.NewLogger(),
	}
}

// Add registers an entity to be driven by the given clip.
func (s *AnimationSystem) Add(basic *ecs.BasicEntity, space *common.SpaceComponent, render *common.RenderComponent, clip animation.Animation) {
	s.entities = append(s.entities, animationEntity{
		basic:  basic,
		space:  space,
		render: render,
		clip:   clip,
	})
}

// Remove removes an entity from the system (required by ecs.System).
func (s *AnimationSystem) Remove(basic ecs.BasicEntity) {
	for i, e := range s.entities {
		if e.basic.ID() == basic.ID() {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// Update advances every clip by dt seconds (required by ecs.System).
func (s *AnimationSystem) Update(dt float32) {
	for i := range s.entities {
		e := &s.entities[i]
		e.elapsed += float64(dt)

		orientation, err := e.clip.Sample(e.elapsed)
		if err != nil {
			s.logger.Warn(context.Background(), "skipping entity with unsampleable clip",
				"entity", e.basic.ID(),
				"error", err.Error(),
			)
			continue
		}

		if orientation.Translation != nil && orientation.Translation.ComponentCount() >= 2 {
			e.space.Position = engo.Point{
				X: float32(orientation.Translation.X()),
				Y: float32(orientation.Translation.Y()),
			}
		}
		e.space.Rotation = float32(orientation.Rotation)

		if orientation.Scale != nil && orientation.Scale.ComponentCount() >= 2 {
			e.render.Scale = engo.Point{
				X: float32(orientation.Scale.X()),
				Y: float32(orientation.Scale.Y()),
			}
		}
	}
}

// Len returns the number of animated entities.
func (s *AnimationSystem) Len() int {
	return len(s.entities)
}
