// cmd/demo/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/djkeyes/Trydent/pkg/animation"
	"github.com/djkeyes/Trydent/pkg/config"
	"github.com/djkeyes/Trydent/pkg/event"
	"github.com/djkeyes/Trydent/pkg/images"
	engorender "github.com/djkeyes/Trydent/pkg/render/engo"
	"github.com/djkeyes/Trydent/pkg/validation"
)

func main() {
	configPath := flag.String("config", "animations.json", "Path to animation set file")
	title := flag.String("title", "Trydent Demo", "Window title")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flag.Parse()

	// Load the animation set
	var set *config.AnimationSet

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Animation set file not found, using default animations")
		set = config.DefaultConfig()
	} else {
		set, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load animation set: %v", err)
		}
	}

	if err := validation.ValidateAnimationSet(set); err != nil {
		log.Fatalf("Invalid animation set: %v", err)
	}

	// Create event bus and library
	eventBus := event.NewEventBus()
	library := animation.NewLibrary(eventBus)

	eventBus.Subscribe(event.AnimationRegistered, func(e event.Event) {
		if animEvent, ok := e.(*event.AnimationEvent); ok {
			log.Printf("Registered animation %s (%.1fs)", animEvent.Name, animEvent.Duration)
		}
	})
	eventBus.Subscribe(event.ImageLoaded, func(e event.Event) {
		if imageEvent, ok := e.(*event.ImageEvent); ok {
			log.Printf("Loaded image %s", imageEvent.Name)
		}
	})

	for i := range set.Animations {
		clip, err := set.Animations[i].Build()
		if err != nil {
			log.Fatalf("Failed to build animation: %v", err)
		}
		if err := library.Register(set.Animations[i].Name, clip); err != nil {
			log.Fatalf("Failed to register animation: %v", err)
		}
	}
	log.Printf("Loaded %d animations", library.Len())

	// Wire the sprite cache
	envConfig, err := config.LoadEnvironmentConfig()
	if err != nil {
		log.Fatalf("Failed to load environment configuration: %v", err)
	}
	cache := images.NewCache(envConfig, eventBus)

	// Create the scene and start the window
	scene := engorender.NewAnimationScene(library, engorender.NewSpriteFactory(cache))

	opts := engo.RunOptions{
		Title:      *title,
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}
