// pkg/animation/library.go
package animation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/djkeyes/Trydent/pkg/event"
)

// Library stores animations by name so scene objects can share clips. It is
// safe for concurrent readers; registration publishes AnimationRegistered on
// the attached event bus.
type Library struct {
	mu    sync.RWMutex
	clips map[string]Animation
	bus   *event.Bus
}

// NewLibrary creates an empty library. The bus may be nil when no observer
// cares about registrations.
func NewLibrary(bus *event.Bus) *Library {
	return &Library{
		clips: make(map[string]Animation),
		bus:   bus,
	}
}

// Register adds an animation under the given name, replacing any previous
// clip with that name.
func (l *Library) Register(name string, anim Animation) error {
	if name == "" {
		return fmt.Errorf("animation name cannot be empty")
	}
	if anim == nil {
		return fmt.Errorf("animation %q is nil", name)
	}

	l.mu.Lock()
	l.clips[name] = anim
	l.mu.Unlock()

	if l.bus != nil {
		l.bus.Publish(event.NewAnimationEvent(event.AnimationRegistered, l, name, anim.Duration()))
	}
	return nil
}

// Get returns an animation by name.
func (l *Library) Get(name string) (Animation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	anim, ok := l.clips[name]
	return anim, ok
}

// Names returns the registered names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.clips))
	for name := range l.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered animations.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.clips)
}
