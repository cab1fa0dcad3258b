// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Events published by the animation and image layers.
const (
	ImageLoaded         Type = "image_loaded"
	ImageEvicted        Type = "image_evicted"
	AnimationRegistered Type = "animation_registered"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type]map[uint64]Handler
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type]map[uint64]Handler),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type and returns a
// subscription id usable with Unsubscribe.
func (b *Bus) Subscribe(eventType Type, handler Handler) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[uint64]Handler)
	}
	b.handlers[eventType][id] = handler
	return id
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers[eventType], id)
}

// Publish sends an event to all subscribed handlers. Handlers run on the
// publishing goroutine, outside the bus lock.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.GetType()]))
	for _, h := range b.handlers[event.GetType()] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// ImageEvent contains information about image cache activity
type ImageEvent struct {
	BaseEvent
	Name string
}

// NewImageEvent creates a new image cache event
func NewImageEvent(eventType Type, source interface{}, name string) *ImageEvent {
	return &ImageEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Name: name,
	}
}

// AnimationEvent contains information about animation registry activity
type AnimationEvent struct {
	BaseEvent
	Name     string
	Duration float64
}

// NewAnimationEvent creates a new animation registry event
func NewAnimationEvent(eventType Type, source interface{}, name string, duration float64) *AnimationEvent {
	return &AnimationEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Name:     name,
		Duration: duration,
	}
}
