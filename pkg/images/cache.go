// pkg/images/cache.go

// Package images provides a decoded-image cache with usage-based eviction.
// The cache is an explicit instance with injected capacity and base
// directory rather than process-global state, so tests can construct
// isolated caches.
package images

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/djkeyes/Trydent/pkg/config"
	"github.com/djkeyes/Trydent/pkg/event"
	"github.com/djkeyes/Trydent/pkg/logging"
)

type cacheEntry struct {
	image      image.Image
	lastAccess uint64
}

// Cache keeps decoded images in memory, keyed by their path relative to the
// asset directory. Every hit stamps the entry with a monotonic access tick;
// when the entry count exceeds the configured capacity, the least recently
// used entries are evicted.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	ticks   uint64

	capacity int
	loader   *Loader
	logger   *logging.Logger
	bus      *event.Bus
}

// NewCache creates a cache configured from the environment config. The bus
// may be nil when no observer cares about cache activity.
func NewCache(envConfig *config.EnvironmentConfig, bus *event.Bus) *Cache {
	return &Cache{
		entries:  make(map[string]*cacheEntry),
		capacity: envConfig.ImageCacheCapacity,
		loader:   NewLoader(envConfig),
		logger:   logging.NewLogger(),
		bus:      bus,
	}
}

// Load returns the decoded image for name, reading and decoding it from the
// asset directory on a cache miss. The returned image is shared; callers
// must not mutate it.
func (c *Cache) Load(ctx context.Context, name string) (image.Image, error) {
	c.mu.Lock()
	if entry, ok := c.entries[name]; ok {
		c.ticks++
		entry.lastAccess = c.ticks
		c.mu.Unlock()
		return entry.image, nil
	}
	c.mu.Unlock()

	// Decode outside the lock; a duplicate concurrent load of the same
	// name costs a redundant decode, not corruption.
	img, err := c.loader.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %q: %w", name, err)
	}

	c.mu.Lock()
	c.ticks++
	c.entries[name] = &cacheEntry{image: img, lastAccess: c.ticks}
	evicted := c.evictOverCapacity()
	c.mu.Unlock()

	c.logger.Debug(ctx, "image loaded",
		"name", name,
		"bounds", img.Bounds().String(),
	)
	if c.bus != nil {
		c.bus.Publish(event.NewImageEvent(event.ImageLoaded, c, name))
		for _, victim := range evicted {
			c.bus.Publish(event.NewImageEvent(event.ImageEvicted, c, victim))
		}
	}
	return img, nil
}

// Contains reports whether name is currently cached, without touching its
// access time.
func (c *Cache) Contains(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[name]
	return ok
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
}

// evictOverCapacity removes least-recently-used entries until the cache is
// within capacity, returning the evicted names. Caller holds the lock.
func (c *Cache) evictOverCapacity() []string {
	var evicted []string
	for len(c.entries) > c.capacity {
		oldestName := ""
		oldestTick := c.ticks + 1
		for name, entry := range c.entries {
			if entry.lastAccess < oldestTick {
				oldestName = name
				oldestTick = entry.lastAccess
			}
		}
		delete(c.entries, oldestName)
		evicted = append(evicted, oldestName)
	}
	return evicted
}
