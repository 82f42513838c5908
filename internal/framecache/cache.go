// Package framecache shares rendered frames between renderers that produce
// identical output, such as several SSH sessions playing the same preset.
package framecache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/tui-donut/internal/torus"
)

// DefaultSize is the number of frames kept when New is given a
// non-positive size.
const DefaultSize = 1024

type key struct {
	fingerprint string
	rot         torus.Rotation
}

// Cache is a bounded LRU of frames. It is safe for concurrent use.
type Cache struct {
	frames *lru.Cache[key, *torus.Frame]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// New creates a cache holding up to size frames.
func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	frames, _ := lru.New[key, *torus.Frame](size)
	return &Cache{frames: frames}
}

// Render returns the frame r renders at rot, rendering it only if no
// renderer with the same fingerprint has rendered that rotation recently.
// A nil cache renders directly.
func (c *Cache) Render(r *torus.Renderer, rot torus.Rotation) *torus.Frame {
	if c == nil {
		return r.Render(rot)
	}

	k := key{fingerprint: r.Fingerprint(), rot: rot}
	if f, ok := c.frames.Get(k); ok {
		c.hits.Add(1)
		return f
	}

	c.misses.Add(1)
	f := r.Render(rot)
	c.frames.Add(k, f)
	return f
}

// Frame renders r's current rotation through the cache.
func (c *Cache) Frame(r *torus.Renderer) *torus.Frame {
	return c.Render(r, r.Rotation())
}

// Stats returns hit and miss counters and the current size.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.frames.Len(),
	}
}

// Purge drops every cached frame.
func (c *Cache) Purge() {
	c.frames.Purge()
}
