package framecache

import (
	"sync"
	"testing"

	"github.com/vovakirdan/tui-donut/internal/torus"
)

func coarse(size int) torus.Config {
	cfg := torus.DefaultConfig()
	cfg.View.ScreenSize = size
	cfg.Sampling = torus.Sampling{ThetaSpacing: 0.3, PhiSpacing: 0.1}
	return cfg
}

func newRenderer(t *testing.T, size int) *torus.Renderer {
	t.Helper()
	r, err := torus.New(coarse(size))
	if err != nil {
		t.Fatalf("torus.New() failed: %v", err)
	}
	return r
}

func TestCacheReturnsSameFrame(t *testing.T) {
	c := New(8)
	r := newRenderer(t, 12)

	first := c.Frame(r)
	second := c.Frame(r)
	if first != second {
		t.Error("repeat rotation should return the cached frame")
	}
	if first.String() != r.Frame().String() {
		t.Error("cached frame differs from a direct render")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Len != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestCacheSharedAcrossRenderers(t *testing.T) {
	c := New(8)
	a := newRenderer(t, 12)
	b := newRenderer(t, 12)

	if c.Frame(a) != c.Frame(b) {
		t.Error("renderers with equal fingerprints should share frames")
	}

	other := newRenderer(t, 14)
	if c.Frame(other) == c.Frame(a) {
		t.Error("renderers with different sizes must not share frames")
	}
}

func TestCacheDistinguishesRotations(t *testing.T) {
	c := New(8)
	r := newRenderer(t, 12)

	before := c.Frame(r)
	r.Advance()
	after := c.Frame(r)

	if before == after {
		t.Error("different rotations should not share a frame")
	}
	if after.Rotation() != r.Rotation() {
		t.Errorf("frame rotation %+v, expected %+v", after.Rotation(), r.Rotation())
	}
}

func TestCacheEviction(t *testing.T) {
	c := New(2)
	r := newRenderer(t, 8)

	first := c.Frame(r)
	r.Advance()
	c.Frame(r)
	r.Advance()
	c.Frame(r)

	if got := c.Stats().Len; got != 2 {
		t.Errorf("Len = %d, expected 2", got)
	}

	// The oldest rotation was evicted and renders again
	r.SetRotation(first.Rotation())
	if c.Frame(r) == first {
		t.Error("evicted frame should be rendered again")
	}
}

func TestCachePurge(t *testing.T) {
	c := New(0)
	r := newRenderer(t, 8)
	c.Frame(r)
	c.Purge()
	if got := c.Stats().Len; got != 0 {
		t.Errorf("Len after Purge = %d, expected 0", got)
	}
}

func TestNilCacheRendersDirectly(t *testing.T) {
	var c *Cache
	r := newRenderer(t, 8)
	if f := c.Frame(r); f == nil || f.String() != r.Frame().String() {
		t.Error("nil cache should render directly")
	}
}

func TestCacheConcurrentUse(t *testing.T) {
	c := New(64)
	want := newRenderer(t, 10).Frame().String()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := torus.New(coarse(10))
			if err != nil {
				t.Error(err)
				return
			}
			if got := c.Frame(r).String(); got != want {
				t.Error("concurrent frame differs")
			}
		}()
	}
	wg.Wait()
}
