package torus

import (
	"math/rand"
	"sync"
	"testing"
)

func TestDepthKeyOrdering(t *testing.T) {
	tests := []struct {
		name      string
		near, far uint64
	}{
		{"closer beats brighter", depthKey(0.5, 0), depthKey(0.25, 11)},
		{"closer beats same level", depthKey(0.3, 4), depthKey(0.2, 4)},
		{"equal depth prefers brighter", depthKey(0.2, 5), depthKey(0.2, 4)},
		{"any sample beats background", depthKey(0.01, 0), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.near <= tc.far {
				t.Errorf("key %x should beat %x", tc.near, tc.far)
			}
		})
	}
}

func TestDepthKeyFloat32Tie(t *testing.T) {
	// 0.25 and 0.25*(1+1e-9) round to the same float32
	near, far := 0.25*(1+1e-9), 0.25
	if depthKey(near, 3) != depthKey(far, 3) {
		t.Fatal("depths within a float32 ulp should pack to the same key")
	}

	for _, order := range [][2]uint64{
		{depthKey(near, 3), depthKey(far, 9)},
		{depthKey(far, 9), depthKey(near, 3)},
	} {
		d := newDepthBuffer(1)
		d.offer(0, 0, order[0])
		d.offer(0, 0, order[1])
		if got := keyLevel(d.load(0, 0)); got != 9 {
			t.Errorf("tie kept level %d, expected the brighter 9", got)
		}
	}
}

func TestDepthKeyRoundTrip(t *testing.T) {
	key := depthKey(0.25, 7)
	if keyDepth(key) != 0.25 {
		t.Errorf("keyDepth() = %v, expected 0.25", keyDepth(key))
	}
	if keyLevel(key) != 7 {
		t.Errorf("keyLevel() = %d, expected 7", keyLevel(key))
	}
	if keyLevel(0) != -1 || keyDepth(0) != 0 {
		t.Error("zero key should decode as background")
	}
}

func TestDepthBufferMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := newDepthBuffer(4)

	last := make(map[[2]int]float64)
	for i := 0; i < 2000; i++ {
		x, y := rng.Intn(4), rng.Intn(4)
		key := depthKey(0.1+rng.Float64(), rng.Intn(12))
		before := d.load(x, y)
		wrote := d.offer(x, y, key)
		after := d.load(x, y)

		if wrote != (key > before) {
			t.Fatalf("offer(%x) over %x reported wrote=%v", key, before, wrote)
		}
		depth := keyDepth(after)
		if depth < last[[2]int{x, y}] {
			t.Fatalf("cell (%d, %d) depth decreased from %v to %v", x, y, last[[2]int{x, y}], depth)
		}
		last[[2]int{x, y}] = depth
	}
}

func TestDepthBufferConcurrentOffers(t *testing.T) {
	d := newDepthBuffer(1)

	var wg sync.WaitGroup
	var max uint64
	keys := make([]uint64, 64)
	for i := range keys {
		keys[i] = depthKey(float64(i%17)/10+0.1, i%12)
		if keys[i] > max {
			max = keys[i]
		}
	}
	for _, k := range keys {
		wg.Add(1)
		go func(k uint64) {
			defer wg.Done()
			d.offer(0, 0, k)
		}(k)
	}
	wg.Wait()

	if got := d.load(0, 0); got != max {
		t.Errorf("after concurrent offers cell = %x, expected the largest key %x", got, max)
	}
}
