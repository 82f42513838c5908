package torus

import (
	"fmt"
	"math"
	"sync"

	"github.com/vovakirdan/tui-donut/internal/core"
)

// Renderer produces frames of a rotating torus.
//
// Render is safe for concurrent use. Advance, SetRotation and Frame share
// the renderer's rotation and must not run concurrently with each other.
type Renderer struct {
	cfg  Config
	k1   float64
	step Step
	rot  Rotation

	// sample tables, fixed at construction
	thetaSin, thetaCos []float64
	phiSin, phiCos     []float64
}

// New validates cfg and builds a renderer. The initial rotation is
// cfg.Initial, or A=B=1 when nil.
func New(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Palette == "" {
		cfg.Palette = DefaultPalette
	}

	rot := Rotation{A: 1, B: 1}
	if cfg.Initial != nil {
		rot = *cfg.Initial
	}
	cfg.Initial = &Rotation{A: rot.A, B: rot.B}

	step := cfg.Step
	if step == (Step{}) {
		step = Step{A: cfg.Sampling.ThetaSpacing, B: cfg.Sampling.PhiSpacing}
	}

	r := &Renderer{
		cfg:  cfg,
		step: step,
		rot:  rot,
	}

	// K1 puts the torus' outer edge 3/8 of the screen from the center,
	// whatever the screen size.
	size := float64(cfg.View.ScreenSize)
	r.k1 = size * cfg.View.K2 * 3 / (8 * (cfg.Surface.R1 + cfg.Surface.R2))

	r.thetaSin, r.thetaCos = angles(cfg.Sampling.ThetaSpacing)
	r.phiSin, r.phiCos = angles(cfg.Sampling.PhiSpacing)
	return r, nil
}

// Config returns the configuration the renderer was built with.
func (r *Renderer) Config() Config {
	cfg := r.cfg
	initial := *r.cfg.Initial
	cfg.Initial = &initial
	return cfg
}

// K1 returns the projection scale.
func (r *Renderer) K1() float64 {
	return r.k1
}

// Step returns the effective per-frame rotation increment.
func (r *Renderer) Step() Step {
	return r.step
}

// Samples returns the number of surface samples per frame.
func (r *Renderer) Samples() int {
	return len(r.thetaCos) * len(r.phiCos)
}

// Rotation returns the current rotation.
func (r *Renderer) Rotation() Rotation {
	return r.rot
}

// SetRotation replaces the current rotation.
func (r *Renderer) SetRotation(rot Rotation) {
	r.rot = rot
}

// Advance moves the rotation forward by one step.
func (r *Renderer) Advance() {
	r.rot.A += r.step.A
	r.rot.B += r.step.B
}

// AdvanceBy moves the rotation forward by n steps.
func (r *Renderer) AdvanceBy(n int) {
	for i := 0; i < n; i++ {
		r.Advance()
	}
}

// Fingerprint identifies the renderer's output: two renderers with equal
// fingerprints render identical frames for equal rotations.
func (r *Renderer) Fingerprint() string {
	c := r.cfg
	return fmt.Sprintf("r1=%g r2=%g dt=%g dp=%g n=%d k2=%g pal=%q",
		c.Surface.R1, c.Surface.R2,
		c.Sampling.ThetaSpacing, c.Sampling.PhiSpacing,
		c.View.ScreenSize, c.View.K2, string(c.Palette))
}

// Frame renders the current rotation. It does not advance the rotation.
func (r *Renderer) Frame() *Frame {
	return r.Render(r.rot)
}

// Render renders the torus at rot.
func (r *Renderer) Render(rot Rotation) *Frame {
	depth := newDepthBuffer(r.cfg.View.ScreenSize)
	t := newTransform(rot)

	rows := len(r.thetaCos)
	workers := core.Min(r.cfg.Workers, rows)
	if workers <= 1 {
		r.composite(depth, t, 0, 1)
	} else {
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(first int) {
				defer wg.Done()
				r.composite(depth, t, first, workers)
			}(w)
		}
		wg.Wait()
	}

	return newFrame(depth, r.cfg.Palette, rot)
}

// composite plots every theta row first, first+stride, ... into depth.
func (r *Renderer) composite(depth *depthBuffer, t transform, first, stride int) {
	var (
		r1, r2 = r.cfg.Surface.R1, r.cfg.Surface.R2
		k2     = r.cfg.View.K2
		half   = float64(r.cfg.View.ScreenSize) / 2
		levels = r.cfg.Palette.Levels()
	)

	for i := first; i < len(r.thetaCos); i += stride {
		sinTheta, cosTheta := r.thetaSin[i], r.thetaCos[i]

		// cross-section circle before revolving
		cx := r2 + r1*cosTheta
		cy := r1 * sinTheta

		for j := range r.phiCos {
			sinPhi, cosPhi := r.phiSin[j], r.phiCos[j]

			p := t.apply(sweep(cx, cy, sinPhi, cosPhi))
			ooz := 1 / (p.z + k2)

			// y is negated: up in space is down the rows. Floor rather than
			// truncation, so samples in (-1, 0) fall off screen instead of
			// landing on row or column 0.
			xp := int(math.Floor(half + r.k1*ooz*p.x))
			yp := int(math.Floor(half - r.k1*ooz*p.y))
			if !depth.inBounds(xp, yp) {
				continue
			}

			n := t.apply(sweep(cosTheta, sinTheta, sinPhi, cosPhi))
			level := int(math.RoundToEven(8 * n.dot(light)))
			if level < 0 {
				continue
			}
			if level >= levels {
				level = levels - 1
			}

			depth.offer(xp, yp, depthKey(ooz, level))
		}
	}
}
