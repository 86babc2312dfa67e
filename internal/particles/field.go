package particles

import (
	"math/rand/v2"
	"time"
)

const (
	DefaultCount = 50
	MinCycle     = 10 * time.Second
	MaxCycle     = 30 * time.Second
)

// DefaultBounds stands in for the viewport until it can be measured.
var DefaultBounds = Bounds{Width: 1000, Height: 1000}

// Point is a position in viewport units.
type Point struct {
	X, Y float64
}

func (p Point) scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Bounds is the drift area, anchored at the origin.
type Bounds struct {
	Width, Height float64
}

// Measured reports whether the bounds describe a real viewport.
func (b Bounds) Measured() bool {
	return b.Width > 0 && b.Height > 0
}

// Contains reports whether p lies within [0,Width]×[0,Height].
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

func (b Bounds) orDefault() Bounds {
	if b.Measured() {
		return b
	}
	return DefaultBounds
}

// Particle drifts linearly from From to Target over Duration.
type Particle struct {
	ID       int
	Pos      Point
	From     Point
	Target   Point
	Duration time.Duration
	Elapsed  time.Duration
	Phase    float64 // fraction of the first cycle skipped at creation
}

// Field is a fixed set of particles, each always travelling toward a
// random target. It is driven from a single goroutine.
type Field struct {
	particles []Particle
	bounds    Bounds
	rng       *rand.Rand
}

// New allocates count particles at independent uniform positions within
// bounds. Unmeasured bounds fall back to DefaultBounds.
func New(count int, bounds Bounds, rng *rand.Rand) *Field {
	if count < 0 {
		count = 0
	}
	f := &Field{
		particles: make([]Particle, count),
		bounds:    bounds.orDefault(),
		rng:       rng,
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.ID = i
		p.Pos = f.randomPoint()
		p.From = p.Pos
		p.Target = f.randomPoint()
		p.Phase = rng.Float64()
		p.Duration = time.Duration(float64(f.randomCycle()) * (1 - p.Phase))
		if p.Duration <= 0 {
			p.Duration = time.Millisecond
		}
	}
	return f
}

// Resize changes the drift area. Particles in flight are scaled into the
// new bounds along with their endpoints, so a viewport measured after
// creation replaces the fallback at once.
func (f *Field) Resize(b Bounds) {
	b = b.orDefault()
	if b == f.bounds {
		return
	}
	sx, sy := b.Width/f.bounds.Width, b.Height/f.bounds.Height
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos = p.Pos.scale(sx, sy)
		p.From = p.From.scale(sx, sy)
		p.Target = p.Target.scale(sx, sy)
	}
	f.bounds = b
}

// Bounds returns the bounds in use.
func (f *Field) Bounds() Bounds { return f.bounds }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Particles returns the live particle slice. Callers must not modify it.
func (f *Field) Particles() []Particle { return f.particles }

// Advance moves every particle by dt. A particle whose cycle completes is
// given a fresh target and duration at once, carrying over leftover time.
func (f *Field) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.Elapsed += dt
		for p.Elapsed >= p.Duration {
			p.Elapsed -= p.Duration
			f.retarget(p)
		}
		t := float64(p.Elapsed) / float64(p.Duration)
		p.Pos = Point{
			X: p.From.X + (p.Target.X-p.From.X)*t,
			Y: p.From.Y + (p.Target.Y-p.From.Y)*t,
		}
	}
}

func (f *Field) retarget(p *Particle) {
	p.From = p.Target
	p.Target = f.randomPoint()
	p.Duration = f.randomCycle()
}

func (f *Field) randomPoint() Point {
	return Point{
		X: f.rng.Float64() * f.bounds.Width,
		Y: f.rng.Float64() * f.bounds.Height,
	}
}

func (f *Field) randomCycle() time.Duration {
	return MinCycle + time.Duration(f.rng.Float64()*float64(MaxCycle-MinCycle))
}
