package pointer

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultSize      = 16
	DefaultFrequency = 40.0
	DefaultDamping   = 1.0
	DefaultFPS       = 60
)

// Config sets the follower's size and spring. Frequency is the spring's
// angular frequency and Damping its damping ratio; 1 is critical damping.
type Config struct {
	Size      float64
	Frequency float64
	Damping   float64
	FPS       int
}

// DefaultConfig returns a 16-unit follower on a critically damped spring
// that settles a 500-unit step in about 150ms.
func DefaultConfig() Config {
	return Config{
		Size:      DefaultSize,
		Frequency: DefaultFrequency,
		Damping:   DefaultDamping,
		FPS:       DefaultFPS,
	}
}

// axis indexes the spring slices.
const (
	axisX = iota
	axisY
)

// Follower trails the raw pointer with a spring so that its box stays
// centred on the pointer once settled.
type Follower struct {
	spring harmonica.Spring
	frame  time.Duration // time step spring was built for
	freq   float64
	damp   float64
	half   float64
	rawX   float64
	rawY   float64
	pos    [2]float64
	vel    [2]float64
}

// NewFollower creates a follower at rest on the target of pointer (0,0).
func NewFollower(cfg Config) *Follower {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	f := &Follower{
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		frame:  time.Second / time.Duration(cfg.FPS),
		freq:   cfg.Frequency,
		damp:   cfg.Damping,
		half:   cfg.Size / 2,
	}
	tx, ty := f.Target()
	f.pos = [2]float64{tx, ty}
	return f
}

// OnPointerMove records the latest raw pointer position. It matches
// Handler so it can subscribe to a Hub directly.
func (f *Follower) OnPointerMove(x, y float64) {
	f.rawX, f.rawY = x, y
}

// Pointer returns the last recorded raw position.
func (f *Follower) Pointer() (x, y float64) {
	return f.rawX, f.rawY
}

// Target is the position the spring pulls toward: the pointer offset by
// half the follower size on both axes.
func (f *Follower) Target() (x, y float64) {
	return f.rawX - f.half, f.rawY - f.half
}

// Advance moves the spring forward by dt. The spring is rebuilt whenever
// dt differs from the step it was last built for.
func (f *Follower) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt != f.frame {
		f.spring = harmonica.NewSpring(dt.Seconds(), f.freq, f.damp)
		f.frame = dt
	}
	f.Step()
}

// Step advances the spring by one step of its current frame length.
func (f *Follower) Step() {
	tx, ty := f.Target()
	f.step(axisX, tx)
	f.step(axisY, ty)
}

func (f *Follower) step(i int, target float64) float64 {
	p, v := f.spring.Update(f.pos[i], f.vel[i], target)
	f.pos[i] = p
	f.vel[i] = v
	return p
}

// Position returns the rendered position.
func (f *Follower) Position() (x, y float64) {
	return f.pos[axisX], f.pos[axisY]
}

// Settled reports whether the follower is within eps of its target and
// nearly still.
func (f *Follower) Settled(eps float64) bool {
	tx, ty := f.Target()
	return abs(f.pos[axisX]-tx) <= eps && abs(f.pos[axisY]-ty) <= eps &&
		abs(f.vel[axisX]) <= eps && abs(f.vel[axisY]) <= eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
