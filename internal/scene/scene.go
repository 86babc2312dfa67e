package scene

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/olivier-w/lumen/internal/motion"
	"github.com/olivier-w/lumen/internal/particles"
	"github.com/olivier-w/lumen/internal/pointer"
)

// Phase gates the entrance chain. It moves from NotMounted to Mounted once.
type Phase uint8

const (
	NotMounted Phase = iota
	Mounted
)

// String returns the name of the phase.
func (p Phase) String() string {
	if p == Mounted {
		return "mounted"
	}
	return "not mounted"
}

// Config sizes the scene.
type Config struct {
	Particles int
	Follower  pointer.Config
	Seed      uint64
}

// Frame is what the renderer paints for one tick.
type Frame struct {
	Phase     Phase
	Bounds    particles.Bounds
	Particles []particles.Particle
	Follower  particles.Point // top-left of the follower box
	Size      float64         // follower box edge
	Pointer   particles.Point
	Values    map[string]motion.Values
}

// Scene owns the particle field, pointer follower and animation sequencer
// and drives them from one clock. All methods run on the caller's
// goroutine; nothing runs in the background.
type Scene struct {
	cfg         Config
	phase       Phase
	torn        bool
	viewport    particles.Bounds
	rng         *rand.Rand
	field       *particles.Field
	hub         *pointer.Hub
	follower    *pointer.Follower
	unsubscribe func()
	seq         *motion.Sequencer
}

// New validates the animation graph and prepares an unmounted scene.
func New(cfg Config, elements []motion.Element, groups []motion.Group) (*Scene, error) {
	seq, err := motion.New(elements, groups)
	if err != nil {
		return nil, fmt.Errorf("build sequencer: %w", err)
	}
	if cfg.Particles < 0 {
		cfg.Particles = 0
	}
	return &Scene{
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		hub:      pointer.NewHub(),
		follower: pointer.NewFollower(cfg.Follower),
		seq:      seq,
	}, nil
}

// Phase returns the lifecycle phase.
func (s *Scene) Phase() Phase { return s.phase }

// Running reports whether the scene is mounted and not torn down.
func (s *Scene) Running() bool { return s.phase == Mounted && !s.torn }

// Closed reports whether Teardown has been called.
func (s *Scene) Closed() bool { return s.torn }

// Hub is the pointer-move source the follower subscribes to.
func (s *Scene) Hub() *pointer.Hub { return s.hub }

// Sequencer exposes the animation sequencer for inspection.
func (s *Scene) Sequencer() *motion.Sequencer { return s.seq }

// Mount creates the particles, subscribes the follower and starts the
// entrance chain. Only the first call has any effect.
func (s *Scene) Mount() {
	if s.phase == Mounted || s.torn {
		return
	}
	s.phase = Mounted
	s.field = particles.New(s.cfg.Particles, s.viewport, s.rng)
	s.unsubscribe = s.hub.Subscribe(s.follower.OnPointerMove)
	s.seq.Mount()
	log.Printf("scene mounted: %d particles, bounds %.0fx%.0f",
		s.field.Len(), s.field.Bounds().Width, s.field.Bounds().Height)
}

// Teardown drops the pointer subscription and halts every loop. The scene
// cannot be mounted again.
func (s *Scene) Teardown() {
	if s.torn {
		return
	}
	s.torn = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.seq.Stop()
	s.field = nil
	log.Printf("scene torn down")
}

// Resize records the measured viewport. Unmeasured sizes leave particles
// on the default bounds.
func (s *Scene) Resize(b particles.Bounds) {
	s.viewport = b
	if s.field != nil {
		s.field.Resize(b)
	}
}

// PointerMove publishes a pointer position to subscribers.
func (s *Scene) PointerMove(x, y float64) {
	if s.torn {
		return
	}
	s.hub.Publish(x, y)
}

// Hover forwards hover-enter (on) or hover-exit to the sequencer.
func (s *Scene) Hover(name string, on bool) {
	if s.torn {
		return
	}
	s.seq.Hover(name, on)
}

// Press forwards press or release to the sequencer.
func (s *Scene) Press(name string, on bool) {
	if s.torn {
		return
	}
	s.seq.Press(name, on)
}

// Hovered reports whether the sequencer considers name hovered.
func (s *Scene) Hovered(name string) bool { return s.seq.Hovered(name) }

// Advance moves every subsystem forward by one tick of dt.
func (s *Scene) Advance(dt time.Duration) {
	if s.torn {
		return
	}
	if s.field != nil {
		s.field.Advance(dt)
	}
	s.follower.Advance(dt)
	s.seq.Advance(dt)
}

// Frame snapshots the scene for rendering.
func (s *Scene) Frame() Frame {
	fx, fy := s.follower.Position()
	px, py := s.follower.Pointer()
	f := Frame{
		Phase:    s.phase,
		Bounds:   s.viewport,
		Follower: particles.Point{X: fx, Y: fy},
		Size:     s.cfg.Follower.Size,
		Pointer:  particles.Point{X: px, Y: py},
		Values:   s.seq.Snapshot(),
	}
	if s.field != nil {
		f.Bounds = s.field.Bounds()
		f.Particles = s.field.Particles()
	}
	return f
}
