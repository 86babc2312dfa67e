package scene

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/olivier-w/lumen/internal/motion"
	"github.com/olivier-w/lumen/internal/particles"
	"github.com/olivier-w/lumen/internal/pointer"
)

const tick = time.Second / 60

func newLanding(t *testing.T) *Scene {
	t.Helper()
	elements, groups := Landing(rand.New(rand.NewPCG(7, 7)))
	s, err := New(Config{
		Particles: particles.DefaultCount,
		Follower:  pointer.DefaultConfig(),
		Seed:      42,
	}, elements, groups)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func run(s *Scene, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		s.Advance(tick)
	}
}

func TestLandingGraphIsValid(t *testing.T) {
	s := newLanding(t)
	for _, target := range HoverTargets() {
		if got := s.Sequencer().Values(target.Name); len(got) == 0 {
			t.Fatalf("hover target %q has no animated values", target.Name)
		}
	}
}

func TestMountTransitionsOnce(t *testing.T) {
	s := newLanding(t)
	if s.Phase() != NotMounted || s.Running() {
		t.Fatal("expected unmounted scene")
	}
	s.Mount()
	if s.Phase() != Mounted || !s.Running() {
		t.Fatal("expected mounted scene")
	}
	s.Mount()
	if s.Hub().Len() != 1 {
		t.Fatalf("expected a single follower subscription, got %d", s.Hub().Len())
	}
}

func TestUnmeasuredViewportUsesDefaultBounds(t *testing.T) {
	s := newLanding(t)
	s.Mount()
	f := s.Frame()
	if f.Bounds != particles.DefaultBounds {
		t.Fatalf("expected fallback bounds, got %v", f.Bounds)
	}
	if len(f.Particles) != particles.DefaultCount {
		t.Fatalf("expected %d particles, got %d", particles.DefaultCount, len(f.Particles))
	}
	for _, p := range f.Particles {
		if !particles.DefaultBounds.Contains(p.Pos) {
			t.Fatalf("particle %d outside (0,0)-(1000,1000): %v", p.ID, p.Pos)
		}
	}
}

func TestMeasuredViewportBeforeMount(t *testing.T) {
	s := newLanding(t)
	b := particles.Bounds{Width: 640, Height: 384}
	s.Resize(b)
	s.Mount()
	for _, p := range s.Frame().Particles {
		if !b.Contains(p.Pos) {
			t.Fatalf("particle %d outside measured bounds: %v", p.ID, p.Pos)
		}
	}
}

func TestPointerScenarioConverges(t *testing.T) {
	s := newLanding(t)
	s.Mount()
	s.PointerMove(100, 200)

	const tolerance = 0.5
	for range 30 {
		s.Advance(tick)
		f := s.Frame()
		if f.Follower.X > 92+tolerance || f.Follower.Y > 192+tolerance {
			t.Fatalf("follower overshot to %v", f.Follower)
		}
	}
	f := s.Frame()
	if math.Abs(f.Follower.X-92) > tolerance || math.Abs(f.Follower.Y-192) > tolerance {
		t.Fatalf("expected follower near (92,192), got %v", f.Follower)
	}
}

func TestPointerIgnoredBeforeMount(t *testing.T) {
	s := newLanding(t)
	s.PointerMove(100, 200)
	if f := s.Frame(); f.Pointer != (particles.Point{}) {
		t.Fatalf("expected pointer to default to origin, got %v", f.Pointer)
	}
}

func TestTeardownReleasesEverything(t *testing.T) {
	s := newLanding(t)
	s.Mount()
	s.Hover(CTAs[0].Name, true)
	run(s, time.Second)
	if s.Sequencer().Active() == 0 {
		t.Fatal("expected running animations before teardown")
	}

	s.Teardown()
	if s.Hub().Len() != 0 {
		t.Fatalf("expected no pointer subscriptions after teardown, got %d", s.Hub().Len())
	}
	if s.Running() {
		t.Fatal("expected scene to stop running")
	}
	if got := s.Sequencer().Active(); got != 0 {
		t.Fatalf("expected loops halted, got %d active", got)
	}
	if got := s.Frame().Particles; got != nil {
		t.Fatalf("expected particles dropped, got %d", len(got))
	}

	now := s.Sequencer().Now()
	s.Advance(tick)
	s.PointerMove(5, 5)
	if s.Sequencer().Now() != now {
		t.Fatal("expected clock frozen after teardown")
	}
	s.Mount()
	if s.Running() {
		t.Fatal("expected torn-down scene to stay down")
	}
}

func TestHeroStaggerCascade(t *testing.T) {
	s := newLanding(t)
	s.Mount()
	seq := s.Sequencer()
	names := []string{HeroTitle, HeroTagline, HeroCTAs, HeroContact}
	var prev time.Duration
	for i, name := range names {
		start, ok := seq.EntranceStart(name)
		if !ok {
			t.Fatalf("expected %s to have an entrance", name)
		}
		if i > 0 && start-prev != 200*time.Millisecond {
			t.Fatalf("%s: expected 200ms after previous, got %v", name, start-prev)
		}
		prev = start
	}
	if first, _ := seq.EntranceStart(HeroTitle); first != 300*time.Millisecond {
		t.Fatalf("expected first child at 300ms, got %v", first)
	}

	run(s, 2*time.Second)
	if got := seq.EntranceState(Hero); got != motion.Settled {
		t.Fatalf("expected hero settled, got %v", got)
	}
	if got := seq.EntranceState(Nav); got != motion.Settled {
		t.Fatalf("expected nav settled, got %v", got)
	}
}

func TestCTAHoverJitterLeavesNoResidue(t *testing.T) {
	s := newLanding(t)
	s.Mount()
	run(s, 2*time.Second)
	cta := CTAs[1]
	parts := []string{cta.Name, cta.Body(), cta.Shimmer(), cta.IconName(), cta.Sheen(), cta.Ring(), cta.Sparkle(3)}
	before := make(map[string]motion.Values, len(parts))
	for _, p := range parts {
		before[p] = s.Sequencer().Values(p)
	}

	s.Hover(cta.Name, true)
	s.Hover(cta.Name, false)
	s.Advance(tick)

	for _, p := range parts {
		got := s.Sequencer().Values(p)
		for prop, want := range before[p] {
			if got[prop] != want {
				t.Fatalf("%s.%s: expected %v, got %v", p, prop, want, got[prop])
			}
		}
	}
}

func TestCTAHoverStartsBurstOnce(t *testing.T) {
	s := newLanding(t)
	s.Mount()
	cta := CTAs[0]
	s.Hover(cta.Name, true)
	s.Advance(tick)
	seq := s.Sequencer()

	count := func() int {
		n := 0
		for i := range SparklesPerCTA {
			n += seq.ActiveTracks(cta.Sparkle(i))
		}
		return n
	}
	if got := count(); got != SparklesPerCTA {
		t.Fatalf("expected %d sparkle tracks, got %d", SparklesPerCTA, got)
	}
	s.Hover(cta.Name, true)
	s.Advance(tick)
	if got := count(); got != SparklesPerCTA {
		t.Fatalf("expected repeated enter to keep %d tracks, got %d", SparklesPerCTA, got)
	}
}
