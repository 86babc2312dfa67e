package particles

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewCreatesExactCountWithinBounds(t *testing.T) {
	bounds := Bounds{Width: 640, Height: 384}
	for _, n := range []int{0, 1, 7, 50, 500} {
		f := New(n, bounds, newRNG())
		if f.Len() != n {
			t.Fatalf("expected %d particles, got %d", n, f.Len())
		}
		for _, p := range f.Particles() {
			if !bounds.Contains(p.Pos) || !bounds.Contains(p.Target) {
				t.Fatalf("particle %d outside bounds: %+v", p.ID, p)
			}
		}
	}
}

func TestNegativeCountYieldsEmptyField(t *testing.T) {
	if f := New(-3, Bounds{Width: 10, Height: 10}, newRNG()); f.Len() != 0 {
		t.Fatalf("expected empty field, got %d", f.Len())
	}
}

func TestIDsAreStableIndexes(t *testing.T) {
	f := New(DefaultCount, Bounds{}, newRNG())
	f.Advance(45 * time.Second)
	for i, p := range f.Particles() {
		if p.ID != i {
			t.Fatalf("expected id %d, got %d", i, p.ID)
		}
	}
}

func TestUnmeasuredViewportFallsBackToDefault(t *testing.T) {
	f := New(DefaultCount, Bounds{}, newRNG())
	if f.Bounds() != DefaultBounds {
		t.Fatalf("expected %v, got %v", DefaultBounds, f.Bounds())
	}
	for _, p := range f.Particles() {
		if !DefaultBounds.Contains(p.Pos) {
			t.Fatalf("particle %d outside fallback bounds: %+v", p.ID, p.Pos)
		}
	}

	f.Resize(Bounds{Width: -1, Height: 200})
	if f.Bounds() != DefaultBounds {
		t.Fatalf("expected fallback on bad resize, got %v", f.Bounds())
	}
}

func TestCycleDurationsStayInRange(t *testing.T) {
	f := New(DefaultCount, Bounds{Width: 800, Height: 600}, newRNG())
	for range 2000 {
		f.Advance(time.Second / 4)
		for _, p := range f.Particles() {
			if p.Duration > MaxCycle {
				t.Fatalf("particle %d duration %v above max", p.ID, p.Duration)
			}
			if p.Elapsed >= p.Duration {
				t.Fatalf("particle %d idle: elapsed %v duration %v", p.ID, p.Elapsed, p.Duration)
			}
		}
	}
	for _, p := range f.Particles() {
		if p.Duration < MinCycle {
			t.Fatalf("particle %d duration %v below min after retargeting", p.ID, p.Duration)
		}
	}
}

func TestRetargetStartsFromPreviousTarget(t *testing.T) {
	f := New(1, Bounds{Width: 100, Height: 100}, newRNG())
	p := f.Particles()[0]
	target := p.Target

	f.Advance(p.Duration - p.Elapsed)
	got := f.Particles()[0]
	if got.From != target {
		t.Fatalf("expected new cycle to start at %v, got %v", target, got.From)
	}
	if got.Pos != target {
		t.Fatalf("expected position %v at the boundary, got %v", target, got.Pos)
	}
}

func TestResizeAffectsNewTargets(t *testing.T) {
	f := New(DefaultCount, Bounds{Width: 1000, Height: 1000}, newRNG())
	small := Bounds{Width: 50, Height: 20}
	f.Resize(small)
	f.Advance(MaxCycle + time.Second)
	for _, p := range f.Particles() {
		if !small.Contains(p.Target) {
			t.Fatalf("particle %d target %v outside resized bounds", p.ID, p.Target)
		}
	}
}

func TestResizeMovesParticlesInFlight(t *testing.T) {
	f := New(DefaultCount, Bounds{}, newRNG())
	if f.Bounds() != DefaultBounds {
		t.Fatalf("expected fallback bounds, got %v", f.Bounds())
	}
	measured := Bounds{Width: 640, Height: 368}
	f.Resize(measured)
	check := func(when string) {
		t.Helper()
		for _, p := range f.Particles() {
			if !measured.Contains(p.Pos) || !measured.Contains(p.From) || !measured.Contains(p.Target) {
				t.Fatalf("%s: particle %d outside %v: pos %v from %v target %v",
					when, p.ID, measured, p.Pos, p.From, p.Target)
			}
		}
	}
	check("after resize")
	for range 30 {
		f.Advance(time.Second)
		check("while drifting")
	}
}

func TestResizeKeepsMotionLinear(t *testing.T) {
	f := New(1, Bounds{Width: 100, Height: 100}, newRNG())
	f.Advance(time.Second)
	f.Resize(Bounds{Width: 50, Height: 200})
	p := f.Particles()[0]
	u := float64(p.Elapsed) / float64(p.Duration)
	wantX := p.From.X + (p.Target.X-p.From.X)*u
	wantY := p.From.Y + (p.Target.Y-p.From.Y)*u
	if math.Abs(p.Pos.X-wantX) > 1e-9 || math.Abs(p.Pos.Y-wantY) > 1e-9 {
		t.Fatalf("expected position on the scaled path (%v,%v), got %v", wantX, wantY, p.Pos)
	}
}

func TestMovementIsLinear(t *testing.T) {
	f := New(1, Bounds{Width: 100, Height: 100}, newRNG())
	p := f.Particles()[0]
	half := (p.Duration - p.Elapsed) / 2
	f.Advance(half)
	got := f.Particles()[0]
	t0 := float64(got.Elapsed) / float64(got.Duration)
	wantX := p.From.X + (p.Target.X-p.From.X)*t0
	if diff := got.Pos.X - wantX; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected x %v, got %v", wantX, got.Pos.X)
	}
}
