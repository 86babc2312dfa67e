package pointer

import (
	"math"
	"testing"
	"time"
)

func TestTargetTracksLatestPointer(t *testing.T) {
	f := NewFollower(DefaultConfig())
	moves := [][2]float64{{0, 0}, {100, 200}, {5, 3}, {640, 480}, {-20, 7.5}}
	for i, m := range moves {
		f.OnPointerMove(m[0], m[1])
		// Spring state must not leak into the target.
		for range i * 3 {
			f.Step()
		}
		x, y := f.Target()
		if x != m[0]-8 || y != m[1]-8 {
			t.Fatalf("move %v: expected target (%v,%v), got (%v,%v)", m, m[0]-8, m[1]-8, x, y)
		}
	}
}

func TestFollowerStartsAtRest(t *testing.T) {
	f := NewFollower(DefaultConfig())
	x, y := f.Position()
	if x != -8 || y != -8 {
		t.Fatalf("expected (-8,-8), got (%v,%v)", x, y)
	}
	if !f.Settled(1e-9) {
		t.Fatal("expected follower to start settled")
	}
}

func TestFollowerConvergesWithoutOvershoot(t *testing.T) {
	f := NewFollower(DefaultConfig())
	f.OnPointerMove(100, 200)

	const tolerance = 0.5
	for frame := range 60 {
		f.Step()
		x, y := f.Position()
		if x > 92+tolerance || y > 192+tolerance {
			t.Fatalf("frame %d: overshoot to (%v,%v)", frame, x, y)
		}
	}
	x, y := f.Position()
	if math.Abs(x-92) > tolerance || math.Abs(y-192) > tolerance {
		t.Fatalf("expected to settle near (92,192), got (%v,%v)", x, y)
	}
}

func TestLargeStepSettlesQuickly(t *testing.T) {
	f := NewFollower(DefaultConfig())
	f.OnPointerMove(508, 8)

	// 150ms at 60fps is 9 frames; allow a couple of percent of the step.
	for range 9 {
		f.Step()
	}
	x, _ := f.Position()
	if math.Abs(x-500) > 15 {
		t.Fatalf("expected x within 15 of 500 after 150ms, got %v", x)
	}
	for range 30 {
		f.Step()
	}
	if !f.Settled(0.5) {
		x, y := f.Position()
		t.Fatalf("expected settled after 650ms, at (%v,%v)", x, y)
	}
}

func TestHubSubscribeUnsubscribe(t *testing.T) {
	h := NewHub()
	f := NewFollower(DefaultConfig())
	var calls int
	unsubFollower := h.Subscribe(f.OnPointerMove)
	unsubCounter := h.Subscribe(func(x, y float64) { calls++ })

	h.Publish(10, 20)
	if x, y := f.Pointer(); x != 10 || y != 20 {
		t.Fatalf("expected pointer (10,20), got (%v,%v)", x, y)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	unsubFollower()
	unsubFollower()
	if h.Len() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", h.Len())
	}
	h.Publish(30, 40)
	if x, _ := f.Pointer(); x != 10 {
		t.Fatalf("expected unsubscribed follower to keep x=10, got %v", x)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}

	unsubCounter()
	if h.Len() != 0 {
		t.Fatalf("expected no subscribers, got %d", h.Len())
	}
}

func TestHubUnsubscribeDuringPublish(t *testing.T) {
	h := NewHub()
	var late int
	var unsubLate func()
	h.Subscribe(func(x, y float64) { unsubLate() })
	unsubLate = h.Subscribe(func(x, y float64) { late++ })
	h.Subscribe(func(x, y float64) {
		h.Subscribe(func(x, y float64) { late += 100 })
	})

	h.Publish(1, 1)
	if late != 0 {
		t.Fatalf("expected removed and newly added handlers to be skipped, got %d", late)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 subscribers, got %d", h.Len())
	}
}

func TestAdvanceHonoursFrameLength(t *testing.T) {
	fine := NewFollower(DefaultConfig())
	coarse := NewFollower(DefaultConfig())
	fine.OnPointerMove(300, 120)
	coarse.OnPointerMove(300, 120)

	frame := time.Second / 60
	for range 6 {
		fine.Advance(frame)
	}
	for range 2 {
		coarse.Advance(3 * frame)
	}

	fx, fy := fine.Position()
	cx, cy := coarse.Position()
	if math.Abs(fx-cx) > 1e-6 || math.Abs(fy-cy) > 1e-6 {
		t.Fatalf("expected equal positions after 100ms, got (%v,%v) and (%v,%v)", fx, fy, cx, cy)
	}
	if fx <= -8 || fx >= 292 {
		t.Fatalf("expected follower mid-flight, got x=%v", fx)
	}
}
