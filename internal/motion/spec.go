package motion

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSpec      = errors.New("invalid animation spec")
	ErrConflictingSpecs = errors.New("conflicting animation specs")
	ErrUnknownElement   = errors.New("unknown element")
	ErrDuplicateElement = errors.New("duplicate element")
)

// Transition describes the timing of a spec.
type Transition struct {
	Duration    time.Duration
	Delay       time.Duration
	Ease        Easing // nil means EaseInOut
	Repeat      int    // extra iterations after the first, or Infinite
	RepeatType  RepeatType
	RepeatDelay time.Duration
}

// Spec is a declarative animation: where the properties start, the
// keyframes they move through, and when.
type Spec struct {
	Name       string
	Trigger    Trigger
	Initial    Values
	Target     Keyframes
	Transition Transition
}

func (s Spec) validate() error {
	tn := s.Transition
	switch {
	case len(s.Target) == 0:
		return fmt.Errorf("%w %q: no target", ErrInvalidSpec, s.Name)
	case tn.Duration < 0:
		return fmt.Errorf("%w %q: negative duration", ErrInvalidSpec, s.Name)
	case tn.Delay < 0:
		return fmt.Errorf("%w %q: negative delay", ErrInvalidSpec, s.Name)
	case tn.RepeatDelay < 0:
		return fmt.Errorf("%w %q: negative repeat delay", ErrInvalidSpec, s.Name)
	case tn.Repeat < Infinite:
		return fmt.Errorf("%w %q: repeat %d", ErrInvalidSpec, s.Name, tn.Repeat)
	case s.Trigger < OnMount || s.Trigger >= numTriggers:
		return fmt.Errorf("%w %q: unknown trigger %d", ErrInvalidSpec, s.Name, s.Trigger)
	}
	for p, frames := range s.Target {
		if len(frames) == 0 {
			return fmt.Errorf("%w %q: property %s has no keyframes", ErrInvalidSpec, s.Name, p)
		}
	}
	return nil
}

// Finite reports whether the spec eventually settles.
func (s Spec) Finite() bool {
	return s.Transition.Repeat != Infinite
}

// playhead maps time since the spec started (after its delay) to a position
// in [0,1] within the current iteration, and whether the spec has finished.
func (tn Transition) playhead(t time.Duration) (float64, bool) {
	if tn.Duration <= 0 {
		return tn.endPosition(), tn.Repeat != Infinite
	}
	period := tn.Duration + tn.RepeatDelay
	iter := int(t / period)
	if tn.Repeat != Infinite && iter > tn.Repeat {
		return tn.endPosition(), true
	}

	local := t - time.Duration(iter)*period
	p := 1.0
	if local < tn.Duration {
		p = float64(local) / float64(tn.Duration)
	}
	if tn.RepeatType == RepeatReverse && iter%2 == 1 {
		p = 1 - p
	}
	done := tn.Repeat != Infinite && iter == tn.Repeat && local >= tn.Duration
	return p, done
}

// endPosition is where a finite spec rests: reversed specs with an odd
// repeat count end back at their first keyframe.
func (tn Transition) endPosition() float64 {
	if tn.RepeatType == RepeatReverse && tn.Repeat > 0 && tn.Repeat%2 == 1 {
		return 0
	}
	return 1
}

func (tn Transition) ease() Easing {
	if tn.Ease == nil {
		return EaseInOut
	}
	return tn.Ease
}

// track is a spec compiled for sampling. offset shifts the spec's start,
// which is how group stagger reaches a child without touching its spec.
type track struct {
	spec   Spec
	props  []Property
	frames [][]float64
	offset time.Duration
}

func compile(s Spec) *track {
	tr := &track{spec: s, props: s.Target.properties()}
	tr.frames = make([][]float64, len(tr.props))
	for i, p := range tr.props {
		kf := s.Target[p]
		if len(kf) == 1 {
			from := p.Default()
			if v, ok := s.Initial[p]; ok {
				from = v
			}
			kf = []float64{from, kf[0]}
		}
		tr.frames[i] = kf
	}
	return tr
}

// start is the time, relative to the trigger, at which the track begins moving.
func (tr *track) start() time.Duration {
	return tr.offset + tr.spec.Transition.Delay
}

// sample writes every property of the track at time t since the trigger
// into out and reports whether the track has finished.
func (tr *track) sample(t time.Duration, out Values) bool {
	t -= tr.start()
	if t < 0 {
		for i, p := range tr.props {
			out[p] = tr.frames[i][0]
		}
		return false
	}
	pos, done := tr.spec.Transition.playhead(t)
	ease := tr.spec.Transition.ease()
	for i, p := range tr.props {
		out[p] = interpolate(tr.frames[i], pos, ease)
	}
	return done
}

func (tr *track) finished(t time.Duration) bool {
	t -= tr.start()
	if t < 0 {
		return false
	}
	_, done := tr.spec.Transition.playhead(t)
	return done
}

// interpolate places pos along evenly spaced keyframes, easing each segment.
func interpolate(frames []float64, pos float64, ease Easing) float64 {
	n := len(frames)
	if n == 1 {
		return frames[0]
	}
	at := pos * float64(n-1)
	i := int(at)
	if i >= n-1 {
		return frames[n-1]
	}
	if i < 0 {
		return frames[0]
	}
	f := ease(at - float64(i))
	return frames[i] + (frames[i+1]-frames[i])*f
}
