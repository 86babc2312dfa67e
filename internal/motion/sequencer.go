package motion

import (
	"fmt"
	"time"
)

// Element is a named animated node. Hover and press on an element also
// drive the specs of its descendants.
type Element struct {
	Name   string
	Parent string
	Specs  []Spec
}

// Group staggers the entrance of its children once the sequencer mounts.
// Name is the element that owns the group.
type Group struct {
	Name            string
	DelayChildren   time.Duration
	StaggerChildren time.Duration
	Children        []string
}

// EntranceState is the lifecycle of a group's entrance chain.
type EntranceState int

const (
	Hidden EntranceState = iota
	Entering
	Settled
)

// String returns the name of the state.
func (s EntranceState) String() string {
	switch s {
	case Entering:
		return "entering"
	case Settled:
		return "settled"
	default:
		return "hidden"
	}
}

// gesture tracks one on/off trigger. Requests are latched until the next
// Advance, and an off request wins over an on request in the same tick.
type gesture struct {
	active bool
	since  time.Duration
	on     bool
	off    bool
}

func (g *gesture) request(on bool) {
	if on {
		g.on = true
	} else {
		g.off = true
	}
}

func (g *gesture) resolve(now time.Duration) {
	on, off := g.on, g.off
	g.on, g.off = false, false
	switch {
	case off:
		g.active = false
	case on && !g.active:
		g.active = true
		g.since = now
	}
}

type node struct {
	name    string
	parent  *node
	tracks  [numTriggers][]*track
	base    Values
	hover   gesture
	press   gesture
	grouped bool
}

// source returns the nearest gesture on the node or an ancestor that is active.
func (n *node) source(pick func(*node) *gesture) (*gesture, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if g := pick(cur); g.active {
			return g, true
		}
	}
	return nil, false
}

func hoverOf(n *node) *gesture { return &n.hover }
func pressOf(n *node) *gesture { return &n.press }

// Sequencer interprets every element's specs against one clock.
// It is driven from a single goroutine and does no locking.
type Sequencer struct {
	nodes     map[string]*node
	order     []string
	groups    map[string][]*node
	now       time.Duration
	mounted   bool
	mountedAt time.Duration
	stopped   bool
}

// New compiles elements and groups into a sequencer. Configuration
// mistakes are reported here so nothing can fail while animating.
func New(elements []Element, groups []Group) (*Sequencer, error) {
	s := &Sequencer{
		nodes:  make(map[string]*node, len(elements)),
		groups: make(map[string][]*node, len(groups)),
	}

	for _, e := range elements {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: element without a name", ErrInvalidSpec)
		}
		if _, dup := s.nodes[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateElement, e.Name)
		}
		n, err := compileElement(e)
		if err != nil {
			return nil, err
		}
		s.nodes[e.Name] = n
		s.order = append(s.order, e.Name)
	}

	for _, e := range elements {
		if e.Parent == "" {
			continue
		}
		parent, ok := s.nodes[e.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent %q of %q", ErrUnknownElement, e.Parent, e.Name)
		}
		s.nodes[e.Name].parent = parent
	}
	for _, name := range s.order {
		steps := 0
		for cur := s.nodes[name]; cur != nil; cur = cur.parent {
			if steps > len(s.nodes) {
				return nil, fmt.Errorf("%w: parent cycle through %q", ErrInvalidSpec, name)
			}
			steps++
		}
	}

	for _, g := range groups {
		owner, ok := s.nodes[g.Name]
		if !ok {
			return nil, fmt.Errorf("%w: group %q", ErrUnknownElement, g.Name)
		}
		if g.DelayChildren < 0 || g.StaggerChildren < 0 {
			return nil, fmt.Errorf("%w: group %q has negative timing", ErrInvalidSpec, g.Name)
		}
		members := []*node{owner}
		for i, child := range g.Children {
			n, ok := s.nodes[child]
			if !ok {
				return nil, fmt.Errorf("%w: child %q of group %q", ErrUnknownElement, child, g.Name)
			}
			if n.grouped {
				return nil, fmt.Errorf("%w: %q belongs to more than one group", ErrInvalidSpec, child)
			}
			n.grouped = true
			offset := g.DelayChildren + time.Duration(i)*g.StaggerChildren
			for _, tr := range n.tracks[OnMount] {
				// Looping mount specs are ambient and start at mount.
				if tr.spec.Finite() {
					tr.offset = offset
				}
			}
			members = append(members, n)
		}
		s.groups[g.Name] = members
	}

	return s, nil
}

func compileElement(e Element) (*node, error) {
	n := &node{name: e.Name, base: Values{}}
	var seen [numTriggers]map[Property]string
	for _, spec := range e.Specs {
		if err := spec.validate(); err != nil {
			return nil, fmt.Errorf("element %q: %w", e.Name, err)
		}
		if seen[spec.Trigger] == nil {
			seen[spec.Trigger] = make(map[Property]string)
		}
		for p := range spec.Target {
			if other, dup := seen[spec.Trigger][p]; dup {
				return nil, fmt.Errorf("%w: element %q animates %s on %s in both %q and %q",
					ErrConflictingSpecs, e.Name, p, spec.Trigger, other, spec.Name)
			}
			seen[spec.Trigger][p] = spec.Name
		}

		tr := compile(spec)
		for i, p := range tr.props {
			if _, set := n.base[p]; set {
				continue
			}
			if v, ok := spec.Initial[p]; ok {
				n.base[p] = v
			} else if spec.Trigger == OnMount {
				n.base[p] = tr.frames[i][0]
			} else {
				n.base[p] = p.Default()
			}
		}
		n.tracks[spec.Trigger] = append(n.tracks[spec.Trigger], tr)
	}
	return n, nil
}

// Mount starts every mount-triggered spec. Only the first call counts.
func (s *Sequencer) Mount() {
	if s.mounted || s.stopped {
		return
	}
	s.mounted = true
	s.mountedAt = s.now
}

// Mounted reports whether Mount has been called.
func (s *Sequencer) Mounted() bool { return s.mounted }

// Stop halts all animation, looping specs included. Values freeze at the
// last tick and Active reports zero from then on.
func (s *Sequencer) Stop() { s.stopped = true }

// Stopped reports whether Stop has been called.
func (s *Sequencer) Stopped() bool { return s.stopped }

// Now returns the sequencer clock.
func (s *Sequencer) Now() time.Duration { return s.now }

// Advance resolves gestures requested since the last tick and moves the
// clock forward by dt.
func (s *Sequencer) Advance(dt time.Duration) {
	if s.stopped {
		return
	}
	for _, name := range s.order {
		n := s.nodes[name]
		n.hover.resolve(s.now)
		n.press.resolve(s.now)
	}
	if dt > 0 {
		s.now += dt
	}
}

// Hover requests hover-enter (on) or hover-exit for an element. The request
// takes effect on the next Advance. Unknown names are ignored.
func (s *Sequencer) Hover(name string, on bool) {
	if n, ok := s.nodes[name]; ok {
		n.hover.request(on)
	}
}

// Press requests press or release for an element, like Hover.
func (s *Sequencer) Press(name string, on bool) {
	if n, ok := s.nodes[name]; ok {
		n.press.request(on)
	}
}

// Hovered reports whether the element's own hover is active.
func (s *Sequencer) Hovered(name string) bool {
	n, ok := s.nodes[name]
	return ok && n.hover.active
}

// Pressed reports whether the element's own press is active.
func (s *Sequencer) Pressed(name string) bool {
	n, ok := s.nodes[name]
	return ok && n.press.active
}

// Names returns element names in declaration order.
func (s *Sequencer) Names() []string {
	return append([]string(nil), s.order...)
}

// Values returns the current property values of an element. Layers apply
// in order Initial, mount, hover, press; later layers win per property.
func (s *Sequencer) Values(name string) Values {
	n, ok := s.nodes[name]
	if !ok {
		return Values{}
	}
	out := n.base.Clone()
	if s.mounted {
		for _, tr := range n.tracks[OnMount] {
			tr.sample(s.now-s.mountedAt, out)
		}
	}
	if g, ok := n.source(hoverOf); ok {
		for _, tr := range n.tracks[OnHover] {
			tr.sample(s.now-g.since, out)
		}
	}
	if g, ok := n.source(pressOf); ok {
		for _, tr := range n.tracks[OnPress] {
			tr.sample(s.now-g.since, out)
		}
	}
	return out
}

// Snapshot returns the values of every element.
func (s *Sequencer) Snapshot() map[string]Values {
	out := make(map[string]Values, len(s.nodes))
	for _, name := range s.order {
		out[name] = s.Values(name)
	}
	return out
}

// ActiveTracks counts the specs of one element that are currently engaged:
// started by their trigger and not yet finished.
func (s *Sequencer) ActiveTracks(name string) int {
	n, ok := s.nodes[name]
	if !ok || s.stopped {
		return 0
	}
	count := 0
	if s.mounted {
		for _, tr := range n.tracks[OnMount] {
			if !tr.finished(s.now - s.mountedAt) {
				count++
			}
		}
	}
	if g, ok := n.source(hoverOf); ok {
		for _, tr := range n.tracks[OnHover] {
			if !tr.finished(s.now - g.since) {
				count++
			}
		}
	}
	if g, ok := n.source(pressOf); ok {
		for _, tr := range n.tracks[OnPress] {
			if !tr.finished(s.now - g.since) {
				count++
			}
		}
	}
	return count
}

// Active counts engaged specs across all elements.
func (s *Sequencer) Active() int {
	total := 0
	for _, name := range s.order {
		total += s.ActiveTracks(name)
	}
	return total
}

// EntranceState reports where a group is in its entrance chain. Looping
// mount specs are ambient and do not hold a group in Entering.
func (s *Sequencer) EntranceState(group string) EntranceState {
	members, ok := s.groups[group]
	if !ok || !s.mounted {
		return Hidden
	}
	t := s.now - s.mountedAt
	for _, n := range members {
		for _, tr := range n.tracks[OnMount] {
			if tr.spec.Finite() && !tr.finished(t) {
				return Entering
			}
		}
	}
	return Settled
}

// EntranceStart returns the clock time at which the element's first finite
// mount spec starts moving. It reports false before mount or when the
// element has no entrance.
func (s *Sequencer) EntranceStart(name string) (time.Duration, bool) {
	n, ok := s.nodes[name]
	if !ok || !s.mounted {
		return 0, false
	}
	found := false
	var first time.Duration
	for _, tr := range n.tracks[OnMount] {
		if !tr.spec.Finite() {
			continue
		}
		if !found || tr.start() < first {
			first = tr.start()
			found = true
		}
	}
	return s.mountedAt + first, found
}
