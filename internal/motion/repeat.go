package motion

// Infinite repeats a transition for as long as its trigger holds.
const Infinite = -1

// RepeatType selects how a repeating transition plays its next iteration.
type RepeatType int

const (
	RepeatRestart RepeatType = iota
	RepeatReverse
)

// String returns the name of the repeat type.
func (r RepeatType) String() string {
	switch r {
	case RepeatReverse:
		return "reverse"
	default:
		return "restart"
	}
}

// Trigger is the lifecycle event a spec is bound to.
type Trigger int

const (
	OnMount Trigger = iota
	OnHover
	OnPress

	numTriggers
)

// String returns the name of the trigger.
func (t Trigger) String() string {
	switch t {
	case OnMount:
		return "mount"
	case OnHover:
		return "hover"
	case OnPress:
		return "press"
	default:
		return "unknown"
	}
}
