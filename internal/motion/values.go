package motion

import "sort"

// Property names an animatable channel of an element.
type Property string

const (
	Opacity Property = "opacity"
	X       Property = "x"
	Y       Property = "y"
	Scale   Property = "scale"
	Rotate  Property = "rotate"
	Width   Property = "width" // fraction of the owner's width, 0..1
	Shift   Property = "shift" // gradient or sweep position in percent
	Glow    Property = "glow"  // halo strength, 0..1
)

// Default is the resting value of a property nobody has set.
func (p Property) Default() float64 {
	switch p {
	case Opacity, Scale:
		return 1
	default:
		return 0
	}
}

// Values holds one value per property.
type Values map[Property]float64

// Get returns the value of p, or its default when unset.
func (v Values) Get(p Property) float64 {
	if x, ok := v[p]; ok {
		return x
	}
	return p.Default()
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for p, x := range v {
		out[p] = x
	}
	return out
}

// Keyframes lists the values a property passes through. A single entry
// animates from the spec's Initial value (or the default) to that entry.
type Keyframes map[Property][]float64

func (k Keyframes) properties() []Property {
	props := make([]Property, 0, len(k))
	for p := range k {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })
	return props
}
