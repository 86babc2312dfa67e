package canvas

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Profile is the colour depth the terminal supports.
type Profile = termenv.Profile

const (
	ProfileNone      = termenv.Ascii
	ProfileANSI16    = termenv.ANSI
	ProfileANSI256   = termenv.ANSI256
	ProfileTrueColor = termenv.TrueColor
)

var seqCache sync.Map

// DetectProfile returns the profile lipgloss detected for stdout, which
// honours NO_COLOR, CLICOLOR_FORCE and the terminal's capabilities.
func DetectProfile() Profile {
	return lipgloss.ColorProfile()
}

// Hex parses a #RRGGBB colour, falling back to white on malformed input.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Fade mixes c toward bg as opacity drops from 1 to 0.
func Fade(c, bg colorful.Color, opacity float64) colorful.Color {
	return bg.BlendRgb(c, clamp01(opacity)).Clamped()
}

// Gradient samples a multi-stop gradient at t in [0,1], blending in Luv
// space so midpoints stay bright.
func Gradient(stops []colorful.Color, t float64) colorful.Color {
	switch len(stops) {
	case 0:
		return colorful.Color{}
	case 1:
		return stops[0]
	}
	t = clamp01(t)
	at := t * float64(len(stops)-1)
	i := int(at)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	frac := at - float64(i)
	if frac == 0 {
		return stops[i]
	}
	return stops[i].BlendLuv(stops[i+1], frac).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ansiState elides repeated colour sequences within a frame.
type ansiState struct {
	profile Profile
	current uint32
}

func newANSIState(p Profile) ansiState {
	return ansiState{profile: p, current: ^uint32(0)}
}

func (s *ansiState) set(sb *strings.Builder, c colorful.Color) {
	if s.profile == ProfileNone {
		return
	}
	c = c.Clamped()
	r, g, b := c.RGB255()
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if key == s.current {
		return
	}
	sb.WriteString(colorSequence(s.profile, c))
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == ProfileNone || s.current == ^uint32(0) {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.current = ^uint32(0)
}

// colorSequence returns the SGR foreground sequence for an RGB colour,
// converted down to what p can show.
func colorSequence(p Profile, c colorful.Color) string {
	r, g, b := c.RGB255()
	key := uint32(p)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	seq := ""
	if params := p.Color(c.Hex()).Sequence(false); params != "" {
		seq = termenv.CSI + params + "m"
	}
	seqCache.Store(key, seq)
	return seq
}
