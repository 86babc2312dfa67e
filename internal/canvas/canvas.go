package canvas

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type cell struct {
	r     rune
	color colorful.Color
	set   bool
	wide  bool // second column of a double-width rune
	dots  uint8
	dotC  colorful.Color
}

// Canvas is a grid of terminal cells. Glyphs drawn with Set or Text sit
// above the braille dot layer drawn with Dot.
type Canvas struct {
	w, h    int
	cells   []cell
	profile Profile
}

// New creates a canvas using the detected terminal profile.
func New(w, h int) *Canvas {
	return NewWithProfile(w, h, DetectProfile())
}

// NewWithProfile creates a canvas that encodes colours for p.
func NewWithProfile(w, h int, p Profile) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{w: w, h: h, cells: make([]cell, w*h), profile: p}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

// Set places r at (x,y). Double-width runes also claim the next column and
// are dropped when that column is off the canvas.
func (c *Canvas) Set(x, y int, r rune, col colorful.Color) {
	cl := c.at(x, y)
	if cl == nil {
		return
	}
	if runewidth.RuneWidth(r) == 2 {
		next := c.at(x+1, y)
		if next == nil {
			return
		}
		c.clearWide(x, y)
		c.clearWide(x+1, y)
		*next = cell{set: true, wide: true}
	} else {
		c.clearWide(x, y)
	}
	*cl = cell{r: r, color: col, set: true}
}

// clearWide blanks the other half of a double-width rune overlapping (x,y).
func (c *Canvas) clearWide(x, y int) {
	cl := c.at(x, y)
	if cl == nil || !cl.set {
		return
	}
	if cl.wide {
		if head := c.at(x-1, y); head != nil {
			*head = cell{r: ' ', set: true}
		}
		return
	}
	if runewidth.RuneWidth(cl.r) == 2 {
		if tail := c.at(x+1, y); tail != nil && tail.wide {
			*tail = cell{r: ' ', set: true}
		}
	}
}

// Text writes s starting at (x,y) in one colour and returns its width.
func (c *Canvas) Text(x, y int, s string, col colorful.Color) int {
	return c.TextFunc(x, y, s, func(int) colorful.Color { return col })
}

// TextFunc writes s starting at (x,y), colouring the rune at column offset
// i with color(i), and returns the width written.
func (c *Canvas) TextFunc(x, y int, s string, color func(i int) colorful.Color) int {
	col := 0
	for _, r := range s {
		c.Set(x+col, y, r, color(col))
		col += runewidth.RuneWidth(r)
	}
	return col
}

// Dot lights one braille dot. Dot coordinates are two per column and four
// per row.
func (c *Canvas) Dot(dx, dy int, col colorful.Color) {
	if dx < 0 || dy < 0 {
		return
	}
	cl := c.at(dx/2, dy/4)
	if cl == nil {
		return
	}
	cl.dots |= 1 << brailleBits[dx%2][dy%4]
	cl.dotC = col
}

// Rune returns what the cell at (x,y) will print: its glyph, its braille
// pattern, or a space.
func (c *Canvas) Rune(x, y int) rune {
	cl := c.at(x, y)
	switch {
	case cl == nil:
		return 0
	case cl.set:
		return cl.r
	case cl.dots != 0:
		return rune(0x2800 + int(cl.dots))
	default:
		return ' '
	}
}

// String encodes the canvas as rows of text joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.w * c.h * 2)
	for y := range c.h {
		ansi := newANSIState(c.profile)
		for x := range c.w {
			cl := &c.cells[y*c.w+x]
			switch {
			case cl.wide:
				continue
			case cl.set:
				ansi.set(&sb, cl.color)
				sb.WriteRune(cl.r)
			case cl.dots != 0:
				ansi.set(&sb, cl.dotC)
				sb.WriteRune(rune(0x2800 + int(cl.dots)))
			default:
				sb.WriteByte(' ')
			}
		}
		ansi.reset(&sb)
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
