package ui

import (
	"github.com/mattn/go-runewidth"
	"github.com/olivier-w/lumen/internal/scene"
)

// One terminal cell covers cellWidth×cellHeight viewport units.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

const (
	heroRows = 12
	ctaGap   = 4
	ctaPad   = 3
	navInset = 3
	navGap   = 4
	// Floating glyphs only appear on wide terminals.
	floatMinWidth = 100
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type target struct {
	link scene.Link
	area rect
}

// layout places the static parts of the page for a canvas of the given
// size. Animated offsets are applied on top when rendering.
type layout struct {
	width, height int
	logo          rect
	links         []rect
	titleY        int
	taglineY      int
	ctas          []rect
	contact       rect
	scrollX       int
	scrollY       int
	targets       []target
}

func computeLayout(w, h int) layout {
	l := layout{width: w, height: h}

	l.logo = rect{x: navInset, y: 1, w: runewidth.StringWidth(scene.Brand), h: 1}
	l.links = make([]rect, len(scene.NavLinks))
	right := w - navInset
	for i := len(scene.NavLinks) - 1; i >= 0; i-- {
		lw := runewidth.StringWidth(scene.NavLinks[i].Label)
		right -= lw
		l.links[i] = rect{x: right, y: 1, w: lw, h: 1}
		right -= navGap
	}

	top := (h - heroRows) / 2
	if top < 3 {
		top = 3
	}
	l.titleY = top
	l.taglineY = top + 2

	l.ctas = make([]rect, len(scene.CTAs))
	total := 0
	for i, c := range scene.CTAs {
		cw := runewidth.StringWidth(c.Label) + 2 + 2*ctaPad + 2
		l.ctas[i] = rect{y: top + 5, w: cw, h: 3}
		total += cw
	}
	total += ctaGap * (len(scene.CTAs) - 1)
	x := (w - total) / 2
	for i := range l.ctas {
		l.ctas[i].x = x
		x += l.ctas[i].w + ctaGap
	}

	cw := runewidth.StringWidth(scene.Contact.Label) + 4 + 2
	l.contact = rect{x: (w - cw) / 2, y: top + 9, w: cw, h: 3}

	l.scrollX = w / 2
	l.scrollY = h - 2

	for _, link := range scene.HoverTargets() {
		l.targets = append(l.targets, target{link: link, area: l.areaOf(link.Name)})
	}
	return l
}

func (l layout) areaOf(name string) rect {
	if name == scene.NavLogo {
		return l.logo
	}
	if name == scene.ContactLink {
		return l.contact
	}
	for i, link := range scene.NavLinks {
		if link.Name == name {
			return l.links[i]
		}
	}
	for i, c := range scene.CTAs {
		if c.Name == name {
			return l.ctas[i]
		}
	}
	return rect{}
}

// hit returns the index of the target under cell (x,y), or -1.
func (l layout) hit(x, y int) int {
	for i, t := range l.targets {
		if t.area.contains(x, y) {
			return i
		}
	}
	return -1
}
