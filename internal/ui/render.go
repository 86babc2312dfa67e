package ui

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/olivier-w/lumen/internal/canvas"
	"github.com/olivier-w/lumen/internal/motion"
	"github.com/olivier-w/lumen/internal/scene"
)

var spinFrames = [4]rune{'◐', '◓', '◑', '◒'}

// renderer paints one scene frame onto a canvas.
type renderer struct {
	c      *canvas.Canvas
	f      scene.Frame
	l      layout
	cursor bool
}

func (r renderer) values(name string) motion.Values {
	return r.f.Values[name]
}

func rows(units float64) int {
	return int(math.Round(units / cellHeight))
}

func cols(units float64) int {
	return int(math.Round(units / cellWidth))
}

func (r renderer) draw() {
	r.drawParticles()
	if r.l.width >= floatMinWidth {
		r.drawFloaters()
	}
	r.drawNav()
	r.drawHero()
	r.drawScrollHint()
	if r.cursor {
		r.drawFollower()
	}
}

func (r renderer) drawParticles() {
	col := canvas.Fade(purple400, backdrop, 0.55)
	for _, p := range r.f.Particles {
		r.c.Dot(int(p.Pos.X/cellWidth*2), int(p.Pos.Y/cellHeight*4), col)
	}
}

func (r renderer) drawFloaters() {
	for _, fl := range scene.Floaters {
		v := r.values(fl.Name)
		x := int(fl.Anchor[0]*float64(r.l.width)) + int(math.Round(v.Get(motion.Rotate)/5))
		y := int(fl.Anchor[1]*float64(r.l.height)) + rows(v.Get(motion.Y))
		r.c.Set(x, y, fl.Glyph, canvas.Fade(canvas.Hex(fl.Color), backdrop, 0.4))
	}
}

func (r renderer) drawNav() {
	dy := rows(r.values(scene.Nav).Get(motion.Y))

	lift := clamp01((r.values(scene.NavLogo).Get(motion.Scale) - 1) / 0.05)
	n := runewidth.StringWidth(scene.Brand)
	r.c.TextFunc(r.l.logo.x, r.l.logo.y+dy, scene.Brand, func(i int) colorful.Color {
		t := float64(i) / float64(max(n-1, 1))
		return purple400.BlendLuv(pink400, t).Clamped().BlendRgb(white, lift*0.5)
	})

	for i, link := range scene.NavLinks {
		area := r.l.links[i]
		v := r.values(link.Name)
		col := gray300.BlendRgb(white, clamp01(-v.Get(motion.Y)/2))
		r.c.Text(area.x, area.y+dy, link.Label, col)

		under := int(math.Round(r.values(link.Underline()).Get(motion.Width) * float64(area.w)))
		for j := range under {
			r.c.Set(area.x+j, area.y+dy+1, '─', purple400)
		}
	}
}

func (r renderer) drawHero() {
	heroOpacity := r.values(scene.Hero).Get(motion.Opacity)

	title := r.values(scene.HeroTitle)
	if op := heroOpacity * title.Get(motion.Opacity); op > 0.02 {
		n := runewidth.StringWidth(scene.Title)
		shift := title.Get(motion.Shift) / 100
		x := (r.l.width - n) / 2
		r.c.TextFunc(x, r.l.titleY+rows(title.Get(motion.Y)), scene.Title, func(i int) colorful.Color {
			t := float64(i)/float64(n)/2 + shift/2
			return canvas.Fade(canvas.Gradient(titleStops, t), backdrop, op)
		})
	}

	tagline := r.values(scene.HeroTagline)
	if op := heroOpacity * tagline.Get(motion.Opacity); op > 0.02 {
		dy := rows(tagline.Get(motion.Y))
		for j, line := range scene.Tagline {
			x := (r.l.width - runewidth.StringWidth(line)) / 2
			r.c.Text(x, r.l.taglineY+j+dy, line, canvas.Fade(gray300, backdrop, op))
		}
	}

	ctas := r.values(scene.HeroCTAs)
	if op := heroOpacity * ctas.Get(motion.Opacity); op > 0.02 {
		dy := rows(ctas.Get(motion.Y))
		for i, c := range scene.CTAs {
			r.drawCTA(c, r.l.ctas[i], dy, op)
		}
	}

	contact := r.values(scene.HeroContact)
	if op := heroOpacity * contact.Get(motion.Opacity); op > 0.02 {
		r.drawContact(rows(contact.Get(motion.Y)), op)
	}
}

// grow widens (or narrows) a box symmetrically by a scale factor.
func grow(area rect, scale float64) rect {
	d := int(math.Round((scale - 1) * float64(area.w) / 2))
	return rect{x: area.x - d, y: area.y, w: area.w + 2*d, h: area.h}
}

func (r renderer) drawCTA(c scene.CTA, area rect, dy int, op float64) {
	box := grow(area, r.values(c.Name).Get(motion.Scale))
	box.y += dy + rows(r.values(c.Name).Get(motion.Y))
	a, b := canvas.Hex(c.Accent[0]), canvas.Hex(c.Accent[1])

	ring := r.values(c.Ring())
	if ro := ring.Get(motion.Opacity); ro > 0.01 {
		pad := 1 + int(math.Round((ring.Get(motion.Scale)-1)*10))
		halo := canvas.Fade(a.BlendLuv(b, 0.5).Clamped(), backdrop, clamp01(ro*2)*op)
		outer := rect{x: box.x - pad, y: box.y - 1, w: box.w + 2*pad, h: box.h + 2}
		for x := outer.x; x < outer.x+outer.w; x += 2 {
			r.c.Set(x, outer.y, '·', halo)
			r.c.Set(x, outer.y+outer.h-1, '·', halo)
		}
	}

	for k := range scene.SparklesPerCTA {
		sv := r.values(c.Sparkle(k))
		so := sv.Get(motion.Opacity)
		if so < 0.05 {
			continue
		}
		fx, fy := scene.SparkleAnchor(k)
		px := (float64(box.x)+fx*float64(box.w))*cellWidth + sv.Get(motion.X)
		py := (float64(box.y)+fy*float64(box.h))*cellHeight + sv.Get(motion.Y)
		col := canvas.Fade(white, backdrop, so*op)
		if sv.Get(motion.Scale) > 0.6 {
			r.c.Set(int(px/cellWidth), int(py/cellHeight), '✦', col)
		} else {
			r.c.Dot(int(px/cellWidth*2), int(py/cellHeight*4), col)
		}
	}

	glow := r.values(c.Body()).Get(motion.Glow)
	sweep, sweeping := 0, false
	if s := r.values(c.Shimmer()).Get(motion.Shift); s > -100 && s < 100 {
		sweep, sweeping = box.x+int((s+100)/200*float64(box.w)), true
	}
	drawBox(r.c, box, func(x int) colorful.Color {
		t := float64(x-box.x) / float64(max(box.w-1, 1))
		col := a.BlendLuv(b, t).Clamped().BlendRgb(white, glow*0.35)
		if sweeping && (x == sweep || x == sweep-1) {
			col = col.BlendRgb(white, 0.7)
		}
		return canvas.Fade(col, backdrop, op)
	})

	glyph := c.Icon
	if rot := r.values(c.IconName()).Get(motion.Rotate); rot > 0.5 && rot < 359.5 {
		glyph = spinFrames[int(rot/90)%4]
	}
	label := string(glyph) + " " + c.Label
	sheen := r.values(c.Sheen()).Get(motion.Opacity)
	lx := box.x + (box.w-runewidth.StringWidth(label))/2
	r.c.Text(lx, box.y+1, label, canvas.Fade(gray300.BlendRgb(white, sheen), backdrop, op))
}

func (r renderer) drawContact(dy int, op float64) {
	v := r.values(scene.ContactLink)
	scale := v.Get(motion.Scale)
	box := grow(r.l.contact, scale)
	box.y += dy + rows(v.Get(motion.Y))

	strength := 0.5
	if scale != 1 {
		strength = 0.5 + 0.5*clamp01(math.Abs(scale-1)/0.05)
	}
	border := canvas.Fade(purple400, backdrop, strength*op)
	drawBox(r.c, box, func(int) colorful.Color { return border })

	lx := box.x + (box.w-runewidth.StringWidth(scene.Contact.Label))/2
	r.c.Text(lx, box.y+1, scene.Contact.Label, canvas.Fade(white, backdrop, op))
}

func (r renderer) drawScrollHint() {
	op := r.values(scene.Scroll).Get(motion.Opacity)
	if op <= 0.02 {
		return
	}
	dy := rows(r.values(scene.ScrollArrow).Get(motion.Y))
	r.c.Set(r.l.scrollX, r.l.scrollY+dy, '⌄', canvas.Fade(gray400, backdrop, op))
}

func (r renderer) drawFollower() {
	half := r.f.Size / 2
	x := int(math.Floor((r.f.Follower.X + half) / cellWidth))
	y := int(math.Floor((r.f.Follower.Y + half) / cellHeight))
	r.c.Set(x, y, '●', purple400)
}

func drawBox(c *canvas.Canvas, b rect, color func(x int) colorful.Color) {
	if b.w < 2 || b.h < 2 {
		return
	}
	right := b.x + b.w - 1
	bottom := b.y + b.h - 1
	for x := b.x; x <= right; x++ {
		top, bot := '─', '─'
		switch x {
		case b.x:
			top, bot = '╭', '╰'
		case right:
			top, bot = '╮', '╯'
		}
		c.Set(x, b.y, top, color(x))
		c.Set(x, bottom, bot, color(x))
	}
	for y := b.y + 1; y < bottom; y++ {
		c.Set(b.x, y, '│', color(b.x))
		c.Set(right, y, '│', color(right))
	}
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
