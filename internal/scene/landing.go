package scene

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/olivier-w/lumen/internal/motion"
)

// Element names of the landing page.
const (
	Nav         = "nav"
	NavLogo     = "nav.logo"
	Hero        = "hero"
	HeroTitle   = "hero.title"
	HeroTagline = "hero.tagline"
	HeroCTAs    = "hero.ctas"
	HeroContact = "hero.contact"
	ContactLink = "contact.link"
	Scroll      = "scroll"
	ScrollArrow = "scroll.arrow"

	SparklesPerCTA = 8
)

// Link is an opaque navigation target.
type Link struct {
	Name  string
	Label string
	Href  string
}

// Underline is the element that draws the link's hover underline.
func (l Link) Underline() string { return l.Name + ".underline" }

// CTA is one of the large call-to-action buttons.
type CTA struct {
	Link
	Icon   rune
	Accent [2]string // gradient endpoints, hex
}

// Part names of a CTA's animated pieces.
func (c CTA) Body() string     { return c.Name + ".body" }
func (c CTA) Shimmer() string  { return c.Name + ".shimmer" }
func (c CTA) IconName() string { return c.Name + ".icon" }
func (c CTA) Sheen() string    { return c.Name + ".sheen" }
func (c CTA) Ring() string     { return c.Name + ".ring" }

// Sparkle names the i-th burst particle of the button.
func (c CTA) Sparkle(i int) string {
	return fmt.Sprintf("%s.sparkle.%d", c.Name, i)
}

// Floater is a decorative glyph bobbing in the background. Anchor is a
// fraction of the viewport.
type Floater struct {
	Name   string
	Glyph  rune
	Anchor [2]float64
	Color  string
	Delay  time.Duration
}

var (
	NavLinks = []Link{
		{Name: "nav.about", Label: "About", Href: "/about"},
		{Name: "nav.projects", Label: "Projects", Href: "/projects"},
		{Name: "nav.contact", Label: "Contact", Href: "/contact"},
	}

	CTAs = []CTA{
		{
			Link:   Link{Name: "cta.about", Label: "About Me", Href: "/about"},
			Icon:   '⌘',
			Accent: [2]string{"#9333EA", "#EC4899"},
		},
		{
			Link:   Link{Name: "cta.projects", Label: "My Projects", Href: "/projects"},
			Icon:   '✎',
			Accent: [2]string{"#DB2777", "#A855F7"},
		},
	}

	Contact = Link{Name: ContactLink, Label: "Get In Touch", Href: "/contact"}

	Floaters = []Floater{
		{Name: "float.code", Glyph: '⌘', Anchor: [2]float64{0.06, 0.25}, Color: "#A78BFA"},
		{Name: "float.palette", Glyph: '✎', Anchor: [2]float64{0.92, 0.33}, Color: "#F472B6", Delay: 2 * time.Second},
		{Name: "float.zap", Glyph: '⚡', Anchor: [2]float64{0.25, 0.75}, Color: "#22D3EE", Delay: 4 * time.Second},
	}

	Title   = "Creative Developer"
	Tagline = []string{
		"I craft beautiful digital experiences with code and creativity.",
		"Welcome to my digital playground.",
	}
	Brand = "Portfolio"
)

// cssEase is the CSS "ease" timing function.
var cssEase = motion.CubicBezier(0.25, 0.1, 0.25, 1)

func hoverSpec(name string, target motion.Keyframes, d time.Duration) motion.Spec {
	return motion.Spec{
		Name:       name,
		Trigger:    motion.OnHover,
		Target:     target,
		Transition: motion.Transition{Duration: d, Ease: motion.EaseOut},
	}
}

func pressSpec(name string) motion.Spec {
	return motion.Spec{
		Name:       name,
		Trigger:    motion.OnPress,
		Target:     motion.Keyframes{motion.Scale: {0.95}},
		Transition: motion.Transition{Duration: 100 * time.Millisecond, Ease: motion.EaseOut},
	}
}

func entranceItem(name string) motion.Element {
	return motion.Element{
		Name:   name,
		Parent: Hero,
		Specs: []motion.Spec{{
			Name:    name + ".enter",
			Trigger: motion.OnMount,
			Initial: motion.Values{motion.Y: 20, motion.Opacity: 0},
			Target:  motion.Keyframes{motion.Y: {0}, motion.Opacity: {1}},
			Transition: motion.Transition{
				Duration: 800 * time.Millisecond,
				Ease:     motion.EaseOut,
			},
		}},
	}
}

// Landing returns the animation graph of the landing page. rng picks the
// burst direction of every sparkle.
func Landing(rng *rand.Rand) ([]motion.Element, []motion.Group) {
	elements := []motion.Element{
		{Name: Nav, Specs: []motion.Spec{{
			Name:    "nav.slide",
			Trigger: motion.OnMount,
			Initial: motion.Values{motion.Y: -100},
			Target:  motion.Keyframes{motion.Y: {0}},
			Transition: motion.Transition{
				Duration: 800 * time.Millisecond,
				Delay:    200 * time.Millisecond,
				Ease:     motion.EaseOut,
			},
		}}},
		{Name: NavLogo, Parent: Nav, Specs: []motion.Spec{
			hoverSpec("logo.grow", motion.Keyframes{motion.Scale: {1.05}}, 200*time.Millisecond),
		}},
	}
	for _, l := range NavLinks {
		elements = append(elements,
			motion.Element{Name: l.Name, Parent: Nav, Specs: []motion.Spec{
				hoverSpec(l.Name+".lift", motion.Keyframes{motion.Y: {-2}}, 200*time.Millisecond),
			}},
			motion.Element{Name: l.Underline(), Parent: l.Name, Specs: []motion.Spec{{
				Name:       l.Underline() + ".grow",
				Trigger:    motion.OnHover,
				Initial:    motion.Values{motion.Width: 0},
				Target:     motion.Keyframes{motion.Width: {1}},
				Transition: motion.Transition{Duration: 300 * time.Millisecond},
			}}},
		)
	}

	title := entranceItem(HeroTitle)
	title.Specs = append(title.Specs, motion.Spec{
		Name:    "title.gradient",
		Trigger: motion.OnMount,
		Target:  motion.Keyframes{motion.Shift: {0, 100, 0}},
		Transition: motion.Transition{
			Duration: 3 * time.Second,
			Ease:     cssEase,
			Repeat:   motion.Infinite,
		},
	})
	elements = append(elements,
		motion.Element{Name: Hero, Specs: []motion.Spec{{
			Name:       "hero.fade",
			Trigger:    motion.OnMount,
			Initial:    motion.Values{motion.Opacity: 0},
			Target:     motion.Keyframes{motion.Opacity: {1}},
			Transition: motion.Transition{Duration: 300 * time.Millisecond},
		}}},
		title,
		entranceItem(HeroTagline),
		entranceItem(HeroCTAs),
		entranceItem(HeroContact),
	)

	for _, c := range CTAs {
		elements = append(elements, ctaElements(c, rng)...)
	}

	elements = append(elements,
		motion.Element{Name: ContactLink, Parent: HeroContact, Specs: []motion.Spec{
			hoverSpec("contact.grow", motion.Keyframes{motion.Scale: {1.05}, motion.Y: {-2}}, 200*time.Millisecond),
			pressSpec("contact.press"),
		}},
	)

	for _, f := range Floaters {
		elements = append(elements, motion.Element{Name: f.Name, Specs: []motion.Spec{{
			Name:    f.Name + ".bob",
			Trigger: motion.OnMount,
			Target: motion.Keyframes{
				motion.Y:      {-10, 10, -10},
				motion.Rotate: {0, 5, 0, -5, 0},
			},
			Transition: motion.Transition{
				Duration:   6 * time.Second,
				Delay:      f.Delay,
				Ease:       motion.EaseInOut,
				Repeat:     motion.Infinite,
				RepeatType: motion.RepeatReverse,
			},
		}}})
	}

	elements = append(elements,
		motion.Element{Name: Scroll, Specs: []motion.Spec{{
			Name:       "scroll.reveal",
			Trigger:    motion.OnMount,
			Initial:    motion.Values{motion.Opacity: 0},
			Target:     motion.Keyframes{motion.Opacity: {1}},
			Transition: motion.Transition{Duration: 300 * time.Millisecond, Delay: 2 * time.Second},
		}}},
		motion.Element{Name: ScrollArrow, Parent: Scroll, Specs: []motion.Spec{{
			Name:    "scroll.bounce",
			Trigger: motion.OnMount,
			Target:  motion.Keyframes{motion.Y: {0, 10, 0}},
			Transition: motion.Transition{
				Duration: 2 * time.Second,
				Repeat:   motion.Infinite,
			},
		}}},
	)

	groups := []motion.Group{
		{Name: Nav},
		{
			Name:            Hero,
			DelayChildren:   300 * time.Millisecond,
			StaggerChildren: 200 * time.Millisecond,
			Children:        []string{HeroTitle, HeroTagline, HeroCTAs, HeroContact},
		},
		{Name: Scroll},
	}
	return elements, groups
}

func ctaElements(c CTA, rng *rand.Rand) []motion.Element {
	out := []motion.Element{
		{Name: c.Name, Parent: HeroCTAs, Specs: []motion.Spec{
			hoverSpec(c.Name+".grow", motion.Keyframes{motion.Scale: {1.05}}, 200*time.Millisecond),
			pressSpec(c.Name + ".press"),
		}},
		{Name: c.Body(), Parent: c.Name, Specs: []motion.Spec{
			hoverSpec(c.Body()+".glow", motion.Keyframes{motion.Glow: {1}}, 300*time.Millisecond),
		}},
		{Name: c.Shimmer(), Parent: c.Body(), Specs: []motion.Spec{{
			Name:       c.Shimmer() + ".sweep",
			Trigger:    motion.OnHover,
			Initial:    motion.Values{motion.Shift: -100},
			Target:     motion.Keyframes{motion.Shift: {100}},
			Transition: motion.Transition{Duration: 800 * time.Millisecond, Ease: motion.EaseInOut},
		}}},
		{Name: c.IconName(), Parent: c.Body(), Specs: []motion.Spec{{
			Name:       c.IconName() + ".spin",
			Trigger:    motion.OnHover,
			Target:     motion.Keyframes{motion.Rotate: {360}},
			Transition: motion.Transition{Duration: 600 * time.Millisecond},
		}}},
		{Name: c.Sheen(), Parent: c.Body(), Specs: []motion.Spec{{
			Name:       c.Sheen() + ".fade",
			Trigger:    motion.OnHover,
			Initial:    motion.Values{motion.Opacity: 0},
			Target:     motion.Keyframes{motion.Opacity: {1}},
			Transition: motion.Transition{Duration: 300 * time.Millisecond},
		}}},
		{Name: c.Ring(), Parent: c.Name, Specs: []motion.Spec{{
			Name:       c.Ring() + ".halo",
			Trigger:    motion.OnHover,
			Initial:    motion.Values{motion.Opacity: 0},
			Target:     motion.Keyframes{motion.Opacity: {0.3}, motion.Scale: {1.1}},
			Transition: motion.Transition{Duration: 300 * time.Millisecond},
		}}},
	}
	for i := range SparklesPerCTA {
		dx := rng.Float64()*100 - 50
		dy := rng.Float64()*100 - 50
		out = append(out, motion.Element{Name: c.Sparkle(i), Parent: c.Body(), Specs: []motion.Spec{{
			Name:    c.Sparkle(i) + ".burst",
			Trigger: motion.OnHover,
			Initial: motion.Values{motion.Opacity: 0, motion.Scale: 0},
			Target: motion.Keyframes{
				motion.Opacity: {0, 1, 0},
				motion.Scale:   {0, 1, 0},
				motion.X:       {0, dx},
				motion.Y:       {0, dy},
			},
			Transition: motion.Transition{
				Duration:    1500 * time.Millisecond,
				Delay:       time.Duration(i) * 100 * time.Millisecond,
				Repeat:      motion.Infinite,
				RepeatDelay: 2 * time.Second,
			},
		}}})
	}
	return out
}

// SparkleAnchor is where sparkle i sits inside its button, as fractions of
// the button's width and height.
func SparkleAnchor(i int) (fx, fy float64) {
	return 0.2 + float64(i)*0.1, 0.3 + float64(i%2)*0.4
}

// HoverTargets lists the elements that receive hover and press events,
// with the href each activates.
func HoverTargets() []Link {
	links := []Link{{Name: NavLogo, Label: Brand, Href: "/"}}
	links = append(links, NavLinks...)
	for _, c := range CTAs {
		links = append(links, c.Link)
	}
	return append(links, Contact)
}
