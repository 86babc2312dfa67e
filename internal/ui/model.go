package ui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/lumen/internal/canvas"
	"github.com/olivier-w/lumen/internal/particles"
	"github.com/olivier-w/lumen/internal/scene"
)

// Model is the Bubbletea model for the landing scene.
type Model struct {
	scene    *scene.Scene
	interval time.Duration
	keys     keyMap
	help     help.Model
	width    int
	height   int
	layout   layout

	hovered int // target under the pointer, -1 for none
	focused int // target chosen from the keyboard, -1 for none
	pressed int // target holding a press, -1 for none
	seen    bool
	status  string

	quitting bool
}

// New creates a Model driving s at fps frames per second.
func New(s *scene.Scene, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		scene:    s,
		interval: time.Second / time.Duration(fps),
		keys:     newKeyMap(),
		help:     help.New(),
		hovered:  -1,
		focused:  -1,
		pressed:  -1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(mountCmd, frameCmd(m.interval), tea.SetWindowTitle("lumen"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mountMsg:
		m.scene.Mount()
		return m, nil

	case frameMsg:
		if m.scene.Closed() {
			return m, nil
		}
		m.syncHover()
		m.scene.Advance(m.interval)
		return m, frameCmd(m.interval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout = computeLayout(msg.Width, m.canvasHeight())
		m.scene.Resize(particles.Bounds{
			Width:  float64(msg.Width) * cellWidth,
			Height: float64(m.canvasHeight()) * cellHeight,
		})
		log.Printf("viewport %dx%d", msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case NavigateMsg:
		m.status = "→ " + msg.Href
		log.Printf("navigate %s", msg.Href)
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.seen = true
	m.scene.PointerMove((float64(msg.X)+0.5)*cellWidth, (float64(msg.Y)+0.5)*cellHeight)
	m.setHovered(m.layout.hit(msg.X, msg.Y))

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.hovered >= 0 {
			m.pressed = m.hovered
			m.scene.Press(m.targetName(m.pressed), true)
		}
	case tea.MouseActionRelease:
		if m.pressed < 0 {
			return m, nil
		}
		pressed := m.pressed
		m.pressed = -1
		m.scene.Press(m.targetName(pressed), false)
		if pressed == m.hovered {
			return m, navigateCmd(m.layout.targets[pressed].link.Href)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.scene.Teardown()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		if m.focused >= 0 && m.focused < len(m.layout.targets) {
			return m, navigateCmd(m.layout.targets[m.focused].link.Href)
		}
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	n := len(m.layout.targets)
	if n == 0 {
		return
	}
	prev := m.focused
	if m.focused < 0 {
		if delta > 0 {
			m.focused = 0
		} else {
			m.focused = n - 1
		}
	} else {
		m.focused = (m.focused + delta + n) % n
	}
	if prev >= 0 && prev != m.hovered {
		m.scene.Hover(m.targetName(prev), false)
	}
	m.scene.Hover(m.targetName(m.focused), true)
}

func (m *Model) setHovered(i int) {
	if i == m.hovered {
		return
	}
	if m.hovered >= 0 && m.hovered != m.focused {
		m.scene.Hover(m.targetName(m.hovered), false)
	}
	m.hovered = i
	if i >= 0 {
		m.scene.Hover(m.targetName(i), true)
	}
}

// syncHover re-requests hover for targets whose sequencer state disagrees
// with the pointer and keyboard. An exit that won a same-tick tie is
// followed by a fresh enter on the next frame if the pointer stayed.
func (m Model) syncHover() {
	for i, t := range m.layout.targets {
		want := i == m.hovered || i == m.focused
		if m.scene.Hovered(t.link.Name) != want {
			m.scene.Hover(t.link.Name, want)
		}
	}
}

func (m Model) targetName(i int) string {
	if i < 0 || i >= len(m.layout.targets) {
		return ""
	}
	return m.layout.targets[i].link.Name
}

// canvasHeight leaves the last row for the footer.
func (m Model) canvasHeight() int {
	if m.height < 2 {
		return 0
	}
	return m.height - 1
}

func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	c := canvas.New(m.width, m.canvasHeight())
	renderer{c: c, f: m.scene.Frame(), l: m.layout, cursor: m.seen}.draw()

	return c.String() + "\n" + m.footer()
}

func (m Model) footer() string {
	helpView := m.help.View(m.keys)
	if m.status == "" {
		return "  " + helpView
	}
	status := statusStyle.Render(m.status)
	gap := m.width - lipgloss.Width(status) - lipgloss.Width(helpView) - 4
	if gap < 2 {
		gap = 2
	}
	return "  " + status + strings.Repeat(" ", gap) + helpStyle.Render(helpView)
}
