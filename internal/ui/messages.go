package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time
type mountMsg struct{}

// NavigateMsg reports a link activation. Routing is left to the host.
type NavigateMsg struct {
	Href string
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func mountCmd() tea.Msg {
	return mountMsg{}
}

func navigateCmd(href string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Href: href}
	}
}
