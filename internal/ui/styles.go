package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/lumen/internal/canvas"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#C4B5FD"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// Scene palette. Faded colours blend toward the backdrop.
var (
	backdrop  = canvas.Hex("#0F172A")
	white     = canvas.Hex("#FFFFFF")
	gray300   = canvas.Hex("#D1D5DB")
	gray400   = canvas.Hex("#9CA3AF")
	purple400 = canvas.Hex("#A78BFA")
	pink400   = canvas.Hex("#F472B6")

	titleStops = []colorful.Color{
		canvas.Hex("#8B5CF6"),
		canvas.Hex("#EC4899"),
		canvas.Hex("#06B6D4"),
	}
)
