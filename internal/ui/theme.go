package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + borders.
// Every renderer takes the theme it should use; there is no package-level current theme.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style
	Button, ButtonActive                          lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymUser, SymDone, SymOpen, SymFilter string
	BarFull, BarEmpty                    string
}

// ThemeByName falls back to classic for unknown names.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Done:         lipgloss.NewStyle().Faint(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Button:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("14")),
			ButtonActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			SymUser:      "◉", SymDone: "✔", SymOpen: "✖", SymFilter: "⚲",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Selected: plain, Done: plain, Help: plain,
			Button:       plain.Padding(0, 1),
			ButtonActive: plain.Padding(0, 1).Reverse(true),
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			SymUser:      "@", SymDone: "x", SymOpen: "-", SymFilter: "?",
			BarFull: "#", BarEmpty: ".",
		}
	default: // classic
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:         lipgloss.NewStyle().Faint(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Button:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("7")).Background(lipgloss.Color("0")),
			ButtonActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("8")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
			SymUser:      "◉", SymDone: "✔", SymOpen: "✖", SymFilter: "⚲",
			BarFull: "█", BarEmpty: "░",
		}
	}
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}
