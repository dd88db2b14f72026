package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todofeed/internal/model"
)

// ProgressBar renders a bar with a done/total suffix.
func ProgressBar(t Theme, done, total, width int) string {
	denom := total
	if denom <= 0 {
		denom = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(denom) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Header is the title line with completed / open / total counts.
func Header(t Theme, todos []model.Todo) string {
	d, p := model.Stats(todos)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("ToDos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymOpen), p,
		t.Accent.Render("Total"), len(todos),
	)
}

// Panel frames lines in the theme's border.
func Panel(t Theme, lines []string) string {
	return frame(t).Render(strings.Join(lines, "\n"))
}

// PanelString frames an already-joined block.
func PanelString(t Theme, inner string) string {
	return frame(t).Render(inner)
}

func frame(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}
