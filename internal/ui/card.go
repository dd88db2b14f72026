package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todofeed/internal/api"
	"github.com/idilsaglam/todofeed/internal/directory"
	"github.com/idilsaglam/todofeed/internal/model"
)

// TodoCard is what one list row shows. Name is blank when the owner is not
// (yet) in the directory.
type TodoCard struct {
	Title     string
	Name      string
	Label     string
	Completed bool
}

// NewTodoCard resolves the owner name against dir. It never touches the network.
func NewTodoCard(t model.Todo, dir directory.Directory) TodoCard {
	return TodoCard{
		Title:     t.Title,
		Name:      dir.Name(t.UserID),
		Label:     model.CompletionLabel(t.Completed),
		Completed: t.Completed,
	}
}

// Meta is the second card line: owner on the left, status on the right,
// padded to width when width is positive.
func (c TodoCard) Meta(t Theme, width int) string {
	owner := t.Muted.Render(t.SymUser) + " " + lipgloss.NewStyle().Italic(true).Render(c.Name)

	sym, style := t.SymOpen, t.Pending
	if c.Completed {
		sym, style = t.SymDone, t.Success
	}
	status := style.Render(sym) + " " + lipgloss.NewStyle().Italic(true).Render(c.Label)

	gap := 2
	if width > 0 {
		if g := width - lipgloss.Width(owner) - lipgloss.Width(status); g > gap {
			gap = g
		}
	}
	return owner + strings.Repeat(" ", gap) + status
}

// TruncateTitle shortens s to at most width cells, ending in "...".
// A non-positive width leaves s alone.
func TruncateTitle(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "...")
}

// Render draws the card as two lines: title, then owner and status.
// The title is cut to width so the card never wraps.
func (c TodoCard) Render(t Theme, width int) string {
	text := TruncateTitle(c.Title, width)
	title := t.Title.Render(text)
	if c.Completed {
		title = t.Done.Render(text)
	}
	return title + "\n" + c.Meta(t, width)
}

// StatusText maps a fetch error onto the static text shown instead of the list.
func StatusText(err error) string {
	if errors.Is(err, api.ErrNoData) {
		return NoDataText
	}
	return ErrorPrefix + err.Error()
}
