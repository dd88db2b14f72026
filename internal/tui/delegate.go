package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todofeed/internal/ui"
)

// cardItem adapts a resolved TodoCard to bubbles/list.Item.
type cardItem struct {
	id   int
	card ui.TodoCard
}

func (i cardItem) FilterValue() string { return i.card.Title }

// cardDelegate draws each todo as a two-line card.
type cardDelegate struct {
	theme ui.Theme
}

func (d cardDelegate) Height() int                               { return 2 }
func (d cardDelegate) Spacing() int                              { return 1 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(cardItem)
	if !ok {
		return
	}
	width := m.Width() - 2
	if width > 72 {
		width = 72
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(">") + " "
	}
	lines := strings.Split(it.card.Render(d.theme, width), "\n")
	for i, ln := range lines {
		if i > 0 {
			prefix = "  "
		}
		lines[i] = prefix + ln
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}
