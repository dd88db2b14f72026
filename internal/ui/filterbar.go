package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todofeed/internal/model"
)

// FilterButton is the toggle that opens and closes the filter panel.
func FilterButton(t Theme, open bool) string {
	s := t.Button
	if open {
		s = t.ButtonActive
	}
	return s.Render(t.SymFilter + " Filter")
}

// FilterBar renders the button, followed by the three choices when open.
func FilterBar(t Theme, open bool, selected model.Filter) string {
	parts := []string{FilterButton(t, open)}
	if open {
		parts = append(parts, " ")
		for _, f := range model.Filters {
			s := t.Button
			if f == selected {
				s = t.ButtonActive
			}
			parts = append(parts, s.Render(f.Label()), " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
