package model

import (
	"errors"
	"fmt"
	"strings"
)

// Filter is the client-side completion filter. The zero value shows everything.
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterIncomplete
)

// Filters lists every choice in panel order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterIncomplete}

var ErrUnknownFilter = errors.New("unknown filter")

func (f Filter) String() string {
	switch f {
	case FilterCompleted:
		return "completed"
	case FilterIncomplete:
		return "incomplete"
	default:
		return "all"
	}
}

// Label is the button caption used in the filter panel.
func (f Filter) Label() string {
	switch f {
	case FilterCompleted:
		return "Complete"
	case FilterIncomplete:
		return "Uncomplete"
	default:
		return "All"
	}
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Todo) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterIncomplete:
		return !t.Completed
	default:
		return true
	}
}

// Apply returns the todos that pass the filter, in source order.
// FilterAll hands back the input slice itself.
func (f Filter) Apply(todos []Todo) []Todo {
	if f == FilterAll {
		return todos
	}
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Next and Prev cycle through Filters, wrapping around.
func (f Filter) Next() Filter { return Filters[(int(f)+1)%len(Filters)] }
func (f Filter) Prev() Filter { return Filters[(int(f)+len(Filters)-1)%len(Filters)] }

// ParseFilter accepts the canonical names plus the captions used on screen.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "complete", "done":
		return FilterCompleted, nil
	case "incomplete", "uncomplete", "pending", "open":
		return FilterIncomplete, nil
	}
	return FilterAll, fmt.Errorf("%w: %q (want all, completed or incomplete)", ErrUnknownFilter, s)
}
