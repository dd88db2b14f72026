// Package directory holds the user id → username lookup used to put a name
// on each todo.
package directory

import "github.com/idilsaglam/todofeed/internal/model"

// Directory is a read-only snapshot. The zero value is an empty directory,
// so a screen can render before any user fetch has completed.
type Directory struct {
	names map[int]string
}

// Build folds users into a fresh snapshot. A later duplicate id wins.
func Build(users []model.UserSummary) Directory {
	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return Directory{names: names}
}

// Lookup returns the username for id and whether it was known.
func (d Directory) Lookup(id int) (string, bool) {
	name, ok := d.names[id]
	return name, ok
}

// Name is Lookup without the flag: unknown ids render blank.
func (d Directory) Name(id int) string {
	return d.names[id]
}

func (d Directory) Len() int { return len(d.names) }

// Equal reports whether both snapshots map the same ids to the same names.
func (d Directory) Equal(o Directory) bool {
	if len(d.names) != len(o.names) {
		return false
	}
	for id, name := range d.names {
		if other, ok := o.names[id]; !ok || other != name {
			return false
		}
	}
	return true
}
