package feed

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/todofeed/internal/directory"
	"github.com/idilsaglam/todofeed/internal/model"
)

// Joined is the result of running both loaders once.
type Joined struct {
	Todos     []model.Todo
	Directory directory.Directory
	// UsersErr is informational: names render blank when it is set.
	UsersErr error
}

// LoadJoined runs both fetches concurrently and waits for both.
// Only a todo failure is returned as an error.
func LoadJoined(ctx context.Context, todos *TodoListLoader, users *UserDirectoryLoader, f model.Filter) (Joined, error) {
	var out Joined
	var g errgroup.Group

	g.Go(func() error {
		list, err := todos.Load(ctx, f)
		if err != nil {
			return err
		}
		out.Todos = list
		return nil
	})
	g.Go(func() error {
		out.Directory, out.UsersErr = users.Load(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Joined{UsersErr: out.UsersErr}, err
	}
	return out, nil
}
