// Package feed wraps the two independent fetches behind the screen.
package feed

import (
	"context"

	"go.uber.org/zap"

	"github.com/idilsaglam/todofeed/internal/directory"
	"github.com/idilsaglam/todofeed/internal/model"
)

// TodoSource is satisfied by *api.Client.
type TodoSource interface {
	Todos(ctx context.Context) ([]model.Todo, error)
}

// UserSource is satisfied by *api.Client.
type UserSource interface {
	Users(ctx context.Context) ([]model.UserSummary, error)
}

// UserDirectoryLoader turns one GET /users into a directory snapshot.
type UserDirectoryLoader struct {
	src UserSource
	log *zap.SugaredLogger
}

func NewUserDirectoryLoader(src UserSource, log *zap.SugaredLogger) *UserDirectoryLoader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &UserDirectoryLoader{src: src, log: log}
}

// Load returns a new snapshot. On error the empty directory is returned and
// callers should keep whatever snapshot they already hold.
func (l *UserDirectoryLoader) Load(ctx context.Context) (directory.Directory, error) {
	users, err := l.src.Users(ctx)
	if err != nil {
		l.log.Errorw("user fetch failed", "error", err)
		return directory.Directory{}, err
	}
	dir := directory.Build(users)
	l.log.Debugw("user directory loaded", "users", dir.Len())
	return dir, nil
}

// TodoListLoader issues one GET /todos per call; filtering never changes the request.
type TodoListLoader struct {
	src TodoSource
	log *zap.SugaredLogger
}

func NewTodoListLoader(src TodoSource, log *zap.SugaredLogger) *TodoListLoader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &TodoListLoader{src: src, log: log}
}

// Fetch returns the unfiltered collection in source order.
func (l *TodoListLoader) Fetch(ctx context.Context) ([]model.Todo, error) {
	todos, err := l.src.Todos(ctx)
	if err != nil {
		l.log.Errorw("todo fetch failed", "error", err)
		return nil, err
	}
	l.log.Debugw("todos loaded", "todos", len(todos))
	return todos, nil
}

// Load fetches and applies f client-side.
func (l *TodoListLoader) Load(ctx context.Context, f model.Filter) ([]model.Todo, error) {
	todos, err := l.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(todos), nil
}
