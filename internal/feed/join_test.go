package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todofeed/internal/model"
)

func TestLoadJoinedScenario(t *testing.T) {
	src := &fakeSource{
		todos: []model.Todo{{ID: 1, UserID: 5, Title: "A", Completed: true}},
		users: []model.UserSummary{{ID: 5, Username: "bob"}},
	}

	got, err := LoadJoined(context.Background(), NewTodoListLoader(src, nil), NewUserDirectoryLoader(src, nil), model.FilterAll)
	require.NoError(t, err)
	require.NoError(t, got.UsersErr)
	require.Len(t, got.Todos, 1)
	assert.Equal(t, "bob", got.Directory.Name(got.Todos[0].UserID))
}

func TestLoadJoinedUserFailureStillReturnsTodos(t *testing.T) {
	src := &fakeSource{
		todos:   []model.Todo{{ID: 1, UserID: 5, Title: "A"}},
		userErr: errors.New("users down"),
	}

	got, err := LoadJoined(context.Background(), NewTodoListLoader(src, nil), NewUserDirectoryLoader(src, nil), model.FilterAll)
	require.NoError(t, err)
	require.Error(t, got.UsersErr)
	require.Len(t, got.Todos, 1)
	assert.Empty(t, got.Directory.Name(5))
}

func TestLoadJoinedTodoFailure(t *testing.T) {
	boom := errors.New("todos down")
	src := &fakeSource{todoErr: boom, users: []model.UserSummary{{ID: 1, Username: "x"}}}

	_, err := LoadJoined(context.Background(), NewTodoListLoader(src, nil), NewUserDirectoryLoader(src, nil), model.FilterCompleted)
	require.ErrorIs(t, err, boom)
}
