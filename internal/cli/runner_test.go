package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todofeed/internal/directory"
	"github.com/idilsaglam/todofeed/internal/model"
	"github.com/idilsaglam/todofeed/internal/ui"
)

const (
	todosJSON = `[
  {"userId":5,"id":1,"title":"A","completed":true},
  {"userId":6,"id":2,"title":"B","completed":false}
]`
	usersJSON = `[{"id":5,"name":"Bob","username":"bob"},{"id":6,"name":"Ann","username":"ann"}]`
)

func fakeAPI(t *testing.T, users int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/todos":
			_, _ = w.Write([]byte(todosJSON))
		case "/users":
			if users != http.StatusOK {
				w.WriteHeader(users)
				return
			}
			_, _ = w.Write([]byte(usersJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	var out, errOut bytes.Buffer
	code := Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestLsRendersJoinedTodos(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK)

	code, out, _ := run(t, "ls", "--base-url", srv.URL, "--theme", "mono")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1. A")
	assert.Contains(t, out, "@ bob")
	assert.Contains(t, out, "x Complete")
	assert.Contains(t, out, "2. B")
	assert.Contains(t, out, "@ ann")
	assert.Contains(t, out, "- Uncomplete")
	assert.Contains(t, out, "filter: all")
}

func TestLsFilterIncomplete(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK)

	code, out, _ := run(t, "ls", "--base-url", srv.URL, "--theme", "mono", "--filter", "incomplete")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1. B")
	assert.NotContains(t, out, "@ bob")
	assert.NotContains(t, out, "x Complete")
}

func TestLsGroup(t *testing.T) {
	srv := fakeAPI(t, http.StatusOK)

	code, out, _ := run(t, "ls", "--group", "--base-url", srv.URL, "--theme", "mono")
	require.Equal(t, 0, code)
	b := strings.Index(out, "1. B")
	a := strings.Index(out, "1. A")
	require.GreaterOrEqual(t, b, 0)
	require.GreaterOrEqual(t, a, 0)
	assert.Less(t, b, a, "uncomplete group comes first")
}

func TestLsUserFailureRendersBlankNames(t *testing.T) {
	srv := fakeAPI(t, http.StatusServiceUnavailable)

	code, out, _ := run(t, "ls", "--base-url", srv.URL, "--theme", "mono", "--log-level", "error")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1. A")
	assert.Contains(t, out, "2. B")
	assert.NotContains(t, out, "bob")
}

func TestLsTodoFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	code, _, errOut := run(t, "ls", "--base-url", srv.URL, "--theme", "mono")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "An error has occurred")
}

func TestUsageErrors(t *testing.T) {
	code, out, errOut := run(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown subcommand: frobnicate")
	assert.Contains(t, errOut, "Usage:")
	assert.Empty(t, out)

	code, out, errOut = run(t, "ls", "--no-such-flag")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage:")

	code, _, errOut = run(t, "ls", "--theme", "rainbow")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid config")
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "todofeed "+Version)
}

func TestFlatLinesCutsLongTitlesOnCharacterBoundaries(t *testing.T) {
	title := strings.Repeat("a", 60) + "ééééé"
	lines := flatLines(ui.ThemeByName("mono"), []model.Todo{{ID: 1, Title: title}}, directory.Directory{})
	require.Len(t, lines, 2)

	assert.True(t, utf8.ValidString(lines[0]))
	assert.Equal(t, "  1. "+strings.Repeat("a", 60)+"é...", lines[0])
}

func TestFlatLinesKeepsShortTitles(t *testing.T) {
	lines := flatLines(ui.ThemeByName("mono"), []model.Todo{{ID: 1, Title: "café"}}, directory.Directory{})
	assert.Equal(t, "  1. café", lines[0])
}
