// Package tui is the interactive todo screen.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/todofeed/internal/directory"
	"github.com/idilsaglam/todofeed/internal/feed"
	"github.com/idilsaglam/todofeed/internal/model"
	"github.com/idilsaglam/todofeed/internal/ui"
)

// Status of one fetch.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Options tune the screen.
type Options struct {
	Theme     ui.Theme
	Filter    model.Filter
	AltScreen bool
}

type todosLoadedMsg struct {
	todos []model.Todo
	err   error
}

type usersLoadedMsg struct {
	dir directory.Directory
	err error
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, progress bar, filter bar, blank line, panel border
	chromeHeight = 8
)

// Model is the screen controller. Filter and panel visibility are
// independent; every combination is valid.
type Model struct {
	ctx   context.Context
	todos *feed.TodoListLoader
	users *feed.UserDirectoryLoader
	log   *zap.SugaredLogger

	theme ui.Theme
	keys  keyMap

	todosStatus Status
	usersStatus Status
	todosErr    error
	usersErr    error

	raw []model.Todo
	dir directory.Directory

	filter    model.Filter
	panelOpen bool

	list    list.Model
	spinner spinner.Model
	width   int
	height  int
}

// New builds the screen; both fetches start from Init.
func New(ctx context.Context, opt Options, todos *feed.TodoListLoader, users *feed.UserDirectoryLoader, log *zap.SugaredLogger) Model {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	th := opt.Theme
	if th.Name == "" {
		th = ui.ThemeByName("classic")
	}

	l := list.New(nil, cardDelegate{theme: th}, defaultWidth-4, defaultHeight-chromeHeight)
	l.KeyMap = listKeyMap()
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = th.Help
	l.Styles.PaginationStyle = th.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	keys := newKeyMap()
	extra := func() []key.Binding { return []key.Binding{keys.Filter, keys.Choose, keys.Reload} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Accent

	return Model{
		ctx:         ctx,
		todos:       todos,
		users:       users,
		log:         log,
		theme:       th,
		keys:        keys,
		todosStatus: StatusLoading,
		usersStatus: StatusLoading,
		filter:      opt.Filter,
		list:        l,
		spinner:     sp,
		width:       defaultWidth,
		height:      defaultHeight,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, opt Options, todos *feed.TodoListLoader, users *feed.UserDirectoryLoader, log *zap.SugaredLogger) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opt.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(New(ctx, opt, todos, users, log), progOpts...).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchTodos(), m.fetchUsers())
}

func (m Model) fetchTodos() tea.Cmd {
	loader, ctx := m.todos, m.ctx
	return func() tea.Msg {
		todos, err := loader.Fetch(ctx)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m Model) fetchUsers() tea.Cmd {
	loader, ctx := m.users, m.ctx
	return func() tea.Msg {
		dir, err := loader.Load(ctx)
		return usersLoadedMsg{dir: dir, err: err}
	}
}

func (m Model) loading() bool {
	return m.todosStatus == StatusLoading || m.usersStatus == StatusLoading
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(max(msg.Width-4, 20), max(msg.Height-chromeHeight, 4))
		return m, nil

	case todosLoadedMsg:
		if msg.err != nil {
			m.todosStatus, m.todosErr = StatusFailed, msg.err
			m.raw = nil
		} else {
			m.todosStatus, m.todosErr = StatusReady, nil
			m.raw = msg.todos
		}
		m.log.Debugw("todos status", "status", m.todosStatus.String())
		return m, m.refreshItems()

	case usersLoadedMsg:
		// A failed fetch keeps the previous snapshot; names stay blank if there was none.
		if msg.err != nil {
			m.usersStatus, m.usersErr = StatusFailed, msg.err
			return m, nil
		}
		m.usersStatus, m.usersErr = StatusReady, nil
		m.dir = msg.dir
		return m, m.refreshItems()

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case m.panelOpen && key.Matches(msg, m.keys.Close):
			m.panelOpen = false
			return m, nil
		case key.Matches(msg, m.keys.Quit) && m.list.FilterState() == list.Unfiltered:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.panelOpen = !m.panelOpen
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			return m.reload()
		}
		if m.panelOpen {
			switch {
			case key.Matches(msg, m.keys.All):
				return m, m.setFilter(model.FilterAll)
			case key.Matches(msg, m.keys.Completed):
				return m, m.setFilter(model.FilterCompleted)
			case key.Matches(msg, m.keys.Incomplete):
				return m, m.setFilter(model.FilterIncomplete)
			case key.Matches(msg, m.keys.Next):
				return m, m.setFilter(m.filter.Next())
			case key.Matches(msg, m.keys.Prev):
				return m, m.setFilter(m.filter.Prev())
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// setFilter re-applies the predicate to the todos already held; it never refetches.
func (m *Model) setFilter(f model.Filter) tea.Cmd {
	if f == m.filter {
		return nil
	}
	m.filter = f
	m.log.Debugw("filter changed", "filter", f.String())
	cmd := m.refreshItems()
	m.list.ResetSelected()
	return cmd
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.loading() {
		return m, nil
	}
	m.todosStatus, m.usersStatus = StatusLoading, StatusLoading
	m.log.Infow("reloading")
	return m, tea.Batch(m.spinner.Tick, m.fetchTodos(), m.fetchUsers())
}

// refreshItems rebuilds the cards from the current todos, filter and directory.
func (m *Model) refreshItems() tea.Cmd {
	visible := m.filter.Apply(m.raw)
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, cardItem{id: t.ID, card: ui.NewTodoCard(t, m.dir)})
	}
	return m.list.SetItems(items)
}

// Visible returns the cards currently in the list, in order.
func (m Model) Visible() []ui.TodoCard {
	items := m.list.Items()
	out := make([]ui.TodoCard, 0, len(items))
	for _, it := range items {
		if ci, ok := it.(cardItem); ok {
			out = append(out, ci.card)
		}
	}
	return out
}

func (m Model) Filter() model.Filter { return m.filter }
func (m Model) PanelOpen() bool      { return m.panelOpen }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(ui.Header(m.theme, m.raw))
	b.WriteString("\n")
	done, _ := model.Stats(m.raw)
	b.WriteString(m.theme.Muted.Render(ui.ProgressBar(m.theme, done, len(m.raw), 28)))
	b.WriteString("\n")
	b.WriteString(ui.FilterBar(m.theme, m.panelOpen, m.filter))
	b.WriteString("\n\n")

	switch m.todosStatus {
	case StatusLoading:
		b.WriteString(m.spinner.View() + " " + ui.LoadingText)
	case StatusFailed:
		b.WriteString(m.theme.Error.Render(ui.StatusText(m.todosErr)))
	default:
		b.WriteString(m.list.View())
	}
	return ui.PanelString(m.theme, b.String())
}
