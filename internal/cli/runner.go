package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/todofeed/internal/api"
	"github.com/idilsaglam/todofeed/internal/config"
	"github.com/idilsaglam/todofeed/internal/directory"
	"github.com/idilsaglam/todofeed/internal/feed"
	"github.com/idilsaglam/todofeed/internal/logger"
	"github.com/idilsaglam/todofeed/internal/model"
	"github.com/idilsaglam/todofeed/internal/tui"
	"github.com/idilsaglam/todofeed/internal/ui"
)

var Version = "0.1.0"

// usageError marks errors that exit with code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries what every subcommand needs once config is loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	theme   ui.Theme
	log     *zap.SugaredLogger

	todos *feed.TodoListLoader
	users *feed.UserDirectoryLoader

	stdout, stderr io.Writer
}

// Run executes args and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, theme: ui.ThemeByName("classic")}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err == nil {
		return 0
	}
	ui.Fail(stderr, a.theme, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, root.UsageString())
		return 2
	}
	return 1
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todofeed",
		Short: "Browse todos from a JSONPlaceholder-style API",
		Long: `todofeed fetches todos and users from a REST API, joins each todo with
its owner's username and lets you filter by completion status.

Without a subcommand the interactive screen is started.`,
		Example: `  todofeed
  todofeed ls --filter completed
  todofeed ls --group --theme mono
  TODOFEED_API_BASE_URL=http://localhost:3000 todofeed`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown subcommand: %s", args[0])}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runTUI,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("base-url", "", "API base URL (default "+api.DefaultBaseURL+")")
	pf.Duration("timeout", 0, "HTTP request timeout, 0 for none")
	pf.String("theme", "", "theme: "+strings.Join(ui.Themes, ", "))
	pf.String("filter", "", "initial filter: all, completed or incomplete")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-file", "", "log destination (file path or stderr)")

	root.AddCommand(a.tuiCommand(), a.lsCommand(), versionCommand())
	return root
}

// setup loads config and builds the logger and loaders. logDefault is used
// when no log file is configured.
func (a *app) setup(cmd *cobra.Command, logDefault string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return usageError{err}
	}
	a.cfg = cfg
	a.theme = ui.ThemeByName(cfg.UI.Theme)

	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = logDefault
	}
	log, err := logger.New(cfg.Logging.Level, logPath)
	if err != nil {
		return err
	}
	a.log = log

	client := api.New(cfg.API.BaseURL, cfg.API.RequestTimeout)
	a.todos = feed.NewTodoListLoader(client, log.Named("todos"))
	a.users = feed.NewUserDirectoryLoader(client, log.Named("users"))
	log.Debugw("config loaded", "base_url", client.BaseURL(), "theme", a.theme.Name, "filter", cfg.UI.Filter)
	return nil
}

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive screen (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	// The screen owns stdout, so logs only go somewhere if a file is configured.
	if err := a.setup(cmd, ""); err != nil {
		return err
	}
	err := tui.Run(cmd.Context(), tui.Options{
		Theme:     a.theme,
		Filter:    a.cfg.InitialFilter(),
		AltScreen: a.cfg.UI.AltScreen,
	}, a.todos, a.users, a.log)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a *app) lsCommand() *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print todos once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd, "stderr"); err != nil {
				return err
			}
			return a.doList(cmd.Context(), group)
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by uncomplete/complete")
	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "todofeed %s\n", Version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// -------------- subcommand impls ----------------

func (a *app) doList(ctx context.Context, group bool) error {
	filter := a.cfg.InitialFilter()
	joined, err := feed.LoadJoined(ctx, a.todos, a.users, filter)
	if err != nil {
		// Same static text the screen shows; the cause is in the log.
		return errors.New(ui.StatusText(err))
	}
	if joined.UsersErr != nil {
		a.log.Warnw("rendering without usernames", "error", joined.UsersErr)
	}

	t := a.theme
	done, _ := model.Stats(joined.Todos)
	lines := []string{
		ui.Header(t, joined.Todos),
		t.Muted.Render(ui.ProgressBar(t, done, len(joined.Todos), 28)),
		t.Muted.Render("filter: " + filter.String()),
		"",
	}
	if group {
		lines = append(lines, groupLines(t, joined.Todos, joined.Directory)...)
	} else {
		lines = append(lines, flatLines(t, joined.Todos, joined.Directory)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: run `todofeed` for the interactive screen"))
	fmt.Fprintln(a.stdout, ui.Panel(t, lines))
	return nil
}

// -------------- rendering helpers --------------

const cardWidth = 64

func flatLines(t ui.Theme, todos []model.Todo, dir directory.Directory) []string {
	if len(todos) == 0 {
		return []string{t.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(todos)*2)
	for i, td := range todos {
		card := ui.NewTodoCard(td, dir)
		title := ui.TruncateTitle(card.Title, cardWidth)
		out = append(out,
			fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%3d.", i+1)), title),
			"     "+card.Meta(t, cardWidth),
		)
	}
	return out
}

func groupLines(t ui.Theme, todos []model.Todo, dir directory.Directory) []string {
	var lines []string
	for _, f := range []model.Filter{model.FilterIncomplete, model.FilterCompleted} {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(f.Label()))
		part := f.Apply(todos)
		if len(part) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			continue
		}
		lines = append(lines, flatLines(t, part, dir)...)
	}
	return lines
}
