package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/studyplan/internal/config"
	"github.com/Iron-Ham/studyplan/internal/tui/msg"
)

// App wraps the Bubbletea program
type App struct {
	program     *tea.Program
	model       Model
	watchConfig bool
}

// New creates a new TUI application. With watchConfig set, edits to the
// config file are applied while the program runs.
func New(opts Options, watchConfig bool) *App {
	return &App{
		model:       NewModel(opts),
		watchConfig: watchConfig,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	// Reloads arrive on the watcher's goroutine; Send hands them to Update.
	if a.watchConfig {
		config.Watch(
			func(cfg *config.Config) { a.program.Send(msg.ConfigChangedMsg{Config: cfg}) },
			func(err error) { a.program.Send(msg.ConfigErrorMsg{Err: err}) },
		)
	}

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}
