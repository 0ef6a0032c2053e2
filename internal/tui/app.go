package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
}

// New creates the dashboard program. Extra program options are appended
// after the defaults.
func New(opts Options, programOpts ...tea.ProgramOption) *App {
	all := append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	return &App{program: tea.NewProgram(NewModel(opts), all...)}
}

// Run starts the dashboard and blocks until the user quits or Done is called.
func (a *App) Run() error {
	_, err := a.program.Run()
	return err
}

// Done tells the dashboard that the run has ended so it can exit.
func (a *App) Done() {
	a.program.Send(DoneMsg{})
}
