package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/jokeboard/app"
	"github.com/CrestNiraj12/jokeboard/tui/common"
	"github.com/CrestNiraj12/jokeboard/tui/jokes"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Source      app.JokeSource
	Target      int
	MaxAttempts int
	Logger      *slog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	deps  Deps
	jokes jokes.Model
	keys  common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps: deps,
		jokes: jokes.New(deps.Source, jokes.Options{
			Target:      deps.Target,
			MaxAttempts: deps.MaxAttempts,
			Logger:      deps.Logger,
		}),
		keys: common.DefaultKeyMap(),
	}
}

// Init delegates to the joke list.
func (a App) Init() tea.Cmd {
	return a.jokes.Init()
}

// Update handles global keys and routes everything else to the joke list.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.keys.Quit) {
		a.jokes.Close()
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.jokes, cmd = a.jokes.Update(msg)
	return a, cmd
}

// View renders the joke list.
func (a App) View() string {
	return a.jokes.View()
}

// Jokes exposes the joke list model.
func (a App) Jokes() jokes.Model {
	return a.jokes
}
