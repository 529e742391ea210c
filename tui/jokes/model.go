package jokes

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/jokeboard/app"
	"github.com/CrestNiraj12/jokeboard/board"
	"github.com/CrestNiraj12/jokeboard/collector"
	"github.com/CrestNiraj12/jokeboard/domain"
	"github.com/CrestNiraj12/jokeboard/infra/logging"
	"github.com/CrestNiraj12/jokeboard/tui/common"
)

// --- Messages ---

// JokeFetchedMsg is sent when one fetch of the current run returns a joke.
type JokeFetchedMsg struct {
	Token board.Token
	Joke  domain.Joke
}

// FetchFailedMsg is sent when a fetch fails. The run stops.
type FetchFailedMsg struct {
	Token board.Token
	Err   error
}

// CollectionCompleteMsg carries a finished collection to the board.
type CollectionCompleteMsg struct {
	Token board.Token
	Jokes []domain.Joke
}

// VoteMsg is sent by a joke delegate when the user votes.
type VoteMsg struct {
	ID    string
	Delta int
}

// RefreshMsg asks for a new set of jokes.
type RefreshMsg struct{}

// TargetChangedMsg changes how many jokes a run collects.
type TargetChangedMsg struct {
	N int
}

// --- Model ---

// Options configures the joke list model.
type Options struct {
	Target      int
	MaxAttempts int
	Logger      *slog.Logger
}

// Model is the interactive joke board: it drives collection runs one fetch
// at a time and renders the board's sorted jokes.
type Model struct {
	source      app.JokeSource
	board       *board.Board
	run         *collector.Run
	ctx         context.Context
	cancel      context.CancelFunc
	maxAttempts int
	log         *slog.Logger

	keys     common.KeyMap
	spinner  spinner.Model
	help     help.Model
	showHelp bool

	cursor     int
	selectedID string
	width      int
	height     int
}

// New creates the model and activates the first run.
func New(source app.JokeSource, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = common.SpinnerStyle

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	m := Model{
		source:      source,
		board:       board.New(opts.Target),
		maxAttempts: opts.MaxAttempts,
		log:         log,
		keys:        common.DefaultKeyMap(),
		spinner:     s,
		help:        help.New(),
	}
	m.beginRun(m.board.Activate(opts.Target))
	return m
}

// Init starts fetching for the first run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchNext(),
		m.spinner.Tick,
	)
}

// Update handles messages for the joke list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// beginRun cancels any in-flight request and starts a collector run for t.
func (m *Model) beginRun(t board.Token) {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.cursor = 0
	m.selectedID = ""

	run, err := collector.NewRun(m.board.Target(), m.maxAttempts)
	if err != nil {
		m.run = nil
		_ = m.board.Fail(t, err)
		m.log.Error("board: cannot start run", "error", err)
		return
	}
	m.run = run
	m.log.Info("board: run started",
		"run", run.ID(), "token", uint64(t), "target", run.Target(), "max_attempts", run.MaxAttempts())
}

func (m Model) fetchNext() tea.Cmd {
	if m.run == nil {
		return nil
	}
	source := m.source
	ctx := m.ctx
	token := m.board.Token()
	log := m.log.With("run", m.run.ID())
	attempt := m.run.Attempts() + 1
	return func() tea.Msg {
		log.Debug("collector: fetching joke", "attempt", attempt)
		j, err := source.FetchJoke(ctx)
		if err != nil {
			return FetchFailedMsg{Token: token, Err: err}
		}
		log.Debug("collector: joke fetched", "id", j.ID)
		return JokeFetchedMsg{Token: token, Joke: j}
	}
}

// Board exposes the underlying state holder.
func (m Model) Board() *board.Board {
	return m.board
}

// Loading reports whether a run is in progress.
func (m Model) Loading() bool {
	return m.board.Loading()
}

// Cursor returns the position of the selection in the sorted list.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedJoke returns the highlighted joke, if any.
func (m Model) SelectedJoke() (domain.Joke, bool) {
	if m.board.Loading() {
		return domain.Joke{}, false
	}
	sorted := m.board.Sorted()
	if m.cursor < 0 || m.cursor >= len(sorted) {
		return domain.Joke{}, false
	}
	return sorted[m.cursor], true
}

// Close cancels any in-flight request.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}
