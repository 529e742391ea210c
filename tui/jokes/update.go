package jokes

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/jokeboard/collector"
	"github.com/CrestNiraj12/jokeboard/domain"
	"github.com/CrestNiraj12/jokeboard/tui/joke"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case JokeFetchedMsg:
		return m.handleJokeFetched(msg)

	case FetchFailedMsg:
		return m.handleFetchFailed(msg)

	case CollectionCompleteMsg:
		return m.handleCollectionComplete(msg)

	case VoteMsg:
		if m.board.Vote(msg.ID, msg.Delta) {
			m.log.Debug("board: vote", "id", msg.ID, "delta", msg.Delta)
			m.followSelection()
		}
		return m, nil

	case RefreshMsg:
		return m.refresh()

	case TargetChangedMsg:
		return m.setTarget(msg.N)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) refresh() (Model, tea.Cmd) {
	m.beginRun(m.board.Refresh())
	return m, m.fetchNext()
}

// setTarget applies n right away so repeated key presses build on each other.
func (m Model) setTarget(n int) (Model, tea.Cmd) {
	t, ok := m.board.SetTarget(n)
	if !ok {
		return m, nil
	}
	m.log.Info("board: target changed", "target", n)
	m.beginRun(t)
	return m, m.fetchNext()
}

func (m Model) handleJokeFetched(msg JokeFetchedMsg) (Model, tea.Cmd) {
	if !m.board.Current(msg.Token) || m.run == nil {
		m.log.Debug("board: dropping joke from superseded run", "token", uint64(msg.Token))
		return m, nil
	}

	log := m.log.With("run", m.run.ID())
	switch m.run.Accept(msg.Joke) {
	case collector.OutcomeIgnored:
		return m, nil
	case collector.OutcomeDuplicate:
		log.Warn("collector: duplicate found", "id", msg.Joke.ID)
	case collector.OutcomeComplete:
		m.board.Progress(msg.Token, m.run.Len())
		token, jokes := msg.Token, m.run.Jokes()
		log.Info("collector: run complete", "attempts", m.run.Attempts(), "duplicates", m.run.Duplicates())
		return m, func() tea.Msg {
			return CollectionCompleteMsg{Token: token, Jokes: jokes}
		}
	}
	m.board.Progress(msg.Token, m.run.Len())

	if m.run.Exhausted() {
		err := fmt.Errorf("collected %d of %d after %d attempts: %w",
			m.run.Len(), m.run.Target(), m.run.Attempts(), domain.ErrAttemptsExhausted)
		log.Error("collector: attempt limit reached", "error", err)
		_ = m.board.Fail(msg.Token, err)
		return m, nil
	}
	return m, m.fetchNext()
}

func (m Model) handleFetchFailed(msg FetchFailedMsg) (Model, tea.Cmd) {
	if !m.board.Current(msg.Token) || errors.Is(msg.Err, context.Canceled) {
		return m, nil
	}
	m.log.Error("collector: fetch failed", "token", uint64(msg.Token), "error", msg.Err)
	_ = m.board.Fail(msg.Token, msg.Err)
	return m, nil
}

func (m Model) handleCollectionComplete(msg CollectionCompleteMsg) (Model, tea.Cmd) {
	if err := m.board.Commit(msg.Token, msg.Jokes); err != nil {
		m.log.Debug("board: dropping stale collection", "token", uint64(msg.Token))
		return m, nil
	}
	m.log.Info("board: collection committed", "jokes", len(msg.Jokes))
	m.cursor = 0
	m.selectedID = ""
	if sorted := m.board.Sorted(); len(sorted) > 0 {
		m.selectedID = sorted[0].ID
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleHelp):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.More):
		return m.setTarget(m.board.Target() + 1)

	case key.Matches(msg, m.keys.Fewer):
		return m.setTarget(m.board.Target() - 1)
	}

	if m.board.Loading() {
		return m, nil
	}

	sorted := m.board.Sorted()
	if len(sorted) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(sorted)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(sorted) - 1
	default:
		if m.cursor >= len(sorted) {
			m.cursor = len(sorted) - 1
		}
		j := sorted[m.cursor]
		return m, joke.New(j.Text, j.ID, j.Votes, voteCmd).Update(msg)
	}
	m.selectedID = sorted[m.cursor].ID
	return m, nil
}

// voteCmd is the callback handed to each joke delegate.
func voteCmd(id string, delta int) tea.Cmd {
	return func() tea.Msg { return VoteMsg{ID: id, Delta: delta} }
}

// followSelection keeps the cursor on the selected joke after a re-sort.
func (m *Model) followSelection() {
	if m.selectedID == "" {
		return
	}
	for i, j := range m.board.Sorted() {
		if j.ID == m.selectedID {
			m.cursor = i
			return
		}
	}
}
