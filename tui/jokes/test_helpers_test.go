package jokes

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/jokeboard/domain"
)

// stubSource returns jokes with the scripted ids in order.
type stubSource struct {
	ids   []string
	calls int
	err   error
}

func (s *stubSource) FetchJoke(ctx context.Context) (domain.Joke, error) {
	if err := ctx.Err(); err != nil {
		return domain.Joke{}, err
	}
	if s.err != nil {
		return domain.Joke{}, s.err
	}
	id := s.ids[s.calls%len(s.ids)]
	s.calls++
	return domain.Joke{ID: id, Text: "joke " + id}, nil
}

func makeJoke(id string) domain.Joke {
	return domain.Joke{ID: id, Text: "joke " + id}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// readyModel returns a model whose board holds the given jokes.
func readyModel(t *testing.T, ids ...string) Model {
	t.Helper()
	m := New(&stubSource{ids: ids}, Options{Target: len(ids)})
	jokes := make([]domain.Joke, len(ids))
	for i, id := range ids {
		jokes[i] = makeJoke(id)
	}
	m, _ = m.Update(CollectionCompleteMsg{Token: m.board.Token(), Jokes: jokes})
	if m.Loading() {
		t.Fatalf("expected ready model")
	}
	return m
}

// drive feeds msg to the model and keeps running the returned command while
// it produces collection messages, like the Bubble Tea runtime would.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	for i := 0; msg != nil && i < 100; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd == nil {
			return m
		}
		msg = cmd()
	}
	return m
}

func sortedIDs(m Model) []string {
	sorted := m.board.Sorted()
	out := make([]string, len(sorted))
	for i, j := range sorted {
		out[i] = j.ID
	}
	return out
}
