// Package board holds the joke collection, the loading flag and the vote
// scores. It is the single owner of that state: collection runs and user
// actions reach it only through its methods, and a run may commit only
// while its token is current.
package board

import (
	"sort"

	"github.com/CrestNiraj12/jokeboard/domain"
)

// State is the board's lifecycle state.
type State int

const (
	Loading State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "loading"
}

// Token identifies one collection run. Each Activate or Refresh issues a new
// token and invalidates the previous one.
type Token uint64

// Board is the state holder for the joke list.
type Board struct {
	jokes    []domain.Joke
	state    State
	target   int
	token    Token
	progress int
	err      error
}

// New creates a board in the Loading state with the given target count.
// Targets below one fall back to 1.
func New(target int) *Board {
	if target < 1 {
		target = 1
	}
	return &Board{state: Loading, target: target}
}

// Activate sets the target, enters Loading and issues a fresh run token.
// The existing collection stays in place until the new run commits.
func (b *Board) Activate(target int) Token {
	if target >= 1 {
		b.target = target
	}
	return b.begin()
}

// Refresh empties the collection, enters Loading and issues a fresh run token.
func (b *Board) Refresh() Token {
	b.jokes = nil
	return b.begin()
}

// SetTarget changes the target count and re-activates. It reports false and
// leaves the board untouched when n is below one or unchanged.
func (b *Board) SetTarget(n int) (Token, bool) {
	if n < 1 || n == b.target {
		return b.token, false
	}
	return b.Activate(n), true
}

func (b *Board) begin() Token {
	b.token++
	b.state = Loading
	b.progress = 0
	b.err = nil
	return b.token
}

// Current reports whether t belongs to the latest run.
func (b *Board) Current(t Token) bool { return t == b.token }

// Progress records how many distinct jokes the current run has collected.
func (b *Board) Progress(t Token, n int) {
	if b.Current(t) {
		b.progress = n
	}
}

// Commit replaces the collection with jokes and enters Ready.
// Results from superseded runs are rejected with ErrStaleRun.
func (b *Board) Commit(t Token, jokes []domain.Joke) error {
	if !b.Current(t) {
		return domain.ErrStaleRun
	}
	next := make([]domain.Joke, len(jokes))
	copy(next, jokes)
	b.jokes = next
	b.state = Ready
	b.progress = len(next)
	b.err = nil
	return nil
}

// Fail records err for the current run. The board stays Loading.
func (b *Board) Fail(t Token, err error) error {
	if !b.Current(t) {
		return domain.ErrStaleRun
	}
	b.err = err
	return nil
}

// Vote adds delta to the votes of the joke with the given id.
// Unknown ids are ignored and reported as false.
func (b *Board) Vote(id string, delta int) bool {
	for i := range b.jokes {
		if b.jokes[i].ID == id {
			next := b.Jokes()
			next[i].Votes += delta
			b.jokes = next
			return true
		}
	}
	return false
}

// Sorted returns a copy of the collection ordered by votes, highest first.
// Equal scores keep their arrival order.
func (b *Board) Sorted() []domain.Joke {
	out := b.Jokes()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Votes > out[j].Votes
	})
	return out
}

// Jokes returns a copy of the collection in arrival order.
func (b *Board) Jokes() []domain.Joke {
	out := make([]domain.Joke, len(b.jokes))
	copy(out, b.jokes)
	return out
}

// State returns the lifecycle state.
func (b *Board) State() State { return b.state }

// Loading reports whether a run is in progress.
func (b *Board) Loading() bool { return b.state == Loading }

// Target returns the number of jokes collected per run.
func (b *Board) Target() int { return b.target }

// Token returns the current run token.
func (b *Board) Token() Token { return b.token }

// Collected returns the current run's progress.
func (b *Board) Collected() int { return b.progress }

// Err returns the error recorded for the current run, if any.
func (b *Board) Err() error { return b.err }
