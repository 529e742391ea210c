// Package collector accumulates distinct jokes from a JokeSource.
//
// A Run holds the seen-set and the growing collection for one activation.
// It performs no I/O itself; callers fetch a joke and hand it to Accept,
// either synchronously through Collect or one message at a time from the TUI.
package collector

import (
	"github.com/google/uuid"

	"github.com/CrestNiraj12/jokeboard/domain"
)

// DefaultAttemptFactor bounds a run to target*DefaultAttemptFactor fetches
// when no explicit limit is configured.
const DefaultAttemptFactor = 10

// Outcome reports what Accept did with a fetched joke.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeDuplicate
	OutcomeComplete
	OutcomeIgnored // Run already finished or exhausted.
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeComplete:
		return "complete"
	default:
		return "ignored"
	}
}

// Run is one collection pass toward a target count of distinct jokes.
type Run struct {
	id          string
	target      int
	maxAttempts int
	attempts    int
	duplicates  int
	seen        map[string]struct{}
	jokes       []domain.Joke
}

// NewRun starts an empty run. maxAttempts <= 0 selects the default bound.
func NewRun(target, maxAttempts int) (*Run, error) {
	if target < 1 {
		return nil, domain.ErrInvalidTarget
	}
	if maxAttempts <= 0 {
		maxAttempts = target * DefaultAttemptFactor
	}
	if maxAttempts < target {
		maxAttempts = target
	}
	return &Run{
		id:          uuid.NewString(),
		target:      target,
		maxAttempts: maxAttempts,
		seen:        make(map[string]struct{}, target),
		jokes:       make([]domain.Joke, 0, target),
	}, nil
}

// ID identifies the run in logs.
func (r *Run) ID() string { return r.id }

// Target returns the number of distinct jokes the run collects.
func (r *Run) Target() int { return r.target }

// MaxAttempts returns the fetch bound for the run.
func (r *Run) MaxAttempts() int { return r.maxAttempts }

// Attempts returns how many fetched jokes were offered, duplicates included.
func (r *Run) Attempts() int { return r.attempts }

// Duplicates returns how many fetched jokes were discarded.
func (r *Run) Duplicates() int { return r.duplicates }

// Len returns the number of distinct jokes collected so far.
func (r *Run) Len() int { return len(r.jokes) }

// Done reports whether the target has been reached.
func (r *Run) Done() bool { return len(r.jokes) >= r.target }

// Exhausted reports whether the attempt bound was hit without reaching the target.
func (r *Run) Exhausted() bool {
	return !r.Done() && r.attempts >= r.maxAttempts
}

// Accept records one fetched joke. A joke whose id was already seen in this
// run is discarded; otherwise it is appended with its votes reset to zero.
func (r *Run) Accept(j domain.Joke) Outcome {
	if r.Done() || r.Exhausted() {
		return OutcomeIgnored
	}
	r.attempts++
	if _, ok := r.seen[j.ID]; ok {
		r.duplicates++
		return OutcomeDuplicate
	}
	r.seen[j.ID] = struct{}{}
	j.Votes = 0
	r.jokes = append(r.jokes, j)
	if r.Done() {
		return OutcomeComplete
	}
	return OutcomeAdded
}

// Jokes returns a copy of the collection in arrival order.
func (r *Run) Jokes() []domain.Joke {
	out := make([]domain.Joke, len(r.jokes))
	copy(out, r.jokes)
	return out
}
