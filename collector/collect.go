package collector

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/CrestNiraj12/jokeboard/app"
	"github.com/CrestNiraj12/jokeboard/domain"
)

type options struct {
	maxAttempts int
	logger      *slog.Logger
}

// Option configures Collect.
type Option func(*options)

// WithMaxAttempts caps the number of fetches for the run.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithLogger sets the logger used for per-attempt diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Collect fetches from src until target distinct jokes are collected.
// The first fetch error aborts the run; nothing is retried.
func Collect(ctx context.Context, src app.JokeSource, target int, opts ...Option) ([]domain.Joke, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	run, err := NewRun(target, o.maxAttempts)
	if err != nil {
		return nil, err
	}
	log := o.logger.With("run", run.ID(), "target", target)

	for !run.Done() {
		if run.Exhausted() {
			log.Error("collector: attempt limit reached", "attempts", run.Attempts(), "collected", run.Len())
			return nil, fmt.Errorf("collected %d of %d after %d attempts: %w",
				run.Len(), target, run.Attempts(), domain.ErrAttemptsExhausted)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log.Debug("collector: fetching joke", "attempt", run.Attempts()+1)
		j, err := src.FetchJoke(ctx)
		if err != nil {
			log.Error("collector: fetch failed", "attempt", run.Attempts()+1, "error", err)
			return nil, fmt.Errorf("attempt %d: %w", run.Attempts()+1, err)
		}
		log.Debug("collector: joke fetched", "id", j.ID)

		if run.Accept(j) == OutcomeDuplicate {
			log.Warn("collector: duplicate found", "id", j.ID)
		}
	}

	log.Info("collector: run complete", "attempts", run.Attempts(), "duplicates", run.Duplicates())
	return run.Jokes(), nil
}
