package app

import (
	"context"

	"github.com/CrestNiraj12/jokeboard/domain"
)

// JokeSource fetches jokes one at a time from a remote source.
type JokeSource interface {
	// FetchJoke performs a single round trip and returns one joke.
	// The same joke may be returned by repeated calls.
	FetchJoke(ctx context.Context) (domain.Joke, error)
}
