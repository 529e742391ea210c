package domain

import "errors"

var (
	// ErrMalformedJoke indicates the source returned a payload without a usable id or text.
	ErrMalformedJoke = errors.New("malformed joke payload")

	// ErrAttemptsExhausted indicates a run hit its attempt bound before collecting enough distinct jokes.
	ErrAttemptsExhausted = errors.New("attempt limit reached before target count")

	// ErrInvalidTarget indicates a target count below one.
	ErrInvalidTarget = errors.New("target count must be at least 1")

	// ErrStaleRun indicates a result from a run that has since been superseded.
	ErrStaleRun = errors.New("stale collection run")
)
