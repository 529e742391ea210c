package domain

// Joke is a single joke accepted onto the board.
type Joke struct {
	ID    string // Source-assigned, immutable
	Text  string // Plain text, terminal-safe
	Votes int    // Signed score, starts at 0
}
