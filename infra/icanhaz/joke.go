package icanhaz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/CrestNiraj12/jokeboard/domain"
)

// jokeService implements app.JokeSource using the icanhazdadjoke API.
type jokeService struct {
	client *Client
	schema *jsonschema.Schema
}

// NewJokeService creates a JokeSource backed by the joke API.
func NewJokeService(client *Client) *jokeService {
	return &jokeService{
		client: client,
		schema: jokeSchema,
	}
}

// apiJoke is the subset of the API's joke object we care about.
type apiJoke struct {
	ID     any    `json:"id"` // string, or json.Number for numeric ids
	Joke   string `json:"joke"`
	Status int    `json:"status"`
}

const jokeSchemaURL = "https://icanhazdadjoke.com/schema/joke.json"

const jokeSchemaJSON = `{
	"type": "object",
	"required": ["id", "joke"],
	"properties": {
		"id":     {"type": ["string", "integer"], "minLength": 1},
		"joke":   {"type": "string", "minLength": 1},
		"status": {"type": "integer"}
	}
}`

var jokeSchema = jsonschema.MustCompileString(jokeSchemaURL, jokeSchemaJSON)

func (s *jokeService) FetchJoke(ctx context.Context) (domain.Joke, error) {
	data, err := s.client.Get(ctx, "/")
	if err != nil {
		return domain.Joke{}, fmt.Errorf("fetching joke: %w", err)
	}
	return s.parseJoke(data)
}

func (s *jokeService) parseJoke(data []byte) (domain.Joke, error) {
	var doc any
	if err := decodeNumbers(data, &doc); err != nil {
		return domain.Joke{}, fmt.Errorf("%w: %v", domain.ErrMalformedJoke, err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return domain.Joke{}, fmt.Errorf("%w: %v", domain.ErrMalformedJoke, err)
	}

	var raw apiJoke
	if err := decodeNumbers(data, &raw); err != nil {
		return domain.Joke{}, fmt.Errorf("%w: %v", domain.ErrMalformedJoke, err)
	}

	id := sanitizeForTerminal(strings.TrimSpace(fmt.Sprint(raw.ID)))
	text := strings.TrimSpace(sanitizeForTerminal(raw.Joke))
	if id == "" || text == "" {
		return domain.Joke{}, domain.ErrMalformedJoke
	}
	return domain.Joke{ID: id, Text: text}, nil
}

func decodeNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

var crlfRe = regexp.MustCompile(`\r\n?`)

// sanitizeForTerminal strips escape sequences and control characters that
// would let remote text move the cursor or recolour the screen. Newlines and
// tabs are kept.
func sanitizeForTerminal(s string) string {
	s = crlfRe.ReplaceAllString(s, "\n")
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0x80 && r < 0xa0:
			return -1
		default:
			return r
		}
	}, s)
}
