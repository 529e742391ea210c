package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/CrestNiraj12/jokeboard/board"
	"github.com/CrestNiraj12/jokeboard/collector"
	"github.com/CrestNiraj12/jokeboard/domain"
	"github.com/CrestNiraj12/jokeboard/infra/config"
	"github.com/CrestNiraj12/jokeboard/infra/logging"
)

// jokeRecord is the output shape for json and yaml formats.
type jokeRecord struct {
	ID    string `json:"id" yaml:"id"`
	Joke  string `json:"joke" yaml:"joke"`
	Votes int    `json:"votes" yaml:"votes"`
}

func newFetchCmd(cfg *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Collect one set of distinct jokes and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unsupported format %q (text, json, yaml)", format)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			jokes, err := collector.Collect(ctx, newSource(*cfg), cfg.Count,
				collector.WithMaxAttempts(cfg.MaxAttempts),
				collector.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			b := board.New(cfg.Count)
			if err := b.Commit(b.Activate(cfg.Count), jokes); err != nil {
				return err
			}
			return writeJokes(cmd.OutOrStdout(), format, b.Sorted())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml")
	return cmd
}

func writeJokes(w io.Writer, format string, jokes []domain.Joke) error {
	records := make([]jokeRecord, len(jokes))
	for i, j := range jokes {
		records[i] = jokeRecord{ID: j.ID, Joke: j.Text, Votes: j.Votes}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, r := range records {
			if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, r.Joke); err != nil {
				return err
			}
		}
		return nil
	}
}
