package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CrestNiraj12/jokeboard/app"
	"github.com/CrestNiraj12/jokeboard/infra/config"
	"github.com/CrestNiraj12/jokeboard/infra/icanhaz"
	"github.com/CrestNiraj12/jokeboard/infra/logging"
	"github.com/CrestNiraj12/jokeboard/tui"
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with its own config state.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     config.Config
	)
	v := config.NewViper()

	root := &cobra.Command{
		Use:          "jokeboard",
		Short:        "Vote dad jokes up and down in your terminal",
		Long:         "jokeboard collects a set of distinct dad jokes and lets you vote them into order.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cfg)
		},
	}

	stamp := currentBuildStamp()
	root.Version = stamp.Version
	root.SetVersionTemplate(stamp.String())

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./jokeboard.yaml or ~/.config/jokeboard/jokeboard.yaml)")
	flags.IntP("count", "n", config.DefaultCount, "number of distinct jokes per run")
	flags.Int("max-attempts", 0, "fetch attempts per run before giving up (0: count*10)")
	flags.String("endpoint", config.DefaultEndpoint, "joke API base URL")
	flags.Duration("timeout", config.DefaultTimeout, "per-request timeout")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	bindFlags(v, root)

	root.AddCommand(newFetchCmd(&cfg), newVersionCmd())
	return root
}

func bindFlags(v *viper.Viper, root *cobra.Command) {
	for key, flag := range map[string]string{
		"count":        "count",
		"max_attempts": "max-attempts",
		"endpoint":     "endpoint",
		"timeout":      "timeout",
		"log_file":     "log-file",
		"log_level":    "log-level",
	} {
		_ = v.BindPFlag(key, root.PersistentFlags().Lookup(flag))
	}
}

func newSource(cfg config.Config) app.JokeSource {
	return icanhaz.NewJokeService(icanhaz.NewClient(cfg.Endpoint, cfg.Timeout))
}

func runBoard(cfg config.Config) error {
	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closer.Close()

	root := tui.NewApp(tui.Deps{
		Source:      newSource(cfg),
		Target:      cfg.Count,
		MaxAttempts: cfg.MaxAttempts,
		Logger:      logger,
	})

	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("jokeboard: %w", err)
	}
	return nil
}
