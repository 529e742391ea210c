package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// Set via -ldflags "-X github.com/CrestNiraj12/jokeboard/cmd.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const shortRevision = 12

// buildStamp identifies the running jokeboard binary.
type buildStamp struct {
	Version string
	Commit  string
	Date    string
}

func (s buildStamp) String() string {
	return fmt.Sprintf("JokeBoard %s\ncommit: %s\nbuilt: %s\n", s.Version, s.Commit, s.Date)
}

// currentBuildStamp returns the ldflags values, with placeholders filled in
// from the binary's embedded build info.
func currentBuildStamp() buildStamp {
	info, _ := debug.ReadBuildInfo()
	return stampFromBuildInfo(buildStamp{Version: version, Commit: commit, Date: date}, info)
}

// stampFromBuildInfo replaces only the fields still holding their ldflags
// placeholder. A nil info leaves s unchanged.
func stampFromBuildInfo(s buildStamp, info *debug.BuildInfo) buildStamp {
	if info == nil {
		return s
	}
	if mv := strings.TrimSpace(info.Main.Version); s.Version == "dev" && mv != "" && mv != "(devel)" {
		s.Version = mv
	}
	for _, bs := range info.Settings {
		val := strings.TrimSpace(bs.Value)
		if val == "" {
			continue
		}
		switch {
		case bs.Key == "vcs.revision" && s.Commit == "none":
			if len(val) > shortRevision {
				val = val[:shortRevision]
			}
			s.Commit = val
		case bs.Key == "vcs.time" && s.Date == "unknown":
			s.Date = val
		}
	}
	return s
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), currentBuildStamp())
		},
	}
}
