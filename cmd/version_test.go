package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"
)

func TestStampFromBuildInfo(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "GOOS", Value: "linux"},
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-10-01T10:00:00Z"},
	}
	placeholders := buildStamp{Version: "dev", Commit: "none", Date: "unknown"}

	tests := []struct {
		name string
		in   buildStamp
		info *debug.BuildInfo
		want buildStamp
	}{
		{
			name: "ldflags win",
			in:   buildStamp{Version: "1.2.0", Commit: "abc", Date: "2026-01-01"},
			info: &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}, Settings: vcs},
			want: buildStamp{Version: "1.2.0", Commit: "abc", Date: "2026-01-01"},
		},
		{
			name: "build info fallback",
			in:   placeholders,
			info: &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}, Settings: vcs},
			want: buildStamp{Version: "v0.3.1", Commit: "0123456789ab", Date: "2026-10-01T10:00:00Z"},
		},
		{
			name: "devel module keeps dev",
			in:   placeholders,
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: placeholders,
		},
		{
			name: "no build info",
			in:   placeholders,
			want: placeholders,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stampFromBuildInfo(tc.in, tc.info); got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestBuildStamp_String(t *testing.T) {
	got := buildStamp{Version: "v1.0.0", Commit: "abc", Date: "today"}.String()
	if got != "JokeBoard v1.0.0\ncommit: abc\nbuilt: today\n" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	t.Setenv("JOKEBOARD_COUNT", "0") // version must not need a valid config
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "JokeBoard ") || !strings.Contains(out.String(), "commit:") {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}
