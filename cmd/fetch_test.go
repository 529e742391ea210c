package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/CrestNiraj12/jokeboard/domain"
)

// jokeServer serves the given ids in order, cycling when exhausted.
func jokeServer(t *testing.T, ids ...string) (*httptest.Server, *int) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			http.Error(w, "want json", http.StatusNotAcceptable)
			return
		}
		mu.Lock()
		id := ids[calls%len(ids)]
		calls++
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":%q,"joke":"joke %s","status":200}`, id, id)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFetch_TextSkipsDuplicates(t *testing.T) {
	srv, calls := jokeServer(t, "A", "B", "A", "C")
	out, err := runRoot(t, "fetch", "--endpoint", srv.URL, "-n", "3")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	want := "1. joke A\n2. joke B\n3. joke C\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
	if *calls != 4 {
		t.Fatalf("expected 4 requests, got %d", *calls)
	}
}

func TestFetch_JSONFormat(t *testing.T) {
	srv, _ := jokeServer(t, "x", "y")
	out, err := runRoot(t, "fetch", "--endpoint", srv.URL, "--count", "2", "--format", "json")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	var got []jokeRecord
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(got) != 2 || got[0].ID != "x" || got[1].Joke != "joke y" || got[0].Votes != 0 {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestFetch_YAMLFormat(t *testing.T) {
	srv, _ := jokeServer(t, "x")
	out, err := runRoot(t, "fetch", "--endpoint", srv.URL, "-n", "1", "-f", "yaml")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	var got []jokeRecord
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid yaml %q: %v", out, err)
	}
	if len(got) != 1 || got[0].ID != "x" {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestFetch_AttemptLimit(t *testing.T) {
	srv, calls := jokeServer(t, "same")
	_, err := runRoot(t, "fetch", "--endpoint", srv.URL, "-n", "2", "--max-attempts", "5")
	if err == nil || !strings.Contains(err.Error(), domain.ErrAttemptsExhausted.Error()) {
		t.Fatalf("expected attempt limit error, got %v", err)
	}
	if *calls != 5 {
		t.Fatalf("expected 5 requests, got %d", *calls)
	}
}

func TestFetch_RejectsUnknownFormat(t *testing.T) {
	srv, calls := jokeServer(t, "x")
	_, err := runRoot(t, "fetch", "--endpoint", srv.URL, "-f", "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected format error, got %v", err)
	}
	if *calls != 0 {
		t.Fatalf("no request expected for bad format")
	}
}

func TestRoot_InvalidConfigRejected(t *testing.T) {
	_, err := runRoot(t, "fetch", "-n", "0")
	if err == nil || !strings.Contains(err.Error(), "count") {
		t.Fatalf("expected count validation error, got %v", err)
	}
}

func TestWriteJokes_Text(t *testing.T) {
	var buf bytes.Buffer
	jokes := []domain.Joke{{ID: "a", Text: "first", Votes: 2}, {ID: "b", Text: "second"}}
	if err := writeJokes(&buf, "text", jokes); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "1. first\n2. second\n" {
		t.Fatalf("unexpected text output: %q", buf.String())
	}
}

// chdir changes the working directory for the duration of the test
// (go1.21 stand-in for testing.T.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
