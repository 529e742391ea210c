package icanhaz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CrestNiraj12/jokeboard/domain"
)

func TestClientGet_SendsJSONAcceptAndUserAgent(t *testing.T) {
	var gotAccept, gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"x","joke":"y","status":200}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	if _, err := c.Get(context.Background(), "/"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
	if !strings.HasPrefix(gotUA, "jokeboard") {
		t.Fatalf("expected jokeboard user agent, got %q", gotUA)
	}
	if gotPath != "/" {
		t.Fatalf("base URL trailing slash must be trimmed, path=%q", gotPath)
	}
}

func TestClientGet_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Get(context.Background(), "/")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestClientGet_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, 0).Get(ctx, "/")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewClient_DefaultsBaseURL(t *testing.T) {
	c := NewClient("  ", 0, WithUserAgent("custom"), WithHTTPClient(nil))
	if c.baseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url %q", c.baseURL)
	}
	if c.userAgent != "custom" || c.http == nil {
		t.Fatalf("options not applied: %#v", c)
	}
}

func TestFetchJoke_MapsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"R7UfaahVfFd","joke":"My dog used to chase people on a bike a lot. It got so bad I had to take his bike away.","status":200}`))
	}))
	defer srv.Close()

	svc := NewJokeService(NewClient(srv.URL, time.Second))
	j, err := svc.FetchJoke(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if j.ID != "R7UfaahVfFd" || !strings.HasPrefix(j.Text, "My dog") || j.Votes != 0 {
		t.Fatalf("unexpected joke: %#v", j)
	}
}

func TestFetchJoke_TransportErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewJokeService(NewClient(srv.URL, time.Second)).FetchJoke(context.Background())
	if err == nil || !strings.Contains(err.Error(), "fetching joke") {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if errors.Is(err, domain.ErrMalformedJoke) {
		t.Fatalf("transport failure is not a malformed payload")
	}
}
