package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gameloader/internal/domain"
	"gameloader/internal/server"
)

func newClient(t *testing.T, h http.Handler) *server.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return server.New(srv.URL, 5*time.Second)
}

func TestFetchGames_OK(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != "gameloader/1.0" {
			t.Errorf("unexpected user agent %q", ua)
		}
		_ = json.NewEncoder(w).Encode([]domain.Game{
			{Date: "2025-06-01", Title: "Cave Run", SizeBytes: 100, Files: 2},
		})
	}))

	games, err := c.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("fetch games: %v", err)
	}
	if len(games) != 1 || games[0].Date != "2025-06-01" {
		t.Fatalf("unexpected games: %+v", games)
	}
}

func TestFetchGames_Empty(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "[]")
	}))

	games, err := c.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("fetch games: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected empty list, got %+v", games)
	}
}

func TestFetchManifest_NotFound(t *testing.T) {
	c := newClient(t, http.NotFoundHandler())

	_, err := c.FetchManifest(context.Background(), "2025-06-01")
	if !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestFetchManifest_ServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.FetchManifest(context.Background(), "2025-06-01")
	var se *server.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if !se.Temporary() {
		t.Fatal("500 should be temporary")
	}
}

func TestFetchFile_StreamsBody(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/2025-06-01/files/assets/level one.dat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		io.WriteString(w, "payload")
	}))

	rc, size, err := c.FetchFile(context.Background(), "2025-06-01", "assets/level one.dat")
	if err != nil {
		t.Fatalf("fetch file: %v", err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(b) != "payload" || size != int64(len(b)) {
		t.Fatalf("got %q (size %d)", b, size)
	}
}

func TestFetchFile_NotFound(t *testing.T) {
	c := newClient(t, http.NotFoundHandler())

	_, _, err := c.FetchFile(context.Background(), "2025-06-01", "game.bin")
	if !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}
