package platform_test

import (
	"path/filepath"
	"testing"

	"gameloader/internal/platform"
)

func TestGamesDir_ExplicitWins(t *testing.T) {
	if got := platform.GamesDir("/tmp/my-games"); got != "/tmp/my-games" {
		t.Fatalf("got %q", got)
	}
}

func TestGamesDir_DefaultUnderDataDir(t *testing.T) {
	data, err := platform.DataDir()
	if err != nil {
		t.Skipf("no user config dir in this environment: %v", err)
	}
	want := filepath.Join(data, "games")
	if got := platform.GamesDir(""); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDataDir_EndsWithAppName(t *testing.T) {
	data, err := platform.DataDir()
	if err != nil {
		t.Skipf("no user config dir in this environment: %v", err)
	}
	if filepath.Base(data) != "gameloader" {
		t.Fatalf("got %q", data)
	}
}
