package library_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gameloader/internal/domain"
	"gameloader/internal/library"
)

func stage(t *testing.T, lib *library.Library, m domain.Manifest, files map[string]string) domain.InstalledGame {
	t.Helper()
	staging, err := lib.StagingDir(m.Date)
	if err != nil {
		t.Fatalf("staging dir: %v", err)
	}
	for name, content := range files {
		path := filepath.Join(staging, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	g, err := lib.Promote(staging, m)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	return g
}

func TestInstall_RoundTrip(t *testing.T) {
	lib := library.New(t.TempDir())
	m := domain.Manifest{
		Date:  "2025-06-01",
		Title: "Cave Run",
		Files: []domain.FileEntry{
			{Name: "game.bin", SizeBytes: 4},
			{Name: "assets/a.dat", SizeBytes: 5},
		},
	}

	g := stage(t, lib, m, map[string]string{"game.bin": "bits", "assets/a.dat": "moar!"})
	if g.Title != "Cave Run" || g.Files != 2 {
		t.Fatalf("unexpected install: %+v", g)
	}

	ok, err := lib.IsInstalled("2025-06-01")
	if err != nil || !ok {
		t.Fatalf("IsInstalled = %v, %v", ok, err)
	}

	path, err := lib.GamePath("2025-06-01")
	if err != nil {
		t.Fatalf("game path: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(path, "assets", "a.dat"))
	if err != nil || string(b) != "moar!" {
		t.Fatalf("read asset: %q, %v", b, err)
	}

	got, err := lib.Manifest("2025-06-01")
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if got.Title != m.Title || len(got.Files) != 2 {
		t.Fatalf("manifest mismatch: %+v", got)
	}
}

func TestInstalled_SortedAndSkipsAborted(t *testing.T) {
	root := t.TempDir()
	lib := library.New(root)

	stage(t, lib, domain.Manifest{Date: "2025-06-02", Title: "B"}, nil)
	stage(t, lib, domain.Manifest{Date: "2025-06-01", Title: "A"}, nil)

	// A directory with no manifest is an aborted install.
	if err := os.MkdirAll(filepath.Join(root, "2025-06-03"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Non-date directories are ignored entirely.
	if err := os.MkdirAll(filepath.Join(root, "junk"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	games, err := lib.Installed()
	if err != nil {
		t.Fatalf("installed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 installs, got %+v", games)
	}
	if games[0].Date != "2025-06-01" || games[1].Date != "2025-06-02" {
		t.Fatalf("not sorted by date: %+v", games)
	}
}

func TestInstalled_EmptyRoot(t *testing.T) {
	lib := library.New(filepath.Join(t.TempDir(), "missing"))
	games, err := lib.Installed()
	if err != nil {
		t.Fatalf("installed: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected none, got %+v", games)
	}
}

func TestPromote_ReplacesExisting(t *testing.T) {
	lib := library.New(t.TempDir())
	m := domain.Manifest{Date: "2025-06-01", Title: "v1",
		Files: []domain.FileEntry{{Name: "game.bin"}}}

	stage(t, lib, m, map[string]string{"game.bin": "old", "extra.dat": "junk"})

	m.Title = "v2"
	stage(t, lib, m, map[string]string{"game.bin": "new"})

	got, err := lib.Manifest("2025-06-01")
	if err != nil || got.Title != "v2" {
		t.Fatalf("manifest after reinstall: %+v, %v", got, err)
	}
	path, _ := lib.GamePath("2025-06-01")
	if _, err := os.Stat(filepath.Join(path, "extra.dat")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("old install survived reinstall: %v", err)
	}
}

func TestRemove(t *testing.T) {
	lib := library.New(t.TempDir())
	stage(t, lib, domain.Manifest{Date: "2025-06-01"}, nil)

	if err := lib.Remove("2025-06-01"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := lib.Remove("2025-06-01"); !errors.Is(err, domain.ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled, got %v", err)
	}
}

func TestGamePath_NotInstalled(t *testing.T) {
	lib := library.New(t.TempDir())
	if _, err := lib.GamePath("2025-06-01"); !errors.Is(err, domain.ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled, got %v", err)
	}
}
