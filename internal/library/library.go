package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gameloader/internal/domain"
)

const (
	manifestFile = "manifest.json"
	stagingName  = ".staging"
)

// Library stores installed game builds under a root directory, one directory
// per build named by its date. A build directory without a manifest.json is
// an aborted install and is treated as absent.
type Library struct {
	root string
	mu   sync.Mutex
}

// New returns a library rooted at dir. The directory is created lazily on
// first install.
func New(dir string) *Library { return &Library{root: dir} }

var _ domain.Library = (*Library)(nil)

func (l *Library) Root() string { return l.root }

func (l *Library) gameDir(date domain.GameDate) string {
	return filepath.Join(l.root, date.String())
}

func (l *Library) IsInstalled(date domain.GameDate) (bool, error) {
	_, err := os.Stat(filepath.Join(l.gameDir(date), manifestFile))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *Library) GamePath(date domain.GameDate) (string, error) {
	ok, err := l.IsInstalled(date)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s: %w", date, domain.ErrNotInstalled)
	}
	return l.gameDir(date), nil
}

func (l *Library) Manifest(date domain.GameDate) (domain.Manifest, error) {
	var m domain.Manifest
	path := filepath.Join(l.gameDir(date), manifestFile)
	found, err := readJSON(path, &m)
	if err != nil {
		return domain.Manifest{}, err
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("%s: %w", date, domain.ErrNotInstalled)
	}
	return m, nil
}

func (l *Library) Installed() ([]domain.InstalledGame, error) {
	entries, err := os.ReadDir(l.root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var games []domain.InstalledGame
	for _, e := range entries {
		if !e.IsDir() || e.Name() == stagingName {
			continue
		}
		date, err := domain.ParseGameDate(e.Name())
		if err != nil {
			continue
		}
		g, err := l.installed(date)
		if errors.Is(err, domain.ErrNotInstalled) {
			continue // aborted install, no manifest
		}
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Date < games[j].Date })
	return games, nil
}

func (l *Library) installed(date domain.GameDate) (domain.InstalledGame, error) {
	m, err := l.Manifest(date)
	if err != nil {
		return domain.InstalledGame{}, err
	}
	dir := l.gameDir(date)

	installedAt := time.Now()
	if fi, err := os.Stat(filepath.Join(dir, manifestFile)); err == nil {
		installedAt = fi.ModTime()
	}
	return domain.InstalledGame{
		Game:        m.Game(),
		Path:        dir,
		InstalledAt: installedAt,
	}, nil
}

// StagingDir returns an empty staging directory for date, removing leftovers
// from earlier aborted installs.
func (l *Library) StagingDir(date domain.GameDate) (string, error) {
	dir := filepath.Join(l.root, stagingName, date.String())
	if err := os.RemoveAll(dir); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Promote writes the manifest into staging and renames the whole directory
// into place as the live install. The manifest is written last so a crash
// mid-install never leaves a directory that looks complete.
func (l *Library) Promote(staging string, m domain.Manifest) (domain.InstalledGame, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := domain.ParseGameDate(m.Date.String()); err != nil {
		return domain.InstalledGame{}, err
	}
	if err := writeJSON(filepath.Join(staging, manifestFile), m, 0o644); err != nil {
		return domain.InstalledGame{}, err
	}

	dst := l.gameDir(m.Date)
	if err := os.RemoveAll(dst); err != nil {
		return domain.InstalledGame{}, err
	}
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		return domain.InstalledGame{}, err
	}
	if err := os.Rename(staging, dst); err != nil {
		return domain.InstalledGame{}, err
	}
	return l.installed(m.Date)
}

func (l *Library) Remove(date domain.GameDate) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ok, err := l.IsInstalled(date)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", date, domain.ErrNotInstalled)
	}
	return os.RemoveAll(l.gameDir(date))
}
