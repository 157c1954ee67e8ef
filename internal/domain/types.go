package domain

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// GameDate identifies a daily game build (YYYY-MM-DD).
type GameDate string

// ParseGameDate validates s as a YYYY-MM-DD date.
func ParseGameDate(s string) (GameDate, error) {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return GameDate(s), nil
}

func (d GameDate) String() string { return string(d) }

// Game is a single entry in the server's game listing.
type Game struct {
	Date      GameDate `json:"date"`
	Title     string   `json:"title"`
	SizeBytes int64    `json:"size_bytes"`
	Files     int      `json:"files"`
}

// FileEntry describes one asset inside a game build. Name is relative to the
// game directory and always uses forward slashes.
type FileEntry struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	Digest    string `json:"digest"` // hex BLAKE2b-256 of the file contents
}

// Valid reports whether the entry name can be written safely under a game
// directory. Absolute paths, parent references and empty segments are
// rejected so a hostile manifest cannot escape the install root.
func (f FileEntry) Valid() error {
	name := f.Name
	if name == "" || path.IsAbs(name) || strings.Contains(name, "\\") {
		return fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return fmt.Errorf("%w: %q", ErrUnsafePath, name)
		}
	}
	return nil
}

// Manifest lists every asset of a game build with its digest. It is served by
// the game server and written to disk alongside the installed files.
type Manifest struct {
	Date      GameDate    `json:"date"`
	Title     string      `json:"title"`
	CreatedAt time.Time   `json:"created_at"`
	Files     []FileEntry `json:"files"`
}

// TotalSize sums the sizes of every file in the manifest.
func (m Manifest) TotalSize() int64 {
	var total int64
	for _, f := range m.Files {
		total += f.SizeBytes
	}
	return total
}

// Game returns the listing entry that corresponds to this manifest.
func (m Manifest) Game() Game {
	return Game{
		Date:      m.Date,
		Title:     m.Title,
		SizeBytes: m.TotalSize(),
		Files:     len(m.Files),
	}
}

// InstalledGame is a game build present in the local library.
type InstalledGame struct {
	Game
	Path        string    `json:"-"`
	InstalledAt time.Time `json:"installed_at"`
}

// FileStatus reports the verification outcome for one installed asset.
// Err is nil when the file matches its manifest entry.
type FileStatus struct {
	Name string
	Err  error
}
