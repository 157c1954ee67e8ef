package domain

import (
	"context"
	"io"
)

// ServerClient is how we talk to the central game server.
type ServerClient interface {
	// FetchGames returns the list of builds available for download.
	FetchGames(ctx context.Context) ([]Game, error)

	// FetchManifest returns the file manifest for one build.
	FetchManifest(ctx context.Context, date GameDate) (Manifest, error)

	// FetchFile streams one asset of a build. The caller must close the
	// reader. Size is the server-reported content length, -1 if unknown.
	FetchFile(ctx context.Context, date GameDate, name string) (body io.ReadCloser, size int64, err error)
}

// Library manages game builds installed under the local games directory.
type Library interface {
	// Root returns the games directory the library is rooted at.
	Root() string

	// Installed returns every complete install, oldest date first.
	Installed() ([]InstalledGame, error)

	// IsInstalled reports whether a complete install exists for date.
	IsInstalled(date GameDate) (bool, error)

	// GamePath returns the install directory for date, or ErrNotInstalled.
	GamePath(date GameDate) (string, error)

	// Manifest loads the stored manifest for an installed build.
	Manifest(date GameDate) (Manifest, error)

	// StagingDir returns an empty staging directory for date, removing any
	// leftovers from earlier aborted installs.
	StagingDir(date GameDate) (string, error)

	// Promote moves a fully populated staging directory into place as the
	// live install for the manifest's date, replacing any prior install.
	Promote(staging string, m Manifest) (InstalledGame, error)

	// Remove deletes an installed build, or returns ErrNotInstalled.
	Remove(date GameDate) error
}

// Downloader fetches, verifies and installs game builds.
type Downloader interface {
	// Download installs the build for date. When force is false an existing
	// install is left alone and ErrAlreadyInstalled is returned.
	Download(ctx context.Context, date GameDate, force bool) (InstalledGame, error)

	// Verify re-hashes an installed build against its stored manifest and
	// reports per-file status.
	Verify(ctx context.Context, date GameDate) ([]FileStatus, error)
}
