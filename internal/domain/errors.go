package domain

import "errors"

var (
	// ErrInvalidDate is returned when a game date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid game date")

	// ErrGameNotFound is returned when the server has no build for a date.
	ErrGameNotFound = errors.New("game not found")

	// ErrNotInstalled is returned when a build is absent from the library.
	ErrNotInstalled = errors.New("game not installed")

	// ErrAlreadyInstalled is returned when a download would clobber an
	// existing install and force was not requested.
	ErrAlreadyInstalled = errors.New("game already installed")

	// ErrDigestMismatch is returned when a file's bytes do not match its
	// manifest entry.
	ErrDigestMismatch = errors.New("digest mismatch")

	// ErrUnsafePath is returned for manifest entries that would escape the
	// game directory.
	ErrUnsafePath = errors.New("unsafe file path in manifest")
)
