package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gameloader/internal/digest"
	"gameloader/internal/domain"
	"gameloader/internal/server"
)

// Service downloads game builds from the server into the local library.
type Service struct {
	server  domain.ServerClient
	library domain.Library
	logger  logrus.FieldLogger
	retries int
	backoff time.Duration
}

// New returns a download service. retries is the total attempt count for
// each remote fetch; values below 1 are treated as 1.
func New(sc domain.ServerClient, lib domain.Library, logger logrus.FieldLogger, retries int) *Service {
	if retries < 1 {
		retries = 1
	}
	return &Service{
		server:  sc,
		library: lib,
		logger:  logger,
		retries: retries,
		backoff: 500 * time.Millisecond,
	}
}

var _ domain.Downloader = (*Service)(nil)

// Download fetches the manifest for date, streams every file through a digest
// check into a staging directory, and promotes the staging directory into the
// library. Failure leaves the library untouched.
func (s *Service) Download(ctx context.Context, date domain.GameDate, force bool) (domain.InstalledGame, error) {
	if _, err := domain.ParseGameDate(date.String()); err != nil {
		return domain.InstalledGame{}, err
	}

	installed, err := s.library.IsInstalled(date)
	if err != nil {
		return domain.InstalledGame{}, err
	}
	if installed && !force {
		return domain.InstalledGame{}, fmt.Errorf("%s: %w", date, domain.ErrAlreadyInstalled)
	}

	logger := s.logger.WithFields(logrus.Fields{
		"job":  uuid.NewString(),
		"game": date,
	})

	var m domain.Manifest
	err = s.withRetry(ctx, logger, "manifest", func() error {
		var err error
		m, err = s.server.FetchManifest(ctx, date)
		return err
	})
	if err != nil {
		return domain.InstalledGame{}, err
	}
	for _, f := range m.Files {
		if err := f.Valid(); err != nil {
			return domain.InstalledGame{}, err
		}
	}

	staging, err := s.library.StagingDir(date)
	if err != nil {
		return domain.InstalledGame{}, err
	}
	defer func() {
		// Promote renames staging away on success; this only fires on failure.
		_ = os.RemoveAll(staging)
	}()

	logger.WithFields(logrus.Fields{
		"files": len(m.Files),
		"bytes": m.TotalSize(),
	}).Info("downloading game")

	for i, f := range m.Files {
		logger.WithFields(logrus.Fields{
			"file":  f.Name,
			"index": i + 1,
			"total": len(m.Files),
			"bytes": f.SizeBytes,
		}).Debug("downloading file")

		err := s.withRetry(ctx, logger, f.Name, func() error {
			return s.fetchFile(ctx, date, f, staging)
		})
		if err != nil {
			return domain.InstalledGame{}, err
		}
	}

	g, err := s.library.Promote(staging, m)
	if err != nil {
		return domain.InstalledGame{}, err
	}
	logger.WithField("path", g.Path).Info("game installed")
	return g, nil
}

// fetchFile downloads one asset into the staging dir, verifying size and
// digest as the bytes land.
func (s *Service) fetchFile(ctx context.Context, date domain.GameDate, entry domain.FileEntry, staging string) error {
	dst := filepath.Join(staging, filepath.FromSlash(entry.Name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	body, _, err := s.server.FetchFile(ctx, date, entry.Name)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	h := digest.New()
	n, err := io.Copy(io.MultiWriter(f, h), body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", entry.Name, err)
	}

	if n != entry.SizeBytes {
		return fmt.Errorf("%s: %w: %d bytes, manifest says %d",
			entry.Name, domain.ErrDigestMismatch, n, entry.SizeBytes)
	}
	if sum := digest.Encode(h); sum != entry.Digest {
		return fmt.Errorf("%s: %w", entry.Name, domain.ErrDigestMismatch)
	}
	return nil
}

// Verify re-hashes an installed build against its stored manifest.
func (s *Service) Verify(ctx context.Context, date domain.GameDate) ([]domain.FileStatus, error) {
	m, err := s.library.Manifest(date)
	if err != nil {
		return nil, err
	}
	dir, err := s.library.GamePath(date)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.FileStatus, 0, len(m.Files))
	for _, f := range m.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		statuses = append(statuses, domain.FileStatus{Name: f.Name, Err: verifyFile(dir, f)})
	}
	return statuses, nil
}

func verifyFile(dir string, entry domain.FileEntry) error {
	if err := entry.Valid(); err != nil {
		return err
	}
	sum, err := digest.File(filepath.Join(dir, filepath.FromSlash(entry.Name)))
	if err != nil {
		return err
	}
	if sum != entry.Digest {
		return domain.ErrDigestMismatch
	}
	return nil
}

// withRetry runs fn up to s.retries times, sleeping a little longer after
// each failed attempt. Permanent failures are returned immediately.
func (s *Service) withRetry(ctx context.Context, logger logrus.FieldLogger, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= s.retries; attempt++ {
		err = fn()
		if err == nil || !retryable(err) {
			return err
		}
		if attempt == s.retries {
			break
		}
		logger.WithError(err).WithFields(logrus.Fields{
			"op":      op,
			"attempt": attempt,
		}).Warn("fetch failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * s.backoff):
		}
	}
	return err
}

// retryable reports whether err might clear up on its own. Missing games,
// integrity failures and cancellation never do; client errors from the
// server don't either.
func retryable(err error) bool {
	if errors.Is(err, domain.ErrGameNotFound) ||
		errors.Is(err, domain.ErrDigestMismatch) ||
		errors.Is(err, domain.ErrUnsafePath) ||
		errors.Is(err, context.Canceled) {
		return false
	}
	var se *server.StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}
