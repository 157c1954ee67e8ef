package app

import (
	"github.com/sirupsen/logrus"

	"gameloader/internal/domain"
	"gameloader/internal/download"
	"gameloader/internal/library"
	"gameloader/internal/platform"
	"gameloader/internal/server"
)

// Wire bundles the stores, services and clients used by the CLI.
type Wire struct {
	Logger   logrus.FieldLogger
	GamesDir string
	Server   domain.ServerClient
	Library  domain.Library
	Games    domain.Downloader
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	base := logrus.New()
	base.SetLevel(logrus.InfoLevel)
	if cfg.Verbose {
		base.SetLevel(logrus.DebugLevel)
	}
	logger := base.WithField("component", "gameloader")

	gamesDir := platform.GamesDir(cfg.GamesDir)
	lib := library.New(gamesDir)
	sc := server.New(cfg.ServerURL, cfg.HTTPTimeout)

	return &Wire{
		Logger:   logger,
		GamesDir: gamesDir,
		Server:   sc,
		Library:  lib,
		Games:    download.New(sc, lib, logger, cfg.Retries),
	}, nil
}
