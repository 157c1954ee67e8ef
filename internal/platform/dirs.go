package platform

import (
	"os"
	"path/filepath"
)

// appDirName is the per-user directory the loader keeps its state under.
const appDirName = "gameloader"

// fallbackGamesDir is used when no per-user directory can be resolved.
const fallbackGamesDir = "./games"

// GamesDir resolves the local games directory. An explicit value (from a flag
// or GAMES_DIR) wins; otherwise the platform's per-user config dir is used,
// falling back to ./games when no user dir can be resolved. The directory is
// not created here.
func GamesDir(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if dir, err := DataDir(); err == nil {
		return filepath.Join(dir, "games")
	}
	return fallbackGamesDir
}

// DataDir returns the loader's per-user state directory
// (e.g. ~/.config/gameloader on Linux, Application Support on macOS).
func DataDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, appDirName), nil
}
