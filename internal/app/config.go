package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the loader.
type Config struct {
	// ServerURL is the base URL of the game server.
	ServerURL string `env:"GAMES_SERVER_URL" envDefault:"https://games.example.com"`

	// GamesDir overrides the platform-resolved games directory when set.
	GamesDir string `env:"GAMES_DIR"`

	// HTTPTimeout bounds each request to the game server.
	HTTPTimeout time.Duration `env:"GAMES_HTTP_TIMEOUT" envDefault:"30s"`

	// Retries is the total attempt count for each remote fetch.
	Retries int `env:"GAMES_RETRIES" envDefault:"3"`

	// Verbose enables debug logging.
	Verbose bool `env:"GAMES_VERBOSE"`
}

// FromEnv loads Config from the environment. A .env file in the working
// directory is applied first when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
