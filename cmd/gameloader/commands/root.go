package commands

import (
	"time"

	"github.com/spf13/cobra"

	"gameloader/internal/app"
)

var (
	serverURL string
	gamesDir  string
	timeout   time.Duration
	verbose   bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "gameloader",
		Short: "Download and manage daily game builds",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			// Flags beat the environment.
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			if gamesDir != "" {
				cfg.GamesDir = gamesDir
			}
			if timeout > 0 {
				cfg.HTTPTimeout = timeout
			}
			if verbose {
				cfg.Verbose = true
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "game server base URL (default $GAMES_SERVER_URL)")
	root.PersistentFlags().StringVar(&gamesDir, "games-dir", "", "games directory (default platform-specific)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default 30s)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(listCmd(), downloadCmd(), pathCmd(), installedCmd(), verifyCmd(), removeCmd())
	return root.Execute()
}
