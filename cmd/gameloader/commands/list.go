package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"gameloader/internal/domain"
)

func listCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games available on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := appCtx.Server.FetchGames(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				if games == nil {
					games = []domain.Game{}
				}
				b, err := json.Marshal(games)
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}

			if len(games) == 0 {
				fmt.Println("no games available")
				return nil
			}

			installed := map[domain.GameDate]bool{}
			if local, err := appCtx.Library.Installed(); err == nil {
				for _, g := range local {
					installed[g.Date] = true
				}
			}

			for _, g := range games {
				mark := " "
				if installed[g.Date] {
					mark = "*"
				}
				fmt.Printf("%s %s  %-30s %10s  %d files\n",
					mark, g.Date, g.Title, humanSize(g.SizeBytes), g.Files)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the server's game list as JSON")
	return cmd
}
