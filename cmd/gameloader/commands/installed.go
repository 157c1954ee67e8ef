package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func installedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "installed",
		Short: "List locally installed game builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := appCtx.Library.Installed()
			if err != nil {
				return err
			}
			if len(games) == 0 {
				fmt.Println("no games installed")
				return nil
			}
			for _, g := range games {
				fmt.Printf("%s  %-30s %10s  installed %s\n",
					g.Date, g.Title, humanSize(g.SizeBytes),
					g.InstalledAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
