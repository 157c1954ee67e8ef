package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gameloader/internal/domain"
)

func downloadCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "download [date]",
		Short: "Download and install the game build for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := domain.ParseGameDate(args[0])
			if err != nil {
				return err
			}

			g, err := appCtx.Games.Download(cmd.Context(), date, force)
			if err != nil {
				return err
			}
			fmt.Printf("Installed %s (%s, %s) to %s\n",
				g.Date, g.Title, humanSize(g.SizeBytes), g.Path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "reinstall even if the build is already present")
	return cmd
}
