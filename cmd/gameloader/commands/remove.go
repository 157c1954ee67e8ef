package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gameloader/internal/domain"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [date]",
		Short: "Delete an installed game build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := domain.ParseGameDate(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Library.Remove(date); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", date)
			return nil
		},
	}
}
