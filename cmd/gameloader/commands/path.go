package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// path: print the resolved games directory, for front-ends and scripts.
func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the local games directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(appCtx.GamesDir)
			return nil
		},
	}
}
