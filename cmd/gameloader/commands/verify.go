package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gameloader/internal/domain"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [date]",
		Short: "Check an installed build against its manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := domain.ParseGameDate(args[0])
			if err != nil {
				return err
			}

			statuses, err := appCtx.Games.Verify(cmd.Context(), date)
			if err != nil {
				return err
			}

			var failed int
			for _, st := range statuses {
				if st.Err != nil {
					failed++
					fmt.Printf("FAIL %s: %v\n", st.Name, st.Err)
				} else {
					fmt.Printf("ok   %s\n", st.Name)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed verification", failed, len(statuses))
			}
			fmt.Printf("%s verified, %d files ok\n", date, len(statuses))
			return nil
		},
	}
}
