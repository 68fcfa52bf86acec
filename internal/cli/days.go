package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/infra/daysequence"
)

func daysCmd() *cobra.Command {
	var leap bool

	c := &cobra.Command{
		Use:   "days",
		Short: "Print the DD.MM day sequence used to build the calendar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, d := range daysequence.Days(leap) {
				fmt.Fprintln(w, d)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&leap, "leap", true, "Include 29.02")
	return c
}
