package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"primers/internal/crypto"
)

func statsCmd() *cobra.Command {
	var reset, list bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how past games went",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if reset {
				if err := wire.Stats.Reset(); err != nil {
					return err
				}
				fmt.Fprintln(out, "History cleared.")
				return nil
			}

			if list {
				results, err := wire.Results.ListResults()
				if err != nil {
					return err
				}
				for _, r := range results {
					outcome := "lost"
					if r.Won {
						outcome = "won"
					}
					fmt.Fprintf(out, "%s  %s  %s  secret=%d attempts=%d invalid=%d %s\n",
						crypto.Fingerprint([]byte(r.ID))[:8],
						r.StartedAt.Format("2006-01-02 15:04"),
						r.Range, r.Secret, r.Attempts, r.Invalid, outcome)
				}
			}

			sum, err := wire.Stats.Summarize()
			if err != nil {
				return err
			}
			if sum.Played == 0 {
				fmt.Fprintln(out, "No games played yet.")
				return nil
			}
			fmt.Fprintf(out, "Played: %d\n", sum.Played)
			fmt.Fprintf(out, "Won: %d\n", sum.Won)
			fmt.Fprintf(out, "Lost: %d\n", sum.Lost)
			if sum.Won > 0 {
				fmt.Fprintf(out, "Best: %d attempts\n", sum.BestAttempts)
				fmt.Fprintf(out, "Average: %.1f attempts\n", sum.AverageAttempts)
			}
			fmt.Fprintf(out, "Invalid inputs: %d\n", sum.InvalidInputs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete the history")
	cmd.Flags().BoolVar(&list, "list", false, "print every game before the summary")
	return cmd
}
