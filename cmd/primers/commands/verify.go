package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"primers/internal/crypto"
)

// verify <commitment> <secret> <salt>: check a revealed secret against the
// commitment printed before the game.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <commitment> <secret> <salt>",
		Short: "Check that a game's secret matches its commitment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("secret %q: %w", args[1], err)
			}
			ok, err := crypto.VerifyCommitment(args[0], uint32(secret), args[2])
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("commitment does not match the revealed secret")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Commitment verified: the secret was %d.\n", secret)
			return nil
		},
	}
}
