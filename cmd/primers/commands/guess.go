package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"primers/internal/game"
)

// guessCmd plays one round of the guessing game on stdin/stdout. Flags
// override the game section of config.yaml.
func guessCmd() *cobra.Command {
	var (
		minN, maxN uint32
		attempts   int
		showTypes  bool
		commit     bool
		seed       uint64
		noRecord   bool
	)

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config.Game
			flags := cmd.Flags()
			if flags.Changed("min") {
				cfg.Range.Min = minN
			}
			if flags.Changed("max") {
				cfg.Range.Max = maxN
			}
			if flags.Changed("attempts") {
				cfg.MaxAttempts = attempts
			}
			if flags.Changed("show-types") {
				cfg.ShowTypes = showTypes
			}
			if flags.Changed("commit") {
				cfg.Commit = commit
			}

			var picker game.Picker = game.NewTimeSeededPicker()
			if flags.Changed("seed") {
				picker = game.NewRandPicker(seed)
			}

			g, err := wire.NewGame(cfg, picker)
			if err != nil {
				return err
			}
			res, err := g.Play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if !wire.Config.Record || noRecord {
				return nil
			}
			if err := wire.Stats.Record(res); err != nil {
				// The game itself went fine; losing history is not fatal.
				wire.Log.Warn("could not record result", zap.Error(err))
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&minN, "min", 1, "lowest possible secret")
	cmd.Flags().Uint32Var(&maxN, "max", 10, "highest possible secret")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "give up after this many guesses (0 = unlimited)")
	cmd.Flags().BoolVar(&showTypes, "show-types", true, "print the input's type before and after parsing")
	cmd.Flags().BoolVar(&commit, "commit", false, "print a commitment to the secret up front and reveal it at the end")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the secret for a reproducible game")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "do not add this game to the history")
	return cmd
}
