package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"primers/internal/app"
)

var (
	home    string
	verbose bool
	wire    *app.Wire
)

// Execute runs the CLI with os.Args, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "primers",
		Short:        "Introductory Go exercises: a guessing game and data-type demos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".primers")
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			log, err := app.NewLogger(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			wire = w
			wire.Log.Debug("config loaded", zap.String("home", home))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.primers)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(guessCmd(), verifyCmd(), statsCmd(), demoCmd())
	root.AddCommand(demoShortcutCmds()...)
	return root
}
