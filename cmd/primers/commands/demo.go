package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"primers/internal/demo"
)

func demoCmd() *cobra.Command {
	var brief bool

	cmd := &cobra.Command{
		Use:       "demo [name]",
		Short:     "Run a data-type demo (lists them without a name)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listDemos(cmd)
			}
			return runDemo(cmd, args[0], brief)
		},
	}
	cmd.Flags().BoolVar(&brief, "brief", false, "short variant, where the demo has one")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDemos(cmd)
		},
	})
	return cmd
}

// demoShortcutCmds exposes every demo as a top-level command.
func demoShortcutCmds() []*cobra.Command {
	var cmds []*cobra.Command
	for _, d := range demo.All() {
		var brief bool
		c := &cobra.Command{
			Use:   d.Name,
			Short: d.Summary,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd, d.Name, brief)
			},
		}
		c.Flags().BoolVar(&brief, "brief", false, "short variant, where the demo has one")
		cmds = append(cmds, c)
	}
	return cmds
}

func listDemos(cmd *cobra.Command) error {
	for _, d := range demo.All() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", d.Name, d.Summary); err != nil {
			return err
		}
	}
	return nil
}

func runDemo(cmd *cobra.Command, name string, brief bool) error {
	d, ok := demo.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown demo %q (try: primers demo list)", name)
	}
	wire.Log.Debug("running demo", zap.String("demo", name))
	return d.Run(cmd.OutOrStdout(), demo.Options{Brief: brief})
}
