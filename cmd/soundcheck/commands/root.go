package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soundcheck/ftlib/sound"
	"soundcheck/internal/app"
)

// Execute runs the root command against the process streams.
func Execute() error {
	return Run(app.Config{Out: os.Stdout, Err: os.Stderr}, os.Args[1:]...)
}

// Run executes the root command wired to cfg. Arguments are accepted and
// discarded; cobra never sees them, so hidden commands such as __complete
// cannot be reached from the command line.
func Run(cfg app.Config, _ ...string) error {
	root := NewRootCmd(cfg)
	root.SetArgs([]string{})
	return root.Execute()
}

// NewRootCmd builds the root command wired to cfg. Cobra's own output goes to
// the same writers as the command's.
func NewRootCmd(cfg app.Config) *cobra.Command {
	appCtx := app.New(cfg)

	root := &cobra.Command{
		Use:                "soundcheck",
		Short:              "Confirm that the ft_lib sound module is linked",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintf(appCtx.Out, "%s imported\n", sound.Module); err != nil {
				appCtx.Log.Error("write output", "err", err)
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
	root.SetOut(appCtx.Out)
	root.SetErr(appCtx.Err)
	return root
}
