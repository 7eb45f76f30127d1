// Package commands implements the ti command line.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	sheetFile  string
	configFile string
	noColor    bool
	logLevel   string
	logFormat  string
}

// cli holds the flags and the App for one invocation
type cli struct {
	flags globalFlags
	app   *App
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ti",
		Short: "A simple time tracker for the command line",
		Long: `ti records what you are working on and for how long.

Start a task with 'ti on', stop it with 'ti fin', and park it while you deal
with something else using 'ti interrupt'. 'ti log' shows where the time went.

Times can be given as phrases like "5 minutes ago", "an hour ago" or "now".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.flags.sheetFile, "sheet", "", "Sheet file (default $SHEET_FILE or ~/.ti-sheet)")
	root.PersistentFlags().StringVar(&c.flags.configFile, "config", "", "Config file (default $TI_CONFIG or ~/.config/ti/config.yaml)")
	root.PersistentFlags().BoolVar(&c.flags.noColor, "no-color", false, "Disable colored output")
	registerLoggerFlags(root, &c.flags)

	root.AddCommand(
		c.onCmd(),
		c.finCmd(),
		c.statusCmd(),
		c.logCmd(),
		c.tagCmd(),
		c.noteCmd(),
		c.interruptCmd(),
		c.editCmd(),
		c.configCmd(),
		c.versionCmd(),
	)

	return root
}

// Execute runs the command line with args and returns the exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	return run(&cli{}, args, stdout, stderr)
}

func run(c *cli, args []string, stdout, stderr io.Writer) int {
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		c.reportError(stderr, err)
		return 1
	}
	return 0
}
