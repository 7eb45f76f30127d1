package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/ti/internal/cli/ui"
	"github.com/aki/ti/internal/report"
)

func (c *cli) logCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "log [today|yesterday|all]",
		Aliases: []string{"l"},
		Short:   "Show time spent per task",
		Long: `Show time spent per task, longest first.

The period may be abbreviated to t, y or a. Without a period the whole
sheet is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			period := ""
			if len(args) > 0 {
				period = args[0]
			}
			now := c.app.Now()
			window, err := report.Named(period, now, c.app.Offset)
			if err != nil {
				return err
			}

			sh, err := c.app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}
			return c.app.Printer.PrintLog(report.FromSheet(sh, window, now), outputFormat)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format (pretty, json)")
	return cmd
}
