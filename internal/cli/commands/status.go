package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/ti/internal/report"
)

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Show the current task",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.app.Engine.Status(cmd.Context())
			if err != nil {
				return err
			}

			p := c.app.Printer
			if !status.Working {
				p.Line("%s", p.Stopped("Not working on any task."))
				return nil
			}
			p.Line("Working on %s for %s.", p.Started(status.Name), p.Time(report.Timegap(status.Elapsed)))
			return nil
		},
	}
}
