package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aki/ti/internal/engine"
	"github.com/aki/ti/internal/logger"
	"github.com/aki/ti/internal/timeparse"
)

func (c *cli) onCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "on [name] [time...]",
		Aliases: []string{"o"},
		Short:   "Start working on a task",
		Long: `Start working on a task.

Without a name, the previous task's name is used. A time phrase such as
"10 minutes ago" may follow the name.`,
		Example: `  ti on my-project
  ti on my-project 10 minutes ago`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			var phrase []string
			if len(args) > 0 {
				name = strings.TrimSpace(args[0])
				phrase = args[1:]
			}

			at, err := timeparse.ParseArgs(phrase, c.app.Now())
			if err != nil {
				return err
			}

			result, err := c.app.Engine.Start(cmd.Context(), name, at)
			if err != nil {
				return err
			}
			c.printStarted(result)
			return nil
		},
	}
}

func (c *cli) finCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "fin [time...]",
		Aliases: []string{"f"},
		Short:   "Stop working on the current task",
		Long: `Stop working on the current task.

If the task was an interruption, the task it interrupted is resumed.`,
		Example: `  ti fin
  ti fin 5 minutes ago`,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := timeparse.ParseArgs(args, c.app.Now())
			if err != nil {
				return err
			}

			result, err := c.app.Engine.Stop(cmd.Context(), at, true)
			if err != nil {
				return err
			}

			p := c.app.Printer
			p.Line("Stopped working on %s.", p.Stopped(result.Stopped))
			if result.DidResume() {
				c.printStarted(&engine.StartResult{Name: result.Resumed})
				c.printDepth(result.Depth)
			}
			return nil
		},
	}
}

func (c *cli) interruptCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interrupt <name> [time...]",
		Aliases: []string{"i"},
		Short:   "Suspend the current task to work on something else",
		Long: `Suspend the current task and start an interruption.

Finishing the interruption with 'ti fin' resumes the suspended task.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("need the name of whatever you are working on")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := timeparse.ParseArgs(args[1:], c.app.Now())
			if err != nil {
				return err
			}

			result, err := c.app.Engine.Interrupt(cmd.Context(), args[0], at)
			if err != nil {
				return err
			}

			p := c.app.Printer
			p.Line("Stopped working on %s.", p.Stopped(result.Suspended))
			c.printStarted(&engine.StartResult{Name: result.Started})
			c.printDepth(result.Depth)
			return nil
		},
	}
}

func (c *cli) tagCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tag <tag>...",
		Aliases: []string{"t"},
		Short:   "Tag the current task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("please provide at least one tag to add")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Engine.Tag(cmd.Context(), args)
			if err != nil {
				return err
			}

			suffix := ""
			if result.Requested > 1 {
				suffix = "s"
			}
			c.app.Printer.Line("Okay, tagged current work with %d tag%s.", result.Requested, suffix)
			logger.FromContext(cmd.Context()).Debug("tagged", "name", result.Name, "added", result.Added, "tags", result.Tags)
			return nil
		},
	}
}

func (c *cli) noteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "note <text>...",
		Aliases: []string{"n"},
		Short:   "Add a note to the current task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("please provide some text to be noted")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Engine.Note(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			p := c.app.Printer
			p.Line("Yep, noted to %s.", p.Warn(result.Name))
			return nil
		},
	}
}

func (c *cli) printStarted(result *engine.StartResult) {
	p := c.app.Printer
	prefix := ""
	if result.ReusedName {
		prefix = "No task name specified, so using name of the previous task. "
	}
	p.Line("%sStarted working on %s.", prefix, p.Started(result.Name))
}

func (c *cli) printDepth(depth int) {
	if depth > 0 {
		c.app.Printer.Line("You are now %d deep in interrupts.", depth)
		return
	}
	c.app.Printer.Line("Congrats, you're out of interrupts!")
}
