package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aki/ti/internal/sheet"
)

func (c *cli) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "edit",
		Aliases: []string{"e"},
		Short:   "Edit the sheet in your editor",
		Long: `Open the sheet as YAML in $EDITOR (or $VISUAL).

The edited document is checked before it replaces the sheet. If another ti
command changes the sheet while the editor is open, the edit is discarded.

Only the keys ti knows (name, start, end, notes, tags) are kept. Any other
key added by hand is dropped when the sheet is saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			current, err := c.app.Store.Load(ctx)
			if err != nil {
				return err
			}
			before, err := sheet.Export(current)
			if err != nil {
				return fmt.Errorf("failed to export sheet: %w", err)
			}

			after, err := c.app.Editor.Edit(ctx, before)
			if err != nil {
				return err
			}
			if bytes.Equal(before, after) {
				c.app.Printer.Line("Sheet unchanged.")
				return nil
			}

			edited, err := sheet.Import(after)
			if err != nil {
				return err
			}

			err = c.app.Store.Update(ctx, func(sh *sheet.Sheet) error {
				now, err := sheet.Export(sh)
				if err != nil {
					return err
				}
				if !bytes.Equal(now, before) {
					return errSheetChanged
				}
				*sh = *edited
				return nil
			})
			if err != nil {
				return err
			}

			c.app.Printer.Line("Sheet updated.")
			return nil
		},
	}
}
