package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/aki/ti/internal/engine"
	"github.com/aki/ti/internal/filemanager"
)

// errSheetChanged is returned when the sheet was modified while it was open
// in the editor
var errSheetChanged = errors.New("sheet changed while editing, edit discarded")

// reportError prints err as a user-facing message on the error stream
func (c *cli) reportError(w io.Writer, err error) {
	var msg string
	var already engine.ErrAlreadyWorking
	switch {
	case errors.As(err, &already):
		name := already.Name
		if c.app != nil {
			name = c.app.Printer.Warn(name)
		}
		msg = fmt.Sprintf("Already working on %s. Stop it or use a different sheet.", name)
	case errors.Is(err, engine.ErrNotWorking):
		msg = "You aren't working on any task. See `ti -h` for help."
	case errors.Is(err, filemanager.ErrLockTimeout):
		msg = "Error: the sheet is locked by another ti process, try again."
	default:
		msg = fmt.Sprintf("Error: %v", err)
	}

	if c.app != nil {
		c.app.Printer.Error("%s", msg)
		return
	}
	fmt.Fprintln(w, msg)
}
