package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aki/ti/internal/cli/ui"
	"github.com/aki/ti/internal/config"
	"github.com/aki/ti/internal/editor"
	"github.com/aki/ti/internal/engine"
	"github.com/aki/ti/internal/filemanager"
	"github.com/aki/ti/internal/logger"
	"github.com/aki/ti/internal/report"
	"github.com/aki/ti/internal/sheet"
)

// App carries the dependencies of every command
type App struct {
	Store   sheet.Store
	Engine  *engine.Engine
	Printer *ui.Printer
	Editor  editor.Editor
	// Now is the clock used for time phrases and reports
	Now func() time.Time
	// Offset is the local offset from UTC used for day windows
	Offset time.Duration
}

// setup builds the App from flags, environment and config file unless one
// was already injected.
func (c *cli) setup(cmd *cobra.Command) error {
	if c.app != nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	cfgPath := c.configPath(home)
	cfg, err := config.NewManager(cfgPath).Load()
	if err != nil {
		return err
	}

	log, err := createLogger(cmd.ErrOrStderr(), c.flags.logLevel, c.flags.logFormat, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	sheetPath := cfg.ResolveSheetFile(c.flags.sheetFile, os.Getenv, home)
	log.Debug("resolved paths", "config", cfgPath, "sheet", sheetPath)

	store := sheet.NewFileStore(sheetPath, log, filemanager.WithLockTimeout(cfg.LockTimeoutDuration()))

	cmd.SetContext(logger.WithContext(cmd.Context(), log))

	stdout := cmd.OutOrStdout()
	c.app = &App{
		Store:   store,
		Engine:  engine.New(store, engine.WithClock(time.Now)),
		Printer: ui.NewPrinter(stdout, cmd.ErrOrStderr(), useColor(cfg.Color, c.flags.noColor, stdout)),
		Editor:  editor.External{Command: editor.Find(os.Getenv)},
		Now:     time.Now,
		Offset:  report.ProcessOffset,
	}
	return nil
}

// useColor decides whether output gets ANSI colors
func useColor(mode string, noColor bool, out io.Writer) bool {
	if noColor {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
