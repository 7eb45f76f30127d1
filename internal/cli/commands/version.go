package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Version information, set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.app.Printer
			p.Line("ti version %s", Version)
			p.Line("  Git commit: %s", GitCommit)
			p.Line("  Build date: %s", BuildDate)
			p.Line("  Go version: %s", runtime.Version())
			p.Line("  OS/Arch:    %s/%s", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
