package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aki/ti/internal/logger"
)

// registerLoggerFlags registers global logging flags
func registerLoggerFlags(cmd *cobra.Command, flags *globalFlags) {
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (text, json)")
}

// createLogger builds the diagnostic logger. Flags win over the config file.
func createLogger(w io.Writer, flagLevel, flagFormat, cfgLevel, cfgFormat string) (logger.Logger, error) {
	levelName := cfgLevel
	if flagLevel != "" {
		levelName = flagLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	formatName := cfgFormat
	if flagFormat != "" {
		formatName = flagFormat
	}
	format, err := logger.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}
