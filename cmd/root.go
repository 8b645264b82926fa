package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xlref/xlref/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	verbose bool
	quiet   bool
)

// logger is the process-wide diagnostic sink. Its level is resolved before any
// subcommand runs; pipeline components receive it as a logrus.FieldLogger.
var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:           "xlref",
	Short:         "Extract formula references from Excel workbooks",
	Version:       Version,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl, err := logrus.ParseLevel(resolveLogLevel())
		if err != nil {
			lvl = logrus.InfoLevel
		}
		logger.SetLevel(lvl)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug detail (env: XLREF_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Log errors only")
}

func resolveLogLevel() string {
	if verbose {
		return "debug"
	}
	if quiet {
		return "error"
	}
	if v := os.Getenv("XLREF_LOG_LEVEL"); v != "" {
		return v
	}
	cfg, err := config.Load()
	if err == nil && cfg.LogLevel != "" {
		return cfg.LogLevel
	}
	return "info"
}

func Execute() error {
	return rootCmd.Execute()
}
