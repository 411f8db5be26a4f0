package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "routesim",
	Short: "Seeded routing experiment driver for the compact-routing engine",
	Long: `routesim builds a seeded topology, embeds it, and runs a routing
experiment against it: a plain trial batch, a random or targeted node
removal, a dynamic remove/add round sequence, or a disconnection
scenario. Results are written as a JSON report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

// Execute runs the root command and exits the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// GetLogger returns the logger configured by the root command's
// PersistentPreRunE.
func GetLogger() zerolog.Logger {
	return logger
}
