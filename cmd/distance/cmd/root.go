package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "distance",
	Short: "distance — Euclidean distance API",
	Long:  "Serves GET /api/distance?x=&y=&z= and a calculator page. With no subcommand, starts the server.",
	Args:  cobra.NoArgs,
	RunE:  runServe,

	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// newLogger returns the process logger. Lifecycle noise is Debug-level and
// only shows with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	addServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(configCmd)
}
