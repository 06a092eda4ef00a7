package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/rawvec/cmd/vecctl/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// stdout is where command output goes; tests swap it.
var stdout io.Writer = os.Stdout

var rootCmd = &cobra.Command{
	Use:   "vecctl",
	Short: "Exercise a manually managed dynamic vector",
	Long: `vecctl builds a vector with an explicit capacity and growth policy,
applies a sequence of operations to it and prints the result. It is a
driver for the rawvec library, useful for watching how growth, shrinking
and explicit resizing change the buffer.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger.Init(logger.Options{
			Enabled: !quiet,
			Output:  os.Stderr,
			Level:   level,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all logging")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printInfo prints to the command output unless in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}
