// Package main implements the g2c command: a showcase of the console toolkit and a
// number guessing game built on it.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/g2c/terminal"
)

var (
	// debugLog enables file logging under logs/
	debugLog bool
	// version information
	version = "dev"

	logFile *os.File
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if a game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mG2C CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "g2c",
	Short: "Console game toolkit demos",
	Long: `g2c showcases a small toolkit for console games: screen clearing,
centered and boxed text, a game state store with checkpoints, and validated prompts.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logFile = setupLogging(debugLog)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write debug log to logs/g2c.log")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(guessCmd)
}
