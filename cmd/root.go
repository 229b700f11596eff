/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"os"

	"github.com/ordkit/bisect/internal/bisect"

	"github.com/spf13/cobra"
)

// NewRootCmd builds a fresh command tree. Tests run Execute repeatedly in
// process, so no command state may survive an invocation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bisect",
		Short: "Logarithmic search over pre-sorted sequences",
		Long: `Bisect locates a target value inside an already-sorted sequence with a
comparator-driven interval-halving search and prints the matching index.
The sequence is owned by the caller and must be pre-sorted; bisect never
sorts or mutates it.`,
		SilenceErrors: true,
	}
	// Without an explicit writer cobra's Print helpers fall back to stderr;
	// the index must land on stdout.
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newBenchCmd())
	return rootCmd
}

// Execute runs the CLI and returns the process exit status: 0 when the
// target was found (or on plain success), 1 when it was absent, 2 on error.
func Execute() int {
	rootCmd := NewRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if errors.Is(err, bisect.ErrNotFound) {
			return 1
		}
		cmd.PrintErrln(cmd.ErrPrefix(), err)
		return 2
	}
	return 0
}
