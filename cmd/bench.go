/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/ordkit/bisect/internal/bisect"

	"github.com/spf13/cobra"
)

// newBenchCmd represents the bench command
func newBenchCmd() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:          "bench",
		Short:        bisect.BenchShortDesc,
		Long:         bisect.BenchLongDesc,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE:         bisect.RunBench,
	}

	benchCmd.Flags().Int("n", 1_000_000, "Length of the generated sorted sequence")
	benchCmd.Flags().Int("queries", 1000, "Number of searches to run")
	benchCmd.Flags().Int64("seed", 1, "Seed of the sequence and query generator")

	return benchCmd
}
