/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/ordkit/bisect/internal/bisect"

	"github.com/spf13/cobra"
)

// newSearchCmd represents the search command
func newSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search [flags] [values... | -]",
		Short: bisect.SearchShortDesc,
		Long:  bisect.SearchLongDesc,
		Example: `  bisect search --target 5 -- -10 -5 0 2 5 10 15 20 25
  bisect search --type string --target cherry apple banana cherry
  bisect search --seq 1_3-5_9 --target 4
  printf '1 2 3 5 8\n' | bisect search --target 8 -- -`,
		SilenceUsage: true,
		RunE:         bisect.RunSearch,
	}

	searchCmd.Flags().StringP("type", "t", "int", "Element type of the sequence (int, float or string)")
	searchCmd.Flags().StringSliceP("format", "f", []string{}, "How raw values are split: comma, newline, space or json")
	searchCmd.Flags().String("seq", "", "Compact sorted int sequence literal, e.g. 1_3-5_9")
	searchCmd.Flags().String("target", "", "Value to locate in the sequence")
	searchCmd.Flags().Bool("check", false, "Verify the sequence is sorted before searching (linear cost)")
	searchCmd.Flags().Bool("trace", false, "Print every comparator probe to stderr")
	searchCmd.Flags().BoolP("quiet", "q", false, "Suppress output, report via exit status only")
	_ = searchCmd.MarkFlagRequired("target")

	return searchCmd
}
