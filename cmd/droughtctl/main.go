// Command droughtctl works with drought-index datasets offline: it validates
// a dataset, generates a synthetic one, and runs dashboard queries and
// exports from the terminal.
//
// Usage:
//
//	droughtctl genmock -o data.csv
//	droughtctl validate data.csv
//	droughtctl query data.csv --index VHI --region "Kyiv r." --years 2000-2010
//	droughtctl export data.csv -o drought.xlsx
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "droughtctl",
		Short:         "Inspect, query and export VCI/TCI/VHI drought datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newValidateCmd(),
		newGenmockCmd(),
		newQueryCmd(),
		newExportCmd(),
	)
	return root
}
