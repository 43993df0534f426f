package main

import (
	"fmt"
	"os"

	"github.com/couchcryptid/drought-dashboard/internal/dashboard"
	"github.com/couchcryptid/drought-dashboard/internal/dataset"
	"github.com/couchcryptid/drought-dashboard/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		flags selectionFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "export <dataset>",
		Short: "Write the filtered table and region means to an .xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := flags.selection()
			if err != nil {
				return err
			}
			data, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			v := dashboard.Evaluate(data.Rows, sel)

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export.WriteXLSX(f, v.Rows, sel.Index, v.Means); err != nil {
				f.Close()
				return fmt.Errorf("export %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows and %d region means to %s\n", len(v.Rows), len(v.Means), out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "drought.xlsx", "output workbook path")
	return cmd
}
