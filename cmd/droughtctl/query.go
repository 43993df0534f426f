package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/couchcryptid/drought-dashboard/internal/dashboard"
	"github.com/couchcryptid/drought-dashboard/internal/dataset"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

// barWidth is the length of the longest bar in the region comparison.
const barWidth = 40

func newQueryCmd() *cobra.Command {
	var (
		flags selectionFlags
		limit int
	)
	cmd := &cobra.Command{
		Use:   "query <dataset>",
		Short: "Print the filtered table and the region comparison for a selection",
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
			printView(cmd.OutOrStdout(), dashboard.Evaluate(data.Rows, sel), limit)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum table rows to print (0 prints all)")
	return cmd
}

func printView(w io.Writer, v dashboard.View, limit int) {
	sel := v.Selection
	fmt.Fprintln(w, styleTitle.Render(dashboard.Title(sel)))
	fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("years %s, weeks %s, sort %s", sel.Years, sel.Weeks, sel.Sort)))
	fmt.Fprintln(w)

	if v.NoData {
		fmt.Fprintln(w, styleFail.Render("No data to display!"))
	} else {
		rows := v.Rows
		if limit > 0 && len(rows) > limit {
			rows = rows[:limit]
		}
		fmt.Fprintln(w, renderTable(rows))
		if len(rows) < len(v.Rows) {
			fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("... %d more rows", len(v.Rows)-len(rows))))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Mean %s by region", sel.Index)))
	fmt.Fprintln(w, renderBars(v.Means, sel.Region))
	if v.Highlight == nil {
		fmt.Fprintln(w, styleMuted.Render(sel.Region+" has no rows in the selected period."))
	}
}

func renderTable(rows []domain.Observation) string {
	header := []string{"Region", "Year", "Week", "SMN", "SMT", "VCI", "TCI", "VHI"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.RegionName,
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Week),
			fixed(r.SMN, 2),
			fixed(r.SMT, 2),
			fixed(r.VCI, 2),
			fixed(r.TCI, 2),
			fixed(r.VHI, 2),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	line := func(row []string, style lipgloss.Style) string {
		parts := make([]string, len(row))
		for i, c := range row {
			align := lipgloss.Right
			if i == 0 {
				align = lipgloss.Left
			}
			parts[i] = style.Width(widths[i]).Align(align).Render(c)
		}
		return strings.Join(parts, "  ")
	}

	out := make([]string, 0, len(cells)+1)
	out = append(out, line(header, styleHeader))
	for _, row := range cells {
		out = append(out, line(row, lipgloss.NewStyle()))
	}
	return strings.Join(out, "\n")
}

// renderBars draws one horizontal bar per region, marking the selected one.
func renderBars(means []domain.RegionMean, selected string) string {
	if len(means) == 0 {
		return styleFail.Render("No data to display!")
	}

	nameWidth, top := 0, 0.0
	for _, m := range means {
		nameWidth = max(nameWidth, lipgloss.Width(m.Region))
		top = max(top, m.Mean)
	}

	out := make([]string, 0, len(means))
	for _, m := range means {
		n := 0
		if top > 0 {
			n = int(m.Mean / top * barWidth)
		}
		style, marker := styleBar, " "
		if m.Region == selected {
			style, marker = styleMarked, "*"
		}
		name := lipgloss.NewStyle().Width(nameWidth).Render(m.Region)
		out = append(out, fmt.Sprintf("%s %s %s %s", marker, name, style.Render(strings.Repeat("█", n)), fixed(m.Mean, 2)))
	}
	return strings.Join(out, "\n")
}
