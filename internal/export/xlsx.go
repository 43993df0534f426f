// Package export writes the current table and comparison as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetRows    = "Rows"
	SheetCompare = "Compare"
)

var (
	rowHeaders     = []any{"area", "area_name", "Year", "Week", "SMN", "SMT", "VCI", "TCI", "VHI"}
	compareHeaders = []any{"Region", "Mean", "Rows"}
)

// WriteXLSX writes rows (in the order given) and the region means to w as an
// .xlsx workbook. Empty inputs produce sheets with headers only.
func WriteXLSX(w io.Writer, rows []domain.Observation, idx domain.Index, means []domain.RegionMean) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRows); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetCompare); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := writeRow(f, SheetRows, 1, rowHeaders); err != nil {
		return err
	}
	for i, r := range rows {
		vals := []any{string(r.Region), r.RegionName, r.Year, r.Week, r.SMN, r.SMT, r.VCI, r.TCI, r.VHI}
		if err := writeRow(f, SheetRows, i+2, vals); err != nil {
			return err
		}
	}

	header := append([]any(nil), compareHeaders...)
	header[1] = fmt.Sprintf("Mean %s", idx)
	if err := writeRow(f, SheetCompare, 1, header); err != nil {
		return err
	}
	for i, m := range means {
		if err := writeRow(f, SheetCompare, i+2, []any{m.Region, m.Mean, m.Count}); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetRows, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}
	if err := f.SetColWidth(SheetRows, "B", "B", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetCompare, "A", "A", 24); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, vals []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
