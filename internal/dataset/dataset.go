// Package dataset loads the drought-index table into memory once at startup.
package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
)

// Column names, matched case-insensitively against the header row. Any other
// columns (such as a leading unnamed index) are ignored.
const (
	ColArea = "area"
	ColYear = "year"
	ColWeek = "week"
	ColSMN  = "smn"
	ColSMT  = "smt"
	ColVCI  = "vci"
	ColTCI  = "tci"
	ColVHI  = "vhi"
)

// RequiredColumns is the header contract in canonical order.
var RequiredColumns = []string{ColArea, ColYear, ColWeek, ColSMN, ColSMT, ColVCI, ColTCI, ColVHI}

// Dataset is the full row set plus the year span it covers. It is never
// mutated after Load returns and may be shared between sessions.
type Dataset struct {
	Rows  []domain.Observation
	Years domain.Range
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// UnmappedCodes lists region codes present in the data but missing from the
// catalog, in first-seen order.
func (d *Dataset) UnmappedCodes() []domain.RegionCode {
	seen := make(map[domain.RegionCode]bool)
	var out []domain.RegionCode
	for _, r := range d.Rows {
		if seen[r.Region] {
			continue
		}
		seen[r.Region] = true
		if _, ok := domain.Lookup(r.Region); !ok {
			out = append(out, r.Region)
		}
	}
	return out
}

// Load reads the dataset at path. The format is chosen by extension:
// .csv (or .txt) and .xlsx.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadCSV parses a delimited dataset from r.
func ReadCSV(r io.Reader) (*Dataset, error) {
	records, err := readCSVRecords(r)
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

// fromRecords converts a header row plus data rows into a Dataset.
func fromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("read header: %w", ErrEmpty)
	}
	cols, err := indexHeader(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Observation, 0, len(records)-1)
	years := domain.Range{Low: math.MaxInt, High: math.MinInt}
	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row, err := parseRow(cols, rec, i+2)
		if err != nil {
			return nil, err
		}
		years.Low = min(years.Low, row.Year)
		years.High = max(years.High, row.Year)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return &Dataset{Rows: rows, Years: years}, nil
}

func indexHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return cols, nil
}

func parseRow(cols map[string]int, rec []string, line int) (domain.Observation, error) {
	cell := func(name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var (
		row  domain.Observation
		errs error
	)
	intCol := func(name string) int {
		if errs != nil {
			return 0
		}
		v, err := parseInt(cell(name))
		if err != nil {
			errs = &ParseError{Line: line, Column: name, Value: cell(name), Err: err}
		}
		return v
	}
	floatCol := func(name string) float64 {
		if errs != nil {
			return 0
		}
		v, err := strconv.ParseFloat(cell(name), 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = ErrNonFinite
		}
		if err != nil {
			errs = &ParseError{Line: line, Column: name, Value: cell(name), Err: err}
		}
		return v
	}

	code := cell(ColArea)
	if code == "" {
		return row, &ParseError{Line: line, Column: ColArea, Value: code, Err: ErrMissingColumn}
	}
	// Codes sometimes arrive as "7.0" from spreadsheet exports.
	if n, err := parseInt(code); err == nil {
		code = strconv.Itoa(n)
	}
	row.Region = domain.RegionCode(code)
	row.RegionName = domain.RegionName(row.Region)
	row.Year = intCol(ColYear)
	row.Week = intCol(ColWeek)
	row.SMN = floatCol(ColSMN)
	row.SMT = floatCol(ColSMT)
	row.VCI = floatCol(ColVCI)
	row.TCI = floatCol(ColTCI)
	row.VHI = floatCol(ColVHI)
	return row, errs
}

// parseInt accepts plain integers and integral floats ("1990.0").
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not an integer: %s", s)
	}
	return int(f), nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
