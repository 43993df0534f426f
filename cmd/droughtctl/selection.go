package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

// selectionFlags binds the dashboard filters to command flags.
type selectionFlags struct {
	index  string
	region string
	years  string
	weeks  string
	sort   string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	def := domain.DefaultSelection()
	cmd.Flags().StringVar(&f.index, "index", string(def.Index), "index to display (VCI, TCI or VHI)")
	cmd.Flags().StringVar(&f.region, "region", def.Region, "region name or area code")
	cmd.Flags().StringVar(&f.years, "years", formatRange(def.Years), "inclusive year range, e.g. 1988-2002")
	cmd.Flags().StringVar(&f.weeks, "weeks", formatRange(def.Weeks), "inclusive week range, e.g. 9-10")
	cmd.Flags().StringVar(&f.sort, "sort", string(def.Sort), "table order by index value (none, asc or desc)")
}

// selection resolves the flags into a validated selection.
func (f *selectionFlags) selection() (domain.Selection, error) {
	sel := domain.DefaultSelection()

	idx, err := domain.ParseIndex(f.index)
	if err != nil {
		return sel, err
	}
	sel.Index = idx

	sel.Region = f.region
	if name, ok := domain.Lookup(domain.RegionCode(f.region)); ok {
		sel.Region = name
	}

	if sel.Years, err = parseRange(f.years); err != nil {
		return sel, fmt.Errorf("--years: %w", err)
	}
	if sel.Weeks, err = parseRange(f.weeks); err != nil {
		return sel, fmt.Errorf("--weeks: %w", err)
	}
	if sel.Sort, err = domain.ParseSortOrder(f.sort); err != nil {
		return sel, err
	}

	return sel, sel.Validate()
}

// parseRange accepts "low-high" or a single value.
func parseRange(s string) (domain.Range, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		hi = lo
	}
	low, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return domain.Range{}, fmt.Errorf("invalid range %q", s)
	}
	high, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return domain.Range{}, fmt.Errorf("invalid range %q", s)
	}
	return domain.Range{Low: low, High: high}, nil
}

func formatRange(r domain.Range) string {
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}
