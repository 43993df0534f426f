package main

import (
	"fmt"
	"io"

	"github.com/couchcryptid/drought-dashboard/internal/dataset"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

// maxReported caps the per-check detail lines.
const maxReported = 20

// check tracks pass/fail for one integrity check.
type check struct {
	name     string
	problems []string
}

func (c *check) errorf(format string, args ...any) {
	c.problems = append(c.problems, fmt.Sprintf(format, args...))
}

func (c *check) passed() bool { return len(c.problems) == 0 }

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dataset>",
		Short: "Check a dataset for unmapped regions, bad weeks and duplicates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			if !report(cmd.OutOrStdout(), data) {
				return fmt.Errorf("validation failed for %s", args[0])
			}
			return nil
		},
	}
}

// report prints the integrity report and returns true when every check passed.
func report(w io.Writer, data *dataset.Dataset) bool {
	checks := []*check{
		checkRegions(data),
		checkWeeks(data.Rows),
		checkDuplicates(data.Rows),
	}

	fmt.Fprintf(w, "Rows: %d, years %d-%d\n\n", data.Len(), data.Years.Low, data.Years.High)

	ok := true
	for _, c := range checks {
		status := styleOK.Render("PASS")
		if !c.passed() {
			status = styleFail.Render(fmt.Sprintf("FAIL (%d)", len(c.problems)))
			ok = false
		}
		fmt.Fprintf(w, "  %-28s %s\n", c.name, status)
	}

	for _, c := range checks {
		if c.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", c.name)
		for i, p := range c.problems {
			if i == maxReported {
				fmt.Fprintf(w, "  ... %d more\n", len(c.problems)-maxReported)
				break
			}
			fmt.Fprintf(w, "  [%d] %s\n", i+1, p)
		}
	}

	if ok {
		fmt.Fprintln(w, "\nAll checks passed.")
	}
	return ok
}

func checkRegions(data *dataset.Dataset) *check {
	c := &check{name: "Region codes"}
	for _, code := range data.UnmappedCodes() {
		c.errorf("area %q is not in the region catalog", code)
	}
	return c
}

func checkWeeks(rows []domain.Observation) *check {
	c := &check{name: "Week bounds"}
	weeks := domain.Range{Low: domain.MinWeek, High: domain.MaxWeek}
	for _, r := range rows {
		if !weeks.Contains(r.Week) {
			c.errorf("%s %d: week %d outside %s", r.RegionName, r.Year, r.Week, weeks)
		}
	}
	return c
}

func checkDuplicates(rows []domain.Observation) *check {
	c := &check{name: "Duplicate observations"}
	type key struct {
		region     domain.RegionCode
		year, week int
	}
	seen := make(map[key]int, len(rows))
	for _, r := range rows {
		k := key{r.Region, r.Year, r.Week}
		seen[k]++
		if seen[k] == 2 {
			c.errorf("%s %d week %d appears more than once", r.RegionName, r.Year, r.Week)
		}
	}
	return c
}
