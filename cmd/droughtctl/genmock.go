package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

type genmockOptions struct {
	out   string
	seed  uint64
	years string
}

func newGenmockCmd() *cobra.Command {
	opts := genmockOptions{}
	cmd := &cobra.Command{
		Use:   "genmock",
		Short: "Generate a deterministic synthetic dataset for local runs and fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			years, err := parseRange(opts.years)
			if err != nil {
				return fmt.Errorf("--years: %w", err)
			}
			if years.Low > years.High {
				return fmt.Errorf("--years: range %s is inverted", years)
			}

			if opts.out == "" || opts.out == "-" {
				return writeMock(cmd.OutOrStdout(), opts.seed, years)
			}
			if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
				return err
			}
			f, err := os.Create(opts.out)
			if err != nil {
				return err
			}
			if err := writeMock(f, opts.seed, years); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", opts.out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.out, "output", "o", "", "output CSV path (default stdout)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&opts.years, "years", "1982-2020", "inclusive year range")
	return cmd
}

// writeMock writes one row per region, year and week in the same layout as
// the published dataset: a leading unnamed index column, then the fields.
func writeMock(w io.Writer, seed uint64, years domain.Range) error {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"", "area", "Year", "Week", "SMN", "SMT", "VCI", "TCI", "VHI"}); err != nil {
		return err
	}

	n := 0
	for _, region := range domain.Regions() {
		// Per-region offsets keep the comparison chart from flattening out.
		bias := rng.Float64()*20 - 10
		for year := years.Low; year <= years.High; year++ {
			drought := rng.Float64() * 15
			for week := domain.MinWeek; week <= domain.MaxWeek; week++ {
				season := math.Sin(2 * math.Pi * float64(week-10) / float64(domain.MaxWeek))
				smn := clamp(0.15+0.12*season+rng.NormFloat64()*0.02, 0.01, 0.6)
				smt := 270 + 20*season + rng.NormFloat64()*2
				vci := clamp(50+bias-drought+25*season+rng.NormFloat64()*8, 0, 100)
				tci := clamp(50-bias/2+drought/2-20*season+rng.NormFloat64()*8, 0, 100)
				vhi := 0.5*vci + 0.5*tci

				rec := []string{
					strconv.Itoa(n),
					string(region.Code),
					strconv.Itoa(year),
					strconv.Itoa(week),
					fixed(smn, 3),
					fixed(smt, 2),
					fixed(vci, 2),
					fixed(tci, 2),
					fixed(vhi, 2),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
				n++
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
