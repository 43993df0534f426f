package domain

import (
	"cmp"
	"slices"
)

// RegionMean is the mean of the selected index over one region's rows.
type RegionMean struct {
	Region string  `json:"region"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}

// AggregateMeans restricts rows to the year and week ranges (ignoring the
// region), groups them by region name and averages idx per group. Groups
// are returned in ascending order of mean, ties broken by region name.
// Regions with no rows in range are absent from the result.
func AggregateMeans(rows []Observation, years, weeks Range, idx Index) []RegionMean {
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)
	for _, r := range rows {
		if !years.Contains(r.Year) || !weeks.Contains(r.Week) {
			continue
		}
		g, ok := groups[r.RegionName]
		if !ok {
			g = &acc{}
			groups[r.RegionName] = g
		}
		g.sum += r.Value(idx)
		g.count++
	}

	out := make([]RegionMean, 0, len(groups))
	for name, g := range groups {
		if g.count == 0 {
			continue
		}
		out = append(out, RegionMean{Region: name, Mean: g.sum / float64(g.count), Count: g.count})
	}
	slices.SortFunc(out, func(a, b RegionMean) int {
		if c := cmp.Compare(a.Mean, b.Mean); c != 0 {
			return c
		}
		return cmp.Compare(a.Region, b.Region)
	})
	return out
}

// Means is the map form of AggregateMeans: region name to mean.
func Means(rows []Observation, years, weeks Range, idx Index) map[string]float64 {
	agg := AggregateMeans(rows, years, weeks, idx)
	out := make(map[string]float64, len(agg))
	for _, m := range agg {
		out[m.Region] = m.Mean
	}
	return out
}

// LookupMean finds region's mean in an aggregation result. The second return
// is false when the region had no rows in range.
func LookupMean(means []RegionMean, region string) (float64, bool) {
	for _, m := range means {
		if m.Region == region {
			return m.Mean, true
		}
	}
	return 0, false
}
