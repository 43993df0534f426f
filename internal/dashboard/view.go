package dashboard

import "github.com/couchcryptid/drought-dashboard/internal/domain"

// View is everything one render cycle produces.
type View struct {
	Selection domain.Selection     `json:"selection"`
	Region    domain.RegionCode    `json:"region_code"`
	Rows      []domain.Observation `json:"rows"`
	Series    []domain.Point       `json:"series"`
	Means     []domain.RegionMean  `json:"means"`
	// Highlight is the selected region's mean, nil when it has no rows in range.
	Highlight *float64 `json:"highlight"`
	NoData    bool     `json:"no_data"`
}

// Evaluate runs the filter, sort and aggregate transforms for sel over rows.
// The table rows follow the selection's sort order; the line series keeps
// the filtered (time) order.
func Evaluate(rows []domain.Observation, sel domain.Selection) View {
	code, _ := sel.RegionCode()
	filtered := domain.Filter(rows, code, sel.Years, sel.Weeks)
	means := domain.AggregateMeans(rows, sel.Years, sel.Weeks, sel.Index)

	v := View{
		Selection: sel,
		Region:    code,
		Rows:      domain.ApplySort(filtered, sel.Index, sel.Sort),
		Series:    domain.Series(filtered, sel.Index),
		Means:     means,
		NoData:    len(filtered) == 0,
	}
	if mean, ok := domain.LookupMean(means, sel.Region); ok {
		v.Highlight = &mean
	}
	return v
}
