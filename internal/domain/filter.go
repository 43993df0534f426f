package domain

// Filter returns the rows whose region equals code and whose year and week
// fall inside the inclusive ranges. Input order is preserved and the input
// is not modified. No match yields an empty, non-nil slice.
func Filter(rows []Observation, code RegionCode, years, weeks Range) []Observation {
	out := make([]Observation, 0)
	for _, r := range rows {
		if r.Region != code {
			continue
		}
		if !years.Contains(r.Year) || !weeks.Contains(r.Week) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterPeriod applies only the year and week conditions. It is the
// region-agnostic restriction used for cross-region comparison.
func FilterPeriod(rows []Observation, years, weeks Range) []Observation {
	out := make([]Observation, 0)
	for _, r := range rows {
		if years.Contains(r.Year) && weeks.Contains(r.Week) {
			out = append(out, r)
		}
	}
	return out
}
