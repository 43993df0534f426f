package domain

import (
	"cmp"
	"slices"
)

// Sort returns a copy of rows ordered by the idx column. The sort is stable,
// so rows with equal values keep their input order. Values are finite; the
// dataset loader rejects NaN and infinities.
func Sort(rows []Observation, idx Index, ascending bool) []Observation {
	out := slices.Clone(rows)
	if out == nil {
		out = make([]Observation, 0)
	}
	slices.SortStableFunc(out, func(a, b Observation) int {
		va, vb := a.Value(idx), b.Value(idx)
		if ascending {
			return cmp.Compare(va, vb)
		}
		return cmp.Compare(vb, va)
	})
	return out
}

// ApplySort sorts rows according to order. SortNone returns the rows in
// their input order.
func ApplySort(rows []Observation, idx Index, order SortOrder) []Observation {
	switch order {
	case SortAscending:
		return Sort(rows, idx, true)
	case SortDescending:
		return Sort(rows, idx, false)
	default:
		return rows
	}
}
