package http

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
)

// selectionFromForm builds the next selection from a filter form post.
// Absent fields keep their previous values. The sort checkboxes follow the
// last-toggle-wins rule: a box whose state differs from prev is the one the
// user just changed.
func selectionFromForm(prev domain.Selection, form url.Values) (domain.Selection, error) {
	next := prev

	if v := form.Get("index"); v != "" {
		idx, err := domain.ParseIndex(v)
		if err != nil {
			return prev, err
		}
		next.Index = idx
	}
	if v := form.Get("region"); v != "" {
		next.Region = v
	}

	var err error
	if next.Years.Low, err = formInt(form, "year_from", prev.Years.Low); err != nil {
		return prev, err
	}
	if next.Years.High, err = formInt(form, "year_to", prev.Years.High); err != nil {
		return prev, err
	}
	if next.Weeks.Low, err = formInt(form, "week_from", prev.Weeks.Low); err != nil {
		return prev, err
	}
	if next.Weeks.High, err = formInt(form, "week_to", prev.Weeks.High); err != nil {
		return prev, err
	}

	asc := form.Get("sort_asc") != ""
	desc := form.Get("sort_desc") != ""
	if asc != (prev.Sort == domain.SortAscending) {
		next.ToggleAscending(asc)
	}
	if desc != (prev.Sort == domain.SortDescending) {
		next.ToggleDescending(desc)
	}

	return next, nil
}

func formInt(form url.Values, key string, def int) (int, error) {
	v := form.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidSelection, key)
	}
	return n, nil
}
