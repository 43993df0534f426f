package domain

import (
	"fmt"
	"strings"
)

// Week bounds of the dataset's weekly calendar.
const (
	MinWeek = 1
	MaxWeek = 52
)

// SortOrder is the table sort toggle. Ascending and descending are values of
// one field, so both can never be active at once.
type SortOrder string

const (
	SortNone       SortOrder = "none"
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder maps "", "none", "asc" and "desc" to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortNone:
		return SortNone, nil
	case SortAscending:
		return SortAscending, nil
	case SortDescending:
		return SortDescending, nil
	}
	return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidSelection, s)
}

// Selection holds the per-session filter and sort parameters that drive one
// render cycle.
type Selection struct {
	Index  Index     `json:"index"`
	Region string    `json:"region"`
	Years  Range     `json:"years"`
	Weeks  Range     `json:"weeks"`
	Sort   SortOrder `json:"sort"`
}

// DefaultSelection is the state a new session starts in and Reset returns to.
func DefaultSelection() Selection {
	return Selection{
		Index:  IndexVCI,
		Region: regions[6].Name,
		Years:  Range{Low: 1988, High: 2002},
		Weeks:  Range{Low: 9, High: 10},
		Sort:   SortNone,
	}
}

// Reset restores every field to its default in a single assignment.
func (s *Selection) Reset() {
	*s = DefaultSelection()
}

// ToggleAscending sets or clears the ascending toggle. Setting it clears
// descending; clearing it only has an effect when ascending is active.
func (s *Selection) ToggleAscending(on bool) {
	switch {
	case on:
		s.Sort = SortAscending
	case s.Sort == SortAscending:
		s.Sort = SortNone
	}
}

// ToggleDescending is the mirror of ToggleAscending.
func (s *Selection) ToggleDescending(on bool) {
	switch {
	case on:
		s.Sort = SortDescending
	case s.Sort == SortDescending:
		s.Sort = SortNone
	}
}

// RegionCode resolves the selected region name through the catalog.
func (s Selection) RegionCode() (RegionCode, bool) {
	return CodeForName(s.Region)
}

// Validate checks the selection invariants: known index, catalog region,
// ordered ranges, and week bounds within the calendar.
func (s Selection) Validate() error {
	if _, err := ParseIndex(string(s.Index)); err != nil {
		return err
	}
	if _, ok := s.RegionCode(); !ok {
		return fmt.Errorf("%w: unknown region %q", ErrInvalidSelection, s.Region)
	}
	if s.Years.Low > s.Years.High {
		return fmt.Errorf("%w: year range %s is inverted", ErrInvalidSelection, s.Years)
	}
	if s.Weeks.Low > s.Weeks.High {
		return fmt.Errorf("%w: week range %s is inverted", ErrInvalidSelection, s.Weeks)
	}
	if s.Weeks.Low < MinWeek || s.Weeks.High > MaxWeek {
		return fmt.Errorf("%w: week range %s outside [%d,%d]", ErrInvalidSelection, s.Weeks, MinWeek, MaxWeek)
	}
	if _, err := ParseSortOrder(string(s.Sort)); err != nil {
		return err
	}
	return nil
}
