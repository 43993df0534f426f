package domain

import (
	"fmt"
	"strings"
)

// Index identifies one of the drought-condition columns a user can select.
type Index string

const (
	IndexVCI Index = "VCI" // vegetation condition
	IndexTCI Index = "TCI" // temperature condition
	IndexVHI Index = "VHI" // vegetation health (VCI and TCI combined)
)

// Indices lists the selectable indices in dropdown order.
func Indices() []Index {
	return []Index{IndexVCI, IndexTCI, IndexVHI}
}

// ParseIndex accepts an index name in any case.
func ParseIndex(s string) (Index, error) {
	switch Index(strings.ToUpper(strings.TrimSpace(s))) {
	case IndexVCI:
		return IndexVCI, nil
	case IndexTCI:
		return IndexTCI, nil
	case IndexVHI:
		return IndexVHI, nil
	}
	return "", fmt.Errorf("%w: unknown index %q", ErrInvalidSelection, s)
}

// Observation is one weekly row of the dataset. Rows are immutable once loaded.
type Observation struct {
	Region     RegionCode `json:"area"`
	RegionName string     `json:"area_name"`
	Year       int        `json:"year"`
	Week       int        `json:"week"`
	SMN        float64    `json:"smn"`
	SMT        float64    `json:"smt"`
	VCI        float64    `json:"vci"`
	TCI        float64    `json:"tci"`
	VHI        float64    `json:"vhi"`
}

// Value returns the row's value for idx. Unknown indices yield 0.
func (o Observation) Value(idx Index) float64 {
	switch idx {
	case IndexVCI:
		return o.VCI
	case IndexTCI:
		return o.TCI
	case IndexVHI:
		return o.VHI
	default:
		return 0
	}
}

// Range is an inclusive [Low, High] interval of years or weeks.
type Range struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v int) bool {
	return v >= r.Low && v <= r.High
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Low, r.High)
}
