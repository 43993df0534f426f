package domain

// Point is one line-chart sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// weeksPerYear converts a week number into a fractional year offset.
const weeksPerYear = 52.0

// Series maps rows to chart points with x = Year + Week/52 and y = the idx
// value, keeping row order.
func Series(rows []Observation, idx Index) []Point {
	out := make([]Point, len(rows))
	for i, r := range rows {
		out[i] = Point{
			X: float64(r.Year) + float64(r.Week)/weeksPerYear,
			Y: r.Value(idx),
		}
	}
	return out
}
