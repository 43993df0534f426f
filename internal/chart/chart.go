// Package chart renders the dashboard's line and comparison charts with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrNoData is returned when there is nothing to plot.
	ErrNoData = errors.New("no data to plot")
	// ErrUnsupportedFormat is returned for output formats other than png and svg.
	ErrUnsupportedFormat = errors.New("unsupported chart format")
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	lineColor      = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	barColor       = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	highlightColor = color.RGBA{R: 220, G: 20, B: 60, A: 255}
)

// ContentType maps an output format to its MIME type.
func ContentType(format string) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Line plots an index over time: x = Year + Week/52, y = index value.
func Line(w io.Writer, title string, idx domain.Index, points []domain.Point, format string) error {
	format, err := normalizeFormat(format)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = string(idx)
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)
	p.Add(line)

	return save(p, w, 10*vg.Inch, 5*vg.Inch, format)
}

// Compare draws one bar per region mean, in the given order. When highlight
// is non-nil a dashed line marks the selected region's mean.
func Compare(w io.Writer, idx domain.Index, means []domain.RegionMean, highlight *float64, format string) error {
	format, err := normalizeFormat(format)
	if err != nil {
		return err
	}
	if len(means) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Mean %s by region", idx)
	p.Y.Label.Text = string(idx)
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(means))
	names := make([]string, len(means))
	for i, m := range means {
		values[i] = m.Mean
		names[i] = m.Region
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("build bars: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if highlight != nil {
		level := *highlight
		line := plotter.NewFunction(func(float64) float64 { return level })
		line.Color = highlightColor
		line.Width = vg.Points(1.5)
		line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("selected region %.2f", level), line)
		p.Legend.Top = true
	}

	return save(p, w, 12*vg.Inch, 6*vg.Inch, format)
}

func normalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func save(p *plot.Plot, w io.Writer, width, height vg.Length, format string) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}
