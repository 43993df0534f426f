package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/couchcryptid/drought-dashboard/internal/dashboard"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"fixed": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"weeks": func() []int {
		out := make([]int, 0, domain.MaxWeek)
		for w := domain.MinWeek; w <= domain.MaxWeek; w++ {
			out = append(out, w)
		}
		return out
	},
	"years": func(r domain.Range) []int {
		out := make([]int, 0, r.High-r.Low+1)
		for y := r.Low; y <= r.High; y++ {
			out = append(out, y)
		}
		return out
	},
}).ParseFS(templateFS, "templates/dashboard.html"))

// Dashboard tabs.
const (
	tabTable   = "table"
	tabChart   = "chart"
	tabCompare = "compare"
)

type pageData struct {
	View    dashboard.View
	Title   string
	Regions []domain.Region
	Indices []domain.Index
	Years   domain.Range
	Tab     string
	Error   string
}

// yearOptions spans the dataset's years widened to the selection's, so a
// range set through the JSON API still has matching options in the form.
func yearOptions(data, sel domain.Range) domain.Range {
	return domain.Range{Low: min(data.Low, sel.Low), High: max(data.High, sel.High)}
}

func normalizeTab(tab string) string {
	switch tab {
	case tabChart, tabCompare:
		return tab
	default:
		return tabTable
	}
}

func pageURL(tab string) string {
	tab = normalizeTab(tab)
	if tab == tabTable {
		return "/"
	}
	return "/?" + url.Values{"tab": {tab}}.Encode()
}
