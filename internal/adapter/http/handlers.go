package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/couchcryptid/drought-dashboard/internal/chart"
	"github.com/couchcryptid/drought-dashboard/internal/dashboard"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/export"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	s.renderPage(w, http.StatusOK, s.dash.Selection(id), r.URL.Query().Get("tab"), "")
}

func (s *Server) renderPage(w http.ResponseWriter, status int, sel domain.Selection, tab, errMsg string) {
	data := pageData{
		View:    s.dash.Render("page", sel),
		Title:   dashboard.Title(sel),
		Regions: s.dash.Regions(),
		Indices: domain.Indices(),
		Years:   yearOptions(s.dash.YearBounds(), sel.Years),
		Tab:     normalizeTab(tab),
		Error:   errMsg,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("render page failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleFormUpdate(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, http.StatusBadRequest, s.dash.Selection(id), "", err.Error())
		return
	}

	sel, err := selectionFromForm(s.dash.Selection(id), r.PostForm)
	if err == nil {
		_, err = s.dash.Update(r.Context(), id, sel)
	}
	if err != nil {
		s.renderPage(w, http.StatusBadRequest, s.dash.Selection(id), r.PostForm.Get("tab"), err.Error())
		return
	}
	http.Redirect(w, r, pageURL(r.PostForm.Get("tab")), http.StatusSeeOther)
}

func (s *Server) handleFormReset(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	s.dash.Reset(r.Context(), id)
	http.Redirect(w, r, pageURL(r.FormValue("tab")), http.StatusSeeOther)
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dash.Regions())
}

func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dash.Selection(sessionID(w, r)))
}

func (s *Server) handlePutSelection(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)

	var sel domain.Selection
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if sel.Sort == "" {
		sel.Sort = domain.SortNone
	}

	got, err := s.dash.Update(r.Context(), id, sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid selection", err)
		return
	}
	writeJSON(w, http.StatusOK, got)
}

func (s *Server) handleAPIReset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dash.Reset(r.Context(), sessionID(w, r)))
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sel := s.dash.Selection(sessionID(w, r))
	writeJSON(w, http.StatusOK, s.dash.Render("table", sel))
}

// handleChart serves /charts/line.png, /charts/compare.svg and so on.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("chart")
	format := strings.TrimPrefix(path.Ext(name), ".")
	kind := strings.TrimSuffix(name, path.Ext(name))

	sel := s.dash.Selection(sessionID(w, r))
	var (
		buf bytes.Buffer
		err error
	)
	switch kind {
	case "line":
		v := s.dash.Render("line", sel)
		err = chart.Line(&buf, dashboard.Title(sel), sel.Index, v.Series, format)
	case "compare":
		v := s.dash.Render("compare", sel)
		err = chart.Compare(&buf, sel.Index, v.Means, v.Highlight, format)
	default:
		writeError(w, http.StatusNotFound, "unknown chart", nil)
		return
	}

	switch {
	case errors.Is(err, chart.ErrNoData):
		writeError(w, http.StatusNotFound, "no data", nil)
		return
	case errors.Is(err, chart.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "unsupported format", err)
		return
	case err != nil:
		s.logger.Error("render chart failed", "chart", kind, "error", err)
		writeError(w, http.StatusInternalServerError, "render failed", err)
		return
	}

	w.Header().Set("Content-Type", chart.ContentType(format))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sel := s.dash.Selection(sessionID(w, r))
	v := s.dash.Render("export", sel)

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, v.Rows, sel.Index, v.Means); err != nil {
		s.logger.Error("export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="drought-`+string(v.Region)+`.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
