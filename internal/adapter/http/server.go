package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/dashboard"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dashboard is the application surface the HTTP adapter drives.
type Dashboard interface {
	CheckReadiness(ctx context.Context) error
	Regions() []domain.Region
	YearBounds() domain.Range
	Selection(sessionID string) domain.Selection
	Update(ctx context.Context, sessionID string, sel domain.Selection) (domain.Selection, error)
	Reset(ctx context.Context, sessionID string) domain.Selection
	Render(view string, sel domain.Selection) dashboard.View
}

// Server exposes the dashboard page, its JSON API, chart images, and the
// health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	dash       Dashboard
	logger     *slog.Logger
}

// NewServer creates an HTTP server with dashboard and operational routes.
func NewServer(addr string, dash Dashboard, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		dash:   dash,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(dash))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /selection", s.handleFormUpdate)
	mux.HandleFunc("POST /selection/reset", s.handleFormReset)

	mux.HandleFunc("GET /api/regions", s.handleRegions)
	mux.HandleFunc("GET /api/selection", s.handleGetSelection)
	mux.HandleFunc("PUT /api/selection", s.handlePutSelection)
	mux.HandleFunc("POST /api/selection/reset", s.handleAPIReset)
	mux.HandleFunc("GET /api/view", s.handleView)

	mux.HandleFunc("GET /charts/{chart}", s.handleChart)
	mux.HandleFunc("GET /export.xlsx", s.handleExport)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// writeJSON encodes v before sending the status line so an encoding failure
// becomes a 500 instead of a truncated success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, `{"status":"encode failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	body := map[string]string{"status": msg}
	if err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, status, body)
}
