// Package dashboard runs one filter, sort and aggregate cycle per request and
// manages per-session selection changes.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/drought-dashboard/internal/dataset"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
)

// SessionStore holds each session's selection.
type SessionStore interface {
	Get(id string) domain.Selection
	Put(id string, sel domain.Selection)
	Reset(id string) domain.Selection
}

// EventPublisher forwards accepted selection changes.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.SelectionEvent) error
}

// Service ties the shared dataset to per-session selections.
type Service struct {
	data     *dataset.Dataset
	sessions SessionStore
	events   EventPublisher
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the real clock used for event timestamps and timings.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// New creates a Service. Pass a nil publisher to disable selection events.
func New(data *dataset.Dataset, sessions SessionStore, events EventPublisher, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Service {
	s := &Service{
		data:     data,
		sessions: sessions,
		events:   events,
		clock:    clockwork.NewRealClock(),
		logger:   logger,
		metrics:  metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.DatasetRows.Set(float64(data.Len()))
	if events != nil {
		s.metrics.EventsEnabled.Set(1)
	} else {
		s.metrics.EventsEnabled.Set(0)
	}
	return s
}

// CheckReadiness returns nil once a non-empty dataset is loaded.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.data.Len() == 0 {
		return errors.New("dataset is not loaded")
	}
	return nil
}

// Regions lists the catalog in display order.
func (s *Service) Regions() []domain.Region {
	return domain.Regions()
}

// YearBounds is the span of years present in the dataset.
func (s *Service) YearBounds() domain.Range {
	return s.data.Years
}

// Selection returns the session's current selection.
func (s *Service) Selection(sessionID string) domain.Selection {
	return s.sessions.Get(sessionID)
}

// Update validates sel and, if valid, replaces the session's selection whole.
// An invalid selection leaves the stored one untouched.
func (s *Service) Update(ctx context.Context, sessionID string, sel domain.Selection) (domain.Selection, error) {
	if err := sel.Validate(); err != nil {
		s.metrics.InvalidSelection.Inc()
		return s.sessions.Get(sessionID), err
	}
	s.sessions.Put(sessionID, sel)
	s.recordChange(ctx, sessionID, domain.ActionUpdate, sel)
	return sel, nil
}

// Reset restores the session's selection to the defaults.
func (s *Service) Reset(ctx context.Context, sessionID string) domain.Selection {
	sel := s.sessions.Reset(sessionID)
	s.recordChange(ctx, sessionID, domain.ActionReset, sel)
	return sel
}

func (s *Service) recordChange(ctx context.Context, sessionID, action string, sel domain.Selection) {
	s.metrics.SelectionChanges.WithLabelValues(action).Inc()
	s.logger.Debug("selection changed",
		"session", sessionID,
		"action", action,
		"index", sel.Index,
		"region", sel.Region,
		"years", sel.Years.String(),
		"weeks", sel.Weeks.String(),
		"sort", sel.Sort,
	)

	if s.events == nil {
		return
	}
	event := domain.SelectionEvent{
		SessionID:  sessionID,
		Action:     action,
		Selection:  sel,
		OccurredAt: s.clock.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.metrics.EventErrors.Inc()
		s.logger.Warn("publish selection event failed", "session", sessionID, "action", action, "error", err)
		return
	}
	s.metrics.EventsPublished.Inc()
}

// Render evaluates sel against the dataset. view labels the metrics
// ("page", "table", "line", "compare", "export").
func (s *Service) Render(view string, sel domain.Selection) View {
	start := s.clock.Now()
	v := Evaluate(s.data.Rows, sel)

	s.metrics.Renders.WithLabelValues(view).Inc()
	if v.NoData {
		s.metrics.EmptyResults.WithLabelValues(view).Inc()
	}
	s.metrics.RenderDuration.WithLabelValues(view).Observe(s.clock.Since(start).Seconds())
	return v
}

// Title is the line chart heading for sel.
func Title(sel domain.Selection) string {
	return fmt.Sprintf("%s for %s", sel.Index, sel.Region)
}
