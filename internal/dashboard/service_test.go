package dashboard_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/dashboard"
	"github.com/couchcryptid/drought-dashboard/internal/dataset"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
	"github.com/couchcryptid/drought-dashboard/internal/session"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "session-1"

// --- mocks ---

type recordingPublisher struct {
	events []domain.SelectionEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.SelectionEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func row(code domain.RegionCode, year, week int, vci float64) domain.Observation {
	return domain.Observation{Region: code, RegionName: domain.RegionName(code), Year: year, Week: week, VCI: vci, TCI: vci, VHI: vci}
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Rows: []domain.Observation{
			row("7", 1990, 9, 40),
			row("7", 1990, 10, 60),
			row("7", 2003, 9, 99),
			row("9", 1990, 9, 80),
			row("12", 2005, 30, 20),
		},
		Years: domain.Range{Low: 1990, High: 2005},
	}
}

func newService(t *testing.T, pub dashboard.EventPublisher) (*dashboard.Service, *observability.Metrics, clockwork.Clock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC))
	metrics := observability.NewMetricsForTesting()
	store := session.NewStore(10, time.Hour, session.WithClock(clock))
	svc := dashboard.New(testDataset(), store, pub, slog.Default(), metrics, dashboard.WithClock(clock))
	return svc, metrics, clock
}

// --- tests ---

func TestEvaluate_DefaultSelection(t *testing.T) {
	v := dashboard.Evaluate(testDataset().Rows, domain.DefaultSelection())

	assert.False(t, v.NoData)
	assert.Equal(t, domain.RegionCode("7"), v.Region)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, 9, v.Rows[0].Week)
	assert.Equal(t, []domain.Point{{X: 1990 + 9.0/52, Y: 40}, {X: 1990 + 10.0/52, Y: 60}}, v.Series)

	require.Len(t, v.Means, 2)
	assert.Equal(t, "Zaporizhzhia r.", v.Means[0].Region)
	assert.InDelta(t, 50.0, v.Means[0].Mean, 1e-9)
	require.NotNil(t, v.Highlight)
	assert.InDelta(t, 50.0, *v.Highlight, 1e-9)
}

func TestEvaluate_SortAffectsTableOnly(t *testing.T) {
	sel := domain.DefaultSelection()
	sel.ToggleDescending(true)

	v := dashboard.Evaluate(testDataset().Rows, sel)

	require.Len(t, v.Rows, 2)
	assert.Equal(t, 10, v.Rows[0].Week, "table sorted by VCI descending")
	assert.Less(t, v.Series[0].X, v.Series[1].X, "series stays in time order")
}

func TestEvaluate_NoRowsForRegion(t *testing.T) {
	sel := domain.DefaultSelection()
	sel.Region = "Lviv r."

	v := dashboard.Evaluate(testDataset().Rows, sel)

	assert.True(t, v.NoData)
	assert.Empty(t, v.Rows)
	assert.NotNil(t, v.Rows)
	assert.Empty(t, v.Series)
	assert.Nil(t, v.Highlight, "highlight omitted when region has no rows in range")
	assert.Len(t, v.Means, 2, "comparison still shows other regions")
}

func TestService_Render_Metrics(t *testing.T) {
	svc, metrics, _ := newService(t, nil)

	svc.Render("table", domain.DefaultSelection())
	empty := domain.DefaultSelection()
	empty.Years = domain.Range{Low: 1900, High: 1901}
	svc.Render("table", empty)

	assert.InDelta(t, 2.0, testutil.ToFloat64(metrics.Renders.WithLabelValues("table")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.EmptyResults.WithLabelValues("table")), 0)
	assert.InDelta(t, 5.0, testutil.ToFloat64(metrics.DatasetRows), 0)
}

func TestService_UpdateAndReset(t *testing.T) {
	pub := &recordingPublisher{}
	svc, metrics, clock := newService(t, pub)
	ctx := context.Background()

	sel := domain.DefaultSelection()
	sel.Region = "Kyiv r."
	sel.Index = domain.IndexTCI

	got, err := svc.Update(ctx, testSession, sel)
	require.NoError(t, err)
	assert.Equal(t, sel, got)
	assert.Equal(t, sel, svc.Selection(testSession))
	assert.Equal(t, domain.DefaultSelection(), svc.Selection("other"), "sessions are independent")

	reset := svc.Reset(ctx, testSession)
	assert.Equal(t, domain.DefaultSelection(), reset)
	assert.Equal(t, domain.DefaultSelection(), svc.Selection(testSession))

	require.Len(t, pub.events, 2)
	assert.Equal(t, domain.ActionUpdate, pub.events[0].Action)
	assert.Equal(t, testSession, pub.events[0].SessionID)
	assert.Equal(t, sel, pub.events[0].Selection)
	assert.Equal(t, clock.Now().UTC(), pub.events[0].OccurredAt)
	assert.Equal(t, domain.ActionReset, pub.events[1].Action)

	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.SelectionChanges.WithLabelValues(domain.ActionUpdate)), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.SelectionChanges.WithLabelValues(domain.ActionReset)), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(metrics.EventsPublished), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.EventsEnabled), 0)
}

func TestService_UpdateRejectsInvalidSelection(t *testing.T) {
	pub := &recordingPublisher{}
	svc, metrics, _ := newService(t, pub)
	ctx := context.Background()

	valid := domain.DefaultSelection()
	valid.Index = domain.IndexVHI
	_, err := svc.Update(ctx, testSession, valid)
	require.NoError(t, err)

	invalid := valid
	invalid.Region = "Kyiv r."
	invalid.Weeks = domain.Range{Low: 40, High: 60}

	got, err := svc.Update(ctx, testSession, invalid)
	require.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.Equal(t, valid, got)
	assert.Equal(t, valid, svc.Selection(testSession), "no partial mutation")
	assert.Len(t, pub.events, 1)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.InvalidSelection), 0)
}

func TestService_PublishFailureIsNotFatal(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc, metrics, _ := newService(t, pub)

	sel := domain.DefaultSelection()
	sel.Sort = domain.SortAscending
	got, err := svc.Update(context.Background(), testSession, sel)

	require.NoError(t, err)
	assert.Equal(t, sel, got)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.EventErrors), 0)
}

func TestService_Readiness(t *testing.T) {
	svc, _, _ := newService(t, nil)
	require.NoError(t, svc.CheckReadiness(context.Background()))

	empty := dashboard.New(&dataset.Dataset{}, session.NewStore(1, time.Minute), nil, slog.Default(), observability.NewMetricsForTesting())
	assert.Error(t, empty.CheckReadiness(context.Background()))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "VCI for Zaporizhzhia r.", dashboard.Title(domain.DefaultSelection()))
}
