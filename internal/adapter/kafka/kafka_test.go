package kafka

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testEvent() domain.SelectionEvent {
	return domain.SelectionEvent{
		SessionID:  "sess-1",
		Action:     domain.ActionReset,
		Selection:  domain.DefaultSelection(),
		OccurredAt: time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC),
	}
}

func TestSerializeToMessage(t *testing.T) {
	event := testEvent()

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("sess-1"), msg.Key)
	assert.Equal(t, event.OccurredAt, msg.Time)
	assert.Contains(t, string(msg.Value), `"action":"reset"`)
	assert.Contains(t, string(msg.Value), `"region":"Zaporizhzhia r."`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "action", msg.Headers[0].Key)
	assert.Equal(t, []byte("reset"), msg.Headers[0].Value)
	assert.Equal(t, "occurred_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2024-04-26T15:10:00Z"), msg.Headers[1].Value)
}

func TestEventWriter_Publish(t *testing.T) {
	fw := &fakeWriter{}
	w := &EventWriter{writer: fw, logger: slog.Default()}

	require.NoError(t, w.Publish(context.Background(), testEvent()))
	require.Len(t, fw.msgs, 1)
	assert.Equal(t, []byte("sess-1"), fw.msgs[0].Key)

	require.NoError(t, w.Close())
	assert.True(t, fw.closed)
}

func TestEventWriter_PublishError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("leader not available")}
	w := &EventWriter{writer: fw, logger: slog.Default()}

	err := w.Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write selection event")
}
