package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/events"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := events.New()
	defer bus.Close()

	sub := bus.Subscribe(events.RecordConfirmed)

	bus.Publish(events.Event{
		Type: events.RecordConfirmed,
		Data: map[string]any{"repository": "flatiron"},
	})

	select {
	case ev := <-sub:
		assert.Equal(t, events.RecordConfirmed, ev.Type)
		assert.Equal(t, "flatiron", ev.Data["repository"])
		assert.False(t, ev.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBusTypeFilter(t *testing.T) {
	bus := events.New()
	defer bus.Close()

	sub := bus.Subscribe(events.TransferSubmitted)

	bus.Publish(events.Event{Type: events.RecordConfirmed})
	bus.Publish(events.Event{Type: events.TransferSubmitted})

	select {
	case ev := <-sub:
		assert.Equal(t, events.TransferSubmitted, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	// No further events should be delivered
	select {
	case ev := <-sub:
		t.Fatalf("unexpected extra event: %s", ev.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusSubscribeAll(t *testing.T) {
	bus := events.New()
	defer bus.Close()

	sub := bus.Subscribe()

	for _, typ := range []events.Type{
		events.DatasetRegistered,
		events.SourceMissing,
		events.DatasetPurged,
	} {
		bus.Publish(events.Event{Type: typ})
	}

	var got []events.Type
	for range 3 {
		select {
		case ev := <-sub:
			got = append(got, ev.Type)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for events")
		}
	}

	assert.Equal(t, []events.Type{
		events.DatasetRegistered,
		events.SourceMissing,
		events.DatasetPurged,
	}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := events.New()
	defer bus.Close()

	sub := bus.Subscribe()
	require.Equal(t, 1, bus.SubscriberCount())

	bus.Unsubscribe(sub)
	assert.Equal(t, 0, bus.SubscriberCount())

	// Channel must be closed
	_, ok := <-sub
	assert.False(t, ok)
}
