package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/ent/generated/event"
	"github.com/dataferry/dataferry/internal/events"
	internaltesting "github.com/dataferry/dataferry/internal/testing"
)

func TestControllerPersistsEvents(t *testing.T) {
	bus := events.New()
	defer bus.Close()

	db := internaltesting.NewTestDB(t)
	ctx := context.Background()

	ds, err := db.Dataset.Create().
		SetName("spikes.times.npy").
		Save(ctx)
	require.NoError(t, err)

	c := events.NewController(bus, db)
	require.NoError(t, c.Start(ctx))
	defer func() { _ = c.Stop() }()

	bus.Publish(events.Event{
		Type:    events.RecordConfirmed,
		Subject: ds,
		Data:    map[string]any{"repository": "flatiron"},
	})

	// Wait for the async controller to persist the row
	require.Eventually(t, func() bool {
		n, countErr := db.Event.Query().Count(ctx)
		return countErr == nil && n == 1
	}, 2*time.Second, 10*time.Millisecond)

	row, err := db.Event.Query().Only(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(events.RecordConfirmed), row.Type)
	assert.Equal(t, event.SubjectTypeDataset, row.SubjectType)
	require.NotNil(t, row.SubjectID)
	assert.Equal(t, ds.ID.String(), *row.SubjectID)
	assert.Equal(t, "flatiron", row.RepositoryName)
	assert.Contains(t, row.Message, "Confirmed on flatiron")
	assert.Contains(t, row.Details, `"repository":"flatiron"`)
}

func TestControllerSystemEvent(t *testing.T) {
	bus := events.New()
	defer bus.Close()

	db := internaltesting.NewTestDB(t)
	ctx := context.Background()

	c := events.NewController(bus, db)
	require.NoError(t, c.Start(ctx))
	defer func() { _ = c.Stop() }()

	bus.Publish(events.Event{Type: events.SystemStarted})

	require.Eventually(t, func() bool {
		n, countErr := db.Event.Query().Count(ctx)
		return countErr == nil && n == 1
	}, 2*time.Second, 10*time.Millisecond)

	row, err := db.Event.Query().Only(ctx)
	require.NoError(t, err)

	assert.Equal(t, event.SubjectTypeSystem, row.SubjectType)
	assert.Nil(t, row.SubjectID)
	assert.Equal(t, "System started", row.Message)
}
