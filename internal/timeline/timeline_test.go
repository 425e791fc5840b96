package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/timeline"
)

func TestRecorderNewestFirst(t *testing.T) {
	rec := timeline.NewRecorder()

	rec.Record(timeline.Entry{Type: timeline.EntryRegistered, Message: "first"})
	rec.Record(timeline.Entry{Type: timeline.EntryConfirmed, Message: "second"})

	all := rec.All()
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Message)
	assert.Equal(t, "first", all[1].Message)
	assert.NotEmpty(t, all[0].ID)
	assert.False(t, all[0].Timestamp.IsZero())
}

func TestRecorderFilters(t *testing.T) {
	rec := timeline.NewRecorder()

	rec.Record(timeline.Entry{Type: timeline.EntryConfirmed, DatasetID: "ds-1", Repository: "flatiron"})
	rec.Record(timeline.Entry{Type: timeline.EntryVanished, DatasetID: "ds-2", Repository: "desktop"})
	rec.Record(timeline.Entry{Type: timeline.EntryUnreachable, Endpoint: "desk-01"})

	assert.Len(t, rec.ByDataset("ds-1"), 1)
	assert.Len(t, rec.ByRepository("desktop"), 1)
	assert.Len(t, rec.ByEndpoint("desk-01"), 1)
	assert.Empty(t, rec.ByDataset("ds-3"))
}

func TestRecorderMaxEntries(t *testing.T) {
	rec := timeline.NewRecorder(timeline.WithMaxEntries(3))

	for i := 0; i < 5; i++ {
		rec.Record(timeline.Entry{Type: timeline.EntryConfirmed})
	}

	assert.Len(t, rec.All(), 3)
}

func TestRecorderClear(t *testing.T) {
	rec := timeline.NewRecorder()

	rec.Record(timeline.Entry{DatasetID: "ds-1"})
	rec.Record(timeline.Entry{DatasetID: "ds-2"})

	rec.Clear("ds-1")

	all := rec.All()
	require.Len(t, all, 1)
	assert.Equal(t, "ds-2", all[0].DatasetID)
}
