package engine

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/events"
	ferrytest "github.com/dataferry/dataferry/internal/testing"
	"github.com/dataferry/dataferry/internal/timeline"
)

func testEngine(t *testing.T) (*Engine, *ferrytest.MockBackend, *generated.Client) {
	t.Helper()

	cfg := ferrytest.ValidConfig(t)
	cfg.Server.Listen = "127.0.0.1:0"
	cfg.Sync.PassInterval = 50 * time.Millisecond

	db := ferrytest.NewTestDB(t)
	mock := ferrytest.NewMockBackend()

	e, err := New(context.Background(), cfg, Options{
		Logger:  zerolog.Nop(),
		DB:      db,
		Backend: mock,
	})
	require.NoError(t, err)
	return e, mock, db
}

func TestRunExecutesReconcileAndTransferPasses(t *testing.T) {
	e, mock, db := testEngine(t)

	lab := ferrytest.SeedLab(t, db, "cortexlab")
	flat := ferrytest.SeedRepository(t, db, lab, "flatiron", "flatiron-main", "/data/flatiron", false)
	desk := ferrytest.SeedRepository(t, db, lab, "desktop", "desk-01", "/home/alice/data", true)

	ds := ferrytest.SeedDataset(t, db, lab, "spikes.npy", 128)
	ferrytest.SeedFileRecord(t, db, ds, desk, "alf/spikes.npy", true)
	wanted := ferrytest.SeedFileRecord(t, db, ds, flat, "alf/spikes.npy", false)

	mock.AddFile(desk.EndpointID, "/home/alice/data/alf/spikes.npy", 128)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		fr, err := db.FileRecord.Get(context.Background(), wanted.ID)
		return err == nil && fr.Status == filerecord.StatusPending
	}, 5*time.Second, 10*time.Millisecond, "transfer pass never submitted the wanted copy")

	cancel()
	require.NoError(t, <-done)

	require.NotEmpty(t, mock.Transfers)
	assert.Equal(t, "desk-01", mock.Transfers[0].SourceEndpoint)
	assert.Equal(t, "flatiron-main", mock.Transfers[0].DestEndpoint)
}

func TestRunConfirmsArrivedCopies(t *testing.T) {
	e, mock, db := testEngine(t)
	mock.AutoApply = true

	lab := ferrytest.SeedLab(t, db, "cortexlab")
	flat := ferrytest.SeedRepository(t, db, lab, "flatiron", "flatiron-main", "/data/flatiron", false)
	desk := ferrytest.SeedRepository(t, db, lab, "desktop", "desk-01", "/home/alice/data", true)

	ds := ferrytest.SeedDataset(t, db, lab, "clusters.npy", 64)
	ferrytest.SeedFileRecord(t, db, ds, desk, "alf/clusters.npy", true)
	wanted := ferrytest.SeedFileRecord(t, db, ds, flat, "alf/clusters.npy", false)

	mock.AddFile(desk.EndpointID, "/home/alice/data/alf/clusters.npy", 64)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	// One pass submits the transfer, AutoApply lands the file, and a
	// later pass confirms it by listing.
	require.Eventually(t, func() bool {
		fr, err := db.FileRecord.Get(context.Background(), wanted.ID)
		return err == nil && fr.Exists && fr.Status == filerecord.StatusNone
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestActivityBridgeMirrorsBusEvents(t *testing.T) {
	e, _, db := testEngine(t)

	lab := ferrytest.SeedLab(t, db, "cortexlab")
	ds := ferrytest.SeedDataset(t, db, lab, "probe.description.json", 12)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	e.bus.Publish(events.Event{
		Type:    events.DatasetRegistered,
		Subject: ds,
		Data:    map[string]any{"repository": "desktop"},
	})

	require.Eventually(t, func() bool {
		for _, entry := range e.activity.All() {
			if entry.Type == timeline.EntryRegistered && entry.Dataset == ds.Name {
				return entry.Repository == "desktop" && entry.DatasetID == ds.ID.String()
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestShutdownReleasesEverything(t *testing.T) {
	e, _, _ := testEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, e.Shutdown(context.Background()))
}

func TestPrepareShutdownStopsNewPasses(t *testing.T) {
	e, mock, db := testEngine(t)
	e.PrepareShutdown()

	lab := ferrytest.SeedLab(t, db, "cortexlab")
	flat := ferrytest.SeedRepository(t, db, lab, "flatiron", "flatiron-main", "/data/flatiron", false)
	desk := ferrytest.SeedRepository(t, db, lab, "desktop", "desk-01", "/home/alice/data", true)
	ds := ferrytest.SeedDataset(t, db, lab, "lfp.bin", 32)
	ferrytest.SeedFileRecord(t, db, ds, desk, "raw/lfp.bin", true)
	ferrytest.SeedFileRecord(t, db, ds, flat, "raw/lfp.bin", false)
	mock.AddFile(desk.EndpointID, "/home/alice/data/raw/lfp.bin", 32)

	e.runPass(context.Background())
	assert.Empty(t, mock.Transfers)
}

func TestNewBackendRejectsUnknownType(t *testing.T) {
	cfg := ferrytest.ValidConfig(t)
	cfg.Backend.Type = "teleport"

	_, err := NewBackend(cfg, zerolog.Nop())
	require.ErrorContains(t, err, "unknown backend type")
}

func TestOpenStoreMigrates(t *testing.T) {
	cfg := ferrytest.ValidConfig(t)

	db, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	// Schema exists after migration.
	n, err := db.Dataset.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEntryTypeMapping(t *testing.T) {
	assert.Equal(t, timeline.EntryConfirmed, entryType(events.RecordConfirmed))
	assert.Equal(t, timeline.EntryPurged, entryType(events.DatasetPurged))
	assert.Equal(t, timeline.EntryPassCompleted, entryType(events.PassCompleted))
	assert.Equal(t, timeline.EntryError, entryType(events.Type("no.such.event")))
}
