package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/events"
	"github.com/dataferry/dataferry/internal/paths"
	"github.com/dataferry/dataferry/internal/reconcile"
	internaltesting "github.com/dataferry/dataferry/internal/testing"
)

type fixture struct {
	db   *generated.Client
	mock *internaltesting.MockBackend
	lab  *generated.Lab
	flat *generated.Repository
	desk *generated.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := internaltesting.NewTestDB(t)
	lab := internaltesting.SeedLab(t, db, "cortexlab")
	return &fixture{
		db:   db,
		mock: internaltesting.NewMockBackend(),
		lab:  lab,
		flat: internaltesting.SeedRepository(t, db, lab, "flatiron", "flatiron-main", "/data/flatiron", false),
		desk: internaltesting.SeedRepository(t, db, lab, "desktop", "desk-01", "/home/alice/data", true),
	}
}

func setStatus(t *testing.T, db *generated.Client, fr *generated.FileRecord, s filerecord.Status) {
	t.Helper()
	require.NoError(t, db.FileRecord.UpdateOne(fr).SetStatus(s).Exec(context.Background()))
}

func TestRunConfirmsEmbeddedFilename(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "ephys.bin", 100)
	fr := internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "raw/ephys.bin", false)
	setStatus(t, f.db, fr, filerecord.StatusPending)

	// Authoritative repositories store the file under its id-embedded name.
	f.mock.AddFile("flatiron-main", paths.Resolve("/data/flatiron", "raw/ephys.bin", ds.ID, true), 4096)

	rec := reconcile.New(f.db, f.mock)
	report, err := rec.Run(context.Background(), reconcile.Options{})
	require.NoError(t, err)

	assert.True(t, report.Committed)
	assert.Equal(t, 1, report.Confirmed)

	got := f.db.FileRecord.GetX(context.Background(), fr.ID)
	assert.True(t, got.Exists)
	assert.Equal(t, filerecord.StatusNone, got.Status)

	// The declared size differed from the observed size and was corrected.
	assert.Equal(t, 1, report.SizesCorrected)
	gotDS := f.db.Dataset.GetX(context.Background(), ds.ID)
	require.NotNil(t, gotDS.FileSize)
	assert.Equal(t, int64(4096), *gotDS.FileSize)
}

func TestRunConfirmsBareFilenameOnPersonal(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "spikes.npy", 512)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "raw/spikes.npy", false)
	fr := internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "raw/spikes.npy", false)

	f.mock.AddFile("desk-01", "/home/alice/data/raw/spikes.npy", 512)

	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Confirmed)
	assert.True(t, f.db.FileRecord.GetX(context.Background(), fr.ID).Exists)
}

func TestRunIgnoresEmptyFiles(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "empty.npy", 0)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "raw/empty.npy", false)
	fr := internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "raw/empty.npy", false)

	// A zero-byte entry is an interrupted write, not an existing copy.
	f.mock.AddFile("desk-01", "/home/alice/data/raw/empty.npy", 0)

	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{})
	require.NoError(t, err)

	assert.Zero(t, report.Confirmed)
	assert.False(t, f.db.FileRecord.GetX(context.Background(), fr.ID).Exists)
}

func TestRunMarksVanishedPersonalCopy(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "trials.pqt", 256)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/trials.pqt", false)
	fr := internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/trials.pqt", true)

	// The directory exists but no longer contains the file.
	f.mock.AddDir("desk-01", "/home/alice/data/alf")

	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Vanished)
	assert.False(t, f.db.FileRecord.GetX(context.Background(), fr.ID).Exists)
}

func TestRunSkipsUnreachableEndpoint(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "wheel.npy", 64)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/wheel.npy", false)
	fr := internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/wheel.npy", true)

	f.mock.SetOffline("desk-01", true)

	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{})
	require.NoError(t, err)

	assert.Contains(t, report.SkippedEndpoints, "desk-01")
	assert.Zero(t, report.Vanished)
	// Absence of a listing is not evidence of absence.
	assert.True(t, f.db.FileRecord.GetX(context.Background(), fr.ID).Exists)
	assert.Zero(t, f.mock.ListCalls("desk-01", "/home/alice/data/alf"))
}

func TestRunListsSharedDirectoryOnce(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"a.npy", "b.npy", "c.npy"} {
		ds := internaltesting.SeedDataset(t, f.db, f.lab, name, 10)
		internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/"+name, false)
		internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/"+name, false)
		f.mock.AddFile("desk-01", "/home/alice/data/alf/"+name, 10)
	}

	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Confirmed)
	assert.Equal(t, 1, f.mock.ListCalls("desk-01", "/home/alice/data/alf"))
}

func TestRunDryRunMutatesNothing(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "lick.npy", 32)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/lick.npy", false)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/lick.npy", false)
	f.mock.AddFile("desk-01", "/home/alice/data/alf/lick.npy", 32)

	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{DryRun: true})
	require.NoError(t, err)

	assert.False(t, report.Committed)
	assert.Len(t, report.Candidates, 1)
	assert.Zero(t, report.Confirmed)
	// Dry runs never touch the backend.
	assert.Zero(t, f.mock.ListCalls("desk-01", "/home/alice/data/alf"))

	count := f.db.FileRecord.Query().Where(filerecord.Exists(true)).CountX(context.Background())
	assert.Zero(t, count)
}

func TestRunUnknownLab(t *testing.T) {
	f := newFixture(t)

	_, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{Lab: "nosuchlab"})
	require.ErrorContains(t, err, "unknown lab")
}

func TestRunLabScope(t *testing.T) {
	f := newFixture(t)
	otherLab := internaltesting.SeedLab(t, f.db, "hippolab")
	otherRepo := internaltesting.SeedRepository(t, f.db, otherLab, "archive", "archive-01", "/data/archive", false)

	mine := internaltesting.SeedDataset(t, f.db, f.lab, "mine.npy", 10)
	mineRec := internaltesting.SeedFileRecord(t, f.db, mine, f.flat, "alf/mine.npy", false)
	setStatus(t, f.db, mineRec, filerecord.StatusPending)
	theirs := internaltesting.SeedDataset(t, f.db, otherLab, "theirs.npy", 10)
	theirsRec := internaltesting.SeedFileRecord(t, f.db, theirs, otherRepo, "alf/theirs.npy", false)
	setStatus(t, f.db, theirsRec, filerecord.StatusPending)

	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{Lab: "cortexlab", DryRun: true})
	require.NoError(t, err)

	require.Len(t, report.Candidates, 1)
	assert.Equal(t, "mine.npy", report.Candidates[0].Dataset)
}

func TestRunIncludeMismatched(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "probe.cbin", 999)
	fr := internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "raw/probe.cbin", false)
	setStatus(t, f.db, fr, filerecord.StatusMismatch)

	f.mock.AddFile("flatiron-main", paths.Resolve("/data/flatiron", "raw/probe.cbin", ds.ID, true), 999)

	// Default pass leaves mismatch-flagged records alone.
	report, err := reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{DryRun: true})
	require.NoError(t, err)
	assert.Empty(t, report.Candidates)

	report, err = reconcile.New(f.db, f.mock).Run(context.Background(), reconcile.Options{IncludeMismatched: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Confirmed)
	assert.Equal(t, filerecord.StatusNone, f.db.FileRecord.GetX(context.Background(), fr.ID).Status)
}

func TestRunPublishesEvents(t *testing.T) {
	f := newFixture(t)
	bus := events.New()
	defer bus.Close()
	sub := bus.Subscribe(events.RecordConfirmed)

	ds := internaltesting.SeedDataset(t, f.db, f.lab, "camera.mp4", 100)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "raw/camera.mp4", false)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "raw/camera.mp4", false)
	f.mock.AddFile("desk-01", "/home/alice/data/raw/camera.mp4", 100)

	_, err := reconcile.New(f.db, f.mock, reconcile.WithBus(bus)).Run(context.Background(), reconcile.Options{})
	require.NoError(t, err)

	select {
	case ev := <-sub:
		assert.Equal(t, events.RecordConfirmed, ev.Type)
	default:
		t.Fatal("expected a confirmation event")
	}
}
