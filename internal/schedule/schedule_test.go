package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/paths"
	"github.com/dataferry/dataferry/internal/schedule"
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

// seedUploadable creates a dataset confirmed on the personal repository and
// wanted on the authoritative one. Returns the authoritative record.
func (f *fixture) seedUploadable(t *testing.T, name string, size int64) *generated.FileRecord {
	t.Helper()

	ds := internaltesting.SeedDataset(t, f.db, f.lab, name, size)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/"+name, true)
	return internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/"+name, false)
}

func TestRunBatchesByRepositoryPair(t *testing.T) {
	f := newFixture(t)
	f.seedUploadable(t, "a.npy", 10)
	f.seedUploadable(t, "b.npy", 20)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{})
	require.NoError(t, err)

	require.Len(t, plan.Jobs, 1)
	job := plan.Jobs[0]
	assert.Equal(t, "desktop to flatiron", job.Label)
	assert.Equal(t, schedule.ClassSmall, job.Class)
	assert.Len(t, job.Transfers, 2)
	assert.NotEmpty(t, job.SubmittedID)

	require.Len(t, f.mock.Transfers, 1)
	assert.Equal(t, "desk-01", f.mock.Transfers[0].SourceEndpoint)
	assert.Equal(t, "flatiron-main", f.mock.Transfers[0].DestEndpoint)
	assert.Equal(t, "desktop to flatiron", f.mock.Transfers[0].Label)
}

func TestRunNeverTargetsPersonalRepositories(t *testing.T) {
	f := newFixture(t)
	// Confirmed on the authoritative side, absent on the personal one.
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "download.npy", 10)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/download.npy", true)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/download.npy", false)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Jobs)
	assert.Empty(t, f.mock.Transfers)
}

func TestRunSplitsSizeClasses(t *testing.T) {
	f := newFixture(t)
	f.seedUploadable(t, "small.npy", 100)
	f.seedUploadable(t, "huge.cbin", 5<<30)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{})
	require.NoError(t, err)

	require.Len(t, plan.Jobs, 2)
	classes := map[schedule.SizeClass]int{}
	for _, job := range plan.Jobs {
		classes[job.Class] += len(job.Transfers)
	}
	assert.Equal(t, 1, classes[schedule.ClassSmall])
	assert.Equal(t, 1, classes[schedule.ClassLarge])
	assert.Len(t, f.mock.Transfers, 2)
}

func TestRunThresholdBoundary(t *testing.T) {
	f := newFixture(t)
	f.seedUploadable(t, "exact.bin", 1000)

	plan, err := schedule.New(f.db, f.mock, schedule.WithLargeFileThreshold(1000)).
		Run(context.Background(), schedule.Options{DryRun: true})
	require.NoError(t, err)

	require.Len(t, plan.Jobs, 1)
	assert.Equal(t, schedule.ClassLarge, plan.Jobs[0].Class)
}

func TestRunResolvesPaths(t *testing.T) {
	f := newFixture(t)
	rec := f.seedUploadable(t, "ephys.bin", 10)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{})
	require.NoError(t, err)

	require.Len(t, plan.Jobs, 1)
	require.Len(t, plan.Jobs[0].Transfers, 1)
	tr := plan.Jobs[0].Transfers[0]

	// The personal source keeps the bare name, the authoritative
	// destination gets the id embedded.
	assert.Equal(t, "/home/alice/data/alf/ephys.bin", tr.Pair.SourcePath)
	assert.Equal(t, paths.Resolve("/data/flatiron", "alf/ephys.bin", rec.DatasetID, true), tr.Pair.DestPath)
}

func TestRunMarksPendingAndIsIdempotent(t *testing.T) {
	f := newFixture(t)
	rec := f.seedUploadable(t, "trials.pqt", 10)

	sched := schedule.New(f.db, f.mock)
	_, err := sched.Run(context.Background(), schedule.Options{})
	require.NoError(t, err)

	got := f.db.FileRecord.GetX(context.Background(), rec.ID)
	assert.Equal(t, filerecord.StatusPending, got.Status)

	// A second pass before reconciliation finds nothing left to schedule.
	plan, err := sched.Run(context.Background(), schedule.Options{})
	require.NoError(t, err)
	assert.Empty(t, plan.Jobs)
	assert.Len(t, f.mock.Transfers, 1)
}

func TestRunPrefersAuthoritativeSource(t *testing.T) {
	f := newFixture(t)
	archive := internaltesting.SeedRepository(t, f.db, f.lab, "archive", "archive-01", "/data/archive", false)

	ds := internaltesting.SeedDataset(t, f.db, f.lab, "wheel.npy", 10)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/wheel.npy", true)
	internaltesting.SeedFileRecord(t, f.db, ds, archive, "alf/wheel.npy", true)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/wheel.npy", false)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{DryRun: true})
	require.NoError(t, err)

	require.Len(t, plan.Jobs, 1)
	assert.Equal(t, "archive", plan.Jobs[0].Source)
}

func TestRunMarksSourcelessMissing(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "orphan.npy", 10)
	rec := internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/orphan.npy", false)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{})
	require.NoError(t, err)

	assert.Contains(t, plan.Sourceless, "orphan.npy")
	assert.Empty(t, plan.Jobs)
	got := f.db.FileRecord.GetX(context.Background(), rec.ID)
	assert.Equal(t, filerecord.StatusMissing, got.Status)

	// Missing records are excluded from later passes until an operator
	// intervenes.
	plan, err = schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{})
	require.NoError(t, err)
	assert.Empty(t, plan.Sourceless)
}

func TestRunIncludeMismatched(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "probe.cbin", 10)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "raw/probe.cbin", true)
	rec := internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "raw/probe.cbin", true)
	require.NoError(t, f.db.FileRecord.UpdateOne(rec).
		SetStatus(filerecord.StatusMismatch).
		Exec(context.Background()))

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{DryRun: true})
	require.NoError(t, err)
	assert.Empty(t, plan.Jobs)

	plan, err = schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{IncludeMismatched: true})
	require.NoError(t, err)
	require.Len(t, plan.Jobs, 1)
	assert.Equal(t, filerecord.StatusPending, f.db.FileRecord.GetX(context.Background(), rec.ID).Status)
}

func TestRunDryRunMutatesNothing(t *testing.T) {
	f := newFixture(t)
	rec := f.seedUploadable(t, "camera.mp4", 10)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{DryRun: true})
	require.NoError(t, err)

	assert.False(t, plan.Committed)
	require.Len(t, plan.Jobs, 1)
	assert.Empty(t, plan.Jobs[0].SubmittedID)
	assert.Empty(t, f.mock.Transfers)

	got := f.db.FileRecord.GetX(context.Background(), rec.ID)
	assert.Equal(t, filerecord.StatusNone, got.Status)
}

func TestRunDefersUnreachableEndpoints(t *testing.T) {
	f := newFixture(t)
	rec := f.seedUploadable(t, "lick.npy", 10)
	f.mock.SetOffline("flatiron-main", true)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{})
	require.NoError(t, err)

	assert.Contains(t, plan.SkippedEndpoints, "flatiron-main")
	assert.Empty(t, f.mock.Transfers)
	// Deferred, not failed: the record stays eligible for the next pass.
	got := f.db.FileRecord.GetX(context.Background(), rec.ID)
	assert.Equal(t, filerecord.StatusNone, got.Status)
}

func TestRunLabScope(t *testing.T) {
	f := newFixture(t)
	otherLab := internaltesting.SeedLab(t, f.db, "hippolab")
	otherAuth := internaltesting.SeedRepository(t, f.db, otherLab, "archive", "archive-01", "/data/archive", false)
	otherDesk := internaltesting.SeedRepository(t, f.db, otherLab, "bench", "bench-01", "/home/bob/data", true)

	f.seedUploadable(t, "mine.npy", 10)
	theirs := internaltesting.SeedDataset(t, f.db, otherLab, "theirs.npy", 10)
	internaltesting.SeedFileRecord(t, f.db, theirs, otherDesk, "alf/theirs.npy", true)
	internaltesting.SeedFileRecord(t, f.db, theirs, otherAuth, "alf/theirs.npy", false)

	plan, err := schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{Lab: "cortexlab", DryRun: true})
	require.NoError(t, err)

	require.Len(t, plan.Jobs, 1)
	assert.Equal(t, "desktop to flatiron", plan.Jobs[0].Label)

	_, err = schedule.New(f.db, f.mock).Run(context.Background(), schedule.Options{Lab: "nosuchlab"})
	require.ErrorContains(t, err, "unknown lab")
}
