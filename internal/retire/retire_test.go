package retire_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/paths"
	"github.com/dataferry/dataferry/internal/retire"
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

// seedReplicated creates a dataset confirmed on both repositories, with the
// physical files present on the mock at the given sizes.
func (f *fixture) seedReplicated(t *testing.T, name string, recorded, remote, local int64) *generated.Dataset {
	t.Helper()

	ds := internaltesting.SeedDataset(t, f.db, f.lab, name, recorded)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/"+name, true)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/"+name, true)
	f.mock.AddFile("flatiron-main", paths.Resolve("/data/flatiron", "alf/"+name, ds.ID, true), remote)
	f.mock.AddFile("desk-01", "/home/alice/data/alf/"+name, local)
	return ds
}

// seedBareArchived is seedReplicated with the authoritative file stored
// under its bare name, as happens when it reached the endpoint out of band
// instead of through a transfer job.
func (f *fixture) seedBareArchived(t *testing.T, name string, size int64) *generated.Dataset {
	t.Helper()

	ds := internaltesting.SeedDataset(t, f.db, f.lab, name, size)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/"+name, true)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/"+name, true)
	f.mock.AddFile("flatiron-main", "/data/flatiron/alf/"+name, size)
	f.mock.AddFile("desk-01", "/home/alice/data/alf/"+name, size)
	return ds
}

func (f *fixture) recordCount(t *testing.T) int {
	t.Helper()
	return f.db.FileRecord.Query().CountX(context.Background())
}

func TestRetireLocalDeletesVerifiedCopy(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "trials.pqt", 200, 200, 200)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.True(t, plan.Committed)
	assert.Empty(t, plan.Skips)
	require.Len(t, plan.Deletions, 1)
	assert.Equal(t, "desk-01", plan.Deletions[0].Endpoint)
	assert.Equal(t, []string{"/home/alice/data/alf/trials.pqt"}, plan.Deletions[0].Paths)
	assert.NotEmpty(t, plan.Deletions[0].JobID)
	assert.Equal(t, 1, plan.RowsDeleted)

	// The authoritative record survives, the personal one is gone.
	assert.Equal(t, 1, f.recordCount(t))
	require.Len(t, f.mock.Deletes, 1)
	assert.Equal(t, "desk-01", f.mock.Deletes[0].Endpoint)
}

func TestRetireLocalRefusesStaleAuthoritativeSize(t *testing.T) {
	f := newFixture(t)
	// Recorded 200 but the remote copy was later patched down to 150.
	ds := f.seedReplicated(t, "ephys.bin", 200, 150, 200)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Deletions)
	require.Len(t, plan.Skips, 1)
	assert.Contains(t, plan.Skips[0].Reason, "size differs")
	assert.Empty(t, f.mock.Deletes)
	assert.Equal(t, 2, f.recordCount(t))
}

func TestRetireLocalRefusesLocalSizeMismatch(t *testing.T) {
	f := newFixture(t)
	// The local copy is mid-overwrite: remote matches the record, local does not.
	ds := f.seedReplicated(t, "wheel.npy", 200, 200, 64)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Deletions)
	require.Len(t, plan.Skips, 1)
	assert.Empty(t, f.mock.Deletes)
}

func TestRetireLocalSkipsGonePersonalCopy(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "spikes.npy", 100, 100, 100)
	f.mock.RemoveFile("desk-01", "/home/alice/data/alf/spikes.npy")

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Deletions)
	require.Len(t, plan.Skips, 1)
	assert.Contains(t, plan.Skips[0].Reason, "already gone")
	// The row stays; the next reconciliation pass will mark it vanished.
	assert.Equal(t, 2, f.recordCount(t))
}

func TestRetireLocalSkipsWithoutAuthoritativeCopy(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "orphan.npy", 50)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/orphan.npy", true)
	f.mock.AddFile("desk-01", "/home/alice/data/alf/orphan.npy", 50)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Deletions)
	require.Len(t, plan.Skips, 1)
	assert.Contains(t, plan.Skips[0].Reason, "no confirmed authoritative copy")
}

func TestRetireLocalDryRun(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "camera.mp4", 100, 100, 100)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{DryRun: true})
	require.NoError(t, err)

	assert.False(t, plan.Committed)
	assert.Empty(t, plan.Skips)
	require.Len(t, plan.Deletions, 1)
	assert.Equal(t, []string{"/home/alice/data/alf/camera.mp4"}, plan.Deletions[0].Paths)
	assert.Empty(t, plan.Deletions[0].JobID)
	// The dry run verifies through listings but never submits or mutates.
	assert.NotZero(t, f.mock.ListCalls("flatiron-main", "/data/flatiron/alf"))
	assert.Empty(t, f.mock.Deletes)
	assert.Equal(t, 2, f.recordCount(t))
}

func TestRetireLocalDryRunMatchesLiveSkips(t *testing.T) {
	f := newFixture(t)
	// Recorded 200 but the remote copy is 150; a live run would refuse, so
	// the preview must refuse too rather than promise a deletion.
	ds := f.seedReplicated(t, "sparse.npy", 200, 150, 200)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{DryRun: true})
	require.NoError(t, err)

	assert.Empty(t, plan.Deletions)
	require.Len(t, plan.Skips, 1)
	assert.Contains(t, plan.Skips[0].Reason, "size differs")
	assert.Empty(t, f.mock.Deletes)
	assert.Equal(t, 2, f.recordCount(t))
}

func TestRetireLocalBatchesPerEndpoint(t *testing.T) {
	f := newFixture(t)
	a := f.seedReplicated(t, "a.npy", 10, 10, 10)
	b := f.seedReplicated(t, "b.npy", 20, 20, 20)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{a, b}, retire.Options{})
	require.NoError(t, err)

	// Two files, one deletion request.
	require.Len(t, plan.Deletions, 1)
	assert.Len(t, plan.Deletions[0].Paths, 2)
	assert.Len(t, f.mock.Deletes, 1)
}

func TestRetireLocalVerifiesBareNamedArchiveCopy(t *testing.T) {
	f := newFixture(t)
	ds := f.seedBareArchived(t, "licks.npy", 120)

	plan, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	// The archive holds the file under its bare name; verification must
	// still succeed and release the personal copy.
	assert.Empty(t, plan.Skips)
	require.Len(t, plan.Deletions, 1)
	assert.Equal(t, "desk-01", plan.Deletions[0].Endpoint)
	assert.Equal(t, 1, plan.RowsDeleted)
	assert.Equal(t, 1, f.recordCount(t))
}

func TestPurgeRemovesEverything(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "trials.pqt", 100, 100, 100)

	plan, err := retire.New(f.db, f.mock).Purge(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.True(t, plan.Committed)
	assert.Len(t, plan.Deletions, 2)
	assert.Equal(t, 2, plan.RowsDeleted)
	assert.Equal(t, 1, plan.DatasetsDeleted)

	assert.Zero(t, f.recordCount(t))
	assert.Zero(t, f.db.Dataset.Query().CountX(context.Background()))
}

func TestPurgeDeletesBareNamedArchiveCopy(t *testing.T) {
	f := newFixture(t)
	f.mock.AutoApply = true
	ds := f.seedBareArchived(t, "passive.npy", 80)

	plan, err := retire.New(f.db, f.mock).Purge(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	// The deletion must target the name actually on the endpoint, not the
	// id-embedded one a transfer would have written.
	require.Len(t, plan.Deletions, 2)
	assert.Equal(t, 2, plan.RowsDeleted)
	assert.Equal(t, 1, plan.DatasetsDeleted)
	assert.False(t, f.mock.HasFile("flatiron-main", "/data/flatiron/alf/passive.npy"))
	assert.False(t, f.mock.HasFile("desk-01", "/home/alice/data/alf/passive.npy"))
	assert.Zero(t, f.recordCount(t))
}

func TestPurgeLocalOnly(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "wheel.npy", 100, 100, 100)

	plan, err := retire.New(f.db, f.mock).Purge(context.Background(), []*generated.Dataset{ds}, retire.Options{LocalOnly: true})
	require.NoError(t, err)

	require.Len(t, plan.Deletions, 1)
	assert.Equal(t, "desk-01", plan.Deletions[0].Endpoint)
	assert.Zero(t, plan.DatasetsDeleted)

	// The authoritative record and the dataset row remain.
	assert.Equal(t, 1, f.recordCount(t))
	assert.Equal(t, 1, f.db.Dataset.Query().CountX(context.Background()))
}

func TestPurgeRefusesProtected(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "canonical.npy", 100, 100, 100)
	require.NoError(t, f.db.Dataset.UpdateOneID(ds.ID).SetProtected(true).Exec(context.Background()))
	ds = f.db.Dataset.GetX(context.Background(), ds.ID)

	plan, err := retire.New(f.db, f.mock).Purge(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.Empty(t, plan.Deletions)
	require.Len(t, plan.Skips, 1)
	assert.Equal(t, "protected", plan.Skips[0].Reason)
	assert.Equal(t, 2, f.recordCount(t))

	plan, err = retire.New(f.db, f.mock).Purge(context.Background(), []*generated.Dataset{ds}, retire.Options{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 1, plan.DatasetsDeleted)
	assert.Zero(t, f.recordCount(t))
}

func TestPurgeSkipsOfflineEndpointEntirely(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "lick.npy", 100, 100, 100)
	f.mock.SetOffline("desk-01", true)

	plan, err := retire.New(f.db, f.mock).Purge(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	assert.Contains(t, plan.SkippedEndpoints, "desk-01")
	require.Len(t, plan.Deletions, 1)
	assert.Equal(t, "flatiron-main", plan.Deletions[0].Endpoint)

	// The offline endpoint's record and the dataset row both survive.
	assert.Equal(t, 1, f.recordCount(t))
	assert.Zero(t, plan.DatasetsDeleted)
	assert.Equal(t, 1, f.db.Dataset.Query().CountX(context.Background()))
}

func TestPurgeDryRun(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "raw.cbin", 100, 100, 100)

	plan, err := retire.New(f.db, f.mock).Purge(context.Background(), []*generated.Dataset{ds}, retire.Options{DryRun: true})
	require.NoError(t, err)

	assert.False(t, plan.Committed)
	assert.Len(t, plan.Deletions, 2)
	assert.Empty(t, f.mock.Deletes)
	assert.Equal(t, 2, f.recordCount(t))
	assert.Equal(t, 1, f.db.Dataset.Query().CountX(context.Background()))
}

func TestResolveDatasets(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "named.npy", 10)

	byName, err := retire.ResolveDatasets(context.Background(), f.db, []string{"named.npy"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, ds.ID, byName[0].ID)

	byID, err := retire.ResolveDatasets(context.Background(), f.db, []string{ds.ID.String()})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, ds.ID, byID[0].ID)

	// Duplicates collapse.
	both, err := retire.ResolveDatasets(context.Background(), f.db, []string{"named.npy", ds.ID.String()})
	require.NoError(t, err)
	assert.Len(t, both, 1)

	_, err = retire.ResolveDatasets(context.Background(), f.db, []string{"nosuch.npy"})
	require.ErrorContains(t, err, "unknown dataset")

	_, err = retire.ResolveDatasets(context.Background(), f.db, nil)
	require.Error(t, err)
}

func TestRetireStatusUntouchedOnSkip(t *testing.T) {
	f := newFixture(t)
	ds := f.seedReplicated(t, "immutable.npy", 200, 150, 200)

	_, err := retire.New(f.db, f.mock).RetireLocal(context.Background(), []*generated.Dataset{ds}, retire.Options{})
	require.NoError(t, err)

	for _, rec := range f.db.FileRecord.Query().AllX(context.Background()) {
		assert.True(t, rec.Exists)
		assert.Equal(t, filerecord.StatusNone, rec.Status)
	}
}
