//go:build e2e

package e2e_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/apitypes"
	"github.com/dataferry/dataferry/internal/e2e"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/paths"
	"github.com/dataferry/dataferry/internal/retire"
)

func recordID(t *testing.T, resp apitypes.RegisterResponse, repo string) ulid.ULID {
	t.Helper()
	for _, rec := range resp.Records {
		if rec.Repository == repo {
			return ulid.MustParse(rec.ID)
		}
	}
	t.Fatalf("no record for repository %s in registration response", repo)
	return ulid.ULID{}
}

// TestE2E_ReplicationLifecycle tests the complete dataset lifecycle:
// 1. A rig announces a dataset from its personal repository.
// 2. The engine loop schedules a transfer to the archive.
// 3. A later pass confirms the arrived copy by listing.
// 4. The verified local copy is retired.
func TestE2E_ReplicationLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := e2e.DefaultConfig()
	h := e2e.NewHarness(t, cfg)
	h.Start(ctx, cfg)
	defer h.Stop()

	resp := h.Register("spikes.npy", "alf/spikes.npy", 100)
	require.Len(t, resp.Records, 2)

	flatRecID := recordID(t, resp, h.Flat.Name)
	deskRecID := recordID(t, resp, h.Desk.Name)

	// The engine loop transfers the copy to the archive and confirms it
	// by listing.
	flatRec := h.WaitForRecord(flatRecID, func(fr *generated.FileRecord) bool {
		return fr.Exists && fr.Status == filerecord.StatusNone
	})
	assert.Equal(t, "alf/spikes.npy", flatRec.RelativePath)

	// The archived copy landed under the embedded filename.
	dsID := flatRec.DatasetID
	archived := paths.Resolve(h.Flat.RootPath, flatRec.RelativePath, dsID, true)
	assert.True(t, h.Backend.HasFile(h.Flat.EndpointID, archived))

	// With the archive verified, the local copy can be retired.
	datasets, err := retire.ResolveDatasets(ctx, h.DB, []string{"spikes.npy"})
	require.NoError(t, err)

	plan, err := h.Engine.Deleter().RetireLocal(ctx, datasets, retire.Options{})
	require.NoError(t, err)
	assert.Empty(t, plan.Skips)
	assert.Equal(t, 1, plan.RowsDeleted)

	localCopy := paths.Resolve(h.Desk.RootPath, "alf/spikes.npy", dsID, false)
	assert.False(t, h.Backend.HasFile(h.Desk.EndpointID, localCopy), "local copy deleted")
	assert.True(t, h.Backend.HasFile(h.Flat.EndpointID, archived), "archive untouched")

	_, err = h.DB.FileRecord.Get(ctx, deskRecID)
	require.True(t, generated.IsNotFound(err), "desktop record removed")

	// The persisted event trail tells the same story.
	events := h.GetEventsForDataset(dsID.String())
	h.AssertEventTypes(events, "dataset.registered", "record.confirmed", "record.retired")
}

// TestE2E_ReregistrationTriggersRetransfer announces the same dataset
// twice with a changed size and expects the archive copy to be reset and
// replicated again.
func TestE2E_ReregistrationTriggersRetransfer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := e2e.DefaultConfig()
	h := e2e.NewHarness(t, cfg)
	h.Start(ctx, cfg)
	defer h.Stop()

	resp := h.Register("clusters.npy", "alf/clusters.npy", 40)
	flatRecID := recordID(t, resp, h.Flat.Name)

	h.WaitForRecord(flatRecID, func(fr *generated.FileRecord) bool {
		return fr.Exists
	})

	// The rig overwrites the file and announces it again with a new size.
	h.Backend.AddFile(h.Desk.EndpointID, h.Desk.RootPath+"/alf/clusters.npy", 56)
	h.Register("clusters.npy", "alf/clusters.npy", 56)

	h.WaitForRecord(flatRecID, func(fr *generated.FileRecord) bool {
		return fr.Exists && fr.Status == filerecord.StatusNone
	})

	ds, err := h.DB.Dataset.Query().Where(dataset.Name("clusters.npy")).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, ds.FileSize)
	assert.Equal(t, int64(56), *ds.FileSize)
}

// TestE2E_PurgeRemovesEveryCopy replicates a dataset and then purges it,
// expecting both physical copies and every row to be gone.
func TestE2E_PurgeRemovesEveryCopy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := e2e.DefaultConfig()
	h := e2e.NewHarness(t, cfg)
	h.Start(ctx, cfg)
	defer h.Stop()

	resp := h.Register("lfp.bin", "raw/lfp.bin", 2048)
	flatRecID := recordID(t, resp, h.Flat.Name)

	h.WaitForRecord(flatRecID, func(fr *generated.FileRecord) bool {
		return fr.Exists
	})

	// Stop the loop so a pass does not run mid-purge.
	h.Engine.PrepareShutdown()

	datasets, err := retire.ResolveDatasets(ctx, h.DB, []string{"lfp.bin"})
	require.NoError(t, err)

	plan, err := h.Engine.Deleter().Purge(ctx, datasets, retire.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, plan.RowsDeleted)
	assert.Equal(t, 1, plan.DatasetsDeleted)

	n, err := h.DB.Dataset.Query().Where(dataset.Name("lfp.bin")).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	dsID := datasets[0].ID
	assert.False(t, h.Backend.HasFile(h.Flat.EndpointID, paths.Resolve(h.Flat.RootPath, "raw/lfp.bin", dsID, true)))
	assert.False(t, h.Backend.HasFile(h.Desk.EndpointID, paths.Resolve(h.Desk.RootPath, "raw/lfp.bin", dsID, false)))
}
