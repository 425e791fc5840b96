package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/backend"
)

// localPair builds a client over two plain-path endpoints backed by temp
// directories, modelling two node-local repositories.
func localPair(t *testing.T) (backend.Client, string, string) {
	t.Helper()

	srcDir := t.TempDir()
	dstDir := t.TempDir()

	client := backend.NewRclone(map[string]string{
		"desk-01":       srcDir,
		"flatiron-main": dstDir,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client, srcDir, dstDir
}

func writeFile(t *testing.T, dir, rel string, content []byte) {
	t.Helper()
	p := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, content, 0o600))
}

func TestRcloneListDirectory(t *testing.T) {
	client, srcDir, _ := localPair(t)
	ctx := context.Background()

	writeFile(t, srcDir, "alf/spikes.npy", []byte("0123456789"))
	writeFile(t, srcDir, "alf/clusters.npy", []byte("abc"))
	writeFile(t, srcDir, "alf/probe00/lfp.bin", []byte("x"))

	entries, err := client.ListDirectory(ctx, "desk-01", "/alf")
	require.NoError(t, err)

	byName := map[string]backend.Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	require.Len(t, byName, 3)
	assert.Equal(t, int64(10), byName["spikes.npy"].Size)
	assert.Equal(t, int64(3), byName["clusters.npy"].Size)
	assert.True(t, byName["probe00"].IsDir)
}

func TestRcloneListDirectoryNotFound(t *testing.T) {
	client, _, _ := localPair(t)

	_, err := client.ListDirectory(context.Background(), "desk-01", "/no/such/dir")
	require.ErrorIs(t, err, backend.ErrNotFound)
}

func TestRcloneUnknownEndpoint(t *testing.T) {
	client, _, _ := localPair(t)

	_, err := client.ListDirectory(context.Background(), "ghost", "/")
	require.ErrorIs(t, err, backend.ErrUnknownEndpoint)

	_, err = client.EndpointStatus(context.Background(), "ghost")
	require.ErrorIs(t, err, backend.ErrUnknownEndpoint)
}

func TestRcloneSubmitTransfer(t *testing.T) {
	client, srcDir, dstDir := localPair(t)
	ctx := context.Background()

	content := []byte("spike times payload")
	writeFile(t, srcDir, "alf/spikes.npy", content)

	jobID, err := client.SubmitTransfer(ctx, "desk-01", "flatiron-main", []backend.TransferPair{
		{SourcePath: "/alf/spikes.npy", DestPath: "/cortexlab/alf/spikes.deadbeef.npy"},
	}, "desktop to flatiron")
	require.NoError(t, err)
	assert.NotEmpty(t, jobID)

	got, err := os.ReadFile(filepath.Join(dstDir, "cortexlab/alf/spikes.deadbeef.npy"))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestRcloneSubmitTransferMissingSource(t *testing.T) {
	client, srcDir, _ := localPair(t)
	ctx := context.Background()

	writeFile(t, srcDir, "alf/present.npy", []byte("ok"))

	_, err := client.SubmitTransfer(ctx, "desk-01", "flatiron-main", []backend.TransferPair{
		{SourcePath: "/alf/absent.npy", DestPath: "/alf/absent.npy"},
		{SourcePath: "/alf/present.npy", DestPath: "/alf/present.npy"},
	}, "desktop to flatiron")
	require.ErrorIs(t, err, backend.ErrNotFound)

	// The remaining pairs of the batch still went through.
	entries, listErr := client.ListDirectory(ctx, "flatiron-main", "/alf")
	require.NoError(t, listErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "present.npy", entries[0].Name)
}

func TestRcloneSubmitDelete(t *testing.T) {
	client, srcDir, _ := localPair(t)
	ctx := context.Background()

	writeFile(t, srcDir, "alf/spikes.npy", []byte("a"))
	writeFile(t, srcDir, "alf/clusters.npy", []byte("b"))

	jobID, err := client.SubmitDelete(ctx, "desk-01", []string{
		"/alf/spikes.npy",
		"/alf/already-gone.npy", // absent paths are not an error
	})
	require.NoError(t, err)
	assert.NotEmpty(t, jobID)

	_, err = os.Stat(filepath.Join(srcDir, "alf/spikes.npy"))
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(srcDir, "alf/clusters.npy"))
	require.NoError(t, err)
}

func TestRcloneEndpointStatusLocal(t *testing.T) {
	client, _, _ := localPair(t)

	status, err := client.EndpointStatus(context.Background(), "desk-01")
	require.NoError(t, err)
	assert.Nil(t, status.Connected, "plain-path remotes have no connectivity to probe")
	assert.True(t, status.Reachable())
}
