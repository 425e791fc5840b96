//go:build integration

package backend_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/backend"
	testutil "github.com/dataferry/dataferry/internal/testing"
)

// testSSHContainer is a shared SSH container for all tests in this file.
var (
	testSSHContainer     *testutil.SSHContainer
	testSSHContainerOnce sync.Once
	testSSHContainerErr  error
)

// getTestSSHContainer returns the shared SSH container, starting it if necessary.
// The container is shared across all tests to reduce startup time.
func getTestSSHContainer(t *testing.T) *testutil.SSHContainer {
	t.Helper()

	testSSHContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		cfg := testutil.DefaultSSHContainerConfig()
		testSSHContainer, testSSHContainerErr = testutil.StartSSHContainer(ctx, cfg)

		if testSSHContainerErr == nil {
			// Wait for SSH to be ready
			testSSHContainerErr = testSSHContainer.WaitForSSH(ctx, 30*time.Second)
		}
	})

	if testSSHContainerErr != nil {
		t.Skipf("SSH container not available: %v", testSSHContainerErr)
	}

	return testSSHContainer
}

// TestMain handles cleanup of the shared container.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared container
	if testSSHContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_ = testSSHContainer.Cleanup(ctx)
		cancel()
	}

	os.Exit(code)
}

// sftpRemote builds the connection string for the test container.
func sftpRemote(c *testutil.SSHContainer) string {
	return fmt.Sprintf(":sftp,host=%s,port=%d,user=%s,key_file=%s:%s",
		c.Host, c.Port, c.User, c.PrivateKey, c.RemoteDir)
}

// sftpClient builds a client with one sftp endpoint for the container and
// one local endpoint for a temp directory.
func sftpClient(t *testing.T, c *testutil.SSHContainer) (backend.Client, string) {
	t.Helper()

	localDir := t.TempDir()
	client := backend.NewRclone(map[string]string{
		"flatiron-main": sftpRemote(c),
		"desk-01":       localDir,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client, localDir
}

func TestRcloneIntegration_SFTPListDirectory(t *testing.T) {
	container := getTestSSHContainer(t)
	ctx := context.Background()

	require.NoError(t, container.CreateTestFile(ctx, "listing/spikes.npy", []byte("0123456789")))
	require.NoError(t, container.CreateTestFile(ctx, "listing/clusters.npy", []byte("abc")))

	client, _ := sftpClient(t, container)

	entries, err := client.ListDirectory(ctx, "flatiron-main", "/listing")
	require.NoError(t, err)

	byName := map[string]int64{}
	for _, e := range entries {
		byName[e.Name] = e.Size
	}
	assert.Equal(t, int64(10), byName["spikes.npy"])
	assert.Equal(t, int64(3), byName["clusters.npy"])
}

func TestRcloneIntegration_SFTPListMissingDirectory(t *testing.T) {
	container := getTestSSHContainer(t)
	client, _ := sftpClient(t, container)

	_, err := client.ListDirectory(context.Background(), "flatiron-main", "/never-created")
	require.ErrorIs(t, err, backend.ErrNotFound)
}

func TestRcloneIntegration_TransferLocalToSFTP(t *testing.T) {
	container := getTestSSHContainer(t)
	ctx := context.Background()

	client, localDir := sftpClient(t, container)

	content := []byte("payload headed for the archive")
	require.NoError(t, os.MkdirAll(localDir+"/alf", 0o755))
	require.NoError(t, os.WriteFile(localDir+"/alf/spikes.npy", content, 0o600))

	jobID, err := client.SubmitTransfer(ctx, "desk-01", "flatiron-main", []backend.TransferPair{
		{SourcePath: "/alf/spikes.npy", DestPath: "/upload/alf/spikes.npy"},
	}, "desktop to flatiron")
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	entries, err := client.ListDirectory(ctx, "flatiron-main", "/upload/alf")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "spikes.npy", entries[0].Name)
	assert.Equal(t, int64(len(content)), entries[0].Size)
}

func TestRcloneIntegration_DeleteOnSFTP(t *testing.T) {
	container := getTestSSHContainer(t)
	ctx := context.Background()

	require.NoError(t, container.CreateTestFile(ctx, "retire/old.npy", []byte("stale")))
	require.NoError(t, container.CreateTestFile(ctx, "retire/keep.npy", []byte("fresh")))

	client, _ := sftpClient(t, container)

	_, err := client.SubmitDelete(ctx, "flatiron-main", []string{
		"/retire/old.npy",
		"/retire/already-gone.npy",
	})
	require.NoError(t, err)

	entries, err := client.ListDirectory(ctx, "flatiron-main", "/retire")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep.npy", entries[0].Name)
}

func TestRcloneIntegration_EndpointStatus(t *testing.T) {
	container := getTestSSHContainer(t)
	ctx := context.Background()

	client, _ := sftpClient(t, container)

	status, err := client.EndpointStatus(ctx, "flatiron-main")
	require.NoError(t, err)
	require.NotNil(t, status.Connected)
	assert.True(t, *status.Connected)
	assert.True(t, status.Reachable())
}

func TestRcloneIntegration_EndpointStatusUnreachable(t *testing.T) {
	container := getTestSSHContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := backend.NewRclone(map[string]string{
		"offline-rig": fmt.Sprintf(":sftp,host=127.0.0.1,port=1,user=%s,key_file=%s:/data",
			container.User, container.PrivateKey),
	})
	t.Cleanup(func() { _ = client.Close() })

	status, err := client.EndpointStatus(ctx, "offline-rig")
	require.NoError(t, err)
	require.NotNil(t, status.Connected)
	assert.False(t, *status.Connected)
	assert.False(t, status.Reachable())
}
