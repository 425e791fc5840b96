// Package testing provides mock implementations for use in tests.
// This package should only be imported by test files (*_test.go).
package testing

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"sync"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite" // Required for SQLite database driver in tests (pure Go, works with CGO_ENABLED=0).
	"github.com/oklog/ulid/v2"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/enttest"
	_ "github.com/dataferry/dataferry/internal/ent/generated/runtime" // Required for schema runtime registration.
)

// NewTestDB creates an in-memory Ent database for testing.
// The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *generated.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:ent?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	// A single connection keeps the in-memory database alive for the
	// whole test; each new connection would otherwise get a fresh DB.
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(generated.Driver(drv)))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// SubmittedTransfer records one SubmitTransfer call on the mock.
type SubmittedTransfer struct {
	SourceEndpoint string
	DestEndpoint   string
	Pairs          []backend.TransferPair
	Label          string
	JobID          string
}

// SubmittedDelete records one SubmitDelete call on the mock.
type SubmittedDelete struct {
	Endpoint string
	Paths    []string
	JobID    string
}

// MockBackend is an in-memory implementation of backend.Client for testing.
// Endpoints hold a flat map of absolute file paths to sizes; directories
// exist implicitly for every file beneath them.
type MockBackend struct {
	mu      sync.RWMutex
	files   map[string]map[string]int64 // endpoint -> path -> size
	dirs    map[string]map[string]bool  // endpoint -> registered (possibly empty) dirs
	offline map[string]bool             // endpoints reporting connected=false
	local   map[string]bool             // endpoints reporting connected=nil

	Transfers []SubmittedTransfer
	Deletes   []SubmittedDelete

	// AutoApply makes SubmitTransfer materialize destination files and
	// SubmitDelete remove them, simulating a backend that completes jobs
	// immediately.
	AutoApply bool

	listCalls map[string]int

	// Hooks for custom behavior
	OnList           func(endpointID, dir string) ([]backend.Entry, error)
	OnSubmitTransfer func(srcEndpoint, dstEndpoint string, pairs []backend.TransferPair, label string) (string, error)
	OnSubmitDelete   func(endpointID string, paths []string) (string, error)
}

// NewMockBackend creates a new mock storage backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		files:     make(map[string]map[string]int64),
		dirs:      make(map[string]map[string]bool),
		offline:   make(map[string]bool),
		local:     make(map[string]bool),
		listCalls: make(map[string]int),
	}
}

// AddFile places a file on an endpoint. Parent directories exist implicitly.
func (m *MockBackend) AddFile(endpointID, p string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addFileLocked(endpointID, p, size)
}

func (m *MockBackend) addFileLocked(endpointID, p string, size int64) {
	if m.files[endpointID] == nil {
		m.files[endpointID] = make(map[string]int64)
	}
	m.files[endpointID][path.Clean(p)] = size

	if m.dirs[endpointID] == nil {
		m.dirs[endpointID] = make(map[string]bool)
	}
	for dir := path.Dir(path.Clean(p)); ; dir = path.Dir(dir) {
		m.dirs[endpointID][dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

// AddDir registers an empty directory on an endpoint.
func (m *MockBackend) AddDir(endpointID, dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dirs[endpointID] == nil {
		m.dirs[endpointID] = make(map[string]bool)
	}
	m.dirs[endpointID][path.Clean(dir)] = true
}

// RemoveFile removes a file from an endpoint.
func (m *MockBackend) RemoveFile(endpointID, p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files[endpointID], path.Clean(p))
}

// HasFile reports whether a file is present on an endpoint.
func (m *MockBackend) HasFile(endpointID, p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[endpointID][path.Clean(p)]
	return ok
}

// SetOffline marks an endpoint as not connected.
func (m *MockBackend) SetOffline(endpointID string, offline bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offline[endpointID] = offline
}

// SetLocal marks an endpoint as always-on storage (connectivity not applicable).
func (m *MockBackend) SetLocal(endpointID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.local[endpointID] = true
}

// ListCalls returns how often a directory has been listed on an endpoint.
func (m *MockBackend) ListCalls(endpointID, dir string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listCalls[endpointID+"\x00"+path.Clean(dir)]
}

// Name returns the name of the backend.
func (m *MockBackend) Name() string {
	return "mock"
}

// ListDirectory returns the entries of one directory.
func (m *MockBackend) ListDirectory(_ context.Context, endpointID, dir string) ([]backend.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir = path.Clean(dir)
	m.listCalls[endpointID+"\x00"+dir]++

	if m.OnList != nil {
		return m.OnList(endpointID, dir)
	}

	if m.offline[endpointID] {
		return nil, fmt.Errorf("%w: %q", backend.ErrNotConnected, endpointID)
	}

	if !m.dirs[endpointID][dir] {
		return nil, fmt.Errorf("%w: %s", backend.ErrNotFound, dir)
	}

	var entries []backend.Entry
	for p, size := range m.files[endpointID] {
		if path.Dir(p) == dir {
			entries = append(entries, backend.Entry{Name: path.Base(p), Size: size})
		}
	}
	for d := range m.dirs[endpointID] {
		if d != dir && path.Dir(d) == dir {
			entries = append(entries, backend.Entry{Name: path.Base(d), IsDir: true})
		}
	}
	return entries, nil
}

// SubmitTransfer records the job and, with AutoApply, materializes the
// destination files.
func (m *MockBackend) SubmitTransfer(
	_ context.Context,
	srcEndpoint, dstEndpoint string,
	pairs []backend.TransferPair,
	label string,
) (string, error) {
	if m.OnSubmitTransfer != nil {
		return m.OnSubmitTransfer(srcEndpoint, dstEndpoint, pairs, label)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.offline[srcEndpoint] || m.offline[dstEndpoint] {
		return "", fmt.Errorf("%w", backend.ErrNotConnected)
	}

	jobID := ulid.Make().String()
	m.Transfers = append(m.Transfers, SubmittedTransfer{
		SourceEndpoint: srcEndpoint,
		DestEndpoint:   dstEndpoint,
		Pairs:          pairs,
		Label:          label,
		JobID:          jobID,
	})

	if m.AutoApply {
		for _, pair := range pairs {
			if size, ok := m.files[srcEndpoint][path.Clean(pair.SourcePath)]; ok {
				m.addFileLocked(dstEndpoint, pair.DestPath, size)
			}
		}
	}

	return jobID, nil
}

// SubmitDelete records the job and, with AutoApply, removes the files.
func (m *MockBackend) SubmitDelete(_ context.Context, endpointID string, paths []string) (string, error) {
	if m.OnSubmitDelete != nil {
		return m.OnSubmitDelete(endpointID, paths)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.offline[endpointID] {
		return "", fmt.Errorf("%w: %q", backend.ErrNotConnected, endpointID)
	}

	jobID := ulid.Make().String()
	m.Deletes = append(m.Deletes, SubmittedDelete{
		Endpoint: endpointID,
		Paths:    paths,
		JobID:    jobID,
	})

	if m.AutoApply {
		for _, p := range paths {
			delete(m.files[endpointID], path.Clean(p))
		}
	}

	return jobID, nil
}

// EndpointStatus reports the configured connectivity of an endpoint.
func (m *MockBackend) EndpointStatus(_ context.Context, endpointID string) (backend.Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.local[endpointID] {
		return backend.Status{}, nil
	}

	connected := !m.offline[endpointID]
	return backend.Status{Connected: &connected}, nil
}

// PrepareShutdown is a no-op for the mock.
func (m *MockBackend) PrepareShutdown() {}

// Close is a no-op for the mock.
func (m *MockBackend) Close() error {
	return nil
}
