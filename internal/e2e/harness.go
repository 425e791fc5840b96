//go:build e2e

// Package e2e provides end-to-end testing infrastructure.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/apitypes"
	"github.com/dataferry/dataferry/internal/engine"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/event"
	testutil "github.com/dataferry/dataferry/internal/testing"
)

// Test configuration constants.
const (
	serverShutdownTimeout = 10 * time.Second
	pollSleepInterval     = 20 * time.Millisecond
	defaultWaitTimeout    = 10 * time.Second
)

// Harness provides a complete test environment for end-to-end tests. It
// runs the engine's replication loop against an in-memory store and an
// in-memory storage backend that completes submitted jobs instantly.
type Harness struct {
	t *testing.T

	Engine  *engine.Engine
	Backend *testutil.MockBackend
	DB      *generated.Client

	// Seeded topology: one lab with an authoritative archive and a
	// personal desktop repository.
	Lab  *generated.Lab
	Flat *generated.Repository
	Desk *generated.Repository

	ctx       context.Context
	ctxCancel context.CancelFunc
	logger    zerolog.Logger
}

// Config configures the E2E test harness.
type Config struct {
	// PassInterval is how often the engine runs a reconcile+transfer pass.
	// Shorter = faster tests.
	PassInterval time.Duration

	// Logger for the test harness
	Logger zerolog.Logger
}

// DefaultConfig returns sensible defaults for E2E tests.
func DefaultConfig() Config {
	return Config{
		PassInterval: 50 * time.Millisecond,
		Logger:       zerolog.Nop(),
	}
}

// NewHarness creates a new E2E test harness.
// Call Start() to initialize all components.
func NewHarness(t *testing.T, cfg Config) *Harness {
	t.Helper()

	return &Harness{
		t:      t,
		logger: cfg.Logger,
	}
}

// Start initializes all components and launches the engine loop.
func (h *Harness) Start(ctx context.Context, cfg Config) {
	h.t.Helper()

	h.ctx, h.ctxCancel = context.WithCancel(ctx)

	h.DB = testutil.NewTestDB(h.t)
	h.Backend = testutil.NewMockBackend()
	h.Backend.AutoApply = true

	h.Lab = testutil.SeedLab(h.t, h.DB, "cortexlab")
	h.Flat = testutil.SeedRepository(h.t, h.DB, h.Lab, "flatiron", "flatiron-main", "/data/flatiron", false)
	h.Desk = testutil.SeedRepository(h.t, h.DB, h.Lab, "desktop", "desk-01", "/home/alice/data", true)

	appCfg := testutil.ValidConfig(h.t)
	appCfg.Server.Listen = "127.0.0.1:0"
	appCfg.Sync.PassInterval = cfg.PassInterval
	if appCfg.Sync.PassInterval == 0 {
		appCfg.Sync.PassInterval = 50 * time.Millisecond
	}

	var err error
	h.Engine, err = engine.New(h.ctx, appCfg, engine.Options{
		Logger:  cfg.Logger,
		DB:      h.DB,
		Backend: h.Backend,
	})
	require.NoError(h.t, err, "failed to create engine")

	go func() {
		_ = h.Engine.Run(h.ctx)
	}()

	// Give the loop time to start
	time.Sleep(pollSleepInterval)
}

// Stop shuts down all components.
func (h *Harness) Stop() {
	h.t.Helper()

	if h.Engine != nil {
		h.Engine.PrepareShutdown()
	}
	if h.ctxCancel != nil {
		h.ctxCancel()
	}
	if h.Engine != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		_ = h.Engine.Shutdown(shutdownCtx)
	}
}

// Register announces a dataset through the HTTP API from the desktop
// repository and places the file on its endpoint.
func (h *Harness) Register(name, relPath string, size int64) apitypes.RegisterResponse {
	h.t.Helper()

	h.Backend.AddFile(h.Desk.EndpointID, h.Desk.RootPath+"/"+relPath, size)

	body, err := json.Marshal(apitypes.RegisterRequest{
		Lab:        h.Lab.Name,
		Repository: h.Desk.Name,
		Path:       relPath,
		Name:       name,
		FileSize:   &size,
	})
	require.NoError(h.t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Engine.Server().ServeHTTP(rec, req)
	require.Equal(h.t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	var resp apitypes.RegisterResponse
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// WaitForRecord polls until the file record satisfies the predicate.
func (h *Harness) WaitForRecord(id ulid.ULID, ok func(*generated.FileRecord) bool) *generated.FileRecord {
	h.t.Helper()

	deadline := time.Now().Add(defaultWaitTimeout)
	for time.Now().Before(deadline) {
		fr, err := h.DB.FileRecord.Get(h.ctx, id)
		if err == nil && ok(fr) {
			return fr
		}
		time.Sleep(pollSleepInterval)
	}

	h.t.Fatalf("timeout waiting for file record %s", id)
	return nil
}

// WaitForEvent waits for an event of the specified type to be recorded.
func (h *Harness) WaitForEvent(eventType string) *generated.Event {
	h.t.Helper()

	deadline := time.Now().Add(defaultWaitTimeout)
	for time.Now().Before(deadline) {
		events, err := h.DB.Event.Query().
			Where(event.TypeEQ(eventType)).
			Order(event.ByTimestamp()).
			All(h.ctx)

		if err == nil && len(events) > 0 {
			return events[len(events)-1] // Return most recent
		}

		time.Sleep(pollSleepInterval)
	}

	h.t.Fatalf("timeout waiting for event type %s", eventType)
	return nil
}

// GetEventsForDataset returns all events recorded for a dataset.
func (h *Harness) GetEventsForDataset(datasetID string) []*generated.Event {
	h.t.Helper()

	events, err := h.DB.Event.Query().
		Where(
			event.SubjectTypeEQ(event.SubjectTypeDataset),
			event.SubjectIDEQ(datasetID),
		).
		Order(event.ByTimestamp()).
		All(h.ctx)

	require.NoError(h.t, err, "failed to query events")
	return events
}

// AssertEventTypes checks that the events contain all expected types in order.
func (h *Harness) AssertEventTypes(events []*generated.Event, expectedTypes ...string) {
	h.t.Helper()

	actualTypes := make([]string, len(events))
	for i, e := range events {
		actualTypes[i] = e.Type
	}

	// Check that all expected types appear in order (not necessarily contiguous)
	expectedIdx := 0
	for _, actualType := range actualTypes {
		if expectedIdx < len(expectedTypes) && actualType == expectedTypes[expectedIdx] {
			expectedIdx++
		}
	}

	if expectedIdx < len(expectedTypes) {
		h.t.Errorf("expected event types %v but got %v (missing %v)",
			expectedTypes, actualTypes, expectedTypes[expectedIdx:])
	}
}
