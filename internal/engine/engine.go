// Package engine wires the metadata store, the storage backend and the
// replication passes together and runs them as a long-lived service.
package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/config"
	"github.com/dataferry/dataferry/internal/ent"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/events"
	"github.com/dataferry/dataferry/internal/reconcile"
	"github.com/dataferry/dataferry/internal/retire"
	"github.com/dataferry/dataferry/internal/schedule"
	"github.com/dataferry/dataferry/internal/server"
	"github.com/dataferry/dataferry/internal/timeline"
)

// OpenStore opens the metadata store and runs migrations.
func OpenStore(ctx context.Context, cfg config.Config) (*generated.Client, error) {
	var opts []ent.Option
	if cfg.Database.Debug {
		opts = append(opts, ent.WithDebug())
	}

	db, err := ent.OpenSQLite(cfg.Database.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata store: %w", err)
	}

	if err := ent.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate metadata store: %w", err)
	}

	return db, nil
}

// NewBackend builds the storage backend from configuration.
func NewBackend(cfg config.Config, logger zerolog.Logger) (backend.Client, error) {
	switch cfg.Backend.Type {
	case "", string(backend.KindRclone):
		remotes := make(map[string]string, len(cfg.Backend.Endpoints))
		for id, ep := range cfg.Backend.Endpoints {
			remotes[id] = ep.Remote
		}
		return backend.NewRclone(remotes, backend.WithLogger(logger)), nil
	default:
		return nil, fmt.Errorf("unknown backend type %q", cfg.Backend.Type)
	}
}

// Options holds engine options not carried by config.
type Options struct {
	Logger zerolog.Logger

	// DB overrides the configured metadata store when non-nil.
	DB *generated.Client
	// Backend overrides the configured storage backend when non-nil.
	Backend backend.Client
}

// Engine is the long-lived service: the HTTP API plus a periodic
// reconcile-then-transfer loop.
type Engine struct {
	cfg        config.Config
	db         *generated.Client
	backend    backend.Client
	bus        *events.Bus
	eventsCtl  *events.Controller
	activity   timeline.Recorder
	httpServer *server.HTTPServer
	reconciler *reconcile.Reconciler
	scheduler  *schedule.Scheduler
	deleter    *retire.Engine
	logger     zerolog.Logger

	shuttingDown atomic.Bool
}

// New creates a new engine from configuration.
func New(ctx context.Context, cfg config.Config, opts Options) (*Engine, error) {
	logger := opts.Logger

	db := opts.DB
	if db == nil {
		var err error
		db, err = OpenStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	bc := opts.Backend
	if bc == nil {
		var err error
		bc, err = NewBackend(cfg, logger.With().Str("component", "backend").Logger())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	bus := events.New(events.WithLogger(logger.With().Str("component", "events").Logger()))
	activity := timeline.NewRecorder(timeline.WithLogger(logger.With().Str("component", "timeline").Logger()))

	e := &Engine{
		cfg:      cfg,
		db:       db,
		backend:  bc,
		bus:      bus,
		activity: activity,
		logger:   logger,
		eventsCtl: events.NewController(bus, db,
			events.WithControllerLogger(logger.With().Str("component", "events").Logger())),
		reconciler: reconcile.New(db, bc,
			reconcile.WithLogger(logger.With().Str("component", "reconcile").Logger()),
			reconcile.WithBus(bus),
			reconcile.WithListRetries(cfg.Sync.ListRetries)),
		scheduler: schedule.New(db, bc,
			schedule.WithLogger(logger.With().Str("component", "schedule").Logger()),
			schedule.WithBus(bus),
			schedule.WithLargeFileThreshold(cfg.Sync.LargeFileThreshold)),
		deleter: retire.New(db, bc,
			retire.WithLogger(logger.With().Str("component", "retire").Logger()),
			retire.WithBus(bus),
			retire.WithListRetries(cfg.Sync.ListRetries)),
	}
	e.httpServer = server.New(db,
		server.WithLogger(logger.With().Str("component", "http").Logger()),
		server.WithBus(bus),
		server.WithActivity(activity))

	return e, nil
}

// Deleter returns the deletion engine sharing this engine's store and
// backend.
func (e *Engine) Deleter() *retire.Engine {
	return e.deleter
}

// DB returns the metadata store client.
func (e *Engine) DB() *generated.Client {
	return e.db
}

// Server returns the HTTP API server.
func (e *Engine) Server() *server.HTTPServer {
	return e.httpServer
}

// Run starts the engine and blocks until the context is cancelled or the
// HTTP server fails.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.eventsCtl.Start(ctx); err != nil {
		return fmt.Errorf("failed to start events controller: %w", err)
	}
	go e.bridgeActivity(e.bus.Subscribe())

	errCh := make(chan error, 1)
	go func() {
		if err := e.httpServer.Start(e.cfg.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	e.bus.Publish(events.Event{Type: events.SystemStarted})
	e.logger.Info().
		Str("listen", e.cfg.Server.Listen).
		Dur("pass_interval", e.cfg.Sync.PassInterval).
		Msg("engine started")

	ticker := time.NewTicker(e.cfg.Sync.PassInterval)
	defer ticker.Stop()

	e.runPass(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			return fmt.Errorf("http server failed: %w", err)
		case <-ticker.C:
			e.runPass(ctx)
		}
	}
}

// runPass executes one reconcile pass followed by one transfer pass. Pass
// failures are logged, never fatal to the loop.
func (e *Engine) runPass(ctx context.Context) {
	if e.shuttingDown.Load() {
		return
	}

	started := time.Now()
	opts := reconcile.Options{Lab: e.cfg.Sync.DefaultLab}

	report, err := e.reconciler.Run(ctx, opts)
	if err != nil {
		e.logger.Error().Err(err).Msg("reconcile pass failed")
		return
	}

	plan, err := e.scheduler.Run(ctx, schedule.Options{Lab: e.cfg.Sync.DefaultLab})
	if err != nil {
		e.logger.Error().Err(err).Msg("transfer pass failed")
		return
	}

	e.bus.Publish(events.Event{
		Type: events.PassCompleted,
		Data: map[string]any{
			"confirmed":  report.Confirmed,
			"vanished":   report.Vanished,
			"jobs":       len(plan.Jobs),
			"sourceless": len(plan.Sourceless),
			"elapsed":    time.Since(started).String(),
		},
	})
}

// bridgeActivity mirrors bus events into the bounded in-memory activity
// feed served by the API.
func (e *Engine) bridgeActivity(sub events.Subscription) {
	for ev := range sub {
		entry := timeline.Entry{
			Type:      entryType(ev.Type),
			Timestamp: ev.Timestamp,
			Details:   ev.Data,
		}

		switch subject := ev.Subject.(type) {
		case *generated.Dataset:
			entry.DatasetID = subject.ID.String()
			entry.Dataset = subject.Name
		case *generated.Repository:
			entry.Repository = subject.Name
			entry.Endpoint = subject.EndpointID
		case string:
			entry.Endpoint = subject
		}
		if repo, ok := ev.Data["repository"].(string); ok {
			entry.Repository = repo
		}

		e.activity.Record(entry)
	}
}

func entryType(t events.Type) timeline.EntryType {
	switch t {
	case events.SystemStarted:
		return timeline.EntrySystemStarted
	case events.DatasetRegistered:
		return timeline.EntryRegistered
	case events.DatasetPatched:
		return timeline.EntryPatched
	case events.RecordConfirmed:
		return timeline.EntryConfirmed
	case events.RecordVanished:
		return timeline.EntryVanished
	case events.SizeCorrected:
		return timeline.EntrySizeCorrected
	case events.TransferSubmitted:
		return timeline.EntryTransferQueued
	case events.SourceMissing:
		return timeline.EntrySourceMissing
	case events.RecordRetired:
		return timeline.EntryRetired
	case events.DatasetPurged:
		return timeline.EntryPurged
	case events.EndpointUnreachable:
		return timeline.EntryUnreachable
	case events.PassCompleted:
		return timeline.EntryPassCompleted
	default:
		return timeline.EntryError
	}
}

// PrepareShutdown flags the engine as shutting down so in-flight passes
// wind down quietly and no new pass starts.
func (e *Engine) PrepareShutdown() {
	e.shuttingDown.Store(true)
	e.backend.PrepareShutdown()
}

// Shutdown stops every component, releasing resources in dependency order.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.logger.Info().Msg("shutting down")

	var errs []error
	if err := e.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	if err := e.eventsCtl.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("events controller stop: %w", err))
	}
	e.bus.Close()
	if err := e.backend.Close(); err != nil {
		errs = append(errs, fmt.Errorf("backend close: %w", err))
	}
	if err := e.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store close: %w", err))
	}

	return errors.Join(errs...)
}
