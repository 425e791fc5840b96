// Package retire removes dataset copies, verifying remote state by listing
// before any destructive action. The stored exists flag is never trusted on
// its own.
package retire

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/dataferry/dataferry/internal/events"
	"github.com/dataferry/dataferry/internal/paths"
)

// Engine deletes physical files and their metadata rows. Physical deletion
// always precedes row deletion so a crash leaves re-reconcilable state.
type Engine struct {
	db          *generated.Client
	backend     backend.Client
	logger      zerolog.Logger
	bus         *events.Bus
	listRetries int
}

// Option is a functional option for configuring the engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithBus sets the event bus for progress events.
func WithBus(bus *events.Bus) Option {
	return func(e *Engine) {
		e.bus = bus
	}
}

// WithListRetries sets the bounded retry count for verification listings.
func WithListRetries(n int) Option {
	return func(e *Engine) {
		e.listRetries = n
	}
}

// New creates a new deletion engine.
func New(db *generated.Client, bc backend.Client, opts ...Option) *Engine {
	e := &Engine{
		db:          db,
		backend:     bc,
		logger:      zerolog.Nop(),
		listRetries: backend.DefaultRetries,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Options control one deletion run.
type Options struct {
	// DryRun reports what would be deleted without submitting deletions
	// and without mutating any row. Read-only verification listings still
	// run, so the preview matches what a live run would do.
	DryRun bool

	// LocalOnly restricts a purge to personal-repository copies, leaving
	// authoritative copies and the Dataset rows in place.
	LocalOnly bool

	// Force lets a purge remove protected datasets.
	Force bool
}

// Skip explains why one record was left untouched. Skips are per record,
// never batch-fatal.
type Skip struct {
	Dataset    string
	Repository string
	Reason     string
}

// PlannedDeletion is one batched physical-deletion request on an endpoint.
type PlannedDeletion struct {
	Endpoint string
	Paths    []string
	JobID    string
}

// Plan is the outcome of one deletion run. Dry and live runs select an
// identical deletion set; only Committed, JobID and the row deletions
// differ.
type Plan struct {
	Deletions        []PlannedDeletion
	Skips            []Skip
	RowsDeleted      int
	DatasetsDeleted  int
	SkippedEndpoints []string
	Committed        bool
}

// ResolveDatasets maps operator-supplied queries (dataset names or UUIDs)
// to dataset rows. An unknown query is a configuration error.
func ResolveDatasets(ctx context.Context, db *generated.Client, queries []string) ([]*generated.Dataset, error) {
	if len(queries) == 0 {
		return nil, errors.New("no datasets given")
	}

	var out []*generated.Dataset
	seen := make(map[uuid.UUID]bool)
	for _, q := range queries {
		var (
			rows []*generated.Dataset
			err  error
		)
		if id, parseErr := uuid.Parse(q); parseErr == nil {
			rows, err = db.Dataset.Query().Where(dataset.ID(id)).All(ctx)
		} else {
			rows, err = db.Dataset.Query().Where(dataset.Name(q)).All(ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dataset %q: %w", q, err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("unknown dataset %q", q)
		}
		for _, ds := range rows {
			if !seen[ds.ID] {
				seen[ds.ID] = true
				out = append(out, ds)
			}
		}
	}
	return out, nil
}

// RetireLocal deletes redundant personal-repository copies of the given
// datasets. A copy is deleted only after a fresh authoritative listing shows
// the file at the dataset's recorded size, and the personal copy itself is
// still listable.
func (e *Engine) RetireLocal(ctx context.Context, datasets []*generated.Dataset, opts Options) (*Plan, error) {
	plan := &Plan{}
	batches := newBatcher()

	for _, ds := range datasets {
		recs, err := e.db.FileRecord.Query().
			Where(
				filerecord.DatasetID(ds.ID),
				filerecord.HasRepositoryWith(repository.IsPersonal(true)),
				filerecord.Exists(true),
			).
			WithRepository().
			WithDataset().
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load personal records: %w", err)
		}
		if len(recs) == 0 {
			continue
		}

		auth, err := e.db.FileRecord.Query().
			Where(
				filerecord.DatasetID(ds.ID),
				filerecord.HasRepositoryWith(repository.IsPersonal(false)),
				filerecord.Exists(true),
			).
			WithRepository().
			First(ctx)
		if err != nil {
			if generated.IsNotFound(err) {
				plan.Skips = append(plan.Skips, e.skip(ds.Name, "", "no confirmed authoritative copy"))
				continue
			}
			return nil, fmt.Errorf("failed to load authoritative record: %w", err)
		}

		if ok := e.verifyAuthoritative(ctx, ds, auth, plan); !ok {
			continue
		}

		for _, rec := range recs {
			repo := rec.Edges.Repository
			resolved := paths.Resolve(repo.RootPath, rec.RelativePath, ds.ID, false)

			size, found, err := e.observe(ctx, repo.EndpointID, resolved)
			if err != nil {
				plan.Skips = append(plan.Skips, e.skip(ds.Name, repo.Name, "personal copy not listable: "+err.Error()))
				continue
			}
			if !found {
				plan.Skips = append(plan.Skips, e.skip(ds.Name, repo.Name, "personal copy already gone"))
				continue
			}
			if ds.FileSize != nil && size != *ds.FileSize {
				// Possible overwrite in progress. Leave for human review.
				plan.Skips = append(plan.Skips, e.skip(ds.Name, repo.Name, "local size differs from recorded size"))
				continue
			}

			batches.add(repo.EndpointID, resolved, rec)
		}
	}

	e.flush(ctx, batches, plan, opts)

	if !opts.DryRun {
		plan.Committed = true
		for _, rec := range batches.deleted {
			e.publish(events.Event{
				Type:    events.RecordRetired,
				Subject: rec.Edges.Dataset,
				Data:    map[string]any{"repository": rec.Edges.Repository.Name},
			})
		}
	}
	return plan, nil
}

// Purge removes every copy of the given datasets and, unless restricted to
// local copies, the Dataset rows themselves. Each endpoint must pass a
// connectivity check before any of its files are touched.
func (e *Engine) Purge(ctx context.Context, datasets []*generated.Dataset, opts Options) (*Plan, error) {
	plan := &Plan{}
	batches := newBatcher()

	var purgeable []*generated.Dataset
	for _, ds := range datasets {
		if ds.Protected && !opts.Force {
			e.logger.Warn().Str("dataset", ds.Name).Msg("dataset is protected, refusing to purge without force")
			plan.Skips = append(plan.Skips, Skip{Dataset: ds.Name, Reason: "protected"})
			continue
		}
		purgeable = append(purgeable, ds)
	}

	for _, ds := range purgeable {
		q := e.db.FileRecord.Query().Where(filerecord.DatasetID(ds.ID))
		if opts.LocalOnly {
			q = q.Where(filerecord.HasRepositoryWith(repository.IsPersonal(true)))
		}

		recs, err := q.WithRepository().WithDataset().All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load records for purge: %w", err)
		}

		for _, rec := range recs {
			repo := rec.Edges.Repository
			resolved := paths.Resolve(repo.RootPath, rec.RelativePath, ds.ID, !repo.IsPersonal)
			if !repo.IsPersonal {
				// Archived copies may sit under either the id-embedded or
				// the bare filename. Delete whichever is actually present;
				// on a failed or empty listing the embedded path stands in
				// and flush's connectivity check has the final say.
				if actual, _, found, err := e.locate(ctx, repo.EndpointID, repo.RootPath, rec); err == nil && found {
					resolved = actual
				}
			}
			batches.add(repo.EndpointID, resolved, rec)
		}
	}

	e.flush(ctx, batches, plan, opts)

	if opts.DryRun {
		return plan, nil
	}
	plan.Committed = true

	if !opts.LocalOnly {
		for _, ds := range purgeable {
			remaining, err := e.db.FileRecord.Query().
				Where(filerecord.DatasetID(ds.ID)).
				Count(ctx)
			if err != nil {
				e.logger.Error().Err(err).Str("dataset", ds.Name).Msg("failed to count remaining records")
				continue
			}
			if remaining > 0 {
				// Some endpoint was skipped; the dataset row survives
				// until every copy is accounted for.
				continue
			}
			if err := e.db.Dataset.DeleteOneID(ds.ID).Exec(ctx); err != nil {
				e.logger.Error().Err(err).Str("dataset", ds.Name).Msg("failed to delete dataset row")
				continue
			}
			plan.DatasetsDeleted++
			e.publish(events.Event{
				Type: events.DatasetPurged,
				Data: map[string]any{"dataset": ds.Name, "id": ds.ID.String()},
			})
		}
	}

	return plan, nil
}

// verifyAuthoritative lists the authoritative copy fresh and checks the
// observed size against the dataset's recorded size.
func (e *Engine) verifyAuthoritative(ctx context.Context, ds *generated.Dataset, auth *generated.FileRecord, plan *Plan) bool {
	repo := auth.Edges.Repository

	_, size, found, err := e.locate(ctx, repo.EndpointID, repo.RootPath, auth)
	if err != nil {
		plan.Skips = append(plan.Skips, e.skip(ds.Name, repo.Name, "authoritative copy not verifiable: "+err.Error()))
		return false
	}
	if !found {
		plan.Skips = append(plan.Skips, e.skip(ds.Name, repo.Name, "authoritative copy not found on listing"))
		return false
	}
	if ds.FileSize == nil || size != *ds.FileSize {
		// The remote copy does not match what we believe the dataset to
		// be. Deleting the local copy now could lose the only good one.
		plan.Skips = append(plan.Skips, e.skip(ds.Name, repo.Name, "remote size differs from recorded size"))
		return false
	}
	return true
}

// observe lists the parent directory of one path and reports whether the
// entry is present and at what size.
func (e *Engine) observe(ctx context.Context, endpoint, p string) (int64, bool, error) {
	names, err := e.listNames(ctx, endpoint, paths.Dir(p))
	if err != nil {
		return 0, false, err
	}

	size, ok := names[paths.Base(p)]
	if !ok || size <= 0 {
		return 0, false, nil
	}
	return size, true, nil
}

// locate finds a record's file on an authoritative endpoint. Transfers embed
// the dataset id in the destination filename, but a copy placed on the
// endpoint out of band keeps its bare name; reconciliation accepts either as
// evidence of existence, so verification and deletion look for both, embedded
// name first.
func (e *Engine) locate(ctx context.Context, endpoint, root string, rec *generated.FileRecord) (string, int64, bool, error) {
	embedded := paths.Resolve(root, rec.RelativePath, rec.DatasetID, true)
	bare := paths.Resolve(root, rec.RelativePath, rec.DatasetID, false)

	names, err := e.listNames(ctx, endpoint, paths.Dir(embedded))
	if err != nil {
		return "", 0, false, err
	}

	if size, ok := names[paths.Base(embedded)]; ok && size > 0 {
		return embedded, size, true, nil
	}
	if size, ok := names[paths.Base(bare)]; ok && size > 0 {
		return bare, size, true, nil
	}
	return "", 0, false, nil
}

// listNames lists one directory with bounded retries and returns its file
// entries keyed by name. A missing directory is an empty listing.
func (e *Engine) listNames(ctx context.Context, endpoint, dir string) (map[string]int64, error) {
	var entries []backend.Entry
	err := backend.WithRetry(ctx, e.listRetries, e.logger, "list "+dir, func() error {
		var listErr error
		entries, listErr = e.backend.ListDirectory(ctx, endpoint, dir)
		return listErr
	})
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return map[string]int64{}, nil
		}
		return nil, err
	}

	names := make(map[string]int64, len(entries))
	for _, entry := range entries {
		if !entry.IsDir {
			names[entry.Name] = entry.Size
		}
	}
	return names, nil
}

// flush submits one physical-deletion job per endpoint, then removes the
// corresponding rows. An unreachable endpoint is skipped whole.
func (e *Engine) flush(ctx context.Context, b *batcher, plan *Plan, opts Options) {
	endpoints := make([]string, 0, len(b.paths))
	for endpoint := range b.paths {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)

	for _, endpoint := range endpoints {
		deletion := PlannedDeletion{Endpoint: endpoint, Paths: b.paths[endpoint]}

		if opts.DryRun {
			plan.Deletions = append(plan.Deletions, deletion)
			continue
		}

		status, err := e.backend.EndpointStatus(ctx, endpoint)
		if err != nil || !status.Reachable() {
			e.logger.Warn().Str("endpoint", endpoint).Msg("endpoint not connected, skipping its deletions")
			plan.SkippedEndpoints = append(plan.SkippedEndpoints, endpoint)
			e.publish(events.Event{Type: events.EndpointUnreachable, Subject: endpoint})
			continue
		}

		jobID, err := e.backend.SubmitDelete(ctx, endpoint, deletion.Paths)
		if err != nil {
			e.logger.Error().Err(err).Str("endpoint", endpoint).Msg("deletion submission failed")
			plan.SkippedEndpoints = append(plan.SkippedEndpoints, endpoint)
			continue
		}
		deletion.JobID = jobID
		plan.Deletions = append(plan.Deletions, deletion)

		// Rows go last so a crash between the two steps leaves rows that
		// the next reconciliation pass will mark vanished.
		for _, rec := range b.records[endpoint] {
			if err := e.db.FileRecord.DeleteOne(rec).Exec(ctx); err != nil {
				e.logger.Error().Err(err).Str("record", rec.ID.String()).Msg("failed to delete record row")
				continue
			}
			plan.RowsDeleted++
			b.deleted = append(b.deleted, rec)
		}

		e.logger.Info().
			Str("endpoint", endpoint).
			Str("job_id", jobID).
			Int("files", len(deletion.Paths)).
			Msg("deletion job submitted")
	}
}

func (e *Engine) skip(ds, repo, reason string) Skip {
	e.logger.Warn().Str("dataset", ds).Str("repository", repo).Msg(reason)
	return Skip{Dataset: ds, Repository: repo, Reason: reason}
}

func (e *Engine) publish(ev events.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

// batcher groups pending physical deletions by endpoint so each endpoint
// receives one request per run.
type batcher struct {
	paths   map[string][]string
	records map[string][]*generated.FileRecord
	deleted []*generated.FileRecord
}

func newBatcher() *batcher {
	return &batcher{
		paths:   make(map[string][]string),
		records: make(map[string][]*generated.FileRecord),
	}
}

func (b *batcher) add(endpoint, p string, rec *generated.FileRecord) {
	b.paths[endpoint] = append(b.paths[endpoint], p)
	b.records[endpoint] = append(b.records[endpoint], rec)
}
