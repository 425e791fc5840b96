// Package reconcile makes file-record existence flags truthful by listing
// remote storage.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/dataferry/dataferry/internal/backend"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/dataferry/dataferry/internal/events"
	"github.com/dataferry/dataferry/internal/paths"
)

// Reconciler drives file-record beliefs toward observed remote state.
// It batches remote listings by directory so that records sharing a parent
// directory cost exactly one backend call per pass.
type Reconciler struct {
	db          *generated.Client
	backend     backend.Client
	logger      zerolog.Logger
	bus         *events.Bus
	listRetries int
}

// Option is a functional option for configuring the reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithBus sets the event bus for progress events.
func WithBus(bus *events.Bus) Option {
	return func(r *Reconciler) {
		r.bus = bus
	}
}

// WithListRetries sets the bounded retry count for transient listing failures.
func WithListRetries(n int) Option {
	return func(r *Reconciler) {
		r.listRetries = n
	}
}

// New creates a new Reconciler.
func New(db *generated.Client, bc backend.Client, opts ...Option) *Reconciler {
	r := &Reconciler{
		db:          db,
		backend:     bc,
		logger:      zerolog.Nop(),
		listRetries: backend.DefaultRetries,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Options control one reconciliation pass.
type Options struct {
	// Lab restricts the pass to datasets of one lab. Empty means all labs.
	Lab string

	// IncludeMismatched widens the pass to records flagged with a hash
	// mismatch, re-verifying them against remote state.
	IncludeMismatched bool

	// DryRun reports the candidate set without contacting the backend for
	// listings and without mutating any row.
	DryRun bool
}

// Candidate is one record selected for verification.
type Candidate struct {
	RecordID   ulid.ULID
	DatasetID  uuid.UUID
	Dataset    string
	Repository string
	Endpoint   string
	Path       string
	Exists     bool
	Status     string
}

// Report is the outcome of one reconciliation pass. Dry and live runs
// select an identical candidate set; only Committed and the mutation
// counters differ.
type Report struct {
	Candidates       []Candidate
	Confirmed        int
	Vanished         int
	SizesCorrected   int
	SkippedEndpoints []string
	SkippedDirs      []string
	Committed        bool
}

// Run executes one reconciliation pass.
func (r *Reconciler) Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Lab != "" {
		ok, err := r.db.Lab.Query().Where(lab.Name(opts.Lab)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to look up lab: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("unknown lab %q", opts.Lab)
		}
	}

	recs, err := r.selectRecords(ctx, opts)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, rec := range recs {
		repo := rec.Edges.Repository
		ds := rec.Edges.Dataset

		resolved := paths.Resolve(repo.RootPath, rec.RelativePath, rec.DatasetID, !repo.IsPersonal)
		report.Candidates = append(report.Candidates, Candidate{
			RecordID:   rec.ID,
			DatasetID:  rec.DatasetID,
			Dataset:    ds.Name,
			Repository: repo.Name,
			Endpoint:   repo.EndpointID,
			Path:       resolved,
			Exists:     rec.Exists,
			Status:     string(rec.Status),
		})
	}

	// Sort so that records sharing a parent directory are adjacent and one
	// listing serves all of them.
	sort.SliceStable(report.Candidates, func(i, j int) bool {
		a, b := report.Candidates[i], report.Candidates[j]
		if a.Endpoint != b.Endpoint {
			return a.Endpoint < b.Endpoint
		}
		return a.Path < b.Path
	})
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i].Edges.Repository, recs[j].Edges.Repository
		if a.EndpointID != b.EndpointID {
			return a.EndpointID < b.EndpointID
		}
		return recs[i].RelativePath < recs[j].RelativePath
	})

	if opts.DryRun {
		r.logger.Info().
			Int("candidates", len(report.Candidates)).
			Msg("dry run: reconciliation candidates selected")
		return report, nil
	}

	r.verify(ctx, recs, report)
	report.Committed = true

	r.logger.Info().
		Int("candidates", len(report.Candidates)).
		Int("confirmed", report.Confirmed).
		Int("vanished", report.Vanished).
		Int("sizes_corrected", report.SizesCorrected).
		Int("skipped_endpoints", len(report.SkippedEndpoints)).
		Int("skipped_dirs", len(report.SkippedDirs)).
		Msg("reconciliation pass complete")

	return report, nil
}

// selectRecords returns every record under review: for each incomplete
// dataset, all personal-repository records plus authoritative records still
// carrying a transfer-pending marker. Confirmed authoritative records are
// not re-listed, which bounds backend calls.
func (r *Reconciler) selectRecords(ctx context.Context, opts Options) ([]*generated.FileRecord, error) {
	incomplete := filerecord.Exists(false)
	if opts.IncludeMismatched {
		incomplete = filerecord.Or(
			filerecord.Exists(false),
			filerecord.StatusEQ(filerecord.StatusMismatch),
		)
	}

	q := r.db.FileRecord.Query().
		Where(
			filerecord.HasRepositoryWith(repository.IsPersonal(false)),
			incomplete,
		)
	if opts.Lab != "" {
		q = q.Where(filerecord.HasDatasetWith(dataset.HasLabWith(lab.Name(opts.Lab))))
	}

	ids, err := q.QueryDataset().Unique(true).IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select incomplete datasets: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	review := filerecord.Or(
		filerecord.HasRepositoryWith(repository.IsPersonal(true)),
		filerecord.StatusEQ(filerecord.StatusPending),
	)
	if opts.IncludeMismatched {
		review = filerecord.Or(
			filerecord.HasRepositoryWith(repository.IsPersonal(true)),
			filerecord.StatusEQ(filerecord.StatusPending),
			filerecord.StatusEQ(filerecord.StatusMismatch),
		)
	}

	recs, err := r.db.FileRecord.Query().
		Where(filerecord.DatasetIDIn(ids...), review).
		WithDataset().
		WithRepository().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records under review: %w", err)
	}

	return recs, nil
}

// verify lists each involved directory once and moves record beliefs toward
// what the listing shows. A failed listing skips only that directory; an
// unreachable endpoint skips all of its directories for this pass.
func (r *Reconciler) verify(ctx context.Context, recs []*generated.FileRecord, report *Report) {
	endpointDown := make(map[string]bool)
	listings := make(map[string]map[string]int64) // endpoint \x00 dir -> name -> size
	failedDirs := make(map[string]bool)

	for _, rec := range recs {
		repo := rec.Edges.Repository
		endpoint := repo.EndpointID

		if down, checked := endpointDown[endpoint]; checked && down {
			continue
		} else if !checked {
			reachable := r.endpointReachable(ctx, endpoint)
			endpointDown[endpoint] = !reachable
			if !reachable {
				report.SkippedEndpoints = append(report.SkippedEndpoints, endpoint)
				continue
			}
		}

		resolved := paths.Resolve(repo.RootPath, rec.RelativePath, rec.DatasetID, !repo.IsPersonal)
		dir := paths.Dir(resolved)
		key := endpoint + "\x00" + dir

		if failedDirs[key] {
			continue
		}

		names, ok := listings[key]
		if !ok {
			var listErr error
			names, listErr = r.listDir(ctx, endpoint, dir)
			if listErr != nil {
				// Fail open toward "unknown": leave this directory's
				// records unchanged and retry on the next pass.
				r.logger.Error().
					Err(listErr).
					Str("endpoint", endpoint).
					Str("dir", dir).
					Msg("listing failed, skipping directory for this pass")
				failedDirs[key] = true
				report.SkippedDirs = append(report.SkippedDirs, dir)
				continue
			}
			listings[key] = names
		}

		r.applyListing(ctx, rec, names, report)
	}
}

func (r *Reconciler) endpointReachable(ctx context.Context, endpoint string) bool {
	status, err := r.backend.EndpointStatus(ctx, endpoint)
	if err != nil {
		r.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("endpoint status check failed")
		return false
	}
	if !status.Reachable() {
		r.logger.Warn().Str("endpoint", endpoint).Msg("endpoint not connected, skipping for this pass")
		r.publish(events.Event{
			Type:    events.EndpointUnreachable,
			Subject: endpoint,
		})
		return false
	}
	return true
}

// listDir lists one directory with bounded retries. A missing directory is
// evidence of absence, not an error.
func (r *Reconciler) listDir(ctx context.Context, endpoint, dir string) (map[string]int64, error) {
	var entries []backend.Entry
	err := backend.WithRetry(ctx, r.listRetries, r.logger, "list "+dir, func() error {
		var listErr error
		entries, listErr = r.backend.ListDirectory(ctx, endpoint, dir)
		return listErr
	})
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return map[string]int64{}, nil
		}
		return nil, err
	}

	names := make(map[string]int64, len(entries))
	for _, e := range entries {
		if !e.IsDir {
			names[e.Name] = e.Size
		}
	}
	return names, nil
}

// applyListing updates one record from its directory listing. The listing
// is searched for the id-embedded filename as well as the bare filename.
func (r *Reconciler) applyListing(
	ctx context.Context,
	rec *generated.FileRecord,
	names map[string]int64,
	report *Report,
) {
	ds := rec.Edges.Dataset
	repo := rec.Edges.Repository

	bare := path.Base(paths.Normalize(rec.RelativePath))
	embedded := paths.EmbedID(bare, rec.DatasetID)

	size, found := names[embedded]
	if !found {
		size, found = names[bare]
	}
	// Only a positive-size entry counts as evidence of existence.
	found = found && size > 0

	switch {
	case found && !rec.Exists:
		if err := r.confirm(ctx, rec, size, report); err != nil {
			r.logger.Error().Err(err).Str("record", rec.ID.String()).Msg("failed to persist confirmation")
			return
		}
		r.publish(events.Event{
			Type:    events.RecordConfirmed,
			Subject: ds,
			Data:    map[string]any{"repository": repo.Name, "size": size},
		})

	case found && rec.Exists:
		// Re-checked personal copy still present; keep sizes honest.
		r.correctSize(ctx, ds, size, report)

	case !found && rec.Exists:
		// A previously-confirmed personal copy is gone.
		if err := r.db.FileRecord.UpdateOne(rec).SetExists(false).Exec(ctx); err != nil {
			r.logger.Error().Err(err).Str("record", rec.ID.String()).Msg("failed to persist vanished record")
			return
		}
		report.Vanished++
		r.logger.Warn().
			Str("dataset", ds.Name).
			Str("repository", repo.Name).
			Msg("previously existing copy no longer listed")
		r.publish(events.Event{
			Type:    events.RecordVanished,
			Subject: ds,
			Data:    map[string]any{"repository": repo.Name},
		})
	}
}

// confirm marks a record existing and clears the dataset's status markers so
// future passes treat it as settled.
func (r *Reconciler) confirm(ctx context.Context, rec *generated.FileRecord, size int64, report *Report) error {
	if err := r.db.FileRecord.UpdateOne(rec).SetExists(true).Exec(ctx); err != nil {
		return err
	}

	if _, err := r.db.FileRecord.Update().
		Where(filerecord.DatasetID(rec.DatasetID)).
		SetStatus(filerecord.StatusNone).
		Save(ctx); err != nil {
		return err
	}

	report.Confirmed++
	r.logger.Info().
		Str("dataset", rec.Edges.Dataset.Name).
		Str("repository", rec.Edges.Repository.Name).
		Int64("size", size).
		Msg("record confirmed existing")

	r.correctSize(ctx, rec.Edges.Dataset, size, report)
	return nil
}

func (r *Reconciler) correctSize(ctx context.Context, ds *generated.Dataset, observed int64, report *Report) {
	if ds.FileSize != nil && *ds.FileSize == observed {
		return
	}

	if err := r.db.Dataset.UpdateOneID(ds.ID).SetFileSize(observed).Exec(ctx); err != nil {
		r.logger.Error().Err(err).Str("dataset", ds.Name).Msg("failed to correct dataset size")
		return
	}

	report.SizesCorrected++
	r.logger.Info().
		Str("dataset", ds.Name).
		Int64("size", observed).
		Msg("dataset size corrected to observed value")
	r.publish(events.Event{
		Type:    events.SizeCorrected,
		Subject: ds,
		Data:    map[string]any{"size": observed},
	})
}

func (r *Reconciler) publish(ev events.Event) {
	if r.bus != nil {
		r.bus.Publish(ev)
	}
}
