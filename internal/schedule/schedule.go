// Package schedule plans and submits bulk transfers that create missing
// dataset copies.
package schedule

import (
	"context"
	"fmt"
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

// SizeClass partitions datasets so that bulk transfers of small files are
// never queued behind multi-gigabyte ones.
type SizeClass string

const (
	ClassSmall SizeClass = "small"
	ClassLarge SizeClass = "large"
)

// Scheduler turns wanted-but-absent file records into backend transfer jobs.
type Scheduler struct {
	db        *generated.Client
	backend   backend.Client
	logger    zerolog.Logger
	bus       *events.Bus
	threshold int64
}

// Option is a functional option for configuring the scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithBus sets the event bus for progress events.
func WithBus(bus *events.Bus) Option {
	return func(s *Scheduler) {
		s.bus = bus
	}
}

// WithLargeFileThreshold sets the byte size at and above which a dataset is
// scheduled in the large class.
func WithLargeFileThreshold(n int64) Option {
	return func(s *Scheduler) {
		s.threshold = n
	}
}

// DefaultLargeFileThreshold is 1 GiB.
const DefaultLargeFileThreshold = int64(1 << 30)

// New creates a new Scheduler.
func New(db *generated.Client, bc backend.Client, opts ...Option) *Scheduler {
	s := &Scheduler{
		db:        db,
		backend:   bc,
		logger:    zerolog.Nop(),
		threshold: DefaultLargeFileThreshold,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Options control one scheduling pass.
type Options struct {
	// Lab restricts the pass to datasets of one lab. Empty means all labs.
	Lab string

	// IncludeMismatched widens the pass to destinations flagged with a
	// hash mismatch, re-transferring them from a good copy.
	IncludeMismatched bool

	// DryRun builds the full plan without submitting anything and without
	// mutating any row.
	DryRun bool
}

// PlannedTransfer is one file inside a job.
type PlannedTransfer struct {
	RecordID ulid.ULID
	Dataset  string
	Pair     backend.TransferPair
	Size     int64
}

// PlannedJob is one bulk submission: every wanted copy sharing a source
// repository, a destination repository and a size class.
type PlannedJob struct {
	Label       string
	Source      string
	Destination string
	SrcEndpoint string
	DstEndpoint string
	Class       SizeClass
	Transfers   []PlannedTransfer
	SubmittedID string
}

// Plan is the outcome of one scheduling pass. Dry and live runs build an
// identical job set; only Committed and SubmittedID differ.
type Plan struct {
	Jobs             []PlannedJob
	Sourceless       []string
	SkippedEndpoints []string
	Committed        bool
}

// Run executes one scheduling pass. Records already marked pending or
// missing are excluded, so repeated passes do not resubmit work.
func (s *Scheduler) Run(ctx context.Context, opts Options) (*Plan, error) {
	if opts.Lab != "" {
		ok, err := s.db.Lab.Query().Where(lab.Name(opts.Lab)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to look up lab: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("unknown lab %q", opts.Lab)
		}
	}

	wanted, err := s.selectWanted(ctx, opts)
	if err != nil {
		return nil, err
	}

	plan := &Plan{}
	if len(wanted) == 0 {
		plan.Committed = !opts.DryRun
		return plan, nil
	}

	sources, err := s.loadSources(ctx, wanted)
	if err != nil {
		return nil, err
	}

	var sourceless []*generated.FileRecord
	jobs := make(map[string]*PlannedJob)

	for _, rec := range wanted {
		src := pickSource(sources[rec.DatasetID.String()], rec)
		if src == nil {
			sourceless = append(sourceless, rec)
			plan.Sourceless = append(plan.Sourceless, rec.Edges.Dataset.Name)
			continue
		}

		srcRepo := src.Edges.Repository
		dstRepo := rec.Edges.Repository
		class := s.classify(rec.Edges.Dataset)

		key := srcRepo.Name + "\x00" + dstRepo.Name + "\x00" + string(class)
		job, ok := jobs[key]
		if !ok {
			job = &PlannedJob{
				Label:       fmt.Sprintf("%s to %s", srcRepo.Name, dstRepo.Name),
				Source:      srcRepo.Name,
				Destination: dstRepo.Name,
				SrcEndpoint: srcRepo.EndpointID,
				DstEndpoint: dstRepo.EndpointID,
				Class:       class,
			}
			jobs[key] = job
		}

		var size int64
		if fs := rec.Edges.Dataset.FileSize; fs != nil {
			size = *fs
		}
		job.Transfers = append(job.Transfers, PlannedTransfer{
			RecordID: rec.ID,
			Dataset:  rec.Edges.Dataset.Name,
			Pair: backend.TransferPair{
				SourcePath: paths.Resolve(srcRepo.RootPath, src.RelativePath, src.DatasetID, !srcRepo.IsPersonal),
				DestPath:   paths.Resolve(dstRepo.RootPath, rec.RelativePath, rec.DatasetID, !dstRepo.IsPersonal),
			},
			Size: size,
		})
	}

	keys := make([]string, 0, len(jobs))
	for k := range jobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		plan.Jobs = append(plan.Jobs, *jobs[k])
	}

	if opts.DryRun {
		s.logger.Info().
			Int("jobs", len(plan.Jobs)).
			Int("sourceless", len(plan.Sourceless)).
			Msg("dry run: transfer plan built")
		return plan, nil
	}

	s.submit(ctx, plan)
	s.markSourceless(ctx, sourceless)
	plan.Committed = true

	return plan, nil
}

// selectWanted returns authoritative-repository records describing copies
// that should exist but do not and are not already in flight or known
// unsourceable. Personal repositories are never transfer destinations.
func (s *Scheduler) selectWanted(ctx context.Context, opts Options) ([]*generated.FileRecord, error) {
	wanted := filerecord.Exists(false)
	if opts.IncludeMismatched {
		wanted = filerecord.Or(
			filerecord.Exists(false),
			filerecord.StatusEQ(filerecord.StatusMismatch),
		)
	}

	q := s.db.FileRecord.Query().
		Where(
			filerecord.HasRepositoryWith(repository.IsPersonal(false)),
			wanted,
			filerecord.StatusNotIn(filerecord.StatusPending, filerecord.StatusMissing),
		)
	if opts.Lab != "" {
		q = q.Where(filerecord.HasDatasetWith(dataset.HasLabWith(lab.Name(opts.Lab))))
	}

	recs, err := q.WithDataset().WithRepository().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select wanted records: %w", err)
	}
	return recs, nil
}

// loadSources collects every confirmed copy of the involved datasets.
func (s *Scheduler) loadSources(
	ctx context.Context,
	wanted []*generated.FileRecord,
) (map[string][]*generated.FileRecord, error) {
	ids := make([]uuid.UUID, 0, len(wanted))
	seen := make(map[string]bool)
	for _, rec := range wanted {
		if !seen[rec.DatasetID.String()] {
			seen[rec.DatasetID.String()] = true
			ids = append(ids, rec.DatasetID)
		}
	}

	confirmed, err := s.db.FileRecord.Query().
		Where(filerecord.DatasetIDIn(ids...), filerecord.Exists(true)).
		WithRepository().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transfer sources: %w", err)
	}

	sources := make(map[string][]*generated.FileRecord)
	for _, rec := range confirmed {
		key := rec.DatasetID.String()
		sources[key] = append(sources[key], rec)
	}
	return sources, nil
}

// pickSource chooses a confirmed copy to transfer from, preferring an
// authoritative repository over a personal one. The destination's own
// repository is never a source.
func pickSource(candidates []*generated.FileRecord, dst *generated.FileRecord) *generated.FileRecord {
	var best *generated.FileRecord
	for _, c := range candidates {
		if c.RepositoryID == dst.RepositoryID {
			continue
		}
		if best == nil || (best.Edges.Repository.IsPersonal && !c.Edges.Repository.IsPersonal) {
			best = c
		}
	}
	return best
}

func (s *Scheduler) classify(ds *generated.Dataset) SizeClass {
	// Datasets with no declared size stay in the small class until a
	// reconciliation pass observes the real size.
	if ds.FileSize != nil && *ds.FileSize >= s.threshold {
		return ClassLarge
	}
	return ClassSmall
}

// submit hands each planned job to the backend and marks its records
// pending. A job whose endpoints are unreachable is skipped whole and
// retried on a later pass.
func (s *Scheduler) submit(ctx context.Context, plan *Plan) {
	reachable := make(map[string]bool)
	check := func(endpoint string) bool {
		if ok, checked := reachable[endpoint]; checked {
			return ok
		}
		status, err := s.backend.EndpointStatus(ctx, endpoint)
		ok := err == nil && status.Reachable()
		reachable[endpoint] = ok
		if !ok {
			s.logger.Warn().Str("endpoint", endpoint).Msg("endpoint not connected, deferring its jobs")
			plan.SkippedEndpoints = append(plan.SkippedEndpoints, endpoint)
			s.publish(events.Event{Type: events.EndpointUnreachable, Subject: endpoint})
		}
		return ok
	}

	for i := range plan.Jobs {
		job := &plan.Jobs[i]
		if !check(job.SrcEndpoint) || !check(job.DstEndpoint) {
			continue
		}

		pairs := make([]backend.TransferPair, len(job.Transfers))
		recordIDs := make([]ulid.ULID, len(job.Transfers))
		for j, tr := range job.Transfers {
			pairs[j] = tr.Pair
			recordIDs[j] = tr.RecordID
		}

		jobID, err := s.backend.SubmitTransfer(ctx, job.SrcEndpoint, job.DstEndpoint, pairs, job.Label)
		if err != nil {
			s.logger.Error().Err(err).Str("label", job.Label).Msg("transfer submission failed")
			continue
		}
		job.SubmittedID = jobID

		if _, err := s.db.FileRecord.Update().
			Where(filerecord.IDIn(recordIDs...)).
			SetStatus(filerecord.StatusPending).
			Save(ctx); err != nil {
			s.logger.Error().Err(err).Str("label", job.Label).Msg("failed to mark records pending")
			continue
		}

		s.logger.Info().
			Str("label", job.Label).
			Str("class", string(job.Class)).
			Str("job_id", jobID).
			Int("files", len(pairs)).
			Msg("transfer job submitted")
		s.publish(events.Event{
			Type: events.TransferSubmitted,
			Data: map[string]any{
				"label":  job.Label,
				"class":  string(job.Class),
				"job_id": jobID,
				"files":  len(pairs),
			},
		})
	}
}

// markSourceless flags records no confirmed copy can satisfy so later
// passes skip them until an upload appears.
func (s *Scheduler) markSourceless(ctx context.Context, recs []*generated.FileRecord) {
	for _, rec := range recs {
		if err := s.db.FileRecord.UpdateOne(rec).SetStatus(filerecord.StatusMissing).Exec(ctx); err != nil {
			s.logger.Error().Err(err).Str("record", rec.ID.String()).Msg("failed to mark record missing")
			continue
		}
		s.logger.Warn().
			Str("dataset", rec.Edges.Dataset.Name).
			Str("repository", rec.Edges.Repository.Name).
			Msg("no confirmed copy available to source this record")
		s.publish(events.Event{
			Type:    events.SourceMissing,
			Subject: rec.Edges.Dataset,
			Data:    map[string]any{"repository": rec.Edges.Repository.Name},
		})
	}
}

func (s *Scheduler) publish(ev events.Event) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}
