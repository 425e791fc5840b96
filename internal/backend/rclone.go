package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log" //nolint:depguard // needed to suppress rclone's internal error logging during shutdown
	"path"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rclone/rclone/fs"
	"github.com/rclone/rclone/fs/operations"
	"github.com/rs/zerolog"

	// Import backends we need.
	_ "github.com/rclone/rclone/backend/local"
	_ "github.com/rclone/rclone/backend/sftp"
)

// rcloneGlobalsOnce ensures global rclone configuration is only set once.
// This prevents race conditions when multiple clients are created concurrently.
//
//nolint:gochecknoglobals // sync primitives for thread-safe rclone initialization
var rcloneGlobalsOnce sync.Once

// rcloneNewFsMu serializes fs.NewFs calls to work around race conditions in
// rclone's config loading (github.com/rclone/rclone/issues/8666).
//
//nolint:gochecknoglobals // sync primitives for thread-safe rclone initialization
var rcloneNewFsMu sync.Mutex

// rcloneClient implements Client using rclone remotes.
// It is private and only exposed via the Client interface.
type rcloneClient struct {
	remotes map[string]string // endpoint id -> rclone remote string
	logger  zerolog.Logger

	// Cached filesystems to reuse connections per endpoint
	fsMu    sync.Mutex
	fsCache map[string]fs.Fs
}

// setLogger implements configurable for shared options.
func (c *rcloneClient) setLogger(logger zerolog.Logger) {
	c.logger = logger
}

// NewRclone creates a new rclone storage client and returns it as Client.
// The remotes map binds each repository endpoint id to an rclone remote
// string: a plain path for node-local storage, or a connection string such
// as ":sftp,host=...,user=...,key_file=...:/" for remote agents.
func NewRclone(remotes map[string]string, options ...Option) Client {
	c := &rcloneClient{
		remotes: remotes,
		logger:  zerolog.Nop(),
		fsCache: make(map[string]fs.Fs),
	}

	for _, opt := range options {
		opt(c)
	}

	c.configureGlobals()

	return c
}

// configureGlobals sets up global rclone configuration once.
func (c *rcloneClient) configureGlobals() {
	rcloneGlobalsOnce.Do(func() {
		ci := fs.GetConfig(context.Background())

		// One operation at a time per submitted job; the engine batches
		// and orders work itself.
		ci.Transfers = 1
		ci.Checkers = 1

		// Reduce verbosity
		ci.LogLevel = fs.LogLevelError
	})
}

// Name returns the name of the storage backend.
func (c *rcloneClient) Name() string {
	return string(KindRclone)
}

// PrepareShutdown suppresses rclone error logging during shutdown.
func (c *rcloneClient) PrepareShutdown() {
	log.SetOutput(io.Discard)

	ci := fs.GetConfig(context.Background())
	ci.LogLevel = fs.LogLevelEmergency
}

// Close shuts down cached filesystems.
func (c *rcloneClient) Close() error {
	c.fsMu.Lock()
	defer c.fsMu.Unlock()

	for _, f := range c.fsCache {
		if shutdowner, ok := f.(fs.Shutdowner); ok {
			_ = shutdowner.Shutdown(context.Background())
		}
	}
	c.fsCache = make(map[string]fs.Fs)
	return nil
}

// getFs returns a cached filesystem for an endpoint or creates a new one.
func (c *rcloneClient) getFs(ctx context.Context, endpointID string) (fs.Fs, error) {
	remote, ok := c.remotes[endpointID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpointID)
	}

	c.fsMu.Lock()
	defer c.fsMu.Unlock()

	if f, ok := c.fsCache[endpointID]; ok {
		return f, nil
	}

	// Serialize fs.NewFs calls to work around race conditions in rclone's
	// config loading.
	rcloneNewFsMu.Lock()
	f, err := fs.NewFs(ctx, remote)
	rcloneNewFsMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem for endpoint %q: %w", endpointID, err)
	}

	c.logger.Debug().
		Str("endpoint", endpointID).
		Str("remote", remote).
		Msg("rclone filesystem created")

	c.fsCache[endpointID] = f
	return f, nil
}

// relative strips the leading slash from an absolute engine path; rclone
// filesystems are rooted at the endpoint's remote string.
func relative(p string) string {
	return strings.TrimPrefix(path.Clean(p), "/")
}

// ListDirectory returns the entries of one remote directory.
func (c *rcloneClient) ListDirectory(ctx context.Context, endpointID, dir string) ([]Entry, error) {
	f, err := c.getFs(ctx, endpointID)
	if err != nil {
		return nil, err
	}

	listed, err := f.List(ctx, relative(dir))
	if err != nil {
		if errors.Is(err, fs.ErrorDirNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("failed to list %s on %q: %w", dir, endpointID, err)
	}

	entries := make([]Entry, 0, len(listed))
	for _, e := range listed {
		entry := Entry{
			Name: path.Base(e.Remote()),
			Size: e.Size(),
		}
		if _, isDir := e.(fs.Directory); isDir {
			entry.IsDir = true
			entry.Size = 0
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SubmitTransfer copies every pair from the source endpoint to the
// destination endpoint as one labelled job.
func (c *rcloneClient) SubmitTransfer(
	ctx context.Context,
	srcEndpoint, dstEndpoint string,
	pairs []TransferPair,
	label string,
) (string, error) {
	srcFs, err := c.getFs(ctx, srcEndpoint)
	if err != nil {
		return "", err
	}
	dstFs, err := c.getFs(ctx, dstEndpoint)
	if err != nil {
		return "", err
	}

	jobID := ulid.Make().String()

	c.logger.Info().
		Str("job", jobID).
		Str("label", label).
		Int("files", len(pairs)).
		Msg("starting transfer job")

	var errs []error
	for _, pair := range pairs {
		srcObj, objErr := srcFs.NewObject(ctx, relative(pair.SourcePath))
		if objErr != nil {
			if errors.Is(objErr, fs.ErrorObjectNotFound) {
				objErr = fmt.Errorf("%w: %s", ErrNotFound, pair.SourcePath)
			}
			errs = append(errs, fmt.Errorf("source %s: %w", pair.SourcePath, objErr))
			continue
		}

		if _, copyErr := operations.Copy(ctx, dstFs, nil, relative(pair.DestPath), srcObj); copyErr != nil {
			errs = append(errs, fmt.Errorf("copy %s to %s: %w", pair.SourcePath, pair.DestPath, copyErr))
		}
	}

	if len(errs) > 0 {
		return jobID, fmt.Errorf("transfer job %s (%s): %w", jobID, label, errors.Join(errs...))
	}

	c.logger.Info().
		Str("job", jobID).
		Str("label", label).
		Int("files", len(pairs)).
		Msg("transfer job complete")

	return jobID, nil
}

// SubmitDelete removes every path on the endpoint as one job. Paths that
// are already gone are skipped.
func (c *rcloneClient) SubmitDelete(ctx context.Context, endpointID string, paths []string) (string, error) {
	f, err := c.getFs(ctx, endpointID)
	if err != nil {
		return "", err
	}

	jobID := ulid.Make().String()

	var errs []error
	for _, p := range paths {
		obj, objErr := f.NewObject(ctx, relative(p))
		if objErr != nil {
			if errors.Is(objErr, fs.ErrorObjectNotFound) {
				c.logger.Debug().
					Str("endpoint", endpointID).
					Str("path", p).
					Msg("path already absent, skipping delete")
				continue
			}
			errs = append(errs, fmt.Errorf("stat %s: %w", p, objErr))
			continue
		}

		if delErr := operations.DeleteFile(ctx, obj); delErr != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", p, delErr))
		}
	}

	if len(errs) > 0 {
		return jobID, fmt.Errorf("delete job %s on %q: %w", jobID, endpointID, errors.Join(errs...))
	}

	c.logger.Info().
		Str("job", jobID).
		Str("endpoint", endpointID).
		Int("files", len(paths)).
		Msg("delete job complete")

	return jobID, nil
}

// EndpointStatus reports reachability. Plain-path remotes are always-on
// local storage, for which connectivity is not applicable.
func (c *rcloneClient) EndpointStatus(ctx context.Context, endpointID string) (Status, error) {
	remote, ok := c.remotes[endpointID]
	if !ok {
		return Status{}, fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpointID)
	}

	if !strings.HasPrefix(remote, ":") && !strings.Contains(remote, ":") {
		return Status{}, nil
	}

	connected := true
	f, err := c.getFs(ctx, endpointID)
	if err == nil {
		_, err = f.List(ctx, "")
	}
	if err != nil && !errors.Is(err, fs.ErrorDirNotFound) {
		connected = false
		c.logger.Warn().
			Err(err).
			Str("endpoint", endpointID).
			Msg("endpoint unreachable")
	}

	return Status{Connected: &connected}, nil
}
