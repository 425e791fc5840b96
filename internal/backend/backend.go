// Package backend provides interfaces and implementations for remote
// storage backends used to list, move and delete physical dataset files.
package backend

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// configurable is implemented by all clients to support shared options.
type configurable interface {
	setLogger(zerolog.Logger)
}

// Option is a functional option for configuring backend clients.
type Option func(configurable)

// WithLogger sets the logger for any backend client.
func WithLogger(logger zerolog.Logger) Option {
	return func(c configurable) {
		c.setLogger(logger)
	}
}

// Kind represents a storage backend type.
type Kind string

const (
	// KindRclone uses rclone remotes for storage operations.
	KindRclone Kind = "rclone"
)

// Sentinel errors. Callers distinguish "the path does not exist" and "the
// endpoint is unreachable" from transient transport failures: the former two
// are never retried, the latter is.
var (
	// ErrNotFound indicates the listed or deleted path does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrNotConnected indicates the endpoint is not reachable.
	ErrNotConnected = errors.New("endpoint not connected")
	// ErrUnknownEndpoint indicates no remote is configured for the endpoint id.
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	Size  int64
	IsDir bool
}

// TransferPair is one source to destination move within a transfer job.
type TransferPair struct {
	SourcePath string
	DestPath   string
}

// Status reports endpoint connectivity. Connected is nil when the question
// does not apply to the endpoint (always-on storage); callers treat nil as
// connected.
type Status struct {
	Connected *bool
}

// Reachable reports whether work may be scheduled against the endpoint.
func (s Status) Reachable() bool {
	return s.Connected == nil || *s.Connected
}

// Client is the interface for storage backends.
type Client interface {
	// ListDirectory returns the entries of one remote directory.
	// Returns ErrNotFound if the directory does not exist and
	// ErrNotConnected if the endpoint is unreachable.
	ListDirectory(ctx context.Context, endpointID, dir string) ([]Entry, error)

	// SubmitTransfer submits one batch of file moves between two endpoints
	// and returns an opaque job id. Completion is not awaited by callers;
	// the reconciler confirms arrival by listing.
	SubmitTransfer(ctx context.Context, srcEndpoint, dstEndpoint string, pairs []TransferPair, label string) (string, error)

	// SubmitDelete submits one batch of physical deletions on an endpoint
	// and returns an opaque job id. Paths that are already gone are not
	// an error.
	SubmitDelete(ctx context.Context, endpointID string, paths []string) (string, error)

	// EndpointStatus reports whether the endpoint is reachable.
	EndpointStatus(ctx context.Context, endpointID string) (Status, error)

	// Name returns the name of the backend.
	Name() string

	// PrepareShutdown is called before context cancellation to allow the
	// backend to suppress expected error messages during graceful shutdown.
	PrepareShutdown()

	// Close releases any resources held by the client.
	Close() error
}
