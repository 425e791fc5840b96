// Package timeline keeps a bounded in-memory feed of recent activity for
// the API's activity endpoints.
package timeline

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// EntryType classifies a timeline entry.
type EntryType string

// Entry types for the timeline.
const (
	EntrySystemStarted  EntryType = "system_started"
	EntryRegistered     EntryType = "registered"
	EntryPatched        EntryType = "patched"
	EntryConfirmed      EntryType = "confirmed"
	EntryVanished       EntryType = "vanished"
	EntrySizeCorrected  EntryType = "size_corrected"
	EntryTransferQueued EntryType = "transfer_queued"
	EntrySourceMissing  EntryType = "source_missing"
	EntryRetired        EntryType = "retired"
	EntryPurged         EntryType = "purged"
	EntryUnreachable    EntryType = "endpoint_unreachable"
	EntryPassCompleted  EntryType = "pass_completed"
	EntryError          EntryType = "error"
)

// Entry is a single piece of recorded activity.
type Entry struct {
	ID         string         `json:"id"`
	Type       EntryType      `json:"type"`
	Timestamp  time.Time      `json:"timestamp"`
	Message    string         `json:"message"`
	DatasetID  string         `json:"dataset_id,omitempty"`
	Dataset    string         `json:"dataset,omitempty"`
	Repository string         `json:"repository,omitempty"`
	Endpoint   string         `json:"endpoint,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// Recorder records and retrieves activity entries.
type Recorder interface {
	// Record adds a new entry.
	Record(entry Entry)

	// All returns all entries, newest first.
	All() []Entry

	// ByDataset returns entries for one dataset id, newest first.
	ByDataset(datasetID string) []Entry

	// ByRepository returns entries for one repository, newest first.
	ByRepository(name string) []Entry

	// ByEndpoint returns entries for one endpoint, newest first.
	ByEndpoint(endpointID string) []Entry

	// Clear removes all entries for a dataset.
	Clear(datasetID string)
}

type recorder struct {
	entries    []Entry
	mu         sync.RWMutex
	logger     zerolog.Logger
	maxEntries int
}

// Option is a functional option for configuring the recorder.
type Option func(*recorder)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *recorder) {
		r.logger = logger
	}
}

// WithMaxEntries sets the number of entries retained before the oldest are
// dropped.
func WithMaxEntries(maxEntries int) Option {
	return func(r *recorder) {
		r.maxEntries = maxEntries
	}
}

const defaultMaxEntries = 10000

// NewRecorder creates a new in-memory activity recorder.
func NewRecorder(opts ...Option) Recorder {
	r := &recorder{
		entries:    make([]Entry, 0),
		logger:     zerolog.Nop(),
		maxEntries: defaultMaxEntries,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *recorder) Record(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	// Newest first.
	r.entries = append([]Entry{entry}, r.entries...)
	if len(r.entries) > r.maxEntries {
		r.entries = r.entries[:r.maxEntries]
	}

	r.logger.Debug().
		Str("id", entry.ID).
		Str("type", string(entry.Type)).
		Str("message", entry.Message).
		Msg("activity recorded")
}

func (r *recorder) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	return result
}

func (r *recorder) ByDataset(datasetID string) []Entry {
	return r.filter(func(e Entry) bool { return e.DatasetID == datasetID })
}

func (r *recorder) ByRepository(name string) []Entry {
	return r.filter(func(e Entry) bool { return e.Repository == name })
}

func (r *recorder) ByEndpoint(endpointID string) []Entry {
	return r.filter(func(e Entry) bool { return e.Endpoint == endpointID })
}

func (r *recorder) filter(keep func(Entry) bool) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Entry
	for _, e := range r.entries {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}

func (r *recorder) Clear(datasetID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []Entry
	for _, e := range r.entries {
		if e.DatasetID != datasetID {
			filtered = append(filtered, e)
		}
	}
	r.entries = filtered
}
