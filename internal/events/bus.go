// Package events provides an in-process event bus for decoupled communication.
package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Type represents the type of event.
type Type string

// Event types for the replication pipeline.
const (
	// SystemStarted indicates the system has started.
	SystemStarted Type = "system.started"

	// DatasetRegistered indicates a dataset was announced and its file
	// records were created.
	DatasetRegistered Type = "dataset.registered"
	// DatasetPatched indicates an existing dataset was re-registered with
	// new content and its authoritative records were reset.
	DatasetPatched Type = "dataset.patched"

	// RecordConfirmed indicates the reconciler observed a file record's
	// copy on remote storage and marked it existing.
	RecordConfirmed Type = "record.confirmed"
	// RecordVanished indicates the reconciler found a previously-existing
	// personal copy gone and marked the record absent.
	RecordVanished Type = "record.vanished"
	// SizeCorrected indicates a dataset's declared size was corrected to
	// the observed remote size.
	SizeCorrected Type = "size.corrected"

	// TransferSubmitted indicates a transfer job was submitted to the
	// storage backend.
	TransferSubmitted Type = "transfer.submitted"
	// SourceMissing indicates no existing source copy could be found for a
	// dataset that should be transferred.
	SourceMissing Type = "source.missing"

	// RecordRetired indicates a redundant personal copy was verified and
	// deleted.
	RecordRetired Type = "record.retired"
	// DatasetPurged indicates a dataset's physical files and metadata rows
	// were removed.
	DatasetPurged Type = "dataset.purged"

	// EndpointUnreachable indicates an endpoint's work was skipped for a
	// pass because it was not connected.
	EndpointUnreachable Type = "endpoint.unreachable"

	// PassCompleted indicates a reconcile or transfer pass finished.
	PassCompleted Type = "pass.completed"
)

// Event represents an event in the system.
// Subject should be the primary entity the event is about (e.g.
// *generated.Dataset or *generated.Repository). Data contains additional
// event-specific information not available on the Subject.
type Event struct {
	Type      Type           `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Subject   any            `json:"-"` // Primary entity: *generated.Dataset, *generated.Repository, or nil
	Data      map[string]any `json:"data,omitempty"`
}

// Subscription is a channel that receives events.
type Subscription <-chan Event

// subscriberEntry tracks a subscriber and its filter.
type subscriberEntry struct {
	ch     chan Event
	types  map[Type]bool // nil means all events
	closed bool
}

// Bus is an in-process event bus that supports pub/sub.
type Bus struct {
	subscribers []*subscriberEntry
	mu          sync.RWMutex
	logger      zerolog.Logger
	bufferSize  int
}

// Option is a functional option for configuring the bus.
type Option func(*Bus)

// WithLogger sets the logger for the bus.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bus) {
		b.logger = logger
	}
}

// WithBufferSize sets the channel buffer size for subscribers.
func WithBufferSize(size int) Option {
	return func(b *Bus) {
		b.bufferSize = size
	}
}

// Default buffer size for subscriber channels.
const defaultBufferSize = 100

// New creates a new event bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		logger:     zerolog.Nop(),
		bufferSize: defaultBufferSize,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Subscribe creates a subscription for specific event types.
// If no types are provided, the subscription receives all events.
func (b *Bus) Subscribe(types ...Type) Subscription {
	ch := make(chan Event, b.bufferSize)

	entry := &subscriberEntry{
		ch: ch,
	}

	if len(types) > 0 {
		entry.types = make(map[Type]bool, len(types))
		for _, t := range types {
			entry.types[t] = true
		}
	}

	b.mu.Lock()
	b.subscribers = append(b.subscribers, entry)
	b.mu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, entry := range b.subscribers {
		if entry.ch == sub {
			if !entry.closed {
				close(entry.ch)
				entry.closed = true
			}
			// Remove from slice
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all matching subscribers.
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, entry := range b.subscribers {
		if entry.closed {
			continue
		}

		// Check if subscriber wants this event type
		if entry.types != nil && !entry.types[event.Type] {
			continue
		}

		// Non-blocking send - drop if buffer full
		select {
		case entry.ch <- event:
		default:
			b.logger.Warn().
				Str("type", string(event.Type)).
				Msg("event dropped - subscriber buffer full")
		}
	}

	b.logger.Debug().
		Str("type", string(event.Type)).
		Msg("event published")
}

// Close closes all subscriber channels and cleans up.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, entry := range b.subscribers {
		if !entry.closed {
			close(entry.ch)
			entry.closed = true
		}
	}
	b.subscribers = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
