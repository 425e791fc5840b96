package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/event"
)

// Controller persists events to the database for history tracking.
// It communicates only via the database and event bus, with no direct
// dependencies on other domain packages.
//
// The Controller is responsible for:
// - Subscribing to all events on the bus
// - Persisting events to the activity log in the database
// - Generating human-readable messages for events.
type Controller struct {
	eventBus *Bus
	db       *generated.Client
	logger   zerolog.Logger

	subscription Subscription
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// ControllerOption is a functional option for configuring the Controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger for the controller.
func WithControllerLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a new events Controller.
func NewController(eventBus *Bus, db *generated.Client, opts ...ControllerOption) *Controller {
	c := &Controller{
		eventBus: eventBus,
		db:       db,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins processing all events for persistence.
func (c *Controller) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	// Subscribe to all events (no filter)
	c.subscription = c.eventBus.Subscribe()

	c.wg.Add(1)
	go c.run(ctx)

	c.logger.Info().Msg("events controller started")
	return nil
}

// Stop stops the controller and waits for it to finish.
func (c *Controller) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}

	c.eventBus.Unsubscribe(c.subscription)
	c.wg.Wait()

	c.logger.Info().Msg("events controller stopped")
	return nil
}

func (c *Controller) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-c.subscription:
			if !ok {
				return
			}
			c.recordEvent(ctx, ev)
		}
	}
}

func (c *Controller) recordEvent(ctx context.Context, ev Event) {
	// Generate a human-readable message
	message := c.generateMessage(ev)

	timestamp := ev.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	// Serialize event data to JSON for details field
	var details string
	if len(ev.Data) > 0 {
		if jsonBytes, err := json.Marshal(ev.Data); err == nil {
			details = string(jsonBytes)
		}
	}

	// Extract subject type and ID directly from Subject
	subjectType, subjectID := extractSubject(ev.Subject)

	// Get repository name from Data if present
	repoName, _ := ev.Data["repository"].(string)

	create := c.db.Event.Create().
		SetType(string(ev.Type)).
		SetMessage(message).
		SetSubjectType(subjectType).
		SetRepositoryName(repoName).
		SetDetails(details).
		SetTimestamp(timestamp).
		SetCreatedAt(time.Now())

	if subjectID != "" {
		create.SetSubjectID(subjectID)
	}

	if _, err := create.Save(ctx); err != nil {
		c.logger.Error().Err(err).
			Str("event_type", string(ev.Type)).
			Msg("failed to record event")
		return
	}

	c.logger.Debug().
		Str("event_type", string(ev.Type)).
		Str("subject_type", string(subjectType)).
		Msg("recorded event")
}

// extractSubject extracts the subject type and ID from an event's Subject field.
func extractSubject(subject any) (event.SubjectType, string) {
	switch s := subject.(type) {
	case *generated.Dataset:
		if s != nil {
			return event.SubjectTypeDataset, s.ID.String()
		}
	case *generated.Repository:
		if s != nil {
			return event.SubjectTypeRepository, s.ID.String()
		}
	case string:
		// Endpoint ids are plain strings
		if s != "" {
			return event.SubjectTypeEndpoint, s
		}
	}

	return event.SubjectTypeSystem, ""
}

// getSubjectName extracts a name from the event subject.
func getSubjectName(subject any) string {
	switch s := subject.(type) {
	case *generated.Dataset:
		if s != nil {
			return s.Name
		}
	case *generated.Repository:
		if s != nil {
			return s.Name
		}
	case string:
		return s
	}
	return ""
}

func (c *Controller) generateMessage(ev Event) string {
	name := getSubjectName(ev.Subject)
	repo, _ := ev.Data["repository"].(string)

	switch ev.Type {
	case SystemStarted:
		return "System started"
	case DatasetRegistered:
		return fmt.Sprintf("Registered: %s", name)
	case DatasetPatched:
		return fmt.Sprintf("Patched: %s", name)
	case RecordConfirmed:
		return fmt.Sprintf("Confirmed on %s: %s", repo, name)
	case RecordVanished:
		return fmt.Sprintf("Vanished from %s: %s", repo, name)
	case SizeCorrected:
		return fmt.Sprintf("Size corrected: %s", name)
	case TransferSubmitted:
		label, _ := ev.Data["label"].(string)
		return fmt.Sprintf("Transfer submitted: %s", label)
	case SourceMissing:
		return fmt.Sprintf("No source copy found: %s", name)
	case RecordRetired:
		return fmt.Sprintf("Local copy retired from %s: %s", repo, name)
	case DatasetPurged:
		return fmt.Sprintf("Purged: %s", name)
	case EndpointUnreachable:
		return fmt.Sprintf("Endpoint unreachable: %s", name)
	case PassCompleted:
		pass, _ := ev.Data["pass"].(string)
		return fmt.Sprintf("Pass completed: %s", pass)
	default:
		return fmt.Sprintf("Event: %s", ev.Type)
	}
}
