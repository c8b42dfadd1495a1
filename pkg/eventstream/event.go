package eventstream

import (
	"time"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeNodeEvent is emitted for every node lifecycle event recorded
	// to the audit log.
	EventTypeNodeEvent = "fractal.node.event"
)

// NodeEventEnvelope is a transport-neutral payload wrapping one domain event
// for downstream consumers.
type NodeEventEnvelope struct {
	SchemaVersion int         `json:"schema_version"`
	EventType     string      `json:"event_type"`
	EventID       string      `json:"event_id"`
	EmittedAt     time.Time   `json:"emitted_at"`
	Source        EventSource `json:"source"`
	Event         node.Event  `json:"event"`
}

// EventSource identifies where the event originated.
type EventSource struct {
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Service   string     `json:"service"`
}

// NewEnvelope wraps a domain event for publishing.
func NewEnvelope(e node.Event, projectID *uuid.UUID) *NodeEventEnvelope {
	return &NodeEventEnvelope{
		SchemaVersion: SchemaVersionV1,
		EventType:     EventTypeNodeEvent,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		Source: EventSource{
			ProjectID: projectID,
			Service:   "fractal",
		},
		Event: e,
	}
}
