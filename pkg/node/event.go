package node

import (
	"time"

	"github.com/google/uuid"
)

// Domain event types recorded to the audit log and mirrored to the
// eventstream publisher.
const (
	EventNodeCreated    = "NODE_CREATED"
	EventMessageAdded   = "MESSAGE_ADDED"
	EventSummaryUpdated = "SUMMARY_UPDATED"
	EventGraphUpdated   = "GRAPH_UPDATED"
	EventNodeMerged     = "NODE_MERGED"
	EventNodeDeleted    = "NODE_DELETED"
	EventNodeCopied     = "NODE_COPIED"
)

// Event is one append-only audit-log entry for a node.
type Event struct {
	ID        uuid.UUID      `json:"event_id"`
	NodeID    uuid.UUID      `json:"node_id"`
	Type      string         `json:"event_type"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"user_id,omitempty"`
}
