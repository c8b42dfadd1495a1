package node

import (
	"time"

	"github.com/google/uuid"
)

// Message roles. Summary-role messages are synthetic audit entries appended
// by the merge engine, not conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSummary   = "summary"
)

// Message is one entry in a node's append-only message log. Messages are
// immutable once created and strictly ordered by Timestamp within a node.
type Message struct {
	ID         uuid.UUID      `json:"message_id"`
	NodeID     uuid.UUID      `json:"node_id"`
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	TokenCount *int           `json:"token_count,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// IsConversational reports whether the message is a user or assistant turn,
// as opposed to a synthetic summary entry.
func (m *Message) IsConversational() bool {
	return m.Role == RoleUser || m.Role == RoleAssistant
}
