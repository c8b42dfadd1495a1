// Package node defines the domain types for the fractal workspace: the
// branching conversation node tree and everything a node owns (messages,
// summaries, knowledge-graph edges, events).
package node

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of conversation a node hosts.
type Type string

const (
	// TypeStandard is a regular conversation node.
	TypeStandard Type = "standard"

	// TypeExploration marks a node served by the exploration model when one
	// is configured. Falls back to the main reasoner otherwise.
	TypeExploration Type = "exploration"
)

// Status is the lifecycle state of a node.
//
// Transitions: active -> frozen (node was the source of a merge) and
// active -> deleted (soft delete). Both are terminal.
type Status string

const (
	StatusActive  Status = "active"
	StatusFrozen  Status = "frozen"
	StatusDeleted Status = "deleted"
)

// Valid reports whether s is a known node type.
func (t Type) Valid() bool {
	return t == TypeStandard || t == TypeExploration
}

// Valid reports whether s is a known lifecycle status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFrozen || s == StatusDeleted
}

// Position is the canvas layout position of a node. Layout only, no
// invariants attach to it.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SiblingSpacing is the horizontal pixel offset applied per existing sibling
// when a child node's position is computed.
const SiblingSpacing = 200.0

// ChildOffsetY is the vertical pixel offset of a child below its parent.
const ChildOffsetY = 200.0

// ChildPosition computes the layout position for a new child of parent given
// the number of existing siblings at creation time. The position is fixed at
// creation; later sibling deletions do not reflow it.
func ChildPosition(parent Position, siblingCount int) Position {
	return Position{
		X: parent.X + float64(siblingCount)*SiblingSpacing,
		Y: parent.Y + ChildOffsetY,
	}
}

// Node is a unit of branching conversation. Nodes form a tree via ParentID;
// parents always pre-exist their children, so the ancestor chain is acyclic
// by construction.
type Node struct {
	ID        uuid.UUID         `json:"node_id"`
	ProjectID *uuid.UUID        `json:"project_id,omitempty"`
	ParentID  *uuid.UUID        `json:"parent_id,omitempty"`
	Title     string            `json:"title"`
	Type      Type              `json:"node_type"`
	Status    Status            `json:"status"`
	Position  Position          `json:"position"`
	Inherited *InheritedContext `json:"inherited_context,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	CreatedBy string            `json:"created_by,omitempty"`
	Metadata  map[string]any    `json:"metadata,omitempty"`
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == nil
}
