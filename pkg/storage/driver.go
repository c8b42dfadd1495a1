// Package storage defines the durable-store contract for the fractal
// workspace. A Driver persists nodes, their message logs, versioned
// summaries, knowledge-graph edges, projects, and the audit event log.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
)

// NodeStore covers CRUD and traversal over the node tree.
type NodeStore interface {
	// CreateNode persists a new node. The caller fills ID, position, and the
	// inherited-context snapshot before the call.
	CreateNode(ctx context.Context, n *node.Node) error

	// Node retrieves a node by id regardless of status. Deleted nodes stay
	// readable by direct lookup; only ListTree filters them.
	Node(ctx context.Context, id uuid.UUID) (*node.Node, error)

	// SetNodeStatus updates the lifecycle status of a node.
	SetNodeStatus(ctx context.Context, id uuid.UUID, status node.Status) error

	// Lineage returns [self, parent, grandparent, ..., root]. The walk stops
	// at the first missing or nil parent.
	Lineage(ctx context.Context, id uuid.UUID) ([]*node.Node, error)

	// Descendants returns the flat set of all transitive children. No
	// ordering guarantee. Implementations may replace the naive recursive
	// walk with a recursive-closure query as long as the returned set is
	// identical.
	Descendants(ctx context.Context, id uuid.UUID) ([]*node.Node, error)

	// Children returns the direct children of a node.
	Children(ctx context.Context, parentID uuid.UUID) ([]*node.Node, error)

	// CountChildren returns the number of direct children of a node.
	CountChildren(ctx context.Context, parentID uuid.UUID) (int, error)

	// ListTree returns all nodes with status != deleted, optionally scoped
	// to a project.
	ListTree(ctx context.Context, projectID *uuid.UUID) ([]*node.Node, error)
}

// MessageStore covers the append-only per-node message log.
type MessageStore interface {
	// CreateMessage appends a message to its node's log.
	CreateMessage(ctx context.Context, m *node.Message) error

	// Messages returns a node's full log in ascending timestamp order.
	Messages(ctx context.Context, nodeID uuid.UUID) ([]*node.Message, error)

	// LastMessages returns the most recent n messages in ascending order.
	LastMessages(ctx context.Context, nodeID uuid.UUID, n int) ([]*node.Message, error)
}

// SummaryStore covers versioned summaries with a single-latest invariant.
type SummaryStore interface {
	// CreateSummary stores a new latest summary, flipping the prior latest
	// to false within the same transaction.
	CreateSummary(ctx context.Context, s *node.Summary) error

	// LatestSummary returns the node's latest summary, or nil when the node
	// has never been summarized.
	LatestSummary(ctx context.Context, nodeID uuid.UUID) (*node.Summary, error)
}

// EdgeStore covers the knowledge-graph edge set.
type EdgeStore interface {
	// InsertEdge persists a new edge. Callers are expected to have checked
	// the dedup key via FindEdge; storage-level unique constraints remain
	// the real enforcement under concurrency.
	InsertEdge(ctx context.Context, e *node.Edge) error

	// FindEdge returns the live edge matching (from, to, relationType,
	// sourceNode), or nil when none exists.
	FindEdge(ctx context.Context, from, to, relationType string, sourceNode uuid.UUID) (*node.Edge, error)

	// NodeEdges returns all live edges owned by a node.
	NodeEdges(ctx context.Context, nodeID uuid.UUID) ([]*node.Edge, error)

	// EdgesForNodes returns all live edges owned by any of the given nodes.
	EdgesForNodes(ctx context.Context, nodeIDs []uuid.UUID) ([]*node.Edge, error)

	// UpdateEdge overwrites an edge's confidence and metadata.
	UpdateEdge(ctx context.Context, id uuid.UUID, confidence float64, metadata map[string]any) error

	// SoftDeleteEdges stamps deleted_at on every edge owned by the node and
	// returns the number of edges affected.
	SoftDeleteEdges(ctx context.Context, nodeID uuid.UUID) (int, error)
}

// ProjectStore covers project CRUD.
type ProjectStore interface {
	CreateProject(ctx context.Context, p *node.Project) error
	Project(ctx context.Context, id uuid.UUID) (*node.Project, error)
	Projects(ctx context.Context) ([]*node.Project, error)
	UpdateProject(ctx context.Context, p *node.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	CountProjectNodes(ctx context.Context, id uuid.UUID) (int, error)
}

// EventStore covers the append-only audit log.
type EventStore interface {
	InsertEvent(ctx context.Context, e *node.Event) error
}

// Driver is the full storage contract. Backends: inmemory, sqlite, postgres.
type Driver interface {
	NodeStore
	MessageStore
	SummaryStore
	EdgeStore
	ProjectStore
	EventStore

	// Close closes the store and releases any resources.
	Close() error
}
