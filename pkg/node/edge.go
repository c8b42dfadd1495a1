package node

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRelationType is used when an extracted relation carries no type.
const DefaultRelationType = "RELATED"

// MergedFromKey is the edge metadata key recording merge provenance: the id
// of the source node whose edge set was folded into the owner's.
const MergedFromKey = "merged_from"

// Edge is a directed, typed, confidence-weighted relation between two named
// entities, scoped to the node that produced it. Edges are soft-deleted
// (DeletedAt stamped) rather than removed, preserving merge provenance.
//
// Uniqueness invariant: among live edges there is at most one
// (FromEntity, ToEntity, RelationType, SourceNode) combination.
type Edge struct {
	ID           uuid.UUID      `json:"edge_id"`
	FromEntity   string         `json:"from_entity"`
	ToEntity     string         `json:"to_entity"`
	RelationType string         `json:"relation_type"`
	SourceNode   uuid.UUID      `json:"source_node"`
	Confidence   float64        `json:"confidence"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty"`
}

// Live reports whether the edge has not been soft-deleted.
func (e *Edge) Live() bool {
	return e.DeletedAt == nil
}

// SameKey reports whether other matches this edge's dedup key ignoring the
// owning node.
func (e *Edge) SameKey(from, to, relationType string) bool {
	return e.FromEntity == from && e.ToEntity == to && e.RelationType == relationType
}
