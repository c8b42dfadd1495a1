// Package graph maintains the per-node knowledge graph: ingestion of
// extracted relations, lineage-wide views, and the merge fold.
package graph

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
)

// Service provides knowledge-graph operations over a storage driver.
type Service struct {
	store  storage.Driver
	logger *zap.Logger
}

// NewService creates a graph service.
func NewService(store storage.Driver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// StoreEdges ingests extracted relations for a node and returns the number
// of edges actually inserted. Relations are normalized before storage:
// from_entity/source and to_entity/target aliases are accepted, a missing
// relation_type/type defaults to RELATED, and a missing confidence defaults
// to 1.0. Relations with an empty endpoint are skipped, as are relations
// whose dedup key already has a live edge on this node.
func (s *Service) StoreEdges(ctx context.Context, nodeID uuid.UUID, relations []map[string]any) (int, error) {
	inserted := 0

	for _, rel := range relations {
		from := stringField(rel, "from_entity", "source")
		to := stringField(rel, "to_entity", "target")
		if from == "" || to == "" {
			s.logger.Debug("skipping relation with empty endpoint",
				zap.String("node_id", nodeID.String()))
			continue
		}

		relationType := stringField(rel, "relation_type", "type")
		if relationType == "" {
			relationType = node.DefaultRelationType
		}

		confidence := floatField(rel, "confidence", 1.0)

		existing, err := s.store.FindEdge(ctx, from, to, relationType, nodeID)
		if err != nil {
			return inserted, err
		}
		if existing != nil {
			continue
		}

		edge := &node.Edge{
			ID:           uuid.New(),
			FromEntity:   from,
			ToEntity:     to,
			RelationType: relationType,
			SourceNode:   nodeID,
			Confidence:   confidence,
		}
		if err := s.store.InsertEdge(ctx, edge); err != nil {
			return inserted, err
		}
		inserted++
	}

	s.logger.Debug("stored extracted edges",
		zap.String("node_id", nodeID.String()),
		zap.Int("inserted", inserted),
		zap.Int("received", len(relations)))

	return inserted, nil
}

// NodeGraph returns a node's live edges.
func (s *Service) NodeGraph(ctx context.Context, nodeID uuid.UUID) ([]*node.Edge, error) {
	return s.store.NodeEdges(ctx, nodeID)
}

// OwnedEdge is an edge annotated with the title of the node that produced
// it, for lineage-wide graph views.
type OwnedEdge struct {
	*node.Edge
	OwnerTitle string `json:"owner_title"`
}

// LineageGraph returns the live edges of every node on the lineage
// [self, ..., root], each annotated with its owning node's title.
func (s *Service) LineageGraph(ctx context.Context, nodeID uuid.UUID) ([]*OwnedEdge, error) {
	lineage, err := s.store.Lineage(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(lineage))
	titles := make(map[uuid.UUID]string, len(lineage))
	for i, n := range lineage {
		ids[i] = n.ID
		titles[n.ID] = n.Title
	}

	edges, err := s.store.EdgesForNodes(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*OwnedEdge, len(edges))
	for i, e := range edges {
		out[i] = &OwnedEdge{Edge: e, OwnerTitle: titles[e.SourceNode]}
	}
	return out, nil
}

// MergeGraphs folds the source node's live edges into the target's edge set
// and returns the number of edges processed. A source edge whose
// (from, to, relation_type) key already exists live on the target updates
// the target edge to the maximum of the two confidences; a new key inserts a
// fresh edge owned by the target. Either way the absorbed edge's metadata
// records the source node under the merged_from key. Source edges are left
// untouched.
func (s *Service) MergeGraphs(ctx context.Context, sourceID, targetID uuid.UUID) (int, error) {
	sourceEdges, err := s.store.NodeEdges(ctx, sourceID)
	if err != nil {
		return 0, err
	}

	folded := 0
	for _, se := range sourceEdges {
		existing, err := s.store.FindEdge(ctx, se.FromEntity, se.ToEntity, se.RelationType, targetID)
		if err != nil {
			return folded, err
		}

		if existing != nil {
			confidence := existing.Confidence
			if se.Confidence > confidence {
				confidence = se.Confidence
			}
			metadata := cloneMetadata(existing.Metadata)
			metadata[node.MergedFromKey] = sourceID.String()
			if err := s.store.UpdateEdge(ctx, existing.ID, confidence, metadata); err != nil {
				return folded, err
			}
		} else {
			if err := s.store.InsertEdge(ctx, &node.Edge{
				ID:           uuid.New(),
				FromEntity:   se.FromEntity,
				ToEntity:     se.ToEntity,
				RelationType: se.RelationType,
				SourceNode:   targetID,
				Confidence:   se.Confidence,
				Metadata:     map[string]any{node.MergedFromKey: sourceID.String()},
			}); err != nil {
				return folded, err
			}
		}
		folded++
	}

	s.logger.Info("merged graphs",
		zap.String("source_id", sourceID.String()),
		zap.String("target_id", targetID.String()),
		zap.Int("folded", folded))

	return folded, nil
}

// SoftDelete marks all of a node's edges deleted and returns the count.
func (s *Service) SoftDelete(ctx context.Context, nodeID uuid.UUID) (int, error) {
	return s.store.SoftDeleteEdges(ctx, nodeID)
}

func cloneMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func stringField(rel map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := rel[key]; ok {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func floatField(rel map[string]any, key string, fallback float64) float64 {
	v, ok := rel[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return fallback
		}
		return f
	default:
		return fallback
	}
}
