// Package workspace orchestrates the node tree: branching, chat, semantic
// compression, knowledge-graph extraction, merging, and deletion. All LLM
// calls happen outside storage writes so a slow or failed generation never
// holds a transaction open.
package workspace

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/eventstream"
	"github.com/fractalhq/fractal/pkg/eventstream/nop"
	"github.com/fractalhq/fractal/pkg/graph"
	"github.com/fractalhq/fractal/pkg/inherit"
	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
)

// Service is the workspace orchestrator.
type Service struct {
	store     storage.Driver
	llm       llm.Client
	builder   *inherit.Builder
	graph     *graph.Service
	publisher eventstream.Publisher
	logger    *zap.Logger
}

// NewService wires a workspace service. A nil publisher disables event
// streaming; a nil logger disables logging.
func NewService(store storage.Driver, client llm.Client, builder *inherit.Builder, graphSvc *graph.Service, publisher eventstream.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = nop.NewPublisher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		llm:       client,
		builder:   builder,
		graph:     graphSvc,
		publisher: publisher,
		logger:    logger,
	}
}

// Graph exposes the knowledge-graph service for read endpoints.
func (s *Service) Graph() *graph.Service {
	return s.graph
}

// Store exposes the underlying driver for read endpoints.
func (s *Service) Store() storage.Driver {
	return s.store
}

// CreateNodeRequest describes a new node.
type CreateNodeRequest struct {
	ProjectID *uuid.UUID
	ParentID  *uuid.UUID
	Title     string
	Type      node.Type
	CreatedBy string
}

// CreateNode creates a node, computing its canvas position from its siblings
// and freezing the inherited-context snapshot from its lineage. Root nodes
// sit at the origin with no snapshot.
func (s *Service) CreateNode(ctx context.Context, req CreateNodeRequest) (*node.Node, error) {
	nodeType := req.Type
	if nodeType == "" {
		nodeType = node.TypeStandard
	}
	if !nodeType.Valid() {
		return nil, &InvalidStateError{Status: node.Status(nodeType), Op: "create"}
	}

	n := &node.Node{
		ID:        uuid.New(),
		ProjectID: req.ProjectID,
		ParentID:  req.ParentID,
		Title:     req.Title,
		Type:      nodeType,
		Status:    node.StatusActive,
		CreatedAt: time.Now().UTC(),
		CreatedBy: req.CreatedBy,
	}

	if req.ParentID != nil {
		parent, err := s.store.Node(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.Status == node.StatusDeleted {
			return nil, &InvalidStateError{NodeID: parent.ID, Status: parent.Status, Op: "branch from"}
		}

		siblings, err := s.store.CountChildren(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		n.Position = node.ChildPosition(parent.Position, siblings)

		snapshot, err := s.builder.SnapshotParentContext(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		n.Inherited = snapshot

		if n.ProjectID == nil {
			n.ProjectID = parent.ProjectID
		}
	}

	if err := s.store.CreateNode(ctx, n); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, n, node.EventNodeCreated, map[string]any{
		"title":     n.Title,
		"node_type": string(n.Type),
	}, req.CreatedBy)

	s.logger.Info("created node",
		zap.String("node_id", n.ID.String()),
		zap.String("title", n.Title),
		zap.String("node_type", string(n.Type)))

	return n, nil
}

// CopyNode duplicates a node as a new sibling: same parent and type, title
// suffixed with " (Copy)", messages, latest summary, and live edges carried
// over. The copy gets a fresh inherited-context snapshot.
func (s *Service) CopyNode(ctx context.Context, nodeID uuid.UUID, createdBy string) (*node.Node, error) {
	original, err := s.store.Node(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if original.Status == node.StatusDeleted {
		return nil, &InvalidStateError{NodeID: original.ID, Status: original.Status, Op: "copy"}
	}

	copied, err := s.CreateNode(ctx, CreateNodeRequest{
		ProjectID: original.ProjectID,
		ParentID:  original.ParentID,
		Title:     original.Title + " (Copy)",
		Type:      original.Type,
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, err
	}

	messages, err := s.store.Messages(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	for _, m := range messages {
		if err := s.store.CreateMessage(ctx, &node.Message{
			ID:         uuid.New(),
			NodeID:     copied.ID,
			Role:       m.Role,
			Content:    m.Content,
			TokenCount: m.TokenCount,
			Metadata:   m.Metadata,
			Timestamp:  m.Timestamp,
		}); err != nil {
			return nil, err
		}
	}

	latest, err := s.store.LatestSummary(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		if err := s.store.CreateSummary(ctx, &node.Summary{
			ID:       uuid.New(),
			NodeID:   copied.ID,
			Document: latest.Document,
		}); err != nil {
			return nil, err
		}
	}

	edges, err := s.store.NodeEdges(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := s.store.InsertEdge(ctx, &node.Edge{
			ID:           uuid.New(),
			FromEntity:   e.FromEntity,
			ToEntity:     e.ToEntity,
			RelationType: e.RelationType,
			SourceNode:   copied.ID,
			Confidence:   e.Confidence,
			Metadata:     e.Metadata,
		}); err != nil {
			return nil, err
		}
	}

	s.recordEvent(ctx, copied, node.EventNodeCopied, map[string]any{
		"source_node_id": nodeID.String(),
	}, createdBy)

	return copied, nil
}

// DeleteResult reports a cascade soft delete.
type DeleteResult struct {
	NodesDeleted int `json:"nodes_deleted"`
	EdgesDeleted int `json:"edges_deleted"`
}

// Delete soft-deletes a node and all its descendants, soft-deleting their
// edges along the way. Messages and summaries stay readable by direct id.
func (s *Service) Delete(ctx context.Context, nodeID uuid.UUID, userID string) (*DeleteResult, error) {
	n, err := s.store.Node(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if n.Status == node.StatusDeleted {
		return nil, &InvalidStateError{NodeID: n.ID, Status: n.Status, Op: "delete"}
	}

	descendants, err := s.store.Descendants(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	result := &DeleteResult{}
	targets := append([]*node.Node{n}, descendants...)
	for _, target := range targets {
		if target.Status == node.StatusDeleted {
			continue
		}
		if err := s.store.SetNodeStatus(ctx, target.ID, node.StatusDeleted); err != nil {
			return nil, err
		}
		edges, err := s.store.SoftDeleteEdges(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		result.NodesDeleted++
		result.EdgesDeleted += edges
	}

	s.recordEvent(ctx, n, node.EventNodeDeleted, map[string]any{
		"nodes_deleted": result.NodesDeleted,
		"edges_deleted": result.EdgesDeleted,
	}, userID)

	s.logger.Info("deleted node subtree",
		zap.String("node_id", nodeID.String()),
		zap.Int("nodes_deleted", result.NodesDeleted),
		zap.Int("edges_deleted", result.EdgesDeleted))

	return result, nil
}

// recordEvent appends an audit-log event and mirrors it to the eventstream.
// Publish failures are logged, never surfaced: the stream is advisory.
func (s *Service) recordEvent(ctx context.Context, n *node.Node, eventType string, payload map[string]any, userID string) {
	event := node.Event{
		ID:        uuid.New(),
		NodeID:    n.ID,
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
	}

	if err := s.store.InsertEvent(ctx, &event); err != nil {
		s.logger.Warn("failed to record event",
			zap.String("event_type", eventType),
			zap.Error(err))
	}

	if err := s.publisher.PublishNodeEvent(ctx, eventstream.NewEnvelope(event, n.ProjectID)); err != nil {
		s.logger.Warn("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}
