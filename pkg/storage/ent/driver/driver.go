// Package entdriver implements storage.Driver on top of an ent client.
// It is database-agnostic and is embedded by the sqlite and postgres drivers.
package entdriver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/storage/ent"
	entgraphedge "github.com/fractalhq/fractal/pkg/storage/ent/graphedge"
	entmessage "github.com/fractalhq/fractal/pkg/storage/ent/message"
	entnode "github.com/fractalhq/fractal/pkg/storage/ent/node"
	entsummary "github.com/fractalhq/fractal/pkg/storage/ent/summary"
)

// EntDriver provides storage operations using an ent client.
type EntDriver struct {
	Client *ent.Client
}

var _ storage.Driver = (*EntDriver)(nil)

// CreateNode persists a new node.
func (ed *EntDriver) CreateNode(ctx context.Context, n *node.Node) error {
	if n == nil {
		return fmt.Errorf("cannot store nil node")
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	if n.ParentID != nil {
		exists, err := ed.Client.Node.Query().
			Where(entnode.ID(*n.ParentID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check parent existence: %w", err)
		}
		if !exists {
			return storage.NotFoundError{Kind: storage.KindNode, ID: *n.ParentID}
		}
	}

	create := ed.Client.Node.Create().
		SetID(n.ID).
		SetNillableParentID(n.ParentID).
		SetNillableProjectID(n.ProjectID).
		SetTitle(n.Title).
		SetNodeType(string(n.Type)).
		SetStatus(string(n.Status)).
		SetPositionX(n.Position.X).
		SetPositionY(n.Position.Y).
		SetCreatedBy(n.CreatedBy)

	if !n.CreatedAt.IsZero() {
		create.SetCreatedAt(n.CreatedAt)
	}
	if n.Metadata != nil {
		create.SetMetadata(n.Metadata)
	}
	if n.Inherited != nil {
		inheritedMap, err := toMap(n.Inherited)
		if err != nil {
			return fmt.Errorf("failed to marshal inherited context: %w", err)
		}
		create.SetInheritedContext(inheritedMap)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("could not execute node creation: %w", err)
	}
	return nil
}

// Node retrieves a node by id regardless of status.
func (ed *EntDriver) Node(ctx context.Context, id uuid.UUID) (*node.Node, error) {
	entNode, err := ed.Client.Node.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Kind: storage.KindNode, ID: id}
		}
		return nil, fmt.Errorf("failed to get node: %w", err)
	}
	return entNodeToNode(entNode)
}

// SetNodeStatus updates a node's lifecycle status.
func (ed *EntDriver) SetNodeStatus(ctx context.Context, id uuid.UUID, status node.Status) error {
	err := ed.Client.Node.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Kind: storage.KindNode, ID: id}
		}
		return fmt.Errorf("failed to update node status: %w", err)
	}
	return nil
}

// Lineage returns the path from a node back to its root (node first, root
// last), traversing the parent edge.
func (ed *EntDriver) Lineage(ctx context.Context, id uuid.UUID) ([]*node.Node, error) {
	current, err := ed.Client.Node.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Kind: storage.KindNode, ID: id}
		}
		return nil, fmt.Errorf("failed to get node: %w", err)
	}

	var path []*node.Node
	for current != nil {
		n, err := entNodeToNode(current)
		if err != nil {
			return nil, err
		}
		path = append(path, n)

		parent, err := current.QueryParent().Only(ctx)
		if ent.IsNotFound(err) {
			break // Reached root
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query parent: %w", err)
		}
		current = parent
	}

	return path, nil
}

// Descendants returns the flat set of all transitive children via a
// level-by-level walk over the parent_id index.
func (ed *EntDriver) Descendants(ctx context.Context, id uuid.UUID) ([]*node.Node, error) {
	exists, err := ed.Client.Node.Query().
		Where(entnode.ID(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existence: %w", err)
	}
	if !exists {
		return nil, storage.NotFoundError{Kind: storage.KindNode, ID: id}
	}

	var out []*node.Node
	frontier := []uuid.UUID{id}
	for len(frontier) > 0 {
		entNodes, err := ed.Client.Node.Query().
			Where(entnode.ParentIDIn(frontier...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query children: %w", err)
		}

		frontier = frontier[:0]
		for _, en := range entNodes {
			n, err := entNodeToNode(en)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
			frontier = append(frontier, en.ID)
		}
	}

	return out, nil
}

// Children returns the direct children of a node in creation order.
func (ed *EntDriver) Children(ctx context.Context, parentID uuid.UUID) ([]*node.Node, error) {
	entNodes, err := ed.Client.Node.Query().
		Where(entnode.ParentID(parentID)).
		Order(ent.Asc(entnode.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query children: %w", err)
	}
	return entNodesToNodes(entNodes)
}

// CountChildren returns the number of direct children of a node.
func (ed *EntDriver) CountChildren(ctx context.Context, parentID uuid.UUID) (int, error) {
	count, err := ed.Client.Node.Query().
		Where(entnode.ParentID(parentID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count children: %w", err)
	}
	return count, nil
}

// ListTree returns all non-deleted nodes, optionally scoped to a project.
func (ed *EntDriver) ListTree(ctx context.Context, projectID *uuid.UUID) ([]*node.Node, error) {
	q := ed.Client.Node.Query().
		Where(entnode.StatusNEQ(string(node.StatusDeleted)))

	if projectID != nil {
		q = q.Where(entnode.ProjectID(*projectID))
	}

	entNodes, err := q.Order(ent.Asc(entnode.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tree: %w", err)
	}
	return entNodesToNodes(entNodes)
}

// CreateMessage appends a message to its node's log.
func (ed *EntDriver) CreateMessage(ctx context.Context, m *node.Message) error {
	if m == nil {
		return fmt.Errorf("cannot store nil message")
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	create := ed.Client.Message.Create().
		SetID(m.ID).
		SetNodeID(m.NodeID).
		SetRole(m.Role).
		SetContent(m.Content).
		SetNillableTokenCount(m.TokenCount)

	if !m.Timestamp.IsZero() {
		create.SetTimestamp(m.Timestamp)
	}
	if m.Metadata != nil {
		create.SetMetadata(m.Metadata)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return storage.NotFoundError{Kind: storage.KindNode, ID: m.NodeID}
		}
		return fmt.Errorf("could not execute message creation: %w", err)
	}
	return nil
}

// Messages returns a node's full log in ascending timestamp order.
func (ed *EntDriver) Messages(ctx context.Context, nodeID uuid.UUID) ([]*node.Message, error) {
	entMessages, err := ed.Client.Message.Query().
		Where(entmessage.NodeID(nodeID)).
		Order(ent.Asc(entmessage.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	out := make([]*node.Message, len(entMessages))
	for i, em := range entMessages {
		out[i] = entMessageToMessage(em)
	}
	return out, nil
}

// LastMessages returns the most recent n messages in ascending order.
func (ed *EntDriver) LastMessages(ctx context.Context, nodeID uuid.UUID, n int) ([]*node.Message, error) {
	if n <= 0 {
		return ed.Messages(ctx, nodeID)
	}

	entMessages, err := ed.Client.Message.Query().
		Where(entmessage.NodeID(nodeID)).
		Order(ent.Desc(entmessage.FieldTimestamp)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	// Reverse back into ascending order.
	out := make([]*node.Message, len(entMessages))
	for i, em := range entMessages {
		out[len(entMessages)-1-i] = entMessageToMessage(em)
	}
	return out, nil
}

// CreateSummary stores a new latest summary, flipping the prior latest
// within the same transaction.
func (ed *EntDriver) CreateSummary(ctx context.Context, s *node.Summary) error {
	if s == nil {
		return fmt.Errorf("cannot store nil summary")
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	documentMap, err := toMap(&s.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal summary document: %w", err)
	}

	tx, err := ed.Client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Summary.Update().
		Where(entsummary.NodeID(s.NodeID), entsummary.IsLatest(true)).
		SetIsLatest(false).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to flip prior latest summary: %w", err)
	}

	create := tx.Summary.Create().
		SetID(s.ID).
		SetNodeID(s.NodeID).
		SetDocument(documentMap).
		SetNillableGeneratedFromEvent(s.GeneratedFromEvent).
		SetIsLatest(true)
	if !s.CreatedAt.IsZero() {
		create.SetCreatedAt(s.CreatedAt)
	}

	if err := create.Exec(ctx); err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			return storage.NotFoundError{Kind: storage.KindNode, ID: s.NodeID}
		}
		return fmt.Errorf("could not execute summary creation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit summary: %w", err)
	}

	s.IsLatest = true
	return nil
}

// LatestSummary returns the node's latest summary, or nil when none exists.
func (ed *EntDriver) LatestSummary(ctx context.Context, nodeID uuid.UUID) (*node.Summary, error) {
	entSummary, err := ed.Client.Summary.Query().
		Where(entsummary.NodeID(nodeID), entsummary.IsLatest(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest summary: %w", err)
	}
	return entSummaryToSummary(entSummary)
}

// InsertEdge persists a new edge.
func (ed *EntDriver) InsertEdge(ctx context.Context, e *node.Edge) error {
	if e == nil {
		return fmt.Errorf("cannot store nil edge")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	create := ed.Client.GraphEdge.Create().
		SetID(e.ID).
		SetFromEntity(e.FromEntity).
		SetToEntity(e.ToEntity).
		SetRelationType(e.RelationType).
		SetSourceNode(e.SourceNode).
		SetConfidence(e.Confidence)

	if !e.CreatedAt.IsZero() {
		create.SetCreatedAt(e.CreatedAt)
	}
	if e.Metadata != nil {
		create.SetMetadata(e.Metadata)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("could not execute edge creation: %w", err)
	}
	return nil
}

// FindEdge returns the live edge matching the dedup key, or nil.
func (ed *EntDriver) FindEdge(ctx context.Context, from, to, relationType string, sourceNode uuid.UUID) (*node.Edge, error) {
	entEdge, err := ed.Client.GraphEdge.Query().
		Where(
			entgraphedge.FromEntity(from),
			entgraphedge.ToEntity(to),
			entgraphedge.RelationType(relationType),
			entgraphedge.SourceNode(sourceNode),
			entgraphedge.DeletedAtIsNil(),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query edge: %w", err)
	}
	return entEdgeToEdge(entEdge), nil
}

// NodeEdges returns all live edges owned by a node.
func (ed *EntDriver) NodeEdges(ctx context.Context, nodeID uuid.UUID) ([]*node.Edge, error) {
	return ed.EdgesForNodes(ctx, []uuid.UUID{nodeID})
}

// EdgesForNodes returns all live edges owned by any of the given nodes.
func (ed *EntDriver) EdgesForNodes(ctx context.Context, nodeIDs []uuid.UUID) ([]*node.Edge, error) {
	entEdges, err := ed.Client.GraphEdge.Query().
		Where(
			entgraphedge.SourceNodeIn(nodeIDs...),
			entgraphedge.DeletedAtIsNil(),
		).
		Order(ent.Asc(entgraphedge.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}

	out := make([]*node.Edge, len(entEdges))
	for i, ee := range entEdges {
		out[i] = entEdgeToEdge(ee)
	}
	return out, nil
}

// UpdateEdge overwrites an edge's confidence and metadata.
func (ed *EntDriver) UpdateEdge(ctx context.Context, id uuid.UUID, confidence float64, metadata map[string]any) error {
	update := ed.Client.GraphEdge.UpdateOneID(id).
		SetConfidence(confidence)
	if metadata != nil {
		update.SetMetadata(metadata)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Kind: storage.KindEdge, ID: id}
		}
		return fmt.Errorf("failed to update edge: %w", err)
	}
	return nil
}

// SoftDeleteEdges stamps deleted_at on every live edge owned by the node.
func (ed *EntDriver) SoftDeleteEdges(ctx context.Context, nodeID uuid.UUID) (int, error) {
	count, err := ed.Client.GraphEdge.Update().
		Where(
			entgraphedge.SourceNode(nodeID),
			entgraphedge.DeletedAtIsNil(),
		).
		SetDeletedAt(nowUTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete edges: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (ed *EntDriver) Close() error {
	return ed.Client.Close()
}
