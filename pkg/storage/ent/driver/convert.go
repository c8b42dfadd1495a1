package entdriver

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage/ent"
)

// toMap round-trips a typed struct through JSON into the map shape ent's
// JSON columns store.
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fromMap rebuilds a typed struct from an ent JSON column.
func fromMap(m map[string]any, v any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func entNodeToNode(en *ent.Node) (*node.Node, error) {
	n := &node.Node{
		ID:        en.ID,
		ProjectID: en.ProjectID,
		ParentID:  en.ParentID,
		Title:     en.Title,
		Type:      node.Type(en.NodeType),
		Status:    node.Status(en.Status),
		Position:  node.Position{X: en.PositionX, Y: en.PositionY},
		CreatedAt: en.CreatedAt,
		CreatedBy: en.CreatedBy,
		Metadata:  en.Metadata,
	}

	if len(en.InheritedContext) > 0 {
		inherited := &node.InheritedContext{}
		if err := fromMap(en.InheritedContext, inherited); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inherited context: %w", err)
		}
		n.Inherited = inherited
	}

	return n, nil
}

func entNodesToNodes(entNodes []*ent.Node) ([]*node.Node, error) {
	nodes := make([]*node.Node, 0, len(entNodes))
	for _, en := range entNodes {
		n, err := entNodeToNode(en)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func entMessageToMessage(em *ent.Message) *node.Message {
	return &node.Message{
		ID:         em.ID,
		NodeID:     em.NodeID,
		Role:       em.Role,
		Content:    em.Content,
		TokenCount: em.TokenCount,
		Metadata:   em.Metadata,
		Timestamp:  em.Timestamp,
	}
}

func entSummaryToSummary(es *ent.Summary) (*node.Summary, error) {
	var doc node.SummaryDocument
	if err := fromMap(es.Document, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary document: %w", err)
	}

	return &node.Summary{
		ID:                 es.ID,
		NodeID:             es.NodeID,
		Document:           doc,
		GeneratedFromEvent: es.GeneratedFromEvent,
		IsLatest:           es.IsLatest,
		CreatedAt:          es.CreatedAt,
	}, nil
}

func entEdgeToEdge(ee *ent.GraphEdge) *node.Edge {
	return &node.Edge{
		ID:           ee.ID,
		FromEntity:   ee.FromEntity,
		ToEntity:     ee.ToEntity,
		RelationType: ee.RelationType,
		SourceNode:   ee.SourceNode,
		Confidence:   ee.Confidence,
		Metadata:     ee.Metadata,
		CreatedAt:    ee.CreatedAt,
		DeletedAt:    ee.DeletedAt,
	}
}

func entProjectToProject(ep *ent.Project) *node.Project {
	return &node.Project{
		ID:          ep.ID,
		Name:        ep.Name,
		Description: ep.Description,
		CreatedAt:   ep.CreatedAt,
		UpdatedAt:   ep.UpdatedAt,
	}
}
