package workspace

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
)

// SummaryPreviewFacts is how many leading facts make up a tree node's
// summary preview.
const SummaryPreviewFacts = 3

// TreeNode is one node in the nested tree view.
type TreeNode struct {
	*node.Node

	HasSummary  bool        `json:"has_summary"`
	SummaryText string      `json:"summary_text,omitempty"`
	Children    []*TreeNode `json:"children"`
}

// Tree returns the non-deleted nodes as a forest of nested trees, optionally
// scoped to a project. Each entry carries a short summary preview built from
// the node's leading facts. Children whose parent was deleted surface as
// roots.
func (s *Service) Tree(ctx context.Context, projectID *uuid.UUID) ([]*TreeNode, error) {
	nodes, err := s.store.ListTree(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*TreeNode, len(nodes))
	for _, n := range nodes {
		latest, err := s.store.LatestSummary(ctx, n.ID)
		if err != nil {
			return nil, err
		}

		tn := &TreeNode{Node: n, Children: []*TreeNode{}}
		if latest != nil && !latest.Document.IsEmpty() {
			tn.HasSummary = true
			tn.SummaryText = strings.Join(latest.Document.FactStrings(SummaryPreviewFacts), "; ")
		}
		byID[n.ID] = tn
	}

	var roots []*TreeNode
	for _, n := range nodes {
		tn := byID[n.ID]
		if n.ParentID != nil {
			if parent, ok := byID[*n.ParentID]; ok {
				parent.Children = append(parent.Children, tn)
				continue
			}
		}
		roots = append(roots, tn)
	}

	return roots, nil
}
