package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
)

// ProjectResult pairs a project with its freshly created root node.
type ProjectResult struct {
	Project *node.Project `json:"project"`
	Root    *node.Node    `json:"root_node"`
}

// CreateProject creates a project and its root node. Every project starts
// with one root at the canvas origin so the tree is never empty.
func (s *Service) CreateProject(ctx context.Context, name, description, createdBy string) (*ProjectResult, error) {
	p := &node.Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
	if err := s.store.CreateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	root, err := s.CreateNode(ctx, CreateNodeRequest{
		ProjectID: &p.ID,
		Title:     name + " Root",
		Type:      node.TypeStandard,
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("creating project root node: %w", err)
	}

	return &ProjectResult{Project: p, Root: root}, nil
}

// DeleteProject removes a project row. Its nodes keep their project_id and
// are deleted separately through the node lifecycle.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteProject(ctx, id)
}
