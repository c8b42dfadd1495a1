package entdriver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/storage/ent"
	entnode "github.com/fractalhq/fractal/pkg/storage/ent/node"
	entproject "github.com/fractalhq/fractal/pkg/storage/ent/project"
)

// CreateProject persists a new project.
func (ed *EntDriver) CreateProject(ctx context.Context, p *node.Project) error {
	if p == nil {
		return fmt.Errorf("cannot store nil project")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	create := ed.Client.Project.Create().
		SetID(p.ID).
		SetName(p.Name).
		SetDescription(p.Description)
	if !p.CreatedAt.IsZero() {
		create.SetCreatedAt(p.CreatedAt)
	}
	if !p.UpdatedAt.IsZero() {
		create.SetUpdatedAt(p.UpdatedAt)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("could not execute project creation: %w", err)
	}
	return nil
}

// Project retrieves a project by id.
func (ed *EntDriver) Project(ctx context.Context, id uuid.UUID) (*node.Project, error) {
	entProject, err := ed.Client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Kind: storage.KindProject, ID: id}
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return entProjectToProject(entProject), nil
}

// Projects returns all projects, newest first.
func (ed *EntDriver) Projects(ctx context.Context) ([]*node.Project, error) {
	entProjects, err := ed.Client.Project.Query().
		Order(ent.Desc(entproject.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}

	out := make([]*node.Project, len(entProjects))
	for i, ep := range entProjects {
		out[i] = entProjectToProject(ep)
	}
	return out, nil
}

// UpdateProject overwrites a project's mutable fields.
func (ed *EntDriver) UpdateProject(ctx context.Context, p *node.Project) error {
	err := ed.Client.Project.UpdateOneID(p.ID).
		SetName(p.Name).
		SetDescription(p.Description).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Kind: storage.KindProject, ID: p.ID}
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteProject removes a project row.
func (ed *EntDriver) DeleteProject(ctx context.Context, id uuid.UUID) error {
	err := ed.Client.Project.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Kind: storage.KindProject, ID: id}
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// CountProjectNodes returns the number of nodes owned by a project.
func (ed *EntDriver) CountProjectNodes(ctx context.Context, id uuid.UUID) (int, error) {
	count, err := ed.Client.Node.Query().
		Where(entnode.ProjectID(id)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count project nodes: %w", err)
	}
	return count, nil
}

// InsertEvent appends an audit-log event.
func (ed *EntDriver) InsertEvent(ctx context.Context, e *node.Event) error {
	if e == nil {
		return fmt.Errorf("cannot store nil event")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	create := ed.Client.NodeEvent.Create().
		SetID(e.ID).
		SetNodeID(e.NodeID).
		SetEventType(e.Type).
		SetUserID(e.UserID)
	if e.Payload != nil {
		create.SetPayload(e.Payload)
	}
	if !e.Timestamp.IsZero() {
		create.SetTimestamp(e.Timestamp)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return storage.NotFoundError{Kind: storage.KindNode, ID: e.NodeID}
		}
		return fmt.Errorf("could not execute event creation: %w", err)
	}
	return nil
}
