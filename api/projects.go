package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fractalhq/fractal/pkg/node"
)

// CreateProjectRequest is the body for POST /api/v1/projects.
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	CreatedBy   string `json:"created_by"`
}

// UpdateProjectRequest is the body for PUT /api/v1/projects/:id.
type UpdateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (s *Server) handleCreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if !s.parseBody(c, &req) {
		return nil
	}

	result, err := s.workspace.CreateProject(c.Context(), req.Name, req.Description, req.CreatedBy)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (s *Server) handleListProjects(c *fiber.Ctx) error {
	projects, err := s.workspace.Store().Projects(c.Context())
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(map[string]any{
		"projects": projects,
		"count":    len(projects),
	})
}

func (s *Server) handleGetProject(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	project, err := s.workspace.Store().Project(c.Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	nodeCount, err := s.workspace.Store().CountProjectNodes(c.Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(map[string]any{
		"project":    project,
		"node_count": nodeCount,
	})
}

func (s *Server) handleUpdateProject(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	var req UpdateProjectRequest
	if !s.parseBody(c, &req) {
		return nil
	}

	p := &node.Project{ID: id, Name: req.Name, Description: req.Description}
	if err := s.workspace.Store().UpdateProject(c.Context(), p); err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.workspace.Store().Project(c.Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(updated)
}

func (s *Server) handleDeleteProject(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	if err := s.workspace.DeleteProject(c.Context(), id); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(map[string]any{"deleted": true})
}

func (s *Server) handleProjectTree(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	// Resolve the project first so missing ids surface as 404.
	if _, err := s.workspace.Store().Project(c.Context(), id); err != nil {
		return s.writeError(c, err)
	}

	tree, err := s.workspace.Tree(c.Context(), &id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(map[string]any{"tree": tree})
}
