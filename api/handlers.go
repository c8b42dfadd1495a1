package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/graph"
	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/workspace"
)

// CreateNodeRequest is the body for POST /api/v1/nodes.
type CreateNodeRequest struct {
	ProjectID *uuid.UUID `json:"project_id"`
	ParentID  *uuid.UUID `json:"parent_id"`
	Title     string     `json:"title" validate:"required,min=1,max=200"`
	NodeType  string     `json:"node_type" validate:"omitempty,oneof=standard exploration"`
	CreatedBy string     `json:"created_by"`
}

// SendMessageRequest is the body for POST /api/v1/nodes/:id/messages.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	UserID  string `json:"user_id"`
}

// MergeRequest is the body for POST /api/v1/nodes/merge.
type MergeRequest struct {
	SourceID uuid.UUID `json:"source_id" validate:"required"`
	TargetID uuid.UUID `json:"target_id" validate:"required"`
	UserID   string    `json:"user_id"`
}

// actorRequest is the optional body carrying the acting user for operations
// that otherwise need no input.
type actorRequest struct {
	UserID string `json:"user_id"`
}

// GraphResponse is the body for GET /api/v1/nodes/:id/graph.
type GraphResponse struct {
	NodeID   uuid.UUID          `json:"node_id"`
	Edges    []*graph.OwnedEdge `json:"edges"`
	Entities []string           `json:"entities"`
}

func (s *Server) handleCreateNode(c *fiber.Ctx) error {
	var req CreateNodeRequest
	if !s.parseBody(c, &req) {
		return nil
	}

	n, err := s.workspace.CreateNode(c.Context(), workspace.CreateNodeRequest{
		ProjectID: req.ProjectID,
		ParentID:  req.ParentID,
		Title:     req.Title,
		Type:      node.Type(req.NodeType),
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return s.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(n)
}

func (s *Server) handleGetNode(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	n, err := s.workspace.Store().Node(c.Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(n)
}

func (s *Server) handleSendMessage(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	var req SendMessageRequest
	if !s.parseBody(c, &req) {
		return nil
	}

	result, err := s.workspace.SendMessage(c.Context(), id, req.Content, req.UserID)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(result)
}

func (s *Server) handleGetMessages(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	// The storage layer returns an empty log for unknown ids; resolve the
	// node first so missing ids surface as 404.
	if _, err := s.workspace.Store().Node(c.Context(), id); err != nil {
		return s.writeError(c, err)
	}

	messages, err := s.workspace.Store().Messages(c.Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(map[string]any{
		"node_id":  id,
		"messages": messages,
		"count":    len(messages),
	})
}

func (s *Server) handleSummarize(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	result, err := s.workspace.Summarize(c.Context(), id, s.optionalActor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(result)
}

func (s *Server) handleMerge(c *fiber.Ctx) error {
	var req MergeRequest
	if !s.parseBody(c, &req) {
		return nil
	}

	result, err := s.workspace.Merge(c.Context(), req.SourceID, req.TargetID, req.UserID)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(result)
}

func (s *Server) handleDeleteNode(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	result, err := s.workspace.Delete(c.Context(), id, s.optionalActor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(result)
}

func (s *Server) handleCopyNode(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	copied, err := s.workspace.CopyNode(c.Context(), id, s.optionalActor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(copied)
}

func (s *Server) handleTree(c *fiber.Ctx) error {
	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "project_id must be a valid UUID"})
		}
		projectID = &id
	}

	tree, err := s.workspace.Tree(c.Context(), projectID)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(map[string]any{"tree": tree})
}

func (s *Server) handleGetGraph(c *fiber.Ctx) error {
	id, ok := s.idParam(c)
	if !ok {
		return nil
	}

	edges, err := s.workspace.Graph().LineageGraph(c.Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(GraphResponse{
		NodeID:   id,
		Edges:    edges,
		Entities: entitySet(edges),
	})
}

// optionalActor reads user_id from a body that may be entirely absent.
func (s *Server) optionalActor(c *fiber.Ctx) string {
	if len(c.Body()) == 0 {
		return ""
	}
	var req actorRequest
	if err := c.BodyParser(&req); err != nil {
		return ""
	}
	return req.UserID
}

// entitySet returns the distinct entity names across the edges, in first-seen
// order.
func entitySet(edges []*graph.OwnedEdge) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range edges {
		for _, name := range []string{e.FromEntity, e.ToEntity} {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}
