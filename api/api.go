package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/workspace"
)

// Server is the API server for the node workspace.
type Server struct {
	config    Config
	workspace *workspace.Service
	logger    *zap.Logger
	validate  *validator.Validate
	app       *fiber.App
}

// NewServer creates a new API server. The workspace service is injected to
// allow sharing with other components.
func NewServer(config Config, ws *workspace.Service, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:    config,
		workspace: ws,
		logger:    logger,
		validate:  validator.New(),
		app:       app,
	}

	app.Get("/ping", s.handlePing)

	v1 := app.Group("/api/v1")

	// Static node routes before the :id routes.
	v1.Get("/nodes/tree", s.handleTree)
	v1.Post("/nodes/merge", s.handleMerge)

	v1.Post("/nodes", s.handleCreateNode)
	v1.Get("/nodes/:id", s.handleGetNode)
	v1.Post("/nodes/:id/messages", s.handleSendMessage)
	v1.Get("/nodes/:id/messages", s.handleGetMessages)
	v1.Post("/nodes/:id/summarize", s.handleSummarize)
	v1.Post("/nodes/:id/delete", s.handleDeleteNode)
	v1.Post("/nodes/:id/copy", s.handleCopyNode)
	v1.Get("/nodes/:id/graph", s.handleGetGraph)

	v1.Post("/projects", s.handleCreateProject)
	v1.Get("/projects", s.handleListProjects)
	v1.Get("/projects/:id", s.handleGetProject)
	v1.Put("/projects/:id", s.handleUpdateProject)
	v1.Delete("/projects/:id", s.handleDeleteProject)
	v1.Get("/projects/:id/tree", s.handleProjectTree)

	return s
}

// App exposes the underlying fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}
