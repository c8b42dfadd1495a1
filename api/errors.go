package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/workspace"
)

// ErrorResponse is the JSON error body for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors onto HTTP statuses: missing entities are
// 404, lifecycle and merge precondition violations are 400, model failures
// and everything else are 500; model failures keep their message in the body.
func (s *Server) writeError(c *fiber.Ctx, err error) error {
	var notFound storage.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: notFound.Error()})
	}

	var invalidState *workspace.InvalidStateError
	if errors.As(err, &invalidState) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: invalidState.Error()})
	}

	var invalidMerge *workspace.InvalidMergeError
	if errors.As(err, &invalidMerge) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: invalidMerge.Error()})
	}

	var genErr *llm.GenerationError
	if errors.As(err, &genErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: genErr.Error()})
	}

	var malformed *llm.MalformedOutputError
	if errors.As(err, &malformed) {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: malformed.Error()})
	}

	s.logger.Error("request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
}

// parseBody parses and validates a JSON request body, returning false after
// writing the 400 response itself.
func (s *Server) parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := s.validate.Struct(out); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: validationMessage(err)})
		return false
	}
	return true
}

// idParam parses the :id route parameter, returning uuid.Nil and writing the
// 400 response when it is not a UUID.
func (s *Server) idParam(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "id must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, field+" must be at least "+fe.Param()+" characters")
		case "max":
			msgs = append(msgs, field+" must be at most "+fe.Param()+" characters")
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+fe.Param())
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
