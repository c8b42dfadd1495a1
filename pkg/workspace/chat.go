package workspace

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/utils"
)

// ChatResult is one completed conversation turn.
type ChatResult struct {
	UserMessage      *node.Message `json:"user_message"`
	AssistantMessage *node.Message `json:"assistant_message"`

	// ServedBy is the model role that actually produced the reply.
	ServedBy llm.Role `json:"served_by"`

	// FallbackFrom is set when an exploration turn degraded to the main
	// reasoner.
	FallbackFrom llm.Role `json:"fallback_from,omitempty"`
}

// SendMessage appends a user turn to an active node, generates the reply
// with the node's model role, and appends the assistant turn. Exploration
// nodes route to the exploration model and degrade to the main reasoner when
// it is unavailable.
//
// The user message is persisted before generation, so a failed generation
// leaves the user turn in the log.
func (s *Service) SendMessage(ctx context.Context, nodeID uuid.UUID, content, userID string) (*ChatResult, error) {
	n, err := s.store.Node(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if n.Status != node.StatusActive {
		return nil, &InvalidStateError{NodeID: n.ID, Status: n.Status, Op: "chat on"}
	}

	userTokens := utils.EstimateTokens(content)
	userMessage := &node.Message{
		ID:         uuid.New(),
		NodeID:     n.ID,
		Role:       node.RoleUser,
		Content:    content,
		TokenCount: &userTokens,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, userMessage); err != nil {
		return nil, err
	}

	prompt, err := s.builder.BuildChatContext(ctx, n)
	if err != nil {
		return nil, err
	}

	role := llm.RoleMainReasoner
	if n.Type == node.TypeExploration {
		role = llm.RoleExploration
	}

	completion, err := s.llm.Generate(ctx, role, prompt, content)
	if err != nil {
		return nil, err
	}

	assistantTokens := utils.EstimateTokens(completion.Text)
	metadata := map[string]any{"model_role": string(completion.Role)}
	if completion.FallbackFrom != "" {
		metadata["fallback_from"] = string(completion.FallbackFrom)
	}
	assistantMessage := &node.Message{
		ID:         uuid.New(),
		NodeID:     n.ID,
		Role:       node.RoleAssistant,
		Content:    completion.Text,
		TokenCount: &assistantTokens,
		Metadata:   metadata,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, n, node.EventMessageAdded, map[string]any{
		"user_message_id":      userMessage.ID.String(),
		"assistant_message_id": assistantMessage.ID.String(),
		"model_role":           string(completion.Role),
	}, userID)

	if completion.FallbackFrom != "" {
		s.logger.Info("exploration turn served by fallback",
			zap.String("node_id", n.ID.String()),
			zap.String("served_by", string(completion.Role)))
	}

	return &ChatResult{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		ServedBy:         completion.Role,
		FallbackFrom:     completion.FallbackFrom,
	}, nil
}
