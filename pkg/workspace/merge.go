package workspace

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/node"
)

// MergeResult reports one completed merge.
type MergeResult struct {
	SourceID      uuid.UUID     `json:"source_id"`
	TargetID      uuid.UUID     `json:"target_id"`
	TargetSummary *node.Summary `json:"target_summary"`
	Conflicts     []string      `json:"conflicts,omitempty"`
	EdgesFolded   int           `json:"edges_folded"`
}

// Merge folds a branch back into one of its ancestors: the arbiter model
// produces an updated target summary, the source's graph is folded into the
// target's, and the source node is frozen. A malformed arbiter response
// aborts the merge with no state change.
//
// Preconditions: both nodes active, and the target an ancestor of the
// source.
func (s *Service) Merge(ctx context.Context, sourceID, targetID uuid.UUID, userID string) (*MergeResult, error) {
	source, err := s.store.Node(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	target, err := s.store.Node(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if source.Status != node.StatusActive {
		return nil, &InvalidStateError{NodeID: source.ID, Status: source.Status, Op: "merge from"}
	}
	if target.Status != node.StatusActive {
		return nil, &InvalidStateError{NodeID: target.ID, Status: target.Status, Op: "merge into"}
	}
	if sourceID == targetID {
		return nil, &InvalidMergeError{SourceID: sourceID, TargetID: targetID, Reason: "source and target are the same node"}
	}

	lineage, err := s.store.Lineage(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	ancestor := false
	for _, n := range lineage[1:] {
		if n.ID == targetID {
			ancestor = true
			break
		}
	}
	if !ancestor {
		return nil, &InvalidMergeError{SourceID: sourceID, TargetID: targetID, Reason: "target is not an ancestor of source"}
	}

	systemPrompt, userContent, err := s.builder.BuildMergeContext(ctx, source, target)
	if err != nil {
		return nil, err
	}

	completion, err := s.llm.Generate(ctx, llm.RoleMainReasoner, systemPrompt, userContent)
	if err != nil {
		return nil, err
	}

	out, err := llm.ParseMergeOutput(completion.Text)
	if err != nil {
		return nil, err
	}

	// Commitment point. Everything below mutates state.
	summary := &node.Summary{
		ID:        uuid.New(),
		NodeID:    target.ID,
		Document:  out.UpdatedTargetSummary,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateSummary(ctx, summary); err != nil {
		return nil, err
	}

	folded, err := s.graph.MergeGraphs(ctx, sourceID, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetNodeStatus(ctx, sourceID, node.StatusFrozen); err != nil {
		return nil, err
	}

	facts, err := json.Marshal(out.UpdatedTargetSummary.Facts)
	if err != nil {
		facts = []byte("[]")
	}
	auditMessage := &node.Message{
		ID:        uuid.New(),
		NodeID:    target.ID,
		Role:      node.RoleSummary,
		Content:   fmt.Sprintf("Merged from %q: %s", source.Title, facts),
		Metadata:  map[string]any{"merged_from": sourceID.String()},
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, auditMessage); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, target, node.EventNodeMerged, map[string]any{
		"source_id":    sourceID.String(),
		"summary_id":   summary.ID.String(),
		"edges_folded": folded,
		"conflicts":    len(out.Conflicts),
	}, userID)

	s.logger.Info("merged node",
		zap.String("source_id", sourceID.String()),
		zap.String("target_id", targetID.String()),
		zap.Int("edges_folded", folded),
		zap.Int("conflicts", len(out.Conflicts)))

	return &MergeResult{
		SourceID:      sourceID,
		TargetID:      targetID,
		TargetSummary: summary,
		Conflicts:     out.Conflicts,
		EdgesFolded:   folded,
	}, nil
}
