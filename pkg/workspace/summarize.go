package workspace

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/node"
)

// Graph-extraction outcomes for a summarize run.
const (
	GraphStatusSuccess = "success"
	GraphStatusFailed  = "failed"
)

// GraphRetryHint tells the caller how to recover from a failed extraction.
const GraphRetryHint = "Re-run summarize to retry graph extraction."

// SummarizeResult reports one summarize run.
type SummarizeResult struct {
	Summary *node.Summary `json:"summary"`

	// GraphStatus is GraphStatusSuccess or GraphStatusFailed. Extraction
	// failure does not fail the run: the summary is already stored.
	GraphStatus string `json:"graph_extraction_status"`
	GraphHint   string `json:"graph_hint,omitempty"`
	EdgesAdded  int    `json:"edges_added"`
}

// Summarize compresses a node's conversation into a structured summary and
// extracts knowledge-graph edges from it. The summary write is the
// commitment point: a malformed summarizer response fails the run with no
// state change, while a failed graph extraction degrades gracefully since
// the stored summary makes the extraction retryable.
func (s *Service) Summarize(ctx context.Context, nodeID uuid.UUID, userID string) (*SummarizeResult, error) {
	n, err := s.store.Node(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if n.Status != node.StatusActive {
		return nil, &InvalidStateError{NodeID: n.ID, Status: n.Status, Op: "summarize"}
	}

	systemPrompt, userContent, err := s.builder.BuildSummarizeContext(ctx, n)
	if err != nil {
		return nil, err
	}

	completion, err := s.llm.Generate(ctx, llm.RoleMainReasoner, systemPrompt, userContent)
	if err != nil {
		return nil, err
	}

	doc, err := llm.ParseSummaryOutput(completion.Text)
	if err != nil {
		return nil, err
	}

	summary := &node.Summary{
		ID:        uuid.New(),
		NodeID:    n.ID,
		Document:  *doc,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateSummary(ctx, summary); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, n, node.EventSummaryUpdated, map[string]any{
		"summary_id": summary.ID.String(),
		"facts":      len(doc.Facts),
		"decisions":  len(doc.Decisions),
	}, userID)

	result := &SummarizeResult{Summary: summary, GraphStatus: GraphStatusSuccess}

	inserted, err := s.extractGraph(ctx, n, doc)
	if err != nil {
		s.logger.Warn("graph extraction failed",
			zap.String("node_id", n.ID.String()),
			zap.Error(err))
		result.GraphStatus = GraphStatusFailed
		result.GraphHint = GraphRetryHint
		return result, nil
	}
	result.EdgesAdded = inserted

	if inserted > 0 {
		s.recordEvent(ctx, n, node.EventGraphUpdated, map[string]any{
			"edges_added": inserted,
		}, userID)
	}

	s.logger.Info("summarized node",
		zap.String("node_id", n.ID.String()),
		zap.Int("facts", len(doc.Facts)),
		zap.Int("edges_added", inserted))

	return result, nil
}

func (s *Service) extractGraph(ctx context.Context, n *node.Node, doc *node.SummaryDocument) (int, error) {
	systemPrompt, userContent, err := s.builder.BuildGraphContext(ctx, n, doc)
	if err != nil {
		return 0, err
	}

	completion, err := s.llm.Generate(ctx, llm.RoleGraphBuilder, systemPrompt, userContent)
	if err != nil {
		return 0, err
	}

	out, err := llm.ParseExtractionOutput(completion.Text)
	if err != nil {
		return 0, err
	}

	return s.graph.StoreEdges(ctx, n.ID, out.Relations)
}
