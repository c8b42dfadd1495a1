package node

import (
	"github.com/google/uuid"
)

// InheritedFact is a fact captured from an ancestor's summary, tagged with
// where in the lineage it came from.
type InheritedFact struct {
	Fact         string    `json:"fact"`
	Confidence   float64   `json:"confidence,omitempty"`
	SourceNodeID uuid.UUID `json:"source_node_id"`
	SourceTitle  string    `json:"source_title,omitempty"`
	LineageDepth int       `json:"lineage_depth"`
}

// InheritedDecision is a decision captured from an ancestor's summary.
type InheritedDecision struct {
	Decision     string    `json:"decision"`
	Rationale    string    `json:"rationale,omitempty"`
	Confidence   float64   `json:"confidence,omitempty"`
	SourceNodeID uuid.UUID `json:"source_node_id"`
	SourceTitle  string    `json:"source_title,omitempty"`
	LineageDepth int       `json:"lineage_depth"`
}

// HistoryExcerpt is a raw message excerpt captured from an ancestor's log.
// Used only when no ancestor in the entire lineage ever produced a
// structured summary.
type HistoryExcerpt struct {
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	SourceNodeID uuid.UUID `json:"source_node_id"`
	SourceTitle  string    `json:"source_title,omitempty"`
	LineageDepth int       `json:"lineage_depth"`
	Truncated    bool      `json:"truncated,omitempty"`
}

// InheritedContext is the frozen context snapshot written onto a node at
// creation time by walking the full ancestor chain. It is a deliberate
// point-in-time freeze: later changes to ancestor summaries never update it.
type InheritedContext struct {
	Facts               []InheritedFact     `json:"facts"`
	Decisions           []InheritedDecision `json:"decisions"`
	OpenQuestions       []string            `json:"open_questions"`
	KeyEntities         []string            `json:"key_entities"`
	ConversationHistory []HistoryExcerpt    `json:"conversation_history,omitempty"`
	LineageDepth        int                 `json:"lineage_depth"`
	ParentNodeID        uuid.UUID           `json:"parent_node_id"`
	ParentTitle         string              `json:"parent_title,omitempty"`
}

// HasStructuredContext reports whether the snapshot captured any facts or
// decisions. When false, ConversationHistory is the only usable context.
func (ic *InheritedContext) HasStructuredContext() bool {
	return len(ic.Facts) > 0 || len(ic.Decisions) > 0
}
