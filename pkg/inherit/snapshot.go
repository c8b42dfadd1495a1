// Package inherit builds LLM context from the node tree: the frozen
// inherited-context snapshot captured at node creation, and the assembled
// prompts for chat, summarize, graph extraction, and merge calls.
package inherit

import (
	"context"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/utils"
)

const (
	// FallbackMessagesPerAncestor is how many trailing conversational
	// messages are captured per ancestor when no ancestor in the lineage has
	// a structured summary.
	FallbackMessagesPerAncestor = 10

	// FallbackExcerptMaxLen caps each captured excerpt's content.
	FallbackExcerptMaxLen = 500

	// DefaultRecentMessages is how many trailing messages of the current
	// node feed the chat prompt.
	DefaultRecentMessages = 10
)

// Config tunes the context builder.
type Config struct {
	// RecentMessages is the chat prompt's recent-conversation window.
	// Defaults to DefaultRecentMessages.
	RecentMessages int
}

// Builder assembles context snapshots and prompts from a storage driver.
type Builder struct {
	store storage.Driver
	cfg   Config
}

// NewBuilder creates a context builder over the given store.
func NewBuilder(store storage.Driver, cfg Config) *Builder {
	if cfg.RecentMessages <= 0 {
		cfg.RecentMessages = DefaultRecentMessages
	}
	return &Builder{store: store, cfg: cfg}
}

// SnapshotParentContext walks the full lineage of parentID and freezes it
// into an InheritedContext. Facts and decisions are tagged with their source
// node and lineage depth (0 = the parent itself). Open questions are
// deduplicated nearest-ancestor-first; key entities come from the entity
// names on each ancestor's live edges.
//
// When the entire lineage yields zero facts and zero decisions, the last
// FallbackMessagesPerAncestor conversational messages of each ancestor are
// captured instead, each truncated to FallbackExcerptMaxLen characters.
func (b *Builder) SnapshotParentContext(ctx context.Context, parentID uuid.UUID) (*node.InheritedContext, error) {
	lineage, err := b.store.Lineage(ctx, parentID)
	if err != nil {
		return nil, err
	}

	ic := &node.InheritedContext{
		Facts:         []node.InheritedFact{},
		Decisions:     []node.InheritedDecision{},
		OpenQuestions: []string{},
		KeyEntities:   []string{},
		LineageDepth:  len(lineage),
		ParentNodeID:  parentID,
	}
	if len(lineage) > 0 {
		ic.ParentTitle = lineage[0].Title
	}

	seenQuestions := make(map[string]bool)
	seenEntities := make(map[string]bool)

	for depth, ancestor := range lineage {
		summary, err := b.store.LatestSummary(ctx, ancestor.ID)
		if err != nil {
			return nil, err
		}
		if summary != nil {
			for _, f := range summary.Document.Facts {
				ic.Facts = append(ic.Facts, node.InheritedFact{
					Fact:         f.Fact,
					Confidence:   f.Confidence,
					SourceNodeID: ancestor.ID,
					SourceTitle:  ancestor.Title,
					LineageDepth: depth,
				})
			}
			for _, d := range summary.Document.Decisions {
				ic.Decisions = append(ic.Decisions, node.InheritedDecision{
					Decision:     d.Decision,
					Rationale:    d.Rationale,
					Confidence:   d.Confidence,
					SourceNodeID: ancestor.ID,
					SourceTitle:  ancestor.Title,
					LineageDepth: depth,
				})
			}
			for _, q := range summary.Document.OpenQuestions {
				if !seenQuestions[q] {
					seenQuestions[q] = true
					ic.OpenQuestions = append(ic.OpenQuestions, q)
				}
			}
		}

		edges, err := b.store.NodeEdges(ctx, ancestor.ID)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			for _, entity := range []string{e.FromEntity, e.ToEntity} {
				if entity != "" && !seenEntities[entity] {
					seenEntities[entity] = true
					ic.KeyEntities = append(ic.KeyEntities, entity)
				}
			}
		}
	}

	if !ic.HasStructuredContext() {
		history, err := b.fallbackHistory(ctx, lineage)
		if err != nil {
			return nil, err
		}
		ic.ConversationHistory = history
	}

	return ic, nil
}

// fallbackHistory captures raw conversational excerpts from each ancestor,
// nearest first.
func (b *Builder) fallbackHistory(ctx context.Context, lineage []*node.Node) ([]node.HistoryExcerpt, error) {
	var history []node.HistoryExcerpt

	for depth, ancestor := range lineage {
		messages, err := b.store.Messages(ctx, ancestor.ID)
		if err != nil {
			return nil, err
		}

		conversational := make([]*node.Message, 0, len(messages))
		for _, m := range messages {
			if m.IsConversational() {
				conversational = append(conversational, m)
			}
		}
		if len(conversational) > FallbackMessagesPerAncestor {
			conversational = conversational[len(conversational)-FallbackMessagesPerAncestor:]
		}

		for _, m := range conversational {
			truncated := len(m.Content) > FallbackExcerptMaxLen
			history = append(history, node.HistoryExcerpt{
				Role:         m.Role,
				Content:      utils.Truncate(m.Content, FallbackExcerptMaxLen),
				SourceNodeID: ancestor.ID,
				SourceTitle:  ancestor.Title,
				LineageDepth: depth,
				Truncated:    truncated,
			})
		}
	}

	return history, nil
}
