package inherit

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
)

// BuildChatContext assembles the chat system prompt for a node. The
// inherited-context section comes from the node's frozen snapshot when one
// was captured at creation; nodes predating snapshot capture fall back to a
// live lineage walk.
func (b *Builder) BuildChatContext(ctx context.Context, n *node.Node) (string, error) {
	inherited := n.Inherited
	if inherited == nil && n.ParentID != nil {
		live, err := b.SnapshotParentContext(ctx, *n.ParentID)
		if err != nil {
			return "", err
		}
		inherited = live
	}

	summary, err := b.store.LatestSummary(ctx, n.ID)
	if err != nil {
		return "", err
	}
	var doc *node.SummaryDocument
	if summary != nil {
		doc = &summary.Document
	}

	edges, err := b.store.NodeEdges(ctx, n.ID)
	if err != nil {
		return "", err
	}

	recent, err := b.store.LastMessages(ctx, n.ID, b.cfg.RecentMessages)
	if err != nil {
		return "", err
	}

	return render(chatTmpl, map[string]string{
		"InheritedContext": formatInherited(inherited),
		"NodeSummary":      formatSummary(doc),
		"NodeGraph":        formatEdges(edges),
		"RecentMessages":   formatMessages(recent),
		"NodeTitle":        n.Title,
		"NodeType":         string(n.Type),
	})
}

// BuildSummarizeContext assembles the summarizer system prompt and the
// message log it compresses. The parent's latest summary anchors the
// compression so inherited context is not re-extracted.
func (b *Builder) BuildSummarizeContext(ctx context.Context, n *node.Node) (systemPrompt, userContent string, err error) {
	var parentDoc *node.SummaryDocument
	if n.ParentID != nil {
		parentSummary, err := b.store.LatestSummary(ctx, *n.ParentID)
		if err != nil {
			return "", "", err
		}
		if parentSummary != nil {
			parentDoc = &parentSummary.Document
		}
	}

	messages, err := b.store.Messages(ctx, n.ID)
	if err != nil {
		return "", "", err
	}

	edges, err := b.store.NodeEdges(ctx, n.ID)
	if err != nil {
		return "", "", err
	}

	systemPrompt, err = render(summarizeTmpl, map[string]string{
		"ParentSummary": formatSummary(parentDoc),
		"AllMessages":   formatMessages(messages),
		"ExistingGraph": formatEdges(edges),
	})
	if err != nil {
		return "", "", err
	}

	userContent = fmt.Sprintf("Summarize the conversation in node %q.", n.Title)
	return systemPrompt, userContent, nil
}

// BuildGraphContext assembles the graph-builder system prompt. The node's
// existing graph and the parent's graph are included so the extractor can
// avoid duplicating known edges.
func (b *Builder) BuildGraphContext(ctx context.Context, n *node.Node, doc *node.SummaryDocument) (systemPrompt, userContent string, err error) {
	edges, err := b.store.NodeEdges(ctx, n.ID)
	if err != nil {
		return "", "", err
	}

	var parentEdges []*node.Edge
	if n.ParentID != nil {
		parentEdges, err = b.store.NodeEdges(ctx, *n.ParentID)
		if err != nil {
			return "", "", err
		}
	}

	systemPrompt, err = render(graphTmpl, map[string]string{
		"NodeSummary":  formatSummary(doc),
		"CurrentGraph": formatEdges(edges),
		"ParentGraph":  formatEdges(parentEdges),
	})
	if err != nil {
		return "", "", err
	}

	userContent = "Extract entities and relations from the summary."
	return systemPrompt, userContent, nil
}

// BuildMergeContext assembles the merge-arbiter system prompt from the
// target's and source's summaries, graphs, and the source's recent turns.
func (b *Builder) BuildMergeContext(ctx context.Context, source, target *node.Node) (systemPrompt, userContent string, err error) {
	targetDoc, err := b.latestDocument(ctx, target.ID)
	if err != nil {
		return "", "", err
	}
	sourceDoc, err := b.latestDocument(ctx, source.ID)
	if err != nil {
		return "", "", err
	}

	targetEdges, err := b.store.NodeEdges(ctx, target.ID)
	if err != nil {
		return "", "", err
	}
	sourceEdges, err := b.store.NodeEdges(ctx, source.ID)
	if err != nil {
		return "", "", err
	}

	recent, err := b.store.LastMessages(ctx, source.ID, b.cfg.RecentMessages)
	if err != nil {
		return "", "", err
	}

	systemPrompt, err = render(mergeTmpl, map[string]string{
		"TargetSummary":     formatSummary(targetDoc),
		"TargetGraph":       formatEdges(targetEdges),
		"SourceSummary":     formatSummary(sourceDoc),
		"SourceGraph":       formatEdges(sourceEdges),
		"SourceRecentChats": formatMessages(recent),
	})
	if err != nil {
		return "", "", err
	}

	userContent = fmt.Sprintf("Merge branch %q into %q.", source.Title, target.Title)
	return systemPrompt, userContent, nil
}

func (b *Builder) latestDocument(ctx context.Context, nodeID uuid.UUID) (*node.SummaryDocument, error) {
	summary, err := b.store.LatestSummary(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, nil
	}
	return &summary.Document, nil
}

func render(tmpl *template.Template, data map[string]string) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
