package inherit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fractalhq/fractal/pkg/node"
)

// Rendering caps for the inherited-context section of the chat prompt.
const (
	// MaxKeyEntitiesShown caps the KEY ENTITIES list.
	MaxKeyEntitiesShown = 20

	// MaxOpenQuestionsShown caps the OPEN QUESTIONS list.
	MaxOpenQuestionsShown = 5
)

func formatSummary(doc *node.SummaryDocument) string {
	if doc == nil || doc.IsEmpty() {
		return "(no summary)"
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "(no summary)"
	}
	return string(data)
}

func formatEdges(edges []*node.Edge) string {
	if len(edges) == 0 {
		return "(no graph)"
	}
	lines := make([]string, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, fmt.Sprintf("%s --[%s]--> %s (confidence: %.2f)",
			e.FromEntity, e.RelationType, e.ToEntity, e.Confidence))
	}
	return strings.Join(lines, "\n")
}

func formatMessages(messages []*node.Message) string {
	if len(messages) == 0 {
		return "(no messages)"
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("[%s]: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}

// formatInherited renders a context snapshot as the inherited-context section
// of the chat prompt. Structured context wins; the raw-history transcript is
// shown only when the snapshot captured no facts and no decisions.
func formatInherited(ic *node.InheritedContext) string {
	if ic == nil {
		return "(root node, no inherited context)"
	}

	if !ic.HasStructuredContext() {
		if len(ic.ConversationHistory) == 0 {
			return "(no inherited context)"
		}
		var b strings.Builder
		b.WriteString("Previous conversation from parent branch:\n")
		for _, h := range ic.ConversationHistory {
			fmt.Fprintf(&b, "[%s @ %s]: %s\n", h.Role, h.SourceTitle, h.Content)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	var b strings.Builder

	if len(ic.Facts) > 0 {
		b.WriteString("INHERITED FACTS:\n")
		for _, f := range ic.Facts {
			fmt.Fprintf(&b, "- %s (from: %s, depth: %d)\n", f.Fact, f.SourceTitle, f.LineageDepth)
		}
	}

	if len(ic.Decisions) > 0 {
		b.WriteString("CONFIRMED DECISIONS:\n")
		for _, d := range ic.Decisions {
			fmt.Fprintf(&b, "- %s (from: %s, depth: %d)\n", d.Decision, d.SourceTitle, d.LineageDepth)
		}
	}

	if len(ic.KeyEntities) > 0 {
		entities := ic.KeyEntities
		if len(entities) > MaxKeyEntitiesShown {
			entities = entities[:MaxKeyEntitiesShown]
		}
		b.WriteString("KEY ENTITIES: ")
		b.WriteString(strings.Join(entities, ", "))
		b.WriteString("\n")
	}

	if len(ic.OpenQuestions) > 0 {
		questions := ic.OpenQuestions
		if len(questions) > MaxOpenQuestionsShown {
			questions = questions[:MaxOpenQuestionsShown]
		}
		b.WriteString("OPEN QUESTIONS:\n")
		for _, q := range questions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
