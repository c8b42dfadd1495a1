package inherit_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/inherit"
	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage/inmemory"
)

var _ = Describe("BuildChatContext", func() {
	var (
		ctx     context.Context
		store   *inmemory.Driver
		builder *inherit.Builder

		parent, child *node.Node
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = inmemory.NewDriver()
		builder = inherit.NewBuilder(store, inherit.Config{})

		parent = &node.Node{
			ID: uuid.New(), Title: "parent",
			Type: node.TypeStandard, Status: node.StatusActive,
		}
		Expect(store.CreateNode(ctx, parent)).To(Succeed())

		pid := parent.ID
		child = &node.Node{
			ID: uuid.New(), ParentID: &pid, Title: "child",
			Type: node.TypeStandard, Status: node.StatusActive,
		}
		Expect(store.CreateNode(ctx, child)).To(Succeed())
	})

	It("prefers the frozen snapshot over the live lineage", func() {
		child.Inherited = &node.InheritedContext{
			Facts: []node.InheritedFact{{
				Fact: "frozen fact", SourceNodeID: parent.ID, SourceTitle: "parent",
			}},
			ParentNodeID: parent.ID,
		}

		// A summary written after the snapshot must not surface.
		Expect(store.CreateSummary(ctx, &node.Summary{
			NodeID:   parent.ID,
			Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "live fact"}}},
		})).To(Succeed())

		prompt, err := builder.BuildChatContext(ctx, child)
		Expect(err).NotTo(HaveOccurred())

		Expect(prompt).To(ContainSubstring("frozen fact"))
		Expect(prompt).NotTo(ContainSubstring("live fact"))
	})

	It("walks the lineage live when the node has no snapshot", func() {
		Expect(store.CreateSummary(ctx, &node.Summary{
			NodeID:   parent.ID,
			Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "live fact"}}},
		})).To(Succeed())

		prompt, err := builder.BuildChatContext(ctx, child)
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(ContainSubstring("live fact"))
	})

	It("caps the rendered key entities and open questions", func() {
		entities := make([]string, 30)
		for i := range entities {
			entities[i] = fmt.Sprintf("entity-%02d", i)
		}
		questions := make([]string, 8)
		for i := range questions {
			questions[i] = fmt.Sprintf("question-%d", i)
		}
		child.Inherited = &node.InheritedContext{
			Facts:         []node.InheritedFact{{Fact: "f"}},
			KeyEntities:   entities,
			OpenQuestions: questions,
			ParentNodeID:  parent.ID,
		}

		prompt, err := builder.BuildChatContext(ctx, child)
		Expect(err).NotTo(HaveOccurred())

		Expect(prompt).To(ContainSubstring("entity-19"))
		Expect(prompt).NotTo(ContainSubstring("entity-20"))
		Expect(prompt).To(ContainSubstring("question-4"))
		Expect(prompt).NotTo(ContainSubstring("question-5"))
	})

	It("renders the raw-history transcript when the snapshot has no structure", func() {
		child.Inherited = &node.InheritedContext{
			ConversationHistory: []node.HistoryExcerpt{{
				Role: node.RoleUser, Content: "earlier words", SourceTitle: "parent",
			}},
			ParentNodeID: parent.ID,
		}

		prompt, err := builder.BuildChatContext(ctx, child)
		Expect(err).NotTo(HaveOccurred())

		Expect(prompt).To(ContainSubstring("Previous conversation from parent branch"))
		Expect(prompt).To(ContainSubstring("earlier words"))
	})

	It("includes the node's own summary, graph, and recent messages", func() {
		Expect(store.CreateSummary(ctx, &node.Summary{
			NodeID:   child.ID,
			Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "own fact"}}},
		})).To(Succeed())
		Expect(store.InsertEdge(ctx, &node.Edge{
			FromEntity: "api", ToEntity: "fiber",
			RelationType: "USES", SourceNode: child.ID, Confidence: 0.95,
		})).To(Succeed())
		Expect(store.CreateMessage(ctx, &node.Message{
			NodeID: child.ID, Role: node.RoleUser, Content: "latest turn",
		})).To(Succeed())

		prompt, err := builder.BuildChatContext(ctx, child)
		Expect(err).NotTo(HaveOccurred())

		Expect(prompt).To(ContainSubstring("own fact"))
		Expect(prompt).To(ContainSubstring("api --[USES]--> fiber"))
		Expect(prompt).To(ContainSubstring("[user]: latest turn"))
		Expect(prompt).To(ContainSubstring("CURRENT NODE: child"))
	})
})

var _ = Describe("BuildSummarizeContext", func() {
	It("anchors compression on the parent's latest summary", func() {
		ctx := context.Background()
		store := inmemory.NewDriver()
		builder := inherit.NewBuilder(store, inherit.Config{})

		parent := &node.Node{ID: uuid.New(), Title: "parent", Type: node.TypeStandard, Status: node.StatusActive}
		Expect(store.CreateNode(ctx, parent)).To(Succeed())
		pid := parent.ID
		child := &node.Node{ID: uuid.New(), ParentID: &pid, Title: "child", Type: node.TypeStandard, Status: node.StatusActive}
		Expect(store.CreateNode(ctx, child)).To(Succeed())

		Expect(store.CreateSummary(ctx, &node.Summary{
			NodeID:   parent.ID,
			Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "parent anchor"}}},
		})).To(Succeed())
		Expect(store.CreateMessage(ctx, &node.Message{
			NodeID: child.ID, Role: node.RoleUser, Content: "discuss things",
		})).To(Succeed())

		systemPrompt, userContent, err := builder.BuildSummarizeContext(ctx, child)
		Expect(err).NotTo(HaveOccurred())

		Expect(systemPrompt).To(ContainSubstring("parent anchor"))
		Expect(systemPrompt).To(ContainSubstring("[user]: discuss things"))
		Expect(userContent).To(ContainSubstring("child"))
	})
})

var _ = Describe("BuildMergeContext", func() {
	It("includes both sides' summaries and graphs", func() {
		ctx := context.Background()
		store := inmemory.NewDriver()
		builder := inherit.NewBuilder(store, inherit.Config{})

		target := &node.Node{ID: uuid.New(), Title: "main", Type: node.TypeStandard, Status: node.StatusActive}
		Expect(store.CreateNode(ctx, target)).To(Succeed())
		tid := target.ID
		source := &node.Node{ID: uuid.New(), ParentID: &tid, Title: "branch", Type: node.TypeStandard, Status: node.StatusActive}
		Expect(store.CreateNode(ctx, source)).To(Succeed())

		Expect(store.CreateSummary(ctx, &node.Summary{
			NodeID:   target.ID,
			Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "target fact"}}},
		})).To(Succeed())
		Expect(store.CreateSummary(ctx, &node.Summary{
			NodeID:   source.ID,
			Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "source fact"}}},
		})).To(Succeed())
		Expect(store.InsertEdge(ctx, &node.Edge{
			FromEntity: "cache", ToEntity: "redis",
			RelationType: "USES", SourceNode: source.ID, Confidence: 0.7,
		})).To(Succeed())

		systemPrompt, userContent, err := builder.BuildMergeContext(ctx, source, target)
		Expect(err).NotTo(HaveOccurred())

		Expect(systemPrompt).To(ContainSubstring("target fact"))
		Expect(systemPrompt).To(ContainSubstring("source fact"))
		Expect(systemPrompt).To(ContainSubstring("cache --[USES]--> redis"))
		Expect(userContent).To(ContainSubstring("branch"))
		Expect(userContent).To(ContainSubstring("main"))
	})
})
