package inherit_test

import (
	"context"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/inherit"
	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage/inmemory"
)

var _ = Describe("SnapshotParentContext", func() {
	var (
		ctx     context.Context
		store   *inmemory.Driver
		builder *inherit.Builder

		root, mid, leaf *node.Node
	)

	makeNode := func(title string, parent *node.Node) *node.Node {
		n := &node.Node{
			ID:     uuid.New(),
			Title:  title,
			Type:   node.TypeStandard,
			Status: node.StatusActive,
		}
		if parent != nil {
			pid := parent.ID
			n.ParentID = &pid
		}
		Expect(store.CreateNode(ctx, n)).To(Succeed())
		return n
	}

	storeSummary := func(n *node.Node, doc node.SummaryDocument) {
		Expect(store.CreateSummary(ctx, &node.Summary{
			NodeID:   n.ID,
			Document: doc,
		})).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()
		store = inmemory.NewDriver()
		builder = inherit.NewBuilder(store, inherit.Config{})

		root = makeNode("root", nil)
		mid = makeNode("mid", root)
		leaf = makeNode("leaf", mid)
	})

	It("tags facts with source node and lineage depth, nearest ancestor first", func() {
		storeSummary(leaf, node.SummaryDocument{
			Facts: []node.Fact{{Fact: "leaf fact"}},
		})
		storeSummary(root, node.SummaryDocument{
			Facts: []node.Fact{{Fact: "root fact"}},
		})

		ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(ic.Facts).To(HaveLen(2))
		Expect(ic.Facts[0].Fact).To(Equal("leaf fact"))
		Expect(ic.Facts[0].LineageDepth).To(Equal(0))
		Expect(ic.Facts[0].SourceNodeID).To(Equal(leaf.ID))
		Expect(ic.Facts[1].Fact).To(Equal("root fact"))
		Expect(ic.Facts[1].LineageDepth).To(Equal(2))
		Expect(ic.Facts[1].SourceNodeID).To(Equal(root.ID))

		Expect(ic.ParentNodeID).To(Equal(leaf.ID))
		Expect(ic.ParentTitle).To(Equal("leaf"))
		Expect(ic.LineageDepth).To(Equal(3))
	})

	It("deduplicates open questions across ancestors", func() {
		storeSummary(leaf, node.SummaryDocument{
			Facts:         []node.Fact{{Fact: "f"}},
			OpenQuestions: []string{"which database?", "what about auth?"},
		})
		storeSummary(mid, node.SummaryDocument{
			OpenQuestions: []string{"which database?"},
		})

		ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(ic.OpenQuestions).To(Equal([]string{"which database?", "what about auth?"}))
	})

	It("collects key entities from ancestor edges without duplicates", func() {
		storeSummary(leaf, node.SummaryDocument{Facts: []node.Fact{{Fact: "f"}}})

		Expect(store.InsertEdge(ctx, &node.Edge{
			FromEntity: "postgres", ToEntity: "storage",
			RelationType: "USES", SourceNode: leaf.ID, Confidence: 0.9,
		})).To(Succeed())
		Expect(store.InsertEdge(ctx, &node.Edge{
			FromEntity: "postgres", ToEntity: "pgx",
			RelationType: "USES", SourceNode: mid.ID, Confidence: 0.8,
		})).To(Succeed())

		ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(ic.KeyEntities).To(Equal([]string{"postgres", "storage", "pgx"}))
	})

	Context("when no ancestor has a summary", func() {
		It("falls back to raw conversational history", func() {
			for _, content := range []string{"hello", "world"} {
				Expect(store.CreateMessage(ctx, &node.Message{
					NodeID: leaf.ID, Role: node.RoleUser, Content: content,
				})).To(Succeed())
			}
			Expect(store.CreateMessage(ctx, &node.Message{
				NodeID: leaf.ID, Role: node.RoleSummary, Content: "synthetic audit entry",
			})).To(Succeed())

			ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(ic.HasStructuredContext()).To(BeFalse())
			Expect(ic.ConversationHistory).To(HaveLen(2))
			Expect(ic.ConversationHistory[0].Content).To(Equal("hello"))
			Expect(ic.ConversationHistory[0].SourceNodeID).To(Equal(leaf.ID))
			Expect(ic.ConversationHistory[1].Content).To(Equal("world"))
		})

		It("captures at most ten messages per ancestor", func() {
			for i := 0; i < 15; i++ {
				Expect(store.CreateMessage(ctx, &node.Message{
					NodeID: leaf.ID, Role: node.RoleUser, Content: "m",
				})).To(Succeed())
			}

			ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ic.ConversationHistory).To(HaveLen(inherit.FallbackMessagesPerAncestor))
		})

		It("truncates long excerpts and marks them", func() {
			long := strings.Repeat("x", inherit.FallbackExcerptMaxLen+50)
			Expect(store.CreateMessage(ctx, &node.Message{
				NodeID: leaf.ID, Role: node.RoleAssistant, Content: long,
			})).To(Succeed())

			ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(ic.ConversationHistory).To(HaveLen(1))
			excerpt := ic.ConversationHistory[0]
			Expect(excerpt.Truncated).To(BeTrue())
			Expect(excerpt.Content).To(HavePrefix(strings.Repeat("x", 10)))
			Expect(excerpt.Content).To(HaveSuffix("..."))
			Expect(len(excerpt.Content)).To(Equal(inherit.FallbackExcerptMaxLen + 3))
		})
	})

	Context("when any ancestor has structured context", func() {
		It("skips the raw-history fallback entirely", func() {
			storeSummary(root, node.SummaryDocument{
				Decisions: []node.Decision{{Decision: "use Go"}},
			})
			Expect(store.CreateMessage(ctx, &node.Message{
				NodeID: leaf.ID, Role: node.RoleUser, Content: "hello",
			})).To(Succeed())

			ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(ic.HasStructuredContext()).To(BeTrue())
			Expect(ic.ConversationHistory).To(BeEmpty())
		})
	})

	It("stays frozen when ancestors change afterwards", func() {
		storeSummary(leaf, node.SummaryDocument{Facts: []node.Fact{{Fact: "v1"}}})

		ic, err := builder.SnapshotParentContext(ctx, leaf.ID)
		Expect(err).NotTo(HaveOccurred())

		storeSummary(leaf, node.SummaryDocument{Facts: []node.Fact{{Fact: "v2"}}})

		Expect(ic.Facts).To(HaveLen(1))
		Expect(ic.Facts[0].Fact).To(Equal("v1"))
	})
})
