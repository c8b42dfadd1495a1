package workspace_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/graph"
	"github.com/fractalhq/fractal/pkg/inherit"
	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/llm/llmtest"
	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage/inmemory"
	"github.com/fractalhq/fractal/pkg/workspace"
)

var _ = Describe("Service", func() {
	var (
		ctx     context.Context
		store   *inmemory.Driver
		client  *llmtest.Client
		service *workspace.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = inmemory.NewDriver()
		client = llmtest.NewClient()

		builder := inherit.NewBuilder(store, inherit.Config{})
		graphSvc := graph.NewService(store, nil)
		service = workspace.NewService(store, client, builder, graphSvc, nil, nil)
	})

	createNode := func(title string, parentID *uuid.UUID) *node.Node {
		n, err := service.CreateNode(ctx, workspace.CreateNodeRequest{
			ParentID: parentID,
			Title:    title,
		})
		Expect(err).NotTo(HaveOccurred())
		return n
	}

	Describe("CreateNode", func() {
		It("places a root node at the origin with no snapshot", func() {
			root := createNode("root", nil)

			Expect(root.Position).To(Equal(node.Position{X: 0, Y: 0}))
			Expect(root.Inherited).To(BeNil())
			Expect(root.Status).To(Equal(node.StatusActive))
			Expect(root.Type).To(Equal(node.TypeStandard))
		})

		It("offsets children by their sibling count", func() {
			root := createNode("root", nil)

			first := createNode("first", &root.ID)
			second := createNode("second", &root.ID)

			Expect(first.Position).To(Equal(node.Position{X: 0, Y: 200}))
			Expect(second.Position).To(Equal(node.Position{X: 200, Y: 200}))
		})

		It("freezes the inherited snapshot at creation time", func() {
			root := createNode("root", nil)
			Expect(store.CreateSummary(ctx, &node.Summary{
				NodeID:   root.ID,
				Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "original"}}},
			})).To(Succeed())

			child := createNode("child", &root.ID)

			Expect(store.CreateSummary(ctx, &node.Summary{
				NodeID:   root.ID,
				Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "changed"}}},
			})).To(Succeed())

			stored, err := store.Node(ctx, child.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Inherited).NotTo(BeNil())
			Expect(stored.Inherited.Facts).To(HaveLen(1))
			Expect(stored.Inherited.Facts[0].Fact).To(Equal("original"))
		})

		It("inherits the parent's project", func() {
			projectID := uuid.New()
			Expect(store.CreateProject(ctx, &node.Project{ID: projectID, Name: "p"})).To(Succeed())

			root, err := service.CreateNode(ctx, workspace.CreateNodeRequest{
				ProjectID: &projectID,
				Title:     "root",
			})
			Expect(err).NotTo(HaveOccurred())

			child := createNode("child", &root.ID)
			Expect(child.ProjectID).NotTo(BeNil())
			Expect(*child.ProjectID).To(Equal(projectID))
		})

		It("refuses to branch from a deleted node", func() {
			root := createNode("root", nil)
			_, err := service.Delete(ctx, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateNode(ctx, workspace.CreateNodeRequest{
				ParentID: &root.ID,
				Title:    "child",
			})

			var stateErr *workspace.InvalidStateError
			Expect(errors.As(err, &stateErr)).To(BeTrue())
			Expect(stateErr.Status).To(Equal(node.StatusDeleted))
		})

		It("records a NODE_CREATED event", func() {
			root := createNode("root", nil)

			events := store.Events(root.ID)
			Expect(events).To(HaveLen(1))
			Expect(events[0].Type).To(Equal(node.EventNodeCreated))
		})
	})

	Describe("SendMessage", func() {
		var root *node.Node

		BeforeEach(func() {
			root = createNode("root", nil)
		})

		It("persists both turns with token estimates", func() {
			client.Respond(llm.RoleMainReasoner, "the reply has four words")

			result, err := service.SendMessage(ctx, root.ID, "hello there general kenobi", "alice")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.UserMessage.Role).To(Equal(node.RoleUser))
			Expect(result.UserMessage.TokenCount).To(HaveValue(Equal(5)))
			Expect(result.AssistantMessage.Content).To(Equal("the reply has four words"))
			Expect(result.AssistantMessage.TokenCount).To(HaveValue(Equal(6)))
			Expect(result.ServedBy).To(Equal(llm.RoleMainReasoner))

			messages, err := store.Messages(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(2))
		})

		It("rejects chat on a non-active node", func() {
			_, err := service.Delete(ctx, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.SendMessage(ctx, root.ID, "hi", "")

			var stateErr *workspace.InvalidStateError
			Expect(errors.As(err, &stateErr)).To(BeTrue())
		})

		It("keeps the user turn when generation fails", func() {
			client.FailWith(llm.RoleMainReasoner, errors.New("model offline"))

			_, err := service.SendMessage(ctx, root.ID, "hi", "")
			var genErr *llm.GenerationError
			Expect(errors.As(err, &genErr)).To(BeTrue())

			messages, err := store.Messages(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(1))
			Expect(messages[0].Role).To(Equal(node.RoleUser))
		})

		It("routes exploration nodes to the exploration role", func() {
			exploration, err := service.CreateNode(ctx, workspace.CreateNodeRequest{
				ParentID: &root.ID,
				Title:    "what if",
				Type:     node.TypeExploration,
			})
			Expect(err).NotTo(HaveOccurred())

			client.Respond(llm.RoleExploration, "exploring")

			result, err := service.SendMessage(ctx, exploration.ID, "try this", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ServedBy).To(Equal(llm.RoleExploration))
			Expect(client.CallsFor(llm.RoleExploration)).To(HaveLen(1))
		})

		It("reports exploration fallback on the assistant message", func() {
			exploration, err := service.CreateNode(ctx, workspace.CreateNodeRequest{
				ParentID: &root.ID,
				Title:    "what if",
				Type:     node.TypeExploration,
			})
			Expect(err).NotTo(HaveOccurred())

			client.RespondWithFallback(llm.RoleExploration, llm.RoleMainReasoner, "degraded reply")

			result, err := service.SendMessage(ctx, exploration.ID, "try this", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.ServedBy).To(Equal(llm.RoleMainReasoner))
			Expect(result.FallbackFrom).To(Equal(llm.RoleExploration))
			Expect(result.AssistantMessage.Metadata).To(HaveKeyWithValue("fallback_from", "exploration"))
		})

		It("feeds the frozen snapshot into the chat prompt", func() {
			Expect(store.CreateSummary(ctx, &node.Summary{
				NodeID:   root.ID,
				Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "inherited wisdom"}}},
			})).To(Succeed())
			child := createNode("child", &root.ID)

			client.Respond(llm.RoleMainReasoner, "ok")
			_, err := service.SendMessage(ctx, child.ID, "hi", "")
			Expect(err).NotTo(HaveOccurred())

			calls := client.CallsFor(llm.RoleMainReasoner)
			Expect(calls).To(HaveLen(1))
			Expect(calls[0].SystemPrompt).To(ContainSubstring("inherited wisdom"))
			Expect(calls[0].UserContent).To(Equal("hi"))
		})
	})

	Describe("Summarize", func() {
		var root *node.Node

		BeforeEach(func() {
			root = createNode("root", nil)
			Expect(store.CreateMessage(ctx, &node.Message{
				NodeID: root.ID, Role: node.RoleUser, Content: "let's use postgres",
			})).To(Succeed())
		})

		It("stores the parsed summary as latest and extracts edges", func() {
			client.Respond(llm.RoleMainReasoner, `{"FACTS": [{"fact": "use postgres"}]}`)
			client.Respond(llm.RoleGraphBuilder, `{"entities": ["postgres"], "relations": [{"from_entity": "fractal", "to_entity": "postgres", "relation_type": "USES", "confidence": 0.9}]}`)

			result, err := service.Summarize(ctx, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.GraphStatus).To(Equal(workspace.GraphStatusSuccess))
			Expect(result.EdgesAdded).To(Equal(1))
			Expect(result.Summary.Document.Facts).To(HaveLen(1))

			latest, err := store.LatestSummary(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).NotTo(BeNil())
			Expect(latest.Document.Facts[0].Fact).To(Equal("use postgres"))

			edges, err := store.NodeEdges(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(1))
		})

		It("flips the previous latest summary", func() {
			client.Respond(llm.RoleMainReasoner, `{"FACTS": [{"fact": "v1"}]}`)
			client.Respond(llm.RoleGraphBuilder, `{"entities": [], "relations": []}`)
			_, err := service.Summarize(ctx, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			client.Respond(llm.RoleMainReasoner, `{"FACTS": [{"fact": "v2"}]}`)
			client.Respond(llm.RoleGraphBuilder, `{"entities": [], "relations": []}`)
			_, err = service.Summarize(ctx, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			latest, err := store.LatestSummary(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.Document.Facts[0].Fact).To(Equal("v2"))
		})

		It("rejects a frozen node", func() {
			Expect(store.SetNodeStatus(ctx, root.ID, node.StatusFrozen)).To(Succeed())

			_, err := service.Summarize(ctx, root.ID, "")

			var invalid *workspace.InvalidStateError
			Expect(errors.As(err, &invalid)).To(BeTrue())

			latest, err := store.LatestSummary(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(BeNil())
		})

		It("fails with no state change on a malformed summary", func() {
			client.Respond(llm.RoleMainReasoner, "not json at all")

			_, err := service.Summarize(ctx, root.ID, "")

			var malformed *llm.MalformedOutputError
			Expect(errors.As(err, &malformed)).To(BeTrue())

			latest, err := store.LatestSummary(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(BeNil())
		})

		It("degrades gracefully when graph extraction fails", func() {
			client.Respond(llm.RoleMainReasoner, `{"FACTS": [{"fact": "use postgres"}]}`)
			client.FailWith(llm.RoleGraphBuilder, errors.New("device b unreachable"))

			result, err := service.Summarize(ctx, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.GraphStatus).To(Equal(workspace.GraphStatusFailed))
			Expect(result.GraphHint).To(Equal(workspace.GraphRetryHint))

			// The summary commit survives the failed extraction.
			latest, err := store.LatestSummary(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).NotTo(BeNil())
		})

		It("accepts fenced model output", func() {
			client.Respond(llm.RoleMainReasoner, "```json\n{\"FACTS\": [{\"fact\": \"fenced\"}]}\n```")
			client.Respond(llm.RoleGraphBuilder, `{"entities": [], "relations": []}`)

			result, err := service.Summarize(ctx, root.ID, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Summary.Document.Facts[0].Fact).To(Equal("fenced"))
		})
	})

	Describe("Merge", func() {
		var root, branch *node.Node

		BeforeEach(func() {
			root = createNode("main", nil)
			branch = createNode("experiment", &root.ID)
		})

		It("rejects a target outside the source's lineage", func() {
			other := createNode("sibling", &root.ID)

			_, err := service.Merge(ctx, branch.ID, other.ID, "")

			var mergeErr *workspace.InvalidMergeError
			Expect(errors.As(err, &mergeErr)).To(BeTrue())
		})

		It("rejects merging a node into itself", func() {
			_, err := service.Merge(ctx, branch.ID, branch.ID, "")

			var mergeErr *workspace.InvalidMergeError
			Expect(errors.As(err, &mergeErr)).To(BeTrue())
		})

		It("aborts with no state change on a malformed arbiter response", func() {
			client.Respond(llm.RoleMainReasoner, `{"conflicts": []}`)

			_, err := service.Merge(ctx, branch.ID, root.ID, "")

			var malformed *llm.MalformedOutputError
			Expect(errors.As(err, &malformed)).To(BeTrue())

			source, err := store.Node(ctx, branch.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(source.Status).To(Equal(node.StatusActive))

			latest, err := store.LatestSummary(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(BeNil())
		})

		It("stores the updated summary, folds the graph, and freezes the source", func() {
			Expect(store.InsertEdge(ctx, &node.Edge{
				FromEntity: "cache", ToEntity: "redis",
				RelationType: "USES", SourceNode: branch.ID, Confidence: 0.8,
			})).To(Succeed())

			client.Respond(llm.RoleMainReasoner, `{"updated_target_summary": {"FACTS": [{"fact": "redis it is"}]}, "conflicts": ["tabs vs spaces"]}`)

			result, err := service.Merge(ctx, branch.ID, root.ID, "alice")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Conflicts).To(Equal([]string{"tabs vs spaces"}))
			Expect(result.EdgesFolded).To(Equal(1))

			latest, err := store.LatestSummary(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.Document.Facts[0].Fact).To(Equal("redis it is"))

			source, err := store.Node(ctx, branch.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(source.Status).To(Equal(node.StatusFrozen))

			targetEdges, err := store.NodeEdges(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(targetEdges).To(HaveLen(1))
		})

		It("appends a summary-role audit message on the target", func() {
			client.Respond(llm.RoleMainReasoner, `{"updated_target_summary": {"FACTS": [{"fact": "redis it is"}]}}`)

			_, err := service.Merge(ctx, branch.ID, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			messages, err := store.Messages(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(1))
			Expect(messages[0].Role).To(Equal(node.RoleSummary))
			Expect(messages[0].Content).To(ContainSubstring(`Merged from "experiment"`))
			Expect(messages[0].Content).To(ContainSubstring("redis it is"))
		})

		It("refuses to merge a frozen source twice", func() {
			client.Respond(llm.RoleMainReasoner, `{"updated_target_summary": {"FACTS": []}}`)
			_, err := service.Merge(ctx, branch.ID, root.ID, "")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Merge(ctx, branch.ID, root.ID, "")

			var stateErr *workspace.InvalidStateError
			Expect(errors.As(err, &stateErr)).To(BeTrue())
			Expect(stateErr.Status).To(Equal(node.StatusFrozen))
		})
	})

	Describe("Delete", func() {
		It("soft-deletes the whole subtree and its edges", func() {
			root := createNode("root", nil)
			child := createNode("child", &root.ID)
			grandchild := createNode("grandchild", &child.ID)

			Expect(store.InsertEdge(ctx, &node.Edge{
				FromEntity: "a", ToEntity: "b", RelationType: "USES",
				SourceNode: grandchild.ID, Confidence: 1,
			})).To(Succeed())

			result, err := service.Delete(ctx, child.ID, "")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.NodesDeleted).To(Equal(2))
			Expect(result.EdgesDeleted).To(Equal(1))

			for _, id := range []uuid.UUID{child.ID, grandchild.ID} {
				n, err := store.Node(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(n.Status).To(Equal(node.StatusDeleted))
			}

			kept, err := store.Node(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(kept.Status).To(Equal(node.StatusActive))
		})
	})

	Describe("CopyNode", func() {
		It("duplicates messages, summary, and edges under a new sibling", func() {
			root := createNode("root", nil)
			original := createNode("idea", &root.ID)

			Expect(store.CreateMessage(ctx, &node.Message{
				NodeID: original.ID, Role: node.RoleUser, Content: "hello",
			})).To(Succeed())
			Expect(store.CreateSummary(ctx, &node.Summary{
				NodeID:   original.ID,
				Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "f"}}},
			})).To(Succeed())
			Expect(store.InsertEdge(ctx, &node.Edge{
				FromEntity: "a", ToEntity: "b", RelationType: "USES",
				SourceNode: original.ID, Confidence: 0.5,
			})).To(Succeed())

			copied, err := service.CopyNode(ctx, original.ID, "")
			Expect(err).NotTo(HaveOccurred())

			Expect(copied.Title).To(Equal("idea (Copy)"))
			Expect(copied.ParentID).To(HaveValue(Equal(root.ID)))
			Expect(copied.Position.X).To(Equal(200.0))

			messages, err := store.Messages(ctx, copied.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(1))

			latest, err := store.LatestSummary(ctx, copied.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).NotTo(BeNil())

			edges, err := store.NodeEdges(ctx, copied.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(1))
			Expect(edges[0].SourceNode).To(Equal(copied.ID))
		})
	})

	Describe("Tree", func() {
		It("nests children and previews leading facts", func() {
			root := createNode("root", nil)
			child := createNode("child", &root.ID)

			Expect(store.CreateSummary(ctx, &node.Summary{
				NodeID: root.ID,
				Document: node.SummaryDocument{Facts: []node.Fact{
					{Fact: "one"}, {Fact: "two"}, {Fact: "three"}, {Fact: "four"},
				}},
			})).To(Succeed())

			tree, err := service.Tree(ctx, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(tree).To(HaveLen(1))
			Expect(tree[0].ID).To(Equal(root.ID))
			Expect(tree[0].HasSummary).To(BeTrue())
			Expect(tree[0].SummaryText).To(Equal("one; two; three"))
			Expect(tree[0].Children).To(HaveLen(1))
			Expect(tree[0].Children[0].ID).To(Equal(child.ID))
			Expect(tree[0].Children[0].HasSummary).To(BeFalse())
		})

		It("hides deleted nodes", func() {
			root := createNode("root", nil)
			child := createNode("child", &root.ID)
			_, err := service.Delete(ctx, child.ID, "")
			Expect(err).NotTo(HaveOccurred())

			tree, err := service.Tree(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].Children).To(BeEmpty())
		})
	})
})
