package inmemory_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/storage/inmemory"
)

var _ = Describe("Driver", func() {
	var (
		driver *inmemory.Driver
		ctx    context.Context
	)

	makeNode := func(title string, parentID *uuid.UUID) *node.Node {
		n := &node.Node{
			ID:       uuid.New(),
			ParentID: parentID,
			Title:    title,
			Type:     node.TypeStandard,
			Status:   node.StatusActive,
		}
		Expect(driver.CreateNode(ctx, n)).To(Succeed())
		return n
	}

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
	})

	Describe("nodes", func() {
		It("rejects nil nodes", func() {
			Expect(driver.CreateNode(ctx, nil)).To(HaveOccurred())
		})

		It("assigns an id and timestamp when missing", func() {
			n := &node.Node{Title: "root", Type: node.TypeStandard, Status: node.StatusActive}
			Expect(driver.CreateNode(ctx, n)).To(Succeed())
			Expect(n.ID).NotTo(Equal(uuid.Nil))
			Expect(n.CreatedAt).NotTo(BeZero())
		})

		It("returns NotFoundError for a missing node", func() {
			_, err := driver.Node(ctx, uuid.New())

			var notFound storage.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})

		It("rejects a child of a missing parent", func() {
			missing := uuid.New()
			err := driver.CreateNode(ctx, &node.Node{
				Title: "orphan", Type: node.TypeStandard, Status: node.StatusActive, ParentID: &missing,
			})

			var notFound storage.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})

		It("walks lineage self-first up to the root", func() {
			root := makeNode("root", nil)
			mid := makeNode("mid", &root.ID)
			leaf := makeNode("leaf", &mid.ID)

			lineage, err := driver.Lineage(ctx, leaf.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(lineage).To(HaveLen(3))
			Expect(lineage[0].Title).To(Equal("leaf"))
			Expect(lineage[1].Title).To(Equal("mid"))
			Expect(lineage[2].Title).To(Equal("root"))
		})

		It("counts direct children only", func() {
			root := makeNode("root", nil)
			a := makeNode("a", &root.ID)
			makeNode("aa", &a.ID)

			count, err := driver.CountChildren(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		It("scopes the tree listing to a project", func() {
			p := &node.Project{Name: "demo"}
			Expect(driver.CreateProject(ctx, p)).To(Succeed())

			inProject := &node.Node{
				Title: "in", Type: node.TypeStandard, Status: node.StatusActive, ProjectID: &p.ID,
			}
			Expect(driver.CreateNode(ctx, inProject)).To(Succeed())
			makeNode("out", nil)

			tree, err := driver.ListTree(ctx, &p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].Title).To(Equal("in"))
		})
	})

	Describe("messages", func() {
		It("keeps timestamps strictly increasing within a node", func() {
			n := makeNode("root", nil)

			for i := 0; i < 5; i++ {
				Expect(driver.CreateMessage(ctx, &node.Message{
					NodeID: n.ID, Role: node.RoleUser, Content: "turn",
				})).To(Succeed())
			}

			msgs, err := driver.Messages(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(msgs).To(HaveLen(5))
			for i := 1; i < len(msgs); i++ {
				Expect(msgs[i].Timestamp.After(msgs[i-1].Timestamp)).To(BeTrue())
			}
		})

		It("returns the whole log when the window is larger than the log", func() {
			n := makeNode("root", nil)
			Expect(driver.CreateMessage(ctx, &node.Message{
				NodeID: n.ID, Role: node.RoleUser, Content: "only",
			})).To(Succeed())

			last, err := driver.LastMessages(ctx, n.ID, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(last).To(HaveLen(1))
		})
	})

	Describe("summaries", func() {
		It("keeps exactly one latest per node", func() {
			n := makeNode("root", nil)

			for _, fact := range []string{"v1", "v2", "v3"} {
				Expect(driver.CreateSummary(ctx, &node.Summary{
					NodeID:   n.ID,
					Document: node.SummaryDocument{Facts: []node.Fact{{Fact: fact}}},
				})).To(Succeed())
			}

			latest, err := driver.LatestSummary(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.Document.Facts[0].Fact).To(Equal("v3"))
		})
	})

	Describe("edges", func() {
		It("soft-deletes all live edges and reports the count", func() {
			n := makeNode("root", nil)

			for _, to := range []string{"b", "c"} {
				Expect(driver.InsertEdge(ctx, &node.Edge{
					FromEntity: "a", ToEntity: to, RelationType: "USES",
					SourceNode: n.ID, Confidence: 1,
				})).To(Succeed())
			}

			count, err := driver.SoftDeleteEdges(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))

			// Second pass finds nothing live.
			count, err = driver.SoftDeleteEdges(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			edges, err := driver.NodeEdges(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(BeEmpty())
		})

		It("gathers live edges across a set of nodes", func() {
			a := makeNode("a", nil)
			b := makeNode("b", nil)

			Expect(driver.InsertEdge(ctx, &node.Edge{
				FromEntity: "x", ToEntity: "y", RelationType: "USES", SourceNode: a.ID, Confidence: 1,
			})).To(Succeed())
			Expect(driver.InsertEdge(ctx, &node.Edge{
				FromEntity: "y", ToEntity: "z", RelationType: "USES", SourceNode: b.ID, Confidence: 1,
			})).To(Succeed())

			edges, err := driver.EdgesForNodes(ctx, []uuid.UUID{a.ID, b.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(2))
		})
	})

	Describe("projects", func() {
		It("updates mutable fields and bumps UpdatedAt", func() {
			p := &node.Project{Name: "before"}
			Expect(driver.CreateProject(ctx, p)).To(Succeed())

			p.Name = "after"
			Expect(driver.UpdateProject(ctx, p)).To(Succeed())

			got, err := driver.Project(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("after"))
			Expect(got.UpdatedAt.Before(got.CreatedAt)).To(BeFalse())
		})

		It("returns NotFoundError when deleting a missing project", func() {
			err := driver.DeleteProject(ctx, uuid.New())

			var notFound storage.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})
	})
})
