package sqlite_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/storage/sqlite"
)

var _ = Describe("Driver", func() {
	var (
		driver *sqlite.Driver
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
		var err error
		driver, err = sqlite.NewDriver(":memory:")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if driver != nil {
			driver.Close()
		}
	})

	Describe("NewDriver", func() {
		It("creates a driver with file database", func() {
			tmpDir := GinkgoT().TempDir()
			dbPath := filepath.Join(tmpDir, "test.db")

			s, err := sqlite.NewDriver(dbPath)
			Expect(err).NotTo(HaveOccurred())
			defer s.Close()

			// Verify file was created
			_, err = os.Stat(dbPath)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("nodes", func() {
		It("stores and retrieves a node with inherited context", func() {
			parent := makeNode("parent", nil)

			child := &node.Node{
				ID:       uuid.New(),
				ParentID: &parent.ID,
				Title:    "child",
				Type:     node.TypeStandard,
				Status:   node.StatusActive,
				Inherited: &node.InheritedContext{
					Facts: []node.InheritedFact{{
						Fact: "inherited", SourceNodeID: parent.ID, SourceTitle: "parent",
					}},
					ParentNodeID: parent.ID,
				},
			}
			Expect(driver.CreateNode(ctx, child)).To(Succeed())

			retrieved, err := driver.Node(ctx, child.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.ParentID).To(HaveValue(Equal(parent.ID)))
			Expect(retrieved.Inherited).NotTo(BeNil())
			Expect(retrieved.Inherited.Facts[0].Fact).To(Equal("inherited"))
		})

		It("returns NotFoundError for a missing node", func() {
			_, err := driver.Node(ctx, uuid.New())

			var notFound storage.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})

		It("rejects a child of a missing parent", func() {
			missing := uuid.New()
			err := driver.CreateNode(ctx, &node.Node{
				ID:       uuid.New(),
				ParentID: &missing,
				Title:    "orphan",
				Type:     node.TypeStandard,
				Status:   node.StatusActive,
			})

			var notFound storage.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})

		It("walks lineage from leaf to root", func() {
			root := makeNode("root", nil)
			mid := makeNode("mid", &root.ID)
			leaf := makeNode("leaf", &mid.ID)

			lineage, err := driver.Lineage(ctx, leaf.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(lineage).To(HaveLen(3))
			Expect(lineage[0].ID).To(Equal(leaf.ID))
			Expect(lineage[2].ID).To(Equal(root.ID))
		})

		It("collects all transitive descendants", func() {
			root := makeNode("root", nil)
			a := makeNode("a", &root.ID)
			b := makeNode("b", &root.ID)
			aa := makeNode("aa", &a.ID)

			descendants, err := driver.Descendants(ctx, root.ID)
			Expect(err).NotTo(HaveOccurred())

			ids := make([]uuid.UUID, 0, len(descendants))
			for _, d := range descendants {
				ids = append(ids, d.ID)
			}
			Expect(ids).To(ConsistOf(a.ID, b.ID, aa.ID))
		})

		It("excludes deleted nodes from the tree listing", func() {
			root := makeNode("root", nil)
			child := makeNode("child", &root.ID)

			Expect(driver.SetNodeStatus(ctx, child.ID, node.StatusDeleted)).To(Succeed())

			tree, err := driver.ListTree(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].ID).To(Equal(root.ID))

			// Still readable by direct lookup.
			deleted, err := driver.Node(ctx, child.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.Status).To(Equal(node.StatusDeleted))
		})
	})

	Describe("messages", func() {
		It("returns the trailing window in ascending order", func() {
			n := makeNode("root", nil)

			for _, content := range []string{"one", "two", "three"} {
				Expect(driver.CreateMessage(ctx, &node.Message{
					NodeID: n.ID, Role: node.RoleUser, Content: content,
				})).To(Succeed())
			}

			last, err := driver.LastMessages(ctx, n.ID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(last).To(HaveLen(2))
			Expect(last[0].Content).To(Equal("two"))
			Expect(last[1].Content).To(Equal("three"))
		})
	})

	Describe("summaries", func() {
		It("flips the prior latest on create", func() {
			n := makeNode("root", nil)

			Expect(driver.CreateSummary(ctx, &node.Summary{
				NodeID:   n.ID,
				Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "v1"}}},
			})).To(Succeed())
			Expect(driver.CreateSummary(ctx, &node.Summary{
				NodeID:   n.ID,
				Document: node.SummaryDocument{Facts: []node.Fact{{Fact: "v2"}}},
			})).To(Succeed())

			latest, err := driver.LatestSummary(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.Document.Facts[0].Fact).To(Equal("v2"))
			Expect(latest.IsLatest).To(BeTrue())
		})

		It("returns nil when a node was never summarized", func() {
			n := makeNode("root", nil)

			latest, err := driver.LatestSummary(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(BeNil())
		})
	})

	Describe("edges", func() {
		It("finds only live edges by dedup key", func() {
			n := makeNode("root", nil)

			edge := &node.Edge{
				FromEntity: "a", ToEntity: "b", RelationType: "USES",
				SourceNode: n.ID, Confidence: 0.9,
			}
			Expect(driver.InsertEdge(ctx, edge)).To(Succeed())

			found, err := driver.FindEdge(ctx, "a", "b", "USES", n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())

			count, err := driver.SoftDeleteEdges(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))

			found, err = driver.FindEdge(ctx, "a", "b", "USES", n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("rejects a duplicate live edge at the storage layer", func() {
			n := makeNode("graphed", nil)

			edge := func() *node.Edge {
				return &node.Edge{
					FromEntity: "api", ToEntity: "sqlite", RelationType: "USES",
					SourceNode: n.ID, Confidence: 0.9,
				}
			}
			Expect(driver.InsertEdge(ctx, edge())).To(Succeed())
			Expect(driver.InsertEdge(ctx, edge())).NotTo(Succeed())

			// Soft-deleted rows keep their key without blocking a re-insert.
			_, err := driver.SoftDeleteEdges(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(driver.InsertEdge(ctx, edge())).To(Succeed())
		})
	})

	Describe("projects", func() {
		It("round-trips a project and counts its nodes", func() {
			p := &node.Project{ID: uuid.New(), Name: "demo"}
			Expect(driver.CreateProject(ctx, p)).To(Succeed())

			n := &node.Node{
				ID: uuid.New(), ProjectID: &p.ID, Title: "root",
				Type: node.TypeStandard, Status: node.StatusActive,
			}
			Expect(driver.CreateNode(ctx, n)).To(Succeed())

			count, err := driver.CountProjectNodes(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})
})
