package graph_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/graph"
	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage/inmemory"
)

var _ = Describe("Service", func() {
	var (
		ctx     context.Context
		store   *inmemory.Driver
		service *graph.Service
		nodeID  uuid.UUID
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = inmemory.NewDriver()
		service = graph.NewService(store, nil)
		nodeID = uuid.New()
	})

	Describe("StoreEdges", func() {
		It("normalizes alias field names", func() {
			inserted, err := service.StoreEdges(ctx, nodeID, []map[string]any{
				{"source": "a", "target": "b", "type": "USES", "confidence": 0.8},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(Equal(1))

			edges, err := store.NodeEdges(ctx, nodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(1))
			Expect(edges[0].FromEntity).To(Equal("a"))
			Expect(edges[0].ToEntity).To(Equal("b"))
			Expect(edges[0].RelationType).To(Equal("USES"))
			Expect(edges[0].Confidence).To(Equal(0.8))
		})

		It("prefers canonical names over aliases", func() {
			_, err := service.StoreEdges(ctx, nodeID, []map[string]any{
				{"from_entity": "canonical", "source": "alias", "to_entity": "b"},
			})
			Expect(err).NotTo(HaveOccurred())

			edges, err := store.NodeEdges(ctx, nodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges[0].FromEntity).To(Equal("canonical"))
		})

		It("defaults relation type and confidence", func() {
			_, err := service.StoreEdges(ctx, nodeID, []map[string]any{
				{"from_entity": "a", "to_entity": "b"},
			})
			Expect(err).NotTo(HaveOccurred())

			edges, err := store.NodeEdges(ctx, nodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges[0].RelationType).To(Equal(node.DefaultRelationType))
			Expect(edges[0].Confidence).To(Equal(1.0))
		})

		It("skips relations with empty endpoints", func() {
			inserted, err := service.StoreEdges(ctx, nodeID, []map[string]any{
				{"from_entity": "", "to_entity": "b"},
				{"from_entity": "a"},
				{"from_entity": "  ", "to_entity": "b"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeZero())
		})

		It("is idempotent for an identical relation set", func() {
			relations := []map[string]any{
				{"from_entity": "a", "to_entity": "b", "relation_type": "USES"},
				{"from_entity": "b", "to_entity": "c", "relation_type": "REQUIRES"},
			}

			first, err := service.StoreEdges(ctx, nodeID, relations)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(2))

			second, err := service.StoreEdges(ctx, nodeID, relations)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(BeZero())

			edges, err := store.NodeEdges(ctx, nodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(2))
		})

		It("allows the same key on a different node", func() {
			other := uuid.New()
			relations := []map[string]any{
				{"from_entity": "a", "to_entity": "b", "relation_type": "USES"},
			}

			_, err := service.StoreEdges(ctx, nodeID, relations)
			Expect(err).NotTo(HaveOccurred())

			inserted, err := service.StoreEdges(ctx, other, relations)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(Equal(1))
		})

		It("re-inserts a key whose prior edge was soft-deleted", func() {
			relations := []map[string]any{
				{"from_entity": "a", "to_entity": "b", "relation_type": "USES"},
			}
			_, err := service.StoreEdges(ctx, nodeID, relations)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.SoftDelete(ctx, nodeID)
			Expect(err).NotTo(HaveOccurred())

			inserted, err := service.StoreEdges(ctx, nodeID, relations)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(Equal(1))
		})
	})

	Describe("MergeGraphs", func() {
		var targetID uuid.UUID

		BeforeEach(func() {
			targetID = uuid.New()
		})

		It("takes the maximum confidence on key collision", func() {
			_, err := service.StoreEdges(ctx, targetID, []map[string]any{
				{"from_entity": "a", "to_entity": "b", "relation_type": "USES", "confidence": 0.9},
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.StoreEdges(ctx, nodeID, []map[string]any{
				{"from_entity": "a", "to_entity": "b", "relation_type": "USES", "confidence": 0.6},
			})
			Expect(err).NotTo(HaveOccurred())

			folded, err := service.MergeGraphs(ctx, nodeID, targetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(folded).To(Equal(1))

			edges, err := store.NodeEdges(ctx, targetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(1))
			Expect(edges[0].Confidence).To(Equal(0.9))
			Expect(edges[0].Metadata).To(HaveKeyWithValue(node.MergedFromKey, nodeID.String()))
		})

		It("raises the target confidence when the source is stronger", func() {
			_, err := service.StoreEdges(ctx, targetID, []map[string]any{
				{"from_entity": "a", "to_entity": "b", "relation_type": "USES", "confidence": 0.4},
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.StoreEdges(ctx, nodeID, []map[string]any{
				{"from_entity": "a", "to_entity": "b", "relation_type": "USES", "confidence": 0.95},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.MergeGraphs(ctx, nodeID, targetID)
			Expect(err).NotTo(HaveOccurred())

			edges, err := store.NodeEdges(ctx, targetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges[0].Confidence).To(Equal(0.95))
		})

		It("creates new target edges for keys the target lacks", func() {
			_, err := service.StoreEdges(ctx, nodeID, []map[string]any{
				{"from_entity": "x", "to_entity": "y", "relation_type": "INFLUENCES", "confidence": 0.7},
			})
			Expect(err).NotTo(HaveOccurred())

			folded, err := service.MergeGraphs(ctx, nodeID, targetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(folded).To(Equal(1))

			edges, err := store.NodeEdges(ctx, targetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(edges).To(HaveLen(1))
			Expect(edges[0].SourceNode).To(Equal(targetID))
			Expect(edges[0].Confidence).To(Equal(0.7))
			Expect(edges[0].Metadata).To(HaveKeyWithValue(node.MergedFromKey, nodeID.String()))
		})

		It("leaves the source edges untouched", func() {
			_, err := service.StoreEdges(ctx, nodeID, []map[string]any{
				{"from_entity": "x", "to_entity": "y"},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.MergeGraphs(ctx, nodeID, targetID)
			Expect(err).NotTo(HaveOccurred())

			sourceEdges, err := store.NodeEdges(ctx, nodeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(sourceEdges).To(HaveLen(1))
			Expect(sourceEdges[0].Metadata).NotTo(HaveKey(node.MergedFromKey))
		})
	})

	Describe("LineageGraph", func() {
		It("annotates edges with their owner's title", func() {
			root := &node.Node{ID: uuid.New(), Title: "root", Type: node.TypeStandard, Status: node.StatusActive}
			Expect(store.CreateNode(ctx, root)).To(Succeed())
			rid := root.ID
			child := &node.Node{ID: uuid.New(), ParentID: &rid, Title: "child", Type: node.TypeStandard, Status: node.StatusActive}
			Expect(store.CreateNode(ctx, child)).To(Succeed())

			_, err := service.StoreEdges(ctx, root.ID, []map[string]any{
				{"from_entity": "a", "to_entity": "b"},
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.StoreEdges(ctx, child.ID, []map[string]any{
				{"from_entity": "c", "to_entity": "d"},
			})
			Expect(err).NotTo(HaveOccurred())

			owned, err := service.LineageGraph(ctx, child.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(HaveLen(2))

			titles := map[string]string{}
			for _, oe := range owned {
				titles[oe.FromEntity] = oe.OwnerTitle
			}
			Expect(titles).To(HaveKeyWithValue("a", "root"))
			Expect(titles).To(HaveKeyWithValue("c", "child"))
		})
	})
})
