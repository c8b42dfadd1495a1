package postgres_test

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
	"github.com/fractalhq/fractal/pkg/storage/postgres"
)

// connStr returns the PostgreSQL connection string from environment or skips the test.
func connStr() string {
	dsn := os.Getenv("FRACTAL_TEST_POSTGRES_DSN")
	if dsn == "" {
		Skip("FRACTAL_TEST_POSTGRES_DSN not set, skipping PostgreSQL tests")
	}
	return dsn
}

var _ = Describe("Driver", func() {
	var (
		driver *postgres.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		dsn := connStr()

		var err error
		driver, err = postgres.NewDriver(ctx, dsn)
		Expect(err).NotTo(HaveOccurred())

		// Clean all nodes before each test for isolation.
		_, err = driver.Client.Node.Delete().Exec(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if driver != nil {
			driver.Close()
		}
	})

	Describe("NewDriver", func() {
		It("returns an error for invalid connection string", func() {
			_, err := postgres.NewDriver(context.Background(), "host=invalid port=9999 user=bad dbname=bad sslmode=disable connect_timeout=1")
			Expect(err).To(HaveOccurred())
			fmt.Fprintf(GinkgoWriter, "expected error: %v\n", err)
		})
	})

	Describe("nodes", func() {
		It("stores and retrieves a node", func() {
			n := &node.Node{
				ID:     uuid.New(),
				Title:  "root",
				Type:   node.TypeStandard,
				Status: node.StatusActive,
			}
			Expect(driver.CreateNode(ctx, n)).To(Succeed())

			retrieved, err := driver.Node(ctx, n.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Title).To(Equal("root"))
		})

		It("returns NotFoundError for a missing node", func() {
			_, err := driver.Node(ctx, uuid.New())

			var notFound storage.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})

		It("walks lineage from leaf to root", func() {
			root := &node.Node{ID: uuid.New(), Title: "root", Type: node.TypeStandard, Status: node.StatusActive}
			Expect(driver.CreateNode(ctx, root)).To(Succeed())
			leaf := &node.Node{ID: uuid.New(), ParentID: &root.ID, Title: "leaf", Type: node.TypeStandard, Status: node.StatusActive}
			Expect(driver.CreateNode(ctx, leaf)).To(Succeed())

			lineage, err := driver.Lineage(ctx, leaf.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(lineage).To(HaveLen(2))
			Expect(lineage[1].ID).To(Equal(root.ID))
		})
	})

	Describe("summaries", func() {
		It("flips the prior latest on create", func() {
			n := &node.Node{ID: uuid.New(), Title: "root", Type: node.TypeStandard, Status: node.StatusActive}
			Expect(driver.CreateNode(ctx, n)).To(Succeed())

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
		})
	})
})
