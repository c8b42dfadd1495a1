package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/api"
	"github.com/fractalhq/fractal/pkg/graph"
	"github.com/fractalhq/fractal/pkg/inherit"
	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/llm/llmtest"
	"github.com/fractalhq/fractal/pkg/storage/inmemory"
	"github.com/fractalhq/fractal/pkg/workspace"
)

var _ = Describe("Server", func() {
	var (
		server *api.Server
		store  *inmemory.Driver
		client *llmtest.Client
	)

	// do issues a request against the in-process app and decodes the JSON
	// response into out (skipped when out is nil).
	do := func(method, path string, body any, out any) *http.Response {
		var reader io.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(payload)
		}

		req := httptest.NewRequest(method, path, reader)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := server.App().Test(req, -1)
		Expect(err).NotTo(HaveOccurred())

		if out != nil {
			Expect(json.NewDecoder(resp.Body).Decode(out)).To(Succeed())
		}
		return resp
	}

	createNode := func(title string, parentID *uuid.UUID) uuid.UUID {
		reqBody := map[string]any{"title": title}
		if parentID != nil {
			reqBody["parent_id"] = parentID.String()
		}

		var created struct {
			ID uuid.UUID `json:"node_id"`
		}
		resp := do(http.MethodPost, "/api/v1/nodes", reqBody, &created)
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))
		return created.ID
	}

	BeforeEach(func() {
		store = inmemory.NewDriver()
		client = llmtest.NewClient()

		builder := inherit.NewBuilder(store, inherit.Config{})
		graphSvc := graph.NewService(store, zap.NewNop())
		ws := workspace.NewService(store, client, builder, graphSvc, nil, zap.NewNop())

		server = api.NewServer(api.Config{ListenAddr: ":0"}, ws, zap.NewNop())
	})

	Describe("ping", func() {
		It("responds pong", func() {
			var body string
			resp := do(http.MethodGet, "/ping", nil, &body)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body).To(Equal("pong"))
		})
	})

	Describe("node creation", func() {
		It("creates a root node", func() {
			var created map[string]any
			resp := do(http.MethodPost, "/api/v1/nodes", map[string]any{"title": "root"}, &created)
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			Expect(created["title"]).To(Equal("root"))
			Expect(created["node_type"]).To(Equal("standard"))
		})

		It("rejects a missing title", func() {
			var errBody api.ErrorResponse
			resp := do(http.MethodPost, "/api/v1/nodes", map[string]any{}, &errBody)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(errBody.Error).To(ContainSubstring("title is required"))
		})

		It("rejects an overlong title", func() {
			long := make([]byte, 201)
			for i := range long {
				long[i] = 'x'
			}

			resp := do(http.MethodPost, "/api/v1/nodes", map[string]any{"title": string(long)}, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("rejects an unknown node type", func() {
			resp := do(http.MethodPost, "/api/v1/nodes", map[string]any{
				"title":     "branch",
				"node_type": "mystery",
			}, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for a missing parent", func() {
			missing := uuid.New()
			resp := do(http.MethodPost, "/api/v1/nodes", map[string]any{
				"title":     "orphan",
				"parent_id": missing.String(),
			}, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("messages", func() {
		It("round-trips a chat turn", func() {
			id := createNode("root", nil)
			client.Respond(llm.RoleMainReasoner, "hello back")

			var result map[string]any
			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/messages", id), map[string]any{
				"content": "hello",
			}, &result)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var listing struct {
				Count int `json:"count"`
			}
			resp = do(http.MethodGet, fmt.Sprintf("/api/v1/nodes/%s/messages", id), nil, &listing)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(listing.Count).To(Equal(2))
		})

		It("rejects empty content", func() {
			id := createNode("root", nil)

			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/messages", id), map[string]any{}, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("surfaces generation failures as 500", func() {
			id := createNode("root", nil)
			client.FailWith(llm.RoleMainReasoner, fmt.Errorf("model offline"))

			var body api.ErrorResponse
			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/messages", id), map[string]any{
				"content": "hello",
			}, &body)
			Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
			Expect(body.Error).To(ContainSubstring("model offline"))
		})

		It("returns 404 when listing messages of a missing node", func() {
			resp := do(http.MethodGet, fmt.Sprintf("/api/v1/nodes/%s/messages", uuid.New()), nil, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("rejects a malformed node id", func() {
			resp := do(http.MethodGet, "/api/v1/nodes/not-a-uuid/messages", nil, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("summarize", func() {
		It("stores a summary and reports graph status", func() {
			id := createNode("root", nil)
			client.Respond(llm.RoleMainReasoner, `{"FACTS": ["fact one"]}`)
			client.Respond(llm.RoleGraphBuilder, `{"entities": ["a", "b"], "relations": [{"from_entity": "a", "to_entity": "b", "relation_type": "USES"}]}`)

			var result struct {
				GraphStatus string `json:"graph_extraction_status"`
				EdgesAdded  int    `json:"edges_added"`
			}
			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/summarize", id), nil, &result)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(result.GraphStatus).To(Equal(workspace.GraphStatusSuccess))
			Expect(result.EdgesAdded).To(Equal(1))
		})

		It("surfaces a malformed summary as 500", func() {
			id := createNode("root", nil)
			client.Respond(llm.RoleMainReasoner, "not json at all")

			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/summarize", id), nil, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("merge", func() {
		It("rejects merging into a non-ancestor", func() {
			a := createNode("a", nil)
			b := createNode("b", nil)

			var errBody api.ErrorResponse
			resp := do(http.MethodPost, "/api/v1/nodes/merge", map[string]any{
				"source_id": a.String(),
				"target_id": b.String(),
			}, &errBody)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(errBody.Error).To(ContainSubstring("not an ancestor"))
		})

		It("merges a branch into its parent", func() {
			parent := createNode("parent", nil)
			child := createNode("child", &parent)

			client.Respond(llm.RoleMainReasoner, `{"updated_target_summary": {"FACTS": ["merged"]}, "conflicts": []}`)

			var result struct {
				TargetID uuid.UUID `json:"target_id"`
			}
			resp := do(http.MethodPost, "/api/v1/nodes/merge", map[string]any{
				"source_id": child.String(),
				"target_id": parent.String(),
			}, &result)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(result.TargetID).To(Equal(parent))
		})

		It("rejects a body missing ids", func() {
			resp := do(http.MethodPost, "/api/v1/nodes/merge", map[string]any{}, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("delete and copy", func() {
		It("soft-deletes a subtree", func() {
			parent := createNode("parent", nil)
			createNode("child", &parent)

			var result struct {
				NodesDeleted int `json:"nodes_deleted"`
			}
			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/delete", parent), nil, &result)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(result.NodesDeleted).To(Equal(2))
		})

		It("rejects chatting on a deleted node", func() {
			id := createNode("root", nil)
			do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/delete", id), nil, nil)

			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/messages", id), map[string]any{
				"content": "hello",
			}, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("copies a node", func() {
			id := createNode("original", nil)

			var copied map[string]any
			resp := do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/copy", id), nil, &copied)
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			Expect(copied["title"]).To(Equal("original (Copy)"))
		})
	})

	Describe("tree and graph", func() {
		It("returns the nested tree", func() {
			parent := createNode("parent", nil)
			createNode("child", &parent)

			var body struct {
				Tree []struct {
					Title    string `json:"title"`
					Children []struct {
						Title string `json:"title"`
					} `json:"children"`
				} `json:"tree"`
			}
			resp := do(http.MethodGet, "/api/v1/nodes/tree", nil, &body)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body.Tree).To(HaveLen(1))
			Expect(body.Tree[0].Children).To(HaveLen(1))
			Expect(body.Tree[0].Children[0].Title).To(Equal("child"))
		})

		It("returns the lineage graph with its entity set", func() {
			id := createNode("root", nil)
			client.Respond(llm.RoleMainReasoner, `{"FACTS": ["f"]}`)
			client.Respond(llm.RoleGraphBuilder, `{"entities": [], "relations": [{"from_entity": "api", "to_entity": "sqlite", "relation_type": "USES"}]}`)
			do(http.MethodPost, fmt.Sprintf("/api/v1/nodes/%s/summarize", id), nil, nil)

			var body api.GraphResponse
			resp := do(http.MethodGet, fmt.Sprintf("/api/v1/nodes/%s/graph", id), nil, &body)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body.Edges).To(HaveLen(1))
			Expect(body.Entities).To(ConsistOf("api", "sqlite"))
		})
	})

	Describe("projects", func() {
		It("creates a project with its root node", func() {
			var result struct {
				Project struct {
					ID uuid.UUID `json:"project_id"`
				} `json:"project"`
				Root struct {
					Title string `json:"title"`
				} `json:"root_node"`
			}
			resp := do(http.MethodPost, "/api/v1/projects", map[string]any{"name": "demo"}, &result)
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			Expect(result.Root.Title).To(Equal("demo Root"))

			var detail struct {
				NodeCount int `json:"node_count"`
			}
			resp = do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%s", result.Project.ID), nil, &detail)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(detail.NodeCount).To(Equal(1))
		})

		It("rejects a nameless project", func() {
			resp := do(http.MethodPost, "/api/v1/projects", map[string]any{}, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("scopes the project tree to the project", func() {
			var result struct {
				Project struct {
					ID uuid.UUID `json:"project_id"`
				} `json:"project"`
			}
			do(http.MethodPost, "/api/v1/projects", map[string]any{"name": "demo"}, &result)
			createNode("unscoped", nil)

			var body struct {
				Tree []struct {
					Title string `json:"title"`
				} `json:"tree"`
			}
			resp := do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%s/tree", result.Project.ID), nil, &body)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body.Tree).To(HaveLen(1))
			Expect(body.Tree[0].Title).To(Equal("demo Root"))
		})

		It("returns 404 for a missing project tree", func() {
			resp := do(http.MethodGet, fmt.Sprintf("/api/v1/projects/%s/tree", uuid.New()), nil, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})
