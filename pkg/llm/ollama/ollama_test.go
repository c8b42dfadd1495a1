package ollama_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/llm"
	"github.com/fractalhq/fractal/pkg/llm/ollama"
)

// fakeOllama serves the chat endpoint and records the models it was asked for.
type fakeOllama struct {
	server *httptest.Server
	models []string

	// failModels makes requests for these models return HTTP 500.
	failModels map[string]bool
}

func newFakeOllama() *fakeOllama {
	f := &fakeOllama{failModels: make(map[string]bool)}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Expect(r.URL.Path).To(Equal("/api/chat"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		Expect(json.NewDecoder(r.Body).Decode(&req)).To(Succeed())
		f.models = append(f.models, req.Model)

		if f.failModels[req.Model] {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "model crashed")
			return
		}

		resp := map[string]any{
			"message": map[string]string{
				"role":    "assistant",
				"content": "reply from " + req.Model,
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	return f
}

var _ = Describe("Client", func() {
	var (
		deviceA *fakeOllama
		deviceB *fakeOllama
		client  *ollama.Client
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		deviceA = newFakeOllama()
		deviceB = newFakeOllama()

		client = ollama.New(ollama.Config{
			DeviceAURL:        deviceA.server.URL,
			DeviceBURL:        deviceB.server.URL,
			MainReasonerModel: "reasoner",
			GraphBuilderModel: "grapher",
			ExplorationModel:  "explorer",
		})
	})

	AfterEach(func() {
		deviceA.server.Close()
		deviceB.server.Close()
		client.Close()
	})

	It("routes the main reasoner to device A", func() {
		completion, err := client.Generate(ctx, llm.RoleMainReasoner, "system", "user")
		Expect(err).NotTo(HaveOccurred())
		Expect(completion.Text).To(Equal("reply from reasoner"))
		Expect(completion.Role).To(Equal(llm.RoleMainReasoner))
		Expect(completion.FallbackFrom).To(BeEmpty())
		Expect(deviceA.models).To(ConsistOf("reasoner"))
		Expect(deviceB.models).To(BeEmpty())
	})

	It("routes the graph builder to device B", func() {
		completion, err := client.Generate(ctx, llm.RoleGraphBuilder, "system", "user")
		Expect(err).NotTo(HaveOccurred())
		Expect(completion.Text).To(Equal("reply from grapher"))
		Expect(deviceB.models).To(ConsistOf("grapher"))
		Expect(deviceA.models).To(BeEmpty())
	})

	It("serves exploration from its own model when configured", func() {
		completion, err := client.Generate(ctx, llm.RoleExploration, "system", "user")
		Expect(err).NotTo(HaveOccurred())
		Expect(completion.Text).To(Equal("reply from explorer"))
		Expect(completion.Role).To(Equal(llm.RoleExploration))
		Expect(completion.FallbackFrom).To(BeEmpty())
	})

	It("falls back to the main reasoner when the exploration call fails", func() {
		deviceB.failModels["explorer"] = true

		completion, err := client.Generate(ctx, llm.RoleExploration, "system", "user")
		Expect(err).NotTo(HaveOccurred())
		Expect(completion.Text).To(Equal("reply from reasoner"))
		Expect(completion.Role).To(Equal(llm.RoleMainReasoner))
		Expect(completion.FallbackFrom).To(Equal(llm.RoleExploration))
	})

	It("falls back when no exploration model is configured", func() {
		plain := ollama.New(ollama.Config{
			DeviceAURL:        deviceA.server.URL,
			MainReasonerModel: "reasoner",
		})
		defer plain.Close()

		completion, err := plain.Generate(ctx, llm.RoleExploration, "system", "user")
		Expect(err).NotTo(HaveOccurred())
		Expect(completion.FallbackFrom).To(Equal(llm.RoleExploration))
	})

	It("surfaces non-200 responses as GenerationError", func() {
		deviceA.failModels["reasoner"] = true

		_, err := client.Generate(ctx, llm.RoleMainReasoner, "system", "user")
		Expect(err).To(HaveOccurred())

		var genErr *llm.GenerationError
		Expect(err).To(BeAssignableToTypeOf(genErr))
		Expect(err.Error()).To(ContainSubstring("model crashed"))
	})

	It("rejects unknown roles", func() {
		_, err := client.Generate(ctx, llm.Role("mystery"), "system", "user")
		Expect(err).To(HaveOccurred())
	})
})
