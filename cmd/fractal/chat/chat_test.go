package chatcmder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NewChatCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := NewChatCmd()
		Expect(cmd.Use).To(Equal("chat"))
	})

	It("has --api-target flag with default value", func() {
		cmd := NewChatCmd()
		flag := cmd.Flags().Lookup("api-target")
		Expect(flag).NotTo(BeNil())
		Expect(flag.Shorthand).To(Equal("a"))
		Expect(flag.DefValue).To(Equal("http://localhost:8080"))
	})

	It("has a --title flag", func() {
		cmd := NewChatCmd()
		flag := cmd.Flags().Lookup("title")
		Expect(flag).NotTo(BeNil())
		Expect(flag.DefValue).To(Equal(""))
	})
})

var _ = Describe("parseSlashCommand", func() {
	It("ignores plain messages", func() {
		_, _, ok := parseSlashCommand("hello there")
		Expect(ok).To(BeFalse())
	})

	It("parses a bare command", func() {
		cmd, arg, ok := parseSlashCommand("/summarize")
		Expect(ok).To(BeTrue())
		Expect(cmd).To(Equal("summarize"))
		Expect(arg).To(BeEmpty())
	})

	It("parses a command with an argument", func() {
		cmd, arg, ok := parseSlashCommand("/branch try a different approach")
		Expect(ok).To(BeTrue())
		Expect(cmd).To(Equal("branch"))
		Expect(arg).To(Equal("try a different approach"))
	})
})

var _ = Describe("API requests", func() {
	var (
		server *httptest.Server
		cmder  *chatCommander
		paths  []string
	)

	BeforeEach(func() {
		paths = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)

			switch {
			case r.URL.Path == "/api/v1/nodes":
				var req map[string]any
				Expect(json.NewDecoder(r.Body).Decode(&req)).To(Succeed())
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]any{
					"node_id": "11111111-1111-1111-1111-111111111111",
					"title":   req["title"],
				})
			default:
				json.NewEncoder(w).Encode(map[string]any{
					"assistant_message": map[string]any{"content": "a reply"},
					"served_by":         "main-reasoner",
				})
			}
		}))

		cmder = &chatCommander{
			apiTarget: server.URL,
			logger:    zap.NewNop(),
			client:    server.Client(),
		}
	})

	AfterEach(func() {
		server.Close()
	})

	It("creates nodes through the API", func() {
		n, err := cmder.createNode("my branch", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(n.Title).To(Equal("my branch"))
		Expect(paths).To(ConsistOf("/api/v1/nodes"))
	})

	It("sends turns to the node's message endpoint", func() {
		turn, err := cmder.sendTurn("11111111-1111-1111-1111-111111111111", "hello")
		Expect(err).NotTo(HaveOccurred())
		Expect(turn.AssistantMessage.Content).To(Equal("a reply"))
		Expect(paths[0]).To(Equal("/api/v1/nodes/11111111-1111-1111-1111-111111111111/messages"))
	})

	It("surfaces the API's error message on non-2xx responses", func() {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": "title is required"}`)
		}))
		defer failing.Close()

		cmder.apiTarget = failing.URL
		_, err := cmder.createNode("", "")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("title is required"))
	})
})
