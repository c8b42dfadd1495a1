// Package ollama implements pkg/llm's Client against Ollama's chat API,
// routing each model role to its configured model and device URL.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fractalhq/fractal/pkg/llm"
)

const (
	// DefaultBaseURL is the default Ollama API URL.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultMainReasonerModel is the default model serving chat, summarize,
	// and merge calls.
	DefaultMainReasonerModel = "main-reasoner"

	// DefaultGraphBuilderModel is the default model serving graph extraction.
	DefaultGraphBuilderModel = "graph-builder"

	// DefaultTimeout bounds a single generation call. The generation service
	// offers no other cancellation signal.
	DefaultTimeout = 300 * time.Second
)

// Config holds per-role routing for the Ollama client. Two devices are
// supported: the main reasoner lives on device A, the graph builder and the
// optional exploration model on device B.
type Config struct {
	// DeviceAURL serves the main reasoner. Defaults to DefaultBaseURL.
	DeviceAURL string

	// DeviceBURL serves the graph builder and exploration models. Defaults
	// to DeviceAURL.
	DeviceBURL string

	MainReasonerModel string
	GraphBuilderModel string

	// ExplorationModel is optional. When empty, exploration calls degrade to
	// the main reasoner.
	ExplorationModel string

	// Timeout per generation call. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client wraps Ollama's chat-completion API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// chatRequest is the request body for Ollama's chat API.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the non-streaming response from Ollama's chat API.
type chatResponse struct {
	Message chatMessage `json:"message"`
}

// New creates an Ollama-backed generation client.
func New(cfg Config) *Client {
	if cfg.DeviceAURL == "" {
		cfg.DeviceAURL = DefaultBaseURL
	}
	if cfg.DeviceBURL == "" {
		cfg.DeviceBURL = cfg.DeviceAURL
	}
	if cfg.MainReasonerModel == "" {
		cfg.MainReasonerModel = DefaultMainReasonerModel
	}
	if cfg.GraphBuilderModel == "" {
		cfg.GraphBuilderModel = DefaultGraphBuilderModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ llm.Client = (*Client)(nil)

// Generate issues one chat completion for the given role. Exploration calls
// fall back to the main reasoner when no exploration model is configured or
// the exploration call fails; the returned Completion reports the fallback.
func (c *Client) Generate(ctx context.Context, role llm.Role, systemPrompt, userContent string) (*llm.Completion, error) {
	if role == llm.RoleExploration {
		return c.generateExploration(ctx, systemPrompt, userContent)
	}

	baseURL, model, err := c.route(role)
	if err != nil {
		return nil, err
	}

	text, err := c.chat(ctx, baseURL, model, systemPrompt, userContent)
	if err != nil {
		return nil, &llm.GenerationError{Role: role, Err: err}
	}

	return &llm.Completion{Text: text, Role: role}, nil
}

func (c *Client) generateExploration(ctx context.Context, systemPrompt, userContent string) (*llm.Completion, error) {
	if c.cfg.ExplorationModel != "" {
		text, err := c.chat(ctx, c.cfg.DeviceBURL, c.cfg.ExplorationModel, systemPrompt, userContent)
		if err == nil {
			return &llm.Completion{Text: text, Role: llm.RoleExploration}, nil
		}
		// Degrade to the main reasoner rather than failing the turn.
	}

	text, err := c.chat(ctx, c.cfg.DeviceAURL, c.cfg.MainReasonerModel, systemPrompt, userContent)
	if err != nil {
		return nil, &llm.GenerationError{Role: llm.RoleMainReasoner, Err: err}
	}

	return &llm.Completion{
		Text:         text,
		Role:         llm.RoleMainReasoner,
		FallbackFrom: llm.RoleExploration,
	}, nil
}

func (c *Client) route(role llm.Role) (baseURL, model string, err error) {
	switch role {
	case llm.RoleMainReasoner:
		return c.cfg.DeviceAURL, c.cfg.MainReasonerModel, nil
	case llm.RoleGraphBuilder:
		return c.cfg.DeviceBURL, c.cfg.GraphBuilderModel, nil
	default:
		return "", "", &llm.GenerationError{Role: role, Err: fmt.Errorf("unknown model role %q", role)}
	}
}

func (c *Client) chat(ctx context.Context, baseURL, model, systemPrompt, userContent string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Stream: false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	return chatResp.Message.Content, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	// HTTP client doesn't require explicit cleanup
	return nil
}
