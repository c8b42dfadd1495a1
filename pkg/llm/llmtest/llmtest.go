// Package llmtest provides a scripted llm.Client for specs.
package llmtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/fractalhq/fractal/pkg/llm"
)

// Call records one Generate invocation.
type Call struct {
	Role         llm.Role
	SystemPrompt string
	UserContent  string
}

// Client is a scripted generation client. Responses are queued per role and
// consumed in order; an unqueued role fails the call with a GenerationError,
// matching a real client's behavior on an unreachable model.
type Client struct {
	mu        sync.Mutex
	responses map[llm.Role][]*llm.Completion
	failures  map[llm.Role]error

	// Calls records every Generate invocation for assertions.
	Calls []Call
}

// NewClient creates an empty scripted client.
func NewClient() *Client {
	return &Client{
		responses: make(map[llm.Role][]*llm.Completion),
		failures:  make(map[llm.Role]error),
	}
}

// Respond queues a plain-text completion for the role.
func (c *Client) Respond(role llm.Role, text string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responses[role] = append(c.responses[role], &llm.Completion{Text: text, Role: role})
	return c
}

// RespondWithFallback queues a completion served by servedBy after falling
// back from role.
func (c *Client) RespondWithFallback(role, servedBy llm.Role, text string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responses[role] = append(c.responses[role], &llm.Completion{
		Text:         text,
		Role:         servedBy,
		FallbackFrom: role,
	})
	return c
}

// FailWith makes every call for the role fail with err until cleared by a
// queued response.
func (c *Client) FailWith(role llm.Role, err error) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failures[role] = err
	return c
}

// Generate pops the next scripted completion for the role.
func (c *Client) Generate(_ context.Context, role llm.Role, systemPrompt, userContent string) (*llm.Completion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls = append(c.Calls, Call{Role: role, SystemPrompt: systemPrompt, UserContent: userContent})

	if queue := c.responses[role]; len(queue) > 0 {
		next := queue[0]
		c.responses[role] = queue[1:]
		return next, nil
	}

	if err, ok := c.failures[role]; ok {
		return nil, &llm.GenerationError{Role: role, Err: err}
	}

	return nil, &llm.GenerationError{Role: role, Err: fmt.Errorf("no scripted response for role %q", role)}
}

// CallsFor returns the recorded calls for one role.
func (c *Client) CallsFor(role llm.Role) []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Call
	for _, call := range c.Calls {
		if call.Role == role {
			out = append(out, call)
		}
	}
	return out
}

// Close is a no-op.
func (c *Client) Close() error {
	return nil
}

var _ llm.Client = (*Client)(nil)
