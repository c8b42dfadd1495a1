// Package llm defines the generation-service contract: a prompt goes in,
// text comes out, and the three structured outputs the system depends on
// (summary, graph extraction, merge) are parsed with strict shape checks.
package llm

import "context"

// Role selects which model serves a call. Roles map to concrete models and
// devices in the client configuration.
type Role string

const (
	// RoleMainReasoner serves chat, summarize, and merge calls.
	RoleMainReasoner Role = "main-reasoner"

	// RoleGraphBuilder serves knowledge-graph extraction.
	RoleGraphBuilder Role = "graph-builder"

	// RoleExploration serves exploration-type nodes. Optional; degrades to
	// the main reasoner when not configured.
	RoleExploration Role = "exploration"
)

// Completion is the result of one generation call.
type Completion struct {
	// Text is the raw model output.
	Text string

	// Role is the role that actually served the call. Differs from the
	// requested role after an exploration fallback.
	Role Role

	// FallbackFrom is set to the originally requested role when the call
	// was degraded to a different role.
	FallbackFrom Role
}

// Client is the generation service. One failure surfaces immediately to the
// caller; there is no internal retry. Callers apply their own deadline via
// ctx since no other cancellation signal exists.
type Client interface {
	Generate(ctx context.Context, role Role, systemPrompt, userContent string) (*Completion, error)
	Close() error
}
