package llm

import "fmt"

// GenerationError wraps a transport, timeout, or model failure from the
// generation service.
type GenerationError struct {
	Role Role
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for role %q: %v", e.Role, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// MalformedOutputError indicates a structured output (summary, extraction,
// merge document) that did not parse into its expected shape.
type MalformedOutputError struct {
	Call string
	Err  error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed %s output: %v", e.Call, e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
