// Package eventstream defines the outbound event contract: node lifecycle
// events mirrored from the audit log to an external stream.
package eventstream

import "context"

// Publisher publishes node events to an event stream backend.
type Publisher interface {
	PublishNodeEvent(ctx context.Context, event *NodeEventEnvelope) error
	Close() error
}
