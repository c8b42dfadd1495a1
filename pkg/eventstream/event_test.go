package eventstream_test

import (
	"encoding/json"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/eventstream"
	"github.com/fractalhq/fractal/pkg/node"
)

var _ = Describe("NewEnvelope", func() {
	It("wraps a domain event with schema and identity fields", func() {
		domainEvent := node.Event{
			ID:     uuid.New(),
			NodeID: uuid.New(),
			Type:   node.EventNodeCreated,
		}

		envelope := eventstream.NewEnvelope(domainEvent, nil)

		Expect(envelope.SchemaVersion).To(Equal(eventstream.SchemaVersionV1))
		Expect(envelope.EventType).To(Equal(eventstream.EventTypeNodeEvent))
		Expect(envelope.EventID).NotTo(BeEmpty())
		Expect(envelope.EmittedAt).NotTo(BeZero())
		Expect(envelope.Event.NodeID).To(Equal(domainEvent.NodeID))
	})

	It("marshals with expected top-level keys", func() {
		envelope := eventstream.NewEnvelope(node.Event{ID: uuid.New()}, nil)

		payload, err := json.Marshal(envelope)
		Expect(err).NotTo(HaveOccurred())

		var got map[string]any
		Expect(json.Unmarshal(payload, &got)).To(Succeed())

		Expect(got).To(HaveKey("schema_version"))
		Expect(got).To(HaveKey("event_type"))
		Expect(got).To(HaveKey("event_id"))
		Expect(got).To(HaveKey("emitted_at"))
		Expect(got).To(HaveKey("source"))
		Expect(got).To(HaveKey("event"))
	})
})
