package nop_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/eventstream"
	"github.com/fractalhq/fractal/pkg/eventstream/nop"
)

var _ = Describe("Publisher", func() {
	It("returns ErrNilEvent for nil events", func() {
		p := nop.NewPublisher()
		err := p.PublishNodeEvent(context.Background(), nil)
		Expect(err).To(MatchError(eventstream.ErrNilEvent))
	})

	It("succeeds for non-nil events", func() {
		p := nop.NewPublisher()
		err := p.PublishNodeEvent(context.Background(), &eventstream.NodeEventEnvelope{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("closes successfully", func() {
		p := nop.NewPublisher()
		Expect(p.Close()).To(Succeed())
	})
})
