package dotdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fractalhq/fractal/pkg/dotdir"
)

var _ = Describe("Manager", func() {
	var (
		manager *dotdir.Manager
		tmpDir  string
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "dotdir-test-*")
		Expect(err).NotTo(HaveOccurred())
		manager = dotdir.NewManager()
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("Target", func() {
		It("uses the override dir and creates it", func() {
			override := filepath.Join(tmpDir, "custom")

			target, err := manager.Target(override)
			Expect(err).NotTo(HaveOccurred())
			Expect(target).To(Equal(override))

			info, err := os.Stat(target)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})
	})

	Describe("session state", func() {
		It("returns nil when no session exists", func() {
			state, err := manager.LoadSessionState(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeNil())
		})

		It("round-trips a saved session", func() {
			saved := &dotdir.SessionState{
				NodeID:    "b2cbc0fd-3b4f-4e62-9701-1d60773e6911",
				NodeTitle: "database choice",
			}
			Expect(manager.SaveSession(saved, tmpDir)).To(Succeed())

			loaded, err := manager.LoadSessionState(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(saved))
		})

		It("rejects saving a nil session", func() {
			Expect(manager.SaveSession(nil, tmpDir)).NotTo(Succeed())
		})

		It("clears a session and tolerates clearing twice", func() {
			Expect(manager.SaveSession(&dotdir.SessionState{NodeID: "x"}, tmpDir)).To(Succeed())
			Expect(manager.ClearSession(tmpDir)).To(Succeed())

			state, err := manager.LoadSessionState(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeNil())

			Expect(manager.ClearSession(tmpDir)).To(Succeed())
		})
	})
})
