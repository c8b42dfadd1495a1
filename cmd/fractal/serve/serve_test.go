package servecmder

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NewServeCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := NewServeCmd()
		Expect(cmd.Use).To(Equal("serve"))
	})

	It("registers flags with defaults from the config defaults", func() {
		cmd := NewServeCmd()

		listen := cmd.Flags().Lookup("listen")
		Expect(listen).NotTo(BeNil())
		Expect(listen.Shorthand).To(Equal("l"))
		Expect(listen.DefValue).To(Equal(":8080"))

		driver := cmd.Flags().Lookup("storage-driver")
		Expect(driver).NotTo(BeNil())
		Expect(driver.DefValue).To(Equal("sqlite"))

		deviceA := cmd.Flags().Lookup("device-a")
		Expect(deviceA).NotTo(BeNil())
		Expect(deviceA.DefValue).To(Equal("http://localhost:11434"))

		provider := cmd.Flags().Lookup("eventstream-provider")
		Expect(provider).NotTo(BeNil())
		Expect(provider.DefValue).To(Equal("none"))
	})
})

var _ = Describe("createStore", func() {
	newCommander := func() *ServeCommander {
		return &ServeCommander{logger: zap.NewNop()}
	}

	It("creates an in-memory store", func() {
		c := newCommander()
		c.storageDriver = "inmemory"

		store, err := c.createStore()
		Expect(err).NotTo(HaveOccurred())
		defer store.Close()
		Expect(store).NotTo(BeNil())
	})

	It("rejects unknown drivers", func() {
		c := newCommander()
		c.storageDriver = "cassandra"

		_, err := c.createStore()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown storage driver"))
	})

	It("requires a DSN for postgres", func() {
		c := newCommander()
		c.storageDriver = "postgres"

		_, err := c.createStore()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("postgres-dsn"))
	})
})

var _ = Describe("createPublisher", func() {
	It("defaults to the nop publisher", func() {
		c := &ServeCommander{logger: zap.NewNop()}

		publisher, err := c.createPublisher()
		Expect(err).NotTo(HaveOccurred())
		Expect(publisher.Close()).To(Succeed())
	})

	It("rejects unknown providers", func() {
		c := &ServeCommander{logger: zap.NewNop(), eventProvider: "rabbitmq"}

		_, err := c.createPublisher()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown eventstream provider"))
	})
})
