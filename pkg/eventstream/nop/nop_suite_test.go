package nop_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNop(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eventstream Nop Suite")
}
