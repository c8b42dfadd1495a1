package inherit_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInherit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inherit Suite")
}
