package utils

import (
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("truncate", func() {
	It("returns the string unchanged when within the limit", func() {
		Expect(Truncate("short", 10)).To(Equal("short"))
	})

	It("returns the string unchanged when exactly at the limit", func() {
		Expect(Truncate("12345", 5)).To(Equal("12345"))
	})

	It("truncates with ellipsis when over the limit", func() {
		result := Truncate("this is a long string", 10)
		Expect(result).To(Equal("this is a ..."))
	})

	It("never splits a multibyte rune", func() {
		// "héllo" is h(1) é(2) l l o; a 2-byte limit lands mid-é.
		result := Truncate("héllo", 2)
		Expect(result).To(Equal("h..."))
		Expect(utf8.ValidString(result)).To(BeTrue())
	})
})

var _ = Describe("EstimateTokens", func() {
	It("returns zero for empty text", func() {
		Expect(EstimateTokens("")).To(BeZero())
	})

	It("scales word count by 1.3", func() {
		// 10 words * 1.3 = 13
		Expect(EstimateTokens("a b c d e f g h i j")).To(Equal(13))
	})

	It("ignores repeated whitespace", func() {
		Expect(EstimateTokens("one   two\t\tthree")).To(Equal(3))
	})
})
