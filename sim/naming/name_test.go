package naming

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	It("should split hierarchical names into tokens", func() {
		name := Parse("Top.Fifo[2].Counter")

		Expect(name.Tokens).To(HaveLen(3))
		Expect(name.Tokens[0].ElemName).To(Equal("Top"))
		Expect(name.Tokens[1].ElemName).To(Equal("Fifo"))
		Expect(name.Tokens[1].Index).To(Equal([]int{2}))
		Expect(name.Tokens[2].ElemName).To(Equal("Counter"))
	})

	It("should support multi-dimensional indices", func() {
		name := Parse("Grid[1][3]")

		Expect(name.Tokens[0].Index).To(Equal([]int{1, 3}))
	})
})

var _ = Describe("MustBeValid", func() {
	It("should accept well-formed names", func() {
		Expect(func() { MustBeValid("Top.Fifo[0]") }).NotTo(Panic())
	})

	It("should reject lowercase elements", func() {
		Expect(func() { MustBeValid("top.Fifo") }).To(Panic())
	})

	It("should reject empty elements", func() {
		Expect(func() { MustBeValid("Top..Fifo") }).To(Panic())
	})

	It("should reject underscores", func() {
		Expect(func() { MustBeValid("Top.My_Fifo") }).To(Panic())
	})

	It("should reject unbalanced brackets", func() {
		Expect(func() { MustBeValid("Fifo[1") }).To(Panic())
	})
})
