package core_test

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/hackasm/core"
)

var _ = Describe("Translate", func() {
	It("should encode one word per canonical instruction", func() {
		words, err := core.Translate([]string{"@2", "D=A", "@3", "D=D+A", "@0", "M=D"})

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]string{
			"0000000000000010",
			"1110110000010000",
			"0000000000000011",
			"1110000010010000",
			"0000000000000000",
			"1110001100001000",
		}))
	})

	It("should emit no word for a label", func() {
		words, err := core.Translate([]string{"(LOOP)", "@LOOP", "0;JMP"})

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]string{
			"0000000000000000",
			"1110101010000111",
		}))
	})

	It("should ignore comments, blank lines and whitespace", func() {
		words, err := core.Translate([]string{
			"// adds nothing",
			"",
			"   @ 5   // five",
			"D = A",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]string{"0000000000000101", "1110110000010000"}))
	})

	It("should resolve forward references", func() {
		words, err := core.Translate([]string{"@END", "0;JMP", "(END)", "@END", "0;JMP"})

		Expect(err).NotTo(HaveOccurred())
		Expect(words[0]).To(Equal(core.FormatWord(2)))
		Expect(words[2]).To(Equal(core.FormatWord(2)))
	})

	It("should reuse variable addresses", func() {
		words, err := core.Translate([]string{"@i", "M=1", "@sum", "M=0", "@i", "D=M"})

		Expect(err).NotTo(HaveOccurred())
		Expect(words[0]).To(Equal(core.FormatWord(16)))
		Expect(words[2]).To(Equal(core.FormatWord(17)))
		Expect(words[4]).To(Equal(core.FormatWord(16)))
	})

	It("should expand an increment", func() {
		words, err := core.Translate([]string{"counter++"})

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]string{"0000000000010000", "1111110111001000"}))
	})

	It("should return nothing for an empty program", func() {
		words, err := core.Translate([]string{"", "// only a comment"})

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(BeEmpty())
	})

	DescribeTable("fails on the first error",
		func(kind error, src ...string) {
			words, err := core.Translate(src)

			Expect(err).To(MatchError(kind))
			Expect(words).To(BeNil())
		},
		Entry("bare at", core.ErrMalformedLine, "@"),
		Entry("unknown control", core.ErrUnknownMnemonic, "D=Q+1"),
		Entry("unknown jump", core.ErrUnknownMnemonic, "0;JXX"),
		Entry("register pair increment", core.ErrUnknownMnemonic, "AD++"),
		Entry("literal out of range", core.ErrMalformedLine, "@40000"),
		Entry("negative constant", core.ErrMalformedLine, "D=-5"),
		Entry("digit label", core.ErrInvalidLabelName, "(1abc)"),
		Entry("duplicate label", core.ErrDuplicateLabel, "(A)", "(A)"),
		Entry("label redefining a register", core.ErrDuplicateLabel, "(R3)"),
	)

	It("should report the source line of an error", func() {
		_, err := core.Translate([]string{"@1", "", "D = Q"})

		var asmErr *core.Error
		Expect(errors.As(err, &asmErr)).To(BeTrue())
		Expect(asmErr.Kind).To(Equal(core.KindUnknownMnemonic))
		Expect(asmErr.Line).To(Equal(3))
		Expect(asmErr.Text).To(Equal("D=Q"))
		Expect(err.Error()).To(HavePrefix(`UnknownMnemonic on line 3 "D=Q"`))
	})

	It("should be safe for concurrent use", func() {
		src := []string{"(LOOP)", "x++", "@x", "D=M", "@LOOP", "D;JLT"}
		want, err := core.Translate(src)
		Expect(err).NotTo(HaveOccurred())

		var wg sync.WaitGroup
		results := make([][]string, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				defer GinkgoRecover()

				words, err := core.Translate(src)
				Expect(err).NotTo(HaveOccurred())
				results[i] = words
			}(i)
		}
		wg.Wait()

		for _, got := range results {
			Expect(got).To(Equal(want))
		}
	})
})

var _ = Describe("Assembler", func() {
	It("should keep every intermediate pass result", func() {
		a := core.NewBuilder().Build("Test")
		prog, err := a.Assemble("loop", []string{"(LOOP)", "i++ // step", "0;JMP:LOOP"})

		Expect(err).NotTo(HaveOccurred())
		Expect(a.Name()).To(Equal("Test"))
		Expect(prog.Name).To(Equal("loop"))
		Expect(prog.Source).To(HaveLen(3))
		Expect(prog.Expanded).To(HaveLen(5))
		Expect(prog.Instructions).To(HaveLen(4))
		Expect(prog.Len()).To(Equal(4))
		Expect(prog.MachineWords()).To(Equal([]uint16{16, 0xFDC8, 0, 0xEA87}))
	})

	It("should reject convenience forms with macros disabled", func() {
		a := core.NewBuilder().WithMacros(false).Build("Plain")

		_, err := a.Assemble("inc", []string{"counter++"})

		Expect(err).To(MatchError(core.ErrUnknownMnemonic))
	})

	It("should render a listing", func() {
		prog, err := core.NewBuilder().Build("Test").Assemble("listing", []string{"@7", "D=A"})
		Expect(err).NotTo(HaveOccurred())

		out := core.ListingString(prog)

		Expect(out).To(ContainSubstring("@7"))
		Expect(out).To(ContainSubstring("1110110000010000"))
	})
})
