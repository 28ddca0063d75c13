package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/hackasm/core"
)

var _ = Describe("Encode", func() {
	var (
		table *core.SymbolTable
		line  core.SourceLine
	)

	BeforeEach(func() {
		table = core.NewSymbolTable()
		line = core.SourceLine{Number: 1}
	})

	encode := func(inst core.Instruction) string {
		word, err := core.Encode(inst, table)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, word).To(HaveLen(core.WordSize))
		return word
	}

	DescribeTable("control mnemonics",
		func(comp, bits string) {
			Expect(encode(core.Compute("", comp, "", line))).
				To(Equal("111" + bits + "000000"))
		},
		Entry("0", "0", "0101010"),
		Entry("1", "1", "0111111"),
		Entry("-1", "-1", "0111010"),
		Entry("D", "D", "0001100"),
		Entry("A", "A", "0110000"),
		Entry("!D", "!D", "0001101"),
		Entry("!A", "!A", "0110001"),
		Entry("-D", "-D", "0001111"),
		Entry("-A", "-A", "0110011"),
		Entry("D+1", "D+1", "0011111"),
		Entry("A+1", "A+1", "0110111"),
		Entry("D-1", "D-1", "0001110"),
		Entry("A-1", "A-1", "0110010"),
		Entry("D+A", "D+A", "0000010"),
		Entry("D-A", "D-A", "0010011"),
		Entry("A-D", "A-D", "0000111"),
		Entry("D&A", "D&A", "0000000"),
		Entry("D|A", "D|A", "0010101"),
		Entry("M", "M", "1110000"),
		Entry("!M", "!M", "1110001"),
		Entry("-M", "-M", "1110011"),
		Entry("M+1", "M+1", "1110111"),
		Entry("M-1", "M-1", "1110010"),
		Entry("D+M", "D+M", "1000010"),
		Entry("D-M", "D-M", "1010011"),
		Entry("M-D", "M-D", "1000111"),
		Entry("D&M", "D&M", "1000000"),
		Entry("D|M", "D|M", "1010101"),
	)

	DescribeTable("destinations",
		func(dest, bits string) {
			Expect(encode(core.Compute(dest, "0", "", line))).
				To(Equal("1110101010" + bits + "000"))
		},
		Entry("none", "", "000"),
		Entry("M", "M", "001"),
		Entry("D", "D", "010"),
		Entry("MD", "MD", "011"),
		Entry("A", "A", "100"),
		Entry("AM", "AM", "101"),
		Entry("AD", "AD", "110"),
		Entry("AMD", "AMD", "111"),
	)

	DescribeTable("jumps",
		func(jump, bits string) {
			Expect(encode(core.Compute("", "0", jump, line))).
				To(Equal("1110101010000" + bits))
		},
		Entry("none", "", "000"),
		Entry("JGT", "JGT", "001"),
		Entry("JEQ", "JEQ", "010"),
		Entry("JGE", "JGE", "011"),
		Entry("JLT", "JLT", "100"),
		Entry("JNE", "JNE", "101"),
		Entry("JLE", "JLE", "110"),
		Entry("JMP", "JMP", "111"),
	)

	It("should encode M=D+1", func() {
		Expect(encode(core.Compute("M", "D+1", "", line))).To(Equal("1110011111001000"))
	})

	DescribeTable("address instructions",
		func(operand, want string) {
			Expect(encode(core.Address(operand, line))).To(Equal(want))
		},
		Entry("zero", "0", "0000000000000000"),
		Entry("small literal", "2", "0000000000000010"),
		Entry("largest literal", "32767", "0111111111111111"),
		Entry("predefined register", "R3", "0000000000000011"),
		Entry("screen", "SCREEN", "0100000000000000"),
		Entry("keyboard", "KBD", "0110000000000000"),
	)

	DescribeTable("rejects what cannot be encoded",
		func(inst core.Instruction, kind error) {
			_, err := core.Encode(inst, table)
			Expect(err).To(MatchError(kind))
		},
		Entry("unknown control", core.Compute("D", "Q+1", "", core.SourceLine{}), core.ErrUnknownMnemonic),
		Entry("unknown destination", core.Compute("DM", "0", "", core.SourceLine{}), core.ErrUnknownMnemonic),
		Entry("unknown jump", core.Compute("", "0", "JXX", core.SourceLine{}), core.ErrUnknownMnemonic),
		Entry("unbound symbol", core.Address("nowhere", core.SourceLine{}), core.ErrUnresolvedSymbol),
		Entry("negative literal", core.Address("-5", core.SourceLine{}), core.ErrMalformedLine),
		Entry("literal too large", core.Address("32768", core.SourceLine{}), core.ErrMalformedLine),
		Entry("label declaration", core.LabelDecl("LOOP", core.SourceLine{}), core.ErrMalformedLine),
	)
})

var _ = Describe("Words", func() {
	It("should format and parse words", func() {
		Expect(core.FormatWord(12345)).To(Equal("0011000000111001"))

		w, err := core.ParseWord("0011000000111001")
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(uint16(12345)))
	})

	It("should reject words of the wrong length", func() {
		_, err := core.ParseWord("101")
		Expect(err).To(HaveOccurred())
	})

	It("should reject non-binary words", func() {
		_, err := core.ParseWord("000000000000000x")
		Expect(err).To(HaveOccurred())
	})

	It("should report the index of a bad word", func() {
		_, err := core.ParseWords([]string{"0000000000000000", "2"})
		Expect(err).To(MatchError(ContainSubstring("word 1")))
	})
})
