package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/hackasm/core"
)

func expandText(e *core.Expander, text string) ([]string, error) {
	inst, err := core.Classify(core.SourceLine{Number: 1, Text: text})
	if err != nil {
		return nil, err
	}

	insts, err := e.Expand(inst)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(insts))
	for i, inst := range insts {
		out[i] = inst.String()
	}

	return out, nil
}

var _ = Describe("Expander", func() {
	var e *core.Expander

	BeforeEach(func() {
		e = core.NewExpander(true)
	})

	DescribeTable("expands convenience forms",
		func(text string, want ...string) {
			got, err := expandText(e, text)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("increment a variable", "counter++", "@counter", "M=M+1"),
		Entry("decrement a variable", "counter--", "@counter", "M=M-1"),
		Entry("increment a register", "D++", "D=D+1"),
		Entry("decrement a register", "A--", "A=A-1"),
		Entry("conditional goto", "D;JGT:LOOP", "@LOOP", "D;JGT"),
		Entry("unconditional goto", "0;JMP:END", "@END", "0;JMP"),
		Entry("goto keeps the destination", "D=D-1;JNE:LOOP", "@LOOP", "D=D-1;JNE"),
		Entry("load constant into a register", "D=5", "@5", "D=A"),
		Entry("load constant into registers", "AM=100", "@100", "AM=A"),
		Entry("load constant into a variable", "x=7", "@7", "D=A", "@x", "M=D"),
		Entry("store an ALU result", "x=D+1", "@x", "M=D+1"),
		Entry("store an ALU constant", "x=0", "@x", "M=0"),
		Entry("load a variable", "D=x", "@x", "D=M"),
		Entry("copy a variable", "y=x", "@x", "D=M", "@y", "M=D"),
	)

	DescribeTable("leaves canonical instructions unchanged",
		func(text string) {
			got, err := expandText(e, text)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]string{text}))
		},
		Entry("address", "@5"),
		Entry("symbolic address", "@sum"),
		Entry("label", "(LOOP)"),
		Entry("plain compute", "D=D+A"),
		Entry("full compute", "AMD=M-1;JNE"),
		Entry("jump", "0;JMP"),
		Entry("ALU constant one", "M=1"),
		Entry("ALU constant zero", "D=0"),
		Entry("ALU constant minus one", "D=-1"),
		Entry("unknown mnemonic", "D=Q+1"),
	)

	It("should return the same instruction for canonical input", func() {
		inst := core.Compute("MD", "D|M", "JLE", core.SourceLine{Number: 3, Text: "MD=D|M;JLE"})

		out, err := e.Expand(inst)

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]core.Instruction{inst}))
	})

	It("should pass everything through when disabled", func() {
		got, err := expandText(core.NewExpander(false), "counter++")

		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]string{"counter++"}))
	})

	DescribeTable("rejects malformed convenience forms",
		func(text string, kind error) {
			_, err := expandText(e, text)
			Expect(err).To(MatchError(kind))
		},
		Entry("load variable with a jump", "D=x;JMP", core.ErrMalformedLine),
		Entry("load constant with a jump", "x=5;JGT", core.ErrMalformedLine),
		Entry("increment with a destination", "D=D++", core.ErrMalformedLine),
		Entry("increment without operand", "++", core.ErrMalformedLine),
		Entry("goto without condition", "0;:LOOP", core.ErrMalformedLine),
		Entry("goto without label", "0;JMP:", core.ErrMalformedLine),
		Entry("increment a digit name", "9x++", core.ErrInvalidLabelName),
		Entry("constant into a digit name", "1x=5", core.ErrInvalidLabelName),
	)

	It("should keep the source line on every expanded instruction", func() {
		insts, err := e.ExpandAll(core.NormalizeLines([]string{"", "y = x // copy"}))

		Expect(err).NotTo(HaveOccurred())
		Expect(insts).To(HaveLen(4))
		for _, inst := range insts {
			Expect(inst.Line).To(Equal(core.SourceLine{Number: 2, Text: "y=x"}))
		}
	})
})
