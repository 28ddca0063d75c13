package core

// Assembler runs the translation pipeline. An Assembler holds no state
// between runs and can be shared by concurrent callers.
type Assembler struct {
	name     string
	expander *Expander
}

// Name returns the name given to the assembler at build time.
func (a *Assembler) Name() string {
	return a.name
}

// Assemble translates raw source lines into a program. Each pass consumes
// the whole output of the previous one, and the first error aborts the run.
func (a *Assembler) Assemble(name string, raw []string) (*Program, error) {
	prog := &Program{Name: name}

	prog.Source = NormalizeLines(raw)
	Trace("Pass", "Behavior", "Normalize", "Program", name,
		"RawLines", len(raw), "Lines", len(prog.Source))

	expanded, err := a.expander.ExpandAll(prog.Source)
	if err != nil {
		return nil, err
	}
	prog.Expanded = expanded
	Trace("Pass", "Behavior", "Expand", "Program", name, "Instructions", len(expanded))

	symbols, insts, err := BuildSymbolTable(expanded)
	if err != nil {
		return nil, err
	}
	prog.Symbols = symbols
	prog.Instructions = insts
	Trace("Pass", "Behavior", "Symbols", "Program", name,
		"Symbols", symbols.Len(), "Instructions", len(insts))

	words, err := EncodeAll(insts, symbols)
	if err != nil {
		return nil, err
	}
	prog.Words = words
	Trace("Pass", "Behavior", "Encode", "Program", name, "Words", len(words))

	LogProgram(prog)

	return prog, nil
}

var defaultAssembler = NewBuilder().Build("default")

// Translate turns raw source lines into 16-bit binary strings, one per
// instruction that survives label removal.
func Translate(lines []string) ([]string, error) {
	prog, err := defaultAssembler.Assemble("", lines)
	if err != nil {
		return nil, err
	}

	return prog.Words, nil
}
