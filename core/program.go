package core

// Program is the result of one translation run.
type Program struct {
	// Name identifies the program in logs and reports.
	Name string

	// Source holds the normalized, non-empty source lines.
	Source []SourceLine

	// Expanded is the canonical instruction list, labels included.
	Expanded []Instruction

	// Instructions is Expanded with the label declarations removed. It is
	// one-to-one with Words.
	Instructions []Instruction

	Symbols *SymbolTable
	Words   []string
}

// Len returns the number of emitted words.
func (p *Program) Len() int {
	return len(p.Words)
}

// MachineWords returns the emitted words as integers.
func (p *Program) MachineWords() []uint16 {
	words, err := ParseWords(p.Words)
	if err != nil {
		// Words are produced by Encode and are always well formed.
		panic(err)
	}
	return words
}
