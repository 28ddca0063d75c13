package core

// Builder can create new assemblers.
type Builder struct {
	macros bool
}

// NewBuilder returns a builder with macro expansion enabled.
func NewBuilder() Builder {
	return Builder{
		macros: true,
	}
}

// WithMacros enables or disables the expansion of convenience instructions.
func (b Builder) WithMacros(enabled bool) Builder {
	b.macros = enabled
	return b
}

// Build creates an assembler.
func (b Builder) Build(name string) *Assembler {
	return &Assembler{
		name:     name,
		expander: NewExpander(b.macros),
	}
}
