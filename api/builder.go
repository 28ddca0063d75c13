package api

import "github.com/sarchlab/hackasm/core"

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	assembler *core.Assembler
}

// WithAssembler sets the assembler the driver runs. Without one, the driver
// uses an assembler with macro expansion enabled.
func (b DriverBuilder) WithAssembler(a *core.Assembler) DriverBuilder {
	b.assembler = a
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	a := b.assembler
	if a == nil {
		a = core.NewBuilder().Build(name + ".Assembler")
	}

	return &driverImpl{
		name:      name,
		assembler: a,
	}
}
