package machine

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Run builds a core, loads words into it and runs the engine until the core
// halts. A serial engine is created when the builder has none. A fault is
// reported as the error.
func (b Builder) Run(name string, words []uint16) (*Core, error) {
	if b.engine == nil {
		b.engine = sim.NewSerialEngine()
	}

	c := b.Build(name)
	if err := c.LoadProgram(words); err != nil {
		return nil, err
	}

	c.Start()

	if err := b.engine.Run(); err != nil {
		return c, err
	}

	return c, c.Err()
}

// Run executes words on a fresh core with the default memory size.
func Run(words []uint16, maxCycles int) (*Core, error) {
	return NewBuilder().
		WithMaxCycles(maxCycles).
		Run("Machine", words)
}
