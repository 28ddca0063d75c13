package machine

import (
	"github.com/sarchlab/akita/v4/sim"
)

const (
	// ROMSize is the number of words the instruction memory holds.
	ROMSize = 1 << 15

	// DefaultRAMSize covers the variables, the screen map and the keyboard.
	DefaultRAMSize = 24577

	// DefaultMaxCycles bounds programs that never reach their end loop.
	DefaultMaxCycles = 1_000_000
)

// Builder can create new machines.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	ramSize   int
	maxCycles int
}

// NewBuilder returns a builder with the default memory size and cycle limit.
func NewBuilder() Builder {
	return Builder{
		freq:      1 * sim.GHz,
		ramSize:   DefaultRAMSize,
		maxCycles: DefaultMaxCycles,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

func (b Builder) WithRAMSize(words int) Builder {
	if words <= 0 || words > 1<<16 {
		panic("RAM size must be in 1..65536")
	}
	b.ramSize = words
	return b
}

// WithMaxCycles sets how many instructions may run before the core halts. 0
// removes the limit.
func (b Builder) WithMaxCycles(cycles int) Builder {
	if cycles < 0 {
		panic("cycle limit cannot be negative")
	}
	b.maxCycles = cycles
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("engine is not set")
	}

	c := &Core{maxCycles: b.maxCycles}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.state = coreState{
		RAM: make([]uint16, b.ramSize),
	}

	return c
}
