package machine

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hackasm/core"
)

// Core is a ticking component that executes Hack machine code, one
// instruction per cycle.
type Core struct {
	*sim.TickingComponent

	state     coreState
	emu       instEmulator
	maxCycles int
}

// LoadProgram places words at the start of ROM and resets the registers.
func (c *Core) LoadProgram(words []uint16) error {
	if len(words) > ROMSize {
		return fmt.Errorf("program has %d words, ROM holds %d", len(words), ROMSize)
	}

	c.state.ROM = append([]uint16(nil), words...)
	c.state.PC = 0
	c.state.A = 0
	c.state.D = 0
	c.state.Cycles = 0
	c.state.Reason = Running
	c.state.Err = nil

	return nil
}

// Start schedules the first tick.
func (c *Core) Start() {
	c.TickNow()
}

// Tick runs one instruction.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.halted() {
		return false
	}

	if c.maxCycles > 0 && c.state.Cycles >= c.maxCycles {
		c.state.halt(HaltCycleLimit)
		c.logHalt()
		return false
	}

	pc := c.state.PC
	c.emu.Step(&c.state)
	if c.state.Reason == HaltEndOfProgram {
		c.logHalt()
		return false
	}

	c.state.Cycles++
	slog.Debug("Inst",
		"Behavior", "Execute",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"PC", pc,
		"A", c.state.A,
		"D", c.state.D,
	)

	if c.state.halted() {
		c.logHalt()
	}

	return true
}

func (c *Core) logHalt() {
	core.Trace("Halt",
		"Core", c.Name(),
		"Reason", c.state.Reason.String(),
		"PC", c.state.PC,
		"Cycles", c.state.Cycles,
		"Err", c.state.Err,
	)
}

// Peek reads a RAM word.
func (c *Core) Peek(addr int) uint16 {
	if addr < 0 || addr >= len(c.state.RAM) {
		panic(fmt.Sprintf("RAM address %d out of range", addr))
	}
	return c.state.RAM[addr]
}

// Poke writes a RAM word, for example to press a key before a run.
func (c *Core) Poke(addr int, value uint16) {
	if addr < 0 || addr >= len(c.state.RAM) {
		panic(fmt.Sprintf("RAM address %d out of range", addr))
	}
	c.state.RAM[addr] = value
}

func (c *Core) A() uint16 {
	return c.state.A
}

func (c *Core) D() uint16 {
	return c.state.D
}

func (c *Core) PC() uint16 {
	return c.state.PC
}

// Cycles returns the number of instructions executed.
func (c *Core) Cycles() int {
	return c.state.Cycles
}

func (c *Core) Halted() bool {
	return c.state.halted()
}

func (c *Core) HaltReason() HaltReason {
	return c.state.Reason
}

// Err returns the fault that stopped the core, if any.
func (c *Core) Err() error {
	return c.state.Err
}
