package main

import (
	_ "embed"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hackasm/api"
	"github.com/sarchlab/hackasm/core"
	"github.com/sarchlab/hackasm/machine"
	"github.com/tebeka/atexit"
)

//go:embed fill.asm
var source string

func main() {
	lines, err := api.NewStringSource("fill.asm", source).Lines()
	if err != nil {
		panic(err)
	}

	prog, err := core.NewBuilder().Build("Assembler").Assemble("fill.asm", lines)
	if err != nil {
		panic(err)
	}

	fmt.Println(core.ListingString(prog))

	engine := sim.NewSerialEngine()
	m := machine.NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithMaxCycles(200000).
		Build("Machine")

	if err := m.LoadProgram(prog.MachineWords()); err != nil {
		panic(err)
	}

	m.Poke(core.KeyboardAddr, 'a')
	m.Start()
	if err := engine.Run(); err != nil {
		panic(err)
	}

	fmt.Printf("screen[0] = %#04x, screen[last] = %#04x after %d cycles\n",
		m.Peek(core.ScreenBase), m.Peek(core.KeyboardAddr-1), m.Cycles())
	atexit.Exit(0)
}
