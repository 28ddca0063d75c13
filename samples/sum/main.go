package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hackasm/api"
	"github.com/sarchlab/hackasm/core"
	"github.com/sarchlab/hackasm/machine"
	"github.com/tebeka/atexit"
)

//go:embed sum.asm
var source string

func main() {
	driver := api.DriverBuilder{}.Build("Driver")

	prog, err := driver.Assemble(
		api.NewStringSource("sum.asm", source),
		api.NewWriterSink(os.Stdout, api.FormatText),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	core.PrintSymbolTable(os.Stdout, prog)

	engine := sim.NewSerialEngine()
	m := machine.NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithMaxCycles(10000).
		Build("Machine")

	if err := m.LoadProgram(prog.MachineWords()); err != nil {
		panic(err)
	}

	m.Start()
	if err := engine.Run(); err != nil {
		panic(err)
	}

	fmt.Printf("R0 = %d after %d cycles (%s)\n", m.Peek(0), m.Cycles(), m.HaltReason())
	atexit.Exit(0)
}
