// Package api defines the driver API that connects the assembler to source
// and output files.
package api

import (
	"fmt"

	"github.com/sarchlab/hackasm/core"
)

// LineSource provides the raw lines of one assembly program.
type LineSource interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Lines returns every raw line in file order.
	Lines() ([]string, error)
}

// WordSink receives the words of an assembled program.
type WordSink interface {
	// WriteWords stores all words at once, in program order.
	WriteWords(words []string) error
}

// Driver provides the interface to run the assembler on files.
type Driver interface {
	// Assemble reads the source, translates it, and hands the words to the
	// sink. Nothing reaches the sink if any step before it fails.
	Assemble(src LineSource, dst WordSink) (*core.Program, error)
}

type driverImpl struct {
	name      string
	assembler *core.Assembler
}

func (d *driverImpl) Assemble(src LineSource, dst WordSink) (*core.Program, error) {
	lines, err := src.Lines()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src.Name(), err)
	}

	core.Trace("Driver",
		"Behavior", "Read",
		"Driver", d.name,
		"Source", src.Name(),
		"Lines", len(lines),
	)

	prog, err := d.assembler.Assemble(src.Name(), lines)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", src.Name(), err)
	}

	if err := dst.WriteWords(prog.Words); err != nil {
		return prog, fmt.Errorf("writing %s: %w", src.Name(), err)
	}

	core.Trace("Driver",
		"Behavior", "Write",
		"Driver", d.name,
		"Source", src.Name(),
		"Words", len(prog.Words),
	)

	return prog, nil
}
