// Package verify provides static checks for assembled Hack programs.
//
// It implements two complementary stages:
//
// 1. Static Lint (lint.go): checks on the resolved program
//   - STRUCT checks: the program fits the instruction memory
//   - SYMBOL checks: unused labels, variables that look like predefined names
//   - MEMORY checks: variables spilling into memory-mapped I/O
//   - CONTROL checks: jumps whose target was not loaded right before them
//
// 2. Execution (report.go): runs the program on machine.Core for a bounded
// number of cycles and records the final variable values.
//
// # Usage Example
//
//	prog, err := core.NewBuilder().Build("asm").Assemble("max.asm", lines)
//	if err != nil {
//	    return err
//	}
//
//	issues := verify.RunLint(prog, verify.DefaultLimits())
//	for _, issue := range issues {
//	    log.Printf("[%s] line %d: %s", issue.Type, issue.Line, issue.Message)
//	}
//
//	report := verify.GenerateReport(prog, nil, 10000)
//	report.WriteReport(os.Stdout)
package verify

import (
	"github.com/sarchlab/hackasm/core"
	"github.com/sarchlab/hackasm/machine"
)

// IssueType categorizes lint issues.
type IssueType string

const (
	IssueStruct  IssueType = "STRUCT"  // Program does not fit the machine
	IssueSymbol  IssueType = "SYMBOL"  // Suspicious label or variable
	IssueMemory  IssueType = "MEMORY"  // Variable placed in memory-mapped I/O
	IssueControl IssueType = "CONTROL" // Jump target not loaded before the jump
)

// Issue represents a single lint finding.
type Issue struct {
	Type    IssueType              // STRUCT, SYMBOL, MEMORY or CONTROL
	Addr    int                    // Instruction address (-1 if not applicable)
	Line    int                    // Source line (0 if not applicable)
	Symbol  string                 // Symbol involved, if any
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

// Limits captures the machine constraints lint checks against.
type Limits struct {
	ROMSize       int // Instruction memory words
	RAMSize       int // Data memory words
	VariableLimit int // First address variables must stay below
}

// DefaultLimits returns the limits of the standard machine.
func DefaultLimits() *Limits {
	return &Limits{
		ROMSize:       machine.ROMSize,
		RAMSize:       machine.DefaultRAMSize,
		VariableLimit: core.ScreenBase,
	}
}
