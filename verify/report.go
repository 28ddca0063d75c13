package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/hackasm/core"
	"github.com/sarchlab/hackasm/machine"
)

// VariableValue is the content of a variable when the run ended.
type VariableValue struct {
	Name    string
	Address int
	Value   uint16
}

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Program    *core.Program
	Limits     *Limits
	LintIssues []Issue
	ByType     map[IssueType][]Issue

	Ran           bool
	Cycles        int
	HaltReason    machine.HaltReason
	Variables     []VariableValue
	SimulationErr error
	SimulationOK  bool
}

// GenerateReport runs lint and, when maxCycles is positive, executes the
// program on a machine with at most maxCycles cycles.
func GenerateReport(prog *core.Program, limits *Limits, maxCycles int) *VerificationReport {
	if limits == nil {
		limits = DefaultLimits()
	}

	report := &VerificationReport{
		Program:    prog,
		Limits:     limits,
		LintIssues: RunLint(prog, limits),
		ByType:     make(map[IssueType][]Issue),
	}

	for _, issue := range report.LintIssues {
		report.ByType[issue.Type] = append(report.ByType[issue.Type], issue)
	}

	if maxCycles <= 0 {
		report.SimulationOK = true
		return report
	}

	report.run(maxCycles)

	return report
}

func (r *VerificationReport) run(maxCycles int) {
	r.Ran = true

	c, err := machine.NewBuilder().
		WithRAMSize(r.Limits.RAMSize).
		WithMaxCycles(maxCycles).
		Run(r.Program.Name+".Machine", r.Program.MachineWords())
	r.SimulationErr = err
	r.SimulationOK = err == nil
	if c == nil {
		return
	}

	r.Cycles = c.Cycles()
	r.HaltReason = c.HaltReason()

	for _, v := range r.Program.Symbols.Variables() {
		if v.Address >= r.Limits.RAMSize {
			continue
		}
		r.Variables = append(r.Variables, VariableValue{
			Name:    v.Name,
			Address: v.Address,
			Value:   c.Peek(v.Address),
		})
	}
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetTitle(fmt.Sprintf("Verification %s", r.Program.Name))
	summary.AppendRows([]table.Row{
		{"Words", r.Program.Len()},
		{"Labels", len(r.Program.Symbols.Labels())},
		{"Variables", len(r.Program.Symbols.Variables())},
		{"Lint issues", len(r.LintIssues)},
	})
	for _, t := range []IssueType{IssueStruct, IssueSymbol, IssueMemory, IssueControl} {
		summary.AppendRow(table.Row{"  " + string(t), len(r.ByType[t])})
	}
	summary.Render()

	if len(r.LintIssues) > 0 {
		issues := table.NewWriter()
		issues.SetOutputMirror(w)
		issues.SetTitle("Lint")
		issues.AppendHeader(table.Row{"Type", "Line", "Addr", "Message"})
		for _, issue := range r.LintIssues {
			issues.AppendRow(table.Row{issue.Type, issue.Line, issue.Addr, issue.Message})
		}
		issues.Render()
	}

	if !r.Ran {
		return
	}

	run := table.NewWriter()
	run.SetOutputMirror(w)
	run.SetTitle("Run")
	run.AppendHeader(table.Row{"Name", "Address", "Value"})
	for _, v := range r.Variables {
		run.AppendRow(table.Row{v.Name, v.Address, int16(v.Value)})
	}

	status := "halted: " + r.HaltReason.String()
	if !r.SimulationOK {
		status = "failed: " + r.SimulationErr.Error()
	}
	run.AppendSeparator()
	run.AppendRow(table.Row{"Cycles", r.Cycles, status})
	run.Render()
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
