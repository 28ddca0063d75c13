package verify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/hackasm/core"
)

// RunLint performs static lint checks on an assembled program. A nil limits
// means DefaultLimits. Returns a list of issues found, or empty list if no
// issues.
func RunLint(prog *core.Program, limits *Limits) []Issue {
	if limits == nil {
		limits = DefaultLimits()
	}

	var issues []Issue

	issues = append(issues, checkStructure(prog, limits)...)
	issues = append(issues, checkSymbols(prog)...)
	issues = append(issues, checkMemory(prog, limits)...)
	issues = append(issues, checkControl(prog)...)

	return issues
}

func checkStructure(prog *core.Program, limits *Limits) []Issue {
	if prog.Len() <= limits.ROMSize {
		return nil
	}

	return []Issue{{
		Type: IssueStruct,
		Addr: -1,
		Message: fmt.Sprintf("Program has %d words, instruction memory holds %d",
			prog.Len(), limits.ROMSize),
		Details: map[string]interface{}{
			"words":   prog.Len(),
			"romSize": limits.ROMSize,
		},
	}}
}

// referencedSymbols collects the symbolic operands of address instructions.
func referencedSymbols(prog *core.Program) map[string]bool {
	refs := make(map[string]bool)

	for _, inst := range prog.Instructions {
		if inst.Kind != core.KindAddress {
			continue
		}
		if _, err := strconv.Atoi(inst.Operand); err == nil {
			continue
		}
		refs[inst.Operand] = true
	}

	return refs
}

func checkSymbols(prog *core.Program) []Issue {
	var issues []Issue

	refs := referencedSymbols(prog)
	for _, label := range prog.Symbols.Labels() {
		if refs[label.Name] {
			continue
		}

		issues = append(issues, Issue{
			Type:    IssueSymbol,
			Addr:    label.Address,
			Line:    declarationLine(prog, label.Name),
			Symbol:  label.Name,
			Message: fmt.Sprintf("Label %s is never referenced", label.Name),
		})
	}

	predefined := core.NewSymbolTable().Entries()
	for _, v := range prog.Symbols.Variables() {
		for _, p := range predefined {
			if v.Name == p.Name || !strings.EqualFold(v.Name, p.Name) {
				continue
			}

			issues = append(issues, Issue{
				Type:   IssueSymbol,
				Addr:   -1,
				Line:   firstUseLine(prog, v.Name),
				Symbol: v.Name,
				Message: fmt.Sprintf("Variable %s differs from predefined %s only by case",
					v.Name, p.Name),
				Details: map[string]interface{}{
					"predefined": p.Name,
					"address":    v.Address,
				},
			})
		}
	}

	return issues
}

func checkMemory(prog *core.Program, limits *Limits) []Issue {
	var issues []Issue

	for _, v := range prog.Symbols.Variables() {
		if v.Address < limits.VariableLimit && v.Address < limits.RAMSize {
			continue
		}

		issues = append(issues, Issue{
			Type:   IssueMemory,
			Addr:   -1,
			Line:   firstUseLine(prog, v.Name),
			Symbol: v.Name,
			Message: fmt.Sprintf("Variable %s is placed at %d, past the variable area",
				v.Name, v.Address),
			Details: map[string]interface{}{
				"address": v.Address,
				"limit":   limits.VariableLimit,
			},
		})
	}

	return issues
}

// checkControl flags jumps that are not preceded by an instruction loading
// A, because the jump target is then whatever A held before.
func checkControl(prog *core.Program) []Issue {
	var issues []Issue

	for i, inst := range prog.Instructions {
		if inst.Kind != core.KindCompute || inst.Jump == "" {
			continue
		}

		if i > 0 && loadsA(prog.Instructions[i-1]) {
			continue
		}

		issues = append(issues, Issue{
			Type: IssueControl,
			Addr: i,
			Line: inst.Line.Number,
			Message: fmt.Sprintf("Jump %s at %d does not load its target first",
				inst.String(), i),
		})
	}

	return issues
}

func loadsA(inst core.Instruction) bool {
	return inst.Kind == core.KindAddress ||
		(inst.Kind == core.KindCompute && strings.Contains(inst.Dest, "A"))
}

func declarationLine(prog *core.Program, label string) int {
	for _, inst := range prog.Expanded {
		if inst.Kind == core.KindLabel && inst.Label == label {
			return inst.Line.Number
		}
	}
	return 0
}

func firstUseLine(prog *core.Program, name string) int {
	for _, inst := range prog.Instructions {
		if inst.Kind == core.KindAddress && inst.Operand == name {
			return inst.Line.Number
		}
	}
	return 0
}
