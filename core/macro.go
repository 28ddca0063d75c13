package core

import "strings"

// fieldKind classifies the text of a destination or control field.
type fieldKind int

const (
	fieldEmpty fieldKind = iota
	fieldRegister
	fieldMnemonic
	fieldConstant
	fieldSymbol
	fieldOther
)

func classifyDest(dest string) fieldKind {
	switch {
	case dest == "":
		return fieldEmpty
	case IsRegister(dest):
		return fieldRegister
	case isSymbolName(dest):
		return fieldSymbol
	default:
		return fieldOther
	}
}

// classifyComp checks the control table before the integer test so that
// 0, 1 and -1 stay ALU constants.
func classifyComp(comp string) fieldKind {
	switch {
	case IsMnemonic(comp):
		return fieldMnemonic
	case isInteger(comp):
		return fieldConstant
	case isSymbolName(comp):
		return fieldSymbol
	default:
		return fieldOther
	}
}

// sugar names the convenience form a compute instruction uses.
type sugar int

const (
	sugarNone sugar = iota
	sugarIncrement
	sugarDecrement
	sugarGoto
	sugarLoadConstant
	sugarStore
	sugarLoadVariable
	sugarCopy
)

var sugarNames = map[sugar]string{
	sugarNone:         "none",
	sugarIncrement:    "increment",
	sugarDecrement:    "decrement",
	sugarGoto:         "goto",
	sugarLoadConstant: "load constant",
	sugarStore:        "store",
	sugarLoadVariable: "load variable",
	sugarCopy:         "copy",
}

func (s sugar) String() string {
	return sugarNames[s]
}

// detectSugar selects the single sugar form of a compute instruction. Forms
// are tried in a fixed order and the first one that matches wins.
func detectSugar(inst Instruction) sugar {
	switch {
	case strings.HasSuffix(inst.Comp, "++"):
		return sugarIncrement
	case strings.HasSuffix(inst.Comp, "--"):
		return sugarDecrement
	case strings.Contains(inst.Jump, ":"):
		return sugarGoto
	}

	dest := classifyDest(inst.Dest)
	comp := classifyComp(inst.Comp)

	switch {
	case dest != fieldEmpty && comp == fieldConstant:
		return sugarLoadConstant
	case dest == fieldSymbol && comp == fieldMnemonic:
		return sugarStore
	case dest == fieldRegister && comp == fieldSymbol:
		return sugarLoadVariable
	case dest == fieldSymbol && comp == fieldSymbol:
		return sugarCopy
	default:
		return sugarNone
	}
}

// Expander rewrites convenience instructions into canonical ones.
type Expander struct {
	enabled bool
}

// NewExpander creates an expander. A disabled expander passes every
// instruction through unchanged.
func NewExpander(enabled bool) *Expander {
	return &Expander{enabled: enabled}
}

// Expand returns the canonical instructions that replace inst. Label
// declarations, address instructions and canonical compute instructions are
// returned as they are.
func (e *Expander) Expand(inst Instruction) ([]Instruction, error) {
	if !e.enabled || inst.Kind != KindCompute {
		return []Instruction{inst}, nil
	}

	line := inst.Line
	form := detectSugar(inst)

	switch form {
	case sugarLoadConstant, sugarStore, sugarLoadVariable, sugarCopy:
		if inst.Jump != "" {
			return nil, newError(KindMalformedLine, line,
				"%s cannot be combined with a jump", form)
		}
	}

	switch form {
	case sugarIncrement, sugarDecrement:
		return expandStep(inst, form)

	case sugarGoto:
		cond, label, _ := strings.Cut(inst.Jump, ":")
		if cond == "" || label == "" {
			return nil, newError(KindMalformedLine, line,
				"goto needs both a condition and a label, as in comp;JMP:LABEL")
		}
		return []Instruction{
			Address(label, line),
			Compute(inst.Dest, inst.Comp, cond, line),
		}, nil

	case sugarLoadConstant:
		if IsRegister(inst.Dest) {
			return []Instruction{
				Address(inst.Comp, line),
				Compute(inst.Dest, "A", "", line),
			}, nil
		}
		if !isSymbolName(inst.Dest) {
			return nil, newError(KindInvalidLabelName, line,
				"%q is neither a register nor a variable name", inst.Dest)
		}
		return []Instruction{
			Address(inst.Comp, line),
			Compute("D", "A", "", line),
			Address(inst.Dest, line),
			Compute("M", "D", "", line),
		}, nil

	case sugarStore:
		return []Instruction{
			Address(inst.Dest, line),
			Compute("M", inst.Comp, "", line),
		}, nil

	case sugarLoadVariable:
		return []Instruction{
			Address(inst.Comp, line),
			Compute(inst.Dest, "M", "", line),
		}, nil

	case sugarCopy:
		return []Instruction{
			Address(inst.Comp, line),
			Compute("D", "M", "", line),
			Address(inst.Dest, line),
			Compute("M", "D", "", line),
		}, nil

	default:
		return []Instruction{inst}, nil
	}
}

func expandStep(inst Instruction, form sugar) ([]Instruction, error) {
	line := inst.Line
	if inst.Dest != "" || inst.Jump != "" {
		return nil, newError(KindMalformedLine, line,
			"%s cannot carry a destination or a jump", form)
	}

	op, suffix := "+", "++"
	if form == sugarDecrement {
		op, suffix = "-", "--"
	}

	name := strings.TrimSuffix(inst.Comp, suffix)
	if name == "" {
		return nil, newError(KindMalformedLine, line, "%s without an operand", form)
	}

	if IsRegister(name) {
		return []Instruction{Compute(name, name+op+"1", "", line)}, nil
	}

	if !isSymbolName(name) {
		return nil, newError(KindInvalidLabelName, line,
			"cannot %s %q", form, name)
	}

	return []Instruction{
		Address(name, line),
		Compute("M", "M"+op+"1", "", line),
	}, nil
}

// ExpandAll classifies and expands every normalized line in program order.
func (e *Expander) ExpandAll(lines []SourceLine) ([]Instruction, error) {
	out := make([]Instruction, 0, len(lines))

	for _, line := range lines {
		inst, err := Classify(line)
		if err != nil {
			return nil, err
		}

		expanded, err := e.Expand(inst)
		if err != nil {
			return nil, err
		}

		out = append(out, expanded...)
	}

	return out, nil
}
