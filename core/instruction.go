package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Kind represents which of the three canonical forms an instruction takes.
type Kind int

const (
	KindLabel Kind = iota
	KindAddress
	KindCompute
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindAddress:
		return "address"
	case KindCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// Instruction represents a classified instruction.
type Instruction struct {
	Kind    Kind
	Label   string // Name for label declarations, e.g. "LOOP" for "(LOOP)"
	Operand string // Literal or symbol for address instructions
	Dest    string
	Comp    string
	Jump    string
	Line    SourceLine // Source line the instruction was read or expanded from
}

// LabelDecl creates a label declaration.
func LabelDecl(name string, line SourceLine) Instruction {
	return Instruction{Kind: KindLabel, Label: name, Line: line}
}

// Address creates an address instruction.
func Address(operand string, line SourceLine) Instruction {
	return Instruction{Kind: KindAddress, Operand: operand, Line: line}
}

// Compute creates a compute instruction.
func Compute(dest, comp, jump string, line SourceLine) Instruction {
	return Instruction{Kind: KindCompute, Dest: dest, Comp: comp, Jump: jump, Line: line}
}

// String renders the instruction in canonical source form.
func (i Instruction) String() string {
	switch i.Kind {
	case KindLabel:
		return "(" + i.Label + ")"
	case KindAddress:
		return "@" + i.Operand
	default:
		s := i.Comp
		if i.Dest != "" {
			s = i.Dest + "=" + s
		}
		if i.Jump != "" {
			s += ";" + i.Jump
		}
		return s
	}
}

// Classify turns a normalized line into an instruction. Label declarations
// take precedence over address instructions; everything else is a compute
// instruction.
func Classify(line SourceLine) (Instruction, error) {
	text := line.Text
	if text == "" {
		return Instruction{}, newError(KindMalformedLine, line, "empty line")
	}

	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		if len(text) < 3 {
			return Instruction{}, newError(KindMalformedLine, line, "label declaration without a name")
		}
		return LabelDecl(text[1:len(text)-1], line), nil
	}

	if text[0] == '@' {
		if len(text) < 2 {
			return Instruction{}, newError(KindMalformedLine, line, "@ needs to be followed by a constant or symbol")
		}
		return Address(text[1:], line), nil
	}

	dest, rest, found := strings.Cut(text, "=")
	if !found {
		dest, rest = "", text
	}
	comp, jump, _ := strings.Cut(rest, ";")
	if comp == "" {
		return Instruction{}, newError(KindMalformedLine, line, "compute instruction without a computation")
	}

	return Compute(dest, comp, jump, line), nil
}

// isSymbolName reports whether s can name a label or variable: letters,
// digits, '_', '.', '$' and ':', not beginning with a digit.
func isSymbolName(s string) bool {
	if s == "" || unicode.IsDigit(rune(s[0])) {
		return false
	}

	for _, r := range s {
		if !validSymbolChar(r) {
			return false
		}
	}

	return true
}

func validSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '_' || r == '.' || r == '$' || r == ':'
}

// isInteger reports whether s is a decimal integer, optionally signed.
func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
