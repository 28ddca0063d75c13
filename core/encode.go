package core

import (
	"fmt"
	"strconv"
)

// WordSize is the number of bits in a machine word.
const WordSize = 16

// computePrefix marks a compute instruction.
const computePrefix = "111"

// Encode converts a canonical, label-free instruction into its 16-character
// binary form.
func Encode(inst Instruction, table *SymbolTable) (string, error) {
	switch inst.Kind {
	case KindAddress:
		value, err := resolveOperand(inst, table)
		if err != nil {
			return "", err
		}
		return FormatWord(uint16(value)), nil

	case KindCompute:
		control, ok := ControlBits(inst.Comp)
		if !ok {
			return "", newError(KindUnknownMnemonic, inst.Line, "no control entry for %q", inst.Comp)
		}
		dest, ok := DestBits(inst.Dest)
		if !ok {
			return "", newError(KindUnknownMnemonic, inst.Line, "no destination entry for %q", inst.Dest)
		}
		jump, ok := JumpBits(inst.Jump)
		if !ok {
			return "", newError(KindUnknownMnemonic, inst.Line, "no jump entry for %q", inst.Jump)
		}
		return computePrefix + control + dest + jump, nil

	default:
		return "", newError(KindMalformedLine, inst.Line,
			"%s instruction %q cannot be encoded", inst.Kind, inst.String())
	}
}

func resolveOperand(inst Instruction, table *SymbolTable) (int, error) {
	if isLiteral(inst.Operand) {
		value, err := strconv.Atoi(inst.Operand)
		if err != nil || value < 0 || value > MaxAddress {
			return 0, newError(KindMalformedLine, inst.Line,
				"operand %s out of range 0..%d", inst.Operand, MaxAddress)
		}
		return value, nil
	}

	value, ok := table.Lookup(inst.Operand)
	if !ok {
		return 0, newError(KindUnresolvedSymbol, inst.Line, "%q is not bound", inst.Operand)
	}

	return value, nil
}

// EncodeAll encodes instructions in order, one word per instruction.
func EncodeAll(insts []Instruction, table *SymbolTable) ([]string, error) {
	words := make([]string, 0, len(insts))

	for _, inst := range insts {
		word, err := Encode(inst, table)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	return words, nil
}

// FormatWord renders a word most significant bit first.
func FormatWord(w uint16) string {
	return fmt.Sprintf("%016b", w)
}

// ParseWord converts a 16-character binary string back to a word.
func ParseWord(s string) (uint16, error) {
	if len(s) != WordSize {
		return 0, fmt.Errorf("word %q has %d characters, want %d", s, len(s), WordSize)
	}

	v, err := strconv.ParseUint(s, 2, WordSize)
	if err != nil {
		return 0, fmt.Errorf("word %q is not binary: %w", s, err)
	}

	return uint16(v), nil
}

// ParseWords converts a list of binary strings to words.
func ParseWords(words []string) ([]uint16, error) {
	out := make([]uint16, len(words))

	for i, w := range words {
		v, err := ParseWord(w)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
