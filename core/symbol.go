package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sarchlab/hackasm/util"
)

const (
	// VariableBase is the address given to the first variable.
	VariableBase = 16
	// ScreenBase is the first word of the memory-mapped display buffer.
	ScreenBase = 16384
	// KeyboardAddr is the memory-mapped keyboard input register.
	KeyboardAddr = 24576
	// MaxAddress is the largest value an address instruction can load.
	MaxAddress = 1<<15 - 1
)

// SymbolKind tells how a symbol got its address.
type SymbolKind int

const (
	SymbolPredefined SymbolKind = iota
	SymbolLabel
	SymbolVariable
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolPredefined:
		return "predefined"
	case SymbolLabel:
		return "label"
	case SymbolVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Symbol is one entry of the symbol table.
type Symbol struct {
	Name    string
	Address int
	Kind    SymbolKind
}

// SymbolTable maps names to addresses. A table belongs to a single
// translation run.
type SymbolTable struct {
	symbols map[string]Symbol
	order   []string
}

// NewSymbolTable creates a table seeded with the predefined symbols.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{symbols: make(map[string]Symbol)}

	for i := 0; i < 16; i++ {
		t.bind("R"+strconv.Itoa(i), i, SymbolPredefined)
	}
	t.bind("SCREEN", ScreenBase, SymbolPredefined)
	t.bind("KBD", KeyboardAddr, SymbolPredefined)
	t.bind("KYB", KeyboardAddr, SymbolPredefined)

	return t
}

func (t *SymbolTable) bind(name string, addr int, kind SymbolKind) {
	t.symbols[name] = Symbol{Name: name, Address: addr, Kind: kind}
	t.order = append(t.order, name)
}

// Lookup returns the address bound to name.
func (t *SymbolTable) Lookup(name string) (int, bool) {
	s, ok := t.symbols[name]
	return s.Address, ok
}

// Get returns the full entry bound to name.
func (t *SymbolTable) Get(name string) (Symbol, bool) {
	s, ok := t.symbols[name]
	return s, ok
}

// Len returns the number of bound names.
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// Entries returns all symbols sorted by address, then by name.
func (t *SymbolTable) Entries() []Symbol {
	entries := make([]Symbol, 0, len(t.symbols))
	for _, s := range t.symbols {
		entries = append(entries, s)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// Labels returns the label symbols in declaration order.
func (t *SymbolTable) Labels() []Symbol {
	return t.ofKind(SymbolLabel)
}

// Variables returns the variable symbols in allocation order.
func (t *SymbolTable) Variables() []Symbol {
	return t.ofKind(SymbolVariable)
}

func (t *SymbolTable) ofKind(kind SymbolKind) []Symbol {
	var out []Symbol
	for _, name := range t.order {
		if s := t.symbols[name]; s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// BuildSymbolTable binds every label to the address of the instruction that
// follows it and every other symbolic operand to a fresh variable address.
// Labels are collected before any operand is looked at, so forward
// references resolve. The returned instructions no longer contain labels.
func BuildSymbolTable(insts []Instruction) (*SymbolTable, []Instruction, error) {
	table := NewSymbolTable()
	stripped := make([]Instruction, 0, len(insts))

	pc := 0
	for _, inst := range insts {
		if inst.Kind != KindLabel {
			stripped = append(stripped, inst)
			pc++
			continue
		}

		if err := checkSymbolName(inst.Label, inst.Line); err != nil {
			return nil, nil, err
		}

		if prev, exists := table.Get(inst.Label); exists {
			return nil, nil, newError(KindDuplicateLabel, inst.Line,
				"%q is already bound as a %s to %d", inst.Label, prev.Kind, prev.Address)
		}

		table.bind(inst.Label, pc, SymbolLabel)
		Trace("Symbol", "Behavior", "BindLabel", "Name", inst.Label, "Address", pc)
	}

	nextVar := util.MakeIncreasingGen(VariableBase - 1)
	for _, inst := range stripped {
		if inst.Kind != KindAddress || isLiteral(inst.Operand) {
			continue
		}

		if err := checkSymbolName(inst.Operand, inst.Line); err != nil {
			return nil, nil, err
		}

		if _, exists := table.Lookup(inst.Operand); exists {
			continue
		}

		addr := nextVar()
		table.bind(inst.Operand, addr, SymbolVariable)
		Trace("Symbol", "Behavior", "BindVariable", "Name", inst.Operand, "Address", addr)
	}

	return table, stripped, nil
}

func checkSymbolName(name string, line SourceLine) error {
	if isSymbolName(name) {
		return nil
	}

	if name != "" && name[0] >= '0' && name[0] <= '9' {
		return newError(KindInvalidLabelName, line, "%q begins with a digit", name)
	}

	return newError(KindInvalidLabelName, line, "%q contains an illegal character", name)
}

// isLiteral reports whether an address operand is numeric. Signed numbers
// count as literals so that the encoder reports them as out of range.
func isLiteral(operand string) bool {
	return isInteger(operand)
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s=%d (%s)", s.Name, s.Address, s.Kind)
}
