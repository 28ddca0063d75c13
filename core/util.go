package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// SymbolTableString renders the symbol table as a text table ordered by
// address.
func SymbolTableString(t *SymbolTable) string {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Symbols (%d)", t.Len()))
	tw.AppendHeader(table.Row{"Name", "Address", "Hex", "Kind"})

	for _, s := range t.Entries() {
		tw.AppendRow(table.Row{s.Name, s.Address, fmt.Sprintf("0x%04X", s.Address), s.Kind})
	}

	return tw.Render()
}

// PrintSymbolTable writes the symbol table of a program to w.
func PrintSymbolTable(w io.Writer, prog *Program) {
	fmt.Fprintln(w, SymbolTableString(prog.Symbols))
}

// ListingString renders the instructions of a program next to the words
// they were encoded to.
func ListingString(prog *Program) string {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Listing %s", prog.Name))
	tw.AppendHeader(table.Row{"Addr", "Line", "Instruction", "Word"})

	for i, inst := range prog.Instructions {
		tw.AppendRow(table.Row{i, inst.Line.Number, inst.String(), prog.Words[i]})
	}

	return tw.Render()
}

func LogProgram(prog *Program) {
	slog.Debug("ProgramAssembled",
		"Name", prog.Name,
		"Lines", len(prog.Source),
		"Expanded", len(prog.Expanded),
		"Words", len(prog.Words),
		"Labels", len(prog.Symbols.Labels()),
		"Variables", len(prog.Symbols.Variables()),
	)
}
