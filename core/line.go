package core

import "strings"

// SourceLine is a normalized source line together with the 1-based number of
// the raw line it was read from.
type SourceLine struct {
	Number int
	Text   string
}

// Normalize strips the trailing // comment and every character outside the
// printable range '!'..'~', which also removes all whitespace.
func Normalize(raw string) string {
	var sb strings.Builder

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '/' && i+1 < len(raw) && raw[i+1] == '/' {
			break
		}

		if c > ' ' && c <= '~' {
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// NormalizeLines normalizes every raw line and drops the ones that end up
// empty. The remaining lines keep their original line numbers.
func NormalizeLines(raw []string) []SourceLine {
	lines := make([]SourceLine, 0, len(raw))

	for i, r := range raw {
		text := Normalize(r)
		if text == "" {
			continue
		}

		lines = append(lines, SourceLine{Number: i + 1, Text: text})
	}

	return lines
}
