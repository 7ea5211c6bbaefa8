// Package syntax holds the types shared by every stage of the lox front end: source
// positions and the diagnostics the scanner, parser and resolver accumulate.
//
// No stage reports errors through global state, each one collects [Diagnostic] values
// and hands them back to the caller, which decides whether the program may be executed.
package syntax

import (
	"bytes"
	"cmp"
	"fmt"
)

// Position is an arbitrary source file position including file, line
// and column information. It can also express a range of source via StartCol
// and EndCol, this is useful for error reporting.
//
// Positions without filenames are considered invalid, in the case of stdin
// or the REPL the string "stdin" may be used.
type Position struct {
	Name     string `json:"name"     toml:"name"     yaml:"name"`     // Filename
	Offset   int    `json:"offset"   toml:"offset"   yaml:"offset"`   // Byte offset of the position from the start of the file
	Line     int    `json:"line"     toml:"line"     yaml:"line"`     // Line number (1 indexed)
	StartCol int    `json:"startCol" toml:"startCol" yaml:"startCol"` // Start column (1 indexed)
	EndCol   int    `json:"endCol"   toml:"endCol"   yaml:"endCol"`   // End column (1 indexed), EndCol == StartCol when pointing to a single character
}

// NewPosition returns the [Position] of the span of src from byte offset start
// to end, which begins on the given line.
//
// Columns are counted in bytes from the last newline before start.
func NewPosition(name string, src []byte, line, start, end int) Position {
	start = min(max(start, 0), len(src))

	// The byte offset of the (end of the) last newline before the span
	lastNewLineOffset := bytes.LastIndexByte(src[:start], '\n') + 1

	// The column is therefore the number of bytes between the end of the last newline
	// and the span, +1 because editors columns start at 1. Applying this correction here
	// means you can click an error in the terminal and be taken to a precise location
	// in an editor which is probably what we want to happen
	return Position{
		Name:     name,
		Offset:   start,
		Line:     line,
		StartCol: 1 + start - lastNewLineOffset,
		EndCol:   1 + max(end, start) - lastNewLineOffset,
	}
}

// IsValid reports whether the [Position] describes a valid source position.
//
// The rules are:
//
//   - At least Name, Line and StartCol must be set (and non zero)
//   - EndCol cannot be 0, it's only allowed values are StartCol or any number greater than StartCol
func (p Position) IsValid() bool {
	if p.Name == "" || p.Line < 1 || p.StartCol < 1 || p.EndCol < 1 ||
		(p.EndCol >= 1 && p.EndCol < p.StartCol) {
		return false
	}

	return true
}

// String returns a string representation of a [Position].
//
// It is formatted such that most text editors/terminals will be able to support clicking on it
// and navigating to the position.
//
// Depending on which fields are set, the string returned will be different:
//
//   - "file:line:start-end": valid position pointing to a range of text on the line
//   - "file:line:start": valid position pointing to a single character on the line (EndCol == StartCol)
//
// At least Name, Line and StartCol must be present for a valid position, and Line and StarCol must be > 0.
// If not, an error string will be returned.
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf(
			"BadPosition: {Name: %q, Line: %d, StartCol: %d, EndCol: %d}",
			p.Name,
			p.Line,
			p.StartCol,
			p.EndCol,
		)
	}

	if p.StartCol == p.EndCol {
		// No range, just a single position
		return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.StartCol)
	}

	return fmt.Sprintf("%s:%d:%d-%d", p.Name, p.Line, p.StartCol, p.EndCol)
}

// ComparePosition is like [cmp.Compare] for a [syntax.Position].
//
// If x and y are equal ComparePosition returns 0.
//
// If x and y refer to the same file, it returns [cmp.Compare] of
// the two offsets.
//
// If the positions refer to different files, they are compared alphabetically.
func ComparePosition(x, y Position) int {
	if x == y {
		return 0
	}

	if x.Name == y.Name {
		return cmp.Compare(x.Offset, y.Offset)
	}

	return cmp.Compare(x.Name, y.Name)
}

// Diagnostic is a syntax level diagnostic, raised by the scanner, parser
// or resolver.
type Diagnostic struct {
	Msg      string   `json:"msg"             toml:"msg"             yaml:"msg"`             // A descriptive message explaining the error
	Where    string   `json:"where,omitempty" toml:"where,omitempty" yaml:"where,omitempty"` // Location hint e.g. " at 'x'" or " at end", may be empty
	Position Position `json:"position"        toml:"position"        yaml:"position"`        // The source position the diagnostic points to
}

// String prints a [Diagnostic] in the canonical lox format:
//
//	[line <N>] Error<where>: <message>
func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s\n", d.Position.Line, d.Where, d.Msg)
}

// AtLexeme returns the location hint for a diagnostic tied to a token
// with the given lexeme.
func AtLexeme(lexeme string) string {
	return " at '" + lexeme + "'"
}

// AtEnd is the location hint for a diagnostic tied to the end of the input.
const AtEnd = " at end"
