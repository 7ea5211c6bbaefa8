// Package token provides the set of lexical tokens for a lox program.
package token

import (
	"fmt"
	"slices"
)

// Token is a lexical token in a lox program.
//
// Tokens are values and are never modified once the scanner has produced them.
type Token struct {
	Lexeme string  // The raw source text of the token
	Text   string  // The unquoted value of a String token
	Number float64 // The parsed value of a Number token
	Kind   Kind    // The kind of token this is
	Line   int     // 1 based line number the token starts on
	Start  int     // Byte offset from the start of the file to the start of this token
	End    int     // Byte offset from the start of the file to the end of this token
}

// String implements [fmt.Stringer] for a [Token].
func (t Token) String() string {
	return fmt.Sprintf("<Token::%s lexeme=%q, line=%d, start=%d, end=%d>", t.Kind, t.Lexeme, t.Line, t.Start, t.End)
}

// Is reports whether the token is any of the provided [Kind]s.
func (t Token) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// Keyword reports whether a string refers to a keyword, returning it's [Kind]
// and true if it is. Otherwise [Identifier] and false are returned.
//
// Matching is case sensitive, "Var" is an identifier.
func Keyword(text string) (kind Kind, ok bool) {
	switch text {
	case "and":
		return And, true
	case "class":
		return Class, true
	case "else":
		return Else, true
	case "false":
		return False, true
	case "fun":
		return Fun, true
	case "for":
		return For, true
	case "if":
		return If, true
	case "nil":
		return Nil, true
	case "or":
		return Or, true
	case "print":
		return Print, true
	case "return":
		return Return, true
	case "super":
		return Super, true
	case "this":
		return This, true
	case "true":
		return True, true
	case "var":
		return Var, true
	case "while":
		return While, true
	default:
		return Identifier, false
	}
}
