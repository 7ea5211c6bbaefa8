package runtime

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// ErrResolution is returned when the resolver's scope distance for a variable does not
// match the environments the interpreter actually created. It is always a bug in the
// interpreter, never a problem with the program being run.
var ErrResolution = errors.New("resolution mismatch")

// Error is a runtime error, raised while executing a program.
//
// The first one halts the program.
type Error struct {
	// Msg is a descriptive message explaining the error.
	Msg string

	// Token is the token the error is reported at.
	Token token.Token
}

// NewError returns a new [Error] at tok with a formatted message.
func NewError(tok token.Token, format string, a ...any) *Error {
	return &Error{Token: tok, Msg: fmt.Sprintf(format, a...)}
}

// Error implements the error interface for [Error], formatted
// as a diagnostic:
//
//	[line <N>] Error: <message>
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Msg)
}
