package runtime

import (
	"fmt"
	"maps"
	"slices"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Environment is one frame of variable bindings, with a link to the enclosing frame.
// The global environment has no enclosing frame.
//
// Environments are shared by pointer: every closure created while a frame was active
// holds on to it, and sees any later changes to it.
type Environment struct {
	values    map[string]Value // Bindings in this frame, a nil Value is declared but unassigned
	enclosing *Environment     // The enclosing frame, nil for the globals
}

// NewEnvironment returns a new, empty [Environment] enclosed by enclosing, which
// may be nil for the global environment.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Enclosing returns the environment's enclosing frame, or nil for the globals.
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Names returns the names bound in this frame only, sorted.
func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}

// Declare binds name in this frame without a value. Reading it before it is
// assigned gives nil.
func (e *Environment) Declare(name string) {
	e.values[name] = nil
}

// Define binds name to value in this frame, replacing any existing binding
// in this frame.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks name up in this frame and then each enclosing frame in turn, returning
// the nearest binding. If no frame binds name, a *[Error] is returned.
func (e *Environment) Get(name token.Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if value, ok := env.values[name.Lexeme]; ok {
			return orNil(value), nil
		}
	}

	return nil, undefined(name)
}

// GetAt returns the binding of name in the frame exactly distance hops from this one.
//
// There is no fallback: if that frame does not exist, or does not bind name, the
// error wraps [ErrResolution].
func (e *Environment) GetAt(distance int, name token.Token) (Value, error) {
	env, err := e.Ancestor(distance)
	if err != nil {
		return nil, err
	}

	value, ok := env.values[name.Lexeme]
	if !ok {
		return nil, mismatch(distance, name)
	}

	return orNil(value), nil
}

// Assign sets the value of the nearest existing binding of name, starting at this frame.
//
// Assigning to a name that no frame binds is a *[Error], it never creates a new binding.
func (e *Environment) Assign(name token.Token, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}

	return undefined(name)
}

// AssignAt sets the value of name in the frame exactly distance hops from this one.
//
// Like [Environment.GetAt] there is no fallback, a missing frame or binding wraps
// [ErrResolution].
func (e *Environment) AssignAt(distance int, name token.Token, value Value) error {
	env, err := e.Ancestor(distance)
	if err != nil {
		return err
	}

	if _, ok := env.values[name.Lexeme]; !ok {
		return mismatch(distance, name)
	}

	env.values[name.Lexeme] = value

	return nil
}

// Ancestor returns the frame distance hops up the chain from this one, 0 being
// this frame. If the chain is not that long, the error wraps [ErrResolution].
func (e *Environment) Ancestor(distance int) (*Environment, error) {
	if distance < 0 {
		return nil, fmt.Errorf("%w: negative distance %d", ErrResolution, distance)
	}

	env := e
	for hop := range distance {
		env = env.enclosing
		if env == nil {
			return nil, fmt.Errorf("%w: ran out of environments after %d of %d hops", ErrResolution, hop+1, distance)
		}
	}

	return env, nil
}

// undefined returns the error for a name bound in no frame.
func undefined(name token.Token) *Error {
	return NewError(name, "Undefined variable '%s'.", name.Lexeme)
}

// mismatch returns the error for a resolved name that is not where the
// resolver said it would be.
func mismatch(distance int, name token.Token) error {
	return fmt.Errorf("%w: %q (line %d) not found at distance %d", ErrResolution, name.Lexeme, name.Line, distance)
}

// orNil turns an unassigned binding into [Nil].
func orNil(value Value) Value {
	if value == nil {
		return Nil{}
	}

	return value
}
