// Package runtime provides the values a lox program computes with, and the chained
// environments that bind names to them.
//
// The set of values is closed: [Number], [String], [Bool], [Nil] and [Callable]. Every
// value reports its [Type], and every value knows how the 'print' statement displays it.
package runtime

import (
	"strconv"
)

// Type is the dynamic type of a [Value].
type Type int

const (
	TypeNil      Type = iota // nil
	TypeBool                 // bool
	TypeNumber               // number
	TypeString               // string
	TypeCallable             // callable
)

// String implements [fmt.Stringer] for a [Type].
func (t Type) String() string {
	switch t {
	case TypeNil:
		return "nil"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeCallable:
		return "callable"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is a lox runtime value.
type Value interface {
	// String returns the value as displayed by 'print'.
	String() string

	// Type returns the dynamic type of the value.
	Type() Type
}

// Callable is a value that may be called: a native function or a user
// defined function closing over its environment.
type Callable interface {
	Value

	// Name returns the function's name.
	Name() string

	// Arity returns the exact number of arguments the function takes.
	Arity() int

	// Call invokes the function. The caller has already checked that
	// len(args) == Arity().
	Call(args []Value) (Value, error)
}

// Number is a 64 bit floating point number, the only numeric type.
type Number float64

// String returns the shortest decimal representation of the number that
// round trips, without an exponent. Whole numbers have no decimal point.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Type returns [TypeNumber].
func (n Number) Type() Type {
	return TypeNumber
}

// String is an immutable string.
type String string

// String returns the raw string, without quotes.
func (s String) String() string {
	return string(s)
}

// Type returns [TypeString].
func (s String) Type() Type {
	return TypeString
}

// Bool is a boolean.
type Bool bool

// String returns "true" or "false".
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

// Type returns [TypeBool].
func (b Bool) Type() Type {
	return TypeBool
}

// Nil is the absence of a value.
type Nil struct{}

// String returns "nil".
func (Nil) String() string {
	return "nil"
}

// Type returns [TypeNil].
func (Nil) Type() Type {
	return TypeNil
}

// Truthy reports whether v counts as true in a condition. nil and false are
// false, everything else (including 0 and "") is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal reports whether a and b are equal. Values of different types are never
// compared, ok is false if the types of a and b differ.
//
// Callables are equal only to themselves.
func Equal(a, b Value) (equal, ok bool) {
	if a.Type() != b.Type() {
		return false, false
	}

	return a == b, true
}

// Native is a function implemented in Go.
type Native struct {
	fn    func(args []Value) (Value, error)
	name  string
	arity int
}

// NewNative returns a new [Native] function called name, taking exactly
// arity arguments, with fn as its body.
func NewNative(name string, arity int, fn func(args []Value) (Value, error)) *Native {
	return &Native{fn: fn, name: name, arity: arity}
}

// String returns "<native fn name>".
func (n *Native) String() string {
	return "<native fn " + n.name + ">"
}

// Type returns [TypeCallable].
func (n *Native) Type() Type {
	return TypeCallable
}

// Name returns the native function's name.
func (n *Native) Name() string {
	return n.name
}

// Arity returns the number of arguments the native function takes.
func (n *Native) Arity() int {
	return n.arity
}

// Call invokes the native function.
func (n *Native) Call(args []Value) (Value, error) {
	return n.fn(args)
}
