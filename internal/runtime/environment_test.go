package runtime_test

import (
	"errors"
	"slices"
	"testing"

	"go.followtheprocess.codes/lox/internal/runtime"
	"go.followtheprocess.codes/lox/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

func TestEnvironment(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		env := runtime.NewEnvironment(nil)

		got, err := env.Get(ident("anything", 3))
		test.Err(t, err)
		test.Equal(t, got, nil)

		var runtimeErr *runtime.Error
		test.True(t, errors.As(err, &runtimeErr))
		test.Equal(t, err.Error(), "[line 3] Error: Undefined variable 'anything'.")
	})

	t.Run("define", func(t *testing.T) {
		env := runtime.NewEnvironment(nil)

		env.Define("something", runtime.String("here"))
		env.Define("other", runtime.Number(1))

		// Redefining in the same frame is allowed and replaces the binding
		env.Define("something", runtime.String("else"))

		something, err := env.Get(ident("something", 1))
		test.Ok(t, err)
		test.Equal(t, something, runtime.Value(runtime.String("else")))

		other, err := env.Get(ident("other", 1))
		test.Ok(t, err)
		test.Equal(t, other, runtime.Value(runtime.Number(1)))
	})

	t.Run("names", func(t *testing.T) {
		globals := runtime.NewEnvironment(nil)
		globals.Define("b", runtime.Nil{})
		globals.Declare("a")

		child := runtime.NewEnvironment(globals)
		child.Define("c", runtime.Nil{})

		test.EqualFunc(t, globals.Names(), []string{"a", "b"}, slices.Equal)
		test.EqualFunc(t, child.Names(), []string{"c"}, slices.Equal)
	})

	t.Run("declared but unassigned", func(t *testing.T) {
		env := runtime.NewEnvironment(nil)
		env.Declare("a")

		got, err := env.Get(ident("a", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.Nil{}))

		got, err = env.GetAt(0, ident("a", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.Nil{}))
	})

	t.Run("parent", func(t *testing.T) {
		globals := runtime.NewEnvironment(nil)
		globals.Define("something", runtime.String("global"))
		globals.Define("other", runtime.String("too"))

		child := runtime.NewEnvironment(globals)
		child.Define("something", runtime.String("local"))

		test.Equal(t, child.Enclosing(), globals)
		test.Equal(t, globals.Enclosing(), nil)

		// Nearest wins
		something, err := child.Get(ident("something", 1))
		test.Ok(t, err)
		test.Equal(t, something, runtime.Value(runtime.String("local")))

		// Falls through to the globals
		other, err := child.Get(ident("other", 1))
		test.Ok(t, err)
		test.Equal(t, other, runtime.Value(runtime.String("too")))

		// Parent can't see the child
		_, err = globals.Get(ident("nope", 1))
		test.Err(t, err)
	})

	t.Run("assign", func(t *testing.T) {
		globals := runtime.NewEnvironment(nil)
		globals.Define("a", runtime.Number(1))

		child := runtime.NewEnvironment(globals)

		// Assigns through to the globals, doesn't create a local
		test.Ok(t, child.Assign(ident("a", 1), runtime.Number(2)))

		got, err := globals.Get(ident("a", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.Number(2)))

		// Assigning something undeclared is an error
		err = child.Assign(ident("b", 7), runtime.Number(3))
		test.Err(t, err)
		test.Equal(t, err.Error(), "[line 7] Error: Undefined variable 'b'.")

		_, err = child.Get(ident("b", 7))
		test.Err(t, err)
	})

	t.Run("shared", func(t *testing.T) {
		// Two children (e.g. two closures) of one frame see each other's writes
		frame := runtime.NewEnvironment(nil)
		frame.Define("count", runtime.Number(0))

		first := runtime.NewEnvironment(frame)
		second := runtime.NewEnvironment(frame)

		test.Ok(t, first.AssignAt(1, ident("count", 1), runtime.Number(5)))

		got, err := second.GetAt(1, ident("count", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.Number(5)))
	})
}

func TestEnvironmentAt(t *testing.T) {
	globals := runtime.NewEnvironment(nil)
	globals.Define("a", runtime.String("global"))

	middle := runtime.NewEnvironment(globals)
	middle.Define("a", runtime.String("middle"))

	inner := runtime.NewEnvironment(middle)
	inner.Define("b", runtime.String("inner"))

	t.Run("ancestor", func(t *testing.T) {
		env, err := inner.Ancestor(0)
		test.Ok(t, err)
		test.Equal(t, env, inner)

		env, err = inner.Ancestor(2)
		test.Ok(t, err)
		test.Equal(t, env, globals)

		_, err = inner.Ancestor(3)
		test.True(t, errors.Is(err, runtime.ErrResolution))

		_, err = inner.Ancestor(-1)
		test.True(t, errors.Is(err, runtime.ErrResolution))
	})

	t.Run("get at exact distance", func(t *testing.T) {
		got, err := inner.GetAt(1, ident("a", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.String("middle")))

		got, err = inner.GetAt(2, ident("a", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.String("global")))
	})

	t.Run("no fallback", func(t *testing.T) {
		// 'a' is not in the inner frame, GetAt must not walk outwards to find it
		_, err := inner.GetAt(0, ident("a", 1))
		test.True(t, errors.Is(err, runtime.ErrResolution))

		// Overshooting the chain
		_, err = inner.GetAt(5, ident("a", 1))
		test.True(t, errors.Is(err, runtime.ErrResolution))

		err = inner.AssignAt(0, ident("a", 1), runtime.Nil{})
		test.True(t, errors.Is(err, runtime.ErrResolution))

		err = inner.AssignAt(4, ident("a", 1), runtime.Nil{})
		test.True(t, errors.Is(err, runtime.ErrResolution))
	})

	t.Run("assign at", func(t *testing.T) {
		test.Ok(t, inner.AssignAt(1, ident("a", 1), runtime.Number(10)))

		got, err := middle.Get(ident("a", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.Number(10)))

		// Globals untouched
		got, err = globals.Get(ident("a", 1))
		test.Ok(t, err)
		test.Equal(t, got, runtime.Value(runtime.String("global")))
	})
}

func TestError(t *testing.T) {
	err := runtime.NewError(token.Token{Kind: token.Minus, Lexeme: "-", Line: 12}, "Operand must be a %s.", "number")
	test.Equal(t, err.Error(), "[line 12] Error: Operand must be a number.")
	test.Equal(t, err.Msg, "Operand must be a number.")
	test.Equal(t, err.Token.Lexeme, "-")
}

// ident returns an identifier token for name on line.
func ident(name string, line int) token.Token {
	return token.Token{Kind: token.Identifier, Lexeme: name, Line: line}
}
