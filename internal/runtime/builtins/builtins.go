// Package builtins provides the native functions every lox program can call
// without declaring them.
package builtins

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.followtheprocess.codes/lox/internal/runtime"
)

// Library is a library of builtins.
type Library interface {
	// Get looks up a builtin from the library by name, returning it (or nil)
	// and a boolean indicating its existence.
	Get(name string) (runtime.Callable, bool)

	// Names returns the names of every builtin in the library, sorted.
	Names() []string
}

// Builtins is a [Library] containing the builtin implementations.
type Builtins struct {
	library map[string]runtime.Callable
}

// NewLibrary returns the lox builtins library.
func NewLibrary() Builtins {
	return FromMap(map[string]runtime.Callable{
		"clock":  runtime.NewNative("clock", 0, builtinClock),
		"assert": runtime.NewNative("assert", 2, builtinAssert),
		"uuid":   runtime.NewNative("uuid", 0, builtinUUID),
	})
}

// FromMap returns a [Builtins] serving the functions in library, each
// defined under its key.
func FromMap(library map[string]runtime.Callable) Builtins {
	return Builtins{library: library}
}

// Get looks up a builtin by name, returning the builtin and a boolean
// indicating its existence.
func (b Builtins) Get(name string) (runtime.Callable, bool) {
	fn, ok := b.library[name]
	if !ok {
		return nil, false
	}

	return fn, true
}

// Names returns the sorted names of all the builtins.
func (b Builtins) Names() []string {
	return slices.Sorted(maps.Keys(b.library))
}

// builtinClock is the implementation of 'clock()', the seconds since the
// unix epoch with sub second precision.
func builtinClock([]runtime.Value) (runtime.Value, error) {
	return runtime.Number(float64(time.Now().UnixMicro()) / 1e6), nil
}

// builtinAssert is the implementation of 'assert(a, b)', true if a and b
// print the same.
func builtinAssert(args []runtime.Value) (runtime.Value, error) {
	return runtime.Bool(args[0].String() == args[1].String()), nil
}

// builtinUUID is the implementation of 'uuid()'.
func builtinUUID([]runtime.Value) (runtime.Value, error) {
	uid, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate a new uuid: %w", err)
	}

	return runtime.String(uid.String()), nil
}
