package builtins_test

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.followtheprocess.codes/lox/internal/runtime"
	"go.followtheprocess.codes/lox/internal/runtime/builtins"
	"go.followtheprocess.codes/test"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string // Name of the test case
		fn    string // Name of the function to lookup
		arity int    // Expected arity, if found
		ok    bool   // Expected ok return value from Get
	}{
		{
			name: "empty",
			fn:   "",
			ok:   false,
		},
		{
			name: "missing",
			fn:   "dinglefuncbang",
			ok:   false,
		},
		{
			name:  "clock",
			fn:    "clock",
			arity: 0,
			ok:    true,
		},
		{
			name:  "assert",
			fn:    "assert",
			arity: 2,
			ok:    true,
		},
		{
			name:  "uuid",
			fn:    "uuid",
			arity: 0,
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := builtins.NewLibrary()

			fn, ok := lib.Get(tt.fn)
			test.Equal(t, ok, tt.ok, test.Context("Get(%s): expected %v, got %v", tt.fn, ok, tt.ok))

			if !ok {
				return
			}

			test.Equal(t, fn.Arity(), tt.arity)
			test.Equal(t, fn.Name(), tt.fn)
			test.Equal(t, fn.Type(), runtime.TypeCallable)
			test.Equal(t, fn.String(), fmt.Sprintf("<native fn %s>", tt.fn))
		})
	}
}

func TestNames(t *testing.T) {
	lib := builtins.NewLibrary()

	test.EqualFunc(t, lib.Names(), []string{"assert", "clock", "uuid"}, slices.Equal)
}

func TestClock(t *testing.T) {
	clock := mustGet(builtins.NewLibrary(), "clock")

	before := float64(time.Now().Unix())

	got, err := clock.Call(nil)
	test.Ok(t, err)

	after := float64(time.Now().Unix()) + 1

	seconds, ok := got.(runtime.Number)
	test.True(t, ok, test.Context("clock() returned %T, expected runtime.Number", got))
	test.True(t, float64(seconds) >= before, test.Context("clock() = %v, before = %v", seconds, before))
	test.True(t, float64(seconds) <= after, test.Context("clock() = %v, after = %v", seconds, after))
}

func TestAssert(t *testing.T) {
	tests := []struct {
		a    runtime.Value // First argument
		b    runtime.Value // Second argument
		name string        // Name of the test case
		want runtime.Bool  // Expected result
	}{
		{
			name: "equal numbers",
			a:    runtime.Number(3),
			b:    runtime.Number(3),
			want: true,
		},
		{
			name: "different numbers",
			a:    runtime.Number(3),
			b:    runtime.Number(4),
			want: false,
		},
		{
			name: "same display different types",
			a:    runtime.Number(1),
			b:    runtime.String("1"),
			want: true,
		},
		{
			name: "nil and string nil",
			a:    runtime.Nil{},
			b:    runtime.String("nil"),
			want: true,
		},
		{
			name: "bools",
			a:    runtime.Bool(true),
			b:    runtime.Bool(false),
			want: false,
		},
	}

	assert := mustGet(builtins.NewLibrary(), "assert")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assert.Call([]runtime.Value{tt.a, tt.b})
			test.Ok(t, err)
			test.Equal(t, got, runtime.Value(tt.want))
		})
	}
}

func TestUUID(t *testing.T) {
	fn := mustGet(builtins.NewLibrary(), "uuid")

	first, err := fn.Call(nil)
	test.Ok(t, err)

	second, err := fn.Call(nil)
	test.Ok(t, err)

	test.NotEqual(t, first.String(), second.String())

	_, err = uuid.Parse(first.String())
	test.Ok(t, err)
}

func TestFromMap(t *testing.T) {
	double := runtime.NewNative("double", 1, func(args []runtime.Value) (runtime.Value, error) {
		n, _ := args[0].(runtime.Number)
		return n * 2, nil
	})

	lib := builtins.FromMap(map[string]runtime.Callable{"double": double})

	test.EqualFunc(t, lib.Names(), []string{"double"}, slices.Equal)

	fn := mustGet(lib, "double")
	got, err := fn.Call([]runtime.Value{runtime.Number(21)})
	test.Ok(t, err)
	test.Equal(t, got, runtime.Value(runtime.Number(42)))
}

// mustGet looks up a builtin function by name and panics
// if it's not found.
func mustGet(lib builtins.Library, name string) runtime.Callable {
	fn, ok := lib.Get(name)
	if !ok {
		panic(fmt.Sprintf("builtin %s not found", name))
	}

	return fn
}
