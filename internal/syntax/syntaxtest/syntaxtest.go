// Package syntaxtest provides test utilities shared by the syntax and runtime packages.
package syntaxtest

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.followtheprocess.codes/lox/internal/runtime"
	"go.followtheprocess.codes/lox/internal/runtime/builtins"
)

// Deterministic return values for test comparison.
const (
	// UUID is the value returned from the 'uuid()' test builtin.
	UUID = "d0a43b68-b9a1-4e89-bd21-b06fc59fefb5"

	// Clock is the value returned from the 'clock()' test builtin.
	Clock = 1700000000
)

// NewTestLibrary returns a new [builtins.Library] with deterministic stand ins
// for the lox builtins. 'assert' is the real thing, it is already deterministic.
func NewTestLibrary() builtins.Library {
	defaults := builtins.NewLibrary()

	assert, ok := defaults.Get("assert")
	if !ok {
		panic("builtin assert missing from the default library")
	}

	return builtins.FromMap(map[string]runtime.Callable{
		"assert": assert,
		"clock": runtime.NewNative("clock", 0, func([]runtime.Value) (runtime.Value, error) {
			return runtime.Number(Clock), nil
		}),
		"uuid": runtime.NewNative("uuid", 0, func([]runtime.Value) (runtime.Value, error) {
			return runtime.String(UUID), nil
		}),
	})
}

// AllFilesWithExtension returns an iterator over all filepaths under
// root with the matching extension, recursively.
//
// A call to AllFilesWithExtension like this:
//
//	for file, err := range AllFilesWithExtension(".", ".go") {
//	    // Loop body
//	}
//
// Is roughly equivalent to the following in bash:
//
//	for file in **/*.go; do { # stuff }; done
func AllFilesWithExtension(root, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				yield("", walkErr)
				return walkErr
			}

			if d.Type().IsRegular() && filepath.Ext(d.Name()) == ext {
				if !yield(path, nil) {
					return fs.SkipAll
				}
			}

			return nil
		})
		// handle the error returned by WalkDir itself
		if err != nil {
			yield("", err)
		}
	}
}
