// Package lox implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/lox/internal/runtime/builtins"
	"go.followtheprocess.codes/lox/internal/syntax"
	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
)

var (
	// ErrSource is returned when a program has scan, parse or resolve errors and was
	// never run. The diagnostics have already been written to stderr.
	ErrSource = errors.New("source error")

	// ErrRuntime is returned when a program failed while running. The runtime
	// error has already been written to stderr.
	ErrRuntime = errors.New("runtime error")
)

// Lox represents the lox program.
type Lox struct {
	stdin   io.Reader        // Where the REPL reads lines from
	stdout  io.Writer        // Normal program output is written here
	stderr  io.Writer        // Logs and errors are written here
	logger  *log.Logger      // The logger for the application
	library builtins.Library // Native functions available to programs
	version string           // The version of the program, shown by the REPL
}

// New returns a new [Lox].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Lox {
	return Lox{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  newLogger(debug, stderr),
		library: builtins.NewLibrary(),
		version: version,
	}
}

// WithBuiltins returns a copy of l whose programs call the native functions in library
// rather than the defaults.
func (l Lox) WithBuiltins(library builtins.Library) Lox {
	l.library = library
	return l
}

// compile parses and resolves src, writing any diagnostics to stderr.
//
// globals are names already defined by previously run code, as in the REPL.
func (l Lox) compile(logger *log.Logger, name string, src []byte, globals ...string) (ast.File, resolver.Locals, error) {
	start := time.Now()

	p := parser.New(name, src)

	file, err := p.Parse()
	if err != nil {
		diagnostics := p.Diagnostics()
		logger.Debug("Parse failed", slog.String("file", name), slog.Int("diagnostics", len(diagnostics)))
		l.report(diagnostics)

		return ast.File{}, nil, fmt.Errorf("%w: %w", ErrSource, err)
	}

	logger.Debug("Parsed file successfully", slog.String("file", name), slog.Duration("took", time.Since(start)))

	r := resolver.New(name, src, resolver.WithGlobals(globals...))

	locals, err := r.Resolve(file)
	if err != nil {
		diagnostics := r.Diagnostics()
		logger.Debug("Resolve failed", slog.String("file", name), slog.Int("diagnostics", len(diagnostics)))
		l.report(diagnostics)

		return ast.File{}, nil, fmt.Errorf("%w: %w", ErrSource, err)
	}

	logger.Debug(
		"Resolved file successfully",
		slog.String("file", name),
		slog.Int("locals", len(locals)),
		slog.Duration("took", time.Since(start)),
	)

	return file, locals, nil
}

// report writes diagnostics to stderr.
func (l Lox) report(diagnostics []syntax.Diagnostic) {
	for _, diag := range diagnostics {
		fmt.Fprint(l.stderr, diag.String())
	}
}
