package lox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/lox/internal/interpreter"
	"go.followtheprocess.codes/lox/internal/runtime"
)

// RunOptions are the options passed to the run subcommand.
type RunOptions struct {
	// File is the path to the lox file to run.
	File string

	// Debug enables debug logging.
	Debug bool
}

// Run implements the run subcommand, executing a single lox file.
//
// Scan, parse and resolve errors are all reported before anything executes and result in
// [ErrSource]. A runtime error halts the program, it is reported and results in [ErrRuntime].
func (l Lox) Run(ctx context.Context, options RunOptions) error {
	logger := l.logger.Prefixed("run").With(slog.String("file", options.File))
	logger.Debug("Run configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	src, err := os.ReadFile(options.File)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	file, locals, err := l.compile(logger, options.File, src)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	interp := interpreter.New(
		l.stdout,
		interpreter.WithBuiltins(l.library),
		interpreter.WithLogger(logger),
	)

	start := time.Now()

	if err := interp.Interpret(file, locals); err != nil {
		return l.runtimeError(logger, err)
	}

	logger.Debug("Program finished", slog.Duration("took", time.Since(start)))

	return nil
}

// runtimeError reports an error returned by the interpreter.
//
// A [*runtime.Error] is the program's fault and is written to stderr. Anything else, such as a
// failure to write output, is returned as is.
func (l Lox) runtimeError(logger *log.Logger, err error) error {
	var runtimeErr *runtime.Error
	if !errors.As(err, &runtimeErr) {
		logger.Error("Interpreter failed", slog.String("error", err.Error()))
		return err
	}

	fmt.Fprintln(l.stderr, runtimeErr.Error())

	return fmt.Errorf("%w: %w", ErrRuntime, err)
}
