// Package cmd implements lox's CLI.
package cmd

import (
	"context"
	"errors"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/lox/internal/lox"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Exit codes, following the sysexits.h convention.
const (
	// ExitOK is a successful run.
	ExitOK = 0

	// ExitFailure is any failure not covered by the other codes.
	ExitFailure = 1

	// ExitSource is a program with scan, parse or resolve errors (EX_DATAERR).
	ExitSource = 65

	// ExitRuntime is a program that failed while running (EX_SOFTWARE).
	ExitRuntime = 70
)

// ExitCode returns the process exit code for an error returned from
// executing the CLI.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, lox.ErrSource):
		return ExitSource
	case errors.Is(err, lox.ErrRuntime):
		return ExitRuntime
	default:
		return ExitFailure
	}
}

// Reported reports whether err has already been shown to the user, as source and
// runtime errors are written out as diagnostics when they happen.
func Reported(err error) bool {
	return errors.Is(err, lox.ErrSource) || errors.Is(err, lox.ErrRuntime)
}

// Build builds and returns the lox CLI.
func Build() (*cli.Command, error) {
	var debug bool

	return cli.New(
		"lox",
		cli.Short("A tree-walking interpreter for the lox language"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Start an interactive session", "lox"),
		cli.Example("Run a lox program", "lox run ./hello.lox"),
		cli.Example("Check for syntax errors in a file", "lox check ./hello.lox"),
		cli.Example("Check for syntax errors in multiple files (recursively)", "lox check ./examples"),
		cli.Example("Show the tokens in a file as YAML", "lox tokens ./hello.lox --format yaml"),
		cli.Flag(&debug, "debug", 'd', "Enable debug logs"),
		cli.SubCommands(run, check, tokens, syntaxTree),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Repl(ctx)
		}),
	)
}

