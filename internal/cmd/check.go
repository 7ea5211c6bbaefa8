package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/lox/internal/lox"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a .lox file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
files with the '.lox' extension and any matching files will be validated.

Checking scans, parses and resolves each file, but never runs it.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options lox.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check lox files for errors without running them"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, options)
		}),
	)
}
