package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/lox/internal/lox"
)

const runLong = `
The file is scanned, parsed and resolved in full before anything runs. If
there are any errors at this stage they are all reported and the program is
not run, exiting with status 65.

A runtime error halts the program at the first fault, and exits with status 70.
Anything printed before the error has already been written to stdout.
`

// run returns the lox run subcommand.
func run() (*cli.Command, error) {
	var options lox.RunOptions

	return cli.New(
		"run",
		cli.Short("Run a lox program"),
		cli.Long(runLong),
		cli.Arg(&options.File, "file", "Path to the .lox file"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Run(ctx, options)
		}),
	)
}
