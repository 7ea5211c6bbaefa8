package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/lox/internal/lox"
)

// syntaxTree returns the ast subcommand.
func syntaxTree() (*cli.Command, error) {
	var (
		file  string
		debug bool
	)

	return cli.New(
		"ast",
		cli.Short("Show the syntax tree of a lox file"),
		cli.Arg(&file, "file", "Path to the .lox file"),
		cli.Flag(&debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.AST(file)
		}),
	)
}
