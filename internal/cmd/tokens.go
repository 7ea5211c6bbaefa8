package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/lox/internal/format"
	"go.followtheprocess.codes/lox/internal/lox"
)

// tokens returns the tokens subcommand.
func tokens() (*cli.Command, error) {
	var options lox.TokensOptions

	return cli.New(
		"tokens",
		cli.Short("Show the tokens in a lox file"),
		cli.Arg(&options.File, "file", "Path to the .lox file"),
		cli.Flag(
			&options.Format,
			"format",
			'f',
			fmt.Sprintf("Output format, one of (%s)", strings.Join(format.Names(), "|")),
			cli.FlagDefault("text"),
		),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Tokens(options)
		}),
	)
}
