package main

import (
	"context"
	"os"
	"os/signal"

	"go.followtheprocess.codes/lox/internal/cmd"
	"go.followtheprocess.codes/msg"
)

func main() {
	os.Exit(run())
}

// run runs the CLI, returning the exit code.
func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	command, err := cmd.Build()
	if err != nil {
		msg.Ferror(os.Stderr, "%v", err)
		return cmd.ExitFailure
	}

	if err := command.Execute(ctx); err != nil {
		if !cmd.Reported(err) {
			msg.Ferror(os.Stderr, "%v", err)
		}

		return cmd.ExitCode(err)
	}

	return cmd.ExitOK
}
