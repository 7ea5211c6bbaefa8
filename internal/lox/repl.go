package lox

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/lox/internal/interpreter"
)

// Styles.
const (
	// promptStyle is the style of the REPL prompt.
	promptStyle = hue.Cyan | hue.Bold

	// dimmed is the style used for informational content like the version.
	dimmed = hue.BrightBlack | hue.Italic
)

// replName is the file name given to every line typed into the REPL.
const replName = "<repl>"

// Repl runs an interactive session, reading one line at a time from stdin.
//
// Each line is compiled and executed against the same interpreter, so variables and
// functions persist from line to line. Errors are reported and the session carries on.
// The session ends cleanly at the end of stdin.
func (l Lox) Repl(ctx context.Context) error {
	logger := l.logger.Prefixed("repl")

	interp := interpreter.New(
		l.stdout,
		interpreter.WithBuiltins(l.library),
		interpreter.WithLogger(logger),
	)

	fmt.Fprintf(l.stdout, "%s %s\n", hue.Bold.Text("lox"), dimmed.Text(l.version))

	input := bufio.NewScanner(l.stdin)
	lines := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(l.stdout, promptStyle.Text("> "))

		if !input.Scan() {
			break
		}

		lines++

		file, locals, err := l.compile(logger, replName, input.Bytes(), interp.Globals()...)
		if err != nil {
			// Diagnostics already reported
			continue
		}

		if err := interp.Interpret(file, locals); err != nil {
			err = l.runtimeError(logger, err)
			if !errors.Is(err, ErrRuntime) {
				return err
			}

			// Only the line is lost, not the session
			logger.Debug("Line failed", slog.Int("line", lines), slog.String("error", err.Error()))
		}
	}

	fmt.Fprintln(l.stdout)

	logger.Debug("Session ended", slog.Int("lines", lines))

	if err := input.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	return nil
}
