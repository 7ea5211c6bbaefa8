package lox

import (
	"fmt"
	"log/slog"
	"os"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
)

// AST implements the ast subcommand, printing the syntax tree of a file one
// top level statement per line.
func (l Lox) AST(file string) error {
	logger := l.logger.Prefixed("ast").With(slog.String("file", file))

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	p := parser.New(file, src)

	parsed, err := p.Parse()
	if err != nil {
		l.report(p.Diagnostics())
		return fmt.Errorf("%w: %w", ErrSource, err)
	}

	logger.Debug("Parsed file successfully", slog.Int("statements", len(parsed.Statements)))

	if len(parsed.Statements) == 0 {
		return nil
	}

	fmt.Fprintln(l.stdout, ast.Sprint(parsed))

	return nil
}
