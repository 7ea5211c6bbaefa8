package lox

import (
	"fmt"
	"log/slog"
	"os"

	"go.followtheprocess.codes/lox/internal/format"
	"go.followtheprocess.codes/lox/internal/syntax/scanner"
)

// TokensOptions are the options passed to the tokens subcommand.
type TokensOptions struct {
	// File is the path to the lox file to scan.
	File string

	// Format is the name of the output format, one of the names from [format.Names].
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Tokens implements the tokens subcommand, writing the token stream of a file to stdout
// in the requested format.
//
// Scan errors are included in the output and also reported on stderr.
func (l Lox) Tokens(options TokensOptions) error {
	logger := l.logger.Prefixed("tokens").With(slog.String("file", options.File))
	logger.Debug("Tokens configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	exporter, err := format.Get(options.Format)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(options.File)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	s := scanner.New(options.File, src)
	tokens := s.ScanAll()
	diagnostics := s.Diagnostics()

	logger.Debug("Scanned file", slog.Int("tokens", len(tokens)), slog.Int("diagnostics", len(diagnostics)))

	if err := exporter.Export(l.stdout, format.NewDocument(options.File, tokens, diagnostics)); err != nil {
		return fmt.Errorf("could not export tokens as %s: %w", options.Format, err)
	}

	if len(diagnostics) != 0 {
		l.report(diagnostics)
		return fmt.Errorf("%w: %d scan error(s) in %s", ErrSource, len(diagnostics), options.File)
	}

	return nil
}
