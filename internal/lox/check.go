package lox

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.followtheprocess.codes/lox/internal/syntax"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand, scanning, parsing and resolving every lox file
// under a path without running any of them.
func (l Lox) Check(ctx context.Context, options CheckOptions) error {
	logger := l.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(options.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && filepath.Ext(path) == ".lox" {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")

		paths = []string{options.Path}
	}

	logger.Debug("Checking lox files given by path", slog.Int("number", len(paths)))

	results := make([][]syntax.Diagnostic, len(paths))

	group, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			diagnostics, err := checkFile(path)
			results[i] = diagnostics

			return err
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	failed := 0

	// Reported in path order once everything is done, so output is stable
	for i, path := range paths {
		if len(results[i]) != 0 {
			failed++

			l.report(results[i])

			continue
		}

		msg.Fsuccess(l.stdout, "%s is valid", path)
	}

	if failed != 0 {
		return fmt.Errorf("%w: %d of %d file(s) have errors", ErrSource, failed, len(paths))
	}

	return nil
}

// checkFile parses and resolves a single file, returning any diagnostics.
//
// The error is only for failing to read the file, an invalid file is reported
// through its diagnostics.
func checkFile(path string) ([]syntax.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	p := parser.New(path, src)

	file, err := p.Parse()
	if err != nil {
		return p.Diagnostics(), nil
	}

	r := resolver.New(path, src)

	if _, err := r.Resolve(file); err != nil {
		return r.Diagnostics(), nil
	}

	return nil, nil
}
