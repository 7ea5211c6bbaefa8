// Package format provides mechanisms for exporting the token stream of a lox
// program into external formats.
//
// Notably, the package provides the [Exporter] interface for doing this
// in a format-agnostic way, and the built in exporters for JSON, YAML, TOML
// and plain text.
package format

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"go.followtheprocess.codes/lox/internal/syntax"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Exporter is the interface defining a mechanism for exporting a scanned
// lox file into an external format.
type Exporter interface {
	// Export exports the [Document] into an external format, written to w.
	Export(w io.Writer, doc Document) error
}

// Document is the exportable form of a scanned lox file.
type Document struct {
	// File is the name of the scanned file.
	File string `json:"file" toml:"file" yaml:"file"`

	// Tokens is every token in the file, ending in EOF.
	Tokens []Token `json:"tokens" toml:"tokens" yaml:"tokens"`

	// Diagnostics is any scan errors encountered.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" toml:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Token is the exportable form of a [token.Token].
type Token struct {
	// Kind is the name of the token's kind e.g. "LeftParen".
	Kind string `json:"kind" toml:"kind" yaml:"kind"`

	// Lexeme is the raw source text of the token.
	Lexeme string `json:"lexeme" toml:"lexeme" yaml:"lexeme"`

	// Literal is the value of a string or number literal, empty for
	// every other kind.
	Literal string `json:"literal,omitempty" toml:"literal,omitempty" yaml:"literal,omitempty"`

	// Line is the 1 indexed line the token starts on.
	Line int `json:"line" toml:"line" yaml:"line"`

	// Start is the byte offset of the start of the token.
	Start int `json:"start" toml:"start" yaml:"start"`

	// End is the byte offset one past the end of the token.
	End int `json:"end" toml:"end" yaml:"end"`
}

// Diagnostic is the exportable form of a [syntax.Diagnostic].
type Diagnostic struct {
	Msg  string `json:"msg" toml:"msg" yaml:"msg"`
	Line int    `json:"line" toml:"line" yaml:"line"`
	Col  int    `json:"col" toml:"col" yaml:"col"`
}

// NewDocument builds a [Document] from the result of scanning file.
func NewDocument(file string, tokens []token.Token, diagnostics []syntax.Diagnostic) Document {
	doc := Document{
		File:   file,
		Tokens: make([]Token, 0, len(tokens)),
	}

	for _, tok := range tokens {
		doc.Tokens = append(doc.Tokens, Token{
			Kind:    tok.Kind.String(),
			Lexeme:  tok.Lexeme,
			Literal: literal(tok),
			Line:    tok.Line,
			Start:   tok.Start,
			End:     tok.End,
		})
	}

	for _, diag := range diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, Diagnostic{
			Msg:  diag.Msg,
			Line: diag.Position.Line,
			Col:  diag.Position.StartCol,
		})
	}

	return doc
}

// literal returns the literal value of tok as text.
func literal(tok token.Token) string {
	switch tok.Kind {
	case token.String:
		return tok.Text
	case token.Number:
		return strconv.FormatFloat(tok.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// exporters maps format names to their [Exporter].
//
//nolint:gochecknoglobals // Lookup table, never modified
var exporters = map[string]Exporter{
	"json": JSONExporter{},
	"yaml": YAMLExporter{},
	"toml": TOMLExporter{},
	"text": TextExporter{},
}

// Names returns the names of the available formats, sorted.
func Names() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Get returns the [Exporter] for the format called name.
func Get(name string) (Exporter, error) {
	exporter, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q, expected one of %v", name, Names())
	}

	return exporter, nil
}
