// Package ast defines an abstract syntax tree for the lox grammar.
//
// Every expression and statement is a pointer to a struct, so that each node
// in the tree has an identity of its own. The resolver relies on this to key
// its side table of scope distances by node.
package ast

import (
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Node is the interface for ast nodes.
type Node interface {
	// Start returns the first token associated with the node.
	Start() token.Token

	// End returns the last token associated with the node.
	End() token.Token

	// Kind returns the kind of node this is.
	Kind() Kind
}

// File is an ast [Node] representing a single lox program.
type File struct {
	// Name is the name of the file.
	Name string

	// Statements is the list of ast statements in the file.
	Statements []Statement
}

// Start returns the first token in a file.
//
// If the file is empty, [token.EOF] is returned.
func (f File) Start() token.Token {
	if len(f.Statements) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return f.Statements[0].Start()
}

// End returns the final token in the file.
func (f File) End() token.Token {
	if len(f.Statements) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return f.Statements[len(f.Statements)-1].End()
}

// Kind returns [KindFile].
func (f File) Kind() Kind {
	return KindFile
}
