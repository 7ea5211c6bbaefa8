package token_test

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"go.followtheprocess.codes/lox/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

var (
	// Everything else has these, this allows passing -update or -clean to go test ./...
	// and not getting a flag not defined error.
	_ = flag.Bool("update", false, "Update snapshots")
	_ = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func FuzzTokenString(f *testing.F) {
	// Generate some random integers as seeds
	for range 100 {
		f.Add(rand.Int(), "lexeme", rand.Int(), rand.Int(), rand.Int())
	}

	f.Fuzz(func(t *testing.T, kind int, lexeme string, line, start, end int) {
		tok := token.Token{
			Kind:   token.Kind(kind),
			Lexeme: lexeme,
			Line:   line,
			Start:  start,
			End:    end,
		}

		got := tok.String()

		// It should always look like this, regardless of the numbers
		want := fmt.Sprintf("<Token::%s lexeme=%q, line=%d, start=%d, end=%d>", token.Kind(kind), lexeme, line, start, end)

		test.Equal(t, got, want)
	})
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		text string     // Text input
		want token.Kind // Expected token Kind return
		ok   bool       // Expected ok return
	}{
		{text: "and", want: token.And, ok: true},
		{text: "class", want: token.Class, ok: true},
		{text: "else", want: token.Else, ok: true},
		{text: "false", want: token.False, ok: true},
		{text: "fun", want: token.Fun, ok: true},
		{text: "for", want: token.For, ok: true},
		{text: "if", want: token.If, ok: true},
		{text: "nil", want: token.Nil, ok: true},
		{text: "or", want: token.Or, ok: true},
		{text: "print", want: token.Print, ok: true},
		{text: "return", want: token.Return, ok: true},
		{text: "super", want: token.Super, ok: true},
		{text: "this", want: token.This, ok: true},
		{text: "true", want: token.True, ok: true},
		{text: "var", want: token.Var, ok: true},
		{text: "while", want: token.While, ok: true},
		{text: "Var", want: token.Identifier, ok: false},
		{text: "WHILE", want: token.Identifier, ok: false},
		{text: "variable", want: token.Identifier, ok: false},
		{text: "_print", want: token.Identifier, ok: false},
		{text: "myVar", want: token.Identifier, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := token.Keyword(tt.text)
			test.Equal(t, ok, tt.ok)
			test.Equal(t, got, tt.want)
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		name string     // Name of the test case
		want string     // Expected String() output
		kind token.Kind // Kind under test
	}{
		{name: "eof", kind: token.EOF, want: "EOF"},
		{name: "punctuation", kind: token.LeftParen, want: "LeftParen"},
		{name: "two char operator", kind: token.GreaterEqual, want: "GreaterEqual"},
		{name: "literal", kind: token.Identifier, want: "Identifier"},
		{name: "keyword", kind: token.While, want: "While"},
		{name: "out of range", kind: token.Kind(1000), want: "Kind(1000)"},
		{name: "negative", kind: token.Kind(-1), want: "Kind(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.kind.String(), tt.want)

			text, err := tt.kind.MarshalText()
			test.Ok(t, err)
			test.Equal(t, string(text), tt.want)
		})
	}
}

func TestIsKeyword(t *testing.T) {
	for kind := token.EOF; kind <= token.While; kind++ {
		_, isKeyword := token.Keyword(kind.String())
		// Keyword matches on lowercase source text so build it from the kind name
		_, fromSource := token.Keyword(strings.ToLower(kind.String()))
		test.False(t, isKeyword, test.Context("kind name %s should not be a keyword", kind))
		test.Equal(t, kind.IsKeyword(), fromSource, test.Context("IsKeyword mismatch for %s", kind))
	}
}

func TestIs(t *testing.T) {
	tok := token.Token{Kind: token.Plus, Lexeme: "+", Line: 1}

	test.True(t, tok.Is(token.Plus))
	test.True(t, tok.Is(token.Minus, token.Plus))
	test.False(t, tok.Is(token.Minus, token.Star))
	test.False(t, tok.Is())
}
