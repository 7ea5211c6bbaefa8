package ast_test

import (
	"testing"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

// Some tokens shared by the tests below.
var (
	one    = token.Token{Kind: token.Number, Lexeme: "1", Number: 1, Line: 1, Start: 0, End: 1}
	two    = token.Token{Kind: token.Number, Lexeme: "2", Number: 2, Line: 1, Start: 4, End: 5}
	plus   = token.Token{Kind: token.Plus, Lexeme: "+", Line: 1, Start: 2, End: 3}
	ident  = token.Token{Kind: token.Identifier, Lexeme: "x", Line: 1, Start: 4, End: 5}
	semi   = token.Token{Kind: token.Semicolon, Lexeme: ";", Line: 1, Start: 9, End: 10}
	varKw  = token.Token{Kind: token.Var, Lexeme: "var", Line: 1, Start: 0, End: 3}
	ifKw   = token.Token{Kind: token.If, Lexeme: "if", Line: 1, Start: 0, End: 2}
	lbrace = token.Token{Kind: token.LeftBrace, Lexeme: "{", Line: 1, Start: 0, End: 1}
	rbrace = token.Token{Kind: token.RightBrace, Lexeme: "}", Line: 2, Start: 20, End: 21}
)

func TestNode(t *testing.T) {
	tests := []struct {
		node  ast.Node    // Node under test
		name  string      // Name of the test case
		start token.Token // Expected start token
		end   token.Token // Expected end token
		kind  ast.Kind    // Expected node kind
	}{
		{
			name:  "empty file",
			node:  ast.File{},
			start: token.Token{Kind: token.EOF},
			end:   token.Token{Kind: token.EOF},
			kind:  ast.KindFile,
		},
		{
			name: "file",
			node: ast.File{
				Statements: []ast.Statement{
					&ast.ExpressionStatement{Expression: &ast.Literal{Token: one}, Semicolon: semi},
					&ast.Block{Open: lbrace, Close: rbrace},
				},
			},
			start: one,
			end:   rbrace,
			kind:  ast.KindFile,
		},
		{
			name:  "literal",
			node:  &ast.Literal{Token: one},
			start: one,
			end:   one,
			kind:  ast.KindLiteral,
		},
		{
			name:  "binary",
			node:  &ast.Binary{Left: &ast.Literal{Token: one}, Operator: plus, Right: &ast.Literal{Token: two}},
			start: one,
			end:   two,
			kind:  ast.KindBinary,
		},
		{
			name:  "assign",
			node:  &ast.Assign{Name: ident, Value: &ast.Literal{Token: two}},
			start: ident,
			end:   two,
			kind:  ast.KindAssign,
		},
		{
			name:  "var without initializer",
			node:  &ast.Var{Keyword: varKw, Name: ident, Semicolon: semi},
			start: varKw,
			end:   semi,
			kind:  ast.KindVar,
		},
		{
			name: "if without else",
			node: &ast.If{
				Keyword:   ifKw,
				Condition: &ast.Variable{Name: ident},
				Then:      &ast.Block{Open: lbrace, Close: rbrace},
			},
			start: ifKw,
			end:   rbrace,
			kind:  ast.KindIf,
		},
		{
			name: "if with else",
			node: &ast.If{
				Keyword:   ifKw,
				Condition: &ast.Variable{Name: ident},
				Then:      &ast.Block{Open: lbrace, Close: lbrace},
				Else:      &ast.ExpressionStatement{Expression: &ast.Literal{Token: one}, Semicolon: semi},
			},
			start: ifKw,
			end:   semi,
			kind:  ast.KindIf,
		},
		{
			name:  "bad statement",
			node:  &ast.BadStatement{From: varKw, To: semi},
			start: varKw,
			end:   semi,
			kind:  ast.KindBadStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.node.Start(), tt.start, test.Context("Wrong start token"))
			test.Equal(t, tt.node.End(), tt.end, test.Context("Wrong end token"))
			test.Equal(t, tt.node.Kind(), tt.kind, test.Context("Wrong node kind"))
		})
	}
}

func TestSprint(t *testing.T) {
	x := func() *ast.Variable { return &ast.Variable{Name: ident} }
	num := func(n float64, lexeme string) *ast.Literal {
		return &ast.Literal{Token: token.Token{Kind: token.Number, Lexeme: lexeme, Number: n}}
	}
	op := func(kind token.Kind, lexeme string) token.Token {
		return token.Token{Kind: kind, Lexeme: lexeme}
	}
	name := func(lexeme string) token.Token {
		return token.Token{Kind: token.Identifier, Lexeme: lexeme}
	}

	tests := []struct {
		node ast.Node // Node to print
		name string   // Name of the test case
		want string   // Expected output
	}{
		{
			name: "nil",
			node: nil,
			want: "nil",
		},
		{
			name: "precedence",
			node: &ast.Binary{
				Left:     num(1, "1"),
				Operator: plus,
				Right:    &ast.Binary{Left: num(2, "2"), Operator: op(token.Star, "*"), Right: num(3, "3")},
			},
			want: "(+ 1 (* 2 3))",
		},
		{
			name: "number formatting",
			node: &ast.Grouping{Expression: num(2.5, "2.50")},
			want: "(group 2.5)",
		},
		{
			name: "string literal",
			node: &ast.Literal{Token: token.Token{Kind: token.String, Lexeme: `"hi"`, Text: "hi"}},
			want: `"hi"`,
		},
		{
			name: "unary and logical",
			node: &ast.Logical{
				Left:     &ast.Unary{Operator: op(token.Bang, "!"), Right: x()},
				Operator: op(token.Or, "or"),
				Right:    &ast.Literal{Token: op(token.Nil, "nil")},
			},
			want: "(or (! x) nil)",
		},
		{
			name: "assign",
			node: &ast.Assign{Name: ident, Value: num(1, "1")},
			want: "(= x 1)",
		},
		{
			name: "chained call",
			node: &ast.ExpressionStatement{
				Expression: &ast.Call{
					Callee:    &ast.Call{Callee: &ast.Variable{Name: name("f")}, Arguments: []ast.Expression{num(1, "1")}},
					Arguments: []ast.Expression{num(2, "2"), x()},
				},
			},
			want: "(expr (call (call f 1) 2 x))",
		},
		{
			name: "var",
			node: &ast.Var{Name: ident},
			want: "(var x)",
		},
		{
			name: "var with initializer",
			node: &ast.Var{Name: ident, Initializer: &ast.Unary{Operator: op(token.Minus, "-"), Right: num(1, "1")}},
			want: "(var x (- 1))",
		},
		{
			name: "if else",
			node: &ast.If{
				Condition: x(),
				Then:      &ast.Print{Value: num(1, "1")},
				Else:      &ast.Block{Statements: []ast.Statement{&ast.Print{Value: num(2, "2")}}},
			},
			want: "(if x (print 1) (block (print 2)))",
		},
		{
			name: "while",
			node: &ast.While{
				Condition: &ast.Literal{Token: op(token.True, "true")},
				Body:      &ast.Block{},
			},
			want: "(while true (block))",
		},
		{
			name: "function",
			node: &ast.Function{
				Name:   name("add"),
				Params: []token.Token{name("a"), name("b")},
				Body: []ast.Statement{
					&ast.Return{Value: &ast.Binary{Left: &ast.Variable{Name: name("a")}, Operator: plus, Right: &ast.Variable{Name: name("b")}}},
				},
			},
			want: "(fun add (a b) (return (+ a b)))",
		},
		{
			name: "bare return",
			node: &ast.Return{},
			want: "(return)",
		},
		{
			name: "class",
			node: &ast.Class{
				Name:    name("Cake"),
				Methods: []*ast.Function{{Name: name("eat")}},
			},
			want: "(class Cake (fun eat ()))",
		},
		{
			name: "file",
			node: ast.File{
				Statements: []ast.Statement{
					&ast.Var{Name: ident, Initializer: num(1, "1")},
					&ast.BadStatement{},
					&ast.Print{Value: x()},
				},
			},
			want: "(var x 1)\n(bad)\n(print x)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, ast.Sprint(tt.node), tt.want)
		})
	}
}

func TestKindString(t *testing.T) {
	test.Equal(t, ast.KindBinary.String(), "Binary")
	test.Equal(t, ast.KindBadStatement.String(), "BadStatement")
	test.Equal(t, ast.Kind(99).String(), "Kind(99)")

	text, err := ast.KindFunction.MarshalText()
	test.Ok(t, err)
	test.Equal(t, string(text), "Function")
}
