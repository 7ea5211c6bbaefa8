package ast

import (
	"strconv"
	"strings"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Sprint renders a node as a parenthesised prefix expression, making the
// structure of the tree explicit:
//
//	1 + 2 * 3       =>  (+ 1 (* 2 3))
//	var x = -a;     =>  (var x (- a))
//	f(1)(2);        =>  (expr (call (call f 1) 2))
//
// A [File] is rendered one top level statement per line. A nil node renders as "nil".
func Sprint(node Node) string {
	p := &printer{}
	p.node(node)

	return p.String()
}

// printer accumulates the rendered form of a tree.
type printer struct {
	strings.Builder
}

// node renders any node.
func (p *printer) node(node Node) {
	switch node := node.(type) {
	case nil:
		p.WriteString("nil")
	case File:
		for i, stmt := range node.Statements {
			if i > 0 {
				p.WriteByte('\n')
			}

			p.node(stmt)
		}
	case Expression:
		p.expression(node)
	case Statement:
		p.statement(node)
	default:
		p.WriteString("<unknown node>")
	}
}

// expression renders an expression node.
func (p *printer) expression(expr Expression) {
	switch expr := expr.(type) {
	case *Literal:
		p.WriteString(literal(expr.Token))
	case *Grouping:
		p.parens("group", expr.Expression)
	case *Unary:
		p.parens(expr.Operator.Lexeme, expr.Right)
	case *Binary:
		p.parens(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *Logical:
		p.parens(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *Variable:
		p.WriteString(expr.Name.Lexeme)
	case *Assign:
		p.WriteString("(= ")
		p.WriteString(expr.Name.Lexeme)
		p.WriteByte(' ')
		p.node(expr.Value)
		p.WriteByte(')')
	case *Call:
		nodes := make([]Node, 0, 1+len(expr.Arguments))
		nodes = append(nodes, expr.Callee)

		for _, arg := range expr.Arguments {
			nodes = append(nodes, arg)
		}

		p.parens("call", nodes...)
	default:
		p.WriteString("<unknown expression>")
	}
}

// statement renders a statement node.
func (p *printer) statement(stmt Statement) {
	switch stmt := stmt.(type) {
	case *ExpressionStatement:
		p.parens("expr", stmt.Expression)
	case *Print:
		p.parens("print", stmt.Value)
	case *Var:
		if stmt.Initializer == nil {
			p.parens("var " + stmt.Name.Lexeme)
			return
		}

		p.parens("var "+stmt.Name.Lexeme, stmt.Initializer)
	case *Block:
		p.parens("block", statements(stmt.Statements)...)
	case *If:
		if stmt.Else == nil {
			p.parens("if", stmt.Condition, stmt.Then)
			return
		}

		p.parens("if", stmt.Condition, stmt.Then, stmt.Else)
	case *While:
		p.parens("while", stmt.Condition, stmt.Body)
	case *Function:
		p.function(stmt)
	case *Return:
		if stmt.Value == nil {
			p.parens("return")
			return
		}

		p.parens("return", stmt.Value)
	case *Class:
		p.WriteString("(class ")
		p.WriteString(stmt.Name.Lexeme)

		for _, method := range stmt.Methods {
			p.WriteByte(' ')
			p.function(method)
		}

		p.WriteByte(')')
	case *BadStatement:
		p.WriteString("(bad)")
	default:
		p.WriteString("<unknown statement>")
	}
}

// function renders a function declaration as (fun name (params...) body...).
func (p *printer) function(fn *Function) {
	params := make([]string, 0, len(fn.Params))
	for _, param := range fn.Params {
		params = append(params, param.Lexeme)
	}

	p.parens("fun "+fn.Name.Lexeme+" ("+strings.Join(params, " ")+")", statements(fn.Body)...)
}

// parens writes (name node1 node2 ...).
func (p *printer) parens(name string, nodes ...Node) {
	p.WriteByte('(')
	p.WriteString(name)

	for _, node := range nodes {
		p.WriteByte(' ')
		p.node(node)
	}

	p.WriteByte(')')
}

// statements converts a statement list to a node list.
func statements(stmts []Statement) []Node {
	nodes := make([]Node, 0, len(stmts))
	for _, stmt := range stmts {
		nodes = append(nodes, stmt)
	}

	return nodes
}

// literal renders the value carried by a literal token.
func literal(tok token.Token) string {
	switch tok.Kind {
	case token.Number:
		return strconv.FormatFloat(tok.Number, 'f', -1, 64)
	case token.String:
		return strconv.Quote(tok.Text)
	default:
		return tok.Lexeme
	}
}
