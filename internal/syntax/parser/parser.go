// Package parser implements the lox parser.
//
// The parser is a hand written recursive descent parser over the full token stream
// of a file, walked with a single forward cursor and no backtracking. Each rule of the
// grammar is a method, ordered below from lowest to highest precedence.
//
// If a parse error occurs inside a declaration, the parser records a diagnostic, skips
// ahead to the next statement boundary and leaves an [ast.BadStatement] in place of the
// broken declaration. This way every independent error in a file is reported from a
// single pass. The only exception is an invalid assignment target, which stops the
// parser immediately.
//
// Like the scanner, partial results are returned alongside errors rather than the
// idiomatic Go norm of <zero value>, error, to aid error reporting.
package parser

import (
	"errors"
	"fmt"
	"slices"

	"go.followtheprocess.codes/lox/internal/syntax"
	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/scanner"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// maxArgs is the limit on the number of arguments to a call and the number
// of parameters of a function.
const maxArgs = 255

var (
	// ErrParse is a generic parsing error, details on the error are available
	// from [Parser.Diagnostics].
	ErrParse = errors.New("parse error")

	// ErrInvalidAssignment is returned (wrapped alongside ErrParse) when the left
	// hand side of an assignment is not a variable. Parsing stops at the first one.
	ErrInvalidAssignment = errors.New("invalid assignment target")
)

// Parser is the lox parser.
type Parser struct {
	diagnostics []syntax.Diagnostic // Diagnostics gathered during parsing
	scanner     *scanner.Scanner    // Scanner that produced tokens
	tokens      []token.Token       // The complete token stream, ending in EOF
	name        string              // Name of the file being parsed
	src         []byte              // Raw source text
	pos         int                 // Index of the current token in tokens
	hadErrors   bool                // Whether we encountered parse errors
}

// New initialises and returns a new [Parser] that parses src.
//
// The whole of src is scanned up front.
func New(name string, src []byte) *Parser {
	s := scanner.New(name, src)

	return &Parser{
		scanner: s,
		tokens:  s.ScanAll(),
		name:    name,
		src:     src,
	}
}

// Parse parses the file to completion returning an [ast.File] and any parsing errors.
//
// The returned error will simply signify whether or not there were syntax errors,
// [Parser.Diagnostics] has the full detail and should be preferred. A file
// that failed to parse must not be executed.
func (p *Parser) Parse() (ast.File, error) {
	if p == nil {
		return ast.File{}, errors.New("Parse called on nil parser")
	}

	file := ast.File{
		Name:       p.name,
		Statements: make([]ast.Statement, 0),
	}

	for !p.atEnd() {
		statement, err := p.parseDeclaration()
		if err != nil {
			// Only fatal errors make it up this far
			return file, fmt.Errorf("%w: %w", ErrParse, err)
		}

		file.Statements = append(file.Statements, statement)
	}

	if p.hadErrors || len(p.scanner.Diagnostics()) != 0 {
		return file, ErrParse
	}

	return file, nil
}

// Diagnostics returns any [syntax.Diagnostic] gathered during scanning and parsing, in
// source order.
func (p *Parser) Diagnostics() []syntax.Diagnostic {
	combined := slices.Concat(p.scanner.Diagnostics(), p.diagnostics)

	// Sort by file and offset
	slices.SortStableFunc(combined, func(a, b syntax.Diagnostic) int {
		return syntax.ComparePosition(a.Position, b.Position)
	})

	return combined
}

// current returns the token under the cursor, without consuming it.
func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}

	return p.tokens[p.pos-1]
}

// atEnd reports whether the cursor has reached the EOF token.
func (p *Parser) atEnd() bool {
	return p.current().Is(token.EOF)
}

// advance consumes the current token and returns it. At EOF the cursor stays
// put so advance keeps returning EOF.
func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}

	return p.previous()
}

// check reports whether the current token is any of kinds, without consuming it.
func (p *Parser) check(kinds ...token.Kind) bool {
	return p.current().Is(kinds...)
}

// match consumes the current token if it is any of kinds, reporting whether it did.
func (p *Parser) match(kinds ...token.Kind) bool {
	if !p.check(kinds...) {
		return false
	}

	p.advance()

	return true
}

// expect asserts that the current token is of the given kind, consuming and returning
// it if so. If not, a syntax error is raised at the current token using msg.
func (p *Parser) expect(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	p.errorAt(p.current(), msg)

	return token.Token{}, ErrParse
}

// position returns the [syntax.Position] of tok in the source.
func (p *Parser) position(tok token.Token) syntax.Position {
	return syntax.NewPosition(p.name, p.src, tok.Line, tok.Start, tok.End)
}

// errorAt appends a syntax diagnostic pointing at tok to the parser.
func (p *Parser) errorAt(tok token.Token, msg string) {
	p.hadErrors = true

	where := syntax.AtEnd
	if !tok.Is(token.EOF) {
		where = syntax.AtLexeme(tok.Lexeme)
	}

	diag := syntax.Diagnostic{
		Msg:      msg,
		Where:    where,
		Position: p.position(tok),
	}

	p.diagnostics = append(p.diagnostics, diag)
}

// errorf calls errorAt with a formatted message.
func (p *Parser) errorf(tok token.Token, format string, a ...any) {
	p.errorAt(tok, fmt.Sprintf(format, a...))
}

// synchronise is called during error recovery, after a parse error we are unsure of
// the local state as the syntax is invalid.
//
// synchronise discards tokens until it has just consumed a ';', or the current token
// starts a new declaration or statement, after which point the parser should be back
// in sync and can continue normally. It always discards at least one token.
func (p *Parser) synchronise() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Is(token.Semicolon) {
			return
		}

		switch p.current().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		default:
			p.advance()
		}
	}
}

// parseDeclaration parses a single declaration, recovering from any syntax error
// in it by synchronising and returning an [ast.BadStatement].
//
// The only error returned is a fatal one that must stop the parse.
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	from := p.current()

	statement, err := p.declaration()
	if err == nil {
		return statement, nil
	}

	if errors.Is(err, ErrInvalidAssignment) {
		return nil, err
	}

	p.synchronise()

	return &ast.BadStatement{From: from, To: p.previous()}, nil
}

// declaration parses a class, function or variable declaration, or any other statement.
func (p *Parser) declaration() (ast.Statement, error) {
	switch {
	case p.match(token.Class):
		return p.parseClass()
	case p.match(token.Fun):
		fn, err := p.parseFunction("function")
		if err != nil {
			return nil, err
		}

		return fn, nil
	case p.match(token.Var):
		return p.parseVar()
	default:
		return p.parseStatement()
	}
}

// parseClass parses a class declaration, the 'class' keyword has already been consumed.
//
//	class Name { method() { ... } ... }
func (p *Parser) parseClass() (ast.Statement, error) {
	class := &ast.Class{Keyword: p.previous()}

	name, err := p.expect(token.Identifier, "Expect class name.")
	if err != nil {
		return nil, err
	}

	class.Name = name

	if _, err = p.expect(token.LeftBrace, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	for !p.check(token.RightBrace) && !p.atEnd() {
		method, err := p.parseFunction("method")
		if err != nil {
			return nil, err
		}

		class.Methods = append(class.Methods, method)
	}

	closing, err := p.expect(token.RightBrace, "Expect '}' after class body.")
	if err != nil {
		return nil, err
	}

	class.Close = closing

	return class, nil
}

// parseFunction parses a function or method declaration, kind is used in error messages.
//
// For a function the 'fun' keyword has already been consumed, methods have none.
func (p *Parser) parseFunction(kind string) (*ast.Function, error) {
	fn := &ast.Function{Keyword: p.previous()}

	name, err := p.expect(token.Identifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}

	fn.Name = name
	if kind == "method" {
		fn.Keyword = name
	}

	if _, err = p.expect(token.LeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	if !p.check(token.RightParen) {
		for {
			if len(fn.Params) >= maxArgs {
				// Reported but not fatal, carry on parsing
				p.errorf(p.current(), "Can't have more than %d parameters.", maxArgs)
			}

			param, err := p.expect(token.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}

			fn.Params = append(fn.Params, param)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	if _, err = p.expect(token.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err = p.expect(token.LeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}

	body, closing, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}

	fn.Body = body
	fn.Close = closing

	return fn, nil
}

// parseVar parses a variable declaration, the 'var' keyword has already been consumed.
//
//	var name [= initializer];
func (p *Parser) parseVar() (ast.Statement, error) {
	decl := &ast.Var{Keyword: p.previous()}

	name, err := p.expect(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	decl.Name = name

	if p.match(token.Equal) {
		initializer, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		decl.Initializer = initializer
	}

	semi, err := p.expect(token.Semicolon, "Expect ';' after variable declaration.")
	if err != nil {
		return nil, err
	}

	decl.Semicolon = semi

	return decl, nil
}

// parseStatement parses a statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.match(token.For):
		return p.parseFor()
	case p.match(token.If):
		return p.parseIf()
	case p.match(token.Print):
		return p.parsePrint()
	case p.match(token.Return):
		return p.parseReturn()
	case p.match(token.While):
		return p.parseWhile()
	case p.match(token.LeftBrace):
		return p.parseBlock()
	default:
		return p.parseExpressionStatement()
	}
}

// parseFor parses a for loop, the 'for' keyword has already been consumed.
//
// There is no for node in the tree, instead
//
//	for (initializer; condition; increment) body
//
// becomes
//
//	{
//	  initializer;
//	  while (condition) {
//	    body
//	    increment;
//	  }
//	}
//
// where the outer block is only present if there is an initializer, the inner one only
// if there is an increment, and a missing condition is the literal 'true'. The outer
// block's open token is the 'for' keyword as there is no '{' in the source.
func (p *Parser) parseFor() (ast.Statement, error) {
	keyword := p.previous()

	if _, err := p.expect(token.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var (
		initializer ast.Statement
		err         error
	)

	switch {
	case p.match(token.Semicolon):
		// No initializer
	case p.match(token.Var):
		initializer, err = p.parseVar()
	default:
		initializer, err = p.parseExpressionStatement()
	}

	if err != nil {
		return nil, err
	}

	var condition ast.Expression
	if !p.check(token.Semicolon) {
		condition, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	semi, err := p.expect(token.Semicolon, "Expect ';' after loop condition.")
	if err != nil {
		return nil, err
	}

	var increment ast.Expression
	if !p.check(token.RightParen) {
		increment, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	closeParen, err := p.expect(token.RightParen, "Expect ')' after for clauses.")
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.Block{
			Open: body.Start(),
			Statements: []ast.Statement{
				body,
				&ast.ExpressionStatement{Expression: increment, Semicolon: closeParen},
			},
			Close: body.End(),
		}
	}

	if condition == nil {
		condition = &ast.Literal{
			Token: token.Token{Kind: token.True, Lexeme: "true", Line: semi.Line, Start: semi.Start, End: semi.Start},
		}
	}

	var loop ast.Statement = &ast.While{Keyword: keyword, Condition: condition, Body: body}

	if initializer != nil {
		loop = &ast.Block{
			Open:       keyword,
			Statements: []ast.Statement{initializer, loop},
			Close:      loop.End(),
		}
	}

	return loop, nil
}

// parseIf parses an if statement, the 'if' keyword has already been consumed.
//
// An else is bound to the nearest if that precedes it.
func (p *Parser) parseIf() (ast.Statement, error) {
	stmt := &ast.If{Keyword: p.previous()}

	if _, err := p.expect(token.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt.Condition = condition

	if _, err = p.expect(token.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt.Then = then

	if p.match(token.Else) {
		otherwise, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmt.Else = otherwise
	}

	return stmt, nil
}

// parsePrint parses a print statement, the 'print' keyword has already been consumed.
func (p *Parser) parsePrint() (ast.Statement, error) {
	stmt := &ast.Print{Keyword: p.previous()}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt.Value = value

	semi, err := p.expect(token.Semicolon, "Expect ';' after value.")
	if err != nil {
		return nil, err
	}

	stmt.Semicolon = semi

	return stmt, nil
}

// parseReturn parses a return statement, the 'return' keyword has already been consumed.
//
// Whether the return is inside a function is for the resolver to check.
func (p *Parser) parseReturn() (ast.Statement, error) {
	stmt := &ast.Return{Keyword: p.previous()}

	if !p.check(token.Semicolon) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		stmt.Value = value
	}

	semi, err := p.expect(token.Semicolon, "Expect ';' after return value.")
	if err != nil {
		return nil, err
	}

	stmt.Semicolon = semi

	return stmt, nil
}

// parseWhile parses a while loop, the 'while' keyword has already been consumed.
func (p *Parser) parseWhile() (ast.Statement, error) {
	stmt := &ast.While{Keyword: p.previous()}

	if _, err := p.expect(token.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt.Condition = condition

	if _, err = p.expect(token.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt.Body = body

	return stmt, nil
}

// parseBlock parses a block, the opening '{' has already been consumed.
func (p *Parser) parseBlock() (ast.Statement, error) {
	block := &ast.Block{Open: p.previous()}

	statements, closing, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}

	block.Statements = statements
	block.Close = closing

	return block, nil
}

// parseBlockBody parses declarations up to and including the closing '}', returning
// them along with the '}' token.
//
// Errors in the declarations are recovered from here, so a block full of
// broken statements still parses as a block.
func (p *Parser) parseBlockBody() ([]ast.Statement, token.Token, error) {
	statements := make([]ast.Statement, 0)

	for !p.check(token.RightBrace) && !p.atEnd() {
		statement, err := p.parseDeclaration()
		if err != nil {
			return nil, token.Token{}, err
		}

		statements = append(statements, statement)
	}

	closing, err := p.expect(token.RightBrace, "Expect '}' after block.")
	if err != nil {
		return nil, token.Token{}, err
	}

	return statements, closing, nil
}

// parseExpressionStatement parses an expression followed by a ';'.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	semi, err := p.expect(token.Semicolon, "Expect ';' after expression.")
	if err != nil {
		return nil, err
	}

	return &ast.ExpressionStatement{Expression: expr, Semicolon: semi}, nil
}

// parseExpression parses an expression.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment parses an assignment, or anything of higher precedence.
//
// Assignment is right associative so 'a = b = c' assigns c to b, then b to a.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if !p.match(token.Equal) {
		return expr, nil
	}

	equals := p.previous()

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	variable, ok := expr.(*ast.Variable)
	if !ok {
		p.errorAt(equals, "Invalid assignment target.")
		return nil, ErrInvalidAssignment
	}

	return &ast.Assign{Name: variable.Name, Value: value}, nil
}

// parseOr parses a logical or.
func (p *Parser) parseOr() (ast.Expression, error) {
	return p.parseLogical(p.parseAnd, token.Or)
}

// parseAnd parses a logical and.
func (p *Parser) parseAnd() (ast.Expression, error) {
	return p.parseLogical(p.parseEquality, token.And)
}

// parseEquality parses '==' and '!='.
func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseBinary(p.parseComparison, token.EqualEqual, token.BangEqual)
}

// parseComparison parses '>', '>=', '<' and '<='.
func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.parseBinary(p.parseTerm, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

// parseTerm parses '+' and '-'.
func (p *Parser) parseTerm() (ast.Expression, error) {
	return p.parseBinary(p.parseFactor, token.Plus, token.Minus)
}

// parseFactor parses '*' and '/'.
func (p *Parser) parseFactor() (ast.Expression, error) {
	return p.parseBinary(p.parseUnary, token.Star, token.Slash)
}

// parseBinary parses a left associative chain of binary operators of one precedence
// level, operands are parsed with the next level up.
func (p *Parser) parseBinary(operand func() (ast.Expression, error), operators ...token.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		operator := p.previous()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

// parseLogical is parseBinary for the short circuiting 'and' and 'or'.
func (p *Parser) parseLogical(operand func() (ast.Expression, error), operator token.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operator) {
		op := p.previous()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

// parseUnary parses a prefix '!' or '-'.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if !p.match(token.Bang, token.Minus) {
		return p.parseCall()
	}

	operator := p.previous()

	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &ast.Unary{Operator: operator, Right: right}, nil
}

// parseCall parses a primary expression followed by any number of calls e.g. 'f(1)(2)'.
func (p *Parser) parseCall() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.match(token.LeftParen) {
		expr, err = p.parseArguments(expr)
		if err != nil {
			return nil, err
		}
	}

	return expr, nil
}

// parseArguments parses the argument list of a call to callee, the opening '('
// has already been consumed.
func (p *Parser) parseArguments(callee ast.Expression) (ast.Expression, error) {
	call := &ast.Call{Callee: callee, Arguments: make([]ast.Expression, 0)}

	if !p.check(token.RightParen) {
		for {
			if len(call.Arguments) >= maxArgs {
				// Reported but not fatal, carry on parsing
				p.errorf(p.current(), "Can't have more than %d arguments.", maxArgs)
			}

			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			call.Arguments = append(call.Arguments, arg)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	paren, err := p.expect(token.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	call.Paren = paren

	return call, nil
}

// parsePrimary parses a literal, a variable or a parenthesised expression.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch {
	case p.match(token.False, token.True, token.Nil, token.Number, token.String):
		return &ast.Literal{Token: p.previous()}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		group := &ast.Grouping{Open: p.previous()}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		group.Expression = expr

		closing, err := p.expect(token.RightParen, "Expect ')' after expression.")
		if err != nil {
			return nil, err
		}

		group.Close = closing

		return group, nil
	default:
		p.errorAt(p.current(), "Expect expression.")
		return nil, ErrParse
	}
}
