package ast

import "go.followtheprocess.codes/lox/internal/syntax/token"

// Expression is an expression node.
type Expression interface {
	Node
	expressionNode() // Prevents accidental misuse as another node type
}

// Literal is a literal value: a number, string, true, false or nil.
//
// The value itself is carried on the token.
type Literal struct {
	// The literal token, one of [token.Number], [token.String], [token.True],
	// [token.False] or [token.Nil].
	Token token.Token
}

// Start returns the first token of the Literal, which is
// obviously just the literal token.
func (l *Literal) Start() token.Token {
	return l.Token
}

// End returns the last token in the Literal, which is also
// the literal token.
func (l *Literal) End() token.Token {
	return l.Token
}

// Kind returns [KindLiteral].
func (l *Literal) Kind() Kind {
	return KindLiteral
}

// expressionNode marks a [Literal] as an [ast.Expression].
func (l *Literal) expressionNode() {}

// Grouping is a parenthesised expression.
type Grouping struct {
	// Expression is the expression inside the parentheses.
	Expression Expression

	// Open is the opening '('.
	Open token.Token

	// Close is the closing ')'.
	Close token.Token
}

// Start returns the opening '('.
func (g *Grouping) Start() token.Token {
	return g.Open
}

// End returns the closing ')'.
func (g *Grouping) End() token.Token {
	return g.Close
}

// Kind returns [KindGrouping].
func (g *Grouping) Kind() Kind {
	return KindGrouping
}

// expressionNode marks a [Grouping] as an [ast.Expression].
func (g *Grouping) expressionNode() {}

// Unary is a prefix operator applied to a single operand e.g. '-x' or '!ok'.
type Unary struct {
	// Right is the operand.
	Right Expression

	// Operator is the [token.Minus] or [token.Bang].
	Operator token.Token
}

// Start returns the operator token.
func (u *Unary) Start() token.Token {
	return u.Operator
}

// End returns the last token of the operand.
func (u *Unary) End() token.Token {
	return u.Right.End()
}

// Kind returns [KindUnary].
func (u *Unary) Kind() Kind {
	return KindUnary
}

// expressionNode marks a [Unary] as an [ast.Expression].
func (u *Unary) expressionNode() {}

// Binary is an infix arithmetic, comparison or equality expression.
type Binary struct {
	// Left is the left hand operand.
	Left Expression

	// Right is the right hand operand.
	Right Expression

	// Operator is the infix operator token.
	Operator token.Token
}

// Start returns the first token of the left operand.
func (b *Binary) Start() token.Token {
	return b.Left.Start()
}

// End returns the last token of the right operand.
func (b *Binary) End() token.Token {
	return b.Right.End()
}

// Kind returns [KindBinary].
func (b *Binary) Kind() Kind {
	return KindBinary
}

// expressionNode marks a [Binary] as an [ast.Expression].
func (b *Binary) expressionNode() {}

// Logical is an 'and' or 'or' expression. It is kept apart from [Binary]
// because it short circuits, the right operand is only evaluated if needed.
type Logical struct {
	// Left is the left hand operand, always evaluated.
	Left Expression

	// Right is the right hand operand.
	Right Expression

	// Operator is the [token.And] or [token.Or].
	Operator token.Token
}

// Start returns the first token of the left operand.
func (l *Logical) Start() token.Token {
	return l.Left.Start()
}

// End returns the last token of the right operand.
func (l *Logical) End() token.Token {
	return l.Right.End()
}

// Kind returns [KindLogical].
func (l *Logical) Kind() Kind {
	return KindLogical
}

// expressionNode marks a [Logical] as an [ast.Expression].
func (l *Logical) expressionNode() {}

// Variable is a reference to a named variable.
type Variable struct {
	// Name is the [token.Identifier].
	Name token.Token
}

// Start returns the identifier.
func (v *Variable) Start() token.Token {
	return v.Name
}

// End returns the identifier.
func (v *Variable) End() token.Token {
	return v.Name
}

// Kind returns [KindVariable].
func (v *Variable) Kind() Kind {
	return KindVariable
}

// expressionNode marks a [Variable] as an [ast.Expression].
func (v *Variable) expressionNode() {}

// Assign is an assignment of a value to an existing variable.
type Assign struct {
	// Value is the expression being assigned.
	Value Expression

	// Name is the [token.Identifier] being assigned to.
	Name token.Token
}

// Start returns the identifier being assigned to.
func (a *Assign) Start() token.Token {
	return a.Name
}

// End returns the last token of the value.
func (a *Assign) End() token.Token {
	return a.Value.End()
}

// Kind returns [KindAssign].
func (a *Assign) Kind() Kind {
	return KindAssign
}

// expressionNode marks an [Assign] as an [ast.Expression].
func (a *Assign) expressionNode() {}

// Call is a call expression e.g. 'f(a, b)'.
type Call struct {
	// Callee is the expression evaluating to the thing being called.
	Callee Expression

	// Arguments are the argument expressions, in order.
	Arguments []Expression

	// Paren is the closing ')', runtime errors in the call are
	// reported at its line.
	Paren token.Token
}

// Start returns the first token of the callee.
func (c *Call) Start() token.Token {
	return c.Callee.Start()
}

// End returns the closing ')'.
func (c *Call) End() token.Token {
	return c.Paren
}

// Kind returns [KindCall].
func (c *Call) Kind() Kind {
	return KindCall
}

// expressionNode marks a [Call] as an [ast.Expression].
func (c *Call) expressionNode() {}
