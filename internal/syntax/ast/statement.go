package ast

import "go.followtheprocess.codes/lox/internal/syntax/token"

// Statement is a statement node.
type Statement interface {
	Node
	statementNode() // Prevents accidental misuse as another node type
}

// ExpressionStatement is an expression evaluated for its side effects.
type ExpressionStatement struct {
	// Expression is the expression to evaluate.
	Expression Expression

	// Semicolon is the terminating ';'.
	Semicolon token.Token
}

// Start returns the first token of the expression.
func (e *ExpressionStatement) Start() token.Token {
	return e.Expression.Start()
}

// End returns the terminating ';'.
func (e *ExpressionStatement) End() token.Token {
	return e.Semicolon
}

// Kind returns [KindExpressionStatement].
func (e *ExpressionStatement) Kind() Kind {
	return KindExpressionStatement
}

// statementNode marks an [ExpressionStatement] as an [ast.Statement].
func (e *ExpressionStatement) statementNode() {}

// Print is a 'print <expr>;' statement.
type Print struct {
	// Value is the expression to print.
	Value Expression

	// Keyword is the 'print' token.
	Keyword token.Token

	// Semicolon is the terminating ';'.
	Semicolon token.Token
}

// Start returns the 'print' keyword.
func (p *Print) Start() token.Token {
	return p.Keyword
}

// End returns the terminating ';'.
func (p *Print) End() token.Token {
	return p.Semicolon
}

// Kind returns [KindPrint].
func (p *Print) Kind() Kind {
	return KindPrint
}

// statementNode marks a [Print] as an [ast.Statement].
func (p *Print) statementNode() {}

// Var is a variable declaration, 'var <name> [= <initializer>];'.
type Var struct {
	// Initializer is the optional initial value, nil if absent in which
	// case the variable is declared but unassigned.
	Initializer Expression

	// Keyword is the 'var' token.
	Keyword token.Token

	// Name is the [token.Identifier] being declared.
	Name token.Token

	// Semicolon is the terminating ';'.
	Semicolon token.Token
}

// Start returns the 'var' keyword.
func (v *Var) Start() token.Token {
	return v.Keyword
}

// End returns the terminating ';'.
func (v *Var) End() token.Token {
	return v.Semicolon
}

// Kind returns [KindVar].
func (v *Var) Kind() Kind {
	return KindVar
}

// statementNode marks a [Var] as an [ast.Statement].
func (v *Var) statementNode() {}

// Block is a braced list of statements, introducing a new scope.
type Block struct {
	// Statements are the statements in the block, in order.
	Statements []Statement

	// Open is the opening '{'.
	Open token.Token

	// Close is the closing '}'.
	Close token.Token
}

// Start returns the opening '{'.
func (b *Block) Start() token.Token {
	return b.Open
}

// End returns the closing '}'.
func (b *Block) End() token.Token {
	return b.Close
}

// Kind returns [KindBlock].
func (b *Block) Kind() Kind {
	return KindBlock
}

// statementNode marks a [Block] as an [ast.Statement].
func (b *Block) statementNode() {}

// If is an if statement with an optional else branch.
type If struct {
	// Condition is the expression tested for truthiness.
	Condition Expression

	// Then is executed if Condition is truthy.
	Then Statement

	// Else is executed otherwise, nil if there is no else branch.
	Else Statement

	// Keyword is the 'if' token.
	Keyword token.Token
}

// Start returns the 'if' keyword.
func (i *If) Start() token.Token {
	return i.Keyword
}

// End returns the last token of the else branch if there is one, or
// the then branch if not.
func (i *If) End() token.Token {
	if i.Else != nil {
		return i.Else.End()
	}

	return i.Then.End()
}

// Kind returns [KindIf].
func (i *If) Kind() Kind {
	return KindIf
}

// statementNode marks an [If] as an [ast.Statement].
func (i *If) statementNode() {}

// While is a while loop. For loops are rewritten into a While by the parser.
type While struct {
	// Condition is tested before each iteration.
	Condition Expression

	// Body is executed for as long as Condition is truthy.
	Body Statement

	// Keyword is the 'while' token, or the 'for' token of a
	// rewritten for loop.
	Keyword token.Token
}

// Start returns the 'while' (or 'for') keyword.
func (w *While) Start() token.Token {
	return w.Keyword
}

// End returns the last token of the body.
func (w *While) End() token.Token {
	return w.Body.End()
}

// Kind returns [KindWhile].
func (w *While) Kind() Kind {
	return KindWhile
}

// statementNode marks a [While] as an [ast.Statement].
func (w *While) statementNode() {}

// Function is a named function declaration, also used for the methods
// of a class.
type Function struct {
	// Body is the list of statements in the function body.
	Body []Statement

	// Params are the [token.Identifier] parameter names, in order.
	Params []token.Token

	// Keyword is the 'fun' token. For a method, which has no 'fun',
	// it is the method name.
	Keyword token.Token

	// Name is the function's name.
	Name token.Token

	// Close is the '}' closing the body.
	Close token.Token
}

// Start returns the 'fun' keyword.
func (f *Function) Start() token.Token {
	return f.Keyword
}

// End returns the '}' closing the function body.
func (f *Function) End() token.Token {
	return f.Close
}

// Kind returns [KindFunction].
func (f *Function) Kind() Kind {
	return KindFunction
}

// statementNode marks a [Function] as an [ast.Statement].
func (f *Function) statementNode() {}

// Return is a return statement, only valid inside a function.
type Return struct {
	// Value is the value to return, nil for a bare 'return;'.
	Value Expression

	// Keyword is the 'return' token.
	Keyword token.Token

	// Semicolon is the terminating ';'.
	Semicolon token.Token
}

// Start returns the 'return' keyword.
func (r *Return) Start() token.Token {
	return r.Keyword
}

// End returns the terminating ';'.
func (r *Return) End() token.Token {
	return r.Semicolon
}

// Kind returns [KindReturn].
func (r *Return) Kind() Kind {
	return KindReturn
}

// statementNode marks a [Return] as an [ast.Statement].
func (r *Return) statementNode() {}

// Class is a class declaration. Classes are parsed and resolved but
// have no runtime behaviour.
type Class struct {
	// Methods are the methods declared in the class body.
	Methods []*Function

	// Keyword is the 'class' token.
	Keyword token.Token

	// Name is the class name.
	Name token.Token

	// Close is the '}' closing the class body.
	Close token.Token
}

// Start returns the 'class' keyword.
func (c *Class) Start() token.Token {
	return c.Keyword
}

// End returns the closing '}'.
func (c *Class) End() token.Token {
	return c.Close
}

// Kind returns [KindClass].
func (c *Class) Kind() Kind {
	return KindClass
}

// statementNode marks a [Class] as an [ast.Statement].
func (c *Class) statementNode() {}

// BadStatement is a placeholder for a declaration the parser could not make
// sense of. It spans the tokens discarded while recovering from the error
// and does nothing when executed.
type BadStatement struct {
	// From is the first token of the broken declaration.
	From token.Token

	// To is the last token discarded during recovery.
	To token.Token
}

// Start returns the first token of the broken declaration.
func (b *BadStatement) Start() token.Token {
	return b.From
}

// End returns the last discarded token.
func (b *BadStatement) End() token.Token {
	return b.To
}

// Kind returns [KindBadStatement].
func (b *BadStatement) Kind() Kind {
	return KindBadStatement
}

// statementNode marks a [BadStatement] as an [ast.Statement].
func (b *BadStatement) statementNode() {}
