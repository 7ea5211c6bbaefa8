// Package resolver implements static scope resolution for the AST.
//
// The resolver walks a parsed file exactly once before it is executed, mirroring the
// scopes the interpreter will create at runtime. For every local variable reference
// and assignment it records how many enclosing scopes away the variable was declared,
// so the interpreter can go straight to the right environment rather than searching
// for it. References to names not declared in any local scope are left out of the
// table and are looked up in the globals at runtime.
//
// Along the way it reports the handful of errors that can be caught statically: reading a
// variable in its own initializer, declaring a name twice in one scope and returning
// from top level code.
package resolver

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/lox/internal/syntax"
	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// ErrResolve is a generic resolving error, details on the error are provided through
// [Resolver.Diagnostics].
var ErrResolve = errors.New("resolve error")

// Locals is the resolution table, mapping each [*ast.Variable] and [*ast.Assign] that
// refers to a local variable to the number of scopes between it and the declaration.
//
// 0 means the variable is in the innermost scope at the point of use.
type Locals map[ast.Expression]int

// functionKind is the kind of function the resolver is currently inside.
type functionKind int

const (
	functionNone     functionKind = iota // Top level code
	functionFunction                     // A function declared with 'fun'
	functionMethod                       // A method of a class
)

// Resolver is the ast resolver for lox programs.
type Resolver struct {
	locals      Locals              // The resolution table being built
	scope       *scope              // The innermost local scope, nil at the top level
	globals     map[string]bool     // Globals declared so far in this file, and whether they are ready
	name        string              // The name of the file being resolved
	diagnostics []syntax.Diagnostic // Diagnostics collected during resolving
	src         []byte              // Raw source text, used for diagnostic positions
	function    functionKind        // The kind of function being resolved
	hadErrors   bool                // Whether we encountered resolver errors
}

// Option is a functional option for configuring a [Resolver].
type Option func(r *Resolver)

// WithGlobals marks names as globals that are already defined, as in a REPL
// where earlier lines have declared them.
func WithGlobals(names ...string) Option {
	return func(r *Resolver) {
		for _, name := range names {
			r.globals[name] = true
		}
	}
}

// New returns a new [Resolver] for the file name whose source is src.
func New(name string, src []byte, options ...Option) *Resolver {
	r := &Resolver{
		locals:  make(Locals),
		globals: make(map[string]bool),
		name:    name,
		src:     src,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Resolve resolves an [ast.File], returning its resolution table.
//
// In the presence of an error, Resolve will return [ErrResolve], for more detailed
// inspection of resolution errors, call [Resolver.Diagnostics]. A file that failed
// to resolve must not be executed.
func (r *Resolver) Resolve(in ast.File) (Locals, error) {
	r.resolveStatements(in.Statements)

	if r.hadErrors {
		return r.locals, fmt.Errorf("%w: %d error(s) in %s", ErrResolve, len(r.diagnostics), r.name)
	}

	return r.locals, nil
}

// Diagnostics returns the diagnostics gathered during resolving.
func (r *Resolver) Diagnostics() []syntax.Diagnostic {
	// Create a copy so caller can't mutate the original diagnostics slice
	diagCopy := make([]syntax.Diagnostic, 0, len(r.diagnostics))
	diagCopy = append(diagCopy, r.diagnostics...)

	return diagCopy
}

// error reports a resolve error pointing at tok with a fixed message.
func (r *Resolver) error(tok token.Token, msg string) {
	r.hadErrors = true

	where := syntax.AtEnd
	if !tok.Is(token.EOF) {
		where = syntax.AtLexeme(tok.Lexeme)
	}

	diag := syntax.Diagnostic{
		Msg:      msg,
		Where:    where,
		Position: syntax.NewPosition(r.name, r.src, tok.Line, tok.Start, tok.End),
	}

	r.diagnostics = append(r.diagnostics, diag)
}

// beginScope opens a new local scope.
func (r *Resolver) beginScope() {
	if r.scope == nil {
		r.scope = newScope()
		return
	}

	r.scope = r.scope.child()
}

// endScope closes the innermost local scope.
func (r *Resolver) endScope() {
	r.scope = r.scope.parent
}

// declare declares name in the innermost scope, or as a global at the top level.
func (r *Resolver) declare(name token.Token) {
	if r.scope == nil {
		// Globals may be redeclared, but one that is already defined
		// stays readable while it is being redeclared
		if _, exists := r.globals[name.Lexeme]; !exists {
			r.globals[name.Lexeme] = false
		}

		return
	}

	if !r.scope.declare(name.Lexeme) {
		r.error(name, "Already a variable with this name in this scope.")
	}
}

// define marks name as ready in the innermost scope, or as a global at the top level.
func (r *Resolver) define(name token.Token) {
	if r.scope == nil {
		r.globals[name.Lexeme] = true
		return
	}

	r.scope.define(name.Lexeme)
}

// resolveLocal records the depth of the variable name referred to by expr, if it
// is declared in any local scope.
func (r *Resolver) resolveLocal(expr ast.Expression, name token.Token) {
	depth, _, ok := r.scope.lookup(name.Lexeme)
	if ok {
		r.locals[expr] = depth
	}
}

// resolveStatements resolves a list of statements in order.
func (r *Resolver) resolveStatements(statements []ast.Statement) {
	for _, statement := range statements {
		r.resolveStatement(statement)
	}
}

// resolveStatement resolves a single [ast.Statement].
func (r *Resolver) resolveStatement(statement ast.Statement) {
	switch stmt := statement.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStatements(stmt.Statements)
		r.endScope()
	case *ast.Var:
		r.declare(stmt.Name)

		if stmt.Initializer != nil {
			r.resolveExpression(stmt.Initializer)
		}

		r.define(stmt.Name)
	case *ast.Function:
		// Defined before the body is resolved so it can refer to itself
		r.declare(stmt.Name)
		r.define(stmt.Name)
		r.resolveFunction(stmt, functionFunction)
	case *ast.Class:
		r.declare(stmt.Name)
		r.define(stmt.Name)

		for _, method := range stmt.Methods {
			r.resolveFunction(method, functionMethod)
		}
	case *ast.ExpressionStatement:
		r.resolveExpression(stmt.Expression)
	case *ast.If:
		r.resolveExpression(stmt.Condition)
		r.resolveStatement(stmt.Then)

		if stmt.Else != nil {
			r.resolveStatement(stmt.Else)
		}
	case *ast.Print:
		r.resolveExpression(stmt.Value)
	case *ast.Return:
		if r.function == functionNone {
			r.error(stmt.Keyword, "Can't return from top-level code.")
		}

		if stmt.Value != nil {
			r.resolveExpression(stmt.Value)
		}
	case *ast.While:
		r.resolveExpression(stmt.Condition)
		r.resolveStatement(stmt.Body)
	case *ast.BadStatement:
		// Nothing to resolve, and the file will never run anyway
	default:
		panic(fmt.Sprintf("resolver: unhandled statement type %T", stmt))
	}
}

// resolveFunction resolves the parameters and body of a function in a new scope, the
// same single scope the interpreter creates when the function is called.
func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosing := r.function
	r.function = kind

	defer func() { r.function = enclosing }()

	r.beginScope()

	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}

	r.resolveStatements(fn.Body)
	r.endScope()
}

// resolveExpression resolves a single [ast.Expression].
func (r *Resolver) resolveExpression(expression ast.Expression) {
	switch expr := expression.(type) {
	case *ast.Variable:
		r.resolveVariable(expr)
	case *ast.Assign:
		r.resolveExpression(expr.Value)
		r.resolveLocal(expr, expr.Name)
	case *ast.Binary:
		r.resolveExpression(expr.Left)
		r.resolveExpression(expr.Right)
	case *ast.Logical:
		r.resolveExpression(expr.Left)
		r.resolveExpression(expr.Right)
	case *ast.Call:
		r.resolveExpression(expr.Callee)

		for _, arg := range expr.Arguments {
			r.resolveExpression(arg)
		}
	case *ast.Grouping:
		r.resolveExpression(expr.Expression)
	case *ast.Unary:
		r.resolveExpression(expr.Right)
	case *ast.Literal:
		// Nothing to resolve
	default:
		panic(fmt.Sprintf("resolver: unhandled expression type %T", expr))
	}
}

// resolveVariable resolves a variable reference, which must not be to a
// variable that is still being initialised.
func (r *Resolver) resolveVariable(expr *ast.Variable) {
	name := expr.Name.Lexeme

	_, ready, ok := r.scope.lookup(name)
	if ok {
		if !ready {
			r.error(expr.Name, "Can't read local variable in its own initializer.")
		}

		r.resolveLocal(expr, expr.Name)

		return
	}

	// Not a local, so either a global or undefined. Undefined is a runtime
	// error but a global read in its own (first) initializer is caught here
	if ready, exists := r.globals[name]; exists && !ready {
		r.error(expr.Name, "Can't read local variable in its own initializer.")
	}
}
