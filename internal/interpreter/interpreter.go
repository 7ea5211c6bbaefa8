// Package interpreter implements a tree-walking interpreter for resolved lox programs.
//
// The interpreter executes the statements of an [ast.File] in order against a chain of
// [runtime.Environment] frames, using the resolution table produced by the resolver to
// find local variables at an exact scope distance. Any name not in the table is a global.
//
// The first runtime error halts execution and is returned as a [*runtime.Error].
package interpreter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/lox/internal/runtime"
	"go.followtheprocess.codes/lox/internal/runtime/builtins"
	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// maxCallDepth is the deepest the interpreter will nest function calls before
// reporting a stack overflow.
const maxCallDepth = 4096

// Interpreter is the lox tree-walking interpreter.
//
// An Interpreter keeps its global environment between calls to [Interpreter.Interpret], so
// successive files (or REPL lines) see each other's global definitions.
type Interpreter struct {
	stdout  io.Writer            // Where 'print' writes to
	library builtins.Library     // Native functions defined as globals
	logger  *log.Logger          // Debug logging
	globals *runtime.Environment // The outermost environment
	env     *runtime.Environment // The current environment
	locals  resolver.Locals      // Scope distances of resolved local variables
	depth   int                  // Current function call depth
}

// Option is a functional option for configuring an [Interpreter].
type Option func(i *Interpreter)

// WithBuiltins sets the library of native functions defined in the global environment,
// the default is [builtins.NewLibrary].
func WithBuiltins(library builtins.Library) Option {
	return func(i *Interpreter) {
		i.library = library
	}
}

// WithLogger sets the logger used for debug logging, the default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// New returns a new [Interpreter] that prints to stdout.
func New(stdout io.Writer, options ...Option) *Interpreter {
	globals := runtime.NewEnvironment(nil)

	i := &Interpreter{
		stdout:  stdout,
		library: builtins.NewLibrary(),
		logger:  log.New(io.Discard),
		globals: globals,
		env:     globals,
		locals:  make(resolver.Locals),
	}

	for _, option := range options {
		option(i)
	}

	names := i.library.Names()
	for _, name := range names {
		fn, ok := i.library.Get(name)
		if !ok {
			continue
		}

		i.globals.Define(name, fn)
	}

	i.logger.Debug("Defined builtins", slog.Int("count", len(names)))

	return i
}

// Globals returns the names currently defined in the global environment, sorted.
func (i *Interpreter) Globals() []string {
	return i.globals.Names()
}

// Interpret executes the statements in file, in order.
//
// locals is the resolution table for file, it is merged into the interpreter's own so that
// functions defined by earlier calls keep resolving correctly. The file must have resolved
// without errors.
//
// Execution halts on the first runtime error, which is returned. Any output printed before
// the error has already been written.
func (i *Interpreter) Interpret(file ast.File, locals resolver.Locals) error {
	maps.Copy(i.locals, locals)

	logger := i.logger.With(slog.String("file", file.Name))
	logger.Debug("Executing file", slog.Int("statements", len(file.Statements)), slog.Int("locals", len(locals)))

	start := time.Now()

	for _, statement := range file.Statements {
		if _, err := i.execute(statement); err != nil {
			logger.Debug("Execution halted", slog.String("error", err.Error()), slog.Duration("took", time.Since(start)))
			return err
		}
	}

	logger.Debug("Executed file successfully", slog.Duration("took", time.Since(start)))

	return nil
}

// completion is the outcome of executing a statement that did not fail.
//
// A 'return' statement completes with returned set, and every enclosing statement
// completes the same way until the function call boundary consumes it.
type completion struct {
	value    runtime.Value // The returned value, only meaningful if returned is set
	returned bool          // Whether a 'return' statement was executed
}

// normal is the completion of a statement that ran to its end.
var normal = completion{}

// execute executes a single statement.
func (i *Interpreter) execute(statement ast.Statement) (completion, error) {
	switch stmt := statement.(type) {
	case *ast.ExpressionStatement:
		_, err := i.evaluate(stmt.Expression)
		return normal, err
	case *ast.Print:
		value, err := i.evaluate(stmt.Value)
		if err != nil {
			return normal, err
		}

		if _, err := fmt.Fprintln(i.stdout, value.String()); err != nil {
			return normal, fmt.Errorf("could not write output: %w", err)
		}

		return normal, nil
	case *ast.Var:
		if stmt.Initializer == nil {
			i.env.Declare(stmt.Name.Lexeme)
			return normal, nil
		}

		value, err := i.evaluate(stmt.Initializer)
		if err != nil {
			return normal, err
		}

		i.env.Define(stmt.Name.Lexeme, value)

		return normal, nil
	case *ast.Block:
		return i.executeBlock(stmt.Statements, runtime.NewEnvironment(i.env))
	case *ast.If:
		condition, err := i.evaluate(stmt.Condition)
		if err != nil {
			return normal, err
		}

		if runtime.Truthy(condition) {
			return i.execute(stmt.Then)
		}

		if stmt.Else != nil {
			return i.execute(stmt.Else)
		}

		return normal, nil
	case *ast.While:
		return i.executeWhile(stmt)
	case *ast.Function:
		i.env.Define(stmt.Name.Lexeme, newFunction(i, stmt, i.env))
		return normal, nil
	case *ast.Return:
		var value runtime.Value = runtime.Nil{}

		if stmt.Value != nil {
			var err error

			value, err = i.evaluate(stmt.Value)
			if err != nil {
				return normal, err
			}
		}

		return completion{value: value, returned: true}, nil
	case *ast.Class:
		return normal, runtime.NewError(stmt.Keyword, "Classes are not supported.")
	case *ast.BadStatement:
		return normal, fmt.Errorf("cannot execute a statement that failed to parse at line %d", stmt.From.Line)
	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

// executeBlock executes statements in env, restoring the current environment
// however the block exits.
func (i *Interpreter) executeBlock(statements []ast.Statement, env *runtime.Environment) (completion, error) {
	previous := i.env
	i.env = env

	defer func() { i.env = previous }()

	for _, statement := range statements {
		result, err := i.execute(statement)
		if err != nil || result.returned {
			return result, err
		}
	}

	return normal, nil
}

// executeWhile executes a while loop.
func (i *Interpreter) executeWhile(stmt *ast.While) (completion, error) {
	for {
		condition, err := i.evaluate(stmt.Condition)
		if err != nil {
			return normal, err
		}

		if !runtime.Truthy(condition) {
			return normal, nil
		}

		result, err := i.execute(stmt.Body)
		if err != nil || result.returned {
			return result, err
		}
	}
}

// evaluate evaluates a single expression.
func (i *Interpreter) evaluate(expression ast.Expression) (runtime.Value, error) {
	switch expr := expression.(type) {
	case *ast.Literal:
		return literal(expr.Token), nil
	case *ast.Grouping:
		return i.evaluate(expr.Expression)
	case *ast.Variable:
		return i.lookUp(expr, expr.Name)
	case *ast.Assign:
		value, err := i.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}

		if distance, ok := i.locals[expr]; ok {
			err = i.env.AssignAt(distance, expr.Name, value)
		} else {
			err = i.globals.Assign(expr.Name, value)
		}

		if err != nil {
			return nil, err
		}

		return value, nil
	case *ast.Unary:
		return i.evaluateUnary(expr)
	case *ast.Binary:
		return i.evaluateBinary(expr)
	case *ast.Logical:
		left, err := i.evaluate(expr.Left)
		if err != nil {
			return nil, err
		}

		if expr.Operator.Is(token.Or) == runtime.Truthy(left) {
			// 'or' with a truthy left, or 'and' with a falsy one
			return left, nil
		}

		return i.evaluate(expr.Right)
	case *ast.Call:
		return i.evaluateCall(expr)
	default:
		panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
	}
}

// lookUp returns the value of the variable name referred to by expr.
func (i *Interpreter) lookUp(expr ast.Expression, name token.Token) (runtime.Value, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.env.GetAt(distance, name)
	}

	return i.globals.Get(name)
}

// literal returns the runtime value of a literal token.
func literal(tok token.Token) runtime.Value {
	switch tok.Kind {
	case token.Number:
		return runtime.Number(tok.Number)
	case token.String:
		return runtime.String(tok.Text)
	case token.True:
		return runtime.Bool(true)
	case token.False:
		return runtime.Bool(false)
	default:
		return runtime.Nil{}
	}
}

// evaluateUnary evaluates a unary expression.
func (i *Interpreter) evaluateUnary(expr *ast.Unary) (runtime.Value, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.Bang:
		return runtime.Bool(!runtime.Truthy(right)), nil
	case token.Minus:
		n, ok := right.(runtime.Number)
		if !ok {
			return nil, runtime.NewError(expr.Operator, "Operand of '-' must be a number.")
		}

		return -n, nil
	default:
		panic(fmt.Sprintf("interpreter: unhandled unary operator %s", expr.Operator.Kind))
	}
}

// evaluateBinary evaluates a binary expression, both operands are always evaluated
// left to right before the operator is applied.
func (i *Interpreter) evaluateBinary(expr *ast.Binary) (runtime.Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	op := expr.Operator

	switch op.Kind {
	case token.EqualEqual, token.BangEqual:
		equal, ok := runtime.Equal(left, right)
		if !ok {
			return nil, runtime.NewError(op, "Operands of '%s' must be of the same type.", op.Lexeme)
		}

		if op.Is(token.BangEqual) {
			return runtime.Bool(!equal), nil
		}

		return runtime.Bool(equal), nil
	case token.Plus:
		switch l := left.(type) {
		case runtime.Number:
			if r, ok := right.(runtime.Number); ok {
				return l + r, nil
			}
		case runtime.String:
			if r, ok := right.(runtime.String); ok {
				return l + r, nil
			}
		}

		return nil, runtime.NewError(op, "Operands of '+' must be two numbers or two strings.")
	}

	l, lok := left.(runtime.Number)
	r, rok := right.(runtime.Number)

	if !lok || !rok {
		return nil, runtime.NewError(op, "Operands of '%s' must be numbers.", op.Lexeme)
	}

	switch op.Kind {
	case token.Minus:
		return l - r, nil
	case token.Star:
		return l * r, nil
	case token.Slash:
		if r == 0 {
			return nil, runtime.NewError(op, "Division by zero.")
		}

		return l / r, nil
	case token.Greater:
		return runtime.Bool(l > r), nil
	case token.GreaterEqual:
		return runtime.Bool(l >= r), nil
	case token.Less:
		return runtime.Bool(l < r), nil
	case token.LessEqual:
		return runtime.Bool(l <= r), nil
	default:
		panic(fmt.Sprintf("interpreter: unhandled binary operator %s", op.Kind))
	}
}

// evaluateCall evaluates a call expression. The callee and every argument are
// evaluated before anything is checked.
func (i *Interpreter) evaluateCall(expr *ast.Call) (runtime.Value, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, 0, len(expr.Arguments))

	for _, argument := range expr.Arguments {
		arg, err := i.evaluate(argument)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	fn, ok := callee.(runtime.Callable)
	if !ok {
		return nil, runtime.NewError(expr.Paren, "Can only call functions and classes.")
	}

	if len(args) != fn.Arity() {
		return nil, runtime.NewError(expr.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	if i.depth >= maxCallDepth {
		return nil, runtime.NewError(expr.Paren, "Stack overflow.")
	}

	i.depth++
	defer func() { i.depth-- }()

	result, err := fn.Call(args)
	if err != nil {
		var runtimeErr *runtime.Error
		if errors.As(err, &runtimeErr) || errors.Is(err, runtime.ErrResolution) {
			return nil, err
		}

		// A native function failing for reasons of its own
		return nil, runtime.NewError(expr.Paren, "%s(): %v", fn.Name(), err)
	}

	return result, nil
}
