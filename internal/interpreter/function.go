package interpreter

import (
	"go.followtheprocess.codes/lox/internal/runtime"
	"go.followtheprocess.codes/lox/internal/syntax/ast"
)

// function is a user defined lox function, closing over the environment
// it was declared in.
type function struct {
	interpreter *Interpreter         // The interpreter that runs the body
	decl        *ast.Function        // The function's declaration
	closure     *runtime.Environment // The environment active when the function was declared
}

// newFunction returns a new function for decl, closing over closure.
func newFunction(interpreter *Interpreter, decl *ast.Function, closure *runtime.Environment) *function {
	return &function{
		interpreter: interpreter,
		decl:        decl,
		closure:     closure,
	}
}

// String returns "<fn name>".
func (f *function) String() string {
	return "<fn " + f.decl.Name.Lexeme + ">"
}

// Type returns [runtime.TypeCallable].
func (f *function) Type() runtime.Type {
	return runtime.TypeCallable
}

// Name returns the declared name of the function.
func (f *function) Name() string {
	return f.decl.Name.Lexeme
}

// Arity returns the number of declared parameters.
func (f *function) Arity() int {
	return len(f.decl.Params)
}

// Call runs the body of the function in a new environment enclosed by the closure,
// with each parameter bound to its argument. The result is the value of the 'return'
// statement that ended the call, or nil if the body ran to its end.
func (f *function) Call(args []runtime.Value) (runtime.Value, error) {
	env := runtime.NewEnvironment(f.closure)

	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	result, err := f.interpreter.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}

	if result.returned {
		return result.value, nil
	}

	return runtime.Nil{}, nil
}
