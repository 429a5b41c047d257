/*
File    : go-lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for GoLox. The
// Evaluator dispatches over the parser's arena nodes with a type switch,
// maintains the chained scope environment, and uses the resolver's depth
// annotations for every local variable access. Runtime errors are
// first-class objects.Error values that unwind to the top-level statement
// boundary, where they are reported before execution moves on to the next
// statement.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Evaluator holds the state for evaluating GoLox programs: the globals
// frame, the current scope, the program whose arenas are being walked, and
// the output streams.
//
// The globals frame is fixed for the evaluator's lifetime, which is what
// lets a REPL session accumulate definitions across lines. The active
// program changes whenever a function defined against another program (an
// earlier REPL line) is called; its handles and depth map only make sense
// against its own arenas.
type Evaluator struct {
	Prog      *parser.Program // Program currently being walked
	Globals   *scope.Scope    // The fixed outermost frame
	Scp       *scope.Scope    // Current scope for variable bindings
	Writer    io.Writer       // Output for print statements (default: os.Stdout)
	ErrWriter io.Writer       // Output for runtime error reports (default: os.Stderr)
}

// NewEvaluator creates and initializes a new Evaluator with a fresh global
// scope and default output streams.
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	return &Evaluator{
		Globals:   globals,
		Scp:       globals,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// SetWriter redirects the output of print statements. Useful for tests
// that capture program output in a buffer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetErrWriter redirects runtime error reports.
func (e *Evaluator) SetErrWriter(w io.Writer) {
	e.ErrWriter = w
}

// Interpret executes a resolved program's top-level statements in order.
// A runtime error terminates only the statement that raised it: the error
// is reported to ErrWriter and execution continues with the next top-level
// statement. The value of the last statement is returned so a REPL can
// implicitly print trailing expressions.
func (e *Evaluator) Interpret(prog *parser.Program) objects.GoLoxObject {
	previous := e.Prog
	e.Prog = prog
	defer func() { e.Prog = previous }()

	var result objects.GoLoxObject = &objects.Nil{}
	for _, root := range prog.Roots {
		result = e.evalStmt(root)
		if IsError(result) {
			fmt.Fprintf(e.ErrWriter, "%s\n", result.ToString())
		}
	}
	return result
}

// CallFunction invokes a function value with already-evaluated arguments.
// A new frame is parented on the function's captured environment, the
// parameters are bound, and the body runs against the function's own
// program. Only an explicit `return` produces a value; a body that falls
// off the end yields nil. An initializer always yields its `this`, even
// after a bare `return;`.
//
// The paren token anchors arity errors to the call site.
func (e *Evaluator) CallFunction(fn *function.Function, args []objects.GoLoxObject, paren lexer.Token) objects.GoLoxObject {
	if len(args) != fn.Arity() {
		return e.CreateError(paren, "Wrong number of arguments.")
	}

	frame := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		frame.Bind(param.Literal, args[i])
	}

	prevScope, prevProg := e.Scp, e.Prog
	e.Scp = frame
	e.Prog = fn.Prog
	result := e.evalStmts(fn.Body)
	e.Scp = prevScope
	e.Prog = prevProg

	if IsError(result) {
		return result
	}
	if ret, ok := result.(*objects.ReturnValue); ok {
		result = ret.Value
	} else {
		result = &objects.Nil{}
	}
	if fn.IsInitializer {
		// `init` always evaluates to the instance under construction,
		// which sits in the bound frame the method was created with.
		if this, ok := fn.Scp.GetAt("this", 0); ok {
			return this
		}
	}
	return result
}

// CreateError creates a runtime error anchored at a token, carrying the
// canonical "[line N] Error at 'x': message" format.
func (e *Evaluator) CreateError(tok lexer.Token, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Message: lexer.Report(tok, fmt.Sprintf(format, a...)),
	}
}
