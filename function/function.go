/*
File    : go-lox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the runtime values that reference the AST:
// functions, classes, and instances. They live apart from the objects
// package because they need the parser's node pools (a function's body is
// a list of statement handles into its defining program).
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Function represents a user-defined function, method, getter, or lambda.
// It is immutable after construction; binding a method produces a fresh
// Function value rather than mutating the original.
//
// Fields:
//   - Name: the declared name, or "" for a lambda.
//   - Params: parameter name tokens, bound in order at call time.
//   - Body: statement handles into Prog's statement pool.
//   - Prog: the program whose pools the body handles index. Carried so a
//     closure created on one REPL line still evaluates against its own
//     arenas (and depth map) when called from a later line.
//   - Scp: the scope captured at definition time. Never replaced, only
//     extended by child frames at call and bind time.
//   - IsInitializer: true for the method literally named "init"; its
//     return value is always the constructed instance.
//   - IsGetter: true for parameterless property getters, which are invoked
//     implicitly on property access.
type Function struct {
	Name          string
	Params        []lexer.Token
	Body          []parser.StmtHandle
	Prog          *parser.Program
	Scp           *scope.Scope
	IsInitializer bool
	IsGetter      bool
}

// GetType returns the type identifier for this Function object.
func (f *Function) GetType() objects.GoLoxType {
	return objects.FunctionType
}

// Arity returns the number of parameters the function expects.
func (f *Function) Arity() int {
	return len(f.Params)
}

// Bind produces a new function value whose captured environment has a
// single extra frame defining `this`. The receiver is usually an instance;
// method lookup on a class value binds the class itself.
func (f *Function) Bind(receiver objects.GoLoxObject) *Function {
	bound := scope.NewScope(f.Scp)
	bound.Bind("this", receiver)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Prog:          f.Prog,
		Scp:           bound,
		IsInitializer: f.IsInitializer,
		IsGetter:      f.IsGetter,
	}
}

// ToString renders the display form: "<fn name>" or "<lambda>".
func (f *Function) ToString() string {
	if f.Name == "" {
		return "<lambda>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

// ToObject renders the inspection form including parameter names.
func (f *Function) ToObject() string {
	args := ""
	for i, param := range f.Params {
		if i > 0 {
			args += ", "
		}
		args += param.Literal
	}
	name := f.Name
	if name == "" {
		name = "lambda"
	}
	return fmt.Sprintf("<func[%s(%s)]>", name, args)
}
