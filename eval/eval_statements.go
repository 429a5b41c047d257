/*
File    : go-lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalStmt dispatches on the statement node's type.
func (e *Evaluator) evalStmt(handle parser.StmtHandle) objects.GoLoxObject {
	switch node := e.Prog.Stmt(handle).(type) {
	case *parser.ExpressionStatementNode:
		return e.evalExpr(node.Expr)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(node)
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(node)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(node)
	case *parser.IfStatementNode:
		return e.evalIfStatement(node)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(node)
	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(node)
	case *parser.GetterStatementNode:
		return e.CreateError(node.Name, "Getters are only allowed inside classes.")
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(node)
	case *parser.ClassStatementNode:
		return e.evalClassStatement(node)
	default:
		return &objects.Nil{}
	}
}

// evalStmts evaluates a sequence of statements in order, with early
// termination: an error stops evaluation immediately, and a ReturnValue
// unwinds the rest of the sequence so it can be stripped by the calling
// function. For normal execution the result of the last statement is
// returned.
func (e *Evaluator) evalStmts(stmts []parser.StmtHandle) objects.GoLoxObject {
	var result objects.GoLoxObject = &objects.Nil{}
	for _, stmt := range stmts {
		result = e.evalStmt(stmt)
		if IsError(result) {
			return result
		}
		// Stop evaluation if we hit a return statement
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
	}
	return result
}

// evalPrintStatement evaluates the operand and writes its display form
// followed by a newline.
func (e *Evaluator) evalPrintStatement(node *parser.PrintStatementNode) objects.GoLoxObject {
	value := e.evalExpr(node.Expr)
	if IsError(value) {
		return value
	}
	fmt.Fprintf(e.Writer, "%s\n", value.ToString())
	return &objects.Nil{}
}

// evalDeclarativeStatement binds `var name = init;` in the current frame.
// A declaration without an initializer was given a synthesized nil literal
// by the parser, so evaluation is uniform here. Redeclaration in the same
// local scope was already rejected by the resolver; globals may be
// redefined freely.
func (e *Evaluator) evalDeclarativeStatement(node *parser.DeclarativeStatementNode) objects.GoLoxObject {
	value := e.evalExpr(node.Init)
	if IsError(value) {
		return value
	}
	e.Scp.Bind(node.Name.Literal, value)
	return value
}

// evalBlockStatement runs a block in a fresh child frame. The frame is
// popped on every exit path, including errors and pending returns.
func (e *Evaluator) evalBlockStatement(node *parser.BlockStatementNode) objects.GoLoxObject {
	previous := e.Scp
	e.Scp = scope.NewScope(previous)
	defer func() { e.Scp = previous }()
	return e.evalStmts(node.Statements)
}

// evalIfStatement selects a branch by the condition's truthiness.
func (e *Evaluator) evalIfStatement(node *parser.IfStatementNode) objects.GoLoxObject {
	cond := e.evalExpr(node.Cond)
	if IsError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.evalStmt(node.Then)
	}
	if node.HasElse {
		return e.evalStmt(node.Else)
	}
	return &objects.Nil{}
}

// evalWhileStatement re-evaluates the condition before each iteration and
// stops when it turns falsey, when the body raises an error, or when a
// return is pending.
func (e *Evaluator) evalWhileStatement(node *parser.WhileStatementNode) objects.GoLoxObject {
	for {
		cond := e.evalExpr(node.Cond)
		if IsError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return &objects.Nil{}
		}
		result := e.evalStmt(node.Body)
		if IsError(result) {
			return result
		}
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
	}
}

// evalFunctionStatement constructs a function value closing over the
// current environment and binds it in the current frame.
func (e *Evaluator) evalFunctionStatement(node *parser.FunctionStatementNode) objects.GoLoxObject {
	fn := &function.Function{
		Name:   node.Name.Literal,
		Params: node.Params,
		Body:   node.Body,
		Prog:   e.Prog,
		Scp:    e.Scp,
	}
	e.Scp.Bind(node.Name.Literal, fn)
	return fn
}

// evalReturnStatement wraps the return value so it unwinds through
// enclosing blocks and loops until the calling function strips it. The
// initializer rule (a bare `return;` inside `init` evaluates to the new
// instance) is applied by CallFunction.
func (e *Evaluator) evalReturnStatement(node *parser.ReturnStatementNode) objects.GoLoxObject {
	var value objects.GoLoxObject = &objects.Nil{}
	if node.HasValue {
		value = e.evalExpr(node.Value)
		if IsError(value) {
			return value
		}
	}
	return &objects.ReturnValue{Value: value}
}
