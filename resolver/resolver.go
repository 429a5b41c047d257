/*
File    : go-lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static resolution pass that runs between
// the parser and the evaluator. It walks the frozen AST once, mirrors the
// lexical scope structure with a stack of name→defined maps, and records
// for every local name use the number of scope frames between the use site
// and the frame that binds it. The depths are keyed by token identity
// (Token.Seq) and written into the program's Locals map; names that
// resolve to no frame are globals and get no entry.
//
// The pass also enforces the language's static rules: no `return` outside
// a function, no value-returning `return` inside `init`, no `this` or
// `super` outside a class, no `super` without a superclass, no
// self-inheritance, no redeclaration in the same scope, and no reading a
// local variable in its own initializer. The first violation aborts the
// resolve.
package resolver

import (
	"errors"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/parser"
)

// functionContext tracks what kind of function body, if any, the resolver
// is currently inside.
type functionContext int

const (
	functionNone functionContext = iota
	functionFunction
	functionMethod
	functionInitializer
)

// classContext tracks whether the resolver is inside a class body, and
// whether that class has a superclass.
type classContext int

const (
	classNone classContext = iota
	classClass
	classSubClass
)

// Resolver holds the state of one resolution pass over one program.
type Resolver struct {
	prog *parser.Program

	// scopes is the stack of lexical scopes currently open. Each maps a
	// name to whether its initializer has finished (declare inserts false,
	// define flips it to true). The global scope is deliberately not on
	// the stack: names that fall off the bottom are globals.
	scopes []map[string]bool

	currentFunction functionContext
	currentClass    classContext
}

// NewResolver creates a resolver for the given parsed program.
func NewResolver(prog *parser.Program) *Resolver {
	return &Resolver{
		prog:            prog,
		scopes:          make([]map[string]bool, 0),
		currentFunction: functionNone,
		currentClass:    classNone,
	}
}

// Resolve walks every top-level statement and fills prog.Locals.
// The first static error aborts the pass and is returned.
func (r *Resolver) Resolve() error {
	for _, root := range r.prog.Roots {
		if err := r.resolveStmt(root); err != nil {
			return err
		}
	}
	return nil
}

// resolveStmts resolves a statement list in order.
func (r *Resolver) resolveStmts(stmts []parser.StmtHandle) error {
	for _, stmt := range stmts {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// resolveStmt dispatches on the statement node's type.
func (r *Resolver) resolveStmt(handle parser.StmtHandle) error {
	switch node := r.prog.Stmt(handle).(type) {
	case *parser.ExpressionStatementNode:
		return r.resolveExpr(node.Expr)
	case *parser.PrintStatementNode:
		return r.resolveExpr(node.Expr)
	case *parser.DeclarativeStatementNode:
		return r.resolveVarStmt(node)
	case *parser.BlockStatementNode:
		r.beginScope()
		err := r.resolveStmts(node.Statements)
		r.endScope()
		return err
	case *parser.IfStatementNode:
		return r.resolveIfStmt(node)
	case *parser.WhileStatementNode:
		if err := r.resolveExpr(node.Cond); err != nil {
			return err
		}
		return r.resolveStmt(node.Body)
	case *parser.FunctionStatementNode:
		if err := r.declare(node.Name); err != nil {
			return err
		}
		r.define(node.Name)
		return r.resolveFunction(node.Params, node.Body, functionFunction)
	case *parser.GetterStatementNode:
		// Parsed only inside class bodies; resolved through the class
		// statement. Reaching one here means it escaped a class, which the
		// evaluator rejects at runtime.
		return r.resolveFunction(nil, node.Body, functionMethod)
	case *parser.ReturnStatementNode:
		return r.resolveReturnStmt(node)
	case *parser.ClassStatementNode:
		return r.resolveClassStmt(node)
	default:
		return nil
	}
}

// resolveVarStmt handles `var name = init;`. The name is declared before
// the initializer resolves and defined after, so that the initializer
// referencing its own name is caught.
func (r *Resolver) resolveVarStmt(node *parser.DeclarativeStatementNode) error {
	if err := r.declare(node.Name); err != nil {
		return err
	}
	if node.HasInit {
		if err := r.resolveExpr(node.Init); err != nil {
			return err
		}
	}
	r.define(node.Name)
	return nil
}

func (r *Resolver) resolveIfStmt(node *parser.IfStatementNode) error {
	if err := r.resolveExpr(node.Cond); err != nil {
		return err
	}
	if err := r.resolveStmt(node.Then); err != nil {
		return err
	}
	if node.HasElse {
		return r.resolveStmt(node.Else)
	}
	return nil
}

func (r *Resolver) resolveReturnStmt(node *parser.ReturnStatementNode) error {
	if r.currentFunction == functionNone {
		return r.report(node.Keyword, "Cannot return from top-level code.")
	}
	if node.HasValue {
		if r.currentFunction == functionInitializer {
			return r.report(node.Keyword, "Cannot return a value from an initializer.")
		}
		return r.resolveExpr(node.Value)
	}
	return nil
}

// resolveClassStmt handles a class declaration. When the class has a
// superclass, one scope defining `super` is opened around a second scope
// defining `this`; the methods resolve inside both, which is what makes
// the evaluator's depth arithmetic for `super` land one frame outside
// `this`.
func (r *Resolver) resolveClassStmt(node *parser.ClassStatementNode) error {
	enclosing := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosing }()

	if err := r.declare(node.Name); err != nil {
		return err
	}
	r.define(node.Name)

	if node.HasSuper {
		superName := r.prog.Expr(node.Super).(*parser.IdentifierExpressionNode).Name
		if superName.Literal == node.Name.Literal {
			return r.report(superName, "A class cannot inherit from itself.")
		}
		r.currentClass = classSubClass
		if err := r.resolveExpr(node.Super); err != nil {
			return err
		}
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range node.Methods {
		var err error
		switch m := r.prog.Stmt(method).(type) {
		case *parser.FunctionStatementNode:
			declaration := functionMethod
			if m.Name.Literal == "init" {
				declaration = functionInitializer
			}
			err = r.resolveFunction(m.Params, m.Body, declaration)
		case *parser.GetterStatementNode:
			// Getters resolve as methods with an empty parameter list.
			err = r.resolveFunction(nil, m.Body, functionMethod)
		}
		if err != nil {
			return err
		}
	}

	r.endScope()
	if node.HasSuper {
		r.endScope()
	}
	return nil
}

// resolveFunction resolves a function body in a fresh scope with its
// parameters declared and defined, tracking the function context for the
// static return/this rules.
func (r *Resolver) resolveFunction(params []lexer.Token, body []parser.StmtHandle, context functionContext) error {
	enclosing := r.currentFunction
	r.currentFunction = context
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	defer r.endScope()
	for _, param := range params {
		if err := r.declare(param); err != nil {
			return err
		}
		r.define(param)
	}
	return r.resolveStmts(body)
}

// resolveExpr dispatches on the expression node's type.
func (r *Resolver) resolveExpr(handle parser.ExprHandle) error {
	switch node := r.prog.Expr(handle).(type) {
	case *parser.LiteralExpressionNode:
		return nil
	case *parser.IdentifierExpressionNode:
		return r.resolveVariableExpr(node)
	case *parser.AssignmentExpressionNode:
		if err := r.resolveExpr(node.Value); err != nil {
			return err
		}
		r.resolveLocal(node.Name)
		return nil
	case *parser.BinaryExpressionNode:
		if err := r.resolveExpr(node.Left); err != nil {
			return err
		}
		return r.resolveExpr(node.Right)
	case *parser.LogicalExpressionNode:
		if err := r.resolveExpr(node.Left); err != nil {
			return err
		}
		return r.resolveExpr(node.Right)
	case *parser.TernaryExpressionNode:
		if err := r.resolveExpr(node.Cond); err != nil {
			return err
		}
		if err := r.resolveExpr(node.Then); err != nil {
			return err
		}
		return r.resolveExpr(node.Else)
	case *parser.ParenthesizedExpressionNode:
		return r.resolveExpr(node.Expr)
	case *parser.UnaryExpressionNode:
		return r.resolveExpr(node.Right)
	case *parser.CallExpressionNode:
		if err := r.resolveExpr(node.Callee); err != nil {
			return err
		}
		for _, arg := range node.Args {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil
	case *parser.LambdaExpressionNode:
		return r.resolveFunction(node.Params, node.Body, functionFunction)
	case *parser.GetExpressionNode:
		// Property names are looked up dynamically; only the object
		// expression resolves statically.
		return r.resolveExpr(node.Object)
	case *parser.SetExpressionNode:
		if err := r.resolveExpr(node.Value); err != nil {
			return err
		}
		return r.resolveExpr(node.Object)
	case *parser.ThisExpressionNode:
		if r.currentClass == classNone {
			return r.report(node.Keyword, "Cannot use 'this' outside of a class.")
		}
		r.resolveLocal(node.Keyword)
		return nil
	case *parser.SuperExpressionNode:
		if r.currentClass == classNone {
			return r.report(node.Keyword, "Cannot use 'super' outside of a class.")
		}
		if r.currentClass == classClass {
			return r.report(node.Keyword, "Cannot use 'super' in a class with no superclass.")
		}
		r.resolveLocal(node.Keyword)
		return nil
	default:
		return nil
	}
}

// resolveVariableExpr handles a variable reference, rejecting a read of a
// local name whose own initializer is still being resolved.
func (r *Resolver) resolveVariableExpr(node *parser.IdentifierExpressionNode) error {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][node.Name.Literal]; ok && !defined {
			return r.report(node.Name, "Cannot read local variable in its own initializer.")
		}
	}
	r.resolveLocal(node.Name)
	return nil
}

// declare inserts a name into the innermost scope, marked not-yet-defined.
// Redeclaring a name in the same scope is a static error. At global level
// (no open scopes) declarations are unchecked: globals may be redefined.
func (r *Resolver) declare(name lexer.Token) error {
	if len(r.scopes) == 0 {
		return nil
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top[name.Literal]; ok {
		return r.report(name, "Variable with this name already declared in this scope.")
	}
	top[name.Literal] = false
	return nil
}

// define marks a declared name as initialized.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Literal] = true
}

// resolveLocal searches the scope stack from innermost to outermost and
// records the hop count for the token's identity. A name found in no open
// scope is a global and gets no entry.
func (r *Resolver) resolveLocal(name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Literal]; ok {
			r.prog.Locals[name.Seq] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// report formats a static error anchored at a token.
func (r *Resolver) report(tok lexer.Token, message string) error {
	return errors.New(lexer.Report(tok, message))
}
