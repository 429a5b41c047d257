/*
File    : go-lox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/arena"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// ExprHandle is an opaque 32-bit index into a program's expression pool.
type ExprHandle uint32

// StmtHandle is an opaque 32-bit index into a program's statement pool.
type StmtHandle uint32

// StatementNode is the base interface for all statement nodes.
// Statement() is a marker method; dispatch happens by type switch in the
// resolver and the evaluator.
type StatementNode interface {
	Statement()
}

// ExpressionNode is the base interface for all expression nodes.
// Expression() is a marker method; dispatch happens by type switch in the
// resolver and the evaluator.
type ExpressionNode interface {
	Expression()
}

// Program is the parser's output: the two node pools, the list of top-level
// statement handles in source order, and the locals map the resolver fills
// in afterwards. The pools are frozen once parsing completes.
type Program struct {
	Exprs *arena.Pool[ExpressionNode, ExprHandle] // All expression nodes
	Stmts *arena.Pool[StatementNode, StmtHandle]  // All statement nodes
	Roots []StmtHandle                            // Top-level statements

	// Locals maps a token's Seq to the number of scope frames between its
	// use site and the frame that binds the name. Written by the resolver;
	// names without an entry are globals.
	Locals map[uint32]int
}

// NewProgram creates an empty program with fresh pools.
func NewProgram() *Program {
	return &Program{
		Exprs:  arena.NewPool[ExpressionNode, ExprHandle](),
		Stmts:  arena.NewPool[StatementNode, StmtHandle](),
		Roots:  make([]StmtHandle, 0),
		Locals: make(map[uint32]int),
	}
}

// Expr returns the expression node behind a handle.
func (prog *Program) Expr(h ExprHandle) ExpressionNode {
	return prog.Exprs.Get(h)
}

// Stmt returns the statement node behind a handle.
func (prog *Program) Stmt(h StmtHandle) StatementNode {
	return prog.Stmts.Get(h)
}

// ----------------------------------------------------------------------
// Expression nodes
// ----------------------------------------------------------------------

// LiteralExpressionNode represents a literal value: a number, a string,
// true, false, or nil. The value is computed once at parse time.
type LiteralExpressionNode struct {
	Token lexer.Token         // The literal token from the source
	Value objects.GoLoxObject // The runtime value of the literal
}

func (node *LiteralExpressionNode) Expression() {}

// IdentifierExpressionNode represents a variable reference.
type IdentifierExpressionNode struct {
	Name lexer.Token // The identifier token (its Seq is the resolver key)
}

func (node *IdentifierExpressionNode) Expression() {}

// AssignmentExpressionNode represents `name = value`.
type AssignmentExpressionNode struct {
	Name  lexer.Token // The assignment target identifier
	Value ExprHandle  // The right-hand side expression
}

func (node *AssignmentExpressionNode) Expression() {}

// BinaryExpressionNode represents a binary operation with two operands,
// including the comma operator (which evaluates both sides and yields the
// right one).
type BinaryExpressionNode struct {
	Operation lexer.Token // The binary operator token
	Left      ExprHandle  // Left operand
	Right     ExprHandle  // Right operand
}

func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode represents `and` / `or`. Unlike BinaryExpressionNode
// the right operand is only evaluated when the left one does not decide the
// outcome, and the result is the deciding operand itself, not a boolean.
type LogicalExpressionNode struct {
	Operation lexer.Token // The `and` or `or` token
	Left      ExprHandle  // Left operand
	Right     ExprHandle  // Right operand
}

func (node *LogicalExpressionNode) Expression() {}

// TernaryExpressionNode represents `cond ? then : else`. Only the chosen
// arm is evaluated.
type TernaryExpressionNode struct {
	Question lexer.Token // The '?' token (for error reporting)
	Cond     ExprHandle  // Condition
	Then     ExprHandle  // Value when the condition is truthy
	Else     ExprHandle  // Value when the condition is falsey
}

func (node *TernaryExpressionNode) Expression() {}

// ParenthesizedExpressionNode represents a grouped expression `(expr)`.
type ParenthesizedExpressionNode struct {
	Expr ExprHandle // The inner expression
}

func (node *ParenthesizedExpressionNode) Expression() {}

// UnaryExpressionNode represents a prefix operation: `-x` or `!x`.
type UnaryExpressionNode struct {
	Operation lexer.Token // The unary operator token
	Right     ExprHandle  // The operand
}

func (node *UnaryExpressionNode) Expression() {}

// CallExpressionNode represents a call: `callee(arg1, arg2)`.
type CallExpressionNode struct {
	Callee ExprHandle   // The expression being called
	Paren  lexer.Token  // The closing ')' token (for error line numbers)
	Args   []ExprHandle // Argument expressions, at most 255
}

func (node *CallExpressionNode) Expression() {}

// LambdaExpressionNode represents an anonymous function literal:
// `fun (params) { body }`.
type LambdaExpressionNode struct {
	Fun    lexer.Token   // The `fun` keyword token
	Params []lexer.Token // Parameter name tokens
	Body   []StmtHandle  // Body statements
}

func (node *LambdaExpressionNode) Expression() {}

// GetExpressionNode represents property access: `object.name`.
type GetExpressionNode struct {
	Object ExprHandle  // The expression whose property is read
	Name   lexer.Token // The property name token
}

func (node *GetExpressionNode) Expression() {}

// SetExpressionNode represents property assignment: `object.name = value`.
type SetExpressionNode struct {
	Object ExprHandle  // The expression whose property is written
	Name   lexer.Token // The property name token
	Value  ExprHandle  // The value being assigned
}

func (node *SetExpressionNode) Expression() {}

// ThisExpressionNode represents the `this` keyword inside a method.
type ThisExpressionNode struct {
	Keyword lexer.Token // The `this` token (its Seq is the resolver key)
}

func (node *ThisExpressionNode) Expression() {}

// SuperExpressionNode represents `super.method` inside a subclass method.
type SuperExpressionNode struct {
	Keyword lexer.Token // The `super` token (its Seq is the resolver key)
	Method  lexer.Token // The method name after the dot
}

func (node *SuperExpressionNode) Expression() {}

// ----------------------------------------------------------------------
// Statement nodes
// ----------------------------------------------------------------------

// ExpressionStatementNode wraps an expression evaluated for its effects.
type ExpressionStatementNode struct {
	Expr ExprHandle // The wrapped expression
}

func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode represents `print expr;`.
type PrintStatementNode struct {
	Keyword lexer.Token // The `print` token
	Expr    ExprHandle  // The expression whose value is printed
}

func (node *PrintStatementNode) Statement() {}

// DeclarativeStatementNode represents `var name = init;`. A declaration
// without an initializer gets a synthesized nil literal.
type DeclarativeStatementNode struct {
	Name    lexer.Token // The declared identifier
	Init    ExprHandle  // Initializer expression (nil literal when absent)
	HasInit bool        // Whether the source spelled an initializer
}

func (node *DeclarativeStatementNode) Statement() {}

// BlockStatementNode represents `{ stmt* }`. Entering a block pushes a new
// scope frame; leaving pops it.
type BlockStatementNode struct {
	Brace      lexer.Token  // The opening '{' token
	Statements []StmtHandle // Statements in source order
}

func (node *BlockStatementNode) Statement() {}

// IfStatementNode represents `if (cond) then else?`.
type IfStatementNode struct {
	Cond    ExprHandle // Condition
	Then    StmtHandle // Statement when truthy
	Else    StmtHandle // Statement when falsey (valid iff HasElse)
	HasElse bool       // Whether an else branch exists
}

func (node *IfStatementNode) Statement() {}

// WhileStatementNode represents `while (cond) body`. `for` loops are
// desugared into this node at parse time.
type WhileStatementNode struct {
	Cond ExprHandle // Condition, re-evaluated each iteration
	Body StmtHandle // Loop body
}

func (node *WhileStatementNode) Statement() {}

// FunctionStatementNode represents `fun name(params) { body }` and named
// methods inside class bodies.
type FunctionStatementNode struct {
	Name   lexer.Token   // Function or method name
	Params []lexer.Token // Parameter name tokens
	Body   []StmtHandle  // Body statements
}

func (node *FunctionStatementNode) Statement() {}

// GetterStatementNode represents a parameterless property getter inside a
// class body: `name { body }`. Accessing the property invokes the body.
type GetterStatementNode struct {
	Name lexer.Token  // Getter name
	Body []StmtHandle // Body statements
}

func (node *GetterStatementNode) Statement() {}

// ReturnStatementNode represents `return expr?;`.
type ReturnStatementNode struct {
	Keyword  lexer.Token // The `return` token
	Value    ExprHandle  // Returned expression (valid iff HasValue)
	HasValue bool        // Whether a value was spelled
}

func (node *ReturnStatementNode) Statement() {}

// ClassStatementNode represents a class declaration with its methods and
// optional superclass.
type ClassStatementNode struct {
	Name     lexer.Token  // Class name
	Methods  []StmtHandle // FunctionStatementNode / GetterStatementNode handles
	Super    ExprHandle   // Superclass identifier expression (valid iff HasSuper)
	HasSuper bool         // Whether a superclass was spelled
}

func (node *ClassStatementNode) Statement() {}
