/*
File    : go-lox/parser/parser_statements_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/stretchr/testify/assert"
)

func TestParser_Parse_VarDeclaration(t *testing.T) {

	src := `var a = 1; var b;`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	assert.Equal(t, 2, len(prog.Roots))

	withInit := prog.Stmt(prog.Roots[0]).(*DeclarativeStatementNode)
	assert.Equal(t, "a", withInit.Name.Literal)
	assert.True(t, withInit.HasInit)

	withoutInit := prog.Stmt(prog.Roots[1]).(*DeclarativeStatementNode)
	assert.Equal(t, "b", withoutInit.Name.Literal)
	assert.False(t, withoutInit.HasInit)
	// The synthesized initializer is a nil literal.
	lit, can := prog.Expr(withoutInit.Init).(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "nil", lit.Value.ToString())
}

func TestParser_Parse_PrintStatement(t *testing.T) {

	src := `print 1 + 2;`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	stmt, can := prog.Stmt(prog.Roots[0]).(*PrintStatementNode)
	assert.True(t, can)
	_, can = prog.Expr(stmt.Expr).(*BinaryExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_BlockStatement(t *testing.T) {

	src := `{ var a = 1; print a; }`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	block, can := prog.Stmt(prog.Roots[0]).(*BlockStatementNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(block.Statements))
}

func TestParser_Parse_IfElseStatement(t *testing.T) {

	src := `if (a) print 1; else print 2;`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	ifStmt, can := prog.Stmt(prog.Roots[0]).(*IfStatementNode)
	assert.True(t, can)
	assert.True(t, ifStmt.HasElse)

	_, can = prog.Stmt(ifStmt.Then).(*PrintStatementNode)
	assert.True(t, can)
	_, can = prog.Stmt(ifStmt.Else).(*PrintStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_WhileStatement(t *testing.T) {

	src := `while (a < 3) a = a + 1;`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	while, can := prog.Stmt(prog.Roots[0]).(*WhileStatementNode)
	assert.True(t, can)
	_, can = prog.Expr(while.Cond).(*BinaryExpressionNode)
	assert.True(t, can)
}

// A full for loop desugars into { init; while (cond) { body; incr; } }.
func TestParser_Parse_ForStatementDesugars(t *testing.T) {

	src := `for (var i = 0; i < 3; i = i + 1) print i;`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	outer, can := prog.Stmt(prog.Roots[0]).(*BlockStatementNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(outer.Statements))

	_, can = prog.Stmt(outer.Statements[0]).(*DeclarativeStatementNode)
	assert.True(t, can)

	while, can := prog.Stmt(outer.Statements[1]).(*WhileStatementNode)
	assert.True(t, can)

	body, can := prog.Stmt(while.Body).(*BlockStatementNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(body.Statements))

	// The synthesized tail statement is the increment expression.
	incr, can := prog.Stmt(body.Statements[1]).(*ExpressionStatementNode)
	assert.True(t, can)
	_, can = prog.Expr(incr.Expr).(*AssignmentExpressionNode)
	assert.True(t, can)
}

// When the for-body is already a brace block, the increment is appended
// inside that same block.
func TestParser_Parse_ForStatementAppendsIncrementIntoBlockBody(t *testing.T) {

	src := `for (var i = 0; i < 3; i = i + 1) { print i; }`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	outer := prog.Stmt(prog.Roots[0]).(*BlockStatementNode)
	while := prog.Stmt(outer.Statements[1]).(*WhileStatementNode)
	body := prog.Stmt(while.Body).(*BlockStatementNode)

	assert.Equal(t, 2, len(body.Statements))
	_, can := prog.Stmt(body.Statements[0]).(*PrintStatementNode)
	assert.True(t, can)
	_, can = prog.Stmt(body.Statements[1]).(*ExpressionStatementNode)
	assert.True(t, can)
}

// An empty condition loops forever: while (true).
func TestParser_Parse_ForStatementEmptyClauses(t *testing.T) {

	src := `for (;;) print 1;`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	outer := prog.Stmt(prog.Roots[0]).(*BlockStatementNode)
	assert.Equal(t, 1, len(outer.Statements))

	while, can := prog.Stmt(outer.Statements[0]).(*WhileStatementNode)
	assert.True(t, can)
	cond, can := prog.Expr(while.Cond).(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "true", cond.Value.ToString())
}

func TestParser_Parse_ReturnStatement(t *testing.T) {

	src := `fun f() { return 1; } fun g() { return; }`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	f := prog.Stmt(prog.Roots[0]).(*FunctionStatementNode)
	ret := prog.Stmt(f.Body[0]).(*ReturnStatementNode)
	assert.True(t, ret.HasValue)

	g := prog.Stmt(prog.Roots[1]).(*FunctionStatementNode)
	bare := prog.Stmt(g.Body[0]).(*ReturnStatementNode)
	assert.False(t, bare.HasValue)
}

func TestParser_Parse_FunctionDeclaration(t *testing.T) {

	src := `fun add(a, b) { return a + b; }`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	fn, can := prog.Stmt(prog.Roots[0]).(*FunctionStatementNode)
	assert.True(t, can)
	assert.Equal(t, "add", fn.Name.Literal)
	assert.Equal(t, 2, len(fn.Params))
	assert.Equal(t, "a", fn.Params[0].Literal)
	assert.Equal(t, "b", fn.Params[1].Literal)
	assert.Equal(t, 1, len(fn.Body))
}

func TestParser_Parse_ClassDeclaration(t *testing.T) {

	src := `
class Bagel {
  init(kind) { this.kind = kind; }
  eat() { print "munch"; }
  description { return this.kind; }
}`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	class, can := prog.Stmt(prog.Roots[0]).(*ClassStatementNode)
	assert.True(t, can)
	assert.Equal(t, "Bagel", class.Name.Literal)
	assert.False(t, class.HasSuper)
	assert.Equal(t, 3, len(class.Methods))

	init, can := prog.Stmt(class.Methods[0]).(*FunctionStatementNode)
	assert.True(t, can)
	assert.Equal(t, "init", init.Name.Literal)

	eat, can := prog.Stmt(class.Methods[1]).(*FunctionStatementNode)
	assert.True(t, can)
	assert.Equal(t, "eat", eat.Name.Literal)

	// A member without a parameter list is a getter.
	desc, can := prog.Stmt(class.Methods[2]).(*GetterStatementNode)
	assert.True(t, can)
	assert.Equal(t, "description", desc.Name.Literal)
}

func TestParser_Parse_ClassWithSuperclass(t *testing.T) {

	src := `class B < A { greet() { super.greet(); } }`
	par := NewParser(src)
	prog := par.Parse()

	assert.False(t, par.HasErrors())
	class := prog.Stmt(prog.Roots[0]).(*ClassStatementNode)
	assert.True(t, class.HasSuper)

	super, can := prog.Expr(class.Super).(*IdentifierExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "A", super.Name.Literal)
}

// synchronize skips to the next statement boundary so independent errors
// are reported in a single parse, and valid trailing statements survive.
func TestParser_Parse_SynchronizeRecoversAtStatementBoundary(t *testing.T) {

	src := `var = 1; print 2;`
	par := NewParser(src)
	prog := par.Parse()

	assert.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Expect variable name.")

	assert.Equal(t, 1, len(prog.Roots))
	_, can := prog.Stmt(prog.Roots[0]).(*PrintStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_MultipleErrorsInOnePass(t *testing.T) {

	src := `var = 1;
print ;
var ok = 3;`
	par := NewParser(src)
	prog := par.Parse()

	assert.GreaterOrEqual(t, len(par.GetErrors()), 2)
	// The last statement is intact despite two earlier errors.
	last := prog.Stmt(prog.Roots[len(prog.Roots)-1]).(*DeclarativeStatementNode)
	assert.Equal(t, "ok", last.Name.Literal)
}

func TestParser_Parse_LexerErrorsAreCarried(t *testing.T) {

	src := `var s = "unterminated`
	par := NewParser(src)
	par.Parse()

	assert.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Unterminated string.")
}

func TestParser_Parse_EofReportsAtEnd(t *testing.T) {

	src := `print 1`
	par := NewParser(src)
	par.Parse()

	assert.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Error at end")
}

func TestParser_Parse_TokensEndWithEof(t *testing.T) {

	par := NewParser(`var a = 1;`)
	last := par.Tokens[len(par.Tokens)-1]
	assert.Equal(t, lexer.EOF_TYPE, last.Type)
}
