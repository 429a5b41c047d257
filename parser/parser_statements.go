/*
File    : go-lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// parseDeclaration parses one declaration or statement. It is entered with
// CurrToken on the first token and returns with CurrToken on the last
// (usually ';' or '}').
//
// Grammar:
//
//	declaration → classDecl | funDecl | varDecl | statement
func (par *Parser) parseDeclaration() StmtHandle {
	switch par.CurrToken.Type {
	case lexer.CLASS_KEY:
		return par.parseClassDeclaration()
	case lexer.FUN_KEY:
		// `fun name(...)` is a declaration; `fun (...)` is a lambda in an
		// expression statement.
		if par.NextToken.Type == lexer.IDENTIFIER_ID {
			return par.parseFunctionDeclaration()
		}
		return par.parseExpressionStatement()
	case lexer.VAR_KEY:
		return par.parseVarDeclaration()
	default:
		return par.parseStatement()
	}
}

// parseStatement parses one non-declaring statement.
//
// Grammar:
//
//	statement → exprStmt | printStmt | block | if | while | for | return
func (par *Parser) parseStatement() StmtHandle {
	switch par.CurrToken.Type {
	case lexer.PRINT_KEY:
		return par.parsePrintStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseVarDeclaration parses `var name ( = expression )? ;`.
// A declaration without an initializer is given a synthesized nil literal,
// flagged so the resolver can tell the two apart.
func (par *Parser) parseVarDeclaration() StmtHandle {
	if !par.expect(lexer.IDENTIFIER_ID, "Expect variable name.") {
		return par.invalidStmt()
	}
	name := par.CurrToken

	var init ExprHandle
	hasInit := false
	if par.NextToken.Type == lexer.ASSIGN_OP {
		par.advance()
		par.advance()
		init = par.parseExpression(MINIMUM_PRIORITY)
		hasInit = true
	} else {
		init = par.addExpr(&LiteralExpressionNode{
			Token: name,
			Value: &objects.Nil{},
		})
	}
	par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after variable declaration.")
	return par.addStmt(&DeclarativeStatementNode{
		Name:    name,
		Init:    init,
		HasInit: hasInit,
	})
}

// parsePrintStatement parses `print expression ;`.
func (par *Parser) parsePrintStatement() StmtHandle {
	keyword := par.CurrToken
	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after value.")
	return par.addStmt(&PrintStatementNode{
		Keyword: keyword,
		Expr:    expr,
	})
}

// parseExpressionStatement parses `expression ;`.
func (par *Parser) parseExpressionStatement() StmtHandle {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after expression.")
	return par.addStmt(&ExpressionStatementNode{
		Expr: expr,
	})
}

// parseBlockStatement parses `{ declaration* }`. CurrToken is the opening
// brace on entry and the closing brace on return.
func (par *Parser) parseBlockStatement() StmtHandle {
	brace := par.CurrToken
	stmts := make([]StmtHandle, 0)
	par.advance()
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmts = append(stmts, par.parseDeclaration())
		par.advance()
	}
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError(par.CurrToken, "Expect '}' after block.")
	}
	return par.addStmt(&BlockStatementNode{
		Brace:      brace,
		Statements: stmts,
	})
}

// parseIfStatement parses `if ( cond ) statement ( else statement )?`.
// The else binds to the nearest if, which falls out of the recursion.
func (par *Parser) parseIfStatement() StmtHandle {
	if !par.expect(lexer.LEFT_PAREN, "Expect '(' after 'if'.") {
		return par.invalidStmt()
	}
	par.advance()
	cond := par.parseExpression(MINIMUM_PRIORITY)
	if !par.expect(lexer.RIGHT_PAREN, "Expect ')' after if condition.") {
		return par.invalidStmt()
	}
	par.advance()
	thenBranch := par.parseStatement()

	var elseBranch StmtHandle
	hasElse := false
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()
		par.advance()
		elseBranch = par.parseStatement()
		hasElse = true
	}
	return par.addStmt(&IfStatementNode{
		Cond:    cond,
		Then:    thenBranch,
		Else:    elseBranch,
		HasElse: hasElse,
	})
}

// parseWhileStatement parses `while ( cond ) statement`.
func (par *Parser) parseWhileStatement() StmtHandle {
	if !par.expect(lexer.LEFT_PAREN, "Expect '(' after 'while'.") {
		return par.invalidStmt()
	}
	par.advance()
	cond := par.parseExpression(MINIMUM_PRIORITY)
	if !par.expect(lexer.RIGHT_PAREN, "Expect ')' after condition.") {
		return par.invalidStmt()
	}
	par.advance()
	body := par.parseStatement()
	return par.addStmt(&WhileStatementNode{
		Cond: cond,
		Body: body,
	})
}

// parseForStatement parses a C-style for loop and desugars it into the
// equivalent while loop at parse time:
//
//	for (init; cond; incr) body
//
// becomes
//
//	{ init; while (cond-or-true) { body; incr; } }
//
// When the body is already a brace block the increment is appended inside
// that same block; otherwise a fresh block is synthesized around body and
// increment. A pending return inside the body short-circuits the block, so
// the increment never runs after `return`.
func (par *Parser) parseForStatement() StmtHandle {
	forToken := par.CurrToken
	if !par.expect(lexer.LEFT_PAREN, "Expect '(' after 'for'.") {
		return par.invalidStmt()
	}

	// Initializer clause: empty, a var declaration, or an expression.
	var init StmtHandle
	hasInit := false
	switch par.NextToken.Type {
	case lexer.SEMICOLON_DELIM:
		par.advance()
	case lexer.VAR_KEY:
		par.advance()
		init = par.parseVarDeclaration()
		hasInit = true
	default:
		par.advance()
		init = par.parseExpressionStatement()
		hasInit = true
	}

	// Condition clause: empty means loop forever.
	var cond ExprHandle
	hasCond := false
	if par.NextToken.Type != lexer.SEMICOLON_DELIM {
		par.advance()
		cond = par.parseExpression(MINIMUM_PRIORITY)
		hasCond = true
	}
	par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after loop condition.")

	// Increment clause.
	var incr ExprHandle
	hasIncr := false
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		incr = par.parseExpression(MINIMUM_PRIORITY)
		hasIncr = true
	}
	par.expect(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	par.advance()
	body := par.parseStatement()

	// Desugar: fold the increment into the loop body.
	if hasIncr {
		incrStmt := par.addStmt(&ExpressionStatementNode{Expr: incr})
		if block, ok := par.Prog.Stmt(body).(*BlockStatementNode); ok {
			block.Statements = append(block.Statements, incrStmt)
		} else {
			body = par.addStmt(&BlockStatementNode{
				Brace:      forToken,
				Statements: []StmtHandle{body, incrStmt},
			})
		}
	}

	if !hasCond {
		cond = par.addExpr(&LiteralExpressionNode{
			Token: forToken,
			Value: &objects.Boolean{Value: true},
		})
	}
	loop := par.addStmt(&WhileStatementNode{
		Cond: cond,
		Body: body,
	})

	outer := make([]StmtHandle, 0, 2)
	if hasInit {
		outer = append(outer, init)
	}
	outer = append(outer, loop)
	return par.addStmt(&BlockStatementNode{
		Brace:      forToken,
		Statements: outer,
	})
}

// parseReturnStatement parses `return expression? ;`.
func (par *Parser) parseReturnStatement() StmtHandle {
	keyword := par.CurrToken

	var value ExprHandle
	hasValue := false
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	} else {
		par.advance()
		value = par.parseExpression(MINIMUM_PRIORITY)
		hasValue = true
		par.expect(lexer.SEMICOLON_DELIM, "Expect ';' after return value.")
	}
	return par.addStmt(&ReturnStatementNode{
		Keyword:  keyword,
		Value:    value,
		HasValue: hasValue,
	})
}

// invalidStmt produces a placeholder statement so that parse functions
// always have a handle to return after reporting an error.
func (par *Parser) invalidStmt() StmtHandle {
	return par.addStmt(&ExpressionStatementNode{
		Expr: par.invalidExpr(),
	})
}
