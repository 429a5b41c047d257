/*
File    : go-lox/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// parseFunctionDeclaration parses `fun name ( params? ) block`.
// CurrToken is the `fun` keyword on entry.
func (par *Parser) parseFunctionDeclaration() StmtHandle {
	if !par.expect(lexer.IDENTIFIER_ID, "Expect function name.") {
		return par.invalidStmt()
	}
	name := par.CurrToken
	params := par.parseParameters("Expect '(' after function name.")
	body := par.parseFunctionBody()
	return par.addStmt(&FunctionStatementNode{
		Name:   name,
		Params: params,
		Body:   body,
	})
}

// parseLambdaExpression parses an anonymous function in expression
// position: `fun ( params? ) block`. CurrToken is the `fun` keyword.
func (par *Parser) parseLambdaExpression() ExprHandle {
	fun := par.CurrToken
	params := par.parseParameters("Expect '(' after 'fun'.")
	body := par.parseFunctionBody()
	return par.addExpr(&LambdaExpressionNode{
		Fun:    fun,
		Params: params,
		Body:   body,
	})
}

// parseParameters parses `( IDENT ( , IDENT )* )`, capped at 255 names.
// The caller supplies the message for a missing '(' since the context
// differs between declarations, lambdas, and methods. On return CurrToken
// is the closing ')'.
func (par *Parser) parseParameters(parenMessage string) []lexer.Token {
	params := make([]lexer.Token, 0)
	if !par.expect(lexer.LEFT_PAREN, parenMessage) {
		return params
	}
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		for {
			if !par.expect(lexer.IDENTIFIER_ID, "Expect parameter name.") {
				return params
			}
			params = append(params, par.CurrToken)
			if len(params) > 255 {
				par.addError(par.CurrToken, "Cannot have more than 255 parameters.")
			}
			if par.NextToken.Type != lexer.COMMA_DELIM {
				break
			}
			par.advance()
		}
	}
	par.expect(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	return params
}

// parseFunctionBody parses a braced statement list and returns the
// statement handles directly (functions store their body as a list, not as
// a block node; the evaluator pushes the call frame itself). CurrToken is
// the token before '{' on entry and the closing '}' on return.
func (par *Parser) parseFunctionBody() []StmtHandle {
	stmts := make([]StmtHandle, 0)
	if !par.expect(lexer.LEFT_BRACE, "Expect '{' before body.") {
		return stmts
	}
	par.advance()
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmts = append(stmts, par.parseDeclaration())
		par.advance()
	}
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError(par.CurrToken, "Expect '}' after body.")
	}
	return stmts
}
