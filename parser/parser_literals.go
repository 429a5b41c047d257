/*
File    : go-lox/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// parseNumberLiteral parses a numeric literal. The lexer accepts any digit
// run with embedded dots; the spelling is validated here, so "1.2.3"
// surfaces as a parse error rather than a lexer error.
func (par *Parser) parseNumberLiteral() ExprHandle {
	token := par.CurrToken
	value, err := strconv.ParseFloat(token.Literal, 64)
	if err != nil {
		par.addError(token, "Invalid number literal.")
		return par.invalidExpr()
	}
	return par.addExpr(&LiteralExpressionNode{
		Token: token,
		Value: &objects.Number{Value: value},
	})
}

// parseStringLiteral parses a string literal. The lexer already stripped
// the surrounding quotes.
func (par *Parser) parseStringLiteral() ExprHandle {
	token := par.CurrToken
	return par.addExpr(&LiteralExpressionNode{
		Token: token,
		Value: &objects.String{Value: token.Literal},
	})
}

// parseBooleanLiteral parses `true` or `false`.
func (par *Parser) parseBooleanLiteral() ExprHandle {
	token := par.CurrToken
	return par.addExpr(&LiteralExpressionNode{
		Token: token,
		Value: &objects.Boolean{Value: token.Type == lexer.TRUE_KEY},
	})
}

// parseNilLiteral parses `nil`.
func (par *Parser) parseNilLiteral() ExprHandle {
	return par.addExpr(&LiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Nil{},
	})
}

// parseIdentifierExpression parses a variable reference.
func (par *Parser) parseIdentifierExpression() ExprHandle {
	return par.addExpr(&IdentifierExpressionNode{
		Name: par.CurrToken,
	})
}

// parseThisExpression parses the `this` keyword.
func (par *Parser) parseThisExpression() ExprHandle {
	return par.addExpr(&ThisExpressionNode{
		Keyword: par.CurrToken,
	})
}

// parseSuperExpression parses `super.method`. A bare `super` is not an
// expression on its own.
func (par *Parser) parseSuperExpression() ExprHandle {
	keyword := par.CurrToken
	if !par.expect(lexer.DOT_OP, "Expect '.' after 'super'.") {
		return par.invalidExpr()
	}
	if !par.expect(lexer.IDENTIFIER_ID, "Expect superclass method name.") {
		return par.invalidExpr()
	}
	return par.addExpr(&SuperExpressionNode{
		Keyword: keyword,
		Method:  par.CurrToken,
	})
}

// parseParenthesizedExpression parses a grouped expression `(expr)`.
// The full comma-level grammar applies inside the parentheses.
func (par *Parser) parseParenthesizedExpression() ExprHandle {
	par.advance()
	inner := par.parseExpression(MINIMUM_PRIORITY)
	if !par.expect(lexer.RIGHT_PAREN, "Expect ')' after expression.") {
		return par.invalidExpr()
	}
	return par.addExpr(&ParenthesizedExpressionNode{
		Expr: inner,
	})
}
