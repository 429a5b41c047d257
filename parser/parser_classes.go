/*
File    : go-lox/parser/parser_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// parseClassDeclaration parses a class declaration:
//
//	classDecl → "class" IDENT ( "<" IDENT )? "{" method* "}"
//
// CurrToken is the `class` keyword on entry and the closing '}' on return.
func (par *Parser) parseClassDeclaration() StmtHandle {
	if !par.expect(lexer.IDENTIFIER_ID, "Expect class name.") {
		return par.invalidStmt()
	}
	name := par.CurrToken

	var super ExprHandle
	hasSuper := false
	if par.NextToken.Type == lexer.LT_OP {
		par.advance()
		if !par.expect(lexer.IDENTIFIER_ID, "Expect superclass name.") {
			return par.invalidStmt()
		}
		super = par.addExpr(&IdentifierExpressionNode{
			Name: par.CurrToken,
		})
		hasSuper = true
	}

	if !par.expect(lexer.LEFT_BRACE, "Expect '{' before class body.") {
		return par.invalidStmt()
	}

	methods := make([]StmtHandle, 0)
	par.advance()
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		methods = append(methods, par.parseMethod())
		par.advance()
	}
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError(par.CurrToken, "Expect '}' after class body.")
	}
	return par.addStmt(&ClassStatementNode{
		Name:     name,
		Methods:  methods,
		Super:    super,
		HasSuper: hasSuper,
	})
}

// parseMethod parses one member of a class body:
//
//	method → "class"? IDENT ( "(" params? ")" )? block
//
// A member without a parameter list is a getter: accessing the property
// invokes the body with no arguments. A leading `class` keyword marks a
// class method; it shares the one method table, since method lookup on a
// class value binds the class itself as receiver.
func (par *Parser) parseMethod() StmtHandle {
	if par.CurrToken.Type == lexer.CLASS_KEY {
		par.advance()
	}
	if par.CurrToken.Type != lexer.IDENTIFIER_ID {
		par.addError(par.CurrToken, "Expect method name.")
		return par.invalidStmt()
	}
	name := par.CurrToken

	if par.NextToken.Type == lexer.LEFT_PAREN {
		params := par.parseParameters("Expect '(' after method name.")
		body := par.parseFunctionBody()
		return par.addStmt(&FunctionStatementNode{
			Name:   name,
			Params: params,
			Body:   body,
		})
	}

	// No parameter list: a property getter.
	body := par.parseFunctionBody()
	return par.addStmt(&GetterStatementNode{
		Name: name,
		Body: body,
	})
}
