/*
File    : go-lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// parseExpression is the heart of the Pratt algorithm. It parses the
// expression starting at CurrToken, consuming infix operators for as long
// as their precedence is strictly higher than the given floor. On return
// CurrToken sits on the last token of the expression.
func (par *Parser) parseExpression(priority int) ExprHandle {
	unary, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addError(par.CurrToken, "Expect expression.")
		return par.invalidExpr()
	}
	left := unary()

	for priority < getPrecedence(&par.NextToken) {
		binary, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			break
		}
		par.advance()
		left = binary(left)
	}
	return left
}

// parseBinaryExpression parses an arithmetic, comparison, or equality
// operator. CurrToken is the operator; the right operand is parsed at the
// operator's own precedence, which yields left associativity.
func (par *Parser) parseBinaryExpression(left ExprHandle) ExprHandle {
	operation := par.CurrToken
	priority := getPrecedence(&operation)
	par.advance()
	right := par.parseExpression(priority)
	return par.addExpr(&BinaryExpressionNode{
		Operation: operation,
		Left:      left,
		Right:     right,
	})
}

// parseLogicalExpression parses `and` / `or`. The node is distinct from
// BinaryExpressionNode because evaluation short-circuits.
func (par *Parser) parseLogicalExpression(left ExprHandle) ExprHandle {
	operation := par.CurrToken
	priority := getPrecedence(&operation)
	par.advance()
	right := par.parseExpression(priority)
	return par.addExpr(&LogicalExpressionNode{
		Operation: operation,
		Left:      left,
		Right:     right,
	})
}

// parseCommaExpression parses the comma operator. The right operand parses
// at equality level (the grammar's `comma → assignment ( "," equality )*`),
// so assignments cannot appear to the right of a comma without parentheses.
func (par *Parser) parseCommaExpression(left ExprHandle) ExprHandle {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpression(TERNARY_PRIORITY)
	return par.addExpr(&BinaryExpressionNode{
		Operation: operation,
		Left:      left,
		Right:     right,
	})
}

// parseTernaryExpression parses `cond ? then : else`. The then-arm is a
// full expression (it is bracketed by '?' and ':'); the else-arm parses
// just below ternary precedence, which makes chained ternaries
// right-associative and keeps the comma operator outside.
func (par *Parser) parseTernaryExpression(cond ExprHandle) ExprHandle {
	question := par.CurrToken
	par.advance()
	thenArm := par.parseExpression(MINIMUM_PRIORITY)
	if !par.expect(lexer.COLON_DELIM, "Expect ':' in ternary expression.") {
		return par.invalidExpr()
	}
	par.advance()
	elseArm := par.parseExpression(TERNARY_PRIORITY - 1)
	return par.addExpr(&TernaryExpressionNode{
		Question: question,
		Cond:     cond,
		Then:     thenArm,
		Else:     elseArm,
	})
}

// parseUnaryExpression parses a prefix operator (`!` or `-`) and its
// operand. Unary operators nest: !!x parses as !(!x).
func (par *Parser) parseUnaryExpression() ExprHandle {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpression(PREFIX_PRIORITY)
	return par.addExpr(&UnaryExpressionNode{
		Operation: operation,
		Right:     right,
	})
}

// parseAssignmentExpression parses `target = value`. The left side has
// already been parsed as an ordinary expression; only identifiers and
// property accesses are valid targets. The right side parses just below
// assignment precedence, giving right associativity (a = b = c).
func (par *Parser) parseAssignmentExpression(left ExprHandle) ExprHandle {
	equals := par.CurrToken
	par.advance()
	value := par.parseExpression(ASSIGN_PRIORITY - 1)

	switch target := par.Prog.Expr(left).(type) {
	case *IdentifierExpressionNode:
		return par.addExpr(&AssignmentExpressionNode{
			Name:  target.Name,
			Value: value,
		})
	case *GetExpressionNode:
		return par.addExpr(&SetExpressionNode{
			Object: target.Object,
			Name:   target.Name,
			Value:  value,
		})
	default:
		par.addError(equals, "Invalid assignment target.")
		return par.invalidExpr()
	}
}

// parseCallExpression parses the argument list of a call. CurrToken is the
// opening '('; on return CurrToken is the closing ')'. Arguments parse at
// assignment level so that the comma stays a separator, and the list is
// capped at 255 items.
func (par *Parser) parseCallExpression(callee ExprHandle) ExprHandle {
	args := make([]ExprHandle, 0)
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		for {
			par.advance()
			args = append(args, par.parseExpression(ASSIGN_PRIORITY-1))
			if len(args) > 255 {
				par.addError(par.CurrToken, "Cannot have more than 255 arguments.")
			}
			if par.NextToken.Type != lexer.COMMA_DELIM {
				break
			}
			par.advance()
		}
	}
	if !par.expect(lexer.RIGHT_PAREN, "Expect ')' after arguments.") {
		return par.invalidExpr()
	}
	return par.addExpr(&CallExpressionNode{
		Callee: callee,
		Paren:  par.CurrToken,
		Args:   args,
	})
}

// parseGetExpression parses property access: `object.name`. Whether this
// stays a read or becomes a write is decided later by the assignment
// parser, which rewrites a Get target into a Set node.
func (par *Parser) parseGetExpression(object ExprHandle) ExprHandle {
	if !par.expect(lexer.IDENTIFIER_ID, "Expect property name after '.'.") {
		return par.invalidExpr()
	}
	return par.addExpr(&GetExpressionNode{
		Object: object,
		Name:   par.CurrToken,
	})
}
