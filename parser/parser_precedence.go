/*
File    : go-lox/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-lox/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
// 1. Comma operator (the top expression production)
// 2. Assignment (right-to-left associativity)
// 3. Logical OR
// 4. Logical AND
// 5. Ternary conditional
// 6. Equality operators
// 7. Relational operators
// 8. Additive operators
// 9. Multiplicative operators
// 10. Unary/Prefix operators
// 11. Calls and property access (postfix)
//
// Example: In "a + b * c", multiplication has higher precedence than
// addition, so it's parsed as "a + (b * c)" rather than "(a + b) * c".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Comma operator: a, b (evaluates both, yields b)
	COMMA_PRIORITY = 5

	// Assignment (right-to-left associativity)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical OR: or
	OR_PRIORITY = 40

	// Logical AND: and
	AND_PRIORITY = 50

	// Ternary conditional: cond ? then : else
	TERNARY_PRIORITY = 55

	// Equality operators: == !=
	EQUALITY_PRIORITY = 90

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 100

	// Additive operators: + -
	PLUS_PRIORITY = 120

	// Multiplicative operators: * /
	MUL_PRIORITY = 130

	// Unary/Prefix operators: ! -
	PREFIX_PRIORITY = 140

	// Calls and property access (postfix): callee(args), object.name
	CALL_PRIORITY = 160
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands. Returns -1 for tokens
// that are not infix operators, which stops expression parsing.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Calls and property access - highest precedence
	case lexer.LEFT_PAREN, lexer.DOT_OP:
		return CALL_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Relational: < > <= >=
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Ternary conditional: ?
	case lexer.QUESTION_OP:
		return TERNARY_PRIORITY

	// Logical AND: and
	case lexer.AND_KEY:
		return AND_PRIORITY

	// Logical OR: or
	case lexer.OR_KEY:
		return OR_PRIORITY

	// Assignment (lowest operator precedence above comma)
	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY

	// Comma operator
	case lexer.COMMA_DELIM:
		return COMMA_PRIORITY

	default:
		return -1 // Not an infix operator token
	}
}

// binaryParseFunction is a function type for parsing infix expressions.
// The already-parsed left operand's handle is passed in; the function is
// entered with CurrToken on the operator and returns the complete
// expression's handle.
type binaryParseFunction func(ExprHandle) ExprHandle

// unaryParseFunction is a function type for parsing prefix expressions and
// literals. The function is entered with CurrToken on the first token of
// the expression and leaves it on the last.
type unaryParseFunction func() ExprHandle

// registerUnaryFuncs is a helper to register a prefix parsing function
// for multiple token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register an infix parsing function
// for multiple token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
