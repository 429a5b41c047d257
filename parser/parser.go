/*
File    : go-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the GoLox programming language.

The parser converts the lexer's token vector into an Abstract Syntax Tree
stored in two arena pools: one for expressions, one for statements. Parent
nodes reference children by 32-bit handles rather than pointers. It handles:
- Expressions (binary, logical, ternary, unary, literals, identifiers)
- Statements (declarations, print, blocks, control flow, return)
- Functions, lambdas, and calls
- Classes with methods, getters, and single inheritance
- Operator precedence and associativity
- `for` loops, desugared into while loops at parse time

Key Features:
- Pratt parsing with registered prefix/infix function tables
- Error collection (doesn't stop at the first error)
- Panic-mode recovery: synchronize() skips to the next statement boundary
- 255-item cap on parameter and argument lists
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// Parser represents the parser state. It owns the token vector produced by
// the lexer, a two-token lookahead window, the program being built, and the
// list of accumulated errors.
type Parser struct {
	Tokens    []lexer.Token // Token vector from the lexer (ends with EOF)
	Pos       int           // Index of the token after NextToken
	CurrToken lexer.Token   // Current token being processed
	NextToken lexer.Token   // Next token (for lookahead)

	// Function maps for Pratt parsing.
	// These maps associate token types with their parsing functions.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix forms and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operators

	// The program under construction: expression pool, statement pool,
	// and root statement handles.
	Prog *Program

	// Collect parsing errors instead of panicking.
	// This allows reporting multiple errors in a single parse.
	// Lexer errors are carried over here as well so the caller has a
	// single place to look.
	Errors []string
}

// NewParser creates and initializes a new Parser instance for the given
// source code. The source is tokenized immediately; any lexical errors are
// carried into the parser's error list.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	tokens := lex.Tokenize()

	par := &Parser{
		Tokens: tokens,
		Errors: append([]string{}, lex.Errors...),
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt function tables,
// the program pools, and the two-token lookahead window.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Prog = NewProgram()

	// Register prefix parsing functions.
	// These handle tokens that can start an expression.

	// Literals: 42, "hello", true, false, nil
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parseNilLiteral, lexer.NIL_KEY)

	// Identifiers and the special receivers
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseThisExpression, lexer.THIS_KEY)
	par.registerUnaryFuncs(par.parseSuperExpression, lexer.SUPER_KEY)

	// Grouping: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Prefix operators: ! -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Anonymous functions in expression position: fun (params) { body }
	par.registerUnaryFuncs(par.parseLambdaExpression, lexer.FUN_KEY)

	// Register infix parsing functions.
	// These handle operators that appear between two expressions.

	// Arithmetic: + - * /
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison and equality: < <= > >= == !=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP, lexer.EQ_OP, lexer.NE_OP)

	// The comma operator (lowest precedence)
	par.registerBinaryFuncs(par.parseCommaExpression, lexer.COMMA_DELIM)

	// Short-circuit logical operators: and or
	par.registerBinaryFuncs(par.parseLogicalExpression, lexer.AND_KEY, lexer.OR_KEY)

	// Ternary conditional: cond ? then : else
	par.registerBinaryFuncs(par.parseTernaryExpression, lexer.QUESTION_OP)

	// Assignment: name = value, object.name = value
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)

	// Calls and property access: callee(args), object.name
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)
	par.registerBinaryFuncs(par.parseGetExpression, lexer.DOT_OP)

	// Prime the token lookahead by advancing twice.
	// After this, CurrToken and NextToken are both valid.
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token:
// CurrToken becomes NextToken, NextToken is read from the vector.
// Past the end of the vector the window stays parked on EOF.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	if par.Pos < len(par.Tokens) {
		par.NextToken = par.Tokens[par.Pos]
		par.Pos++
	}
}

// Parse runs the parser over the whole token vector and returns the
// program. On a parse error the offending statement is discarded and the
// parser synchronizes to the next statement boundary, so one run reports
// as many independent errors as possible. Callers must check HasErrors()
// before handing the program to the resolver.
func (par *Parser) Parse() *Program {
	for par.CurrToken.Type != lexer.EOF_TYPE {
		before := len(par.Errors)
		stmt := par.parseDeclaration()
		if len(par.Errors) > before {
			par.synchronize()
		} else {
			par.Prog.Roots = append(par.Prog.Roots, stmt)
		}
		par.advance()
	}
	return par.Prog
}

// HasErrors reports whether any lexical or parse errors were recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the accumulated error messages.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// addError records a formatted parse error anchored at a token.
func (par *Parser) addError(tok lexer.Token, message string) {
	par.Errors = append(par.Errors, lexer.Report(tok, message))
}

// expect checks that the next token has the wanted type. On success it
// advances (so CurrToken becomes that token) and returns true; on failure
// it records an error and returns false without consuming anything.
func (par *Parser) expect(tokenType lexer.TokenType, message string) bool {
	if par.NextToken.Type == tokenType {
		par.advance()
		return true
	}
	par.addError(par.NextToken, message)
	return false
}

// addExpr appends an expression node to the expression pool.
func (par *Parser) addExpr(node ExpressionNode) ExprHandle {
	return par.Prog.Exprs.Add(node)
}

// addStmt appends a statement node to the statement pool.
func (par *Parser) addStmt(node StatementNode) StmtHandle {
	return par.Prog.Stmts.Add(node)
}

// invalidExpr produces a placeholder nil literal so that parse functions
// always have a handle to return after reporting an error. The recorded
// error keeps the program from ever being evaluated.
func (par *Parser) invalidExpr() ExprHandle {
	return par.addExpr(&LiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Nil{},
	})
}

// synchronize implements panic-mode error recovery: discard tokens until
// just after a ';' or just before a statement-introducing keyword, then
// let the main loop resume parsing. This keeps one syntax error from
// drowning the rest of the file in cascading noise.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != lexer.EOF_TYPE {
		if par.CurrToken.Type == lexer.SEMICOLON_DELIM {
			return
		}
		switch par.NextToken.Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		par.advance()
	}
}
