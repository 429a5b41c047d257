/*
File    : go-lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// evalExpr dispatches on the expression node's type.
func (e *Evaluator) evalExpr(handle parser.ExprHandle) objects.GoLoxObject {
	switch node := e.Prog.Expr(handle).(type) {
	case *parser.LiteralExpressionNode:
		return node.Value
	case *parser.ParenthesizedExpressionNode:
		return e.evalExpr(node.Expr)
	case *parser.IdentifierExpressionNode:
		return e.lookupVariable(node.Name)
	case *parser.ThisExpressionNode:
		return e.lookupVariable(node.Keyword)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(node)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(node)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(node)
	case *parser.TernaryExpressionNode:
		return e.evalTernaryExpression(node)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(node)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(node)
	case *parser.LambdaExpressionNode:
		return e.evalLambdaExpression(node)
	case *parser.GetExpressionNode:
		return e.evalGetExpression(node)
	case *parser.SetExpressionNode:
		return e.evalSetExpression(node)
	case *parser.SuperExpressionNode:
		return e.evalSuperExpression(node)
	default:
		return &objects.Nil{}
	}
}

// lookupVariable reads a name. Names the resolver classified as local are
// fetched from the frame at the recorded depth; everything else is a
// global. Used for both ordinary identifiers and `this`.
func (e *Evaluator) lookupVariable(name lexer.Token) objects.GoLoxObject {
	if depth, ok := e.Prog.Locals[name.Seq]; ok {
		if value, found := e.Scp.GetAt(name.Literal, depth); found {
			return value
		}
	} else if value, found := e.Globals.LookUp(name.Literal); found {
		return value
	}
	return e.CreateError(name, "Undefined variable '%s'.", name.Literal)
}

// evalAssignmentExpression evaluates the right side and writes it through
// the resolver's depth for locals, or into the globals frame otherwise.
// The assigned value is the expression's value.
func (e *Evaluator) evalAssignmentExpression(node *parser.AssignmentExpressionNode) objects.GoLoxObject {
	value := e.evalExpr(node.Value)
	if IsError(value) {
		return value
	}
	if depth, ok := e.Prog.Locals[node.Name.Seq]; ok {
		if !e.Scp.AssignAt(node.Name.Literal, value, depth) {
			return e.CreateError(node.Name, "Undefined variable '%s'.", node.Name.Literal)
		}
	} else if !e.Globals.Assign(node.Name.Literal, value) {
		return e.CreateError(node.Name, "Undefined variable '%s'.", node.Name.Literal)
	}
	return value
}

// evalLogicalExpression implements short-circuit `and` / `or`. The result
// is the deciding operand itself, not a boolean.
func (e *Evaluator) evalLogicalExpression(node *parser.LogicalExpressionNode) objects.GoLoxObject {
	left := e.evalExpr(node.Left)
	if IsError(left) {
		return left
	}
	if node.Operation.Type == lexer.OR_KEY {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}
	return e.evalExpr(node.Right)
}

// evalTernaryExpression evaluates the condition and only the chosen arm.
func (e *Evaluator) evalTernaryExpression(node *parser.TernaryExpressionNode) objects.GoLoxObject {
	cond := e.evalExpr(node.Cond)
	if IsError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.evalExpr(node.Then)
	}
	return e.evalExpr(node.Else)
}

// evalUnaryExpression implements prefix `-` (numeric negation) and `!`
// (logical negation of truthiness).
func (e *Evaluator) evalUnaryExpression(node *parser.UnaryExpressionNode) objects.GoLoxObject {
	operand := e.evalExpr(node.Right)
	if IsError(operand) {
		return operand
	}
	switch node.Operation.Type {
	case lexer.MINUS_OP:
		number, ok := operand.(*objects.Number)
		if !ok {
			return e.CreateError(node.Operation, "Operand must be a number.")
		}
		return &objects.Number{Value: -number.Value}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !isTruthy(operand)}
	default:
		return e.CreateError(node.Operation, "Unknown unary operator '%s'.", node.Operation.Literal)
	}
}

// evalBinaryExpression evaluates both operands left-to-right, then
// dispatches on the operator. The comma operator discards the left value
// after evaluating it for its effects.
func (e *Evaluator) evalBinaryExpression(node *parser.BinaryExpressionNode) objects.GoLoxObject {
	left := e.evalExpr(node.Left)
	if IsError(left) {
		return left
	}
	right := e.evalExpr(node.Right)
	if IsError(right) {
		return right
	}

	op := node.Operation
	switch op.Type {
	case lexer.COMMA_DELIM:
		return right

	case lexer.PLUS_OP:
		if ln, lok := left.(*objects.Number); lok {
			if rn, rok := right.(*objects.Number); rok {
				return &objects.Number{Value: ln.Value + rn.Value}
			}
		}
		// String concatenation coerces the other operand to its display
		// form, whatever it is.
		if left.GetType() == objects.StringType || right.GetType() == objects.StringType {
			return &objects.String{Value: left.ToString() + right.ToString()}
		}
		return e.CreateError(op, "Operands must be two numbers or two strings.")

	case lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return e.CreateError(op, "Operands must be numbers.")
		}
		switch op.Type {
		case lexer.MINUS_OP:
			return &objects.Number{Value: ln - rn}
		case lexer.MUL_OP:
			return &objects.Number{Value: ln * rn}
		default:
			if rn == 0 {
				return e.CreateError(op, "Cannot divide by zero.")
			}
			return &objects.Number{Value: ln / rn}
		}

	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return e.CreateError(op, "Operands must be numbers.")
		}
		switch op.Type {
		case lexer.LT_OP:
			return &objects.Boolean{Value: ln < rn}
		case lexer.LE_OP:
			return &objects.Boolean{Value: ln <= rn}
		case lexer.GT_OP:
			return &objects.Boolean{Value: ln > rn}
		default:
			return &objects.Boolean{Value: ln >= rn}
		}

	case lexer.EQ_OP:
		return &objects.Boolean{Value: isEqual(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !isEqual(left, right)}

	default:
		return e.CreateError(op, "Unknown binary operator '%s'.", op.Literal)
	}
}

// evalCallExpression evaluates the callee and the arguments left-to-right,
// then invokes: functions run their body, classes construct an instance
// (running `init` when defined), anything else is an error.
func (e *Evaluator) evalCallExpression(node *parser.CallExpressionNode) objects.GoLoxObject {
	callee := e.evalExpr(node.Callee)
	if IsError(callee) {
		return callee
	}
	args := make([]objects.GoLoxObject, 0, len(node.Args))
	for _, argHandle := range node.Args {
		arg := e.evalExpr(argHandle)
		if IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch callable := callee.(type) {
	case *function.Function:
		return e.CallFunction(callable, args, node.Paren)
	case *function.Class:
		return e.constructInstance(callable, args, node.Paren)
	default:
		return e.CreateError(node.Paren, "Can only call functions and classes.")
	}
}

// evalLambdaExpression constructs an anonymous function value closing over
// the current environment.
func (e *Evaluator) evalLambdaExpression(node *parser.LambdaExpressionNode) objects.GoLoxObject {
	return &function.Function{
		Params: node.Params,
		Body:   node.Body,
		Prog:   e.Prog,
		Scp:    e.Scp,
	}
}
