/*
File    : go-lox/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/objects"
)

// IsError reports whether an evaluation result is a runtime error.
// Evaluation code checks this after every sub-evaluation so errors
// propagate outward without being wrapped or lost.
func IsError(obj objects.GoLoxObject) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == objects.ErrorType
}

// isTruthy applies the language's truthiness rule: nil and false are
// false; every other value is true.
func isTruthy(obj objects.GoLoxObject) bool {
	switch value := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return value.Value
	default:
		return true
	}
}

// isEqual implements `==`: structural equality for primitives, reference
// equality for functions, classes, and instances. Operands of different
// types are never equal.
func isEqual(left, right objects.GoLoxObject) bool {
	switch l := left.(type) {
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			return l.Value == r.Value
		}
	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			return l.Value == r.Value
		}
	case *objects.Boolean:
		if r, ok := right.(*objects.Boolean); ok {
			return l.Value == r.Value
		}
	case *objects.Nil:
		_, ok := right.(*objects.Nil)
		return ok
	default:
		// Functions, classes, instances: same underlying object.
		return left == right
	}
	return false
}

// numberOperands extracts two numeric operands, reporting whether both
// sides are numbers.
func numberOperands(left, right objects.GoLoxObject) (float64, float64, bool) {
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if !lok || !rok {
		return 0, 0, false
	}
	return ln.Value, rn.Value, true
}
