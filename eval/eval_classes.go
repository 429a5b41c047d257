/*
File    : go-lox/eval/eval_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalClassStatement builds a class value. The class name is bound to nil
// first so that methods can refer to the class being defined. When a
// superclass exists, a frame defining `super` is pushed around the method
// table construction; every method closes over that frame, which is how
// `super` calls find their target long after the declaration finished.
func (e *Evaluator) evalClassStatement(node *parser.ClassStatementNode) objects.GoLoxObject {
	var super *function.Class
	if node.HasSuper {
		superValue := e.evalExpr(node.Super)
		if IsError(superValue) {
			return superValue
		}
		superClass, ok := superValue.(*function.Class)
		if !ok {
			superName := e.Prog.Expr(node.Super).(*parser.IdentifierExpressionNode).Name
			return e.CreateError(superName, "Superclass must be a class.")
		}
		super = superClass
	}

	// Placeholder binding so the name exists while methods are built.
	e.Scp.Bind(node.Name.Literal, &objects.Nil{})

	enclosing := e.Scp
	if super != nil {
		e.Scp = scope.NewScope(enclosing)
		e.Scp.Bind("super", super)
	}

	methods := make(map[string]*function.Function)
	for _, methodHandle := range node.Methods {
		switch method := e.Prog.Stmt(methodHandle).(type) {
		case *parser.FunctionStatementNode:
			methods[method.Name.Literal] = &function.Function{
				Name:          method.Name.Literal,
				Params:        method.Params,
				Body:          method.Body,
				Prog:          e.Prog,
				Scp:           e.Scp,
				IsInitializer: method.Name.Literal == "init",
			}
		case *parser.GetterStatementNode:
			methods[method.Name.Literal] = &function.Function{
				Name:     method.Name.Literal,
				Body:     method.Body,
				Prog:     e.Prog,
				Scp:      e.Scp,
				IsGetter: true,
			}
		}
	}

	class := function.NewClass(node.Name.Literal, methods, super)
	if super != nil {
		e.Scp = enclosing
	}
	e.Scp.Assign(node.Name.Literal, class)
	return &objects.Nil{}
}

// constructInstance implements calling a class value: create the instance,
// bind `init` onto it when defined, run it with the call's arguments, and
// yield the instance regardless of what `init` did.
func (e *Evaluator) constructInstance(class *function.Class, args []objects.GoLoxObject, paren lexer.Token) objects.GoLoxObject {
	instance := function.NewInstance(class)
	if init := class.FindMethod("init"); init != nil {
		result := e.CallFunction(init.Bind(instance), args, paren)
		if IsError(result) {
			return result
		}
	} else if len(args) != 0 {
		return e.CreateError(paren, "Wrong number of arguments.")
	}
	return instance
}

// evalGetExpression implements property access. On an instance, fields
// shadow methods; a found method is bound to the instance, and a found
// getter is invoked immediately with no arguments. Method lookup on a
// class value binds the class itself as receiver; anything else has no
// properties at all.
func (e *Evaluator) evalGetExpression(node *parser.GetExpressionNode) objects.GoLoxObject {
	object := e.evalExpr(node.Object)
	if IsError(object) {
		return object
	}

	switch receiver := object.(type) {
	case *function.Instance:
		if value, ok := receiver.GetField(node.Name.Literal); ok {
			return value
		}
		if method := receiver.Class.FindMethod(node.Name.Literal); method != nil {
			bound := method.Bind(receiver)
			if bound.IsGetter {
				return e.CallFunction(bound, nil, node.Name)
			}
			return bound
		}
		return e.CreateError(node.Name, "Undefined property '%s'.", node.Name.Literal)
	case *function.Class:
		if method := receiver.FindMethod(node.Name.Literal); method != nil {
			bound := method.Bind(receiver)
			if bound.IsGetter {
				return e.CallFunction(bound, nil, node.Name)
			}
			return bound
		}
		return e.CreateError(node.Name, "Only instances have properties.")
	default:
		return e.CreateError(node.Name, "Only instances have properties.")
	}
}

// evalSetExpression implements property assignment. Fields are created
// dynamically on first write; only instances can be written to.
func (e *Evaluator) evalSetExpression(node *parser.SetExpressionNode) objects.GoLoxObject {
	object := e.evalExpr(node.Object)
	if IsError(object) {
		return object
	}
	instance, ok := object.(*function.Instance)
	if !ok {
		return e.CreateError(node.Name, "Only instances have fields.")
	}
	value := e.evalExpr(node.Value)
	if IsError(value) {
		return value
	}
	instance.SetField(node.Name.Literal, value)
	return value
}

// evalSuperExpression looks a method up on the superclass captured at
// class-definition time. The resolver guarantees `super` sits one frame
// outside `this`, so the instance is fetched at depth-1.
func (e *Evaluator) evalSuperExpression(node *parser.SuperExpressionNode) objects.GoLoxObject {
	depth, ok := e.Prog.Locals[node.Keyword.Seq]
	if !ok {
		return e.CreateError(node.Keyword, "Cannot use 'super' outside of a class.")
	}
	superValue, _ := e.Scp.GetAt("super", depth)
	superClass, ok := superValue.(*function.Class)
	if !ok {
		return e.CreateError(node.Keyword, "Cannot use 'super' in a class with no superclass.")
	}
	thisValue, ok := e.Scp.GetAt("this", depth-1)
	if !ok {
		return e.CreateError(node.Keyword, "Cannot use 'super' outside of a class.")
	}

	method := superClass.FindMethod(node.Method.Literal)
	if method == nil {
		return e.CreateError(node.Method, "Undefined property '%s'.", node.Method.Literal)
	}
	bound := method.Bind(thisValue)
	if bound.IsGetter {
		return e.CallFunction(bound, nil, node.Method)
	}
	return bound
}
