/*
File    : go-lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-lox/objects"

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping
// and closures. Each scope maintains its own variable bindings and can
// access variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block (function, loop, class) can have its own scope
//
// The scope chain is traversed upward (from child to parent) during dynamic
// lookup. Names the resolver classified as local skip the walk entirely:
// the evaluator calls GetAt/AssignAt with the resolver's depth, which hops
// a fixed number of parent links and touches exactly one frame. A frame's
// Parent pointer never changes after construction.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.GoLoxObject

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the global (root) scope.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent
// scope. parent == nil creates a global (root) scope; otherwise the new
// scope can reach every binding of its ancestors through the chain.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.GoLoxObject),
		Parent:    parent,
	}
}

// Bind creates or overwrites a variable binding in this scope only,
// without consulting parent scopes. It reports whether the name already
// existed in this frame, which the evaluator ignores: redeclaration in the
// same scope is rejected statically by the resolver, and globals may be
// freely redefined.
func (s *Scope) Bind(varName string, obj objects.GoLoxObject) bool {
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return has
}

// LookUp searches for a variable by name in this scope and all parent
// scopes, innermost first. Used by the evaluator only against the globals
// frame; resolved locals go through GetAt.
func (s *Scope) LookUp(varName string) (objects.GoLoxObject, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Assign updates an existing variable in the nearest enclosing scope that
// already binds it. Unlike Bind it never creates a binding: assignment to
// a name no scope defines fails, and the evaluator turns that into an
// "Undefined variable" runtime error.
func (s *Scope) Assign(varName string, obj objects.GoLoxObject) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}

// Ancestor walks exactly depth parent links toward the root and returns
// the frame it lands on, or nil if the chain is shorter than that. The
// resolver guarantees the chain is deep enough for every depth it emits.
func (s *Scope) Ancestor(depth int) *Scope {
	frame := s
	for i := 0; i < depth && frame != nil; i++ {
		frame = frame.Parent
	}
	return frame
}

// GetAt looks a name up in the single frame depth levels outward, without
// searching any other frame. This is the fast path for every name the
// resolver classified as local.
func (s *Scope) GetAt(varName string, depth int) (objects.GoLoxObject, bool) {
	frame := s.Ancestor(depth)
	if frame == nil {
		return nil, false
	}
	obj, ok := frame.Variables[varName]
	return obj, ok
}

// AssignAt writes a name in the frame depth levels outward.
func (s *Scope) AssignAt(varName string, obj objects.GoLoxObject, depth int) bool {
	frame := s.Ancestor(depth)
	if frame == nil {
		return false
	}
	if _, ok := frame.Variables[varName]; !ok {
		return false
	}
	frame.Variables[varName] = obj
	return true
}
