/*
File    : go-lox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/go-lox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolve parses and resolves a source chunk, requiring a clean parse.
func resolve(t *testing.T, src string) (*parser.Program, error) {
	t.Helper()
	par := parser.NewParser(src)
	prog := par.Parse()
	require.False(t, par.HasErrors(), "parse errors: %v", par.GetErrors())
	return prog, NewResolver(prog).Resolve()
}

func TestResolver_GlobalsGetNoEntry(t *testing.T) {
	prog, err := resolve(t, `var a = 1; print a;`)
	assert.NoError(t, err)
	assert.Empty(t, prog.Locals)
}

func TestResolver_BlockLocalDepths(t *testing.T) {
	src := `
{
  var a = 1;
  print a;
  {
    print a;
  }
}`
	prog, err := resolve(t, src)
	assert.NoError(t, err)

	// Two reads of `a`: one at depth 0 (same block), one at depth 1
	// (one block further in).
	depths := localDepths(prog)
	assert.ElementsMatch(t, []int{0, 1}, depths)
}

func TestResolver_FunctionParamsAndClosureDepths(t *testing.T) {
	src := `
fun make() {
  var i = 0;
  fun next() {
    i = i + 1;
    return i;
  }
  return next;
}`
	prog, err := resolve(t, src)
	assert.NoError(t, err)

	// Inside next(), `i` lives one function scope out. Three uses of `i`
	// at depth 1 plus the `next` reference at depth 0.
	depths := localDepths(prog)
	assert.Contains(t, depths, 1)
	assert.Contains(t, depths, 0)
}

// Re-running the resolver on the same AST produces an identical depth map.
func TestResolver_Determinism(t *testing.T) {
	src := `
fun outer(x) {
  var y = x;
  {
    var z = y;
    fun inner() { return x + y + z; }
  }
}`
	par := parser.NewParser(src)
	prog := par.Parse()
	require.False(t, par.HasErrors())

	require.NoError(t, NewResolver(prog).Resolve())
	first := make(map[uint32]int, len(prog.Locals))
	for k, v := range prog.Locals {
		first[k] = v
	}

	prog.Locals = make(map[uint32]int)
	require.NoError(t, NewResolver(prog).Resolve())
	assert.Equal(t, first, prog.Locals)
}

func TestResolver_TokenIdentityKeysAreDistinct(t *testing.T) {
	src := `
{
  var a = 1;
  print a;
  print a;
}`
	prog, err := resolve(t, src)
	assert.NoError(t, err)
	// The two reads are distinct tokens with independent entries.
	assert.Equal(t, 2, len(prog.Locals))
}

func TestResolver_ThisAndSuperDepths(t *testing.T) {
	src := `
class A { greet() { print "A"; } }
class B < A {
  greet() {
    super.greet();
    print this;
  }
}`
	prog, err := resolve(t, src)
	assert.NoError(t, err)

	// Inside greet: method scope(2) > this scope(1) > super scope(0).
	// `super` resolves at depth 2, `this` at depth 1 — super sits one
	// frame outside this.
	depths := localDepths(prog)
	assert.Contains(t, depths, 2)
	assert.Contains(t, depths, 1)
}

func TestResolver_ReadInOwnInitializer(t *testing.T) {
	_, err := resolve(t, `var a; { var a = a; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot read local variable in its own initializer.")
}

func TestResolver_RedeclarationInSameScope(t *testing.T) {
	_, err := resolve(t, `{ var a = 1; var a = 2; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared in this scope.")
}

func TestResolver_GlobalRedeclarationIsAllowed(t *testing.T) {
	_, err := resolve(t, `var a = 1; var a = 2;`)
	assert.NoError(t, err)
}

func TestResolver_ReturnAtTopLevel(t *testing.T) {
	_, err := resolve(t, `return 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot return from top-level code.")
}

func TestResolver_ReturnValueFromInitializer(t *testing.T) {
	_, err := resolve(t, `class C { init() { return 1; } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot return a value from an initializer.")
}

func TestResolver_BareReturnFromInitializerIsAllowed(t *testing.T) {
	_, err := resolve(t, `class C { init() { return; } }`)
	assert.NoError(t, err)
}

func TestResolver_ThisOutsideClass(t *testing.T) {
	_, err := resolve(t, `print this;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'this' outside of a class.")

	_, err = resolve(t, `fun f() { return this; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'this' outside of a class.")
}

func TestResolver_SuperOutsideClass(t *testing.T) {
	_, err := resolve(t, `fun f() { super.g(); }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'super' outside of a class.")
}

func TestResolver_SuperWithoutSuperclass(t *testing.T) {
	_, err := resolve(t, `class C { f() { super.g(); } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot use 'super' in a class with no superclass.")
}

func TestResolver_SelfInheritance(t *testing.T) {
	_, err := resolve(t, `class C < C {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot inherit from itself.")
}

func TestResolver_DuplicateParameter(t *testing.T) {
	_, err := resolve(t, `fun f(a, a) {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared in this scope.")
}

func TestResolver_GetterResolvesAsMethod(t *testing.T) {
	_, err := resolve(t, `class C { size { return this.n; } }`)
	assert.NoError(t, err)
}

func TestResolver_LambdaBodyIsAFunction(t *testing.T) {
	// A return inside a lambda is legal even at top level.
	_, err := resolve(t, `var f = fun (x) { return x; };`)
	assert.NoError(t, err)
}

// localDepths collects the depth values of the resolved locals map.
func localDepths(prog *parser.Program) []int {
	depths := make([]int, 0, len(prog.Locals))
	for _, depth := range prog.Locals {
		depths = append(depths, depth)
	}
	return depths
}
