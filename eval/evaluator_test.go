/*
File    : go-lox/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript drives the full pipeline over one source chunk and returns
// what was written to stdout and the error stream. Parse and resolve
// errors come back in the second value, like the CLI reports them.
func runScript(t *testing.T, src string) (string, string) {
	t.Helper()
	par := parser.NewParser(src)
	prog := par.Parse()
	if par.HasErrors() {
		return "", strings.Join(par.GetErrors(), "\n")
	}
	if err := resolver.NewResolver(prog).Resolve(); err != nil {
		return "", err.Error()
	}

	var out, errs bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	ev.SetErrWriter(&errs)
	ev.Interpret(prog)
	return out.String(), errs.String()
}

func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 + 2;", "3"},
		{"print 10 - 4;", "6"},
		{"print 3 * 4;", "12"},
		{"print 10 / 4;", "2.5"},
		{"print -5;", "-5"},
		{"print 1 + 2 * 3;", "7"},
		{"print (1 + 2) * 3;", "9"},
		{"print 0.1 + 0.2;", "0.30000000000000004"},
		{"print 3.0;", "3"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, tt.expected+"\n", out, "input: %s", tt.input)
	}
}

func TestEvaluator_StringConcatenation(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print "foo" + "bar";`, "foobar"},
		// String concatenation coerces the other operand.
		{`print "n = " + 42;`, "n = 42"},
		{`print 42 + " is n";`, "42 is n"},
		{`print "flag: " + true;`, "flag: true"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, tt.expected+"\n", out, "input: %s", tt.input)
	}
}

func TestEvaluator_ComparisonAndEquality(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 < 2;", "true"},
		{"print 2 <= 2;", "true"},
		{"print 3 > 4;", "false"},
		{"print 4 >= 5;", "false"},
		{"print 1 == 1;", "true"},
		{"print 1 != 1;", "false"},
		{`print "a" == "a";`, "true"},
		{`print "a" == "b";`, "false"},
		{"print nil == nil;", "true"},
		{"print true == true;", "true"},
		// Different tags are never equal.
		{`print 1 == "1";`, "false"},
		{"print nil == false;", "false"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, tt.expected+"\n", out, "input: %s", tt.input)
	}
}

func TestEvaluator_Truthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print !nil;", "true"},
		{"print !false;", "true"},
		{"print !0;", "false"},
		{`print !"";`, "false"},
		{"print !true;", "false"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs)
		assert.Equal(t, tt.expected+"\n", out, "input: %s", tt.input)
	}
}

// Logical operators return the deciding operand, not a boolean, and the
// un-chosen operand's side effects never happen.
func TestEvaluator_ShortCircuit(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print "lhs" or "rhs";`, "lhs"},
		{`print nil or "rhs";`, "rhs"},
		{`print nil and "rhs";`, "nil"},
		{`print "lhs" and "rhs";`, "rhs"},
		{`var a = 0; true or (a = 1); print a;`, "0"},
		{`var a = 0; false and (a = 1); print a;`, "0"},
		{`var a = 0; true ? 1 : (a = 1); print a;`, "0"},
		{`var a = 0; false ? (a = 1) : 2; print a;`, "0"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, tt.expected+"\n", out, "input: %s", tt.input)
	}
}

func TestEvaluator_TernaryAndComma(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 < 2 ? \"yes\" : \"no\";", "yes"},
		{"print 1 > 2 ? \"yes\" : \"no\";", "no"},
		// The comma operator evaluates both sides and yields the right.
		{"print (1, 2, 3);", "3"},
		{"var a = 0; print ((a = 5), a + 1);", "6"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, tt.expected+"\n", out, "input: %s", tt.input)
	}
}

// Scenario: globals and addition.
func TestEvaluator_Globals(t *testing.T) {
	out, errs := runScript(t, `var a = 1; var b = 2; print a + b;`)
	assert.Empty(t, errs)
	assert.Equal(t, "3\n", out)
}

// Scenario: block scoping and shadowing.
func TestEvaluator_BlockScoping(t *testing.T) {
	src := `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;`
	out, errs := runScript(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, "inner\nouter\n", out)
}

// Scenario: closures capture the defining environment, not the caller's.
func TestEvaluator_ClosureCounter(t *testing.T) {
	src := `
fun make() {
  var i = 0;
  fun next() {
    i = i + 1;
    return i;
  }
  return next;
}
var c = make();
print c();
print c();
print c();`
	out, errs := runScript(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, "1\n2\n3\n", out)
}

// Two counters from the same factory do not share state.
func TestEvaluator_ClosuresAreIndependent(t *testing.T) {
	src := `
fun make() {
  var i = 0;
  fun next() { i = i + 1; return i; }
  return next;
}
var a = make();
var b = make();
print a();
print a();
print b();`
	out, errs := runScript(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, "1\n2\n1\n", out)
}

// A closure invoked after its defining scope ended still sees the
// captured bindings.
func TestEvaluator_ClosureOutlivesScope(t *testing.T) {
	src := `
var f;
{
  var captured = "kept alive";
  f = fun () { return captured; };
}
print f();`
	out, errs := runScript(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, "kept alive\n", out)
}

func TestEvaluator_FunctionsAndReturn(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"fun add(a, b) { return a + b; } print add(1, 2);", "3"},
		// Falling off the end yields nil.
		{"fun f() { 1 + 2; } print f();", "nil"},
		{"fun f() { return; } print f();", "nil"},
		// Recursion.
		{"fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } print fib(10);", "55"},
		// Display forms.
		{"fun f() {} print f;", "<fn f>"},
		{"print fun (x) { return x; };", "<lambda>"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, tt.expected+"\n", out, "input: %s", tt.input)
	}
}

func TestEvaluator_WhileAndForLoops(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"var i = 0; while (i < 3) { print i; i = i + 1; }", "0\n1\n2\n"},
		{"for (var i = 0; i < 3; i = i + 1) print i;", "0\n1\n2\n"},
		{"var sum = 0; for (var i = 1; i <= 10; i = i + 1) sum = sum + i; print sum;", "55\n"},
	}

	for _, tt := range tests {
		out, errs := runScript(t, tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, tt.expected, out, "input: %s", tt.input)
	}
}

// A return inside a for-body unwinds immediately: the desugared increment
// does not run.
func TestEvaluator_ReturnSkipsForIncrement(t *testing.T) {
	src := `
var last = -1;
fun probe() {
  for (var i = 0; i < 10; i = (last = i, i + 1)) {
    if (i == 2) return "done";
  }
}
print probe();
print last;`
	out, errs := runScript(t, src)
	assert.Empty(t, errs)
	// The increment ran after i=0 and i=1 only.
	assert.Equal(t, "done\n1\n", out)
}

func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"print 1 / 0;", "Cannot divide by zero."},
		{"print missing;", "Undefined variable 'missing'."},
		{"missing = 1;", "Undefined variable 'missing'."},
		{"print -\"str\";", "Operand must be a number."},
		{"print 1 < \"2\";", "Operands must be numbers."},
		{"print true + false;", "Operands must be two numbers or two strings."},
		{"var x = 1; x();", "Can only call functions and classes."},
		{"fun f(a) {} f(1, 2);", "Wrong number of arguments."},
	}

	for _, tt := range tests {
		_, errs := runScript(t, tt.input)
		assert.Contains(t, errs, tt.message, "input: %s", tt.input)
	}
}

func TestEvaluator_RuntimeErrorReportsLine(t *testing.T) {
	_, errs := runScript(t, "var a = 1;\nprint 1 / 0;")
	assert.Contains(t, errs, "[line 2]")
}

// A runtime error terminates only the statement that raised it; execution
// continues with the next top-level statement.
func TestEvaluator_ErrorContinuesWithNextStatement(t *testing.T) {
	src := `
print "before";
print 1 / 0;
print "after";`
	out, errs := runScript(t, src)
	assert.Contains(t, errs, "Cannot divide by zero.")
	assert.Equal(t, "before\nafter\n", out)
}

func TestEvaluator_VarWithoutInitializerIsNil(t *testing.T) {
	out, errs := runScript(t, `var a; print a;`)
	assert.Empty(t, errs)
	assert.Equal(t, "nil\n", out)
}

// The REPL relies on Interpret returning the last statement's value.
func TestEvaluator_InterpretReturnsLastValue(t *testing.T) {
	par := parser.NewParser(`1 + 2;`)
	prog := par.Parse()
	require.False(t, par.HasErrors())
	require.NoError(t, resolver.NewResolver(prog).Resolve())

	ev := NewEvaluator()
	ev.SetWriter(&bytes.Buffer{})
	result := ev.Interpret(prog)
	assert.Equal(t, "3", result.ToString())
}

// Definitions persist across Interpret calls on one evaluator, the way a
// REPL session runs line by line — including closures whose handles point
// into an earlier line's arenas.
func TestEvaluator_StatePersistsAcrossPrograms(t *testing.T) {
	var out bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	ev.SetErrWriter(&out)

	lines := []string{
		`fun make() { var i = 0; fun next() { i = i + 1; return i; } return next; }`,
		`var c = make();`,
		`print c();`,
		`print c();`,
	}
	for _, line := range lines {
		par := parser.NewParser(line)
		prog := par.Parse()
		require.False(t, par.HasErrors(), "line: %s", line)
		require.NoError(t, resolver.NewResolver(prog).Resolve())
		ev.Interpret(prog)
	}
	assert.Equal(t, "1\n2\n", out.String())
}
