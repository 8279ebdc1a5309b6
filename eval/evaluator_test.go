package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/objects"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/report"
	"github.com/golox-lang/golox/resolver"
)

// runSource feeds src through the full pipeline with a fresh evaluator
// and returns captured print output plus the runtime error, if any.
// Lex, parse, and resolve are required to succeed.
func runSource(t *testing.T, src string) (string, *objects.Error) {
	t.Helper()

	reporter := report.NewReporter()
	var diagnostics bytes.Buffer
	reporter.SetWriter(&diagnostics)

	tokens := lexer.NewLexer(src, reporter).ConsumeTokens()
	statements := parser.NewParser(tokens, reporter).Parse()
	require.False(t, reporter.HadError, "parse failed: %s", diagnostics.String())

	ev := NewEvaluator()
	var output bytes.Buffer
	ev.SetWriter(&output)

	resolver.NewResolver(ev, reporter).ResolveStatements(statements)
	require.False(t, reporter.HadError, "resolve failed: %s", diagnostics.String())

	return output.String(), ev.Interpret(statements)
}

// assertPrints runs src and checks the exact stdout produced.
func assertPrints(t *testing.T, src string, expected string) {
	t.Helper()
	output, runtimeErr := runSource(t, src)
	require.Nil(t, runtimeErr, "unexpected runtime error")
	assert.Equal(t, expected, output, "source: %s", src)
}

// assertRuntimeError runs src and checks it fails with the message.
func assertRuntimeError(t *testing.T, src string, message string) {
	t.Helper()
	_, runtimeErr := runSource(t, src)
	require.NotNil(t, runtimeErr, "expected a runtime error, source: %s", src)
	assert.Equal(t, message, runtimeErr.Message)
}

// TestEval_Arithmetic covers number arithmetic, grouping, and the
// print form of results.
func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{`print 1 + 2 * 3;`, "7\n"},
		{`print (1 + 2) * 3;`, "9\n"},
		{`print 10 - 4 - 3;`, "3\n"},
		{`print 3 / 2;`, "1.5\n"},
		{`print -5 + 5;`, "0\n"},
		{`print 1;`, "1\n"},
		{`print 1.5;`, "1.5\n"},
		{`print 2 * 2.5;`, "5\n"},
	}
	for _, test := range tests {
		assertPrints(t, test.source, test.expected)
	}
}

// TestEval_StringConcat covers the + overload on strings.
func TestEval_StringConcat(t *testing.T) {
	assertPrints(t, `print "Hello, " + "world!";`, "Hello, world!\n")
	assertPrints(t, `print "" + "";`, "\n")
}

// TestEval_PlusTypeError covers the mixed-operand error for +.
func TestEval_PlusTypeError(t *testing.T) {
	assertRuntimeError(t, `print 1 + "x";`, "Operands must be two numbers or two strings.")
	assertRuntimeError(t, `print "x" + nil;`, "Operands must be two numbers or two strings.")
}

// TestEval_NumberOperandErrors covers the number-only operators.
func TestEval_NumberOperandErrors(t *testing.T) {
	assertRuntimeError(t, `print "a" - 1;`, "Operands must be numbers.")
	assertRuntimeError(t, `print true * 2;`, "Operands must be numbers.")
	assertRuntimeError(t, `print nil < 1;`, "Operands must be numbers.")
	assertRuntimeError(t, `print -"a";`, "Operand must be a number.")
}

// TestEval_DivisionByZero covers IEEE division: no error, infinite
// result, and the comparison semantics that follow.
func TestEval_DivisionByZero(t *testing.T) {
	assertPrints(t, `print 1 / 0 > 1000000;`, "true\n")
	assertPrints(t, `print -1 / 0 < 0;`, "true\n")
}

// TestEval_Truthiness covers the truthiness rule through !.
func TestEval_Truthiness(t *testing.T) {
	assertPrints(t, `print !!nil;`, "false\n")
	assertPrints(t, `print !!false;`, "false\n")
	assertPrints(t, `print !!0;`, "true\n")
	assertPrints(t, `print !!"";`, "true\n")
}

// TestEval_Equality covers the equality rule end to end.
func TestEval_Equality(t *testing.T) {
	assertPrints(t, `print nil == nil;`, "true\n")
	assertPrints(t, `print nil == false;`, "false\n")
	assertPrints(t, `print 0 == "0";`, "false\n")
	assertPrints(t, `print 1 == 1.0;`, "true\n")
	assertPrints(t, `print "a" != "b";`, "true\n")
	assertPrints(t, `print 1 == 2;`, "false\n")
}

// TestEval_Comparison covers ordering operators.
func TestEval_Comparison(t *testing.T) {
	assertPrints(t, `print 1 < 2;`, "true\n")
	assertPrints(t, `print 2 <= 2;`, "true\n")
	assertPrints(t, `print 3 > 4;`, "false\n")
	assertPrints(t, `print 4 >= 5;`, "false\n")
}

// TestEval_Variables covers declaration, reading, assignment value,
// and assignment to undefined names.
func TestEval_Variables(t *testing.T) {
	assertPrints(t, `var a = 1; print a;`, "1\n")
	assertPrints(t, `var a; print a;`, "nil\n")
	assertPrints(t, `var a = 0; print a = 3; print a;`, "3\n3\n")
	assertPrints(t, `var a = 1; var a = 2; print a;`, "2\n")

	assertRuntimeError(t, `print missing;`, "Undefined variable 'missing'.")
	assertRuntimeError(t, `missing = 1;`, "Undefined variable 'missing'.")
}

// TestEval_Shadowing covers block scoping and restoration.
func TestEval_Shadowing(t *testing.T) {
	assertPrints(t, `
		var a = 1;
		{
			var a = 2;
			print a;
		}
		print a;
	`, "2\n1\n")
}

// TestEval_IfElse covers branch selection on truthiness.
func TestEval_IfElse(t *testing.T) {
	assertPrints(t, `if (1 < 2) print "then"; else print "else";`, "then\n")
	assertPrints(t, `if (nil) print "then"; else print "else";`, "else\n")
	assertPrints(t, `if (0) print "zero is truthy";`, "zero is truthy\n")
	assertPrints(t, `if (false) print "skipped";`, "")
}

// TestEval_ShortCircuit covers or/and: the right operand is only
// evaluated when needed, observed through a side-effecting helper, and
// the result is the raw operand value.
func TestEval_ShortCircuit(t *testing.T) {
	assertPrints(t, `
		var calls = 0;
		fun bump() {
			calls = calls + 1;
			return true;
		}
		var a = true or bump();
		var b = false and bump();
		print calls;
		var c = false or bump();
		var d = true and bump();
		print calls;
	`, "0\n2\n")

	assertPrints(t, `print "hi" or 2;`, "hi\n")
	assertPrints(t, `print nil or "yes";`, "yes\n")
	assertPrints(t, `print nil and "never";`, "nil\n")
	assertPrints(t, `print 1 and 2;`, "2\n")
}

// TestEval_While covers loop execution and condition re-evaluation.
func TestEval_While(t *testing.T) {
	assertPrints(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`, "0\n1\n2\n")
	assertPrints(t, `while (false) print "never";`, "")
}

// TestEval_ForDesugared covers the desugared for loop end to end.
func TestEval_ForDesugared(t *testing.T) {
	assertPrints(t, `for (var i = 0; i < 3; i = i + 1) print i;`, "0\n1\n2\n")

	// Init and loop variable live in their own scope
	assertPrints(t, `
		var i = "outer";
		for (var i = 0; i < 1; i = i + 1) print i;
		print i;
	`, "0\nouter\n")
}

// TestEval_Functions covers declaration, calls, recursion, and the
// implicit nil result.
func TestEval_Functions(t *testing.T) {
	assertPrints(t, `
		fun add(a, b) { return a + b; }
		print add(1, 2);
	`, "3\n")

	assertPrints(t, `
		fun greet(name) { print "hi " + name; }
		print greet("lox");
	`, "hi lox\nnil\n")

	assertPrints(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`, "55\n")

	assertPrints(t, `fun f() {} print f;`, "<fn f>\n")
	assertPrints(t, `print clock;`, "<native fn>\n")
}

// TestEval_CallErrors covers non-callable callees and arity mismatch.
func TestEval_CallErrors(t *testing.T) {
	assertRuntimeError(t, `"not a function"();`, "Can only call functions and classes.")
	assertRuntimeError(t, `nil();`, "Can only call functions and classes.")
	assertRuntimeError(t, `
		fun two(a, b) { return a; }
		two(1);
	`, "Expected 2 arguments but got 1.")
	assertRuntimeError(t, `clock(1);`, "Expected 0 arguments but got 1.")
}

// TestEval_Closures covers the counter scenario: the captured frame is
// shared by reference and survives the declaring call.
func TestEval_Closures(t *testing.T) {
	assertPrints(t, `
		fun make() {
			var i = 0;
			fun inc() {
				i = i + 1;
				return i;
			}
			return inc;
		}
		var c = make();
		print c();
		print c();
		print c();
	`, "1\n2\n3\n")

	// Independent calls to make get independent frames
	assertPrints(t, `
		fun make() {
			var i = 0;
			fun inc() {
				i = i + 1;
				return i;
			}
			return inc;
		}
		var a = make();
		var b = make();
		print a();
		print a();
		print b();
	`, "1\n2\n1\n")
}

// TestEval_SiblingClosuresShareFrame covers mutations flowing between
// two functions closed over the same scope.
func TestEval_SiblingClosuresShareFrame(t *testing.T) {
	assertPrints(t, `
		fun pair() {
			var n = 0;
			fun up() {
				n = n + 1;
				return n;
			}
			fun down() {
				n = n - 1;
				return n;
			}
			print up();
			print up();
			print down();
		}
		pair();
	`, "1\n2\n1\n")
}

// TestEval_LexicalCapture covers binding by resolution, not by current
// shadowing: a later declaration in the block does not rebind the
// closure.
func TestEval_LexicalCapture(t *testing.T) {
	assertPrints(t, `
		var a = "global";
		{
			fun show() { print a; }
			show();
			var a = "block";
			show();
		}
	`, "global\nglobal\n")
}

// TestEval_NonLocalReturn covers return unwinding through nested
// blocks and loops straight to the call, skipping trailing statements.
func TestEval_NonLocalReturn(t *testing.T) {
	assertPrints(t, `
		fun find() {
			var i = 0;
			while (true) {
				{
					if (i == 2) return i;
				}
				i = i + 1;
				print i;
			}
			print "unreachable";
		}
		print find();
	`, "1\n2\n2\n")

	assertPrints(t, `
		fun bare() { return; }
		print bare();
	`, "nil\n")
}

// TestEval_EnvironmentRestoredAfterReturn covers the caller's scope
// surviving a non-local return out of nested blocks.
func TestEval_EnvironmentRestoredAfterReturn(t *testing.T) {
	assertPrints(t, `
		var x = "kept";
		fun f() {
			{
				var x = "inner";
				return x;
			}
		}
		print f();
		print x;
	`, "inner\nkept\n")
}

// TestEval_ErrorAbortsRun covers a runtime error stopping execution:
// statements after the failing one never run.
func TestEval_ErrorAbortsRun(t *testing.T) {
	output, runtimeErr := runSource(t, `
		print "before";
		print 1 + "x";
		print "after";
	`)
	require.NotNil(t, runtimeErr)
	assert.Equal(t, "before\n", output)
	assert.Equal(t, "Operands must be two numbers or two strings.", runtimeErr.Message)
	assert.Equal(t, 3, runtimeErr.Line)
}

// TestEval_ErrorLineTag covers the error carrying the operator's line.
func TestEval_ErrorLineTag(t *testing.T) {
	_, runtimeErr := runSource(t, "var a = 1;\nvar b = a\n  + \"x\";")
	require.NotNil(t, runtimeErr)
	assert.Equal(t, 3, runtimeErr.Line)
}

// TestEval_Clock covers the native: arity 0 and a plausible number of
// seconds.
func TestEval_Clock(t *testing.T) {
	output, runtimeErr := runSource(t, `print clock() > 0;`)
	require.Nil(t, runtimeErr)
	assert.Equal(t, "true\n", output)
}

// TestEval_GlobalsLateBound covers a function body referring to a
// global declared after the function, legal as long as execution order
// is right.
func TestEval_GlobalsLateBound(t *testing.T) {
	assertPrints(t, `
		fun show() { print later; }
		var later = "bound in time";
		show();
	`, "bound in time\n")
}
