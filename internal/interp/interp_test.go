/*
File    : gomix-script/internal/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/gomix-script/internal/host"
	"github.com/akashmaji946/gomix-script/internal/interp"
	"github.com/akashmaji946/gomix-script/internal/lexer"
	"github.com/akashmaji946/gomix-script/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	root, fns, err := parser.Parse(toks)
	require.NoError(t, err)

	ev := interp.New(fns)
	var buf bytes.Buffer
	ev.Writer = &buf
	host.RegisterStdlib(ev)

	err = ev.Run(root)
	return buf.String(), err
}

func lines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestS1ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, []string{"7.000000"}, lines(out))
}

func TestS2Reassignment(t *testing.T) {
	out, err := run(t, "x = 5; x = x + 5; print x;")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.000000"}, lines(out))
}

func TestS3FunctionAndIfElseReturn(t *testing.T) {
	out, err := run(t, `boo = fn(x) { if x == 0 { return "gogo"; } else { return "hoho"; } }; print boo(0); print boo(1);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"gogo", "hoho"}, lines(out))
}

func TestS4WhileLoop(t *testing.T) {
	out, err := run(t, `t = 0; while t != 10 { t = t + 1; } print t;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.000000"}, lines(out))
}

func TestS5SharedTableHandle(t *testing.T) {
	out, err := run(t, `tbl = { x = 10; }; inc = fn(r) { r.x = r.x + 1; }; inc(tbl); inc(tbl); print tbl.x;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"12.000000"}, lines(out))
}

func TestS6ArrayBuiltins(t *testing.T) {
	out, err := run(t, `a = array{ 1, 2, 3 }; array_push(a, 4); print array_size(a); print a[3];`)
	require.NoError(t, err)
	assert.Equal(t, []string{"4.000000", "4.000000"}, lines(out))
}

func TestInvariant5InnerAssignShadowsOuter(t *testing.T) {
	out, err := run(t, `x = 1; if 1 { print x; x = 99; print x; } print x;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.000000", "99.000000", "1.000000"}, lines(out))
}

func TestInvariant6ArityMismatchIsEvalError(t *testing.T) {
	_, err := run(t, `f = fn(a, b) { return a + b; }; f(1);`)
	assert.Error(t, err)
}

func TestInvariant7ReturnUnwindsNestedBlocksOnly(t *testing.T) {
	out, err := run(t, `
f = fn() {
    if 1 {
        while 1 {
            return "done";
        }
        print "unreached-while";
    }
    print "unreached-if";
};
print f();
print "after";
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"done", "after"}, lines(out))
}

func TestScopeDepthRestoredOnSuccessfulEval(t *testing.T) {
	toks, err := lexer.Tokenize(`if 1 { x = 1; } while 0 { y = 1; } for i = 0; i < 3; i = i + 1 { }`)
	require.NoError(t, err)
	root, fns, err := parser.Parse(toks)
	require.NoError(t, err)
	ev := interp.New(fns)
	require.NoError(t, ev.Run(root))
	assert.Equal(t, 0, ev.Scope.Depth())
}

func TestMemberAccessOnNonTableIsEvalError(t *testing.T) {
	_, err := run(t, `x = 5; print x.y;`)
	assert.Error(t, err)
}

func TestArrayIndexOutOfRangeIsEvalError(t *testing.T) {
	_, err := run(t, `a = array{ 1 }; print a[5];`)
	assert.Error(t, err)
}

func TestCallToNonCallableIsEvalError(t *testing.T) {
	_, err := run(t, `x = 5; x();`)
	assert.Error(t, err)
}

func TestStringConcatenationWithNumber(t *testing.T) {
	out, err := run(t, `print "n=" + 3;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"n=3"}, lines(out))
}

func TestStringConcatenationWithNonStringNonNumberIsEvalError(t *testing.T) {
	_, err := run(t, `print "n=" + array{ 1, 2 };`)
	assert.Error(t, err)

	_, err = run(t, `print "n=" + never_assigned;`)
	assert.Error(t, err)

	_, err = run(t, `print "n=" + { x = 1; };`)
	assert.Error(t, err)
}

func TestUndefinedVariableRendersPlaceholder(t *testing.T) {
	out, err := run(t, `print never_assigned;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"<undefined>"}, lines(out))
}

func TestAnonymousFunctionValuesArePassedAround(t *testing.T) {
	out, err := run(t, `
apply = fn(f, v) { return f(v); };
double = fn(x) { return x * 2; };
print apply(double, 21);
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"42.000000"}, lines(out))
}
