package monkey

import (
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func evalSrc(t *testing.T, src string) Value {
	t.Helper()
	ip := NewInterpreter()
	v, err := ip.EvalSource(src)
	if err != nil {
		t.Fatalf("EvalSource error: %v\nsource:\n%s", err, src)
	}
	return v
}

func evalRuntimeErr(t *testing.T, src string) *RuntimeError {
	t.Helper()
	ip := NewInterpreter()
	_, err := ip.EvalSource(src)
	if err == nil {
		t.Fatalf("expected runtime error, got none\nsource:\n%s", src)
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
	return re
}

func wantInt(t *testing.T, v Value, n int64) {
	t.Helper()
	if v.Tag != VTInt || v.Data.(int64) != n {
		t.Fatalf("want int %d, got %s (%#v)", n, v.Inspect(), v)
	}
}

func wantBool(t *testing.T, v Value, b bool) {
	t.Helper()
	if v.Tag != VTBool || v.Data.(bool) != b {
		t.Fatalf("want bool %v, got %s (%#v)", b, v.Inspect(), v)
	}
}

func wantStr(t *testing.T, v Value, s string) {
	t.Helper()
	if v.Tag != VTStr || v.Data.(string) != s {
		t.Fatalf("want str %q, got %s (%#v)", s, v.Inspect(), v)
	}
}

func wantNull(t *testing.T, v Value) {
	t.Helper()
	if v.Tag != VTNull {
		t.Fatalf("want null, got %s (%#v)", v.Inspect(), v)
	}
}

func wantUnit(t *testing.T, v Value) {
	t.Helper()
	if v.Tag != VTUnit {
		t.Fatalf("want unit, got %s (%#v)", v.Inspect(), v)
	}
}

func wantErrContains(t *testing.T, err *RuntimeError, substr string) {
	t.Helper()
	if !strings.Contains(err.Msg, substr) {
		t.Fatalf("want error containing %q, got %q", substr, err.Msg)
	}
}

// --- literals & operators --------------------------------------------------

func Test_Eval_IntegerArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"5", 5},
		{"-5", -5},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"7 / 2", 3},   // truncating quotient
		{"-7 / 2", -3}, // truncates toward zero
	}
	for _, c := range cases {
		wantInt(t, evalSrc(t, c.src), c.want)
	}
}

func Test_Eval_DivisionByZero(t *testing.T) {
	err := evalRuntimeErr(t, "let a = 10;\na / 0")
	wantErrContains(t, err, "cannot divide by 0")
	if err.Line != 2 || err.Col != 3 {
		t.Fatalf("want error at 2:3, got %d:%d", err.Line, err.Col)
	}
}

func Test_Eval_BooleanOperators(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 > 2) == true", false},
	}
	for _, c := range cases {
		wantBool(t, evalSrc(t, c.src), c.want)
	}
}

func Test_Eval_BangTruthiness(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!5", true},
		{"!null", true},
		{"!()", true},
		{"!\"\"", false}, // only false, null and unit are falsy
	}
	for _, c := range cases {
		wantBool(t, evalSrc(t, c.src), c.want)
	}
}

func Test_Eval_MinusPrefix(t *testing.T) {
	wantNull(t, evalSrc(t, "-null"))

	err := evalRuntimeErr(t, "-true")
	wantErrContains(t, err, "operation - not supported for type Bool")
}

func Test_Eval_Strings(t *testing.T) {
	wantStr(t, evalSrc(t, `"hello" + " " + "world"`), "hello world")
	wantBool(t, evalSrc(t, `"a" == "a"`), true)
	wantBool(t, evalSrc(t, `"a" != "b"`), true)
	wantBool(t, evalSrc(t, `"a" < "b"`), true)
	wantBool(t, evalSrc(t, `"b" > "a"`), true)
	wantBool(t, evalSrc(t, `"abc" < "abd"`), true)

	err := evalRuntimeErr(t, `"a" - "b"`)
	wantErrContains(t, err, "operation - not supported between strings")
}

func Test_Eval_MixedStringConcatenation(t *testing.T) {
	wantStr(t, evalSrc(t, `"n=" + 5`), "n=5")
	wantStr(t, evalSrc(t, `5 + "!"`), "5!")
	wantStr(t, evalSrc(t, `"ok: " + true`), "ok: true")
	wantStr(t, evalSrc(t, `"xs: " + [1, 2]`), "xs: [1, 2]")
	// String + wins over null propagation: the null side renders as "null".
	wantStr(t, evalSrc(t, `null + "s"`), "nulls")
}

func Test_Eval_StringEscapes(t *testing.T) {
	wantStr(t, evalSrc(t, `"a\nb\t\"q\"\\"`), "a\nb\t\"q\"\\")
}

// --- null semantics --------------------------------------------------------

func Test_Eval_NullPropagation(t *testing.T) {
	for _, src := range []string{
		"null + 5", "5 + null",
		"null - 5", "5 - null",
		"null * 5", "5 * null",
		"null / 5", "5 / null",
		"null - null",
		"-null",
	} {
		wantNull(t, evalSrc(t, src))
	}
}

func Test_Eval_NullOperandErrors(t *testing.T) {
	err := evalRuntimeErr(t, "null < 5")
	wantErrContains(t, err, "null value error: left value is null")

	err = evalRuntimeErr(t, "5 > null")
	wantErrContains(t, err, "null value error: right value is null")

	err = evalRuntimeErr(t, "null < null")
	wantErrContains(t, err, "null value error: both values are null")
}

func Test_Eval_NullEquality(t *testing.T) {
	wantBool(t, evalSrc(t, "null == null"), true)
	wantBool(t, evalSrc(t, "null != null"), false)
	wantBool(t, evalSrc(t, "null == 5"), false)
	wantBool(t, evalSrc(t, "5 == null"), false)
	wantBool(t, evalSrc(t, "null != 5"), true)
	wantBool(t, evalSrc(t, `null == "null"`), false)
}

func Test_Eval_IdentityFallback(t *testing.T) {
	// Unmatched == / != pairs compare by identity.
	wantBool(t, evalSrc(t, "() == ()"), true)
	wantBool(t, evalSrc(t, "() == null"), false)
	wantBool(t, evalSrc(t, "1 == true"), false)
	wantBool(t, evalSrc(t, `"1" == 1`), false)
	// Distinct array values are not identical even when structurally equal.
	wantBool(t, evalSrc(t, "[1] == [1]"), false)
	wantBool(t, evalSrc(t, "let a = [1]; a == a"), true)
	wantBool(t, evalSrc(t, "let f = fn(){}; f == f"), true)
	wantBool(t, evalSrc(t, "fn(){} == fn(){}"), false)
}

func Test_Eval_TypeMismatch(t *testing.T) {
	err := evalRuntimeErr(t, "true + false")
	wantErrContains(t, err, "operation + not supported for types Bool and Bool")

	err = evalRuntimeErr(t, "[1] * 2")
	wantErrContains(t, err, "operation * not supported for types Array and Int")
}

// --- unit ------------------------------------------------------------------

func Test_Eval_Unit(t *testing.T) {
	wantUnit(t, evalSrc(t, "()"))
	// A grouped expression is not unit.
	wantInt(t, evalSrc(t, "(5)"), 5)
}

func Test_Eval_LetRejectsUnit(t *testing.T) {
	err := evalRuntimeErr(t, "let a = ();")
	wantErrContains(t, err, "cannot bind unit (void) to a variable")

	// Binding the result of a call whose body yields unit fails too.
	err = evalRuntimeErr(t, "let a = fn(){ () }();")
	wantErrContains(t, err, "cannot bind unit (void) to a variable")

	err = evalRuntimeErr(t, `let a = puts("x");`)
	wantErrContains(t, err, "cannot bind unit (void) to a variable")
}

// --- let / identifiers -----------------------------------------------------

func Test_Eval_LetBindings(t *testing.T) {
	wantInt(t, evalSrc(t, "let a = 5; a"), 5)
	wantInt(t, evalSrc(t, "let a = 5 * 5; a"), 25)
	wantInt(t, evalSrc(t, "let a = 5; let b = a; b"), 5)
	wantInt(t, evalSrc(t, "let a = 5; let b = a; let c = a + b + 5; c"), 15)
	// let yields the bound value.
	wantInt(t, evalSrc(t, "let a = 41 + 1"), 42)
	// null is a bindable first-class value.
	wantNull(t, evalSrc(t, "let a = null; a"))
}

func Test_Eval_UndeclaredIdentifier(t *testing.T) {
	err := evalRuntimeErr(t, "foobar")
	wantErrContains(t, err, "variable foobar is not declared")
	if err.Line != 1 || err.Col != 1 {
		t.Fatalf("want error at 1:1, got %d:%d", err.Line, err.Col)
	}
}

func Test_Eval_UserBindingShadowsBuiltin(t *testing.T) {
	wantInt(t, evalSrc(t, "let len = 5; len"), 5)
}

// --- if --------------------------------------------------------------------

func Test_Eval_IfElse(t *testing.T) {
	wantInt(t, evalSrc(t, "if (true) { 10 }"), 10)
	wantInt(t, evalSrc(t, "if (1) { 10 }"), 10)
	wantInt(t, evalSrc(t, "if (1 < 2) { 10 }"), 10)
	wantInt(t, evalSrc(t, "if (1 > 2) { 10 } else { 20 }"), 20)
	wantNull(t, evalSrc(t, "if (false) { 10 }"))
	wantNull(t, evalSrc(t, "if (null) { 10 }"))
	wantNull(t, evalSrc(t, "if (()) { 10 }"))
}

// --- return ----------------------------------------------------------------

func Test_Eval_ReturnStatements(t *testing.T) {
	wantInt(t, evalSrc(t, "return 10;"), 10)
	wantInt(t, evalSrc(t, "return 10; 9"), 10)
	wantInt(t, evalSrc(t, "return 2 * 5; 9"), 10)
	wantInt(t, evalSrc(t, "9; return 2 * 5; 9"), 10)
}

func Test_Eval_ReturnPropagatesThroughNestedBlocks(t *testing.T) {
	src := `
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }
  return 1;
}`
	wantInt(t, evalSrc(t, src), 10)
}

func Test_Eval_ReturnInsideFunctionStopsAtCallBoundary(t *testing.T) {
	src := `
let f = fn(x) {
  if (x > 5) {
    if (true) {
      return 100;
    }
  }
  return 0;
};
f(10) + f(1)`
	wantInt(t, evalSrc(t, src), 100)
}

// --- functions & closures --------------------------------------------------

func Test_Eval_FunctionApplication(t *testing.T) {
	wantInt(t, evalSrc(t, "let identity = fn(x) { x; }; identity(5)"), 5)
	wantInt(t, evalSrc(t, "let identity = fn(x) { return x; }; identity(5)"), 5)
	wantInt(t, evalSrc(t, "let double = fn(x) { x * 2; }; double(5)"), 10)
	wantInt(t, evalSrc(t, "let add = fn(x, y) { x + y; }; add(5, 5)"), 10)
	wantInt(t, evalSrc(t, "let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5))"), 20)
	wantInt(t, evalSrc(t, "fn(x) { x; }(5)"), 5)
	// Empty body yields null.
	wantNull(t, evalSrc(t, "fn() {}()"))
}

func Test_Eval_Closures(t *testing.T) {
	src := `
let newAdder = fn(x) {
  fn(y) { x + y };
};
let addTwo = newAdder(2);
addTwo(2)`
	wantInt(t, evalSrc(t, src), 4)
}

func Test_Eval_ClosureOutlivesOuterCall(t *testing.T) {
	src := `
let counterFrom = fn(start) {
  fn() { start }
};
let c = counterFrom(41);
c() + 1`
	wantInt(t, evalSrc(t, src), 42)
}

func Test_Eval_ClosureCapturesDefinitionEnv(t *testing.T) {
	// The captured environment is the definition site, not the call site.
	src := `
let x = 1;
let f = fn() { x };
let g = fn(x) { f() };
g(99)`
	wantInt(t, evalSrc(t, src), 1)
}

func Test_Eval_ArityMismatch(t *testing.T) {
	err := evalRuntimeErr(t, "let add = fn(x, y) { x + y }; add(1)")
	wantErrContains(t, err, "wrong number of arguments: expected 2, got 1")

	err = evalRuntimeErr(t, "fn() { 1 }(1, 2)")
	wantErrContains(t, err, "wrong number of arguments: expected 0, got 2")
}

func Test_Eval_CallNonCallable(t *testing.T) {
	err := evalRuntimeErr(t, "let x = 5; x(1)")
	wantErrContains(t, err, "cannot call non function object")
}

// --- arrays ----------------------------------------------------------------

func Test_Eval_ArrayLiteralsAndIndexing(t *testing.T) {
	v := evalSrc(t, "[1, 2 * 2, 3 + 3]")
	if v.Tag != VTArray {
		t.Fatalf("want array, got %#v", v)
	}
	elems := v.Data.(*ArrayObject).Elems
	if len(elems) != 3 {
		t.Fatalf("want 3 elements, got %d", len(elems))
	}
	wantInt(t, elems[0], 1)
	wantInt(t, elems[1], 4)
	wantInt(t, elems[2], 6)

	wantInt(t, evalSrc(t, "[1, 2, 3][0]"), 1)
	wantInt(t, evalSrc(t, "[1, 2, 3][1]"), 2)
	wantInt(t, evalSrc(t, "[1, 2, 3][1 + 1]"), 3)
	wantInt(t, evalSrc(t, "let xs = [1, 2, 3]; xs[2]"), 3)
	wantNull(t, evalSrc(t, "[null][0]"))
}

func Test_Eval_ArrayIndexErrors(t *testing.T) {
	err := evalRuntimeErr(t, "[1, 2, 3][5]")
	wantErrContains(t, err, "index 5 outside of range [0:3)")

	err = evalRuntimeErr(t, "[1, 2, 3][-1]")
	wantErrContains(t, err, "index -1 outside of range [0:3)")

	err = evalRuntimeErr(t, `[1, 2, 3]["x"]`)
	wantErrContains(t, err, "index to an array must be an expression that yields an Int")

	err = evalRuntimeErr(t, "5[0]")
	wantErrContains(t, err, "index operator not supported for Int")
}

// --- inspect ---------------------------------------------------------------

func Test_Inspect_Rendering(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"5", "5"},
		{"true", "true"},
		{`"hi"`, "hi"},
		{"null", "null"},
		{"()", "unit"},
		{`[1, "two", null, [3]]`, "[1, two, null, [3]]"},
		{"fn(a, b) { a + b }", "fn(a, b) {...}"},
	}
	for _, c := range cases {
		if got := evalSrc(t, c.src).Inspect(); got != c.want {
			t.Fatalf("Inspect(%s): want %q, got %q", c.src, c.want, got)
		}
	}
}

// --- sessions --------------------------------------------------------------

func Test_Eval_EphemeralVsPersistent(t *testing.T) {
	ip := NewInterpreter()

	if _, err := ip.EvalSource("let x = 1"); err != nil {
		t.Fatalf("EvalSource: %v", err)
	}
	if _, err := ip.EvalSource("x"); err == nil {
		t.Fatalf("ephemeral binding leaked into Global")
	}

	if _, err := ip.EvalPersistentSource("let y = 2"); err != nil {
		t.Fatalf("EvalPersistentSource: %v", err)
	}
	v, err := ip.EvalPersistentSource("y + 1")
	if err != nil {
		t.Fatalf("EvalPersistentSource: %v", err)
	}
	wantInt(t, v, 3)
}

func Test_Eval_EmptyProgram(t *testing.T) {
	wantNull(t, evalSrc(t, ""))
}
