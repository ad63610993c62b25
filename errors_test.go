package monkey

import (
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_ErrorWrap_Runtime_ShowsCaretAndContext(t *testing.T) {
	src := "let a = 10;\na / 0\nlet b = 1;"

	ip := NewInterpreter()
	_, err := ip.EvalSource(src)
	if err == nil {
		t.Fatalf("expected runtime error")
	}

	msg := WrapErrorWithSource(err, src).Error()
	mustContain(t, msg, "RUNTIME ERROR at 2:3: cannot divide by 0")
	mustContain(t, msg, "   1 | let a = 10;")
	mustContain(t, msg, "   2 | a / 0")
	mustContain(t, msg, "     |   ^")
	mustContain(t, msg, "   3 | let b = 1;")
}

func Test_ErrorWrap_Parse_ShowsCaret(t *testing.T) {
	src := "let x = 1\nlet = 2"

	_, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error")
	}

	msg := WrapErrorWithSource(err, src).Error()
	mustContain(t, msg, "PARSE ERROR at 2:5:")
	mustContain(t, msg, "   2 | let = 2")
	mustContain(t, msg, "^")
}

func Test_ErrorWrap_WithName(t *testing.T) {
	src := "x"
	ip := NewInterpreter()
	_, err := ip.EvalSource(src)
	msg := WrapErrorWithName(err, "script.mk", src).Error()
	mustContain(t, msg, "RUNTIME ERROR in script.mk at 1:1:")
}

func Test_ErrorWrap_PassesThroughOtherErrors(t *testing.T) {
	plain := errPlain("boom")
	if got := WrapErrorWithSource(plain, "src"); got != plain {
		t.Fatalf("foreign error should pass through unchanged, got %v", got)
	}
}

func Test_ErrorWrap_ClampsOutOfRangePositions(t *testing.T) {
	err := &RuntimeError{Line: 99, Col: 99, Msg: "late"}
	msg := WrapErrorWithSource(err, "only line").Error()
	mustContain(t, msg, "   1 | only line")
}

type errPlain string

func (e errPlain) Error() string { return string(e) }
