// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// WrapErrorWithSource turns positioned errors (*ParseError, *RuntimeError)
// into readable snippets with a caret pointing at the offending column:
//
//	RUNTIME ERROR at 2:5: cannot divide by 0
//
//	   1 | let a = 10;
//	   2 | a / 0
//	     |     ^
//
// The snippet shows up to one line of context before and after the error,
// numbers the lines, and places the caret under the 1-based column. Any
// other error kind passes through unchanged. Output is plain text (no ANSI
// colors), suitable for logs and terminals.
package monkey

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet
// of src when err is a positioned parse or runtime error, and err itself
// otherwise.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name ("in <name>")
// included in the header when non-empty.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Col, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", snippet(src, "RUNTIME ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// snippet builds the caret rendering. Coordinates are 1-based and clamped
// to the source bounds so malformed positions cannot break rendering.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
