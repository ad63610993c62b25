// interpreter.go — public surface of the Monkey interpreter.
//
// This file holds the runtime value model, lexical environments, the
// positioned runtime error type, and the Interpreter entry points. The
// recursive evaluation engine lives in interpreter_exec.go and
// interpreter_ops.go; builtins are registered in builtin_core.go.
//
// VALUES
// ------
// Value is a tagged union: Tag selects the active case, Data holds the
// payload appropriate for the tag (int64 for VTInt, *ArrayObject for
// VTArray, and so on). Aggregates use pointer payloads so that the identity
// fallback of == / != is well-defined. Null and Unit are singletons; Unit
// means "no meaningful value" (the result of pure side effects) and is
// distinct from Null, which is a proper first-class value.
//
// ENVIRONMENTS
// ------------
// Env frames form a parent-linked chain. Get walks parent-ward; Define
// writes into the current frame only. The chain is append-only and acyclic:
// parents never reference children. A function value shares (not copies)
// the frame that was active where the literal was evaluated — that is the
// closure contract.
//
// ERRORS
// ------
// RuntimeError is the single user-facing failure kind out of evaluation,
// carrying a 1-based source position. An AST shape the dispatcher does not
// recognize is a programming fault and panics instead.
package monkey

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ValueTag enumerates all runtime kinds a Value may hold.
type ValueTag int

const (
	VTNull    ValueTag = iota // null singleton (no payload)
	VTUnit                    // unit singleton (no payload)
	VTBool                    // bool
	VTInt                     // int64
	VTStr                     // string
	VTArray                   // *ArrayObject
	VTFun                     // *Fun (user closure)
	VTBuiltin                 // *Builtin (native callable)
	VTReturn                  // Value (inner value of a return statement)
)

// Value is the universal runtime carrier used by the interpreter.
// VTReturn never escapes statement-sequence or call evaluation; user code
// can never observe or bind it.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Null and Unit are the two designated singletons. Compare them (and any
// Value) with Identical, not with ==, since Data may hold pointers.
var (
	Null = Value{Tag: VTNull}
	Unit = Value{Tag: VTUnit}

	True  = Value{Tag: VTBool, Data: true}
	False = Value{Tag: VTBool, Data: false}
)

// Primitive constructors.
func BoolVal(b bool) Value {
	if b {
		return True
	}
	return False
}
func IntVal(n int64) Value  { return Value{Tag: VTInt, Data: n} }
func StrVal(s string) Value { return Value{Tag: VTStr, Data: s} }

// ArrVal wraps elems into a new array value. The element count is fixed
// after construction; builtins like push return new arrays.
func ArrVal(elems []Value) Value {
	return Value{Tag: VTArray, Data: &ArrayObject{Elems: elems}}
}

// ArrayObject is the heap payload of VTArray values.
type ArrayObject struct {
	Elems []Value
}

// Fun is a user function: parameter list, body, and the environment that
// was active where the literal was evaluated (shared by reference).
type Fun struct {
	Params []*Identifier
	Body   *BlockStatement
	Env    *Env
}

// BuiltinFn is the implementation signature of a native callable. It
// receives the call-site token for error positions and the already
// evaluated arguments; it is responsible for its own arity and type checks.
// Builtins never receive an environment and cannot create bindings.
type BuiltinFn func(ip *Interpreter, tok Token, args []Value) (Value, error)

// Builtin is a native callable exposed under a fixed identifier.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// TypeName returns the user-facing name of the value's kind, as used in
// error messages.
func (v Value) TypeName() string {
	switch v.Tag {
	case VTNull:
		return "Null"
	case VTUnit:
		return "Unit"
	case VTBool:
		return "Bool"
	case VTInt:
		return "Int"
	case VTStr:
		return "Str"
	case VTArray:
		return "Array"
	case VTFun:
		return "Function"
	case VTBuiltin:
		return "Builtin"
	case VTReturn:
		return "Return"
	default:
		panic(fmt.Sprintf("unreachable: unknown value tag %d", v.Tag))
	}
}

// Inspect renders the canonical textual form of a value: integers in
// decimal, booleans as true/false, strings unquoted, arrays element-wise,
// functions as an opaque placeholder, null/unit as literal words.
func (v Value) Inspect() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTUnit:
		return "unit"
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTStr:
		return v.Data.(string)
	case VTArray:
		elems := v.Data.(*ArrayObject).Elems
		parts := make([]string, 0, len(elems))
		for _, e := range elems {
			parts = append(parts, e.Inspect())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case VTFun:
		f := v.Data.(*Fun)
		params := make([]string, 0, len(f.Params))
		for _, p := range f.Params {
			params = append(params, p.Value)
		}
		return "fn(" + strings.Join(params, ", ") + ") {...}"
	case VTBuiltin:
		return "builtin " + v.Data.(*Builtin).Name
	case VTReturn:
		return v.Data.(Value).Inspect()
	default:
		panic(fmt.Sprintf("unreachable: unknown value tag %d", v.Tag))
	}
}

// Identical is the identity comparison == and != fall back to when no
// typed rule matches: singletons compare by tag, booleans by value,
// aggregates and callables by pointer.
func Identical(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull, VTUnit:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTArray:
		return a.Data.(*ArrayObject) == b.Data.(*ArrayObject)
	case VTFun:
		return a.Data.(*Fun) == b.Data.(*Fun)
	case VTBuiltin:
		return a.Data.(*Builtin) == b.Data.(*Builtin)
	default:
		// Int and Str never reach the identity fallback from the
		// operator path; compare payloads for completeness.
		return a.Data == b.Data
	}
}

// Truthy converts a value for conditional contexts: false, null and unit
// are falsy, everything else is truthy.
func Truthy(v Value) bool {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool)
	case VTNull, VTUnit:
		return false
	default:
		return true
	}
}

// Env is a lexical environment frame with a parent link. Lookups walk
// parent-ward; Define writes into this frame only and never deletes.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a frame whose parent may be nil (the global frame).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Get retrieves the nearest visible binding for name.
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.table[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Define binds name to v in the current frame, shadowing any outer
// binding, and returns v to support expression-like chaining.
func (e *Env) Define(name string, v Value) Value {
	e.table[name] = v
	return v
}

// RuntimeError represents an evaluation-time failure with a 1-based source
// position. It is the only checked failure channel out of Eval*.
type RuntimeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// errAt builds a RuntimeError positioned at tok.
func errAt(tok Token, format string, args ...interface{}) error {
	return &RuntimeError{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

// Interpreter evaluates Monkey programs.
//
// Public fields:
//   - Global — persistent program environment (REPL state). Created empty.
//   - Out    — sink the puts builtin writes to (defaults to os.Stdout).
//
// Evaluation is single-threaded; hosts running independent sessions
// concurrently must use separate Interpreter instances.
type Interpreter struct {
	Global *Env
	Out    io.Writer

	builtins map[string]Value
}

// NewInterpreter returns a ready-to-use interpreter with the core builtins
// installed and an empty global environment.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		Global:   NewEnv(nil),
		Out:      os.Stdout,
		builtins: make(map[string]Value),
	}
	registerCoreBuiltins(ip)
	return ip
}

// LookupBuiltin resolves a builtin by name. The evaluator consults it after
// the environment chain is exhausted.
func (ip *Interpreter) LookupBuiltin(name string) (Value, bool) {
	v, ok := ip.builtins[name]
	return v, ok
}

// EvalSource parses and evaluates src in a fresh child of Global, so
// bindings made by the program do not leak into persistent state.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	prog, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return ip.EvalProgram(prog, NewEnv(ip.Global))
}

// EvalPersistentSource parses and evaluates src directly in Global, so let
// bindings persist across calls (REPL semantics).
func (ip *Interpreter) EvalPersistentSource(src string) (Value, error) {
	prog, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return ip.EvalProgram(prog, ip.Global)
}

// EvalProgram evaluates an already-parsed program in env. The program's
// value is the value of its last statement, or the unwrapped operand of the
// first return statement executed at the top level.
func (ip *Interpreter) EvalProgram(prog *Program, env *Env) (Value, error) {
	return ip.evalProgram(prog, env)
}
