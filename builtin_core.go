// builtin_core.go — the core builtin registry.
//
// Builtins are ordinary callables resolved when an identifier is absent
// from the environment chain, so user bindings shadow them. Each builtin
// checks its own arity and operand types and reports failures through the
// same positioned RuntimeError taxonomy as the evaluator. Builtins are
// argument-in/value-out: they never see an environment and cannot create
// bindings. The only side-effecting builtin, puts, writes through the
// interpreter's injected Out sink.
package monkey

import "fmt"

func registerCoreBuiltins(ip *Interpreter) {
	register := func(name string, fn BuiltinFn) {
		ip.builtins[name] = Value{Tag: VTBuiltin, Data: &Builtin{Name: name, Fn: fn}}
	}

	// len(x) -> Int: string length in bytes, or array element count.
	register("len", func(_ *Interpreter, tok Token, args []Value) (Value, error) {
		if err := wantArity(tok, "len", 1, args); err != nil {
			return Value{}, err
		}
		switch args[0].Tag {
		case VTStr:
			return IntVal(int64(len(args[0].Data.(string)))), nil
		case VTArray:
			return IntVal(int64(len(args[0].Data.(*ArrayObject).Elems))), nil
		default:
			return Value{}, errAt(tok, "argument to len not supported, got %s", args[0].TypeName())
		}
	})

	// first(arr) -> first element. Empty arrays are an error: Null is a
	// legitimate element, so returning it for "no element" would be
	// ambiguous (same reasoning as out-of-range indexing).
	register("first", func(_ *Interpreter, tok Token, args []Value) (Value, error) {
		elems, err := wantArray(tok, "first", 1, args)
		if err != nil {
			return Value{}, err
		}
		if len(elems) == 0 {
			return Value{}, errAt(tok, "first of empty array")
		}
		return elems[0], nil
	})

	// last(arr) -> last element; empty arrays are an error.
	register("last", func(_ *Interpreter, tok Token, args []Value) (Value, error) {
		elems, err := wantArray(tok, "last", 1, args)
		if err != nil {
			return Value{}, err
		}
		if len(elems) == 0 {
			return Value{}, errAt(tok, "last of empty array")
		}
		return elems[len(elems)-1], nil
	})

	// rest(arr) -> new array with all but the first element; empty arrays
	// are an error.
	register("rest", func(_ *Interpreter, tok Token, args []Value) (Value, error) {
		elems, err := wantArray(tok, "rest", 1, args)
		if err != nil {
			return Value{}, err
		}
		if len(elems) == 0 {
			return Value{}, errAt(tok, "rest of empty array")
		}
		out := make([]Value, len(elems)-1)
		copy(out, elems[1:])
		return ArrVal(out), nil
	})

	// push(arr, x) -> new array with x appended. The receiving array is
	// unchanged; array length is fixed at construction.
	register("push", func(_ *Interpreter, tok Token, args []Value) (Value, error) {
		if err := wantArity(tok, "push", 2, args); err != nil {
			return Value{}, err
		}
		if args[0].Tag != VTArray {
			return Value{}, errAt(tok, "first argument to push must be Array, got %s", args[0].TypeName())
		}
		elems := args[0].Data.(*ArrayObject).Elems
		out := make([]Value, len(elems), len(elems)+1)
		copy(out, elems)
		return ArrVal(append(out, args[1])), nil
	})

	// str(x) -> the Inspect rendering of any value.
	register("str", func(_ *Interpreter, tok Token, args []Value) (Value, error) {
		if err := wantArity(tok, "str", 1, args); err != nil {
			return Value{}, err
		}
		return StrVal(args[0].Inspect()), nil
	})

	// puts(args...) -> Unit. Writes each argument's Inspect form plus a
	// newline to the interpreter's Out sink. Yields Unit so the result of
	// a pure side effect cannot be let-bound.
	register("puts", func(ip *Interpreter, tok Token, args []Value) (Value, error) {
		for _, a := range args {
			if _, err := fmt.Fprintln(ip.Out, a.Inspect()); err != nil {
				return Value{}, errAt(tok, "puts: %v", err)
			}
		}
		return Unit, nil
	})
}

func wantArity(tok Token, name string, want int, args []Value) error {
	if len(args) != want {
		return errAt(tok, "wrong number of arguments to %s: expected %d, got %d", name, want, len(args))
	}
	return nil
}

func wantArray(tok Token, name string, arity int, args []Value) ([]Value, error) {
	if err := wantArity(tok, name, arity, args); err != nil {
		return nil, err
	}
	if args[0].Tag != VTArray {
		return nil, errAt(tok, "argument to %s must be Array, got %s", name, args[0].TypeName())
	}
	return args[0].Data.(*ArrayObject).Elems, nil
}
