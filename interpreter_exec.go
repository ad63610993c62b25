// interpreter_exec.go — the recursive tree-walking engine.
//
// eval dispatches over every AST node variant. Statement sequences thread a
// running value and stop at the first VTReturn wrapper: the program level
// unwraps it, block level propagates it unchanged so the enclosing call can
// unwrap at the right depth. The wrapper is confined to this file's
// statement/call paths and never reaches the operator code.
package monkey

import "fmt"

func (ip *Interpreter) eval(node Node, env *Env) (Value, error) {
	switch node := node.(type) {
	// Statements
	case *Program:
		return ip.evalProgram(node, env)
	case *BlockStatement:
		return ip.evalBlock(node, env)
	case *ExpressionStatement:
		return ip.eval(node.Expression, env)
	case *LetStatement:
		return ip.evalLet(node, env)
	case *ReturnStatement:
		return ip.evalReturn(node, env)

	// Expressions
	case *IntegerLiteral:
		return IntVal(node.Value), nil
	case *BooleanLiteral:
		return BoolVal(node.Value), nil
	case *StringLiteral:
		return StrVal(node.Value), nil
	case *NullLiteral:
		return Null, nil
	case *UnitExpression:
		return Unit, nil
	case *Identifier:
		return ip.evalIdentifier(node, env)
	case *PrefixExpression:
		return ip.evalPrefix(node, env)
	case *InfixExpression:
		return ip.evalInfix(node, env)
	case *IfExpression:
		return ip.evalIf(node, env)
	case *FunctionLiteral:
		return Value{Tag: VTFun, Data: &Fun{Params: node.Parameters, Body: node.Body, Env: env}}, nil
	case *CallExpression:
		return ip.evalCall(node, env)
	case *ArrayLiteral:
		return ip.evalArrayLiteral(node, env)
	case *IndexExpression:
		return ip.evalIndex(node, env)

	default:
		panic(fmt.Sprintf("unreachable: unhandled AST node %T", node))
	}
}

// evalStatements runs a statement sequence. An empty sequence yields Null.
// unwrapReturn selects program-level semantics (unwrap the return wrapper)
// versus block-level (propagate it for the enclosing call to unwrap).
func (ip *Interpreter) evalStatements(stmts []Statement, env *Env, unwrapReturn bool) (Value, error) {
	result := Null
	for _, stmt := range stmts {
		var err error
		result, err = ip.eval(stmt, env)
		if err != nil {
			return Value{}, err
		}
		if result.Tag == VTReturn {
			if unwrapReturn {
				return result.Data.(Value), nil
			}
			return result, nil
		}
	}
	return result, nil
}

func (ip *Interpreter) evalProgram(prog *Program, env *Env) (Value, error) {
	return ip.evalStatements(prog.Statements, env, true)
}

func (ip *Interpreter) evalBlock(block *BlockStatement, env *Env) (Value, error) {
	return ip.evalStatements(block.Statements, env, false)
}

func (ip *Interpreter) evalLet(stmt *LetStatement, env *Env) (Value, error) {
	v, err := ip.eval(stmt.Value, env)
	if err != nil {
		return Value{}, err
	}
	if v.Tag == VTUnit {
		return Value{}, errAt(stmt.Token, "cannot bind unit (void) to a variable")
	}
	return env.Define(stmt.Name.Value, v), nil
}

func (ip *Interpreter) evalReturn(stmt *ReturnStatement, env *Env) (Value, error) {
	v, err := ip.eval(stmt.ReturnValue, env)
	if err != nil {
		return Value{}, err
	}
	return Value{Tag: VTReturn, Data: v}, nil
}

// evalIdentifier resolves through the environment chain first, then the
// builtin registry, so user bindings shadow builtins.
func (ip *Interpreter) evalIdentifier(id *Identifier, env *Env) (Value, error) {
	if v, ok := env.Get(id.Value); ok {
		return v, nil
	}
	if v, ok := ip.LookupBuiltin(id.Value); ok {
		return v, nil
	}
	return Value{}, errAt(id.Token, "variable %s is not declared", id.Value)
}

func (ip *Interpreter) evalIf(expr *IfExpression, env *Env) (Value, error) {
	cond, err := ip.eval(expr.Condition, env)
	if err != nil {
		return Value{}, err
	}
	if Truthy(cond) {
		return ip.evalBlock(expr.Consequence, env)
	}
	if expr.Alternative != nil {
		return ip.evalBlock(expr.Alternative, env)
	}
	return Null, nil
}

func (ip *Interpreter) evalCall(call *CallExpression, env *Env) (Value, error) {
	callee, err := ip.eval(call.Function, env)
	if err != nil {
		return Value{}, err
	}

	switch callee.Tag {
	case VTFun, VTBuiltin:
		// callable
	default:
		return Value{}, errAt(call.Token, "cannot call non function object")
	}

	args, err := ip.evalExpressions(call.Arguments, env)
	if err != nil {
		return Value{}, err
	}

	if callee.Tag == VTBuiltin {
		return callee.Data.(*Builtin).Fn(ip, call.Token, args)
	}
	return ip.applyFun(callee.Data.(*Fun), call.Token, args)
}

// applyFun invokes a user function: a fresh frame is chained to the
// function's captured environment (not the caller's), parameters are bound
// positionally, and a return wrapper produced by the body is unwrapped
// here, at the call boundary.
func (ip *Interpreter) applyFun(fn *Fun, callTok Token, args []Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return Value{}, errAt(callTok, "wrong number of arguments: expected %d, got %d",
			len(fn.Params), len(args))
	}

	frame := NewEnv(fn.Env)
	for i, p := range fn.Params {
		frame.Define(p.Value, args[i])
	}

	v, err := ip.evalBlock(fn.Body, frame)
	if err != nil {
		return Value{}, err
	}
	if v.Tag == VTReturn {
		return v.Data.(Value), nil
	}
	return v, nil
}

func (ip *Interpreter) evalExpressions(exprs []Expression, env *Env) ([]Value, error) {
	vals := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := ip.eval(e, env)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (ip *Interpreter) evalArrayLiteral(arr *ArrayLiteral, env *Env) (Value, error) {
	elems, err := ip.evalExpressions(arr.Elements, env)
	if err != nil {
		return Value{}, err
	}
	return ArrVal(elems), nil
}
