// interpreter_ops.go — prefix, infix, and index operator semantics.
//
// The infix rules are ordered: both-Int, both-Str, mixed + with a string
// side, == and != identity fallback, then the null branch (arithmetic
// propagates Null, everything else is a null-operand error), and finally
// the type-mismatch error. Errors are positioned at the operator token
// except index errors, which point at the offending sub-expression.
package monkey

func (ip *Interpreter) evalPrefix(expr *PrefixExpression, env *Env) (Value, error) {
	operand, err := ip.eval(expr.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch expr.Operator {
	case "!":
		return BoolVal(!Truthy(operand)), nil
	case "-":
		switch operand.Tag {
		case VTInt:
			return IntVal(-operand.Data.(int64)), nil
		case VTNull:
			return Null, nil
		default:
			return Value{}, errAt(expr.Token, "operation - not supported for type %s", operand.TypeName())
		}
	default:
		panic("unreachable: unhandled prefix operator " + expr.Operator)
	}
}

func (ip *Interpreter) evalInfix(expr *InfixExpression, env *Env) (Value, error) {
	left, err := ip.eval(expr.Left, env)
	if err != nil {
		return Value{}, err
	}
	right, err := ip.eval(expr.Right, env)
	if err != nil {
		return Value{}, err
	}

	if left.Tag == VTInt && right.Tag == VTInt {
		return ip.evalIntInfix(expr, left.Data.(int64), right.Data.(int64))
	}
	if left.Tag == VTStr && right.Tag == VTStr {
		return ip.evalStrInfix(expr, left.Data.(string), right.Data.(string))
	}

	// Concatenation is allowed when only one side is a string; the other
	// side contributes its Inspect rendering.
	if expr.Operator == "+" && (left.Tag == VTStr || right.Tag == VTStr) {
		return StrVal(left.Inspect() + right.Inspect()), nil
	}

	switch expr.Operator {
	case "==":
		return BoolVal(Identical(left, right)), nil
	case "!=":
		return BoolVal(!Identical(left, right)), nil
	}

	if left.Tag == VTNull || right.Tag == VTNull {
		return ip.evalNullInfix(expr, left, right)
	}

	return Value{}, errAt(expr.Token, "operation %s not supported for types %s and %s",
		expr.Operator, left.TypeName(), right.TypeName())
}

func (ip *Interpreter) evalIntInfix(expr *InfixExpression, left, right int64) (Value, error) {
	switch expr.Operator {
	case "+":
		return IntVal(left + right), nil
	case "-":
		return IntVal(left - right), nil
	case "*":
		return IntVal(left * right), nil
	case "/":
		if right == 0 {
			return Value{}, errAt(expr.Token, "cannot divide by 0")
		}
		return IntVal(left / right), nil
	case "==":
		return BoolVal(left == right), nil
	case "!=":
		return BoolVal(left != right), nil
	case "<":
		return BoolVal(left < right), nil
	case ">":
		return BoolVal(left > right), nil
	default:
		panic("unreachable: unhandled infix operator " + expr.Operator)
	}
}

func (ip *Interpreter) evalStrInfix(expr *InfixExpression, left, right string) (Value, error) {
	switch expr.Operator {
	case "+":
		return StrVal(left + right), nil
	case "==":
		return BoolVal(left == right), nil
	case "!=":
		return BoolVal(left != right), nil
	case "<":
		return BoolVal(left < right), nil
	case ">":
		return BoolVal(left > right), nil
	default:
		return Value{}, errAt(expr.Token, "operation %s not supported between strings", expr.Operator)
	}
}

// evalNullInfix implements the propagation rule: arithmetic with a null
// operand yields Null, anything else is an error naming the null side.
func (ip *Interpreter) evalNullInfix(expr *InfixExpression, left, right Value) (Value, error) {
	switch expr.Operator {
	case "+", "-", "*", "/":
		return Null, nil
	}

	detail := "right value is"
	if left.Tag == VTNull && right.Tag == VTNull {
		detail = "both values are"
	} else if left.Tag == VTNull {
		detail = "left value is"
	}
	return Value{}, errAt(expr.Token, "null value error: %s null", detail)
}

// evalIndex evaluates base[index]. Only arrays are indexable and only by
// integers within [0, len). Out of range is an error, not Null: arrays may
// legitimately hold null elements, so a silent Null would be ambiguous.
func (ip *Interpreter) evalIndex(expr *IndexExpression, env *Env) (Value, error) {
	base, err := ip.eval(expr.Left, env)
	if err != nil {
		return Value{}, err
	}

	if base.Tag != VTArray {
		return Value{}, errAt(expr.Left.Pos(), "index operator not supported for %s", base.TypeName())
	}
	elems := base.Data.(*ArrayObject).Elems

	idx, err := ip.eval(expr.Index, env)
	if err != nil {
		return Value{}, err
	}
	if idx.Tag != VTInt {
		return Value{}, errAt(expr.Index.Pos(), "index to an array must be an expression that yields an Int")
	}

	i := idx.Data.(int64)
	if i < 0 || i >= int64(len(elems)) {
		return Value{}, errAt(expr.Index.Pos(), "index %d outside of range [0:%d)", i, len(elems))
	}
	return elems[i], nil
}
