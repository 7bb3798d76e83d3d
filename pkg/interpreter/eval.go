package interpreter

// Eval reduces a Value tree to a single terminal Value. Numbers, symbols and
// errors evaluate to themselves; expressions reduce bottom-up, left to right,
// with the first error replacing the whole expression.
func Eval(v *Value) *Value {
	if v.typ != TypeExpression {
		return v
	}

	return evalExpression(v)
}

func evalExpression(v *Value) *Value {
	for i, child := range v.children {
		res := Eval(child)
		if res.typ == TypeError {
			// remaining children are never evaluated
			return res
		}

		v.children[i] = res
	}

	if len(v.children) == 0 {
		return v
	}

	if len(v.children) == 1 {
		return v.children[0]
	}

	op := v.children[0]
	if op.typ != TypeSymbol {
		return NewError("S-expression does not start with a symbol")
	}

	return applyOp(op.text, v.children[1:])
}

// applyOp folds op over the already-evaluated operands, left to right.
func applyOp(op string, operands []*Value) *Value {
	for _, operand := range operands {
		if operand.typ != TypeNumber {
			return NewError("cannot operate on a non-number")
		}
	}

	switch op {
	case "+", "-", "*", "/":
	default:
		return NewError("invalid operator")
	}

	if op == "-" && len(operands) == 1 {
		return NewNumber(-operands[0].number)
	}

	res := operands[0].number
	for _, operand := range operands[1:] {
		switch op {
		case "+":
			res += operand.number
		case "-":
			res -= operand.number
		case "*":
			res *= operand.number
		case "/":
			if operand.number == 0 {
				return NewError("division by zero")
			}
			res /= operand.number
		}
	}

	return NewNumber(res)
}
