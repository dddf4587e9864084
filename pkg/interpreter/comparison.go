package interpreter

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalComparison implements `< <= > >= ieql ineq rangechk boxed` from
// spec.md §4.5. Arms[0] is always the true branch, Arms[1] the false
// branch (the "[t, f]" convention), each invoked with an empty argument
// list.
func evalComparison(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	switch op {
	case cps.Less, cps.LessEqual, cps.Greater, cps.GreaterEqual:
		if len(operands) != 2 {
			return faultStoreFunc(arityFault(op, 2, len(operands)))
		}
		x, ok1 := operands[0].(runtime.IntegerValue)
		y, ok2 := operands[1].(runtime.IntegerValue)
		if !ok1 {
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		if !ok2 {
			return faultStoreFunc(typeFault(op, operands[1]))
		}
		var cond bool
		switch op {
		case cps.Less:
			cond = x.Val < y.Val
		case cps.LessEqual:
			cond = x.Val <= y.Val
		case cps.Greater:
			cond = x.Val > y.Val
		case cps.GreaterEqual:
			cond = x.Val >= y.Val
		}
		return branch(cond, conts)

	case cps.IEqual, cps.INEqual:
		if len(operands) != 2 {
			return faultStoreFunc(arityFault(op, 2, len(operands)))
		}
		eq, err := runtime.ValuesEqual(operands[0], operands[1], limits.Oracle)
		if err != nil {
			return faultStoreFunc(err)
		}
		if op == cps.INEqual {
			eq = !eq
		}
		return branch(eq, conts)

	case cps.RangeCheck:
		if len(operands) != 2 {
			return faultStoreFunc(arityFault(op, 2, len(operands)))
		}
		x, ok1 := operands[0].(runtime.IntegerValue)
		y, ok2 := operands[1].(runtime.IntegerValue)
		if !ok1 {
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		if !ok2 {
			return faultStoreFunc(typeFault(op, operands[1]))
		}
		i, j := x.Val, y.Val
		var t bool
		switch {
		case j < 0 && i < 0:
			t = i < j
		case j < 0 && i >= 0:
			t = true
		case j >= 0 && i < 0:
			t = false
		default:
			t = i < j
		}
		return branch(t, conts)

	case cps.Boxed:
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		_, isInt := operands[0].(runtime.IntegerValue)
		return branch(!isInt, conts)

	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not a comparison primop: %s", op))
	}
}

func branch(cond bool, conts []runtime.Meaning) runtime.StoreFunc {
	if cond {
		return conts[0](nil)
	}
	return conts[1](nil)
}
