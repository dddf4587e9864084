package interpreter

import (
	"math"

	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalFloat implements `fadd fsub fmul fdiv feql fneq flt fle fgt fge`
// from spec.md §4.5. Unlike the general equality oracle, these comparisons
// are exact IEEE-754 comparisons — spec.md treats them as deterministic,
// distinct from the nondeterministic structural-equality primops.
func evalFloat(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	if len(operands) != 2 {
		return faultStoreFunc(arityFault(op, 2, len(operands)))
	}
	x, y, ok := twoReals(operands)
	if !ok {
		return faultStoreFunc(typeFault(op, firstBadOperand(operands)))
	}

	switch op {
	case cps.FAdd, cps.FSubtract, cps.FMultiply, cps.FDivide:
		if op == cps.FDivide && y == 0.0 {
			return doRaise(runtime.DivExn)
		}
		var result float64
		switch op {
		case cps.FAdd:
			result = x + y
		case cps.FSubtract:
			result = x - y
		case cps.FMultiply:
			result = x * y
		case cps.FDivide:
			result = x / y
		}
		if math.IsInf(result, 0) || math.IsNaN(result) || result < limits.MinReal || result > limits.MaxReal {
			return doRaise(runtime.OverflowExn)
		}
		return conts[0]([]runtime.Value{runtime.RealValue{Val: result}})

	case cps.FEqual, cps.FNEqual, cps.FLess, cps.FLessEqual, cps.FGreater, cps.FGreaterEqual:
		var cond bool
		switch op {
		case cps.FEqual:
			cond = x == y
		case cps.FNEqual:
			cond = x != y
		case cps.FLess:
			cond = x < y
		case cps.FLessEqual:
			cond = x <= y
		case cps.FGreater:
			cond = x > y
		case cps.FGreaterEqual:
			cond = x >= y
		}
		return branch(cond, conts)

	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not a float primop: %s", op))
	}
}

func twoReals(operands []runtime.Value) (x, y float64, ok bool) {
	if len(operands) != 2 {
		return 0, 0, false
	}
	xv, ok1 := operands[0].(runtime.RealValue)
	yv, ok2 := operands[1].(runtime.RealValue)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return xv.Val, yv.Val, true
}

func firstBadOperand(operands []runtime.Value) runtime.Value {
	if len(operands) == 0 {
		return runtime.IntegerValue{}
	}
	return operands[0]
}
