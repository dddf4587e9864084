package interpreter

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalPrimop is evalprim(p, operands, cont_list) from spec.md §4.5: it
// dispatches to one rule per Primop group. Each rule lives in its own file
// by concern, mirroring the §3 grouping (arithmetic, comparisons, access,
// mutation, allocation, handler, float, bitwise).
func evalPrimop(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	switch op {
	case cps.Add, cps.Subtract, cps.Multiply, cps.Divide, cps.Negate:
		return evalArithmetic(op, operands, conts, limits)
	case cps.Less, cps.LessEqual, cps.Greater, cps.GreaterEqual, cps.IEqual, cps.INEqual, cps.RangeCheck, cps.Boxed:
		return evalComparison(op, operands, conts, limits)
	case cps.Bang, cps.Subscript, cps.OrdinalOf, cps.ArrayLength, cps.StringLength:
		return evalAccess(op, operands, conts, limits)
	case cps.ColonEqual, cps.Update, cps.UnboxedAssign, cps.UnboxedUpdate, cps.Store:
		return evalMutation(op, operands, conts, limits)
	case cps.MakeRef, cps.MakeRefUnboxed:
		return evalAlloc(op, operands, conts, limits)
	case cps.GetHandler, cps.SetHandler:
		return evalHandler(op, operands, conts, limits)
	case cps.FAdd, cps.FSubtract, cps.FMultiply, cps.FDivide,
		cps.FEqual, cps.FNEqual, cps.FLess, cps.FLessEqual, cps.FGreater, cps.FGreaterEqual:
		return evalFloat(op, operands, conts, limits)
	case cps.RShift, cps.LShift, cps.OrBinary, cps.AndBinary, cps.XOrBinary, cps.NotBinary:
		return evalBits(op, operands, conts, limits)
	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "unknown primop %s", op))
	}
}

func arityFault(op cps.Primop, want, got int) error {
	return runtime.Faultf(runtime.FaultArity, "%s expected %d operands, got %d", op, want, got)
}

func typeFault(op cps.Primop, v runtime.Value) error {
	return runtime.Faultf(runtime.FaultTypeMismatch, "%s applied to %s", op, v.Kind())
}

func faultStoreFunc(err error) runtime.StoreFunc {
	return func(s *runtime.Store) runtime.Answer { return runtime.Failed(err) }
}
