package interpreter

import (
	"math/big"

	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalArithmetic implements `+ - * / ~` from spec.md §4.5. The operation
// runs in math/big so the exact-overflow check (the mathematical result
// against [MinInt, MaxInt], not host wraparound) is never in doubt; the
// spec's design notes call this out explicitly.
func evalArithmetic(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	if op == cps.Negate {
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		x, ok := operands[0].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		return overflowGuardedInt(limits, new(big.Int).Neg(big.NewInt(x.Val)), conts[0])
	}

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

	bx, by := big.NewInt(x.Val), big.NewInt(y.Val)
	switch op {
	case cps.Add:
		return overflowGuardedInt(limits, new(big.Int).Add(bx, by), conts[0])
	case cps.Subtract:
		return overflowGuardedInt(limits, new(big.Int).Sub(bx, by), conts[0])
	case cps.Multiply:
		return overflowGuardedInt(limits, new(big.Int).Mul(bx, by), conts[0])
	case cps.Divide:
		if y.Val == 0 {
			return doRaise(runtime.DivExn)
		}
		return overflowGuardedInt(limits, new(big.Int).Quo(bx, by), conts[0])
	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not an integer-arithmetic primop: %s", op))
	}
}

// overflowGuardedInt checks result against [limits.MinInt, limits.MaxInt]
// (spec.md §8: "Overflow gating") and either raises overflow_exn or passes
// the exact result to cont.
func overflowGuardedInt(limits *Limits, result *big.Int, cont runtime.Meaning) runtime.StoreFunc {
	if !result.IsInt64() {
		return doRaise(runtime.OverflowExn)
	}
	v := result.Int64()
	if v < limits.MinInt || v > limits.MaxInt {
		return doRaise(runtime.OverflowExn)
	}
	return cont([]runtime.Value{runtime.IntegerValue{Val: v}})
}
