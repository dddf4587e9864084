package interpreter

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalBits implements `rshift lshift orb andb xorb notb`. The source this
// interpreter is grounded on leaves these commented out; SPEC_FULL.md §11
// fixes their semantics as operating on limits.WordBits-wide two's
// complement words, with shift amounts taken modulo the word width and
// every result re-masked into that width. There is no exception for
// bitwise ops; unlike arithmetic, out-of-range results cannot occur once
// masked.
func evalBits(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	word := uint(limits.WordBits)
	mask := uint64(1)<<word - 1

	toWord := func(v int64) uint64 { return uint64(v) & mask }
	fromWord := func(u uint64) int64 {
		u &= mask
		signBit := uint64(1) << (word - 1)
		if u&signBit != 0 {
			return int64(u) - int64(mask) - 1
		}
		return int64(u)
	}

	if op == cps.NotBinary {
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		x, ok := operands[0].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		result := fromWord(^toWord(x.Val))
		return conts[0]([]runtime.Value{runtime.IntegerValue{Val: result}})
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

	var result int64
	switch op {
	case cps.RShift:
		shift := uint(y.Val) % word
		result = fromWord(uint64(fromWord(toWord(x.Val)) >> shift))
	case cps.LShift:
		shift := uint(y.Val) % word
		result = fromWord(toWord(x.Val) << shift)
	case cps.OrBinary:
		result = fromWord(toWord(x.Val) | toWord(y.Val))
	case cps.AndBinary:
		result = fromWord(toWord(x.Val) & toWord(y.Val))
	case cps.XOrBinary:
		result = fromWord(toWord(x.Val) ^ toWord(y.Val))
	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not a bitwise primop: %s", op))
	}
	return conts[0]([]runtime.Value{runtime.IntegerValue{Val: result}})
}
