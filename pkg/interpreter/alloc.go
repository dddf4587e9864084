package interpreter

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalAlloc implements `makeref makerefunboxed` from spec.md §4.5: each
// allocates exactly one fresh location, writes the operand there, and
// passes back a one-element Array or UnboxedArray wrapping it.
func evalAlloc(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	switch op {
	case cps.MakeRef:
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		v := operands[0]
		return func(s *runtime.Store) runtime.Answer {
			l, ns := s.Alloc()
			ns = ns.Upd(l, v)
			return conts[0]([]runtime.Value{runtime.ArrayValue{Locs: []runtime.Location{l}}})(ns)
		}
	case cps.MakeRefUnboxed:
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		iv, ok := operands[0].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		return func(s *runtime.Store) runtime.Answer {
			l, ns := s.Alloc()
			ns = ns.Updi(l, iv.Val)
			return conts[0]([]runtime.Value{runtime.UnboxedArrayValue{Locs: []runtime.Location{l}}})(ns)
		}
	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not an allocation primop: %s", op))
	}
}
