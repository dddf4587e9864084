package interpreter

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalMutation implements `:= update unboxedassign unboxedupdate store`
// from spec.md §4.5. `:=` and `unboxedassign` are index-0 shorthand for
// `update`/`unboxedupdate`; every case returns the empty result to its
// single continuation.
func evalMutation(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	switch op {
	case cps.ColonEqual:
		if len(operands) != 2 {
			return faultStoreFunc(arityFault(op, 2, len(operands)))
		}
		return evalMutation(cps.Update, []runtime.Value{operands[0], runtime.IntegerValue{Val: 0}, operands[1]}, conts, limits)

	case cps.UnboxedAssign:
		if len(operands) != 2 {
			return faultStoreFunc(arityFault(op, 2, len(operands)))
		}
		return evalMutation(cps.UnboxedUpdate, []runtime.Value{operands[0], runtime.IntegerValue{Val: 0}, operands[1]}, conts, limits)

	case cps.Update:
		if len(operands) != 3 {
			return faultStoreFunc(arityFault(op, 3, len(operands)))
		}
		idx, ok := operands[1].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[1]))
		}
		val := operands[2]
		switch base := operands[0].(type) {
		case runtime.ArrayValue:
			n := int(idx.Val)
			if n < 0 || n >= len(base.Locs) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "update %d out of range for array of length %d", n, len(base.Locs)))
			}
			loc := base.Locs[n]
			return func(s *runtime.Store) runtime.Answer { return conts[0](nil)(s.Upd(loc, val)) }
		case runtime.UnboxedArrayValue:
			iv, ok := val.(runtime.IntegerValue)
			if !ok {
				return faultStoreFunc(typeFault(op, val))
			}
			n := int(idx.Val)
			if n < 0 || n >= len(base.Locs) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "update %d out of range for unboxed array of length %d", n, len(base.Locs)))
			}
			loc := base.Locs[n]
			return func(s *runtime.Store) runtime.Answer { return conts[0](nil)(s.Updi(loc, iv.Val)) }
		default:
			return faultStoreFunc(typeFault(op, operands[0]))
		}

	case cps.UnboxedUpdate:
		if len(operands) != 3 {
			return faultStoreFunc(arityFault(op, 3, len(operands)))
		}
		idx, ok := operands[1].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[1]))
		}
		iv, ok := operands[2].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[2]))
		}
		switch base := operands[0].(type) {
		case runtime.ArrayValue:
			n := int(idx.Val)
			if n < 0 || n >= len(base.Locs) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "unboxedupdate %d out of range for array of length %d", n, len(base.Locs)))
			}
			loc := base.Locs[n]
			return func(s *runtime.Store) runtime.Answer { return conts[0](nil)(s.Upd(loc, iv)) }
		case runtime.UnboxedArrayValue:
			n := int(idx.Val)
			if n < 0 || n >= len(base.Locs) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "unboxedupdate %d out of range for unboxed array of length %d", n, len(base.Locs)))
			}
			loc := base.Locs[n]
			return func(s *runtime.Store) runtime.Answer { return conts[0](nil)(s.Updi(loc, iv.Val)) }
		default:
			return faultStoreFunc(typeFault(op, operands[0]))
		}

	case cps.Store:
		if len(operands) != 3 {
			return faultStoreFunc(arityFault(op, 3, len(operands)))
		}
		base, ok := operands[0].(runtime.ByteArrayValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		idx, ok := operands[1].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[1]))
		}
		val, ok := operands[2].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[2]))
		}
		if val.Val < 0 || val.Val >= 256 {
			return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "store value %d outside [0,256)", val.Val))
		}
		// spec.md §9 Open Questions: the index used here is i (operands[1]),
		// not the unbound n the source referred to.
		i := int(idx.Val)
		if i < 0 || i >= len(base.Locs) {
			return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "store %d out of range for byte array of length %d", i, len(base.Locs)))
		}
		loc := base.Locs[i]
		return func(s *runtime.Store) runtime.Answer { return conts[0](nil)(s.Updi(loc, val.Val)) }

	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not a mutation primop: %s", op))
	}
}
