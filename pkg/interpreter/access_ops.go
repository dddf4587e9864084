package interpreter

import (
	"unicode/utf16"

	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalAccess implements `! subscript ordof alength slength` from spec.md
// §4.5. Subscript on a Record is pure (no store interaction); on an Array
// or UnboxedArray it indirects through the Store's matching map.
func evalAccess(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	switch op {
	case cps.Bang:
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		return evalAccess(cps.Subscript, []runtime.Value{operands[0], runtime.IntegerValue{Val: 0}}, conts, limits)

	case cps.Subscript:
		if len(operands) != 2 {
			return faultStoreFunc(arityFault(op, 2, len(operands)))
		}
		idx, ok := operands[1].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[1]))
		}
		switch base := operands[0].(type) {
		case runtime.RecordValue:
			i := base.Base + int(idx.Val)
			if i < 0 || i >= len(base.Elements) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "subscript %d out of range for %d elements", i, len(base.Elements)))
			}
			val := base.Elements[i]
			return func(s *runtime.Store) runtime.Answer { return conts[0]([]runtime.Value{val})(s) }
		case runtime.ArrayValue:
			n := int(idx.Val)
			if n < 0 || n >= len(base.Locs) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "subscript %d out of range for array of length %d", n, len(base.Locs)))
			}
			loc := base.Locs[n]
			return func(s *runtime.Store) runtime.Answer {
				v, err := s.Fetch(loc)
				if err != nil {
					return runtime.Failed(err)
				}
				return conts[0]([]runtime.Value{v})(s)
			}
		case runtime.UnboxedArrayValue:
			n := int(idx.Val)
			if n < 0 || n >= len(base.Locs) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "subscript %d out of range for unboxed array of length %d", n, len(base.Locs)))
			}
			loc := base.Locs[n]
			return func(s *runtime.Store) runtime.Answer {
				iv, err := s.FetchInt(loc)
				if err != nil {
					return runtime.Failed(err)
				}
				return conts[0]([]runtime.Value{runtime.IntegerValue{Val: iv}})(s)
			}
		default:
			return faultStoreFunc(typeFault(op, operands[0]))
		}

	case cps.OrdinalOf:
		if len(operands) != 2 {
			return faultStoreFunc(arityFault(op, 2, len(operands)))
		}
		idx, ok := operands[1].(runtime.IntegerValue)
		if !ok {
			return faultStoreFunc(typeFault(op, operands[1]))
		}
		switch base := operands[0].(type) {
		case runtime.StringValue:
			units := utf16.Encode([]rune(base.Val))
			i := int(idx.Val)
			if i < 0 || i >= len(units) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "ordof %d out of range for string of length %d", i, len(units)))
			}
			code := int64(units[i])
			return func(s *runtime.Store) runtime.Answer { return conts[0]([]runtime.Value{runtime.IntegerValue{Val: code}})(s) }
		case runtime.ByteArrayValue:
			i := int(idx.Val)
			if i < 0 || i >= len(base.Locs) {
				return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "ordof %d out of range for byte array of length %d", i, len(base.Locs)))
			}
			loc := base.Locs[i]
			return func(s *runtime.Store) runtime.Answer {
				iv, err := s.FetchInt(loc)
				if err != nil {
					return runtime.Failed(err)
				}
				return conts[0]([]runtime.Value{runtime.IntegerValue{Val: iv}})(s)
			}
		default:
			return faultStoreFunc(typeFault(op, operands[0]))
		}

	case cps.ArrayLength:
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		var length int
		switch base := operands[0].(type) {
		case runtime.ArrayValue:
			length = len(base.Locs)
		case runtime.UnboxedArrayValue:
			length = len(base.Locs)
		default:
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		return conts[0]([]runtime.Value{runtime.IntegerValue{Val: int64(length)}})

	case cps.StringLength:
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		var length int
		switch base := operands[0].(type) {
		case runtime.ByteArrayValue:
			length = len(base.Locs)
		case runtime.StringValue:
			length = len(utf16.Encode([]rune(base.Val)))
		default:
			return faultStoreFunc(typeFault(op, operands[0]))
		}
		return conts[0]([]runtime.Value{runtime.IntegerValue{Val: int64(length)}})

	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not an access primop: %s", op))
	}
}
