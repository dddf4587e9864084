package interpreter

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// evalHandler implements `gethdlr sethdlr` from spec.md §4.5.
func evalHandler(op cps.Primop, operands []runtime.Value, conts []runtime.Meaning, limits *Limits) runtime.StoreFunc {
	switch op {
	case cps.GetHandler:
		return func(s *runtime.Store) runtime.Answer {
			h, err := s.Handler()
			if err != nil {
				return runtime.Failed(err)
			}
			return conts[0]([]runtime.Value{h})(s)
		}
	case cps.SetHandler:
		if len(operands) != 1 {
			return faultStoreFunc(arityFault(op, 1, len(operands)))
		}
		h := operands[0]
		return func(s *runtime.Store) runtime.Answer { return conts[0](nil)(s.SetHandler(h)) }
	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "not a handler primop: %s", op))
	}
}

// doRaise implements do_raise(exn)(s) from spec.md §4.5: fetch the current
// handler and tail-apply it to [exn]. This is the second of the two
// unbounded-recursion sites (the other is App in eval.go) — overflow_exn
// and div_exn traps both funnel through here, so deferring via
// runtime.Pending is what keeps a tight raise/retry loop from exhausting
// the host stack.
func doRaise(payload runtime.Value) runtime.StoreFunc {
	return func(s *runtime.Store) runtime.Answer {
		h, err := s.Handler()
		if err != nil {
			return runtime.Failed(err)
		}
		fn, ok := h.(runtime.FunctionValue)
		if !ok {
			return runtime.Failed(runtime.Fault(runtime.FaultNoHandler, "handler location does not hold a Function"))
		}
		return runtime.Pending(func() runtime.Answer {
			return fn.Meaning([]runtime.Value{payload})(s)
		})
	}
}
