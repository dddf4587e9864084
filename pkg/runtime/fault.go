package runtime

import "fmt"

// FaultKind classifies an implementation-level fault: a condition the
// interpreter itself cannot make sense of, as opposed to an object-language
// exception, which is never represented as a Go error and is instead
// delivered to a handler location (see doRaise in pkg/interpreter).
type FaultKind int

const (
	// FaultUnboundVariable: Environment.Lookup found no binding.
	FaultUnboundVariable FaultKind = iota
	// FaultBadLocation: Store.Fetch/FetchInt read a Location that was never
	// written in the map being read (an allocated but unwritten location
	// included). Upd and Updi never fault.
	FaultBadLocation
	// FaultTypeMismatch: a primop or access path was applied to a Value of
	// the wrong Kind (e.g. Subscript on a non-Array).
	FaultTypeMismatch
	// FaultArity: a CExp node supplied the wrong number of operands, arms,
	// or binders for its Primop, or a App supplied the wrong number of
	// arguments for the FunctionValue it applied.
	FaultArity
	// FaultIndexOutOfRange: Switch selected an arm index, or Subscript/Bang
	// addressed an array slot, outside the valid range.
	FaultIndexOutOfRange
	// FaultNoHandler: doRaise found a value other than a Function at the
	// handler location (e.g. after sethdlr stored a non-Function there).
	FaultNoHandler
	// FaultMalformedNumeral: a RealLit's literal text did not parse under
	// the configured Limits.StringToReal.
	FaultMalformedNumeral
)

func (k FaultKind) String() string {
	switch k {
	case FaultUnboundVariable:
		return "unbound variable"
	case FaultBadLocation:
		return "bad location"
	case FaultTypeMismatch:
		return "type mismatch"
	case FaultArity:
		return "arity mismatch"
	case FaultIndexOutOfRange:
		return "index out of range"
	case FaultNoHandler:
		return "no handler installed"
	case FaultMalformedNumeral:
		return "malformed numeral"
	default:
		return "fault"
	}
}

// FaultError reports an implementation-level fault. It is always a Go
// error; object-language exceptions (overflow_exn and div_exn, raised by the
// integer and float arithmetic primops) never produce one of these.
type FaultError struct {
	Kind   FaultKind
	Detail string
	Err    error
}

func (e *FaultError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *FaultError) Unwrap() error { return e.Err }

// Fault constructs a FaultError with no wrapped cause.
func Fault(kind FaultKind, detail string) *FaultError {
	return &FaultError{Kind: kind, Detail: detail}
}

// Faultf constructs a FaultError with a formatted detail.
func Faultf(kind FaultKind, format string, args ...any) *FaultError {
	return &FaultError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// WrapFault constructs a FaultError carrying a wrapped cause, e.g. a
// strconv.ParseFloat error surfaced as FaultMalformedNumeral.
func WrapFault(kind FaultKind, detail string, err error) *FaultError {
	return &FaultError{Kind: kind, Detail: detail, Err: err}
}
