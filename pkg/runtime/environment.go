package runtime

import "cps/interpreter-go/pkg/cps"

// Environment is a persistent mapping from cps.Variable to Value, realized
// as a chain of single-binding nodes with a parent pointer (spec.md §3:
// "Environments are immutable and created by extension from a parent").
// The nil *Environment is empty_env.
type Environment struct {
	name   cps.Variable
	value  Value
	parent *Environment
}

// Bind returns a new environment identical to e except that v now maps to
// val; lookups at any other variable delegate to e unchanged.
func (e *Environment) Bind(v cps.Variable, val Value) *Environment {
	return &Environment{name: v, value: val, parent: e}
}

// BindN zip-binds vs to vals. |vs| must equal |vals|; a mismatch is a
// malformed-CPS fault (an App or Fix supplied the wrong arity).
func (e *Environment) BindN(vs []cps.Variable, vals []Value) (*Environment, error) {
	if len(vs) != len(vals) {
		return nil, Faultf(FaultArity, "bindn: %d variables, %d values", len(vs), len(vals))
	}
	env := e
	for i, v := range vs {
		env = env.Bind(v, vals[i])
	}
	return env, nil
}

// Lookup resolves v by walking the chain toward empty_env. An unbound
// variable is a malformed-CPS fault (spec.md §3: "Lookup of an unbound
// variable is undefined").
func (e *Environment) Lookup(v cps.Variable) (Value, error) {
	for n := e; n != nil; n = n.parent {
		if n.name == v {
			return n.value, nil
		}
	}
	return nil, Faultf(FaultUnboundVariable, "%s", v)
}

// StringToReal decodes a CPS Real literal's decimal text into a host
// float. The driver configures this as part of Limits; the default is
// strconv.ParseFloat.
type StringToReal func(literal string) (float64, error)

// Coerce implements the syntactic-to-denotable coercion V(env, value) from
// spec.md §4.1.
func Coerce(env *Environment, v cps.Value, stringToReal StringToReal) (Value, error) {
	switch val := v.(type) {
	case cps.VarRef:
		return env.Lookup(val.Name)
	case cps.LabelRef:
		return env.Lookup(val.Name)
	case cps.IntegerLit:
		return IntegerValue{Val: val.Val}, nil
	case cps.RealLit:
		f, err := stringToReal(val.Literal)
		if err != nil {
			return nil, WrapFault(FaultMalformedNumeral, val.Literal, err)
		}
		return RealValue{Val: f}, nil
	case cps.StringLit:
		return StringValue{Val: val.Val}, nil
	default:
		return nil, Faultf(FaultTypeMismatch, "unknown syntactic value %T", v)
	}
}

// CoerceAll coerces a slice of syntactic values in order, matching the
// left-to-right evaluation order spec.md §5 mandates for Primop argument
// lists and App argument lists.
func CoerceAll(env *Environment, vs []cps.Value, stringToReal StringToReal) ([]Value, error) {
	out := make([]Value, len(vs))
	for i, v := range vs {
		val, err := Coerce(env, v, stringToReal)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}
