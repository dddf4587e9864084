package runtime

import (
	"errors"
	"testing"

	"cps/interpreter-go/pkg/cps"
)

func TestLookupEmptyEnvironmentFaults(t *testing.T) {
	var env *Environment
	_, err := env.Lookup(cps.Var("x"))
	var fe *FaultError
	if !errors.As(err, &fe) || fe.Kind != FaultUnboundVariable {
		t.Fatalf("Lookup on empty env: got %v, want FaultUnboundVariable", err)
	}
}

func TestBindShadowing(t *testing.T) {
	var env *Environment
	env = env.Bind(cps.Var("x"), IntegerValue{Val: 1})
	env = env.Bind(cps.Var("x"), IntegerValue{Val: 2})

	v, err := env.Lookup(cps.Var("x"))
	if err != nil {
		t.Fatalf("Lookup(x): %v", err)
	}
	if iv, ok := v.(IntegerValue); !ok || iv.Val != 2 {
		t.Errorf("Lookup(x) = %+v, want Integer(2)", v)
	}
}

func TestBindDelegatesOtherVariables(t *testing.T) {
	var env *Environment
	env = env.Bind(cps.Var("x"), IntegerValue{Val: 1})
	env2 := env.Bind(cps.Var("y"), IntegerValue{Val: 2})

	v, err := env2.Lookup(cps.Var("x"))
	if err != nil {
		t.Fatalf("Lookup(x) through extended env: %v", err)
	}
	if iv, ok := v.(IntegerValue); !ok || iv.Val != 1 {
		t.Errorf("Lookup(x) = %+v, want Integer(1)", v)
	}
}

func TestBindNArityMismatchFaults(t *testing.T) {
	var env *Environment
	_, err := env.BindN([]cps.Variable{cps.Var("a"), cps.Var("b")}, []Value{IntegerValue{Val: 1}})
	var fe *FaultError
	if !errors.As(err, &fe) || fe.Kind != FaultArity {
		t.Fatalf("BindN arity mismatch: got %v, want FaultArity", err)
	}
}

func TestBindNZipsInOrder(t *testing.T) {
	var env *Environment
	env, err := env.BindN(
		[]cps.Variable{cps.Var("a"), cps.Var("b")},
		[]Value{IntegerValue{Val: 10}, IntegerValue{Val: 20}},
	)
	if err != nil {
		t.Fatalf("BindN: %v", err)
	}
	a, _ := env.Lookup(cps.Var("a"))
	b, _ := env.Lookup(cps.Var("b"))
	if a.(IntegerValue).Val != 10 || b.(IntegerValue).Val != 20 {
		t.Errorf("BindN bound a=%+v b=%+v", a, b)
	}
}

func TestCoerceLiterals(t *testing.T) {
	var env *Environment
	stringToReal := func(lit string) (float64, error) { return 3.5, nil }

	v, err := Coerce(env, cps.IntegerLit{Val: 7}, stringToReal)
	if err != nil || v.(IntegerValue).Val != 7 {
		t.Errorf("Coerce(IntegerLit): v=%+v err=%v", v, err)
	}

	v, err = Coerce(env, cps.RealLit{Literal: "3.5"}, stringToReal)
	if err != nil || v.(RealValue).Val != 3.5 {
		t.Errorf("Coerce(RealLit): v=%+v err=%v", v, err)
	}

	v, err = Coerce(env, cps.StringLit{Val: "hi"}, stringToReal)
	if err != nil || v.(StringValue).Val != "hi" {
		t.Errorf("Coerce(StringLit): v=%+v err=%v", v, err)
	}
}

func TestCoerceVariableLooksUpEnvironment(t *testing.T) {
	var env *Environment
	env = env.Bind(cps.Var("x"), IntegerValue{Val: 99})
	stringToReal := func(lit string) (float64, error) { return 0, nil }

	v, err := Coerce(env, cps.VarRef{Name: cps.Var("x")}, stringToReal)
	if err != nil || v.(IntegerValue).Val != 99 {
		t.Errorf("Coerce(VarRef x): v=%+v err=%v", v, err)
	}
}

func TestCoerceMalformedRealFaults(t *testing.T) {
	var env *Environment
	boom := errors.New("bad literal")
	stringToReal := func(lit string) (float64, error) { return 0, boom }

	_, err := Coerce(env, cps.RealLit{Literal: "???"}, stringToReal)
	var fe *FaultError
	if !errors.As(err, &fe) || fe.Kind != FaultMalformedNumeral {
		t.Fatalf("Coerce(bad RealLit): got %v, want FaultMalformedNumeral", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Coerce(bad RealLit) should unwrap to underlying parse error")
	}
}
