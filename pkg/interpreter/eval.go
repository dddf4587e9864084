package interpreter

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/runtime"
)

// Eval is the meaning function E(e)(env): Store -> Answer from spec.md
// §4.4. Every case except App evaluates by direct, statically-bounded Go
// recursion; App is the one place a CExp case can recur an unbounded
// number of times at runtime, so its StoreFunc defers through
// runtime.Pending instead of calling the callee's Meaning inline. App's
// handler-invocation counterpart lives in handler.go's doRaise.
func Eval(e cps.CExp, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	switch n := e.(type) {
	case cps.Record:
		return evalRecord(n, env, limits)
	case cps.Select:
		return evalSelect(n, env, limits)
	case cps.Offset:
		return evalOffset(n, env, limits)
	case cps.App:
		return evalApp(n, env, limits)
	case cps.Fix:
		return evalFix(n, env, limits)
	case cps.Switch:
		return evalSwitch(n, env, limits)
	case cps.PrimopExp:
		return evalPrimopExp(n, env, limits)
	default:
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "unknown CExp %T", e))
	}
}

func evalRecord(n cps.Record, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	elements := make([]runtime.Value, len(n.Fields))
	for i, f := range n.Fields {
		base, err := runtime.Coerce(env, f.Value, limits.StringToReal)
		if err != nil {
			return faultStoreFunc(err)
		}
		resolved, err := runtime.ResolveField(base, f.Path)
		if err != nil {
			return faultStoreFunc(err)
		}
		elements[i] = resolved
	}
	rec := runtime.RecordValue{Elements: elements, Base: 0}
	bodyEnv := env.Bind(n.Variable, rec)
	return Eval(n.Body, bodyEnv, limits)
}

func evalSelect(n cps.Select, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	base, err := runtime.Coerce(env, n.Value, limits.StringToReal)
	if err != nil {
		return faultStoreFunc(err)
	}
	rec, ok := base.(runtime.RecordValue)
	if !ok {
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "Select on non-Record %s", base.Kind()))
	}
	idx := rec.Base + n.Index
	if idx < 0 || idx >= len(rec.Elements) {
		return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "Select index %d out of range for %d elements", idx, len(rec.Elements)))
	}
	bodyEnv := env.Bind(n.Variable, rec.Elements[idx])
	return Eval(n.Body, bodyEnv, limits)
}

func evalOffset(n cps.Offset, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	base, err := runtime.Coerce(env, n.Value, limits.StringToReal)
	if err != nil {
		return faultStoreFunc(err)
	}
	rec, ok := base.(runtime.RecordValue)
	if !ok {
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "Offset on non-Record %s", base.Kind()))
	}
	bodyEnv := env.Bind(n.Variable, runtime.RecordValue{Elements: rec.Elements, Base: rec.Base + n.Index})
	return Eval(n.Body, bodyEnv, limits)
}

func evalApp(n cps.App, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	return func(s *runtime.Store) runtime.Answer {
		return runtime.Pending(func() runtime.Answer {
			fnVal, err := runtime.Coerce(env, n.Fn, limits.StringToReal)
			if err != nil {
				return runtime.Failed(err)
			}
			fn, ok := fnVal.(runtime.FunctionValue)
			if !ok {
				return runtime.Failed(runtime.Faultf(runtime.FaultTypeMismatch, "App of non-Function %s", fnVal.Kind()))
			}
			args, err := runtime.CoerceAll(env, n.Args, limits.StringToReal)
			if err != nil {
				return runtime.Failed(err)
			}
			return fn.Meaning(args)(s)
		})
	}
}

// evalFix builds the mutually recursive Function group spec.md §4.4 and §9
// describe: bind each def's name to a FunctionValue whose Meaning is a
// thunk indirecting through a pointer, then patch every pointer to its
// real closure once the whole group's environment exists. This avoids
// ever copying a partially built environment.
func evalFix(n cps.Fix, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	boxes := make([]*runtime.Meaning, len(n.Defs))
	groupEnv := env
	for i, def := range n.Defs {
		box := new(runtime.Meaning)
		boxes[i] = box
		indirect := runtime.Meaning(func(args []runtime.Value) runtime.StoreFunc {
			return (*box)(args)
		})
		groupEnv = groupEnv.Bind(def.Name, runtime.FunctionValue{Meaning: indirect})
	}
	for i, def := range n.Defs {
		def := def
		*boxes[i] = func(args []runtime.Value) runtime.StoreFunc {
			return func(s *runtime.Store) runtime.Answer {
				bodyEnv, err := groupEnv.BindN(def.Formals, args)
				if err != nil {
					return runtime.Failed(err)
				}
				return Eval(def.Body, bodyEnv, limits)(s)
			}
		}
	}
	return Eval(n.Body, groupEnv, limits)
}

func evalSwitch(n cps.Switch, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	v, err := runtime.Coerce(env, n.Value, limits.StringToReal)
	if err != nil {
		return faultStoreFunc(err)
	}
	iv, ok := v.(runtime.IntegerValue)
	if !ok {
		return faultStoreFunc(runtime.Faultf(runtime.FaultTypeMismatch, "Switch on non-Integer %s", v.Kind()))
	}
	idx := int(iv.Val)
	if idx < 0 || idx >= len(n.Arms) {
		return faultStoreFunc(runtime.Faultf(runtime.FaultIndexOutOfRange, "Switch index %d out of range for %d arms", idx, len(n.Arms)))
	}
	return Eval(n.Arms[idx], env, limits)
}

func evalPrimopExp(n cps.PrimopExp, env *runtime.Environment, limits *Limits) runtime.StoreFunc {
	wantOperands, wantArms := n.Op.Arity()
	if len(n.Args) != wantOperands {
		return faultStoreFunc(arityFault(n.Op, wantOperands, len(n.Args)))
	}
	if len(n.Arms) != wantArms {
		return faultStoreFunc(runtime.Faultf(runtime.FaultArity, "%s expected %d arms, got %d", n.Op, wantArms, len(n.Arms)))
	}
	operands, err := runtime.CoerceAll(env, n.Args, limits.StringToReal)
	if err != nil {
		return faultStoreFunc(err)
	}
	conts := make([]runtime.Meaning, len(n.Arms))
	for i, arm := range n.Arms {
		arm := arm
		conts[i] = func(al []runtime.Value) runtime.StoreFunc {
			armEnv, err := env.BindN(n.Binders, al)
			if err != nil {
				return faultStoreFunc(err)
			}
			return Eval(arm, armEnv, limits)
		}
	}
	return evalPrimop(n.Op, operands, conts, limits)
}
