package driver

import (
	"cps/interpreter-go/pkg/cps"
	"cps/interpreter-go/pkg/interpreter"
	"cps/interpreter-go/pkg/runtime"
)

// Eval implements the top-level driver eval(formals, e)(args)(store) from
// spec.md §4.6: bind program.Formals to args in the empty environment,
// call the evaluator, and run the trampoline to completion against a
// fresh store seeded with a default handler. The default handler treats
// an uncaught exception as the run's answer; callers that need to observe
// or recover from it should use EvalWithHandler.
func Eval(program cps.Program, args []runtime.Value, manifest *Manifest) (runtime.Answer, error) {
	return EvalWithHandler(program, args, manifest, defaultHandler())
}

// EvalWithHandler is Eval but lets the caller supply the initial exception
// handler bound at the store's fixed handler location (spec.md §3: "the
// handler location always maps to a Function denotation").
func EvalWithHandler(program cps.Program, args []runtime.Value, manifest *Manifest, handler runtime.FunctionValue) (runtime.Answer, error) {
	limits, err := manifest.Limits()
	if err != nil {
		return runtime.Answer{}, err
	}

	var env *runtime.Environment
	env, err = env.BindN(program.Formals, args)
	if err != nil {
		return runtime.Answer{}, err
	}

	store := runtime.NewStore(handler)
	ans := runtime.Run(interpreter.Eval(program.Body, env, limits)(store))
	if ans.Err() != nil {
		return ans, ans.Err()
	}
	return ans, nil
}

// defaultHandler surfaces an uncaught object-language exception as the
// run's final answer rather than failing the whole evaluation: an
// overflow_exn or div_exn that nothing installed a handler for is a
// legitimate program outcome, not an implementation fault.
func defaultHandler() runtime.FunctionValue {
	return runtime.FunctionValue{Meaning: func(args []runtime.Value) runtime.StoreFunc {
		return func(s *runtime.Store) runtime.Answer {
			if len(args) == 1 {
				return runtime.Done(args[0])
			}
			return runtime.Done(args)
		}
	}}
}
