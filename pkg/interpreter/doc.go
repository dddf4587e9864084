// Package interpreter implements the denotational evaluator: the meaning
// function E over pkg/cps continuation expressions, and the primitive
// operator evaluator evalprim each Primop case dispatches to. It is driven
// by pkg/driver, which supplies the initial environment, store, and
// numeric Limits.
package interpreter
