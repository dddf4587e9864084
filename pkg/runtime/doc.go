// Package runtime defines the denotable-value domain, the persistent store
// and environment, and the answer/trampoline machinery the interpreter
// drives. It has no knowledge of primops or CExp evaluation order; those
// live in pkg/interpreter, which imports runtime as its value substrate.
package runtime
