// Package cps defines the abstract syntax of the continuation-passing-style
// intermediate language the interpreter evaluates: syntactic values, access
// paths, the fixed primop set, and continuation expressions (CExp). Nothing
// in this package touches the runtime value domain or the store — it is
// pure data, produced by a front end that lives outside this module.
package cps
