package cps

// Variable is an opaque CPS binder. Equality is structural, so two
// Variables constructed from the same name are indistinguishable; a front
// end that needs alpha-distinct binders is responsible for generating
// distinct names (e.g. by suffixing a counter).
type Variable struct {
	Name string
}

// Var is a convenience constructor so call sites read `cps.Var("x")`
// instead of spelling out the struct literal.
func Var(name string) Variable {
	return Variable{Name: name}
}

func (v Variable) String() string { return v.Name }

// Value is the syntactic value sum: a reference to an environment binding
// (Variable/Label) or a literal (Integer/Real/String). It is resolved to a
// runtime.Value by the environment's coercion function, `V` in Appel.
type Value interface {
	isCPSValue()
}

// VarRef names an environment binding introduced by a CExp binder.
type VarRef struct{ Name Variable }

// LabelRef names an environment binding introduced by Fix. Labels and
// Variables resolve identically; the distinction exists only so a front
// end can record where a name came from.
type LabelRef struct{ Name Variable }

// IntegerLit is a literal integer value.
type IntegerLit struct{ Val int64 }

// RealLit carries the literal's original decimal text; decoding to a
// float happens through the configured string-to-real function, not here.
type RealLit struct{ Literal string }

// StringLit is a literal string value.
type StringLit struct{ Val string }

func (VarRef) isCPSValue()     {}
func (LabelRef) isCPSValue()   {}
func (IntegerLit) isCPSValue() {}
func (RealLit) isCPSValue()    {}
func (StringLit) isCPSValue()  {}

// AccessPath is a static record-projection path: either a pointer-offset
// reinterpretation (Off) or a field selection followed by a continuation
// path (Sel). Resolution is function F, implemented in pkg/runtime.
type AccessPath interface {
	isAccessPath()
}

// Off reinterprets a record pointer at a fixed offset.
type Off struct{ K int }

// Sel selects field K, then continues resolving through Path.
type Sel struct {
	K    int
	Path AccessPath
}

func (Off) isAccessPath() {}
func (Sel) isAccessPath() {}
