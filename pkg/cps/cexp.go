package cps

// CExp is the continuation-expression sum from spec.md §3: Record, Select,
// Offset, App, Fix, Switch, and Primop. Each constructor's doc comment
// records the binder scope rule from Appel that pkg/interpreter must honor.
type CExp interface {
	isCExp()
}

// Field pairs a syntactic value with the access path applied to it before
// the value is stored into the record being built.
type Field struct {
	Value Value
	Path  AccessPath
}

// Record builds a new record from Fields, binds it to Variable, and
// evaluates Body. The scope of Variable is just Body.
type Record struct {
	Fields   []Field
	Variable Variable
	Body     CExp
}

// Select projects field Index out of the record denoted by Value, binds
// the result to Variable, and evaluates Body. The scope of Variable is
// just Body.
type Select struct {
	Index    int
	Value    Value
	Variable Variable
	Body     CExp
}

// Offset reinterprets the record denoted by Value at base Index, binds the
// result to Variable, and evaluates Body. The scope of Variable is just
// Body.
type Offset struct {
	Index    int
	Value    Value
	Variable Variable
	Body     CExp
}

// App tail-calls the function denoted by Fn with Args. It binds no
// variables and therefore needs no scope rule.
type App struct {
	Fn   Value
	Args []Value
}

// FunctionDef is one member of a Fix group: a name, its formal parameters,
// and its body. The scope of each formal is just Body; the scope of Name
// spans every sibling's Body and the enclosing Fix's Body.
type FunctionDef struct {
	Name    Variable
	Formals []Variable
	Body    CExp
}

// Fix introduces a group of mutually recursive function definitions, then
// evaluates Body in an environment where every definition's Name resolves
// to its own (and its siblings') denotation.
type Fix struct {
	Defs []FunctionDef
	Body CExp
}

// Switch evaluates Value to an Integer i and evaluates Arms[i]. It binds no
// variables. 0 <= i < len(Arms) is required; out of range is undefined.
type Switch struct {
	Value Value
	Arms  []CExp
}

// PrimopExp evaluates Op against Args, then selects one of Arms to evaluate
// after binding its result(s) to Binders. The scope of Binders spans every
// arm in Arms.
type PrimopExp struct {
	Op      Primop
	Args    []Value
	Binders []Variable
	Arms    []CExp
}

func (Record) isCExp()    {}
func (Select) isCExp()    {}
func (Offset) isCExp()    {}
func (App) isCExp()       {}
func (Fix) isCExp()       {}
func (Switch) isCExp()    {}
func (PrimopExp) isCExp() {}

// Program is the closed CExp plus the list of formals the top-level driver
// binds initial arguments to (spec.md §4.6).
type Program struct {
	Formals []Variable
	Body    CExp
}
