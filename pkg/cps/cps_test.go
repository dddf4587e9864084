package cps

import "testing"

func TestPrimopString(t *testing.T) {
	cases := map[Primop]string{
		Add:        "+",
		IEqual:     "ieql",
		GetHandler: "gethdlr",
		NotBinary:  "notb",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Primop(%d).String() = %q, want %q", op, got, want)
		}
	}
	if got := Primop(999).String(); got != "primop(?)" {
		t.Errorf("unknown Primop.String() = %q, want placeholder", got)
	}
}

func TestPrimopArity(t *testing.T) {
	cases := []struct {
		op             Primop
		operands, arms int
	}{
		{Add, 2, 1},
		{Negate, 1, 1},
		{GetHandler, 0, 1},
		{SetHandler, 1, 1},
		{Store, 3, 1},
		{Update, 3, 1},
		{IEqual, 2, 2},
		{Less, 2, 2},
		{FLess, 2, 2},
		{Boxed, 1, 2},
	}
	for _, c := range cases {
		operands, arms := c.op.Arity()
		if operands != c.operands || arms != c.arms {
			t.Errorf("%s.Arity() = (%d, %d), want (%d, %d)", c.op, operands, arms, c.operands, c.arms)
		}
	}
}

func TestVarConstructor(t *testing.T) {
	v := Var("x")
	if v.Name != "x" || v.String() != "x" {
		t.Errorf("Var(%q) = %+v", "x", v)
	}
}

func TestAccessPathVariants(t *testing.T) {
	var p AccessPath = Sel{K: 1, Path: Off{K: 0}}
	sel, ok := p.(Sel)
	if !ok {
		t.Fatalf("expected Sel, got %T", p)
	}
	if sel.K != 1 {
		t.Errorf("Sel.K = %d, want 1", sel.K)
	}
	if _, ok := sel.Path.(Off); !ok {
		t.Errorf("Sel.Path = %T, want Off", sel.Path)
	}
}

func TestCExpVariantsSatisfyInterface(t *testing.T) {
	exps := []CExp{
		Record{Variable: Var("r"), Body: App{}},
		Select{Variable: Var("s"), Body: App{}},
		Offset{Variable: Var("o"), Body: App{}},
		App{Fn: VarRef{Name: Var("f")}},
		Fix{Defs: []FunctionDef{{Name: Var("g"), Body: App{}}}, Body: App{}},
		Switch{Arms: []CExp{App{}, App{}}},
		PrimopExp{Op: Add, Binders: []Variable{Var("z")}, Arms: []CExp{App{}}},
	}
	for _, e := range exps {
		if e == nil {
			t.Fatal("nil CExp in table")
		}
	}
}

func TestProgramHoldsFormalsAndBody(t *testing.T) {
	prog := Program{
		Formals: []Variable{Var("args")},
		Body:    App{Fn: VarRef{Name: Var("args")}},
	}
	if len(prog.Formals) != 1 || prog.Formals[0].Name != "args" {
		t.Errorf("Program.Formals = %+v", prog.Formals)
	}
	if _, ok := prog.Body.(App); !ok {
		t.Errorf("Program.Body = %T, want App", prog.Body)
	}
}
