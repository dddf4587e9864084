package runtime

import "testing"

func TestIntegerEqualityIsExactNotOracle(t *testing.T) {
	oracle := func(ifEqual, ifUnequal bool) bool {
		t.Fatal("Integer equality must not consult the oracle")
		return false
	}
	eq, err := ValuesEqual(IntegerValue{Val: 5}, IntegerValue{Val: 5}, oracle)
	if err != nil || !eq {
		t.Errorf("5 == 5: eq=%v err=%v", eq, err)
	}
	eq, err = ValuesEqual(IntegerValue{Val: 5}, IntegerValue{Val: 6}, oracle)
	if err != nil || eq {
		t.Errorf("5 == 6: eq=%v err=%v", eq, err)
	}
}

func TestEmptyHeapObjectsEqualWithoutOracle(t *testing.T) {
	oracle := func(ifEqual, ifUnequal bool) bool {
		t.Fatal("empty heap objects must not consult the oracle")
		return false
	}
	cases := []struct {
		name string
		a, b Value
	}{
		{"empty Array", ArrayValue{}, ArrayValue{}},
		{"empty UnboxedArray", UnboxedArrayValue{}, UnboxedArrayValue{}},
		{"empty ByteArray", ByteArrayValue{}, ByteArrayValue{}},
		{"empty Record", RecordValue{}, RecordValue{}},
		{"empty String", StringValue{}, StringValue{}},
	}
	for _, c := range cases {
		eq, err := ValuesEqual(c.a, c.b, oracle)
		if err != nil || !eq {
			t.Errorf("%s: eq=%v err=%v, want true without oracle", c.name, eq, err)
		}
	}
}

func TestNonEmptyHeapObjectsConsultOracle(t *testing.T) {
	called := false
	oracle := func(ifEqual, ifUnequal bool) bool {
		called = true
		return ifUnequal
	}
	eq, err := ValuesEqual(
		ArrayValue{Locs: []Location{1}},
		ArrayValue{Locs: []Location{1}},
		oracle,
	)
	if err != nil {
		t.Fatalf("ValuesEqual: %v", err)
	}
	if !called {
		t.Error("non-empty Array equality must consult the oracle")
	}
	if eq {
		t.Error("oracle returning ifUnequal should have produced false")
	}
}

func TestFunctionEqualityIsUndefined(t *testing.T) {
	oracle := DefaultOracle()
	f := FunctionValue{}
	_, err := ValuesEqual(f, f, oracle)
	if err == nil {
		t.Fatal("Function equality must fault, not succeed")
	}
	fe, ok := err.(*FaultError)
	if !ok || fe.Kind != FaultTypeMismatch {
		t.Errorf("Function equality error = %v, want FaultTypeMismatch", err)
	}
}

func TestDifferentKindsAreUnequal(t *testing.T) {
	eq, err := ValuesEqual(IntegerValue{Val: 1}, StringValue{Val: "1"}, DefaultOracle())
	if err != nil || eq {
		t.Errorf("Integer vs String: eq=%v err=%v, want false/nil", eq, err)
	}
}

func TestExceptionEqualityByTag(t *testing.T) {
	eq, err := ValuesEqual(OverflowExn, OverflowExn, DefaultOracle())
	if err != nil || !eq {
		t.Errorf("OverflowExn == OverflowExn: eq=%v err=%v", eq, err)
	}
	eq, err = ValuesEqual(OverflowExn, DivExn, DefaultOracle())
	if err != nil || eq {
		t.Errorf("OverflowExn == DivExn: eq=%v err=%v", eq, err)
	}
}
