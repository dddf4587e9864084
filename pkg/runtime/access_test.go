package runtime

import (
	"errors"
	"testing"

	"cps/interpreter-go/pkg/cps"
)

func TestResolveFieldOffZeroIsIdentity(t *testing.T) {
	v := IntegerValue{Val: 5}
	got, err := ResolveField(v, cps.Off{K: 0})
	if err != nil || got != Value(v) {
		t.Errorf("F(x, Off(0)) = %+v, err=%v, want x unchanged", got, err)
	}
}

func TestResolveFieldOffAdvancesBase(t *testing.T) {
	rec := RecordValue{Elements: []Value{IntegerValue{Val: 0}, IntegerValue{Val: 1}}, Base: 0}
	got, err := ResolveField(rec, cps.Off{K: 1})
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	gotRec, ok := got.(RecordValue)
	if !ok || gotRec.Base != 1 {
		t.Errorf("F(Record(els,0), Off(1)) = %+v, want Record(els,1)", got)
	}
}

func TestResolveFieldSelIndexesThroughBase(t *testing.T) {
	inner := RecordValue{Elements: []Value{IntegerValue{Val: 42}}, Base: 0}
	rec := RecordValue{Elements: []Value{IntegerValue{Val: 0}, inner}, Base: 1}
	got, err := ResolveField(rec, cps.Sel{K: 0, Path: cps.Off{K: 0}})
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	gotRec, ok := got.(RecordValue)
	if !ok || gotRec.Base != inner.Base || len(gotRec.Elements) != len(inner.Elements) || gotRec.Elements[0] != inner.Elements[0] {
		t.Errorf("F(Record(els,1), Sel(0, Off(0))) = %+v, want els[1] (%+v)", got, inner)
	}
}

func TestRecordProjectionLaw(t *testing.T) {
	innermost := IntegerValue{Val: 7}
	level1 := RecordValue{Elements: []Value{innermost}, Base: 0}
	level0 := RecordValue{Elements: []Value{level1}, Base: 0}

	// F(F(r, Sel(0, Off(0))), Sel(0, Off(0))) should equal one combined
	// resolution: F(r, Sel(0, Sel(0, Off(0)))).
	step1, err := ResolveField(level0, cps.Sel{K: 0, Path: cps.Off{K: 0}})
	if err != nil {
		t.Fatalf("step1: %v", err)
	}
	composed, err := ResolveField(step1, cps.Sel{K: 0, Path: cps.Off{K: 0}})
	if err != nil {
		t.Fatalf("step2: %v", err)
	}

	direct, err := ResolveField(level0, cps.Sel{K: 0, Path: cps.Sel{K: 0, Path: cps.Off{K: 0}}})
	if err != nil {
		t.Fatalf("direct: %v", err)
	}

	if composed != direct {
		t.Errorf("projection law violated: composed=%+v direct=%+v", composed, direct)
	}
	if direct != Value(innermost) {
		t.Errorf("direct resolution = %+v, want innermost %+v", direct, innermost)
	}
}

func TestResolveFieldSelOnNonRecordFaults(t *testing.T) {
	_, err := ResolveField(IntegerValue{Val: 1}, cps.Sel{K: 0, Path: cps.Off{K: 0}})
	var fe *FaultError
	if !errors.As(err, &fe) || fe.Kind != FaultTypeMismatch {
		t.Fatalf("Sel on non-Record: got %v, want FaultTypeMismatch", err)
	}
}

func TestResolveFieldSelOutOfRangeFaults(t *testing.T) {
	rec := RecordValue{Elements: []Value{IntegerValue{Val: 0}}, Base: 0}
	_, err := ResolveField(rec, cps.Sel{K: 5, Path: cps.Off{K: 0}})
	var fe *FaultError
	if !errors.As(err, &fe) || fe.Kind != FaultIndexOutOfRange {
		t.Fatalf("Sel out of range: got %v, want FaultIndexOutOfRange", err)
	}
}
