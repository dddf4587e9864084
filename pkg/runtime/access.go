package runtime

import "cps/interpreter-go/pkg/cps"

// ResolveField implements access-path resolution F from spec.md §4.3:
//
//	F(x, Off(0))              = x
//	F(Record(els, i), Off(j)) = Record(els, i+j)
//	F(Record(els,i), Sel(j,p)) = F(els[i+j], p)
//
// Any other combination (e.g. Off(j) with j != 0 on a non-Record, or any
// Sel on a non-Record) is malformed CPS and reported as a fault.
func ResolveField(v Value, path cps.AccessPath) (Value, error) {
	switch p := path.(type) {
	case cps.Off:
		if p.K == 0 {
			return v, nil
		}
		rec, ok := v.(RecordValue)
		if !ok {
			return nil, Faultf(FaultTypeMismatch, "Off(%d) applied to non-Record %s", p.K, v.Kind())
		}
		return RecordValue{Elements: rec.Elements, Base: rec.Base + p.K}, nil
	case cps.Sel:
		rec, ok := v.(RecordValue)
		if !ok {
			return nil, Faultf(FaultTypeMismatch, "Sel(%d) applied to non-Record %s", p.K, v.Kind())
		}
		idx := rec.Base + p.K
		if idx < 0 || idx >= len(rec.Elements) {
			return nil, Faultf(FaultIndexOutOfRange, "record field %d (base %d + %d) out of range for %d elements",
				idx, rec.Base, p.K, len(rec.Elements))
		}
		return ResolveField(rec.Elements[idx], p.Path)
	default:
		return nil, Faultf(FaultTypeMismatch, "unknown access path %T", path)
	}
}
