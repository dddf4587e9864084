package runtime

// Store is the quadruple from spec.md §3: next-free-location, a value map,
// an integer map, and a fixed handler location. It is realized the same
// way as Environment — a persistent chain of single-slot deltas — since
// evaluation never needs random access faster than a chain walk provides,
// and a chain gives functional update (upd/updi/alloc each return a new
// Store) for free.
type Store struct {
	next    Location
	handler Location
	vchain  *valueCell
	ichain  *intCell
}

type valueCell struct {
	loc    Location
	val    Value
	parent *valueCell
}

type intCell struct {
	loc    Location
	val    int64
	parent *intCell
}

// HandlerLocation is the store location spec.md §3 fixes for the duration
// of a run; only its binding (via Upd) changes, never the location itself.
const HandlerLocation Location = 0

// NewStore builds the initial store with the handler location seeded to
// initialHandler and next-free-location past it.
func NewStore(initialHandler FunctionValue) *Store {
	return &Store{
		next:    HandlerLocation.Next(),
		handler: HandlerLocation,
		vchain:  &valueCell{loc: HandlerLocation, val: initialHandler},
	}
}

// Fetch returns the value bound to l in the value map. Fetching a location
// never written there is a malformed-CPS fault.
func (s *Store) Fetch(l Location) (Value, error) {
	for c := s.vchain; c != nil; c = c.parent {
		if c.loc == l {
			return c.val, nil
		}
	}
	return nil, Faultf(FaultBadLocation, "fetch %d", l)
}

// FetchInt returns the integer bound to l in the integer map.
func (s *Store) FetchInt(l Location) (int64, error) {
	for c := s.ichain; c != nil; c = c.parent {
		if c.loc == l {
			return c.val, nil
		}
	}
	return 0, Faultf(FaultBadLocation, "fetchi %d", l)
}

// Upd returns a new store with the value map updated at l; the integer map
// and next-free-location are unchanged.
func (s *Store) Upd(l Location, v Value) *Store {
	ns := *s
	ns.vchain = &valueCell{loc: l, val: v, parent: s.vchain}
	return &ns
}

// Updi returns a new store with the integer map updated at l; the value
// map and next-free-location are unchanged.
func (s *Store) Updi(l Location, i int64) *Store {
	ns := *s
	ns.ichain = &intCell{loc: l, val: i, parent: s.ichain}
	return &ns
}

// Alloc returns a fresh location strictly greater than every location
// previously allocated from s, and the store advanced past it. Neither map
// is written; callers write the freshly allocated location themselves via
// Upd/Updi.
func (s *Store) Alloc() (Location, *Store) {
	l := s.next
	ns := *s
	ns.next = l.Next()
	return l, &ns
}

// Handler fetches the current exception handler (spec.md §4.5 `gethdlr`).
func (s *Store) Handler() (Value, error) {
	return s.Fetch(s.handler)
}

// SetHandler returns a new store with the handler rebound to h (spec.md
// §4.5 `sethdlr`; see DESIGN.md for why this writes h rather than the
// literal 1 the source computed it from).
func (s *Store) SetHandler(h Value) *Store {
	return s.Upd(s.handler, h)
}
