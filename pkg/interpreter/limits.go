package interpreter

import (
	"math"
	"strconv"

	"cps/interpreter-go/pkg/runtime"
)

// Limits bundles the external parameters spec.md §6 requires the core to
// receive rather than hard-code: integer and real bounds, the decimal
// decoder for Real literals, the word width bitwise primops operate over,
// and the equality oracle. pkg/driver builds one of these from a run
// manifest; callers embedding this package directly can use DefaultLimits.
type Limits struct {
	MinInt       int64
	MaxInt       int64
	MinReal      float64
	MaxReal      float64
	WordBits     int
	StringToReal runtime.StringToReal
	Oracle       runtime.Oracle
}

// DefaultLimits models a 32-bit two's-complement word: MinInt/MaxInt are
// math.MinInt32/math.MaxInt32, reals are bounded by ±math.MaxFloat64,
// StringToReal is strconv.ParseFloat, and the oracle always resolves to
// "equal" (see runtime.DefaultOracle).
func DefaultLimits() *Limits {
	return &Limits{
		MinInt:   math.MinInt32,
		MaxInt:   math.MaxInt32,
		MinReal:  -math.MaxFloat64,
		MaxReal:  math.MaxFloat64,
		WordBits: 32,
		StringToReal: func(literal string) (float64, error) {
			return strconv.ParseFloat(literal, 64)
		},
		Oracle: runtime.DefaultOracle(),
	}
}
