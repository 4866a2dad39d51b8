package model

import (
	"math"
	"strconv"
)

// FixedScale — количество единиц Fixed в 1.0.
const FixedScale = 1_000_000

// fixedLimit keeps a single converted value far enough from the int64 edge
// that sums of many bonuses cannot overflow.
const fixedLimit = 1 << 53

// Fixed is a signed fixed-point number with six fractional digits.
//
// Character bonus fields are stored as Fixed so that adding a bonus and then
// subtracting the same bonus is an exact integer round-trip, whatever the
// starting value.
type Fixed int64

// ToFixed rounds f to the nearest Fixed. NaN and ±Inf become 0; out-of-range
// values saturate.
func ToFixed(f float64) Fixed {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	v := math.Round(f * FixedScale)
	switch {
	case v > fixedLimit:
		return fixedLimit
	case v < -fixedLimit:
		return -fixedLimit
	}
	return Fixed(v)
}

// Float converts back to float64 for display and formulas.
func (f Fixed) Float() float64 {
	return float64(f) / FixedScale
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float(), 'f', -1, 64)
}
