package keyframe

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	hundred = big.NewRat(100, 1)
	half    = big.NewRat(1, 2)
)

// fixed2 formats v with two decimals.
//
// Rounding works on the exact binary value of v and breaks ties away from
// zero, so 5.625 is written as 5.63 and -0.375 as -0.38. The sign is kept
// for negative values that round to zero (-0.001 is -0.00), but negative
// zero itself is written as 0.00.
func fixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	// floor(|v|*100 + 1/2), computed exactly.
	r := new(big.Rat).SetFloat64(math.Abs(v))
	r.Mul(r, hundred).Add(r, half)
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	digits := cents.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	s := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if v < 0 {
		s = "-" + s
	}
	return s
}

// negFixed2 rounds v to two decimals first and then negates it, so a value
// that rounds to zero is written as 0.00 and never as -0.00.
func negFixed2(v float64) string {
	r, err := strconv.ParseFloat(fixed2(v), 64)
	if err != nil || math.IsNaN(r) {
		return "0.00"
	}
	return fixed2(-r)
}
