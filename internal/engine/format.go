package engine

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	resultDecimals = 10

	// Magnitudes outside [minFixed, maxFixed) print in exponent form.
	minFixed = 1e-6
	maxFixed = 1e21
)

// RoundResult rounds v to ten fractional digits, halves away from zero, using
// the exact binary value of v. Magnitudes of 1e21 and above are returned
// unchanged since they carry no fractional digits.
func RoundResult(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) >= maxFixed {
		return v
	}
	s := new(big.Rat).SetFloat64(v).FloatString(resultDecimals)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

// FormatResult renders v for the display: rounded to ten fractional digits,
// then the shortest decimal that reproduces the rounded value. Very small and
// very large magnitudes use exponent form ("1e-7", "1.5e+21"), and negative
// zero prints as "0".
func FormatResult(v float64) string {
	return formatNumber(RoundResult(v))
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	abs := math.Abs(v)
	if abs >= minFixed && abs < maxFixed {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// 'e' gives "1.5e+21" / "1e-07"; drop the exponent's zero padding.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
