// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
	"strconv"

	"github.com/iwvelando/loan-estimator/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, half away from zero, using the
// shortest decimal representation of the float. 1.005 rounds to 1.01 even
// though its binary value sits just below the midpoint.
func Round(val float64) float64 {
	if !isFinite(val) {
		return val
	}
	return decimal.NewFromFloat(val).Round(constants.DecimalPlaces).InexactFloat64()
}

// FormatFixed renders val with exactly places decimals using the same
// rounding rule as Round.
func FormatFixed(val float64, places int32) string {
	if !isFinite(val) {
		return strconv.FormatFloat(val, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(val).StringFixed(places)
}

// AtMostSum reports whether val <= sum(terms), comparing in decimal space so
// that 0.41 + 0.05 is exactly 0.46.
func AtMostSum(val float64, terms ...float64) bool {
	if math.IsNaN(val) {
		return false
	}
	if math.IsInf(val, 0) {
		return math.IsInf(val, -1)
	}
	limit := decimal.Zero
	for _, term := range terms {
		limit = limit.Add(decimal.NewFromFloat(term))
	}
	return decimal.NewFromFloat(val).LessThanOrEqual(limit)
}

// ToPercent converts a ratio into a percentage.
func ToPercent(ratio float64) float64 {
	return ratio * constants.PercentageMultiplier
}

func isFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
