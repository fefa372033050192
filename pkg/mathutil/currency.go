// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/jjsiesto/fine3300-a2/pkg/constants"
	"github.com/shopspring/decimal"
)

// RoundCents rounds a value to two decimals, i.e. to represent real
// currency. Rounding goes through decimal arithmetic so values such as
// 2.675 land on 2.68 rather than the nearest binary float.
func RoundCents(val float64) float64 {
	return decimal.NewFromFloat(val).Round(constants.DecimalPrecision).InexactFloat64()
}

// IsZero checks if a value is effectively zero (within currency tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
