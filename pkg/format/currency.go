// Package format provides currency string formatting helpers.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := groupThousands(fmt.Sprintf("%.2f", math.Abs(amount)))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeCurrency returns a currency string rounded to whole dollars with
// thousands separators (e.g., "$1,235"), as used for chart axis labels.
func WholeCurrency(amount float64) string {
	formatted := groupThousands(fmt.Sprintf("%.0f", math.Abs(amount)))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

func groupThousands(formatted string) string {
	intPart := formatted
	decPart := ""
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		intPart, decPart = formatted[:i], formatted[i:]
	}
	if len(intPart) <= 3 {
		return intPart + decPart
	}

	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String() + decPart
}
