package mortgage

import (
	"fmt"
	"math"

	"github.com/jjsiesto/fine3300-a2/pkg/constants"
)

// PeriodicRate converts a quoted annual rate (decimal fraction,
// compounded semi-annually per Canadian mortgage convention) into the
// equivalent effective rate per payment period:
//
//	r = (1 + quoted/2)^(2/m) - 1
//
// Compounding equivalence holds exactly: the result compounded m times
// yields the same annual growth as the quoted rate compounded twice.
func PeriodicRate(quotedRate float64, paymentsPerYear int) (float64, error) {
	if quotedRate < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, quotedRate)
	}
	if paymentsPerYear <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrequency, paymentsPerYear)
	}
	semiAnnual := quotedRate / constants.SemiAnnualCompounds
	exponent := float64(constants.SemiAnnualCompounds) / float64(paymentsPerYear)
	return math.Pow(1+semiAnnual, exponent) - 1, nil
}
