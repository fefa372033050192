package mortgage

import (
	"fmt"
	"math"
)

// Terms holds the immutable inputs describing one mortgage. QuotedRate
// is a decimal fraction (0.05 for 5%).
type Terms struct {
	Principal         float64
	QuotedRate        float64
	AmortizationYears int
	Frequency         Frequency
}

// Validate checks all loan parameters, returning the first violated
// constraint wrapped around its sentinel error.
func (t Terms) Validate() error {
	if t.QuotedRate < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, t.QuotedRate)
	}
	if t.Principal <= 0 || t.AmortizationYears <= 0 {
		return fmt.Errorf("%w: principal %v over %d years", ErrInvalidTerm, t.Principal, t.AmortizationYears)
	}
	if t.Frequency.PaymentsPerYear() <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrequency, t.Frequency.PaymentsPerYear())
	}
	return nil
}

// TotalPeriods returns the scheduled number of payments over the full
// amortization.
func (t Terms) TotalPeriods() int {
	return t.AmortizationYears * t.Frequency.PaymentsPerYear()
}

// PeriodicRate returns the effective interest rate per payment period
// for these terms.
func (t Terms) PeriodicRate() (float64, error) {
	return PeriodicRate(t.QuotedRate, t.Frequency.PaymentsPerYear())
}

// LevelPayment calculates the fixed periodic payment that retires
// principal after totalPeriods payments at the given periodic rate,
// using the ordinary annuity formula. A zero rate degenerates to
// straight-line repayment.
func LevelPayment(principal, periodicRate float64, totalPeriods int) (float64, error) {
	if principal <= 0 || totalPeriods <= 0 {
		return 0, fmt.Errorf("%w: principal %v over %d periods", ErrInvalidTerm, principal, totalPeriods)
	}
	if periodicRate < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, periodicRate)
	}
	if periodicRate == 0 {
		return principal / float64(totalPeriods), nil
	}
	return principal * periodicRate / (1 - math.Pow(1+periodicRate, -float64(totalPeriods))), nil
}

// PeriodsToRepay returns the number of payments needed to retire
// principal at the given periodic rate and payment amount, rounded up
// to a whole period; the final payment absorbs the shortfall. The
// payment must exceed one period's interest or the balance never
// declines.
func PeriodsToRepay(principal, periodicRate, payment float64) (int, error) {
	if principal <= 0 {
		return 0, fmt.Errorf("%w: principal %v", ErrInvalidTerm, principal)
	}
	if periodicRate < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, periodicRate)
	}
	if payment <= principal*periodicRate {
		return 0, fmt.Errorf("%w: payment %v does not cover periodic interest on %v", ErrInvalidTerm, payment, principal)
	}
	if periodicRate == 0 {
		return int(math.Ceil(principal / payment)), nil
	}
	periods := -math.Log(1-principal*periodicRate/payment) / math.Log(1+periodicRate)
	// Guard against a whole-period result landing a hair above its
	// integer due to floating point.
	return int(math.Ceil(periods - 1e-9)), nil
}

// Payment returns the periodic payment for these terms. Accelerated
// schemes pay a fixed fraction of the monthly payment instead of their
// own level payment.
func (t Terms) Payment() (float64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if t.Frequency.Accelerated() {
		monthly, err := t.withFrequency(Monthly).Payment()
		if err != nil {
			return 0, err
		}
		switch t.Frequency {
		case AcceleratedBiWeekly:
			return monthly / 2, nil
		default: // AcceleratedWeekly
			return monthly / 4, nil
		}
	}
	rate, err := t.PeriodicRate()
	if err != nil {
		return 0, err
	}
	return LevelPayment(t.Principal, rate, t.TotalPeriods())
}

func (t Terms) withFrequency(f Frequency) Terms {
	t.Frequency = f
	return t
}

// PaymentSet holds the periodic payment for every supported scheme,
// mirroring the assignment's six-way summary.
type PaymentSet struct {
	Monthly             float64
	SemiMonthly         float64
	BiWeekly            float64
	AcceleratedBiWeekly float64
	Weekly              float64
	AcceleratedWeekly   float64
}

// Payments computes the periodic payment under all six schemes for one
// principal, quoted rate, and amortization.
func Payments(principal, quotedRate float64, amortizationYears int) (PaymentSet, error) {
	var set PaymentSet
	fields := map[Frequency]*float64{
		Monthly:             &set.Monthly,
		SemiMonthly:         &set.SemiMonthly,
		BiWeekly:            &set.BiWeekly,
		AcceleratedBiWeekly: &set.AcceleratedBiWeekly,
		Weekly:              &set.Weekly,
		AcceleratedWeekly:   &set.AcceleratedWeekly,
	}
	for _, freq := range Frequencies() {
		terms := Terms{
			Principal:         principal,
			QuotedRate:        quotedRate,
			AmortizationYears: amortizationYears,
			Frequency:         freq,
		}
		payment, err := terms.Payment()
		if err != nil {
			return PaymentSet{}, err
		}
		*fields[freq] = payment
	}
	return set, nil
}

// ByFrequency returns the payment for one scheme out of the set.
func (s PaymentSet) ByFrequency(f Frequency) float64 {
	switch f {
	case SemiMonthly:
		return s.SemiMonthly
	case BiWeekly:
		return s.BiWeekly
	case AcceleratedBiWeekly:
		return s.AcceleratedBiWeekly
	case Weekly:
		return s.Weekly
	case AcceleratedWeekly:
		return s.AcceleratedWeekly
	default:
		return s.Monthly
	}
}

// AnnualCost returns the total paid per year under frequency f for this
// payment set.
func (s PaymentSet) AnnualCost(f Frequency) float64 {
	return s.ByFrequency(f) * float64(f.PaymentsPerYear())
}
