// Package mortgage implements payment and amortization schedule
// calculations for Canadian fixed-rate mortgages, where the quoted
// annual rate is compounded semi-annually.
package mortgage

// Frequency identifies one of the supported payment schemes.
type Frequency int

const (
	Monthly Frequency = iota
	SemiMonthly
	BiWeekly
	AcceleratedBiWeekly
	Weekly
	AcceleratedWeekly
)

// schemes maps each payment scheme to its fixed parameters. Accelerated
// schemes reuse the rate of their base scheme but pay a fraction of the
// monthly payment, which retires the loan before the stated term.
var schemes = map[Frequency]struct {
	name            string
	paymentsPerYear int
	accelerated     bool
}{
	Monthly:             {"Monthly", 12, false},
	SemiMonthly:         {"Semi-Monthly", 24, false},
	BiWeekly:            {"Bi-Weekly", 26, false},
	AcceleratedBiWeekly: {"Accelerated Bi-Weekly", 26, true},
	Weekly:              {"Weekly", 52, false},
	AcceleratedWeekly:   {"Accelerated Weekly", 52, true},
}

// Frequencies returns all supported payment schemes in display order.
func Frequencies() []Frequency {
	return []Frequency{Monthly, SemiMonthly, BiWeekly, AcceleratedBiWeekly, Weekly, AcceleratedWeekly}
}

// PaymentsPerYear returns the number of payments made per year under f.
func (f Frequency) PaymentsPerYear() int {
	return schemes[f].paymentsPerYear
}

// Accelerated reports whether f pays a fraction of the monthly payment
// rather than its own level payment.
func (f Frequency) Accelerated() bool {
	return schemes[f].accelerated
}

func (f Frequency) String() string {
	s, ok := schemes[f]
	if !ok {
		return "Unknown"
	}
	return s.name
}
