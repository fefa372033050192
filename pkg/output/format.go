// Package output provides utilities for formatting and displaying
// payment summaries and amortization schedules.
package output

import (
	"fmt"

	"github.com/jjsiesto/fine3300-a2/pkg/mathutil"
	"github.com/jjsiesto/fine3300-a2/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PaymentSummary outputs the periodic payment under every scheme for
// one principal.
func PaymentSummary(principal float64, set mortgage.PaymentSet) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("--- Payments on a $%.2f mortgage ---\n", principal)
	for _, freq := range mortgage.Frequencies() {
		_, _ = p.Printf("%-22s | $%.2f\n", freq.String(), set.ByFrequency(freq))
	}
}

// PrettySchedule outputs a human-readable rather than machine-readable
// amortization table.
func PrettySchedule(name string, rows []mortgage.Row) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Amortization schedule: %s ---\n", name)
	fmt.Printf("Period | Beginning     | Payment       | Principal     | Interest      | Ending\n")
	fmt.Printf("______ | _____________ | _____________ | _____________ | _____________ | _____________\n")
	for _, row := range rows {
		_, _ = p.Printf("%6d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
			row.Period,
			mathutil.RoundCents(row.BeginningBalance),
			mathutil.RoundCents(row.Payment),
			mathutil.RoundCents(row.Principal),
			mathutil.RoundCents(row.Interest),
			mathutil.RoundCents(row.EndingBalance))
	}
}

// CsvSchedule outputs one schedule in comma-separated value format.
func CsvSchedule(name string, rows []mortgage.Row) {
	fmt.Printf("\"scheme\",\"period\",\"payment\",\"interest\",\"principal\",\"balance\"\n")
	for _, row := range rows {
		fmt.Printf("%q,%d,%.2f,%.2f,%.2f,%.2f\n",
			name,
			row.Period,
			mathutil.RoundCents(row.Payment),
			mathutil.RoundCents(row.Interest),
			mathutil.RoundCents(row.Principal),
			mathutil.RoundCents(row.EndingBalance))
	}
}
