package mortgage

import (
	"github.com/jjsiesto/fine3300-a2/pkg/constants"
)

// Row is one period of an amortization schedule. Interest plus
// Principal equals Payment; EndingBalance is zero on the final row.
type Row struct {
	Period           int
	BeginningBalance float64
	Payment          float64
	Principal        float64
	Interest         float64
	EndingBalance    float64
}

// Schedule generates the full amortization schedule for the given
// terms. The loop carries the running balance forward one payment at a
// time; the last payment is adjusted by any residual balance so the
// schedule terminates at exactly zero rather than drifting with
// floating point. Accelerated schemes pay more than their level payment
// and therefore produce fewer rows than the stated term.
func Schedule(terms Terms) ([]Row, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	rate, err := terms.PeriodicRate()
	if err != nil {
		return nil, err
	}
	payment, err := terms.Payment()
	if err != nil {
		return nil, err
	}

	totalPeriods := terms.TotalPeriods()
	rows := make([]Row, 0, totalPeriods)
	balance := terms.Principal

	for period := 1; period <= totalPeriods && balance > 0; period++ {
		interest := balance * rate
		row := Row{
			Period:           period,
			BeginningBalance: balance,
			Interest:         interest,
		}

		// Closeout rule: when the remaining balance plus its interest no
		// longer covers a full payment, or the stated term is up, the
		// payment absorbs the residual and the balance lands on zero.
		if balance+interest <= payment+constants.AmountTolerance || period == totalPeriods {
			row.Payment = balance + interest
			row.Principal = balance
			row.EndingBalance = 0
		} else {
			row.Payment = payment
			row.Principal = payment - interest
			row.EndingBalance = balance - row.Principal
		}

		rows = append(rows, row)
		balance = row.EndingBalance
	}

	return rows, nil
}

// BalancePoint is one (period, ending balance) sample of a schedule,
// the only data handed to charting collaborators.
type BalancePoint struct {
	Period  int
	Balance float64
}

// BalanceSeries extracts the ending-balance-per-period series from a
// schedule for plotting.
func BalanceSeries(rows []Row) []BalancePoint {
	points := make([]BalancePoint, len(rows))
	for i, row := range rows {
		points[i] = BalancePoint{Period: row.Period, Balance: row.EndingBalance}
	}
	return points
}
