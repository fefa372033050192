package output

import (
	"fmt"
	"strings"

	"github.com/jjsiesto/fine3300-a2/internal/cpi"
	"github.com/jjsiesto/fine3300-a2/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Banner prints a section header for the CPI analysis report.
func Banner(title string) {
	rule := strings.Repeat("=", 80)
	fmt.Println(rule)
	fmt.Printf("--- %s ---\n", title)
	fmt.Println(rule)
}

// AverageChanges outputs the average month-to-month percent change table.
func AverageChanges(changes []cpi.AverageChange) {
	fmt.Printf("Jurisdiction | Item                                | Avg MtM Change\n")
	fmt.Printf("____________ | ___________________________________ | ______________\n")
	for _, change := range changes {
		fmt.Printf("%-12s | %-35s | %.1f%%\n", change.Jurisdiction, change.Item, change.AvgPercent)
	}
}

// EquivalentSalaries outputs the equivalent salary table.
func EquivalentSalaries(salaries []cpi.EquivalentSalary, baseJurisdiction string, baseSalary float64) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("Salaries with the purchasing power of $%.2f in %s:\n", baseSalary, baseJurisdiction)
	fmt.Printf("Jurisdiction | CPI    | Equivalent Salary\n")
	fmt.Printf("____________ | ______ | _________________\n")
	for _, salary := range salaries {
		_, _ = p.Printf("%-12s | %6.1f | $%.2f\n", salary.Jurisdiction, salary.CPI, salary.Salary)
	}
}

// WageAnalysis outputs the nominal and real minimum wage comparison.
func WageAnalysis(analysis *cpi.WageAnalysis) {
	fmt.Printf("Highest nominal wage: %s at %s\n", analysis.NominalMax.Jurisdiction, format.Currency(analysis.NominalMax.MinimumWage))
	fmt.Printf("Lowest nominal wage:  %s at %s\n", analysis.NominalMin.Jurisdiction, format.Currency(analysis.NominalMin.MinimumWage))
	fmt.Printf("Highest real wage:    %s at index %.2f\n\n", analysis.RealMax.Jurisdiction, analysis.RealMax.RealWageIndex)
	fmt.Printf("Jurisdiction | Minimum Wage | CPI    | Real Wage Index\n")
	fmt.Printf("____________ | ____________ | ______ | _______________\n")
	for _, row := range analysis.Rows {
		fmt.Printf("%-12s | $%11.2f | %6.1f | %.2f\n", row.Jurisdiction, row.MinimumWage, row.CPI, row.RealWageIndex)
	}
}

// ServicesInflation outputs the annual Services inflation table.
func ServicesInflation(rows []cpi.ServiceInflation) {
	fmt.Printf("Jurisdiction | 24-Jan | 24-Dec | Annual Change\n")
	fmt.Printf("____________ | ______ | ______ | _____________\n")
	for _, row := range rows {
		fmt.Printf("%-12s | %6.1f | %6.1f | %.1f%%\n", row.Jurisdiction, row.JanCPI, row.DecCPI, row.ChangePercent)
	}
}
