// Package constants provides shared constants for the fine3300-a2 tools.
package constants

// Financial constants
const (
	// SemiAnnualCompounds is the number of compounding periods per year for
	// a quoted Canadian fixed-rate mortgage.
	SemiAnnualCompounds = 2

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// AmountTolerance is the tolerance for raw (unrounded) balance comparisons
	AmountTolerance = 1e-6
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration and output file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultWorkbookFile is the default Excel workbook for amortization schedules
	DefaultWorkbookFile = "Amortization_Schedules.xlsx"

	// DefaultPlotFile is the default PNG file for the balance decline plot
	DefaultPlotFile = "Loan_Balance_Decline.png"
)

// CPI analysis defaults
const (
	// DefaultBaseJurisdiction is the jurisdiction equivalent salaries are measured against
	DefaultBaseJurisdiction = "ON"

	// DefaultBaseSalary is the salary equivalent salaries are measured against
	DefaultBaseSalary = 100000.0
)
