package cpi

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ReferenceMonth is the month used for the point-in-time analyses
// (equivalent salaries, real wages).
const ReferenceMonth = "24-Dec"

// AllItems is the headline CPI series name.
const AllItems = "All-items"

// monthOrder maps the source data's month labels to a sortable index.
var monthOrder = map[string]int{
	"24-Jan": 1, "24-Feb": 2, "24-Mar": 3, "24-Apr": 4,
	"24-May": 5, "24-Jun": 6, "24-Jul": 7, "24-Aug": 8,
	"24-Sep": 9, "24-Oct": 10, "24-Nov": 11, "24-Dec": 12,
}

// trackedItems are the series used for the month-to-month analysis.
var trackedItems = map[string]bool{
	"Food":    true,
	"Shelter": true,
	"All-items excluding food and energy": true,
}

// AverageChange is the mean month-to-month percent change of one CPI
// series in one jurisdiction.
type AverageChange struct {
	Jurisdiction string
	Item         string
	AvgPercent   float64
}

// MonthToMonthChanges computes the average month-to-month percent
// change for the tracked items in every jurisdiction, rounded to one
// decimal. Records with unrecognized month labels are dropped with a
// warning.
func MonthToMonthChanges(logger *zap.Logger, records []Record) []AverageChange {
	if logger == nil {
		logger = zap.NewNop()
	}

	type series struct {
		jurisdiction string
		item         string
		byMonth      map[int]float64
	}
	grouped := make(map[string]*series)
	for _, record := range records {
		if !trackedItems[record.Item] {
			continue
		}
		order, ok := monthOrder[record.Month]
		if !ok {
			logger.Warn("unrecognized month label in CPI data",
				zap.String("op", "cpi.MonthToMonthChanges"),
				zap.String("month", record.Month),
				zap.String("jurisdiction", record.Jurisdiction),
			)
			continue
		}
		key := record.Jurisdiction + "\x00" + record.Item
		group, ok := grouped[key]
		if !ok {
			group = &series{
				jurisdiction: record.Jurisdiction,
				item:         record.Item,
				byMonth:      make(map[int]float64),
			}
			grouped[key] = group
		}
		group.byMonth[order] = record.CPI
	}

	var changes []AverageChange
	for _, group := range grouped {
		months := make([]int, 0, len(group.byMonth))
		for month := range group.byMonth {
			months = append(months, month)
		}
		sort.Ints(months)
		if len(months) < 2 {
			continue
		}

		var sum float64
		count := 0
		for i := 1; i < len(months); i++ {
			previous := group.byMonth[months[i-1]]
			if previous == 0 {
				continue
			}
			sum += group.byMonth[months[i]]/previous - 1
			count++
		}
		if count == 0 {
			continue
		}
		changes = append(changes, AverageChange{
			Jurisdiction: group.jurisdiction,
			Item:         group.item,
			AvgPercent:   roundTo(sum/float64(count)*100, 1),
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Jurisdiction != changes[j].Jurisdiction {
			return changes[i].Jurisdiction < changes[j].Jurisdiction
		}
		return changes[i].Item < changes[j].Item
	})
	return changes
}

// HighestPerItem returns the jurisdiction with the highest average
// month-to-month change for each item, sorted by item name.
func HighestPerItem(changes []AverageChange) []AverageChange {
	best := make(map[string]AverageChange)
	for _, change := range changes {
		current, ok := best[change.Item]
		if !ok || change.AvgPercent > current.AvgPercent {
			best[change.Item] = change
		}
	}

	result := make([]AverageChange, 0, len(best))
	for _, change := range best {
		result = append(result, change)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Item < result[j].Item })
	return result
}

// EquivalentSalary is the salary in one jurisdiction with the same
// purchasing power as the base salary in the base jurisdiction.
type EquivalentSalary struct {
	Jurisdiction string
	CPI          float64
	Salary       float64
}

// EquivalentSalaries scales baseSalary by the ratio of each
// jurisdiction's reference-month headline CPI to the base
// jurisdiction's. Jurisdictions keep their load order (Canada first).
func EquivalentSalaries(records []Record, baseJurisdiction string, baseSalary float64) ([]EquivalentSalary, error) {
	var salaries []EquivalentSalary
	baseCPI := 0.0
	for _, record := range records {
		if record.Item != AllItems || record.Month != ReferenceMonth {
			continue
		}
		salaries = append(salaries, EquivalentSalary{Jurisdiction: record.Jurisdiction, CPI: record.CPI})
		if record.Jurisdiction == baseJurisdiction {
			baseCPI = record.CPI
		}
	}
	if baseCPI == 0 {
		return nil, fmt.Errorf("base jurisdiction %s not found in %s %s data", baseJurisdiction, ReferenceMonth, AllItems)
	}

	for i := range salaries {
		salaries[i].Salary = roundTo(salaries[i].CPI/baseCPI*baseSalary, 2)
	}
	return salaries, nil
}

// WageRow joins one jurisdiction's minimum wage with its headline CPI.
// RealWageIndex is the nominal wage deflated by CPI (wage / CPI * 100).
type WageRow struct {
	Jurisdiction  string
	MinimumWage   float64
	CPI           float64
	RealWageIndex float64
}

// WageAnalysis is the outcome of the nominal vs. real minimum wage
// comparison.
type WageAnalysis struct {
	NominalMax WageRow
	NominalMin WageRow
	RealMax    WageRow
	Rows       []WageRow
}

// AnalyzeMinimumWages reads the minimum wage file (columns Province and
// Minimum Wage) and joins it against the reference-month headline CPI.
// Wage rows without CPI data are dropped with a warning.
func AnalyzeMinimumWages(logger *zap.Logger, records []Record, wagesPath string) (*WageAnalysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(wagesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open minimum wage file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", wagesPath, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("minimum wage file %s has no data rows", wagesPath)
	}

	provinceCol, wageCol := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case "Province":
			provinceCol = i
		case "Minimum Wage":
			wageCol = i
		}
	}
	if provinceCol < 0 || wageCol < 0 {
		return nil, fmt.Errorf("minimum wage file %s missing Province or Minimum Wage column", wagesPath)
	}

	cpiByJurisdiction := make(map[string]float64)
	for _, record := range records {
		if record.Item == AllItems && record.Month == ReferenceMonth {
			cpiByJurisdiction[record.Jurisdiction] = record.CPI
		}
	}

	analysis := &WageAnalysis{}
	for _, row := range rows[1:] {
		wage, err := strconv.ParseFloat(strings.TrimSpace(row[wageCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric minimum wage %q: %w", row[wageCol], err)
		}
		jurisdiction := strings.TrimSpace(row[provinceCol])

		nominal := WageRow{Jurisdiction: jurisdiction, MinimumWage: wage}
		if analysis.NominalMax.Jurisdiction == "" || wage > analysis.NominalMax.MinimumWage {
			analysis.NominalMax = nominal
		}
		if analysis.NominalMin.Jurisdiction == "" || wage < analysis.NominalMin.MinimumWage {
			analysis.NominalMin = nominal
		}

		cpi, ok := cpiByJurisdiction[jurisdiction]
		if !ok {
			logger.Warn("minimum wage row has no matching CPI data",
				zap.String("op", "cpi.AnalyzeMinimumWages"),
				zap.String("jurisdiction", jurisdiction),
			)
			continue
		}
		joined := WageRow{
			Jurisdiction:  jurisdiction,
			MinimumWage:   wage,
			CPI:           cpi,
			RealWageIndex: roundTo(wage/cpi*100, 2),
		}
		analysis.Rows = append(analysis.Rows, joined)
		if analysis.RealMax.Jurisdiction == "" || joined.RealWageIndex > analysis.RealMax.RealWageIndex {
			analysis.RealMax = joined
		}
	}

	if len(analysis.Rows) == 0 {
		return nil, fmt.Errorf("no minimum wage rows matched the CPI data")
	}
	return analysis, nil
}

// ServiceInflation is one jurisdiction's annual change in the Services
// CPI from January to December.
type ServiceInflation struct {
	Jurisdiction  string
	JanCPI        float64
	DecCPI        float64
	ChangePercent float64
}

// ServicesInflation computes the January-to-December percent change in
// the Services series per jurisdiction, rounded to one decimal and
// sorted by jurisdiction.
func ServicesInflation(records []Record) []ServiceInflation {
	type pair struct{ jan, dec float64 }
	byJurisdiction := make(map[string]*pair)
	for _, record := range records {
		if record.Item != "Services" {
			continue
		}
		entry, ok := byJurisdiction[record.Jurisdiction]
		if !ok {
			entry = &pair{}
			byJurisdiction[record.Jurisdiction] = entry
		}
		switch record.Month {
		case "24-Jan":
			entry.jan = record.CPI
		case "24-Dec":
			entry.dec = record.CPI
		}
	}

	var result []ServiceInflation
	for jurisdiction, entry := range byJurisdiction {
		if entry.jan == 0 || entry.dec == 0 {
			continue
		}
		result = append(result, ServiceInflation{
			Jurisdiction:  jurisdiction,
			JanCPI:        entry.jan,
			DecCPI:        entry.dec,
			ChangePercent: roundTo((entry.dec-entry.jan)/entry.jan*100, 1),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Jurisdiction < result[j].Jurisdiction })
	return result
}

// HighestServiceInflation returns the jurisdiction with the largest
// annual Services inflation.
func HighestServiceInflation(rows []ServiceInflation) (ServiceInflation, bool) {
	if len(rows) == 0 {
		return ServiceInflation{}, false
	}
	highest := rows[0]
	for _, row := range rows[1:] {
		if row.ChangePercent > highest.ChangePercent {
			highest = row
		}
	}
	return highest, true
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
