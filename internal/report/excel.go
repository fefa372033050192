// Package report writes amortization results to their external
// destinations: an Excel workbook with one sheet per payment scheme and
// a PNG plot of balance decline. The engine only supplies schedule rows
// and (period, balance) pairs; everything rendering-specific lives here.
package report

import (
	"fmt"

	"github.com/jjsiesto/fine3300-a2/pkg/mathutil"
	"github.com/jjsiesto/fine3300-a2/pkg/mortgage"
	"github.com/xuri/excelize/v2"
)

// SchemeSchedule pairs a payment scheme's display name with its
// generated schedule.
type SchemeSchedule struct {
	Name string
	Rows []mortgage.Row
}

var workbookHeader = []interface{}{
	"Period", "Beginning Balance", "Payment", "Principal Paid", "Interest Paid", "Ending Balance",
}

// WriteWorkbook saves all schedules into a single workbook at path, one
// sheet per scheme, with values rounded to cents.
func WriteWorkbook(path string, schedules []SchemeSchedule) error {
	if len(schedules) == 0 {
		return fmt.Errorf("no schedules to write")
	}

	workbook := excelize.NewFile()
	defer func() {
		_ = workbook.Close()
	}()

	for i, schedule := range schedules {
		if i == 0 {
			if err := workbook.SetSheetName(workbook.GetSheetName(0), schedule.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", schedule.Name, err)
			}
		} else {
			if _, err := workbook.NewSheet(schedule.Name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", schedule.Name, err)
			}
		}

		if err := workbook.SetSheetRow(schedule.Name, "A1", &workbookHeader); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", schedule.Name, err)
		}
		for j, row := range schedule.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			values := []interface{}{
				row.Period,
				mathutil.RoundCents(row.BeginningBalance),
				mathutil.RoundCents(row.Payment),
				mathutil.RoundCents(row.Principal),
				mathutil.RoundCents(row.Interest),
				mathutil.RoundCents(row.EndingBalance),
			}
			if err := workbook.SetSheetRow(schedule.Name, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d for %s: %w", row.Period, schedule.Name, err)
			}
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
