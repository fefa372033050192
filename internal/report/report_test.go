package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jjsiesto/fine3300-a2/pkg/mortgage"
	"github.com/xuri/excelize/v2"
)

func testSchedules(t *testing.T) []SchemeSchedule {
	t.Helper()
	var schedules []SchemeSchedule
	for _, freq := range []mortgage.Frequency{mortgage.Monthly, mortgage.BiWeekly} {
		rows, err := mortgage.Schedule(mortgage.Terms{
			Principal:         100000,
			QuotedRate:        0.05,
			AmortizationYears: 5,
			Frequency:         freq,
		})
		if err != nil {
			t.Fatalf("Schedule(%s) error = %v", freq, err)
		}
		schedules = append(schedules, SchemeSchedule{Name: freq.String(), Rows: rows})
	}
	return schedules
}

func TestWriteWorkbook(t *testing.T) {
	schedules := testSchedules(t)
	path := filepath.Join(t.TempDir(), "schedules.xlsx")

	if err := WriteWorkbook(path, schedules); err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer func() {
		_ = workbook.Close()
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) != len(schedules) {
		t.Fatalf("workbook has %d sheets, expected %d", len(sheets), len(schedules))
	}
	for i, schedule := range schedules {
		if sheets[i] != schedule.Name {
			t.Errorf("sheet %d = %s, expected %s", i, sheets[i], schedule.Name)
		}
	}

	header, err := workbook.GetCellValue("Monthly", "A1")
	if err != nil {
		t.Fatalf("failed to read header cell: %v", err)
	}
	if header != "Period" {
		t.Errorf("header cell = %q, expected Period", header)
	}

	rows, err := workbook.GetRows("Monthly")
	if err != nil {
		t.Fatalf("failed to read Monthly sheet: %v", err)
	}
	// Header plus one row per period.
	if len(rows) != len(schedules[0].Rows)+1 {
		t.Errorf("Monthly sheet has %d rows, expected %d", len(rows), len(schedules[0].Rows)+1)
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteWorkbook(path, nil); err == nil {
		t.Error("WriteWorkbook() expected error for empty schedule list")
	}
}

func TestRenderBalanceDecline(t *testing.T) {
	var series []NamedSeries
	for _, schedule := range testSchedules(t) {
		series = append(series, NamedSeries{
			Name:   schedule.Name,
			Points: mortgage.BalanceSeries(schedule.Rows),
		})
	}

	var buf bytes.Buffer
	if err := RenderBalanceDecline(&buf, series); err != nil {
		t.Fatalf("RenderBalanceDecline() error = %v", err)
	}

	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < len(pngMagic) || !bytes.Equal(buf.Bytes()[:4], pngMagic) {
		t.Error("RenderBalanceDecline() did not produce a PNG")
	}
}

func TestRenderBalanceDeclineEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBalanceDecline(&buf, nil); err == nil {
		t.Error("RenderBalanceDecline() expected error for empty series list")
	}
}

func TestWriteBalanceDecline(t *testing.T) {
	schedules := testSchedules(t)
	series := []NamedSeries{
		{Name: schedules[0].Name, Points: mortgage.BalanceSeries(schedules[0].Rows)},
	}

	path := filepath.Join(t.TempDir(), "decline.png")
	if err := WriteBalanceDecline(path, series); err != nil {
		t.Fatalf("WriteBalanceDecline() error = %v", err)
	}
}
