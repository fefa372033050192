package cpi

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeTestFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func writeCPIDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "AB.CPI.1810000401.csv",
		"Item,24-Jan,24-Feb,24-Mar,24-Dec\n"+
			"All-items,120,121,122,126\n"+
			"Food,110,111,112,113\n"+
			"Services,100,102,104,106\n")
	writeTestFile(t, dir, "Canada.CPI.1810000401.csv",
		"Item,24-Jan,24-Feb,24-Mar,24-Dec\n"+
			"All-items,100,101,102,104\n"+
			"Food,100,102,103,105\n"+
			"Services,100,101,102,103\n")
	writeTestFile(t, dir, "ON.CPI.1810000401.csv",
		"Item,24-Jan,24-Feb,24-Mar,24-Dec\n"+
			"All-items,98,99,99,100\n"+
			"Food,100,101,102,103\n"+
			"Services,100,101,101,102\n")
	return dir
}

func TestLoadAll(t *testing.T) {
	dir := writeCPIDir(t)

	records, err := LoadAll(zap.NewNop(), dir)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	// 3 files x 3 items x 4 months
	if len(records) != 36 {
		t.Fatalf("LoadAll() returned %d records, expected 36", len(records))
	}

	// Canada sorts ahead of the alphabetical provinces.
	if records[0].Jurisdiction != "Canada" {
		t.Errorf("first record jurisdiction = %s, expected Canada", records[0].Jurisdiction)
	}
	if records[12].Jurisdiction != "AB" {
		t.Errorf("record 12 jurisdiction = %s, expected AB", records[12].Jurisdiction)
	}
	if records[24].Jurisdiction != "ON" {
		t.Errorf("record 24 jurisdiction = %s, expected ON", records[24].Jurisdiction)
	}

	first := records[0]
	if first.Item != "All-items" || first.Month != "24-Jan" || first.CPI != 100 {
		t.Errorf("first record = %+v, expected Canada All-items 24-Jan 100", first)
	}
}

func TestLoadAllErrors(t *testing.T) {
	t.Run("Empty directory", func(t *testing.T) {
		if _, err := LoadAll(zap.NewNop(), t.TempDir()); err == nil {
			t.Error("LoadAll() expected error for directory with no CSV files")
		}
	})

	t.Run("Non-numeric value", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "BC.CPI.csv", "Item,24-Jan\nAll-items,n/a\n")
		if _, err := LoadAll(zap.NewNop(), dir); err == nil {
			t.Error("LoadAll() expected error for non-numeric CPI value")
		}
	})

	t.Run("Ragged row", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "BC.CPI.csv", "Item,24-Jan,24-Feb\nAll-items,100,101\nFood,100\n")
		if _, err := LoadAll(zap.NewNop(), dir); err == nil {
			t.Error("LoadAll() expected error for row not matching header width")
		}
	})
}
