// Package cpi loads monthly Consumer Price Index tables for the eleven
// Canadian jurisdictions and analyzes them against minimum wage data.
package cpi

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Record is one long-form CPI observation melted out of the wide
// source tables.
type Record struct {
	Item         string
	Month        string
	Jurisdiction string
	CPI          float64
}

// LoadAll reads every *.csv file under dir and melts the wide month
// columns into Records. The Canada file is processed first and the rest
// alphabetically, matching the assignment's presentation order. The
// jurisdiction code is taken from the filename prefix
// (e.g. "AB.CPI.1810000401.csv" -> "AB").
func LoadAll(logger *zap.Logger, dir string) ([]Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pattern := filepath.Join(dir, "*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad CPI file pattern %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CPI files found at %s", pattern)
	}

	sort.Slice(files, func(i, j int) bool {
		baseI, baseJ := filepath.Base(files[i]), filepath.Base(files[j])
		canadaI := strings.Contains(baseI, "Canada")
		canadaJ := strings.Contains(baseJ, "Canada")
		if canadaI != canadaJ {
			return canadaI
		}
		return baseI < baseJ
	})

	var records []Record
	for _, path := range files {
		fileRecords, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded CPI file",
			zap.String("op", "cpi.LoadAll"),
			zap.String("file", filepath.Base(path)),
			zap.Int("records", len(fileRecords)),
		)
		records = append(records, fileRecords...)
	}

	logger.Info("combined CPI data",
		zap.String("op", "cpi.LoadAll"),
		zap.Int("files", len(files)),
		zap.Int("records", len(records)),
	)
	return records, nil
}

func loadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CPI file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("CPI file %s has no data rows", filepath.Base(path))
	}

	// Header is Item followed by month labels; each body row is one item
	// across all months.
	header := rows[0]
	jurisdiction := strings.SplitN(filepath.Base(path), ".", 2)[0]

	var records []Record
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("CPI file %s row %q does not match header width", filepath.Base(path), row[0])
		}
		for i := 1; i < len(row); i++ {
			value, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("CPI file %s has non-numeric value %q for %s %s: %w",
					filepath.Base(path), row[i], row[0], header[i], err)
			}
			records = append(records, Record{
				Item:         strings.TrimSpace(row[0]),
				Month:        strings.TrimSpace(header[i]),
				Jurisdiction: jurisdiction,
				CPI:          value,
			})
		}
	}
	return records, nil
}
