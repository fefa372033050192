package main

import (
	"flag"
	"fmt"

	"github.com/jjsiesto/fine3300-a2/internal/config"
	"github.com/jjsiesto/fine3300-a2/internal/cpi"
	"github.com/jjsiesto/fine3300-a2/pkg/constants"
	"github.com/jjsiesto/fine3300-a2/pkg/output"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	dataDir := flag.String("data-dir", "", "directory containing the CPI .csv files (overrides config)")
	wagesFile := flag.String("wages-file", "", "path to the minimum wages .csv file (overrides config)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := config.BuildLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *dataDir != "" {
		conf.CPI.DataDir = *dataDir
	}
	if *wagesFile != "" {
		conf.CPI.WagesFile = *wagesFile
	}

	records, err := cpi.LoadAll(logger, conf.CPI.DataDir)
	if err != nil {
		logger.Fatal("failed to load CPI data",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	changes := cpi.MonthToMonthChanges(logger, records)
	output.Banner("Average Month-to-Month % Change")
	output.AverageChanges(changes)

	output.Banner("Highest MtM Change Per Item")
	output.AverageChanges(cpi.HighestPerItem(changes))

	salaries, err := cpi.EquivalentSalaries(records, conf.CPI.BaseJurisdiction, conf.CPI.BaseSalary)
	if err != nil {
		logger.Fatal("failed to compute equivalent salaries",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	output.Banner(fmt.Sprintf("Equivalent Salary to $%.0fk in %s", conf.CPI.BaseSalary/1000, conf.CPI.BaseJurisdiction))
	output.EquivalentSalaries(salaries, conf.CPI.BaseJurisdiction, conf.CPI.BaseSalary)

	wages, err := cpi.AnalyzeMinimumWages(logger, records, conf.CPI.WagesFile)
	if err != nil {
		logger.Fatal("failed to analyze minimum wages",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	output.Banner("Minimum Wage Analysis")
	output.WageAnalysis(wages)

	inflation := cpi.ServicesInflation(records)
	output.Banner("Annual Inflation for 'Services'")
	output.ServicesInflation(inflation)

	if highest, ok := cpi.HighestServiceInflation(inflation); ok {
		output.Banner("Highest Service Inflation")
		fmt.Printf("Jurisdiction: %s\nValue: %.1f%%\n", highest.Jurisdiction, highest.ChangePercent)
	}

	logger.Info("analysis complete",
		zap.String("op", "main"),
		zap.Int("records", len(records)),
	)
}
