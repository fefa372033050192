package main

import (
	"flag"
	"fmt"

	"github.com/jjsiesto/fine3300-a2/internal/config"
	"github.com/jjsiesto/fine3300-a2/internal/report"
	"github.com/jjsiesto/fine3300-a2/pkg/constants"
	"github.com/jjsiesto/fine3300-a2/pkg/mortgage"
	"github.com/jjsiesto/fine3300-a2/pkg/output"
	"github.com/jjsiesto/fine3300-a2/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	principal := flag.Float64("principal", 0, "principal override (loan amount)")
	quotedRate := flag.Float64("rate", -1, "quoted rate override (percent, e.g. 5.5 for 5.5%)")
	amortizationYears := flag.Int("years", 0, "amortization override (years)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
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

	// CLI overrides take precedence over config values.
	if *principal > 0 {
		conf.Mortgage.Principal = *principal
	}
	if *quotedRate >= 0 {
		conf.Mortgage.QuotedRate = *quotedRate
	}
	if *amortizationYears > 0 {
		conf.Mortgage.AmortizationYears = *amortizationYears
	}

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateMortgage() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Compute the payment under every scheme.
	set, err := mortgage.Payments(
		conf.Mortgage.Principal,
		conf.Mortgage.QuotedRate/constants.PercentageMultiplier,
		conf.Mortgage.AmortizationYears,
	)
	if err != nil {
		logger.Fatal("failed to compute payments",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	output.PaymentSummary(conf.Mortgage.Principal, set)

	// Generate the amortization schedule for every scheme.
	var schedules []report.SchemeSchedule
	var series []report.NamedSeries
	for _, freq := range mortgage.Frequencies() {
		rows, err := mortgage.Schedule(conf.Terms(freq))
		if err != nil {
			logger.Fatal("failed to generate amortization schedule",
				zap.String("op", "main"),
				zap.String("scheme", freq.String()),
				zap.Error(err),
			)
		}
		logger.Debug("generated amortization schedule",
			zap.String("op", "main"),
			zap.String("scheme", freq.String()),
			zap.Int("periods", len(rows)),
		)
		schedules = append(schedules, report.SchemeSchedule{Name: freq.String(), Rows: rows})
		series = append(series, report.NamedSeries{Name: freq.String(), Points: mortgage.BalanceSeries(rows)})

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettySchedule(freq.String(), rows)
		case constants.OutputFormatCSV:
			output.CsvSchedule(freq.String(), rows)
		}
	}

	if err := report.WriteWorkbook(conf.Output.Workbook, schedules); err != nil {
		logger.Fatal("failed to write schedule workbook",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("saved amortization schedules",
		zap.String("op", "main"),
		zap.String("file", conf.Output.Workbook),
	)

	if err := report.WriteBalanceDecline(conf.Output.Plot, series); err != nil {
		logger.Fatal("failed to render balance decline plot",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("saved balance decline plot",
		zap.String("op", "main"),
		zap.String("file", conf.Output.Plot),
	)
}
